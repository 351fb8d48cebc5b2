package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/octareno/contacts-api/internal/config"
	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/store"
	"github.com/octareno/contacts-api/internal/utils"
	"github.com/octareno/contacts-api/internal/validators"
	"github.com/octareno/contacts-api/models"
)

// userService is the concrete implementation of [UserService]. It handles
// registration, credential verification, and the opaque session-token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks every request shape before any repository call.
	validator validators.Validator

	// tokenGenerator produces the opaque session-token values issued at login.
	tokenGenerator *utils.UUIDGenerator

	// bcryptCost is the bcrypt work factor for password hashing.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository
// and populated with the hashing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, cfg config.Auth, logger *logger.Logger) UserService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &userService{
		userRepository: userRepository,
		validator:      validator,
		tokenGenerator: utils.NewUUIDGenerator(),
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The payload is validated eagerly; the password is then bcrypt-hashed and
// persistence is delegated to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a [validators.ValidationError] listing every violated rule.
//   - [store.ErrUsernameAlreadyExists] (wrapped) when the username is taken.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("invalid registration payload")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, models.User{
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a fresh session token.
//
// The token is an opaque UUID stored on the user row; writing it overwrites
// any previously issued token, so at most one session is active per user.
// Unknown username and wrong password are both reported as
// [ErrWrongCredentials] — indistinguishable by design.
func (s *userService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("invalid login payload")
		return "", err
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", req.Username).Msg("login attempt for unknown username")
			return "", ErrWrongCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return "", fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(req.Password)); err != nil {
		log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return "", ErrWrongCredentials
	}

	token := s.tokenGenerator.Generate()
	if err := s.userRepository.UpdateToken(ctx, foundUser.UserID, &token); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("failed to store session token")
		return "", fmt.Errorf("failed to store session token: %w", err)
	}

	return token, nil
}

// Authenticate resolves a bearer credential to its owning user. The lookup
// is read-only and does not rotate the token.
func (s *userService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, store.ErrNoUserWasFound
	}

	foundUser, err := s.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	return foundUser, nil
}

// Update applies the non-empty fields of req to the user. An empty request
// writes the user back unchanged, which keeps PATCH idempotent.
func (s *userService) Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("invalid user update payload")
		return models.User{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
		if err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.Password = string(hash)
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// Logout clears the session token on the user row. Because the token IS the
// row value, the credential stops authenticating immediately — no grace
// period and no revocation list.
func (s *userService) Logout(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.UpdateToken(ctx, user.UserID, nil); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("failed to clear session token")
		return fmt.Errorf("failed to clear session token: %w", err)
	}

	return nil
}
