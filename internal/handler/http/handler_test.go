package http

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/service"
	"github.com/octareno/contacts-api/internal/store"
	"github.com/octareno/contacts-api/models"
)

// Stub services with per-method hooks so each test scripts exactly the
// behaviour it needs. Methods without a hook fail the test loudly.

type stubUserService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (string, error)
	authenticateFn func(ctx context.Context, token string) (models.User, error)
	updateFn       func(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error)
	logoutFn       func(ctx context.Context, user models.User) error
}

func (s *stubUserService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return s.registerFn(ctx, req)
}

func (s *stubUserService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	return s.loginFn(ctx, req)
}

func (s *stubUserService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if s.authenticateFn == nil {
		return models.User{}, store.ErrNoUserWasFound
	}
	return s.authenticateFn(ctx, token)
}

func (s *stubUserService) Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	return s.updateFn(ctx, user, req)
}

func (s *stubUserService) Logout(ctx context.Context, user models.User) error {
	return s.logoutFn(ctx, user)
}

type stubContactService struct {
	createFn func(ctx context.Context, userID int64, req models.ContactRequest) (models.Contact, error)
	getFn    func(ctx context.Context, userID, contactID int64) (models.Contact, error)
	updateFn func(ctx context.Context, userID, contactID int64, req models.ContactRequest) (models.Contact, error)
	deleteFn func(ctx context.Context, userID, contactID int64) error
	searchFn func(ctx context.Context, req models.SearchContactsRequest) ([]models.Contact, models.Paging, error)
}

func (s *stubContactService) Create(ctx context.Context, userID int64, req models.ContactRequest) (models.Contact, error) {
	return s.createFn(ctx, userID, req)
}

func (s *stubContactService) Get(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return s.getFn(ctx, userID, contactID)
}

func (s *stubContactService) Update(ctx context.Context, userID, contactID int64, req models.ContactRequest) (models.Contact, error) {
	return s.updateFn(ctx, userID, contactID, req)
}

func (s *stubContactService) Delete(ctx context.Context, userID, contactID int64) error {
	return s.deleteFn(ctx, userID, contactID)
}

func (s *stubContactService) Search(ctx context.Context, req models.SearchContactsRequest) ([]models.Contact, models.Paging, error) {
	return s.searchFn(ctx, req)
}

type stubAddressService struct {
	createFn func(ctx context.Context, userID, contactID int64, req models.AddressRequest) (models.Address, error)
	getFn    func(ctx context.Context, userID, contactID, addressID int64) (models.Address, error)
	updateFn func(ctx context.Context, userID, contactID, addressID int64, req models.AddressRequest) (models.Address, error)
	deleteFn func(ctx context.Context, userID, contactID, addressID int64) error
	listFn   func(ctx context.Context, userID, contactID int64) ([]models.Address, error)
}

func (s *stubAddressService) Create(ctx context.Context, userID, contactID int64, req models.AddressRequest) (models.Address, error) {
	return s.createFn(ctx, userID, contactID, req)
}

func (s *stubAddressService) Get(ctx context.Context, userID, contactID, addressID int64) (models.Address, error) {
	return s.getFn(ctx, userID, contactID, addressID)
}

func (s *stubAddressService) Update(ctx context.Context, userID, contactID, addressID int64, req models.AddressRequest) (models.Address, error) {
	return s.updateFn(ctx, userID, contactID, addressID, req)
}

func (s *stubAddressService) Delete(ctx context.Context, userID, contactID, addressID int64) error {
	return s.deleteFn(ctx, userID, contactID, addressID)
}

func (s *stubAddressService) List(ctx context.Context, userID, contactID int64) ([]models.Address, error) {
	return s.listFn(ctx, userID, contactID)
}

// authedUserService returns a user service whose Authenticate resolves
// "good-token" to user 7 so tests can exercise protected routes.
func authedUserService() *stubUserService {
	return &stubUserService{
		authenticateFn: func(_ context.Context, token string) (models.User, error) {
			if token == "good-token" {
				return models.User{UserID: 7, Username: "john", Name: "John Doe"}, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
}

func newTestHandler(users service.UserService, contacts service.ContactService, addresses service.AddressService) *Handler {
	if users == nil {
		users = authedUserService()
	}
	return NewHandler(&service.Services{
		UserService:    users,
		ContactService: contacts,
		AddressService: addresses,
	}, logger.NewLogger("test"))
}

// doRequest runs a request through the fully wired router, middleware
// included, and returns the recorder.
func doRequest(h *Handler, method, target, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
