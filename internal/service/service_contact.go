package service

import (
	"context"
	"fmt"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/store"
	"github.com/octareno/contacts-api/internal/validators"
	"github.com/octareno/contacts-api/models"
)

// contactService is the concrete implementation of [ContactService]. Every
// operation is scoped to the owning user id supplied by the caller, so a
// contact belonging to someone else is indistinguishable from a missing one.
type contactService struct {
	contactRepository store.ContactRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, validator validators.Validator, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validator,
		logger:            logger,
	}
}

// Create validates the payload and stores a new contact under userID.
func (s *contactService) Create(ctx context.Context, userID int64, req models.ContactRequest) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("invalid contact payload")
		return models.Contact{}, err
	}

	created, err := s.contactRepository.CreateContact(ctx, models.Contact{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns the contact identified by contactID under userID, or
// [store.ErrContactNotFound].
func (s *contactService) Get(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return s.contactRepository.FindContactByID(ctx, userID, contactID)
}

// Update replaces every mutable field of the contact. The contact is resolved
// under userID first, so updating a foreign or missing id reports
// [store.ErrContactNotFound] without touching any row.
func (s *contactService) Update(ctx context.Context, userID, contactID int64, req models.ContactRequest) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Int64("contact_id", contactID).Msg("invalid contact payload")
		return models.Contact{}, err
	}

	updated, err := s.contactRepository.UpdateContact(ctx, models.Contact{
		ContactID: contactID,
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return models.Contact{}, err
	}

	return updated, nil
}

// Delete removes the contact and, via the schema's cascade, all of its
// addresses. A foreign or missing id reports [store.ErrContactNotFound].
func (s *contactService) Delete(ctx context.Context, userID, contactID int64) error {
	return s.contactRepository.DeleteContact(ctx, userID, contactID)
}

// Search runs the filtered, paginated listing and derives the paging summary.
// An out-of-range page is not an error: it yields an empty data slice with
// the true totals, so clients can walk backwards.
func (s *contactService) Search(ctx context.Context, req models.SearchContactsRequest) ([]models.Contact, models.Paging, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("invalid search parameters")
		return nil, models.Paging{}, err
	}

	contacts, total, err := s.contactRepository.SearchContacts(ctx, req)
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("contact search ended with error")
		return nil, models.Paging{}, fmt.Errorf("contact search ended with error: %w", err)
	}

	paging := models.Paging{
		Page:      req.Page,
		TotalPage: (total + req.Size - 1) / req.Size,
		TotalItem: total,
	}

	return contacts, paging, nil
}
