package service

import (
	"context"
	"fmt"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/store"
	"github.com/octareno/contacts-api/internal/validators"
	"github.com/octareno/contacts-api/models"
)

// addressService is the concrete implementation of [AddressService].
//
// Addresses hang off contacts, so every operation resolves the contact under
// the authenticated user before touching the addresses table. That single
// check gives the whole sub-resource the owner scoping.
type addressService struct {
	addressRepository store.AddressRepository
	contactRepository store.ContactRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewAddressService(addressRepository store.AddressRepository, contactRepository store.ContactRepository, validator validators.Validator, logger *logger.Logger) AddressService {
	return &addressService{
		addressRepository: addressRepository,
		contactRepository: contactRepository,
		validator:         validator,
		logger:            logger,
	}
}

// resolveContact confirms that contactID exists and belongs to userID. It
// returns [store.ErrContactNotFound] otherwise.
func (s *addressService) resolveContact(ctx context.Context, userID, contactID int64) error {
	if _, err := s.contactRepository.FindContactByID(ctx, userID, contactID); err != nil {
		return err
	}

	return nil
}

// Create validates the payload and stores a new address under the contact.
func (s *addressService) Create(ctx context.Context, userID, contactID int64, req models.AddressRequest) (models.Address, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Int64("contact_id", contactID).Msg("invalid address payload")
		return models.Address{}, err
	}

	if err := s.resolveContact(ctx, userID, contactID); err != nil {
		return models.Address{}, err
	}

	created, err := s.addressRepository.CreateAddress(ctx, models.Address{
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		log.Err(err).Int64("contact_id", contactID).Msg("address creation ended with error")
		return models.Address{}, fmt.Errorf("address creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns the address identified by addressID beneath the contact, or
// [store.ErrContactNotFound] / [store.ErrAddressNotFound].
func (s *addressService) Get(ctx context.Context, userID, contactID, addressID int64) (models.Address, error) {
	if err := s.resolveContact(ctx, userID, contactID); err != nil {
		return models.Address{}, err
	}

	return s.addressRepository.FindAddressByID(ctx, contactID, addressID)
}

// Update replaces every mutable field of the address.
func (s *addressService) Update(ctx context.Context, userID, contactID, addressID int64, req models.AddressRequest) (models.Address, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Int64("address_id", addressID).Msg("invalid address payload")
		return models.Address{}, err
	}

	if err := s.resolveContact(ctx, userID, contactID); err != nil {
		return models.Address{}, err
	}

	updated, err := s.addressRepository.UpdateAddress(ctx, models.Address{
		AddressID:  addressID,
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return models.Address{}, err
	}

	return updated, nil
}

// Delete removes the address beneath the contact.
func (s *addressService) Delete(ctx context.Context, userID, contactID, addressID int64) error {
	if err := s.resolveContact(ctx, userID, contactID); err != nil {
		return err
	}

	return s.addressRepository.DeleteAddress(ctx, contactID, addressID)
}

// List returns every address of the contact; an empty slice when it has none.
func (s *addressService) List(ctx context.Context, userID, contactID int64) ([]models.Address, error) {
	if err := s.resolveContact(ctx, userID, contactID); err != nil {
		return nil, err
	}

	return s.addressRepository.ListAddresses(ctx, contactID)
}
