package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/models"
)

// addressRepository is the PostgreSQL-backed implementation of
// [AddressRepository]. Queries are scoped by contact_id; resolving that
// contact under the authenticated user is the caller's responsibility.
type addressRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAddress persists a new address under address.ContactID and returns
// it with the server-assigned AddressID.
func (r *addressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAddress,
		address.ContactID,
		nullableString(address.Street),
		nullableString(address.City),
		nullableString(address.Province),
		address.Country,
		address.PostalCode,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("error: row is nil")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanAddress(row)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("error: scanning error")
		return models.Address{}, err
	}

	return saved, nil
}

// FindAddressByID retrieves the address identified by addressID that belongs
// to contactID, or [ErrAddressNotFound].
func (r *addressRepository) FindAddressByID(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAddressByID, addressID, contactID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.FindAddressByID").Msg("error: row is nil")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanAddress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}
		log.Err(err).Str("func", "*addressRepository.FindAddressByID").Msg("error: scanning error")
		return models.Address{}, err
	}

	return found, nil
}

// UpdateAddress overwrites every mutable column of the address identified by
// {AddressID, ContactID} and returns the stored row, or [ErrAddressNotFound].
func (r *addressRepository) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateAddress,
		address.AddressID,
		address.ContactID,
		nullableString(address.Street),
		nullableString(address.City),
		nullableString(address.Province),
		address.Country,
		address.PostalCode,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error: row is nil")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanAddress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error: scanning error")
		return models.Address{}, err
	}

	return updated, nil
}

// DeleteAddress removes the address identified by {addressID, contactID}.
// Zero affected rows reports [ErrAddressNotFound], making a repeated delete
// of the same id fail.
func (r *addressRepository) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAddress, addressID, contactID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Int64("address_id", addressID).Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

// ListAddresses returns every address belonging to contactID in insertion
// order. An empty result is a valid empty slice, not an error.
func (r *addressRepository) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAddressesByContact, contactID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddresses").Int64("contact_id", contactID).Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0, 8)
	for rows.Next() {
		address, scanErr := scanAddress(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*addressRepository.ListAddresses").Msg("failed to scan address row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return addresses, nil
}

func scanAddress(row rowScanner) (models.Address, error) {
	var address models.Address
	var street, city, province sql.NullString

	if err := row.Scan(&address.AddressID, &address.ContactID, &street, &city, &province, &address.Country, &address.PostalCode); err != nil {
		return models.Address{}, err
	}

	address.Street = street.String
	address.City = city.String
	address.Province = province.String

	return address, nil
}
