package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Every query it issues is scoped by the owning
// user_id, so an ownership miss and a missing row are indistinguishable —
// both report [ErrContactNotFound].
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact persists a new contact under contact.UserID and returns it
// with the server-assigned ContactID.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createContact,
		contact.UserID,
		contact.FirstName,
		nullableString(contact.LastName),
		nullableString(contact.Email),
		nullableString(contact.Phone),
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error: row is nil")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanContact(row)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error: scanning error")
		return models.Contact{}, err
	}

	return saved, nil
}

// FindContactByID retrieves the contact identified by contactID that belongs
// to userID, or [ErrContactNotFound].
func (r *contactRepository) FindContactByID(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findContactByID, contactID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.FindContactByID").Msg("error: row is nil")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.FindContactByID").Msg("error: scanning error")
		return models.Contact{}, err
	}

	return found, nil
}

// UpdateContact overwrites every mutable column of the contact identified by
// {ContactID, UserID} and returns the stored row, or [ErrContactNotFound].
func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateContact,
		contact.ContactID,
		contact.UserID,
		contact.FirstName,
		nullableString(contact.LastName),
		nullableString(contact.Email),
		nullableString(contact.Phone),
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error: row is nil")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error: scanning error")
		return models.Contact{}, err
	}

	return updated, nil
}

// DeleteContact removes the contact identified by {contactID, userID}.
// Zero affected rows — already deleted or never owned — reports
// [ErrContactNotFound], which makes a second delete of the same id fail.
func (r *contactRepository) DeleteContact(ctx context.Context, userID, contactID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContact, contactID, userID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Int64("contact_id", contactID).Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// SearchContacts executes the dynamic search built by
// [buildSearchContactsQuery] plus its COUNT companion and returns the
// page-window slice together with the total match count.
func (r *contactRepository) SearchContacts(ctx context.Context, req models.SearchContactsRequest) ([]models.Contact, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountContactsQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("failed to build count query")
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("failed to count matching contacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildSearchContactsQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("failed to build search query")
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Int64("user_id", req.UserID).Msg("failed to execute search query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, req.Size)
	for rows.Next() {
		contact, scanErr := scanContact(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*contactRepository.SearchContacts").Msg("failed to scan contact row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, total, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var contact models.Contact
	var lastName, email, phone sql.NullString

	if err := row.Scan(&contact.ContactID, &contact.UserID, &contact.FirstName, &lastName, &email, &phone); err != nil {
		return models.Contact{}, err
	}

	contact.LastName = lastName.String
	contact.Email = email.String
	contact.Phone = phone.String

	return contact, nil
}
