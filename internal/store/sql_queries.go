package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/octareno/contacts-api/models"
)

const (
	createUser = `INSERT INTO users (username, password, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password, name, token;`

	findUserByUsername = `SELECT user_id, username, password, name, token
    FROM users
    WHERE username = $1;`

	findUserByToken = `SELECT user_id, username, password, name, token
    FROM users
    WHERE token = $1;`

	updateUser = `UPDATE users
    SET name = $2, password = $3
    WHERE user_id = $1
    RETURNING user_id, username, password, name, token;`

	updateUserToken = `UPDATE users
    SET token = $2
    WHERE user_id = $1;`

	createContact = `INSERT INTO contacts (user_id, first_name, last_name, email, phone)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING contact_id, user_id, first_name, last_name, email, phone;`

	findContactByID = `SELECT contact_id, user_id, first_name, last_name, email, phone
    FROM contacts
    WHERE contact_id = $1 AND user_id = $2;`

	updateContact = `UPDATE contacts
    SET first_name = $3, last_name = $4, email = $5, phone = $6
    WHERE contact_id = $1 AND user_id = $2
    RETURNING contact_id, user_id, first_name, last_name, email, phone;`

	deleteContact = `DELETE FROM contacts
    WHERE contact_id = $1 AND user_id = $2;`

	createAddress = `INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING address_id, contact_id, street, city, province, country, postal_code;`

	findAddressByID = `SELECT address_id, contact_id, street, city, province, country, postal_code
    FROM addresses
    WHERE address_id = $1 AND contact_id = $2;`

	updateAddress = `UPDATE addresses
    SET street = $3, city = $4, province = $5, country = $6, postal_code = $7
    WHERE address_id = $1 AND contact_id = $2
    RETURNING address_id, contact_id, street, city, province, country, postal_code;`

	deleteAddress = `DELETE FROM addresses
    WHERE address_id = $1 AND contact_id = $2;`

	listAddressesByContact = `SELECT address_id, contact_id, street, city, province, country, postal_code
    FROM addresses
    WHERE contact_id = $1
    ORDER BY address_id;`
)

// psql is the squirrel builder configured for PostgreSQL ($n placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSearchContactsQuery produces the page-window SELECT for the dynamic
// contact search. The WHERE clause is always scoped by user_id; the optional
// name/email/phone filters are AND-combined on top. Ordering by contact_id
// keeps pagination stable across pages.
func buildSearchContactsQuery(req models.SearchContactsRequest) (string, []any, error) {
	builder := psql.
		Select("contact_id", "user_id", "first_name", "last_name", "email", "phone").
		From("contacts").
		Where(sq.Eq{"user_id": req.UserID})

	builder = applyContactFilters(builder, req)

	builder = builder.
		OrderBy("contact_id").
		Limit(uint64(req.Size)).
		Offset(uint64((req.Page - 1) * req.Size))

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountContactsQuery produces the COUNT(*) companion of
// [buildSearchContactsQuery]: same filters, no paging window.
func buildCountContactsQuery(req models.SearchContactsRequest) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From("contacts").
		Where(sq.Eq{"user_id": req.UserID})

	builder = applyContactFilters(builder, req)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// applyContactFilters appends the optional search predicates. A name filter
// matches first_name OR last_name; email and phone each match their own
// column. All matches are case-insensitive substring comparisons expressed
// as LOWER(column) LIKE to stay parameterised.
func applyContactFilters(builder sq.SelectBuilder, req models.SearchContactsRequest) sq.SelectBuilder {
	if req.Name != "" {
		pattern := containsPattern(req.Name)
		builder = builder.Where(sq.Or{
			sq.Like{"LOWER(first_name)": pattern},
			sq.Like{"LOWER(last_name)": pattern},
		})
	}

	if req.Email != "" {
		builder = builder.Where(sq.Like{"LOWER(email)": containsPattern(req.Email)})
	}

	if req.Phone != "" {
		builder = builder.Where(sq.Like{"LOWER(phone)": containsPattern(req.Phone)})
	}

	return builder
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// nullableString converts an empty string to NULL so optional columns do not
// store empty values.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
