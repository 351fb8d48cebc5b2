package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/models"
)

func newTestAddressRepo(t *testing.T) (*addressRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &addressRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func addressColumns() []string {
	return []string{"address_id", "contact_id", "street", "city", "province", "country", "postal_code"}
}

func TestCreateAddress_Success(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()
	address := models.Address{
		ContactID:  10,
		Street:     "Jalan Sudirman",
		City:       "Jakarta",
		Province:   "DKI Jakarta",
		Country:    "Indonesia",
		PostalCode: "12345",
	}

	rows := sqlmock.NewRows(addressColumns()).
		AddRow(100, address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode)

	mock.ExpectQuery("INSERT INTO addresses").
		WithArgs(address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode).
		WillReturnRows(rows)

	created, err := repo.CreateAddress(ctx, address)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.AddressID != 100 {
		t.Errorf("expected AddressID=100, got %d", created.AddressID)
	}
}

func TestCreateAddress_OptionalFieldsStoredAsNull(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()
	address := models.Address{ContactID: 10, Country: "Indonesia", PostalCode: "12345"}

	rows := sqlmock.NewRows(addressColumns()).
		AddRow(101, address.ContactID, nil, nil, nil, address.Country, address.PostalCode)

	mock.ExpectQuery("INSERT INTO addresses").
		WithArgs(address.ContactID, nil, nil, nil, address.Country, address.PostalCode).
		WillReturnRows(rows)

	created, err := repo.CreateAddress(ctx, address)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Street != "" || created.City != "" || created.Province != "" {
		t.Errorf("expected empty optional fields, got %+v", created)
	}
}

func TestFindAddressByID_NotFound(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM addresses").
		WithArgs(int64(999), int64(10)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAddressByID(ctx, 10, 999)
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestUpdateAddress_Success(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()
	address := models.Address{
		AddressID:  100,
		ContactID:  10,
		Street:     "Jalan Thamrin",
		City:       "Jakarta",
		Province:   "DKI Jakarta",
		Country:    "Indonesia",
		PostalCode: "54321",
	}

	rows := sqlmock.NewRows(addressColumns()).
		AddRow(address.AddressID, address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode)

	mock.ExpectQuery("UPDATE addresses").
		WithArgs(address.AddressID, address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode).
		WillReturnRows(rows)

	updated, err := repo.UpdateAddress(ctx, address)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Street != "Jalan Thamrin" {
		t.Errorf("expected updated street, got %s", updated.Street)
	}
}

func TestDeleteAddress_AlreadyGone(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM addresses").
		WithArgs(int64(100), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAddress(ctx, 10, 100)
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestListAddresses_Empty(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM addresses").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(addressColumns()))

	addresses, err := repo.ListAddresses(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(addresses) != 0 {
		t.Errorf("expected empty slice, got %d items", len(addresses))
	}
}

func TestListAddresses_Multiple(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(addressColumns()).
		AddRow(100, 10, "Street A", "Jakarta", nil, "Indonesia", "11111").
		AddRow(101, 10, "Street B", "Bandung", nil, "Indonesia", "22222")

	mock.ExpectQuery("SELECT (.+) FROM addresses").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	addresses, err := repo.ListAddresses(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(addresses) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(addresses))
	}
	if addresses[1].City != "Bandung" {
		t.Errorf("expected second address in Bandung, got %s", addresses[1].City)
	}
}
