package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/store"
	"github.com/octareno/contacts-api/internal/validators"
	"github.com/octareno/contacts-api/models"
)

type stubContactRepository struct {
	createContactFn   func(ctx context.Context, contact models.Contact) (models.Contact, error)
	findContactByIDFn func(ctx context.Context, userID, contactID int64) (models.Contact, error)
	updateContactFn   func(ctx context.Context, contact models.Contact) (models.Contact, error)
	deleteContactFn   func(ctx context.Context, userID, contactID int64) error
	searchContactsFn  func(ctx context.Context, req models.SearchContactsRequest) ([]models.Contact, int, error)
}

func (s *stubContactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return s.createContactFn(ctx, contact)
}

func (s *stubContactRepository) FindContactByID(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return s.findContactByIDFn(ctx, userID, contactID)
}

func (s *stubContactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return s.updateContactFn(ctx, contact)
}

func (s *stubContactRepository) DeleteContact(ctx context.Context, userID, contactID int64) error {
	return s.deleteContactFn(ctx, userID, contactID)
}

func (s *stubContactRepository) SearchContacts(ctx context.Context, req models.SearchContactsRequest) ([]models.Contact, int, error) {
	return s.searchContactsFn(ctx, req)
}

func newTestContactService(repo store.ContactRepository) ContactService {
	return NewContactService(repo, validators.NewRequestValidator(), logger.NewLogger("test"))
}

func TestContactService_Create_SetsOwner(t *testing.T) {
	ctx := context.Background()

	repo := &stubContactRepository{
		createContactFn: func(_ context.Context, contact models.Contact) (models.Contact, error) {
			assert.Equal(t, int64(7), contact.UserID)
			contact.ContactID = 10
			return contact, nil
		},
	}

	svc := newTestContactService(repo)

	created, err := svc.Create(ctx, 7, models.ContactRequest{FirstName: "Eko"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ContactID)
}

func TestContactService_Create_RequiresFirstName(t *testing.T) {
	ctx := context.Background()

	repo := &stubContactRepository{
		createContactFn: func(_ context.Context, _ models.Contact) (models.Contact, error) {
			t.Fatal("repository must not be reached on validation failure")
			return models.Contact{}, nil
		},
	}

	svc := newTestContactService(repo)

	_, err := svc.Create(ctx, 7, models.ContactRequest{LastName: "Khannedy"})
	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestContactService_Create_RejectsMalformedEmail(t *testing.T) {
	ctx := context.Background()

	repo := &stubContactRepository{
		createContactFn: func(_ context.Context, _ models.Contact) (models.Contact, error) {
			t.Fatal("repository must not be reached on validation failure")
			return models.Contact{}, nil
		},
	}

	svc := newTestContactService(repo)

	_, err := svc.Create(ctx, 7, models.ContactRequest{FirstName: "Eko", Email: "not-an-email"})
	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestContactService_Update_PropagatesNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &stubContactRepository{
		updateContactFn: func(_ context.Context, _ models.Contact) (models.Contact, error) {
			return models.Contact{}, store.ErrContactNotFound
		},
	}

	svc := newTestContactService(repo)

	_, err := svc.Update(ctx, 7, 99, models.ContactRequest{FirstName: "Eko"})
	require.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactService_Search_PagingMath(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		size          int
		page          int
		wantTotalPage int
	}{
		{name: "15 items size 10", total: 15, size: 10, page: 1, wantTotalPage: 2},
		{name: "exact multiple", total: 20, size: 10, page: 2, wantTotalPage: 2},
		{name: "single item", total: 1, size: 10, page: 1, wantTotalPage: 1},
		{name: "empty result", total: 0, size: 10, page: 1, wantTotalPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			repo := &stubContactRepository{
				searchContactsFn: func(_ context.Context, req models.SearchContactsRequest) ([]models.Contact, int, error) {
					return []models.Contact{}, tt.total, nil
				},
			}

			svc := newTestContactService(repo)

			_, paging, err := svc.Search(ctx, models.SearchContactsRequest{
				UserID: 7,
				Page:   tt.page,
				Size:   tt.size,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.page, paging.Page)
			assert.Equal(t, tt.total, paging.TotalItem)
			assert.Equal(t, tt.wantTotalPage, paging.TotalPage)
		})
	}
}

func TestContactService_Search_RejectsInvalidWindow(t *testing.T) {
	ctx := context.Background()

	repo := &stubContactRepository{
		searchContactsFn: func(_ context.Context, _ models.SearchContactsRequest) ([]models.Contact, int, error) {
			t.Fatal("repository must not be reached on validation failure")
			return nil, 0, nil
		},
	}

	svc := newTestContactService(repo)

	_, _, err := svc.Search(ctx, models.SearchContactsRequest{UserID: 7, Page: 0, Size: 10})
	require.ErrorIs(t, err, validators.ErrValidation)

	_, _, err = svc.Search(ctx, models.SearchContactsRequest{UserID: 7, Page: 1, Size: validators.MaxPageSize + 1})
	require.ErrorIs(t, err, validators.ErrValidation)
}
