package store

import "github.com/octareno/contacts-api/internal/logger"

// Storages bundles every repository behind its interface so the service
// layer can be wired (and tested) against a single value.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
	AddressRepository AddressRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
		AddressRepository: NewAddressRepository(db, logger),
	}
}
