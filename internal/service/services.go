package service

import (
	"github.com/octareno/contacts-api/internal/config"
	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/store"
	"github.com/octareno/contacts-api/internal/validators"
)

type Services struct {
	UserService    UserService
	ContactService ContactService
	AddressService AddressService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		UserService:    NewUserService(storages.UserRepository, validator, cfg, logger),
		ContactService: NewContactService(storages.ContactRepository, validator, logger),
		AddressService: NewAddressService(storages.AddressRepository, storages.ContactRepository, validator, logger),
	}
}
