package impl

import (
	"context"

	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/domain/repository"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
	}
}

// ListAddresses returns the customer's addresses.
func (srv *addressService) ListAddresses(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	return srv.addressRepo.FindByCustomer(ctx, customerID)
}

// GetAddress returns one of the customer's addresses.
func (srv *addressService) GetAddress(ctx context.Context, customerID, addressID uuid.UUID) (*entity.Address, error) {
	return srv.owned(ctx, customerID, addressID)
}

// CreateAddress adds an address to the customer's address book.
func (srv *addressService) CreateAddress(ctx context.Context, customerID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	address := &entity.Address{
		CustomerID:  customerID,
		Label:       input.Label,
		Description: input.Description,
	}

	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

// UpdateAddress modifies one of the customer's addresses.
func (srv *addressService) UpdateAddress(ctx context.Context, customerID, addressID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	address, err := srv.owned(ctx, customerID, addressID)
	if err != nil {
		return nil, err
	}

	address.Label = input.Label
	address.Description = input.Description

	if err := srv.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

// DeleteAddress removes one of the customer's addresses.
func (srv *addressService) DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	if _, err := srv.owned(ctx, customerID, addressID); err != nil {
		return err
	}

	return srv.addressRepo.Delete(ctx, addressID)
}

func (srv *addressService) owned(ctx context.Context, customerID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, err
	}
	if address.CustomerID != customerID {
		return nil, domainerrors.ErrAddressNotFound
	}

	return address, nil
}
