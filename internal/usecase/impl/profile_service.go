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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	accountRepo repository.AccountRepository
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		accountRepo: params.AccountRepo,
	}
}

// GetProfile returns the caller's account with its role profile.
func (srv *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// UpdatePersonProfile updates a customer or courier profile. Email, username
// and the stored credential stay untouched.
func (srv *profileService) UpdatePersonProfile(ctx context.Context, accountID uuid.UUID, input usecase.UpdatePersonProfileInput) (*entity.Account, error) {
	account, err := srv.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Role != entity.RoleCustomer && account.Role != entity.RoleCourier {
		return nil, domainerrors.ErrForbidden
	}

	account.Name = input.Name
	account.LastName = input.LastName
	account.Phone = input.Phone
	account.PhotoURL = input.PhotoURL

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateMerchantProfile updates a merchant profile.
func (srv *profileService) UpdateMerchantProfile(ctx context.Context, accountID uuid.UUID, input usecase.UpdateMerchantProfileInput) (*entity.Account, error) {
	account, err := srv.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Role != entity.RoleMerchant || account.MerchantProfile == nil {
		return nil, domainerrors.ErrForbidden
	}

	account.Phone = input.Phone
	account.MerchantProfile.StoreName = input.StoreName
	account.MerchantProfile.LogoURL = input.LogoURL
	account.MerchantProfile.OpensAt = input.OpensAt
	account.MerchantProfile.ClosesAt = input.ClosesAt

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
