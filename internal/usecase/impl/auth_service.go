// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"appcenar/config"
	deliverycontext "appcenar/internal/delivery/context"
	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/domain/repository"
	"appcenar/internal/domain/service"
	"appcenar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	sessionRepo   repository.SessionRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	mailer        service.Mailer
	publicBaseURL string
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	publicBaseURL := ""
	if params.Config != nil && params.Config.App != nil {
		publicBaseURL = strings.TrimRight(params.Config.App.PublicBaseURL, "/")
	}

	return &authService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		sessionRepo:   params.SessionRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		mailer:        params.Mailer,
		publicBaseURL: publicBaseURL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer creates an inactive customer account and mails the activation link.
func (srv *authService) RegisterCustomer(ctx context.Context, input usecase.RegisterPersonInput) (*usecase.RegisterOutput, error) {
	return srv.registerPerson(ctx, entity.RoleCustomer, input)
}

// RegisterCourier creates an inactive courier account and mails the activation link.
func (srv *authService) RegisterCourier(ctx context.Context, input usecase.RegisterPersonInput) (*usecase.RegisterOutput, error) {
	return srv.registerPerson(ctx, entity.RoleCourier, input)
}

func (srv *authService) registerPerson(ctx context.Context, role entity.Role, input usecase.RegisterPersonInput) (*usecase.RegisterOutput, error) {
	if input.Password != input.PasswordConfirm {
		return nil, domainerrors.ErrPasswordMismatch
	}

	token, err := service.NewRandomToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate activation token")
	}

	// The password is hashed exactly once, here. Everything after this
	// point only ever moves the hash around.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Username:        strings.TrimSpace(input.Username),
		PasswordHash:    hash,
		Role:            role,
		Active:          false,
		ActivationToken: token,
		Name:            input.Name,
		LastName:        input.LastName,
		Phone:           input.Phone,
		PhotoURL:        input.PhotoURL,
	}
	if role == entity.RoleCourier {
		account.CourierProfile = &entity.CourierProfile{Available: true}
	}

	if err := srv.createAccount(ctx, account); err != nil {
		return nil, err
	}

	srv.sendActivationMail(ctx, account)

	return &usecase.RegisterOutput{Account: account}, nil
}

// RegisterMerchant creates an inactive merchant account and mails the activation link.
// Merchants sign in with their email, so the username mirrors it.
func (srv *authService) RegisterMerchant(ctx context.Context, input usecase.RegisterMerchantInput) (*usecase.RegisterOutput, error) {
	if input.Password != input.PasswordConfirm {
		return nil, domainerrors.ErrPasswordMismatch
	}

	token, err := service.NewRandomToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate activation token")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)
	if username == "" {
		username = email
	}

	account := &entity.Account{
		Email:           email,
		Username:        username,
		PasswordHash:    hash,
		Role:            entity.RoleMerchant,
		Active:          false,
		ActivationToken: token,
		Phone:           input.Phone,
		MerchantProfile: &entity.MerchantProfile{
			StoreName:      input.StoreName,
			LogoURL:        input.LogoURL,
			OpensAt:        input.OpensAt,
			ClosesAt:       input.ClosesAt,
			BusinessTypeID: input.BusinessTypeID,
		},
	}

	if err := srv.createAccount(ctx, account); err != nil {
		return nil, err
	}

	srv.sendActivationMail(ctx, account)

	return &usecase.RegisterOutput{Account: account}, nil
}

func (srv *authService) createAccount(ctx context.Context, account *entity.Account) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if account.MerchantProfile != nil {
			btRepo := repoFactory.NewBusinessTypeRepository()
			if _, err := btRepo.FindByID(ctx, account.MerchantProfile.BusinessTypeID); err != nil {
				if errors.Is(err, repository.ErrBusinessTypeNotFound) {
					return domainerrors.ErrBusinessTypeNotFound
				}

				return err
			}
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return domainerrors.ErrAccountExists
		}

		srv.log(ctx).Error("Failed to create account",
			slog.String("email", account.Email), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account registered",
		slog.Any("role", account.Role), slog.Any("accountID", account.ID))

	return nil
}

func (srv *authService) sendActivationMail(ctx context.Context, account *entity.Account) {
	activationURL := srv.publicBaseURL + "/auth/activate/" + account.ActivationToken
	if err := srv.mailer.SendActivation(ctx, account.Email, account.DisplayName(), activationURL); err != nil {
		// Registration already succeeded; the activation link can be re-sent.
		srv.log(ctx).Error("Failed to send activation mail",
			slog.String("email", account.Email), slog.Any("error", err))
	}
}

// Login authenticates by username or email and persists the session before
// returning the token pair.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByLogin(ctx, strings.TrimSpace(input.Login))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	// Inactive accounts are told so before the credential is even checked,
	// matching the activation-first message contract.
	if !account.Active {
		return nil, domainerrors.ErrInactiveAccount
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueSession(ctx, account)
}

func (srv *authService) issueSession(ctx context.Context, account *entity.Account) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.Session{
		AccountID: account.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	// The session row must exist before the tokens leave this process.
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Info("Session issued", slog.Any("accountID", account.ID), slog.Any("role", account.Role))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// Activate consumes a single-use activation token.
func (srv *authService) Activate(ctx context.Context, token string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByActivationToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidToken
			}

			return err
		}

		account.Active = true
		account.ActivationToken = ""

		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}

		srv.log(ctx).Info("Account activated", slog.Any("accountID", account.ID))

		return nil
	})
}

// RequestPasswordReset generates a single-use reset token and mails the reset link.
func (srv *authService) RequestPasswordReset(ctx context.Context, login string) error {
	account, err := srv.accountRepo.FindByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to look up account")
	}

	token, err := service.NewRandomToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	account.ResetToken = token
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	resetURL := srv.publicBaseURL + "/auth/reset/" + token
	if err := srv.mailer.SendPasswordReset(ctx, account.Email, account.DisplayName(), resetURL); err != nil {
		srv.log(ctx).Error("Failed to send reset mail",
			slog.String("email", account.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to send reset mail")
	}

	return nil
}

// ResetPassword consumes a reset token and replaces the account password.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if input.Password != input.PasswordConfirm {
		return domainerrors.ErrPasswordMismatch
	}

	// Same single-hash path as registration.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByResetToken(ctx, input.Token)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidToken
			}

			return err
		}

		account.PasswordHash = hash
		account.ResetToken = ""

		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}

		// Force every live session to re-authenticate with the new password.
		sessionRepo := repoFactory.NewSessionRepository()
		if err := sessionRepo.DeleteByAccount(ctx, account.ID); err != nil {
			return err
		}

		srv.log(ctx).Info("Password reset", slog.Any("accountID", account.ID))

		return nil
	})
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	tokenHash := srv.tokenService.HashToken(refreshToken)

	session, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}
		if errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrSessionExpired
		}

		return nil, errors.Wrap(err, "failed to look up session")
	}

	account, err := srv.accountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session account")
	}
	if !account.Active {
		return nil, domainerrors.ErrInactiveAccount
	}

	// Rotate: the old session dies with the old token.
	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil &&
		!errors.Is(err, repository.ErrSessionNotFound) {
		return nil, errors.Wrap(err, "failed to rotate session")
	}

	return srv.issueSession(ctx, account)
}

// Logout deletes the persisted session behind the refresh token.
// Logging out an already-dead session is not an error.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
