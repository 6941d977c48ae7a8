// Command seedadmin creates the first administrator account so the platform
// can be managed before any self-registration happens.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"appcenar/config"
	"appcenar/internal/domain/service"
	"appcenar/internal/infra/auth"
	logs "appcenar/internal/infra/log"
	"appcenar/internal/infra/persistence/postgres"
	"appcenar/internal/usecase"
	"appcenar/internal/usecase/impl"

	"go.uber.org/fx"
)

type seedParams struct {
	fx.In

	AdminUC    usecase.AdminUsecase
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
}

func main() {
	input := usecase.CreateAdminInput{}
	flag.StringVar(&input.Name, "name", "Admin", "given name")
	flag.StringVar(&input.LastName, "lastname", "AppCenar", "last name")
	flag.StringVar(&input.NationalID, "cedula", "000-0000000-0", "national ID")
	flag.StringVar(&input.Email, "email", "admin@appcenar.local", "email address")
	flag.StringVar(&input.Username, "username", "admin", "login username")
	flag.StringVar(&input.Password, "password", "", "initial password (required)")
	flag.Parse()

	if input.Password == "" {
		slog.Error("a password is required, pass -password")
		os.Exit(1)
	}
	input.PasswordConfirm = input.Password

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			newPasswordHasher,
			postgres.NewAccountRepository,
			postgres.NewOrderRepository,
			postgres.NewProductRepository,
			postgres.NewBusinessTypeRepository,
			postgres.NewSettingsRepository,
			postgres.NewTransactionManager,
			impl.NewAdminService,
		),
		fx.Invoke(func(params seedParams) {
			seed(params, input)
		}),
	).Run()
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

func seed(params seedParams, input usecase.CreateAdminInput) {
	account, err := params.AdminUC.CreateAdmin(context.Background(), input)
	if err != nil {
		params.Logger.Error("Failed to create administrator", slog.Any("error", err))
		_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

		return
	}

	params.Logger.Info("Administrator created",
		slog.String("id", account.ID.String()),
		slog.String("username", account.Username),
	)
	_ = params.Shutdowner.Shutdown()
}
