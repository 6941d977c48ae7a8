package postgres

import (
	"context"

	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/domain/repository"
	"appcenar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingsRowID is the fixed primary key of the single settings row.
const settingsRowID int64 = 1

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the settings row, creating it with default values on first access.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsM model.SettingsModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", settingsRowID).
		First(&settingsM).Error
	if err == nil {
		return toSettingsDomain(&settingsM), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to load settings")
	}

	settingsM = model.SettingsModel{
		ID:      settingsRowID,
		TaxRate: entity.DefaultTaxRate,
	}
	if err := repo.db.WithContext(ctx).Create(&settingsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Another request seeded the row first; read it back.
			return repo.Get(ctx)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to seed settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// Update persists the settings row.
func (repo *settingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SettingsModel{}).
		Where("id = ?", settingsRowID).
		Update("tax_rate", settings.TaxRate).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update settings")
	}

	return nil
}

// --- Mapper Functions ---

func toSettingsDomain(data *model.SettingsModel) *entity.Settings {
	if data == nil {
		return nil
	}

	return &entity.Settings{
		ID:        data.ID,
		TaxRate:   data.TaxRate,
		UpdatedAt: data.UpdatedAt,
	}
}
