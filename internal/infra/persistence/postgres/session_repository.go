package postgres

import (
	"context"
	"time"

	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/domain/repository"
	"appcenar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create persists a new session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a session by the hash of its refresh token.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	session := toSessionDomain(&sessionM)
	if time.Now().After(session.ExpiresAt) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// FindByAccount retrieves all sessions of an account, newest first.
func (repo *sessionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sessions by account")
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// DeleteByTokenHash removes a session by its token hash.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteByAccount removes every session of an account.
func (repo *sessionRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.SessionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete sessions by account")
	}

	return nil
}

// DeleteExpired removes all expired sessions.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.SessionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete expired sessions")
	}

	return nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
