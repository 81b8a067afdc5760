package postgres

import (
	"context"
	"time"

	"wellness/internal/domain/entity"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/repository"
	"wellness/internal/infra/persistence/model"
	"wellness/internal/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenBlacklistRepository implements repository.TokenBlacklistRepository using GORM.
type tokenBlacklistRepository struct {
	db *gorm.DB
}

// NewTokenBlacklistRepository is the constructor for tokenBlacklistRepository.
func NewTokenBlacklistRepository(db *gorm.DB) repository.TokenBlacklistRepository {
	return &tokenBlacklistRepository{db: db}
}

// Add upserts the row so a repeated logout or a newer revocation marker wins.
func (repo *tokenBlacklistRepository) Add(ctx context.Context, token *entity.BlacklistedToken) error {
	row := &model.BlacklistedTokenModel{
		TokenHash:     util.HashKey(token.Token),
		Token:         token.Token,
		UserID:        token.UserID,
		BlacklistedAt: token.BlacklistedAt,
		ExpiresAt:     token.ExpiresAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"blacklisted_at", "expires_at"}),
		}).
		Create(row).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to blacklist token")
	}

	return nil
}

// Exists reports whether the token is blacklisted.
func (repo *tokenBlacklistRepository) Exists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BlacklistedTokenModel{}).
		Where("token_hash = ?", util.HashKey(token)).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check token blacklist")
	}

	return count > 0, nil
}

// Find returns the row stored under the token.
func (repo *tokenBlacklistRepository) Find(ctx context.Context, token string) (*entity.BlacklistedToken, error) {
	var row model.BlacklistedTokenModel
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", util.HashKey(token)).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlacklistEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find blacklisted token")
	}

	return &entity.BlacklistedToken{
		Token:         row.Token,
		UserID:        row.UserID,
		BlacklistedAt: row.BlacklistedAt,
		ExpiresAt:     row.ExpiresAt,
	}, nil
}

// DeleteAll empties the blacklist table.
func (repo *tokenBlacklistRepository) DeleteAll(ctx context.Context) (int, error) {
	return deleteAll(ctx, repo.db, &model.BlacklistedTokenModel{}, "failed to delete blacklist rows")
}

// DeleteExpired removes rows whose expiry is not after now.
func (repo *tokenBlacklistRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.BlacklistedTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired blacklist rows")
	}

	return int(result.RowsAffected), nil
}
