// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wellness/internal/domain/entity"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/repository"
	"wellness/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	// Ids that are not UUIDs can never match and would make PostgreSQL reject the query.
	if uuid.Validate(id) != nil {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their normalized email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create inserts a new user. The unique index on email turns a concurrent
// duplicate registration into ErrEmailTaken.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrEmailTaken)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// Update overwrites the mutable fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("name", "password_hash", "login_provider", "federated_id", "updated_at").
		Updates(userM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DeleteAll empties the user table. Mood entries must be removed first.
func (repo *userRepository) DeleteAll(ctx context.Context) (int, error) {
	return deleteAll(ctx, repo.db, &model.UserModel{}, "failed to delete users")
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:               data.ID,
		Name:             data.Name,
		Email:            data.Email,
		LoginProvider:    entity.LoginProvider(data.LoginProvider),
		RegistrationDate: data.RegistrationDate,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.PasswordHash != nil {
		user.PasswordHash = *data.PasswordHash
	}
	if data.FederatedID != nil {
		user.FederatedID = *data.FederatedID
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		Name:             data.Name,
		Email:            entity.NormalizeEmail(data.Email),
		PasswordHash:     nullableString(data.PasswordHash),
		LoginProvider:    string(data.LoginProvider),
		FederatedID:      nullableString(data.FederatedID),
		RegistrationDate: data.RegistrationDate,
		UpdatedAt:        data.UpdatedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
