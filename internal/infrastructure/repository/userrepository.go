package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campusfix/internal/domain/user"
	"campusfix/internal/infrastructure/persistence/mappers"
	"campusfix/internal/infrastructure/persistence/models"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/db"
	"campusfix/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewValidationError("email already registered")
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ListTechnicians(ctx context.Context) ([]*user.User, error) {
	var modelList []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("role = ?", authorization.RoleTechnician.String()).
		Order("name ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	technicians := make([]*user.User, 0, len(modelList))
	for i := range modelList {
		u, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		technicians = append(technicians, u)
	}

	return technicians, nil
}
