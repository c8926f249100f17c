package mappers

import (
	"fmt"

	"campusfix/internal/domain/user"
	"campusfix/internal/infrastructure/persistence/models"
	"campusfix/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and
// persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role := authorization.UserRole(model.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role in user (id=%d): %s", model.ID, model.Role)
	}

	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		role,
		millisToTime(model.CreatedAt),
	)
}
