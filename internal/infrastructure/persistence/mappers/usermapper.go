package mappers

import (
	"github.com/supporthub/supporthub/internal/domain/user"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) *user.User
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:       u.ID(),
		Name:     u.Name(),
		Email:    u.Email(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		authorization.ParseUserRole(model.Role),
		model.IsActive,
	)
}
