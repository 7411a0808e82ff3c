package mappers

import (
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/biztime"
)

type CustomerMapper interface {
	ToModel(c *customer.Customer) *models.CustomerModel
	ToDomain(model *models.CustomerModel) *customer.Customer
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     nullIfEmpty(c.Email()),
		Phone:     nullIfEmpty(c.Phone()),
		IsVIP:     c.IsVIP(),
		CreatedAt: biztime.ToMillis(c.CreatedAt()),
	}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) *customer.Customer {
	if model == nil {
		return nil
	}
	return customer.ReconstructCustomer(
		model.ID,
		model.Name,
		derefString(model.Email),
		derefString(model.Phone),
		model.IsVIP,
		biztime.FromMillis(model.CreatedAt),
	)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
