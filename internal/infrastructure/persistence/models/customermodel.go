package models

import "github.com/supporthub/supporthub/internal/shared/constants"

// CustomerModel stores empty email/phone as NULL so the unique indexes
// only bind customers that actually share an address.
type CustomerModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:200;not null"`
	Email     *string `gorm:"size:255;uniqueIndex"`
	Phone     *string `gorm:"size:50;uniqueIndex"`
	IsVIP     bool    `gorm:"column:is_vip;not null;default:false"`
	CreatedAt int64   `gorm:"autoCreateTime:false;not null"`
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
