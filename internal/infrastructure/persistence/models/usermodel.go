package models

import "github.com/supporthub/supporthub/internal/shared/constants"

// UserModel holds the identities bearer tokens refer to. Credentials live
// with the external identity provider.
type UserModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Role      string `gorm:"size:20;not null;default:agent"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
