package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The unique index on email is the storage-layer
// hardening behind the service's check-then-act uniqueness enforcement.
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	FullName       string    `gorm:"type:varchar(100)"`
	PhoneNumber    string    `gorm:"type:varchar(32)"`
	Username       string    `gorm:"type:varchar(100)"`
	ProfilePicture string    `gorm:"type:text"`
	Role           string    `gorm:"type:varchar(16);not null;default:'user'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
