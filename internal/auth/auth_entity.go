package auth

import "time"

// Account is the identity record. Email is the natural key; accounts are never
// hard-deleted.
type Account struct {
	Email     string `gorm:"type:varchar(255);primaryKey"`
	Password  string `gorm:"type:varchar(255);not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	IsStaff   bool   `gorm:"not null;default:false"`
	IsHR      bool   `gorm:"not null;default:false"`
	FirstName string `gorm:"type:varchar(30)"`
	LastName  string `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Account) TableName() string {
	return "accounts"
}
