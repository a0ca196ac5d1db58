package employee

import (
	"time"

	"github.com/google/uuid"

	"github.com/saitej-a/Leave-System/internal/authz"
)

// Employee links an account to job metadata and the remaining leave balance.
// At most one record exists per account.
type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountEmail  string    `gorm:"type:varchar(255);uniqueIndex:uq_employee_account;not null"`
	Department    string    `gorm:"type:varchar(100);not null"`
	Position      string    `gorm:"type:varchar(100);not null"`
	DateOfJoining time.Time `gorm:"type:date;not null"`
	LeaveBalance  int       `gorm:"type:int;not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Employee) ResourceKind() string {
	return authz.KindEmployee
}

func (e Employee) OwnerEmail() string {
	return e.AccountEmail
}
