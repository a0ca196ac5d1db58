package leave

import (
	"time"

	"github.com/google/uuid"

	"github.com/saitej-a/Leave-System/internal/authz"
	"github.com/saitej-a/Leave-System/internal/employee"
)

// LeaveRequest is one entry in the leave ledger. Days is computed server-side
// and the status only ever moves out of Pending.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Days      int       `gorm:"type:int;not null"`
	Reason    string    `gorm:"type:text;not null"`

	Status          string  `gorm:"type:varchar(20);not null;default:'Pending';index:idx_leave_requests_status"`
	RejectionReason *string `gorm:"type:text"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) ResourceKind() string {
	return authz.KindLeaveRequest
}

// OwnerEmail requires the Employee association to be loaded.
func (l LeaveRequest) OwnerEmail() string {
	if l.Employee == nil {
		return ""
	}
	return l.Employee.AccountEmail
}
