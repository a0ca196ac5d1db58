package leave

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// PatchLeaveRequest carries both branches of the partial update: HR decides
// with status/rejection_reason, the owner revises dates and reason. Pointer
// fields distinguish "absent" from "empty".
type PatchLeaveRequest struct {
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	Reason          *string `json:"reason"`
	Status          *string `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Employee        string  `json:"employee,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            int     `json:"days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
