package employee

type CreateEmployeeRequest struct {
	User          string `json:"user" binding:"required,email"`
	Department    string `json:"department" binding:"required"`
	Position      string `json:"position" binding:"required"`
	DateOfJoining string `json:"date_of_joining" binding:"required"`
	LeaveBalance  int    `json:"leave_balance"`
}

// UpdateEmployeeRequest is a partial patch: absent fields stay untouched.
type UpdateEmployeeRequest struct {
	Department    *string `json:"department"`
	Position      *string `json:"position"`
	DateOfJoining *string `json:"date_of_joining"`
	LeaveBalance  *int    `json:"leave_balance"`
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	User          string `json:"user"`
	Department    string `json:"department"`
	Position      string `json:"position"`
	DateOfJoining string `json:"date_of_joining"`
	LeaveBalance  int    `json:"leave_balance"`
}
