package events

import "time"

const EmployeeCreatedTopic = "hr.employee.created"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	AccountEmail string    `json:"account_email"`
	Department   string    `json:"department"`
	OccurredAt   time.Time `json:"occurred_at"`
}
