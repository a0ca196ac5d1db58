package events

import "time"

const LeaveDecidedTopic = "hr.leave.decided"

const (
	LeaveApprovedEventType = "leave_approved"
	LeaveRejectedEventType = "leave_rejected"
)

// LeaveDecidedEvent is written to the outbox in the same transaction as the
// status change, so downstream consumers never see a decision that was rolled
// back.
type LeaveDecidedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	LeaveRequestID  string    `json:"leave_request_id"`
	EmployeeID      string    `json:"employee_id"`
	AccountEmail    string    `json:"account_email"`
	Days            int       `json:"days"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	DecidedBy       string    `json:"decided_by"`
	OccurredAt      time.Time `json:"occurred_at"`
}
