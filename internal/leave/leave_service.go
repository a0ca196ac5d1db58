package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saitej-a/Leave-System/internal/authz"
	"github.com/saitej-a/Leave-System/internal/employee"
	"github.com/saitej-a/Leave-System/internal/events"
	leaveerrors "github.com/saitej-a/Leave-System/internal/leave/errors"
	"github.com/saitej-a/Leave-System/internal/messaging/kafka"
	"github.com/saitej-a/Leave-System/internal/shared/contextutil"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller authz.Caller, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, caller authz.Caller) ([]LeaveResponse, error)
	GetByID(ctx context.Context, caller authz.Caller, id string) (LeaveResponse, error)
	PartialUpdate(ctx context.Context, caller authz.Caller, id string, req PatchLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, caller authz.Caller, id string) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	authorizer   authz.Authorizer
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	authorizer authz.Authorizer,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, employeeRepo, authorizer, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	authorizer authz.Authorizer,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		authorizer:   authorizer,
		outbox:       outboxRepo,
		logger:       l,
	}
}

// dayCount is inclusive of both endpoints.
func dayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func (s *service) resolveEmployee(ctx context.Context, caller authz.Caller) (*employee.Employee, error) {
	empl, err := s.employeeRepo.FindByAccount(ctx, caller.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrNotAnEmployee
		}
		return nil, err
	}
	return empl, nil
}

func (s *service) Create(ctx context.Context, caller authz.Caller, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("caller", caller.Email),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	empl, err := s.resolveEmployee(ctx, caller)
	if err != nil {
		return LeaveResponse{}, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	days := dayCount(startDate, endDate)
	if err := validateRequest(days, startDate, empl); err != nil {
		s.logger.Warn("create leave validation failed",
			zap.String("caller", caller.Email),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: empl.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", empl.ID.String()),
		zap.Int("days", days),
	)

	l.Employee = empl
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, caller authz.Caller) ([]LeaveResponse, error) {
	if caller.IsHR {
		requests, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(requests), nil
	}

	empl, err := s.resolveEmployee(ctx, caller)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.FindAllByEmployee(ctx, empl.ID.String())
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetByID(ctx context.Context, caller authz.Caller, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if !s.authorizer.CanActOn(caller, l) {
		return LeaveResponse{}, leaveerrors.ErrNotYourLeaveRequest
	}

	return mapToResponse(*l), nil
}

func (s *service) PartialUpdate(ctx context.Context, caller authz.Caller, id string, req PatchLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("partial update leave requested",
		zap.String("leave_id", id),
		zap.String("caller", caller.Email),
		zap.Bool("is_hr", caller.IsHR),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrUpdateNotPending
	}

	if caller.IsHR {
		return s.decide(ctx, tx, qtx, caller, l, req)
	}
	return s.revise(ctx, tx, qtx, caller, l, req)
}

// decide is the HR branch: only status and rejection_reason are honored.
func (s *service) decide(
	ctx context.Context,
	tx *sql.Tx,
	qtx Repository,
	caller authz.Caller,
	l *LeaveRequest,
	req PatchLeaveRequest,
) (LeaveResponse, error) {
	if req.Status == nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}

	switch *req.Status {
	case StatusApproved:
		// Guard and debit are one statement; a concurrent approval of an
		// overlapping request cannot push the balance negative.
		debited, err := s.employeeRepo.WithTx(tx).DebitBalance(ctx, l.EmployeeID.String(), l.Days)
		if err != nil {
			s.logger.Error("approve leave debit failed",
				zap.String("leave_id", l.ID.String()),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
		if !debited {
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
		}

		if err := qtx.SetDecision(ctx, l.ID.String(), StatusApproved, nil); err != nil {
			return LeaveResponse{}, err
		}
		l.Status = StatusApproved
		l.RejectionReason = nil

	case StatusRejected:
		reason := ""
		if req.RejectionReason != nil {
			reason = *req.RejectionReason
		}
		if err := qtx.SetDecision(ctx, l.ID.String(), StatusRejected, &reason); err != nil {
			return LeaveResponse{}, err
		}
		l.Status = StatusRejected
		l.RejectionReason = &reason

	default:
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}

	if s.outbox != nil {
		if err := s.queueDecisionEvent(ctx, tx, caller, l); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decision recorded",
		zap.String("leave_id", l.ID.String()),
		zap.String("status", l.Status),
		zap.String("decided_by", caller.Email),
	)

	return mapToResponse(*l), nil
}

// revise is the self-service branch: the owner may move the dates or reword
// the reason while the request is still Pending, never touch the status.
func (s *service) revise(
	ctx context.Context,
	tx *sql.Tx,
	qtx Repository,
	caller authz.Caller,
	l *LeaveRequest,
	req PatchLeaveRequest,
) (LeaveResponse, error) {
	if !s.authorizer.CanActOn(caller, l) {
		return LeaveResponse{}, leaveerrors.ErrNotYourLeaveRequest
	}
	if req.Status != nil {
		return LeaveResponse{}, leaveerrors.ErrEmployeeCannotSetStatus
	}

	startDate := l.StartDate
	endDate := l.EndDate
	var err error

	if req.StartDate != nil {
		startDate, err = parseDate(*req.StartDate)
		if err != nil {
			return LeaveResponse{}, err
		}
	}
	if req.EndDate != nil {
		endDate, err = parseDate(*req.EndDate)
		if err != nil {
			return LeaveResponse{}, err
		}
	}

	days := dayCount(startDate, endDate)
	if err := validateRequest(days, startDate, l.Employee); err != nil {
		return LeaveResponse{}, err
	}

	l.StartDate = startDate
	l.EndDate = endDate
	l.Days = days
	if req.Reason != nil {
		l.Reason = *req.Reason
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("revise leave persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave revised",
		zap.String("leave_id", l.ID.String()),
		zap.Int("days", days),
	)

	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, caller authz.Caller, id string) error {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}

	if !s.authorizer.CanActOn(caller, l) {
		return leaveerrors.ErrDeleteForbidden
	}
	if l.Status != StatusPending {
		return leaveerrors.ErrDeleteNotPending
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete leave failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("leave deleted",
		zap.String("leave_id", id),
		zap.String("caller", caller.Email),
	)
	return nil
}

func (s *service) queueDecisionEvent(ctx context.Context, tx *sql.Tx, caller authz.Caller, l *LeaveRequest) error {
	eventType := events.LeaveApprovedEventType
	rejection := ""
	if l.Status == StatusRejected {
		eventType = events.LeaveRejectedEventType
		if l.RejectionReason != nil {
			rejection = *l.RejectionReason
		}
	}

	event := events.LeaveDecidedEvent{
		EventType:       eventType,
		RequestID:       contextutil.GetRequestID(ctx),
		LeaveRequestID:  l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		AccountEmail:    l.OwnerEmail(),
		Days:            l.Days,
		RejectionReason: rejection,
		DecidedBy:       caller.Email,
		OccurredAt:      time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "leave_request",
		AggregateID:   l.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func validateRequest(days int, startDate time.Time, empl *employee.Employee) error {
	if days < 1 {
		return leaveerrors.ErrInvalidDateRange
	}
	if empl.LeaveBalance < days {
		return leaveerrors.ErrInsufficientBalance
	}
	if startDate.Before(empl.DateOfJoining) {
		return leaveerrors.ErrStartBeforeJoining
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Days:       l.Days,
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  l.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.Employee = l.Employee.AccountEmail
	}
	resp.RejectionReason = l.RejectionReason
	return resp
}

func mapToListResponse(requests []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(requests))
	for i, l := range requests {
		resp[i] = mapToResponse(l)
	}
	return resp
}
