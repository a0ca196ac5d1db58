package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saitej-a/Leave-System/internal/authz"
	employeeerrors "github.com/saitej-a/Leave-System/internal/employee/errors"
	"github.com/saitej-a/Leave-System/internal/events"
	"github.com/saitej-a/Leave-System/internal/messaging/kafka"
	"github.com/saitej-a/Leave-System/internal/shared/contextutil"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, caller authz.Caller, id string) (EmployeeResponse, error)
	GetOwn(ctx context.Context, caller authz.Caller) (EmployeeResponse, error)
	Update(ctx context.Context, caller authz.Caller, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, caller authz.Caller, id string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	authorizer authz.Authorizer
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, authorizer authz.Authorizer, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, authorizer, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	authorizer authz.Authorizer,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		authorizer: authorizer,
		outbox:     outboxRepo,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("user", req.User),
		zap.String("department", req.Department),
	)

	joined, err := parseDate(req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if req.LeaveBalance < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeLeaveBalance
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.AccountExists(ctx, req.User)
	if err != nil {
		s.logger.Error("create employee account lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !exists {
		return EmployeeResponse{}, employeeerrors.ErrAccountNotFound
	}

	taken, err := qtx.ExistsForAccount(ctx, req.User)
	if err != nil {
		s.logger.Error("create employee duplicate check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
	}

	empl := &Employee{
		ID:            uuid.New(),
		AccountEmail:  req.User,
		Department:    req.Department,
		Position:      req.Position,
		DateOfJoining: joined,
		LeaveBalance:  req.LeaveBalance,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:    "employee_created",
			RequestID:    rid,
			EmployeeID:   empl.ID.String(),
			AccountEmail: empl.AccountEmail,
			Department:   empl.Department,
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal employee_created event failed", zap.Error(err))
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("user", empl.AccountEmail),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, caller authz.Caller, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if !s.authorizer.CanActOn(caller, empl) {
		return EmployeeResponse{}, employeeerrors.ErrNotYourEmployee
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetOwn(ctx context.Context, caller authz.Caller) (EmployeeResponse, error) {
	empl, err := s.repo.FindByAccount(ctx, caller.Email)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, caller authz.Caller, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	// Directory edits, including balance corrections, are an HR privilege.
	if !caller.IsHR {
		return EmployeeResponse{}, employeeerrors.ErrOnlyHRCanUpdate
	}

	s.logger.Debug("update employee requested",
		zap.String("employee_id", id),
		zap.String("caller", caller.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Department != nil {
		empl.Department = *req.Department
	}
	if req.Position != nil {
		empl.Position = *req.Position
	}
	if req.DateOfJoining != nil {
		joined, err := parseDate(*req.DateOfJoining)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.DateOfJoining = joined
	}
	if req.LeaveBalance != nil {
		if *req.LeaveBalance < 0 {
			return EmployeeResponse{}, employeeerrors.ErrNegativeLeaveBalance
		}
		empl.LeaveBalance = *req.LeaveBalance
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, caller authz.Caller, id string) error {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if !s.authorizer.CanActOn(caller, empl) {
		return employeeerrors.ErrNotYourEmployee
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success",
		zap.String("employee_id", id),
		zap.String("caller", caller.Email),
	)
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID.String(),
		User:          e.AccountEmail,
		Department:    e.Department,
		Position:      e.Position,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		LeaveBalance:  e.LeaveBalance,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		resp[i] = mapToResponse(e)
	}
	return resp
}
