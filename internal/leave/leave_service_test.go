package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/saitej-a/Leave-System/internal/authz"
	"github.com/saitej-a/Leave-System/internal/employee"
	"github.com/saitej-a/Leave-System/internal/leave"
	leaveerrors "github.com/saitej-a/Leave-System/internal/leave/errors"
	"github.com/saitej-a/Leave-System/internal/messaging/kafka"
)

type fakeLeaveRepository struct {
	withTxFn            func(tx *sql.Tx) leave.Repository
	createFn            func(ctx context.Context, l *leave.LeaveRequest) error
	findAllFn           func(ctx context.Context) ([]leave.LeaveRequest, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error)
	findByIDFn          func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	updateFn            func(ctx context.Context, l *leave.LeaveRequest) error
	deleteFn            func(ctx context.Context, id string) error
	setDecisionFn       func(ctx context.Context, id, status string, rejectionReason *string) error
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.LeaveRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeLeaveRepository) SetDecision(ctx context.Context, id, status string, rejectionReason *string) error {
	if f.setDecisionFn != nil {
		return f.setDecisionFn(ctx, id, status, rejectionReason)
	}
	return nil
}

type fakeEmployeeRepository struct {
	employee.Repository

	findByAccountFn func(ctx context.Context, email string) (*employee.Employee, error)
	debitBalanceFn  func(ctx context.Context, employeeID string, days int) (bool, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	return f
}

func (f *fakeEmployeeRepository) FindByAccount(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByAccountFn != nil {
		return f.findByAccountFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) DebitBalance(ctx context.Context, employeeID string, days int) (bool, error) {
	if f.debitBalanceFn != nil {
		return f.debitBalanceFn(ctx, employeeID, days)
	}
	return true, nil
}

type fakeAuthorizer struct{}

func (fakeAuthorizer) Allow(caller authz.Caller, resource, action string) (bool, error) {
	return true, nil
}

func (fakeAuthorizer) CanActOn(caller authz.Caller, res authz.Resource) bool {
	return caller.IsHR || res.OwnerEmail() == caller.Email
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type leaveServiceDeps struct {
	db           *sql.DB
	sqlMock      sqlmock.Sqlmock
	service      leave.Service
	repo         *fakeLeaveRepository
	employeeRepo *fakeEmployeeRepository
	outbox       *fakeOutboxRepository
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	employeeRepo := &fakeEmployeeRepository{}
	outbox := &fakeOutboxRepository{}
	svc := leave.NewServiceWithOutbox(db, repo, employeeRepo, fakeAuthorizer{}, outbox)

	return &leaveServiceDeps{
		db:           db,
		sqlMock:      sqlMock,
		service:      svc,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func newEmployee(email string, balance int) *employee.Employee {
	return &employee.Employee{
		ID:            uuid.New(),
		AccountEmail:  email,
		Department:    "Engineering",
		Position:      "Developer",
		DateOfJoining: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaveBalance:  balance,
	}
}

func pendingRequest(empl *employee.Employee) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: empl.ID,
		StartDate:  time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 2, 5, 0, 0, 0, 0, time.UTC),
		Days:       5,
		Reason:     "Family event",
		Status:     leave.StatusPending,
		Employee:   empl,
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	caller := authz.Caller{Email: "dev@example.com"}

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee(caller.Email, 20)
		deps.employeeRepo.findByAccountFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			assert.Equal(t, caller.Email, email)
			return empl, nil
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, empl.ID, l.EmployeeID)
			assert.Equal(t, 5, l.Days)
			assert.Equal(t, leave.StatusPending, l.Status)
			return nil
		}

		resp, err := deps.service.Create(ctx, caller, leave.CreateLeaveRequest{
			StartDate: "2023-02-01",
			EndDate:   "2023-02-05",
			Reason:    "Family event",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.Days)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, caller.Email, resp.Employee)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative not an employee", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, caller, leave.CreateLeaveRequest{
			StartDate: "2023-02-01",
			EndDate:   "2023-02-05",
			Reason:    "Family event",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrNotAnEmployee)
	})

	t.Run("negative end before start", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.employeeRepo.findByAccountFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			return newEmployee(caller.Email, 20), nil
		}

		_, err := deps.service.Create(ctx, caller, leave.CreateLeaveRequest{
			StartDate: "2023-02-05",
			EndDate:   "2023-02-01",
			Reason:    "Family event",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("negative insufficient balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.employeeRepo.findByAccountFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			return newEmployee(caller.Email, 3), nil
		}

		_, err := deps.service.Create(ctx, caller, leave.CreateLeaveRequest{
			StartDate: "2023-02-01",
			EndDate:   "2023-02-05",
			Reason:    "Family event",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})

	t.Run("negative start before date of joining", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.employeeRepo.findByAccountFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			return newEmployee(caller.Email, 20), nil
		}

		_, err := deps.service.Create(ctx, caller, leave.CreateLeaveRequest{
			StartDate: "2022-12-25",
			EndDate:   "2023-01-02",
			Reason:    "Family event",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrStartBeforeJoining)
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("hr sees every request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("dev@example.com", 20)
		deps.repo.findAllFn = func(ctx context.Context) ([]leave.LeaveRequest, error) {
			return []leave.LeaveRequest{*pendingRequest(empl)}, nil
		}

		resp, err := deps.service.GetAll(ctx, authz.Caller{Email: "hr@example.com", IsHR: true})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "dev@example.com", resp[0].Employee)
	})

	t.Run("employee sees own requests", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("dev@example.com", 20)
		deps.employeeRepo.findByAccountFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			return empl, nil
		}
		deps.repo.findAllByEmployeeFn = func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
			assert.Equal(t, empl.ID.String(), employeeID)
			return []leave.LeaveRequest{*pendingRequest(empl)}, nil
		}

		resp, err := deps.service.GetAll(ctx, authz.Caller{Email: "dev@example.com"})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("negative caller without employee record", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, authz.Caller{Email: "ghost@example.com"})

		assert.ErrorIs(t, err, leaveerrors.ErrNotAnEmployee)
	})
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success owner", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("dev@example.com", 20)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		resp, err := deps.service.GetByID(ctx, authz.Caller{Email: "dev@example.com"}, l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, l.ID.String(), resp.ID)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, authz.Caller{Email: "dev@example.com"}, uuid.NewString())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("negative someone else's request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("dev@example.com", 20)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return pendingRequest(empl), nil
		}

		_, err := deps.service.GetByID(ctx, authz.Caller{Email: "other@example.com"}, uuid.NewString())

		assert.ErrorIs(t, err, leaveerrors.ErrNotYourLeaveRequest)
	})
}

func TestLeaveService_PartialUpdate_Decide(t *testing.T) {
	ctx := context.Background()
	hr := authz.Caller{Email: "hr@example.com", IsHR: true}

	status := func(s string) *string { return &s }

	t.Run("approve debits the balance once", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("dev@example.com", 20)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		debits := 0
		deps.employeeRepo.debitBalanceFn = func(ctx context.Context, employeeID string, days int) (bool, error) {
			debits++
			assert.Equal(t, empl.ID.String(), employeeID)
			assert.Equal(t, 5, days)
			return true, nil
		}
		deps.repo.setDecisionFn = func(ctx context.Context, id, status string, rejectionReason *string) error {
			assert.Equal(t, l.ID.String(), id)
			assert.Equal(t, leave.StatusApproved, status)
			assert.Nil(t, rejectionReason)
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.PartialUpdate(ctx, hr, l.ID.String(), leave.PatchLeaveRequest{
			Status: status(leave.StatusApproved),
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, debits)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, l.ID.String(), deps.outbox.created[0].AggregateID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative approve with insufficient balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("dev@example.com", 2)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}
		deps.employeeRepo.debitBalanceFn = func(ctx context.Context, employeeID string, days int) (bool, error) {
			return false, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.PartialUpdate(ctx, hr, l.ID.String(), leave.PatchLeaveRequest{
			Status: status(leave.StatusApproved),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.Empty(t, deps.outbox.created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject keeps the balance and records the reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("dev@example.com", 20)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		debits := 0
		deps.employeeRepo.debitBalanceFn = func(ctx context.Context, employeeID string, days int) (bool, error) {
			debits++
			return true, nil
		}
		deps.repo.setDecisionFn = func(ctx context.Context, id, status string, rejectionReason *string) error {
			assert.Equal(t, leave.StatusRejected, status)
			if assert.NotNil(t, rejectionReason) {
				assert.Equal(t, "Team is at capacity", *rejectionReason)
			}
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		reason := "Team is at capacity"
		resp, err := deps.service.PartialUpdate(ctx, hr, l.ID.String(), leave.PatchLeaveRequest{
			Status:          status(leave.StatusRejected),
			RejectionReason: &reason,
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, debits)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Len(t, deps.outbox.created, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid status", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("dev@example.com", 20)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.PartialUpdate(ctx, hr, l.ID.String(), leave.PatchLeaveRequest{
			Status: status("Cancelled"),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
	})

	t.Run("negative already decided", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("dev@example.com", 20)
		l := pendingRequest(empl)
		l.Status = leave.StatusApproved
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.PartialUpdate(ctx, hr, l.ID.String(), leave.PatchLeaveRequest{
			Status: status(leave.StatusApproved),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrUpdateNotPending)
	})
}

func TestLeaveService_PartialUpdate_Revise(t *testing.T) {
	ctx := context.Background()
	owner := authz.Caller{Email: "dev@example.com"}

	strPtr := func(s string) *string { return &s }

	t.Run("owner moves the dates", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee(owner.Email, 20)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}
		deps.repo.updateFn = func(ctx context.Context, updated *leave.LeaveRequest) error {
			assert.Equal(t, 3, updated.Days)
			assert.Equal(t, leave.StatusPending, updated.Status)
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.PartialUpdate(ctx, owner, l.ID.String(), leave.PatchLeaveRequest{
			StartDate: strPtr("2023-03-01"),
			EndDate:   strPtr("2023-03-03"),
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Days)
		assert.Equal(t, "2023-03-01", resp.StartDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative owner sets status", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee(owner.Email, 20)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.PartialUpdate(ctx, owner, l.ID.String(), leave.PatchLeaveRequest{
			Status: strPtr(leave.StatusApproved),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeCannotSetStatus)
	})

	t.Run("negative someone else's request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("other@example.com", 20)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.PartialUpdate(ctx, owner, l.ID.String(), leave.PatchLeaveRequest{
			Reason: strPtr("Changed plans"),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrNotYourLeaveRequest)
	})

	t.Run("negative revised dates exceed balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee(owner.Email, 5)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.PartialUpdate(ctx, owner, l.ID.String(), leave.PatchLeaveRequest{
			EndDate: strPtr("2023-02-20"),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := authz.Caller{Email: "dev@example.com"}

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee(owner.Email, 20)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			deleted = true
			assert.Equal(t, l.ID.String(), id)
			return nil
		}

		err := deps.service.Delete(ctx, owner, l.ID.String())

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("negative not pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee(owner.Email, 20)
		l := pendingRequest(empl)
		l.Status = leave.StatusRejected
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		err := deps.service.Delete(ctx, owner, l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrDeleteNotPending)
	})

	t.Run("negative someone else's request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		empl := newEmployee("other@example.com", 20)
		l := pendingRequest(empl)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		err := deps.service.Delete(ctx, owner, l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrDeleteForbidden)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Delete(ctx, owner, uuid.NewString())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("negative repo error", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return nil, errors.New("db error")
		}

		err := deps.service.Delete(ctx, owner, uuid.NewString())

		assert.Error(t, err)
		assert.NotErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}
