package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runTxWith(tx domain.RequestTx) func(ctx context.Context, fn func(ctx context.Context, tx domain.RequestTx) error) error {
	return func(ctx context.Context, fn func(ctx context.Context, tx domain.RequestTx) error) error {
		return fn(ctx, tx)
	}
}

func TestCreateRequestStorageFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := domain.NewMockRepository(t)
	mockTx := domain.NewMockRequestTx(t)
	storageErr := errors.New("disk I/O error")

	mockRepo.EXPECT().
		RunInTransaction(mock.Anything, mock.Anything).
		RunAndReturn(runTxWith(mockTx)).
		Once()
	mockTx.EXPECT().
		InsertRequest(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *domain.Request) {
			assert.Equal(t, domain.StatusPending, req.Status)
			assert.Equal(t, "u1", req.RequesterID)
		}).
		Return(nil).
		Once()
	mockTx.EXPECT().
		AppendAuditLog(mock.Anything, mock.Anything).
		Return(storageErr).
		Once()

	svc, _ := newTestService(t, mockRepo)
	_, err := svc.CreateRequest(ctx, &domain.Claims{UID: "u1", Role: domain.RoleUser}, domain.CreateRequestInput{
		Application: "billing",
		Environment: "prod",
		GroupRole:   "reader",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.ErrorIs(t, err, domain.ErrStorage)
	status, message := errs.StatusOf(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, errs.ServerErrorMessage, message)
}

func TestTransitionStorageFailureIsServerError(t *testing.T) {
	ctx := context.Background()
	mockRepo := domain.NewMockRepository(t)
	mockTx := domain.NewMockRequestTx(t)
	current := &domain.Request{
		ID:          "r1",
		RequesterID: "u1",
		Notes:       "need access",
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	mockRepo.EXPECT().
		RunInTransaction(mock.Anything, mock.Anything).
		RunAndReturn(runTxWith(mockTx)).
		Once()
	mockTx.EXPECT().GetRequest(mock.Anything, "r1").Return(current, nil).Once()
	mockTx.EXPECT().
		UpdateRequestStatus(mock.Anything, mock.Anything, domain.StatusPending).
		Run(func(_ context.Context, req *domain.Request, _ domain.RequestStatus) {
			assert.Equal(t, domain.StatusApproved, req.Status)
			assert.Equal(t, "need access\nok", req.Notes)
		}).
		Return(nil).
		Once()
	mockTx.EXPECT().
		AppendAuditLog(mock.Anything, mock.Anything).
		Run(func(_ context.Context, log *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionApprove, log.Action)
			assert.Equal(t, "a1", log.PerformedBy)
		}).
		Return(errors.New("write failed")).
		Once()

	svc, _ := newTestService(t, mockRepo)
	_, err := svc.ApproveRequest(ctx, &domain.Claims{UID: "a1", Role: domain.RoleAdmin}, "r1", "ok")
	require.Error(t, err)
	status, _ := errs.StatusOf(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, domain.StatusPending, current.Status, "the stored snapshot is not mutated")
}

func TestTransitionLostRaceIsConflict(t *testing.T) {
	ctx := context.Background()
	mockRepo := domain.NewMockRepository(t)
	mockTx := domain.NewMockRequestTx(t)

	mockRepo.EXPECT().
		RunInTransaction(mock.Anything, mock.Anything).
		RunAndReturn(runTxWith(mockTx)).
		Once()
	mockTx.EXPECT().
		GetRequest(mock.Anything, "r1").
		Return(&domain.Request{ID: "r1", Status: domain.StatusPending}, nil).
		Once()
	mockTx.EXPECT().
		UpdateRequestStatus(mock.Anything, mock.Anything, domain.StatusPending).
		Return(domain.ErrStatusConflict).
		Once()

	svc, _ := newTestService(t, mockRepo)
	_, err := svc.RejectRequest(ctx, &domain.Claims{UID: "a1", Role: domain.RoleAdmin}, "r1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	status, _ := errs.StatusOf(err)
	assert.Equal(t, 409, status)
}

func TestListRequestsStorageFailure(t *testing.T) {
	mockRepo := domain.NewMockRepository(t)
	mockRepo.EXPECT().
		QueryRequests(mock.Anything, mock.Anything).
		Return(errors.New("connection reset")).
		Once()

	svc, _ := newTestService(t, mockRepo)
	_, err := svc.ListMyRequests(context.Background(), &domain.Claims{UID: "u1", Role: domain.RoleUser})
	status, _ := errs.StatusOf(err)
	assert.Equal(t, 500, status)
}

func TestRequesterEmailsAreCached(t *testing.T) {
	ctx := context.Background()
	mockRepo := domain.NewMockRepository(t)
	mockRepo.EXPECT().
		QueryRequests(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryRequestOptions) {
			assert.Equal(t, []string{"u1"}, opt.RequesterIDs)
			opt.Result = []*domain.Request{{ID: "r1", RequesterID: "u1", Status: domain.StatusPending}}
		}).
		Return(nil).
		Twice()
	mockRepo.EXPECT().
		QueryUsers(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryUserOptions) {
			assert.Equal(t, []string{"u1"}, opt.IDs)
			opt.Result = []*domain.User{{ID: "u1", Email: "u1@example.com"}}
		}).
		Return(nil).
		Once()

	svc, _ := newTestService(t, mockRepo)
	operator := &domain.Claims{UID: "u1", Role: domain.RoleUser}
	for i := 0; i < 2; i++ {
		reqs, err := svc.ListMyRequests(ctx, operator)
		require.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, "u1@example.com", reqs[0].RequesterEmail)
	}
}
