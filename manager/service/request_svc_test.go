package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/errs"
	"github.com/accessdesk/api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

func TestRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}

type RequestServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	svc   *Service
	repo  domain.Repository
	admin *domain.Claims
	userA *domain.Claims
	userB *domain.Claims
}

func (suite *RequestServiceTestSuite) SetupSuite() {
	logger.InitLogger()
	suite.ctx = context.Background()
}

func (suite *RequestServiceTestSuite) SetupTest() {
	suite.repo = newSQLiteRepo(suite.T())
	suite.svc, _ = newTestService(suite.T(), suite.repo)

	seed := func(email string, role domain.Role) *domain.Claims {
		user, err := suite.svc.SeedUser(suite.ctx, domain.CreateUserOptions{Email: email, Password: "Secret@123", Role: role})
		suite.Require().NoError(err, "seed %s", email)
		return claimsOf(user)
	}
	suite.admin = seed("admin@google.com", domain.RoleAdmin)
	suite.userA = seed("a@example.com", domain.RoleUser)
	suite.userB = seed("b@example.com", domain.RoleUser)
}

func (suite *RequestServiceTestSuite) create(operator *domain.Claims, application string) *domain.Request {
	req, err := suite.svc.CreateRequest(suite.ctx, operator, domain.CreateRequestInput{
		Application: application,
		Environment: "prod",
		GroupRole:   "reader",
		Notes:       "need access",
	})
	suite.Require().NoError(err, "create request")
	return req
}

func (suite *RequestServiceTestSuite) auditActions(requestID string) []domain.AuditAction {
	logs, err := suite.svc.GetAuditTrail(suite.ctx, suite.admin, requestID)
	suite.Require().NoError(err)
	actions := make([]domain.AuditAction, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	return actions
}

func (suite *RequestServiceTestSuite) assertStatus(err error, status int) {
	suite.Require().Error(err)
	code, _ := errs.StatusOf(err)
	suite.Equal(status, code, err.Error())
}

func (suite *RequestServiceTestSuite) TestCreateRequest() {
	req := suite.create(suite.userA, "billing")
	suite.Equal(domain.StatusPending, req.Status)
	suite.Equal(suite.userA.UID, req.RequesterID)
	suite.Equal("a@example.com", req.RequesterEmail)
	suite.Nil(req.ExternalJobID)
	suite.Equal(req.CreatedAt, req.UpdatedAt)

	logs, err := suite.svc.GetAuditTrail(suite.ctx, suite.userA, req.ID)
	suite.Require().NoError(err)
	suite.Require().Len(logs, 1)
	suite.Equal(domain.AuditActionCreate, logs[0].Action)
	suite.Equal(suite.userA.UID, logs[0].PerformedBy)
	details, ok := logs[0].Details.(domain.CreateDetails)
	suite.Require().True(ok)
	suite.Equal(req.ID, details.Request.ID)
	suite.Equal("billing", details.Request.Application)
	suite.Equal(domain.StatusPending, details.Request.Status)
	suite.Equal(1.0, testutil.ToFloat64(suite.svc.metrics.requestsCreated))
}

func (suite *RequestServiceTestSuite) TestCreateRequestValidation() {
	_, err := suite.svc.CreateRequest(suite.ctx, suite.userA, domain.CreateRequestInput{Application: "  ", Project: "p"})
	suite.assertStatus(err, 400)
	suite.ErrorIs(err, domain.ErrValidation)
	httpErr, ok := errs.IsHTTPStatusError(err)
	suite.Require().True(ok)
	suite.Contains(httpErr.Message, "application is required")
	suite.Contains(httpErr.Message, "environment is required")
	suite.Contains(httpErr.Message, "group_role is required")

	all, err := suite.svc.ListAllRequests(suite.ctx, suite.admin, domain.RequestFilter{})
	suite.Require().NoError(err)
	suite.Empty(all, "nothing is persisted on validation failure")
}

func (suite *RequestServiceTestSuite) TestCreateRequestUnauthenticated() {
	_, err := suite.svc.CreateRequest(suite.ctx, nil, domain.CreateRequestInput{Application: "a", Environment: "b", GroupRole: "c"})
	suite.assertStatus(err, 401)
	suite.ErrorIs(err, domain.ErrUnauthenticated)
}

func (suite *RequestServiceTestSuite) TestListMyRequests() {
	first := suite.create(suite.userA, "alpha")
	suite.create(suite.userB, "beta")
	second := suite.create(suite.userA, "gamma")

	mine, err := suite.svc.ListMyRequests(suite.ctx, suite.userA)
	suite.Require().NoError(err)
	suite.Require().Len(mine, 2)
	suite.Equal(second.ID, mine[0].ID, "newest first")
	suite.Equal(first.ID, mine[1].ID)
	for _, r := range mine {
		suite.Equal("a@example.com", r.RequesterEmail)
	}

	empty, err := suite.svc.ListMyRequests(suite.ctx, suite.admin)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *RequestServiceTestSuite) TestListAllRequests() {
	alpha := suite.create(suite.userA, "alpha")
	beta := suite.create(suite.userB, "beta")
	_, err := suite.svc.ApproveRequest(suite.ctx, suite.admin, beta.ID, "")
	suite.Require().NoError(err)

	_, err = suite.svc.ListAllRequests(suite.ctx, suite.userA, domain.RequestFilter{})
	suite.assertStatus(err, 403)

	all, err := suite.svc.ListAllRequests(suite.ctx, suite.admin, domain.RequestFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(beta.ID, all[0].ID)
	suite.Equal("b@example.com", all[0].RequesterEmail)

	pending, err := suite.svc.ListAllRequests(suite.ctx, suite.admin, domain.RequestFilter{Status: domain.StatusPending})
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(alpha.ID, pending[0].ID)

	byEmail, err := suite.svc.ListAllRequests(suite.ctx, suite.admin, domain.RequestFilter{Search: "B@EXAMPLE"})
	suite.Require().NoError(err)
	suite.Require().Len(byEmail, 1)
	suite.Equal(beta.ID, byEmail[0].ID)
}

func (suite *RequestServiceTestSuite) TestGetRequestVisibility() {
	req := suite.create(suite.userA, "alpha")

	got, err := suite.svc.GetRequest(suite.ctx, suite.userA, req.ID)
	suite.Require().NoError(err)
	suite.Equal(req.ID, got.ID)
	suite.Equal("a@example.com", got.RequesterEmail)

	_, err = suite.svc.GetRequest(suite.ctx, suite.admin, req.ID)
	suite.NoError(err)

	_, err = suite.svc.GetRequest(suite.ctx, suite.userB, req.ID)
	suite.assertStatus(err, 403)
	_, err = suite.svc.GetAuditTrail(suite.ctx, suite.userB, req.ID)
	suite.assertStatus(err, 403)

	_, err = suite.svc.GetRequest(suite.ctx, suite.userB, "missing")
	suite.assertStatus(err, 404)
	_, err = suite.svc.GetAuditTrail(suite.ctx, suite.admin, "missing")
	suite.assertStatus(err, 404)
}

func (suite *RequestServiceTestSuite) TestApproveRequest() {
	req := suite.create(suite.userA, "alpha")

	approved, err := suite.svc.ApproveRequest(suite.ctx, suite.admin, req.ID, "ok")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, approved.Status)
	suite.Equal("need access\nok", approved.Notes)
	suite.True(!approved.UpdatedAt.Before(req.UpdatedAt))
	suite.True(req.CreatedAt.Equal(approved.CreatedAt))

	suite.Equal([]domain.AuditAction{domain.AuditActionApprove, domain.AuditActionCreate}, suite.auditActions(req.ID))
	logs, err := suite.svc.GetAuditTrail(suite.ctx, suite.userA, req.ID)
	suite.Require().NoError(err)
	suite.Equal(suite.admin.UID, logs[0].PerformedBy)
	suite.Equal(domain.ReviewDetails{Notes: "ok"}, logs[0].Details)

	stored, err := suite.svc.GetRequest(suite.ctx, suite.userA, req.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, stored.Status)
	suite.Equal(1.0, testutil.ToFloat64(suite.svc.metrics.transitions.WithLabelValues("APPROVE", resultApplied)))
}

func (suite *RequestServiceTestSuite) TestRejectWithoutNotesKeepsNotes() {
	req := suite.create(suite.userA, "alpha")
	rejected, err := suite.svc.RejectRequest(suite.ctx, suite.admin, req.ID, "")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, rejected.Status)
	suite.Equal("need access", rejected.Notes)
	suite.Equal([]domain.AuditAction{domain.AuditActionReject, domain.AuditActionCreate}, suite.auditActions(req.ID))
}

func (suite *RequestServiceTestSuite) TestReviewNotesAreTrimmed() {
	req := suite.create(suite.userA, "alpha")
	approved, err := suite.svc.ApproveRequest(suite.ctx, suite.admin, req.ID, "   ")
	suite.Require().NoError(err)
	suite.Equal("need access", approved.Notes)

	logs, err := suite.svc.GetAuditTrail(suite.ctx, suite.admin, req.ID)
	suite.Require().NoError(err)
	suite.Require().Len(logs, 2)
	suite.Equal(domain.ReviewDetails{Notes: ""}, logs[0].Details)

	other := suite.create(suite.userA, "beta")
	rejected, err := suite.svc.RejectRequest(suite.ctx, suite.admin, other.ID, "  no access \n")
	suite.Require().NoError(err)
	suite.Equal("need access\nno access", rejected.Notes)
	logs, err = suite.svc.GetAuditTrail(suite.ctx, suite.admin, other.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.ReviewDetails{Notes: "no access"}, logs[0].Details)
}

func (suite *RequestServiceTestSuite) TestReviewNotesMaxLength() {
	req := suite.create(suite.userA, "alpha")

	_, err := suite.svc.ApproveRequest(suite.ctx, suite.admin, req.ID, strings.Repeat("x", 4001))
	suite.assertStatus(err, 400)
	suite.ErrorIs(err, domain.ErrValidation)
	httpErr, ok := errs.IsHTTPStatusError(err)
	suite.Require().True(ok)
	suite.Contains(httpErr.Message, "notes must be at most 4000 characters")

	stored, err := suite.svc.GetRequest(suite.ctx, suite.admin, req.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, stored.Status)
	suite.Equal("need access", stored.Notes)
	suite.Equal([]domain.AuditAction{domain.AuditActionCreate}, suite.auditActions(req.ID))

	// Surrounding whitespace does not count towards the limit.
	approved, err := suite.svc.ApproveRequest(suite.ctx, suite.admin, req.ID, "  "+strings.Repeat("x", 4000)+"  ")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, approved.Status)
}

func (suite *RequestServiceTestSuite) TestReadsAreRepeatable() {
	req := suite.create(suite.userA, "alpha")
	suite.create(suite.userA, "beta")
	_, err := suite.svc.ApproveRequest(suite.ctx, suite.admin, req.ID, "ok")
	suite.Require().NoError(err)

	firstList, err := suite.svc.ListMyRequests(suite.ctx, suite.userA)
	suite.Require().NoError(err)
	secondList, err := suite.svc.ListMyRequests(suite.ctx, suite.userA)
	suite.Require().NoError(err)
	suite.Require().Len(firstList, 2)
	suite.Equal(firstList, secondList)

	firstGet, err := suite.svc.GetRequest(suite.ctx, suite.userA, req.ID)
	suite.Require().NoError(err)
	secondGet, err := suite.svc.GetRequest(suite.ctx, suite.userA, req.ID)
	suite.Require().NoError(err)
	suite.Equal(firstGet, secondGet)

	firstTrail := suite.auditActions(req.ID)
	suite.Equal(firstTrail, suite.auditActions(req.ID))
	suite.Equal(1.0, testutil.ToFloat64(suite.svc.metrics.transitions.WithLabelValues("APPROVE", resultApplied)))
}

func (suite *RequestServiceTestSuite) TestTerminalStatesRejectFurtherReviews() {
	req := suite.create(suite.userA, "alpha")
	_, err := suite.svc.ApproveRequest(suite.ctx, suite.admin, req.ID, "ok")
	suite.Require().NoError(err)

	_, err = suite.svc.RejectRequest(suite.ctx, suite.admin, req.ID, "too late")
	suite.assertStatus(err, 409)
	suite.ErrorIs(err, domain.ErrInvalidTransition)

	_, err = suite.svc.ApproveRequest(suite.ctx, suite.admin, req.ID, "again")
	suite.assertStatus(err, 409)

	stored, err := suite.svc.GetRequest(suite.ctx, suite.admin, req.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, stored.Status)
	suite.Equal("need access\nok", stored.Notes)
	suite.Equal([]domain.AuditAction{domain.AuditActionApprove, domain.AuditActionCreate}, suite.auditActions(req.ID))
}

func (suite *RequestServiceTestSuite) TestReviewRequiresAdmin() {
	req := suite.create(suite.userA, "alpha")
	_, err := suite.svc.ApproveRequest(suite.ctx, suite.userA, req.ID, "self approve")
	suite.assertStatus(err, 403)
	_, err = suite.svc.RejectRequest(suite.ctx, suite.userB, req.ID, "")
	suite.assertStatus(err, 403)

	suite.Equal([]domain.AuditAction{domain.AuditActionCreate}, suite.auditActions(req.ID))
}

func (suite *RequestServiceTestSuite) TestReviewMissingRequest() {
	_, err := suite.svc.ApproveRequest(suite.ctx, suite.admin, "missing", "")
	suite.assertStatus(err, 404)
}

func (suite *RequestServiceTestSuite) TestConcurrentReviewsApplyOnce() {
	req := suite.create(suite.userA, "alpha")

	const workers = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		applied   int
		conflicts int
		others    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = suite.svc.ApproveRequest(suite.ctx, suite.admin, req.ID, "approve")
			} else {
				_, err = suite.svc.RejectRequest(suite.ctx, suite.admin, req.ID, "reject")
			}
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				applied++
				return
			}
			if code, _ := errs.StatusOf(err); code == 409 {
				conflicts++
				return
			}
			others = append(others, err)
		}(i)
	}
	wg.Wait()

	suite.Empty(others)
	suite.Equal(1, applied)
	suite.Equal(workers-1, conflicts)
	suite.Len(suite.auditActions(req.ID), 2)
}
