package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/accessdesk/api/config"
	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/pkg/container"
	"github.com/accessdesk/api/pkg/logger"
	"github.com/accessdesk/api/pkg/util"
	"github.com/stretchr/testify/suite"
)

func TestMongoRepositoryTestSuite(t *testing.T) {
	if os.Getenv("SKIP_DOCKER_TESTS") != "" {
		t.Skip("SKIP_DOCKER_TESTS is set")
	}
	suite.Run(t, new(MongoRepositoryTestSuite))
}

type MongoRepositoryTestSuite struct {
	suite.Suite
	ctx            context.Context
	repo           *mongoRepo
	containerBuild *container.ContainerBuilder
	mongoCfg       config.MongoDBConfig
}

func (suite *MongoRepositoryTestSuite) SetupSuite() {
	logger.InitLogger()
	suite.ctx = context.Background()

	builder, err := container.NewContainerBuilder("")
	if err != nil {
		suite.T().Skipf("docker is not available: %v", err)
	}
	if err := builder.Ping(); err != nil {
		suite.T().Skipf("docker is not reachable: %v", err)
	}
	suite.containerBuild = builder

	cfg, err := config.InitManagerConfig("manager_config.test.toml", config.GetAbsPath("config"))
	suite.Require().NoError(err, "load test config")

	conn, err := container.RunMongoContainer(builder, "access_repo_test_mongo", container.MongoContainerConnection{
		Database: cfg.MongoDB.Database,
		Port:     cfg.MongoDB.Port,
	})
	suite.Require().NoError(err, "start mongo container")

	cfg.MongoDB.Host = conn.Host
	cfg.MongoDB.Port = conn.Port
	cfg.MongoDB.ReplicaSet = conn.ReplicaSet
	cfg.MongoDB.DirectConnection = true
	suite.mongoCfg = cfg.MongoDB

	repoInst, err := NewRepository(Params{
		StorageConfig: config.StorageConfig{Driver: config.StorageDriverMongoDB},
		MongoConfig:   cfg.MongoDB,
	})
	suite.Require().NoError(err, "init repository")

	r, ok := repoInst.(*mongoRepo)
	suite.Require().True(ok, "repository type assertion")
	suite.repo = r
}

func (suite *MongoRepositoryTestSuite) TearDownSuite() {
	if suite.repo != nil {
		suite.NoError(suite.repo.Close(suite.ctx))
	}
	if suite.containerBuild != nil {
		err := suite.containerBuild.PruneAll()
		suite.Require().NoError(err, "prune containers")
	}
}

func (suite *MongoRepositoryTestSuite) SetupTest() {
	suite.Require().NotNil(suite.repo, "repository not initialized")
	err := util.MongoCleanup(suite.ctx, suite.repo.client, suite.mongoCfg.Database)
	suite.Require().NoError(err, "cleanup database")
	suite.Require().NoError(RunMigration(suite.repo), "create indexes")
}

func (suite *MongoRepositoryTestSuite) TestCreateAndUpsertUser() {
	user := mustNewUser(suite.T(), domain.CreateUserOptions{Name: "User", Email: "user@google.com", Password: "User@123", Role: domain.RoleUser})
	suite.Require().NoError(suite.repo.CreateUser(suite.ctx, user))

	dup := mustNewUser(suite.T(), domain.CreateUserOptions{Email: "user@google.com", Password: "User@123", Role: domain.RoleUser})
	suite.ErrorIs(suite.repo.CreateUser(suite.ctx, dup), domain.ErrDuplicate)

	upsert := mustNewUser(suite.T(), domain.CreateUserOptions{Name: "Renamed", Email: "user@google.com", Password: "Other@123", Role: domain.RoleUser})
	suite.Require().NoError(suite.repo.UpsertUserByEmail(suite.ctx, upsert))
	suite.Equal(user.ID, upsert.ID)
	suite.Equal("Renamed", upsert.Name)
	ok, err := upsert.Password.Cmp("Other@123")
	suite.Require().NoError(err)
	suite.True(ok)

	opts := &domain.QueryUserOptions{IDs: []string{user.ID}}
	suite.Require().NoError(suite.repo.QueryUsers(suite.ctx, opts))
	suite.Require().Len(opts.Result, 1)
	suite.Equal("user@google.com", opts.Result[0].Email)
}

func (suite *MongoRepositoryTestSuite) TestRequestLifecycleInTransaction() {
	requester := mustNewUser(suite.T(), domain.CreateUserOptions{Email: "owner@example.com", Password: "Secret@123", Role: domain.RoleUser})
	suite.Require().NoError(suite.repo.CreateUser(suite.ctx, requester))

	now := time.Now().UTC()
	req := domain.NewRequest(requester.ID, domain.CreateRequestInput{Application: "billing", Environment: "prod", GroupRole: "reader"}, now)
	created, err := domain.NewAuditLog(req.ID, domain.AuditActionCreate, requester.ID, domain.CreateDetails{Request: *req}, now)
	suite.Require().NoError(err)
	err = suite.repo.RunInTransaction(suite.ctx, func(ctx context.Context, tx domain.RequestTx) error {
		if err := tx.InsertRequest(ctx, req); err != nil {
			return err
		}
		return tx.AppendAuditLog(ctx, created)
	})
	suite.Require().NoError(err)

	later := now.Add(time.Second)
	err = suite.repo.RunInTransaction(suite.ctx, func(ctx context.Context, tx domain.RequestTx) error {
		stored, err := tx.GetRequest(ctx, req.ID)
		if err != nil {
			return err
		}
		stored.Status = domain.StatusRejected
		stored.Notes = domain.AppendNotes(stored.Notes, "not needed")
		stored.UpdatedAt = later
		if err := tx.UpdateRequestStatus(ctx, stored, domain.StatusPending); err != nil {
			return err
		}
		entry, err := domain.NewAuditLog(req.ID, domain.AuditActionReject, "admin-1", domain.ReviewDetails{Notes: "not needed"}, later)
		if err != nil {
			return err
		}
		return tx.AppendAuditLog(ctx, entry)
	})
	suite.Require().NoError(err)

	err = suite.repo.RunInTransaction(suite.ctx, func(ctx context.Context, tx domain.RequestTx) error {
		stale := req.Clone()
		stale.Status = domain.StatusApproved
		return tx.UpdateRequestStatus(ctx, stale, domain.StatusPending)
	})
	suite.ErrorIs(err, domain.ErrStatusConflict)

	opts := &domain.QueryRequestOptions{RequesterIDs: []string{requester.ID}}
	suite.Require().NoError(suite.repo.QueryRequests(suite.ctx, opts))
	suite.Require().Len(opts.Result, 1)
	suite.Equal(domain.StatusRejected, opts.Result[0].Status)
	suite.Equal("not needed", opts.Result[0].Notes)

	logs := &domain.QueryAuditLogOptions{RequestIDs: []string{req.ID}}
	suite.Require().NoError(suite.repo.QueryAuditLogs(suite.ctx, logs))
	suite.Require().Len(logs.Result, 2)
	suite.Equal(domain.AuditActionReject, logs.Result[0].Action)
	suite.Equal(domain.AuditActionCreate, logs.Result[1].Action)
}

func (suite *MongoRepositoryTestSuite) TestTransactionRollsBack() {
	now := time.Now().UTC()
	req := domain.NewRequest("u1", domain.CreateRequestInput{Application: "a", Environment: "b", GroupRole: "c"}, now)
	err := suite.repo.RunInTransaction(suite.ctx, func(ctx context.Context, tx domain.RequestTx) error {
		if err := tx.InsertRequest(ctx, req); err != nil {
			return err
		}
		return domain.ErrStorage
	})
	suite.ErrorIs(err, domain.ErrStorage)

	opts := &domain.QueryRequestOptions{IDs: []string{req.ID}}
	suite.Require().NoError(suite.repo.QueryRequests(suite.ctx, opts))
	suite.Empty(opts.Result)
}
