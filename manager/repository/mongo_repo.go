package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/accessdesk/api/config"
	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/migration"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

type mongoRepo struct {
	client *mongo.Client
	db     *mongo.Database
}

func newMongoRepository(cfg config.MongoDBConfig) (*mongoRepo, error) {
	if cfg.Database == "" {
		return nil, errors.New("mongodb database is required")
	}
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb, err: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb, err: %w", err)
	}
	return &mongoRepo{client: client, db: client.Database(cfg.Database)}, nil
}

func (r *mongoRepo) Migrate(ctx context.Context) error {
	return migration.RunMongoMigration(ctx, r.db)
}

func (r *mongoRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *mongoRepo) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	hash, err := user.Password.Hash()
	if err != nil {
		return fmt.Errorf("stored password, err: %w", err)
	}
	user.Password = domain.EncryptedPassword(hash)
	if _, err := r.db.Collection(migration.UserCollection).InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create user %s, err: %w", user.Email, domain.ErrDuplicate)
		}
		return fmt.Errorf("create user, err: %w", err)
	}
	return nil
}

func (r *mongoRepo) UpsertUserByEmail(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	update := bson.M{
		"$set": bson.M{
			"name":          user.Name,
			"password_hash": user.Password,
			"role":          user.Role,
			"updated_at":    user.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        user.ID,
			"created_at": user.CreatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var stored domain.User
	err := r.db.Collection(migration.UserCollection).
		FindOneAndUpdate(ctx, bson.M{"email": user.Email}, update, opts).
		Decode(&stored)
	if err != nil {
		return fmt.Errorf("upsert user, err: %w", err)
	}
	*user = stored
	return nil
}

func (r *mongoRepo) QueryUsers(ctx context.Context, opt *domain.QueryUserOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	filter := bson.M{}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": opt.IDs}
	}
	if len(opt.Emails) > 0 {
		filter["email"] = bson.M{"$in": opt.Emails}
	}
	cursor, err := r.db.Collection(migration.UserCollection).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return fmt.Errorf("find users, err: %w", err)
	}
	var result []*domain.User
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode users, err: %w", err)
	}
	opt.Result = result
	return nil
}

var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

func (r *mongoRepo) QueryRequests(ctx context.Context, opt *domain.QueryRequestOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	filter := bson.M{}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": opt.IDs}
	}
	if len(opt.RequesterIDs) > 0 {
		filter["requester_id"] = bson.M{"$in": opt.RequesterIDs}
	}
	if len(opt.Statuses) > 0 {
		filter["status"] = bson.M{"$in": statusStrings(opt.Statuses)}
	}
	cursor, err := r.db.Collection(migration.RequestCollection).Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return fmt.Errorf("find requests, err: %w", err)
	}
	var result []*domain.Request
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode requests, err: %w", err)
	}
	opt.Result = result
	return nil
}

func (r *mongoRepo) QueryAuditLogs(ctx context.Context, opt *domain.QueryAuditLogOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	filter := bson.M{}
	if len(opt.RequestIDs) > 0 {
		filter["request_id"] = bson.M{"$in": opt.RequestIDs}
	}
	cursor, err := r.db.Collection(migration.AuditLogCollection).Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return fmt.Errorf("find audit logs, err: %w", err)
	}
	var docs []*auditLogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return fmt.Errorf("decode audit logs, err: %w", err)
	}
	result := make([]*domain.AuditLog, 0, len(docs))
	for _, doc := range docs {
		entry, err := doc.toDomain()
		if err != nil {
			return fmt.Errorf("decode audit log %s, err: %w", doc.ID, err)
		}
		result = append(result, entry)
	}
	opt.Result = result
	return nil
}

// RunInTransaction needs a replica set or sharded deployment.
func (r *mongoRepo) RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx domain.RequestTx) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session, err: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		return nil, fn(txCtx, &mongoRequestTx{db: r.db})
	})
	return err
}

type mongoRequestTx struct {
	db *mongo.Database
}

func (t *mongoRequestTx) InsertRequest(ctx context.Context, req *domain.Request) error {
	if req == nil {
		return errors.New("nil request")
	}
	if _, err := t.db.Collection(migration.RequestCollection).InsertOne(ctx, req); err != nil {
		return fmt.Errorf("insert request, err: %w", err)
	}
	return nil
}

func (t *mongoRequestTx) GetRequest(ctx context.Context, id string) (*domain.Request, error) {
	var req domain.Request
	err := t.db.Collection(migration.RequestCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get request, err: %w", err)
	}
	return &req, nil
}

func (t *mongoRequestTx) UpdateRequestStatus(ctx context.Context, req *domain.Request, expected domain.RequestStatus) error {
	if req == nil {
		return errors.New("nil request")
	}
	res, err := t.db.Collection(migration.RequestCollection).UpdateOne(ctx,
		bson.M{"_id": req.ID, "status": string(expected)},
		bson.M{"$set": bson.M{
			"status":     string(req.Status),
			"notes":      req.Notes,
			"updated_at": req.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("update request status, err: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (t *mongoRequestTx) AppendAuditLog(ctx context.Context, log *domain.AuditLog) error {
	doc, err := newAuditLogDocument(log)
	if err != nil {
		return fmt.Errorf("encode audit log, err: %w", err)
	}
	if _, err := t.db.Collection(migration.AuditLogCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append audit log, err: %w", err)
	}
	return nil
}
