package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/accessdesk/api/config"
	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/migration"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

const defaultBusyTimeoutMS = 5000

type sqlRepo struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func newSQLRepository(cfg config.SQLiteConfig) (*sqlRepo, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory, err: %w", err)
		}
	}
	busyTimeout := cfg.BusyTimeoutMS
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeoutMS
	}
	// _txlock=immediate: every transaction takes the write lock at BEGIN.
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_txlock=immediate&_busy_timeout=%d", cfg.Path, busyTimeout)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite, err: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite3", Conn: sqlDB}, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open gorm, err: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite, err: %w", err)
	}
	return &sqlRepo{db: db, sqlDB: sqlDB}, nil
}

func (r *sqlRepo) Migrate(ctx context.Context) error {
	return migration.RunSQLiteMigration(r.sqlDB)
}

func (r *sqlRepo) Close(ctx context.Context) error {
	return r.sqlDB.Close()
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func (r *sqlRepo) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	model, err := newUserModel(user)
	if err != nil {
		return fmt.Errorf("stored password, err: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isSQLiteUniqueViolation(err) {
			return fmt.Errorf("create user %s, err: %w", user.Email, domain.ErrDuplicate)
		}
		return fmt.Errorf("create user, err: %w", err)
	}
	user.Password = domain.EncryptedPassword(model.PasswordHash)
	return nil
}

func (r *sqlRepo) UpsertUserByEmail(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	model, err := newUserModel(user)
	if err != nil {
		return fmt.Errorf("stored password, err: %w", err)
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "password_hash", "role", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("upsert user, err: %w", err)
	}

	var stored userModel
	if err := r.db.WithContext(ctx).First(&stored, "email = ?", model.Email).Error; err != nil {
		return fmt.Errorf("reload user, err: %w", err)
	}
	*user = *stored.toDomain()
	return nil
}

func (r *sqlRepo) QueryUsers(ctx context.Context, opt *domain.QueryUserOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	tx := r.db.WithContext(ctx).Model(&userModel{})
	if len(opt.IDs) > 0 {
		tx = tx.Where("id IN ?", opt.IDs)
	}
	if len(opt.Emails) > 0 {
		tx = tx.Where("email IN ?", opt.Emails)
	}
	var models []*userModel
	if err := tx.Order("created_at ASC").Find(&models).Error; err != nil {
		return fmt.Errorf("find users, err: %w", err)
	}
	result := make([]*domain.User, 0, len(models))
	for _, m := range models {
		result = append(result, m.toDomain())
	}
	opt.Result = result
	return nil
}

func (r *sqlRepo) QueryRequests(ctx context.Context, opt *domain.QueryRequestOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	tx := r.db.WithContext(ctx).Model(&requestModel{})
	if len(opt.IDs) > 0 {
		tx = tx.Where("id IN ?", opt.IDs)
	}
	if len(opt.RequesterIDs) > 0 {
		tx = tx.Where("requester_id IN ?", opt.RequesterIDs)
	}
	if len(opt.Statuses) > 0 {
		tx = tx.Where("status IN ?", statusStrings(opt.Statuses))
	}
	var models []*requestModel
	if err := tx.Order("created_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return fmt.Errorf("find requests, err: %w", err)
	}
	result := make([]*domain.Request, 0, len(models))
	for _, m := range models {
		result = append(result, m.toDomain())
	}
	opt.Result = result
	return nil
}

func (r *sqlRepo) QueryAuditLogs(ctx context.Context, opt *domain.QueryAuditLogOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	tx := r.db.WithContext(ctx).Model(&auditLogModel{})
	if len(opt.RequestIDs) > 0 {
		tx = tx.Where("request_id IN ?", opt.RequestIDs)
	}
	var models []*auditLogModel
	if err := tx.Order("created_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return fmt.Errorf("find audit logs, err: %w", err)
	}
	result := make([]*domain.AuditLog, 0, len(models))
	for _, m := range models {
		entry, err := m.toDomain()
		if err != nil {
			return fmt.Errorf("decode audit log %s, err: %w", m.ID, err)
		}
		result = append(result, entry)
	}
	opt.Result = result
	return nil
}

func (r *sqlRepo) RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx domain.RequestTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &sqlRequestTx{db: tx})
	})
}

type sqlRequestTx struct {
	db *gorm.DB
}

func (t *sqlRequestTx) InsertRequest(ctx context.Context, req *domain.Request) error {
	if req == nil {
		return errors.New("nil request")
	}
	if err := t.db.WithContext(ctx).Create(newRequestModel(req)).Error; err != nil {
		return fmt.Errorf("insert request, err: %w", err)
	}
	return nil
}

func (t *sqlRequestTx) GetRequest(ctx context.Context, id string) (*domain.Request, error) {
	var m requestModel
	err := t.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get request, err: %w", err)
	}
	return m.toDomain(), nil
}

func (t *sqlRequestTx) UpdateRequestStatus(ctx context.Context, req *domain.Request, expected domain.RequestStatus) error {
	if req == nil {
		return errors.New("nil request")
	}
	res := t.db.WithContext(ctx).Model(&requestModel{}).
		Where("id = ? AND status = ?", req.ID, string(expected)).
		Updates(map[string]any{
			"status":     string(req.Status),
			"notes":      req.Notes,
			"updated_at": req.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update request status, err: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (t *sqlRequestTx) AppendAuditLog(ctx context.Context, log *domain.AuditLog) error {
	if log == nil {
		return errors.New("nil audit log")
	}
	model, err := newAuditLogModel(log)
	if err != nil {
		return fmt.Errorf("encode audit log, err: %w", err)
	}
	if err := t.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("append audit log, err: %w", err)
	}
	return nil
}
