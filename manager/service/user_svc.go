package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/errs"
	"github.com/accessdesk/api/pkg/logger"
)

func (svc *Service) GetSelf(ctx context.Context, operator *domain.Claims) (*domain.User, error) {
	if !operator.IsAuthenticated() {
		return nil, errs.Unauthenticated("Unauthorized", nil)
	}
	opts := &domain.QueryUserOptions{IDs: []string{operator.UID}}
	if err := svc.Repo.QueryUsers(ctx, opts); err != nil {
		return nil, errs.Storage(err)
	}
	if len(opts.Result) == 0 {
		return nil, errs.Unauthenticated("Unauthorized", domain.ErrNotFound)
	}
	return opts.Result[0], nil
}

func (svc *Service) CreateUser(ctx context.Context, operator *domain.Claims, opt domain.CreateUserOptions) (*domain.User, error) {
	if !operator.IsAuthenticated() {
		return nil, errs.Unauthenticated("Unauthorized", nil)
	}
	if !domain.Authorize(operator, domain.UserCreate) {
		return nil, errs.Forbidden("Forbidden")
	}
	opt.Email = domain.NormalizeEmail(opt.Email)
	if err := svc.validate.Struct(opt); err != nil {
		return nil, err
	}

	user, err := svc.newUser(opt)
	if err != nil {
		return nil, err
	}
	err = svc.Repo.CreateUser(ctx, user)
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, errs.Conflict("Email already registered", err)
	}
	if err != nil {
		return nil, errs.Storage(fmt.Errorf("create user: %w", err))
	}
	svc.directory.remember(user)
	logger.Logger(ctx).Info().Str("operator", operator.UID).Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

// SeedUser creates the user or, when the email exists, resets its name, role and password.
func (svc *Service) SeedUser(ctx context.Context, opt domain.CreateUserOptions) (*domain.User, error) {
	opt.Email = domain.NormalizeEmail(opt.Email)
	if err := svc.validate.Struct(opt); err != nil {
		return nil, err
	}
	user, err := svc.newUser(opt)
	if err != nil {
		return nil, err
	}
	if err := svc.Repo.UpsertUserByEmail(ctx, user); err != nil {
		return nil, errs.Storage(fmt.Errorf("seed user: %w", err))
	}
	svc.directory.remember(user)
	return user, nil
}

func (svc *Service) newUser(opt domain.CreateUserOptions) (*domain.User, error) {
	user, err := domain.NewUser(opt, svc.now())
	if errors.Is(err, domain.ErrValidation) {
		return nil, errs.Validation(strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": "), err)
	}
	if err != nil {
		return nil, errs.Storage(fmt.Errorf("hash password: %w", err))
	}
	return user, nil
}
