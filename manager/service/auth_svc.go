package service

import (
	"context"
	"fmt"

	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/errs"
	"github.com/accessdesk/api/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "access-request-api"

func (svc *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, errs.Validation("Email and password required", nil)
	}

	user, err := svc.getUserByEmail(ctx, email)
	if err != nil {
		return "", nil, errs.Storage(fmt.Errorf("query user for login: %w", err))
	}
	if user == nil {
		// keep unknown emails as slow as wrong passwords
		_, _ = svc.dummyHash.Cmp(password)
		svc.metrics.logins.WithLabelValues(loginFailure).Inc()
		return "", nil, errs.InvalidCredentials()
	}

	ok, err := user.Password.Cmp(password)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Str("user_id", user.ID).Msg("stored password hash is unreadable")
		svc.metrics.logins.WithLabelValues(loginFailure).Inc()
		return "", nil, errs.InvalidCredentials()
	}
	if !ok {
		svc.metrics.logins.WithLabelValues(loginFailure).Inc()
		return "", nil, errs.InvalidCredentials()
	}

	token, err := svc.genJWTToken(user)
	if err != nil {
		return "", nil, errs.Storage(fmt.Errorf("sign token: %w", err))
	}
	svc.metrics.logins.WithLabelValues(loginSuccess).Inc()
	svc.directory.remember(user)
	logger.Logger(ctx).Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func (svc *Service) VerifyJWTToken(ctx context.Context, tokenString string, permissionKey domain.PermissionKey) (domain.Claims, error) {
	claims := domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &svc.jwtPrivateKey.PublicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return domain.Claims{}, errs.Unauthenticated("Invalid or expired token", err)
	}
	if !claims.IsAuthenticated() || !claims.Role.Valid() {
		return domain.Claims{}, errs.Unauthenticated("Invalid or expired token", nil)
	}
	if !domain.Authorize(&claims, permissionKey) {
		return domain.Claims{}, errs.Forbidden("Forbidden")
	}
	return claims, nil
}

func (svc *Service) getUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	opts := &domain.QueryUserOptions{
		Emails: []string{email},
	}
	err := svc.Repo.QueryUsers(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, nil
	}
	return opts.Result[0], nil
}

func (svc *Service) genJWTToken(user *domain.User) (string, error) {
	now := svc.now()
	claims := domain.Claims{
		UID:   user.ID,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(svc.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(svc.jwtPrivateKey)
}
