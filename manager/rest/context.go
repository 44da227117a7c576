package rest

import (
	"context"

	"github.com/accessdesk/api/manager/domain"
)

type claimsContextKey struct{}

func (h *Handler) SetClaimsInContext(ctx context.Context, claims domain.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

func (h *Handler) GetClaimsFromContext(ctx context.Context) (domain.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(domain.Claims)
	return claims, ok
}
