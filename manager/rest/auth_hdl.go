package rest

import (
	"net/http"

	"github.com/accessdesk/api/manager/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserIdentity struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserIdentity `json:"user"`
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a signed bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req LoginRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, LoginResponse{
		Token: token,
		User: UserIdentity{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

type SelfResponse struct {
	Message string       `json:"message"`
	User    UserIdentity `json:"user"`
	Name    string       `json:"name,omitempty"`
}

// GetSelfUser godoc
// @Summary Current identity
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SelfResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *Handler) GetSelfUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	user, err := h.Svc.GetSelf(ctx, &claims)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, SelfResponse{
		Message: "authenticated",
		User: UserIdentity{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
		Name: user.Name,
	})
}
