package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitalscan/vitalscan/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the auth endpoints. The public group carries no
// session middleware; the api group does.
func (h *Handler) RegisterRoutes(public, api *echo.Group) {
	public.POST("/auth/otp", h.SendCode)
	public.POST("/auth/verify", h.VerifyCode)
	api.GET("/auth/session", h.Session)
	api.POST("/auth/logout", h.Logout)
}

type sendCodeRequest struct {
	Email string `json:"email"`
}

func (h *Handler) SendCode(c echo.Context) error {
	var req sendCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.SendCode(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not send verification code")
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "code sent"})
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type verifyResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (h *Handler) VerifyCode(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, user, err := h.svc.VerifyCode(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrCodeExpired), errors.Is(err, ErrCodeMismatch), errors.Is(err, ErrTooManyAttempts):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "verification failed")
	}
	return c.JSON(http.StatusOK, verifyResponse{Token: token, User: user})
}

func (h *Handler) Session(c echo.Context) error {
	sess, err := h.svc.Introspect(c.Request().Context(), auth.UserIDFromContext(c.Request().Context()))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load session")
	}
	return c.JSON(http.StatusOK, sess)
}

// Logout always succeeds. Session tokens are stateless, so there is no
// server-side record to revoke; the client drops its token.
func (h *Handler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
