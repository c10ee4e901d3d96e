package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/eld-logs/internal/api/metrics"
	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token exchanges client credentials for a bearer token.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Client credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.authService.IssueToken(c.Request().Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.TokensIssuedTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}
	metrics.TokensIssuedTotal.WithLabelValues("issued").Inc()

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: res.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(res.ExpiresAt).Seconds()),
		Role:        res.Client.Role,
	})
}
