package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robinboard/api/internal/dto"
	"github.com/robinboard/api/internal/middleware"
	"github.com/robinboard/api/internal/service"
	appErrors "github.com/robinboard/api/pkg/errors"
	"github.com/robinboard/api/pkg/response"
)

// AuthHandler exposes the admin session endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler builds a new handler.
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} response.Result
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Şifre girilmedi"))
		return
	}

	token, err := h.service.Login(req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.service.CookieName(), token, h.service.CookieMaxAge(), "/", "", h.service.CookieSecure(), true)
	response.SuccessWith(c, response.Result{Message: "Giriş başarılı"})
}

// Logout godoc
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Result
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.service.CookieName(), "", -1, "/", "", h.service.CookieSecure(), true)
	response.Success(c)
}

// Status godoc
// @Summary Session status
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.StatusResponse{Authenticated: middleware.IsAdmin(c)})
}
