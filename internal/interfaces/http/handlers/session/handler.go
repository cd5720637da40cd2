package session

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appsession "github.com/hys-retail/storedesk/internal/application/session"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
	"github.com/hys-retail/storedesk/internal/interfaces/http/validation"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/utils"
)

type StoreLoginExecutor interface {
	Execute(ctx context.Context, cmd appsession.StoreLoginCommand) (*appsession.StoreLoginResult, error)
}

type AdminLoginExecutor interface {
	Execute(ctx context.Context, cmd appsession.AdminLoginCommand) (*appsession.AdminLoginResult, error)
}

// CookieExpirer builds the cookie that ends a session.
type CookieExpirer interface {
	Expired() appsession.CookieSpec
}

type StoreLoginRequest struct {
	StoreID string `json:"storeId"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type WhoAmIResponse struct {
	StoreID string `json:"storeId"`
}

type Handler struct {
	storeLoginUC StoreLoginExecutor
	adminLoginUC AdminLoginExecutor
	cookies      CookieExpirer
	logger       logger.Interface
}

func NewHandler(storeLoginUC StoreLoginExecutor, adminLoginUC AdminLoginExecutor, cookies CookieExpirer, logger logger.Interface) *Handler {
	return &Handler{
		storeLoginUC: storeLoginUC,
		adminLoginUC: adminLoginUC,
		cookies:      cookies,
		logger:       logger,
	}
}

// Login handles POST /session/login
func (h *Handler) Login(c *gin.Context) {
	var req StoreLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.storeLoginUC.Execute(c.Request.Context(), appsession.StoreLoginCommand{StoreID: req.StoreID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetCookie(c, toCookie(result.Cookie))
	utils.OK(c)
}

// Logout handles POST /session/logout
func (h *Handler) Logout(c *gin.Context) {
	utils.SetCookie(c, toCookie(h.cookies.Expired()))
	utils.OK(c)
}

// WhoAmI handles GET /session/whoami
func (h *Handler) WhoAmI(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok || !principal.IsStore() {
		utils.UnauthorizedResponse(c)
		return
	}
	utils.JSON(c, http.StatusOK, WhoAmIResponse{StoreID: principal.StoreID()})
}

// AdminLogin handles POST /admin/login
func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.adminLoginUC.Execute(c.Request.Context(), appsession.AdminLoginCommand{Password: req.Password})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, AdminLoginResponse{Token: result.Token})
}

func toCookie(spec appsession.CookieSpec) utils.Cookie {
	return utils.Cookie{
		Name:     spec.Name,
		Value:    spec.Value,
		MaxAge:   spec.MaxAge,
		Path:     spec.Path,
		Domain:   spec.Domain,
		Secure:   spec.Secure,
		HTTPOnly: spec.HTTPOnly,
		SameSite: spec.SameSite,
	}
}
