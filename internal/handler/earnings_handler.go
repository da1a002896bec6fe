package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beautygo/beautygo-api/internal/application"
	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/middleware"
	"github.com/beautygo/beautygo-api/pkg/response"
)

// EarningsHandler handles HTTP requests for professional earnings reports.
type EarningsHandler struct {
	service *application.EarningsService
}

// NewEarningsHandler creates a new EarningsHandler.
func NewEarningsHandler(service *application.EarningsService) *EarningsHandler {
	return &EarningsHandler{service: service}
}

// RegisterRoutes registers earnings routes on the given router group.
func (h *EarningsHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	earnings := r.Group("/api/v1/professional/earnings")
	earnings.Use(authMW, middleware.RequireRole(auth.RoleProfessional))
	{
		earnings.GET("", h.GetEarnings)
	}
}

// GetEarnings handles GET /api/v1/professional/earnings?period=this_month.
func (h *EarningsHandler) GetEarnings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	period := c.DefaultQuery("period", application.PeriodAll)

	result, err := h.service.GetProfessionalEarnings(c.Request.Context(), userID, period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
