package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beautygo/beautygo-api/internal/application"
	serviceDomain "github.com/beautygo/beautygo-api/internal/domain/service"
	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/middleware"
	"github.com/beautygo/beautygo-api/pkg/response"
)

// CatalogHandler handles HTTP requests for the service catalog.
type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers catalog routes on the given router group. Browsing
// is public; managing services requires an approved professional.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	public := r.Group("/api/v1/services")
	{
		public.GET("", h.ListServices)
		public.GET("/:id", h.GetService)
	}

	mine := r.Group("/api/v1/professional/services")
	mine.Use(authMW, middleware.RequireRole(auth.RoleProfessional), middleware.RequireApproved())
	{
		mine.POST("", h.CreateService)
		mine.GET("", h.ListOwnServices)
		mine.PATCH("/:id", h.UpdateService)
		mine.DELETE("/:id", h.DeactivateService)
	}
}

// ListServices handles GET /api/v1/services with optional filters.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	filter := serviceDomain.ListFilter{
		Category: serviceDomain.Category(c.Query("category")),
		City:     c.Query("city"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("min_price_cents"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			filter.MinPriceCents = v
		}
	}
	if raw := c.Query("max_price_cents"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			filter.MaxPriceCents = v
		}
	}

	page, limit := parsePagination(c)

	result, err := h.service.ListServices(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetService handles GET /api/v1/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid service ID")
		return
	}

	result, err := h.service.GetService(c.Request.Context(), serviceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateService handles POST /api/v1/professional/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req application.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateService(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListOwnServices handles GET /api/v1/professional/services.
func (h *CatalogHandler) ListOwnServices(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := h.service.ListOwnServices(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateService handles PATCH /api/v1/professional/services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid service ID")
		return
	}

	var req application.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateService(c.Request.Context(), serviceID, userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeactivateService handles DELETE /api/v1/professional/services/:id.
func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid service ID")
		return
	}

	if err := h.service.DeactivateService(c.Request.Context(), serviceID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
