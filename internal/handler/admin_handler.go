package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beautygo/beautygo-api/internal/application"
	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/middleware"
	"github.com/beautygo/beautygo-api/pkg/response"
)

// ApprovalRequest approves or rejects a professional account.
type ApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// AdminHandler handles HTTP requests for the admin surface.
type AdminHandler struct {
	admin    *application.AdminService
	bookings *application.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin *application.AdminService, bookings *application.BookingService) *AdminHandler {
	return &AdminHandler{admin: admin, bookings: bookings}
}

// RegisterRoutes registers admin routes on the given router group.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	admin := r.Group("/api/v1/admin")
	admin.Use(authMW, middleware.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.PATCH("/users/:id/approve", h.SetApproval)
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/stats/bookings", h.BookingStats)
	}
}

// ListUsers handles GET /api/v1/admin/users?filter=pending&role=professional.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := h.admin.ListUsers(c.Request.Context(), c.Query("filter"), c.Query("role"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// SetApproval handles PATCH /api/v1/admin/users/:id/approve.
func (h *AdminHandler) SetApproval(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user ID")
		return
	}

	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.admin.SetProfessionalApproval(c.Request.Context(), userID, *req.Approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Dashboard handles GET /api/v1/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	result, err := h.admin.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// BookingStats handles GET /api/v1/admin/stats/bookings.
func (h *AdminHandler) BookingStats(c *gin.Context) {
	result, err := h.bookings.GetBookingStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
