package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingDomain "github.com/beautygo/beautygo-api/internal/domain/booking"
	paymentDomain "github.com/beautygo/beautygo-api/internal/domain/payment"
	userDomain "github.com/beautygo/beautygo-api/internal/domain/user"
	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// UserDTO is the admin-facing representation of a user account.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Approved  bool      `json:"approved"`
	Bio       string    `json:"bio,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardDTO is the admin dashboard summary.
type DashboardDTO struct {
	TotalUsers            int64            `json:"total_users"`
	ApprovedProfessionals int64            `json:"approved_professionals"`
	PendingApprovals      int64            `json:"pending_approvals"`
	TotalBookings         int64            `json:"total_bookings"`
	MonthlyBookings       int64            `json:"monthly_bookings"`
	BookingsByStatus      map[string]int64 `json:"bookings_by_status"`
	TotalRevenueCents     int64            `json:"total_revenue_cents"`
	PlatformFeesCents     int64            `json:"platform_fees_cents"`
}

// AdminService serves the admin dashboard and the professional approval flow.
type AdminService struct {
	users    userDomain.UserRepository
	bookings bookingDomain.BookingRepository
	payments paymentDomain.PaymentRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	users userDomain.UserRepository,
	bookings bookingDomain.BookingRepository,
	payments paymentDomain.PaymentRepository,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		users:    users,
		bookings: bookings,
		payments: payments,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ListUsers returns users matching the admin filter. filter is one of
// "", "pending", "approved"; role optionally restricts by role.
func (s *AdminService) ListUsers(ctx context.Context, filter, role string, page, limit int) (*domain.PaginatedResult[UserDTO], error) {
	f := userDomain.ListFilter{}

	professional := auth.RoleProfessional
	switch filter {
	case "pending":
		f.Role = &professional
		approved := false
		f.Approved = &approved
	case "approved":
		f.Role = &professional
		approved := true
		f.Approved = &approved
	case "":
	default:
		return nil, domain.NewValidationError("unknown filter: " + filter)
	}

	if role != "" && role != "all" {
		r := auth.Role(role)
		if !r.IsValid() {
			return nil, domain.NewValidationError("unknown role: " + role)
		}
		f.Role = &r
	}

	list, total, err := s.users.List(ctx, f, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]UserDTO, len(list))
	for i, u := range list {
		dtos[i] = toUserDTO(u)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// SetProfessionalApproval approves or rejects a professional account.
func (s *AdminService) SetProfessionalApproval(ctx context.Context, userID uuid.UUID, approved bool) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.SetApproved(approved); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("professional approval updated",
		zap.String("user_id", userID.String()),
		zap.Bool("approved", approved),
	)

	result := toUserDTO(u)
	return &result, nil
}

// GetDashboard builds the admin dashboard summary.
func (s *AdminService) GetDashboard(ctx context.Context) (*DashboardDTO, error) {
	professional := auth.RoleProfessional
	approvedTrue := true
	approvedFalse := false

	totalUsers, err := s.users.Count(ctx, userDomain.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	approvedPros, err := s.users.Count(ctx, userDomain.ListFilter{Role: &professional, Approved: &approvedTrue})
	if err != nil {
		return nil, fmt.Errorf("failed to count approved professionals: %w", err)
	}

	pendingPros, err := s.users.Count(ctx, userDomain.ListFilter{Role: &professional, Approved: &approvedFalse})
	if err != nil {
		return nil, fmt.Errorf("failed to count pending professionals: %w", err)
	}

	byStatus, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}
	var totalBookings int64
	for _, c := range byStatus {
		totalBookings += c
	}

	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthlyBookings, err := s.bookings.CountCreatedBetween(ctx, startOfMonth, startOfMonth.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to count monthly bookings: %w", err)
	}

	totals, err := s.payments.SumAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	return &DashboardDTO{
		TotalUsers:            totalUsers,
		ApprovedProfessionals: approvedPros,
		PendingApprovals:      pendingPros,
		TotalBookings:         totalBookings,
		MonthlyBookings:       monthlyBookings,
		BookingsByStatus:      byStatus,
		TotalRevenueCents:     totals.AmountCents,
		PlatformFeesCents:     totals.PlatformFeeCents,
	}, nil
}

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Role:      string(u.Role()),
		Approved:  u.IsApproved(),
		Bio:       u.Bio(),
		City:      u.City(),
		State:     u.State(),
		CreatedAt: u.CreatedAt(),
	}
}
