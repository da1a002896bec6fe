package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingDomain "github.com/beautygo/beautygo-api/internal/domain/booking"
	paymentDomain "github.com/beautygo/beautygo-api/internal/domain/payment"
	serviceDomain "github.com/beautygo/beautygo-api/internal/domain/service"
	userDomain "github.com/beautygo/beautygo-api/internal/domain/user"
	"github.com/beautygo/beautygo-api/internal/events"
	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/domain"
	"github.com/beautygo/beautygo-api/pkg/kafka"
)

const eventSource = "beautygo-api"

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	ServiceID      uuid.UUID `json:"service_id" binding:"required"`
	ProfessionalID uuid.UUID `json:"professional_id" binding:"required"`
	Date           string    `json:"date" binding:"required"`
	TimeSlot       string    `json:"time" binding:"required"`
	Address        string    `json:"address" binding:"required"`
	City           string    `json:"city" binding:"required"`
	State          string    `json:"state" binding:"required"`
	ZipCode        string    `json:"zip_code" binding:"required"`
	Notes          string    `json:"notes"`
}

// TransitionRequest asks for a status change on an existing booking.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID                        uuid.UUID             `json:"id"`
	ClientID                  uuid.UUID             `json:"client_id"`
	ProfessionalID            uuid.UUID             `json:"professional_id"`
	ServiceID                 uuid.UUID             `json:"service_id"`
	Status                    string                `json:"status"`
	Date                      string                `json:"date"`
	TimeSlot                  string                `json:"time"`
	Address                   bookingDomain.Address `json:"address"`
	Notes                     string                `json:"notes,omitempty"`
	TotalAmountCents          int64                 `json:"total_amount_cents"`
	PlatformFeeCents          int64                 `json:"platform_fee_cents"`
	ProfessionalEarningsCents int64                 `json:"professional_earnings_cents"`
	FeePercent                int64                 `json:"fee_percent"`
	CompletedAt               *time.Time            `json:"completed_at,omitempty"`
	CancelledAt               *time.Time            `json:"cancelled_at,omitempty"`
	Version                   int64                 `json:"version"`
	CreatedAt                 time.Time             `json:"created_at"`
	UpdatedAt                 time.Time             `json:"updated_at"`
}

// BookingService orchestrates the booking lifecycle: creation with slot
// exclusivity, permissioned status transitions, hard deletion, and the
// settlement trigger on completion.
type BookingService struct {
	bookings   bookingDomain.BookingRepository
	payments   paymentDomain.PaymentRepository
	services   serviceDomain.ServiceRepository
	users      userDomain.UserRepository
	feePercent int64
	producer   *kafka.Producer
	logger     *zap.Logger
}

// NewBookingService creates a new BookingService. feePercent is the
// commission rate applied to bookings created from now on; existing bookings
// keep the rate captured at their creation.
func NewBookingService(
	bookings bookingDomain.BookingRepository,
	payments paymentDomain.PaymentRepository,
	services serviceDomain.ServiceRepository,
	users userDomain.UserRepository,
	feePercent int64,
	producer *kafka.Producer,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:   bookings,
		payments:   payments,
		services:   services,
		users:      users,
		feePercent: feePercent,
		producer:   producer,
		logger:     logger,
	}
}

// CreateBooking creates a pending booking for the given client after
// verifying the service, the professional and the slot.
func (s *BookingService) CreateBooking(ctx context.Context, clientID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, domain.NewValidationError("date must be in YYYY-MM-DD format")
	}

	svc, err := s.services.FindActiveForProfessional(ctx, req.ServiceID, req.ProfessionalID)
	if err != nil {
		return nil, err
	}

	professional, err := s.users.FindBookableProfessional(ctx, req.ProfessionalID)
	if err != nil {
		return nil, err
	}

	occupied, err := s.bookings.ExistsActiveSlot(ctx, professional.ID(), date, req.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if occupied {
		return nil, domain.NewConflictError("this time slot is already booked")
	}

	bk, err := bookingDomain.NewBooking(
		clientID,
		professional.ID(),
		svc.ID(),
		date,
		req.TimeSlot,
		bookingDomain.Address{
			Line1:   req.Address,
			City:    req.City,
			State:   req.State,
			ZipCode: req.ZipCode,
		},
		req.Notes,
		svc.PriceCents(),
		s.feePercent,
	)
	if err != nil {
		return nil, err
	}

	// The repository maps the active-slot unique index violation to a
	// conflict, closing the race two concurrent creations can hit between
	// the check above and this insert.
	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.BookingCreated, bk.ID().String(), events.BookingCreatedEvent{
		BookingID:        bk.ID(),
		ClientID:         bk.ClientID(),
		ProfessionalID:   bk.ProfessionalID(),
		ServiceID:        bk.ServiceID(),
		Date:             bk.Date(),
		TimeSlot:         bk.TimeSlot(),
		TotalAmountCents: bk.TotalAmountCents(),
		OccurredAt:       time.Now().UTC(),
	})

	result := toBookingDTO(bk)
	return &result, nil
}

// Transition moves a booking to the requested status on behalf of the actor,
// enforcing both the state machine and the role/ownership policy. A
// transition into completed triggers settlement.
func (s *BookingService) Transition(ctx context.Context, bookingID uuid.UUID, requested string, actor bookingDomain.Actor) (*BookingDTO, error) {
	target, err := bookingDomain.ParseBookingStatus(requested)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := bookingDomain.AuthorizeTransition(actor, bk, target); err != nil {
		return nil, err
	}

	fromStatus := bk.Status()
	if err := bk.TransitionTo(target); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	if target == bookingDomain.StatusCompleted {
		if err := s.settle(ctx, bk); err != nil {
			return nil, err
		}
	}

	s.publishEvent(ctx, events.BookingStatusChanged, bk.ID().String(), events.BookingStatusChangedEvent{
		BookingID:      bk.ID(),
		ClientID:       bk.ClientID(),
		ProfessionalID: bk.ProfessionalID(),
		FromStatus:     fromStatus.String(),
		ToStatus:       target.String(),
		RequestedBy:    actor.ID,
		OccurredAt:     time.Now().UTC(),
	})

	result := toBookingDTO(bk)
	return &result, nil
}

// settle records the payment for a completed booking. The state machine
// already rejects repeat completions; the existence check here guards any
// path that might skip it, and the unique index on booking_id closes the
// race between concurrent completions.
func (s *BookingService) settle(ctx context.Context, bk *bookingDomain.Booking) error {
	exists, err := s.payments.ExistsByBookingID(ctx, bk.ID())
	if err != nil {
		return fmt.Errorf("failed to check for existing payment: %w", err)
	}
	if exists {
		s.logger.Warn("booking already settled, skipping payment creation",
			zap.String("booking_id", bk.ID().String()),
		)
		return nil
	}

	pm, err := paymentDomain.NewFromBooking(bk)
	if err != nil {
		return err
	}

	if err := s.payments.Save(ctx, pm); err != nil {
		if domain.IsKind(err, domain.KindConflict) {
			s.logger.Warn("concurrent settlement detected, payment already recorded",
				zap.String("booking_id", bk.ID().String()),
			)
			return nil
		}
		return err
	}

	s.publishEvent(ctx, events.PaymentSettled, bk.ID().String(), events.PaymentSettledEvent{
		PaymentID:                 pm.ID(),
		BookingID:                 pm.BookingID(),
		ClientID:                  pm.ClientID(),
		ProfessionalID:            pm.ProfessionalID(),
		AmountCents:               pm.AmountCents(),
		PlatformFeeCents:          pm.PlatformFeeCents(),
		ProfessionalEarningsCents: pm.ProfessionalEarningsCents(),
		OccurredAt:                time.Now().UTC(),
	})
	return nil
}

// DeleteBooking permanently removes a booking. Only admins or the owning
// client may delete, and only while the booking is pending or cancelled.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID uuid.UUID, actor bookingDomain.Actor) error {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := bookingDomain.AuthorizeDelete(actor, bk); err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, bk.ID()); err != nil {
		return err
	}

	s.publishEvent(ctx, events.BookingDeleted, bk.ID().String(), events.BookingDeletedEvent{
		BookingID:  bk.ID(),
		DeletedBy:  actor.ID,
		LastStatus: bk.Status().String(),
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// UpdateNotes replaces the notes on a non-terminal booking. Either owner or
// an admin may edit notes.
func (s *BookingService) UpdateNotes(ctx context.Context, bookingID uuid.UUID, actor bookingDomain.Actor, notes string) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := bookingDomain.AuthorizeView(actor, bk); err != nil {
		return nil, err
	}

	if err := bk.UpdateNotes(notes); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	result := toBookingDTO(bk)
	return &result, nil
}

// GetBooking retrieves a single booking visible to the actor.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID, actor bookingDomain.Actor) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := bookingDomain.AuthorizeView(actor, bk); err != nil {
		return nil, err
	}

	result := toBookingDTO(bk)
	return &result, nil
}

// ListBookings returns the actor's bookings: clients see their own,
// professionals see their assigned ones, admins see everything.
func (s *BookingService) ListBookings(ctx context.Context, actor bookingDomain.Actor, status *bookingDomain.BookingStatus, page, limit int) (*domain.PaginatedResult[BookingDTO], error) {
	var (
		list  []*bookingDomain.Booking
		total int64
		err   error
	)

	switch actor.Role {
	case auth.RoleAdmin:
		list, total, err = s.bookings.ListAll(ctx, status, page, limit)
	case auth.RoleProfessional:
		list, total, err = s.bookings.FindByProfessionalID(ctx, actor.ID, status, page, limit)
	default:
		list, total, err = s.bookings.FindByClientID(ctx, actor.ID, status, page, limit)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(list))
	for i, bk := range list {
		dtos[i] = toBookingDTO(bk)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// BookingStatsDTO holds booking statistics for the admin dashboard.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// GetBookingStats returns aggregate booking statistics (admin).
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &BookingStatsDTO{
		TotalBookings: total,
		ByStatus:      counts,
	}, nil
}

// --- Helpers ---

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:                        bk.ID(),
		ClientID:                  bk.ClientID(),
		ProfessionalID:            bk.ProfessionalID(),
		ServiceID:                 bk.ServiceID(),
		Status:                    string(bk.Status()),
		Date:                      bk.Date().Format("2006-01-02"),
		TimeSlot:                  bk.TimeSlot(),
		Address:                   bk.Address(),
		Notes:                     bk.Notes(),
		TotalAmountCents:          bk.TotalAmountCents(),
		PlatformFeeCents:          bk.PlatformFeeCents(),
		ProfessionalEarningsCents: bk.ProfessionalEarningsCents(),
		FeePercent:                bk.FeePercent(),
		CompletedAt:               bk.CompletedAt(),
		CancelledAt:               bk.CancelledAt(),
		Version:                   bk.Version(),
		CreatedAt:                 bk.CreatedAt(),
		UpdatedAt:                 bk.UpdatedAt(),
	}
}

func (s *BookingService) publishEvent(ctx context.Context, eventType, key string, data interface{}) {
	if s.producer == nil {
		return
	}

	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEventWithKey(ctx, events.TopicBookingEvents, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
