package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	paymentDomain "github.com/beautygo/beautygo-api/internal/domain/payment"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// Earnings report periods.
const (
	PeriodAll         = "all"
	PeriodThisMonth   = "this_month"
	PeriodLastMonth   = "last_month"
	PeriodLast3Months = "last_3_months"
	PeriodThisYear    = "this_year"
)

// EarningsTransactionDTO is one settled payment in a professional's history.
type EarningsTransactionDTO struct {
	PaymentID                 uuid.UUID `json:"payment_id"`
	BookingID                 uuid.UUID `json:"booking_id"`
	Date                      time.Time `json:"date"`
	AmountCents               int64     `json:"amount_cents"`
	PlatformFeeCents          int64     `json:"platform_fee_cents"`
	ProfessionalEarningsCents int64     `json:"professional_earnings_cents"`
}

// MonthlyEarningsDTO aggregates a professional's earnings for one month.
type MonthlyEarningsDTO struct {
	Month         string `json:"month"` // YYYY-MM
	EarningsCents int64  `json:"earnings_cents"`
	Bookings      int64  `json:"bookings"`
}

// EarningsReportDTO is the professional earnings report.
type EarningsReportDTO struct {
	TotalEarningsCents  int64                    `json:"total_earnings_cents"`
	PlatformFeeCents    int64                    `json:"platform_fee_cents"`
	NetEarningsCents    int64                    `json:"net_earnings_cents"`
	BookingsCount       int64                    `json:"bookings_count"`
	AverageEarningCents int64                    `json:"average_earning_cents"`
	MonthlyBreakdown    []MonthlyEarningsDTO     `json:"monthly_breakdown"`
	Transactions        []EarningsTransactionDTO `json:"transactions"`
}

// EarningsService aggregates settled payments into reports.
type EarningsService struct {
	payments paymentDomain.PaymentRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewEarningsService creates a new EarningsService.
func NewEarningsService(payments paymentDomain.PaymentRepository, logger *zap.Logger) *EarningsService {
	return &EarningsService{
		payments: payments,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// PeriodRange resolves a named report period to a half-open [from, to)
// interval relative to now. Nil bounds mean unbounded.
func PeriodRange(period string, now time.Time) (from, to *time.Time, err error) {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	switch period {
	case PeriodAll, "":
		return nil, nil, nil
	case PeriodThisMonth:
		end := startOfMonth.AddDate(0, 1, 0)
		return &startOfMonth, &end, nil
	case PeriodLastMonth:
		start := startOfMonth.AddDate(0, -1, 0)
		return &start, &startOfMonth, nil
	case PeriodLast3Months:
		start := startOfMonth.AddDate(0, -3, 0)
		return &start, nil, nil
	case PeriodThisYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return &start, nil, nil
	}
	return nil, nil, domain.NewValidationError("unknown period: " + period)
}

// GetProfessionalEarnings builds the earnings report for a professional.
func (s *EarningsService) GetProfessionalEarnings(ctx context.Context, professionalID uuid.UUID, period string) (*EarningsReportDTO, error) {
	from, to, err := PeriodRange(period, s.now())
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.ListByProfessionalID(ctx, professionalID, from, to)
	if err != nil {
		return nil, err
	}

	report := &EarningsReportDTO{
		MonthlyBreakdown: []MonthlyEarningsDTO{},
		Transactions:     make([]EarningsTransactionDTO, 0, len(payments)),
	}

	monthly := make(map[string]*MonthlyEarningsDTO)
	for _, pm := range payments {
		report.TotalEarningsCents += pm.AmountCents()
		report.PlatformFeeCents += pm.PlatformFeeCents()
		report.NetEarningsCents += pm.ProfessionalEarningsCents()
		report.BookingsCount++

		monthKey := pm.CreatedAt().Format("2006-01")
		m, ok := monthly[monthKey]
		if !ok {
			m = &MonthlyEarningsDTO{Month: monthKey}
			monthly[monthKey] = m
		}
		m.EarningsCents += pm.ProfessionalEarningsCents()
		m.Bookings++

		report.Transactions = append(report.Transactions, EarningsTransactionDTO{
			PaymentID:                 pm.ID(),
			BookingID:                 pm.BookingID(),
			Date:                      pm.CreatedAt(),
			AmountCents:               pm.AmountCents(),
			PlatformFeeCents:          pm.PlatformFeeCents(),
			ProfessionalEarningsCents: pm.ProfessionalEarningsCents(),
		})
	}

	if report.BookingsCount > 0 {
		report.AverageEarningCents = report.NetEarningsCents / report.BookingsCount
	}

	for _, m := range monthly {
		report.MonthlyBreakdown = append(report.MonthlyBreakdown, *m)
	}
	sort.Slice(report.MonthlyBreakdown, func(i, j int) bool {
		return report.MonthlyBreakdown[i].Month > report.MonthlyBreakdown[j].Month
	})

	return report, nil
}
