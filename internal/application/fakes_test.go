package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	bookingDomain "github.com/beautygo/beautygo-api/internal/domain/booking"
	paymentDomain "github.com/beautygo/beautygo-api/internal/domain/payment"
	serviceDomain "github.com/beautygo/beautygo-api/internal/domain/service"
	userDomain "github.com/beautygo/beautygo-api/internal/domain/user"
	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// --- booking repository fake ---

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*bookingDomain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*bookingDomain.Booking)}
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	bk, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("Booking", id.String())
	}
	return bk, nil
}

func (r *fakeBookingRepo) ExistsActiveSlot(_ context.Context, professionalID uuid.UUID, date time.Time, timeSlot string) (bool, error) {
	for _, bk := range r.bookings {
		if bk.ProfessionalID() == professionalID &&
			bk.Date().Equal(date) &&
			bk.TimeSlot() == timeSlot &&
			bk.Status().IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) FindByClientID(_ context.Context, clientID uuid.UUID, status *bookingDomain.BookingStatus, _, _ int) ([]*bookingDomain.Booking, int64, error) {
	var out []*bookingDomain.Booking
	for _, bk := range r.bookings {
		if bk.ClientID() == clientID && matchesStatus(bk, status) {
			out = append(out, bk)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) FindByProfessionalID(_ context.Context, professionalID uuid.UUID, status *bookingDomain.BookingStatus, _, _ int) ([]*bookingDomain.Booking, int64, error) {
	var out []*bookingDomain.Booking
	for _, bk := range r.bookings {
		if bk.ProfessionalID() == professionalID && matchesStatus(bk, status) {
			out = append(out, bk)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) ListAll(_ context.Context, status *bookingDomain.BookingStatus, _, _ int) ([]*bookingDomain.Booking, int64, error) {
	var out []*bookingDomain.Booking
	for _, bk := range r.bookings {
		if matchesStatus(bk, status) {
			out = append(out, bk)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, bk := range r.bookings {
		counts[bk.Status().String()]++
	}
	return counts, nil
}

func (r *fakeBookingRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var count int64
	for _, bk := range r.bookings {
		if !bk.CreatedAt().Before(from) && bk.CreatedAt().Before(to) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	occupied, _ := r.ExistsActiveSlot(ctx, bk.ProfessionalID(), bk.Date(), bk.TimeSlot())
	if occupied {
		return domain.NewConflictError("this time slot is already booked")
	}
	r.bookings[bk.ID()] = bk
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, bk *bookingDomain.Booking) error {
	if _, ok := r.bookings[bk.ID()]; !ok {
		return domain.NewNotFoundError("Booking", bk.ID().String())
	}
	r.bookings[bk.ID()] = bk
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.NewNotFoundError("Booking", id.String())
	}
	delete(r.bookings, id)
	return nil
}

func matchesStatus(bk *bookingDomain.Booking, status *bookingDomain.BookingStatus) bool {
	return status == nil || bk.Status() == *status
}

// --- payment repository fake ---

type fakePaymentRepo struct {
	payments map[uuid.UUID]*paymentDomain.Payment // keyed by booking ID
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*paymentDomain.Payment)}
}

func (r *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*paymentDomain.Payment, error) {
	p, ok := r.payments[bookingID]
	if !ok {
		return nil, domain.NewNotFoundError("Payment", bookingID.String())
	}
	return p, nil
}

func (r *fakePaymentRepo) ExistsByBookingID(_ context.Context, bookingID uuid.UUID) (bool, error) {
	_, ok := r.payments[bookingID]
	return ok, nil
}

func (r *fakePaymentRepo) ListByProfessionalID(_ context.Context, professionalID uuid.UUID, from, to *time.Time) ([]*paymentDomain.Payment, error) {
	var out []*paymentDomain.Payment
	for _, p := range r.payments {
		if p.ProfessionalID() != professionalID {
			continue
		}
		if from != nil && p.CreatedAt().Before(*from) {
			continue
		}
		if to != nil && !p.CreatedAt().Before(*to) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePaymentRepo) SumAll(_ context.Context) (paymentDomain.Totals, error) {
	var totals paymentDomain.Totals
	for _, p := range r.payments {
		totals.AmountCents += p.AmountCents()
		totals.PlatformFeeCents += p.PlatformFeeCents()
		totals.ProfessionalEarningsCents += p.ProfessionalEarningsCents()
		totals.Count++
	}
	return totals, nil
}

func (r *fakePaymentRepo) Save(_ context.Context, p *paymentDomain.Payment) error {
	if _, ok := r.payments[p.BookingID()]; ok {
		return domain.NewConflictError("booking has already been settled")
	}
	r.payments[p.BookingID()] = p
	return nil
}

// --- service repository fake ---

type fakeServiceRepo struct {
	services map[uuid.UUID]*serviceDomain.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[uuid.UUID]*serviceDomain.Service)}
}

func (r *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*serviceDomain.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, domain.NewNotFoundError("Service", id.String())
	}
	return svc, nil
}

func (r *fakeServiceRepo) FindActiveForProfessional(_ context.Context, serviceID, professionalID uuid.UUID) (*serviceDomain.Service, error) {
	svc, ok := r.services[serviceID]
	if !ok || !svc.IsActive() || !svc.IsOwnedBy(professionalID) {
		return nil, domain.NewNotFoundError("Service", serviceID.String())
	}
	return svc, nil
}

func (r *fakeServiceRepo) ListActive(_ context.Context, _ serviceDomain.ListFilter, _, _ int) ([]*serviceDomain.Service, int64, error) {
	var out []*serviceDomain.Service
	for _, svc := range r.services {
		if svc.IsActive() {
			out = append(out, svc)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeServiceRepo) FindByProfessionalID(_ context.Context, professionalID uuid.UUID) ([]*serviceDomain.Service, error) {
	var out []*serviceDomain.Service
	for _, svc := range r.services {
		if svc.IsOwnedBy(professionalID) {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Save(_ context.Context, svc *serviceDomain.Service) error {
	r.services[svc.ID()] = svc
	return nil
}

func (r *fakeServiceRepo) Update(_ context.Context, svc *serviceDomain.Service) error {
	if _, ok := r.services[svc.ID()]; !ok {
		return domain.NewNotFoundError("Service", svc.ID().String())
	}
	r.services[svc.ID()] = svc
	return nil
}

// --- user repository fake ---

type fakeUserRepo struct {
	users map[uuid.UUID]*userDomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*userDomain.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*userDomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("User", id.String())
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*userDomain.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, domain.NewNotFoundError("User", email)
}

func (r *fakeUserRepo) FindBookableProfessional(_ context.Context, id uuid.UUID) (*userDomain.User, error) {
	u, ok := r.users[id]
	if !ok || !u.IsBookableProfessional() {
		return nil, domain.NewNotFoundError("Professional", id.String())
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context, filter userDomain.ListFilter, _, _ int) ([]*userDomain.User, int64, error) {
	var out []*userDomain.User
	for _, u := range r.users {
		if matchesUserFilter(u, filter) {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Count(_ context.Context, filter userDomain.ListFilter) (int64, error) {
	var count int64
	for _, u := range r.users {
		if matchesUserFilter(u, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *userDomain.User) error {
	for _, existing := range r.users {
		if existing.Email() == u.Email() {
			return domain.NewConflictError("email is already registered")
		}
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *userDomain.User) error {
	if _, ok := r.users[u.ID()]; !ok {
		return domain.NewNotFoundError("User", u.ID().String())
	}
	r.users[u.ID()] = u
	return nil
}

func matchesUserFilter(u *userDomain.User, filter userDomain.ListFilter) bool {
	if filter.Role != nil && u.Role() != *filter.Role {
		return false
	}
	if filter.Approved != nil && u.IsApproved() != *filter.Approved {
		return false
	}
	return true
}

// --- seeding helpers ---

func seedProfessional(r *fakeUserRepo) *userDomain.User {
	u, err := userDomain.NewUser("Riley", uuid.NewString()+"@example.com", "555-0102", "hash", auth.RoleProfessional, "", "Austin", "TX")
	if err != nil {
		panic(err)
	}
	if err := u.SetApproved(true); err != nil {
		panic(err)
	}
	r.users[u.ID()] = u
	return u
}

func seedService(r *fakeServiceRepo, professionalID uuid.UUID, priceCents int64) *serviceDomain.Service {
	svc, err := serviceDomain.NewService(professionalID, "Gel Manicure", "", serviceDomain.CategoryNails, priceCents, 60)
	if err != nil {
		panic(err)
	}
	r.services[svc.ID()] = svc
	return svc
}
