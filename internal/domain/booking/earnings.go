package booking

// DefaultPlatformFeePercent is the marketplace commission applied when no
// other rate is configured.
const DefaultPlatformFeePercent int64 = 20

// Split is the division of a gross booking amount between the platform and
// the professional. Amounts are integer cents.
type Split struct {
	TotalAmountCents          int64
	PlatformFeeCents          int64
	ProfessionalEarningsCents int64
}

// CalculateSplit divides totalAmountCents between platform fee and
// professional earnings. The earnings are derived by subtraction so that
// fee + earnings always equals the total exactly, whatever the fee
// percentage does to the division.
//
// Preconditions (enforced by the caller at booking creation):
// totalAmountCents > 0 and 0 <= feePercent <= 100.
func CalculateSplit(totalAmountCents, feePercent int64) Split {
	fee := totalAmountCents * feePercent / 100
	return Split{
		TotalAmountCents:          totalAmountCents,
		PlatformFeeCents:          fee,
		ProfessionalEarningsCents: totalAmountCents - fee,
	}
}
