package marina

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monthly billing rates, dollars per foot per month, by location category.
var rates = map[Category]decimal.Decimal{
	Slip:    decimal.RequireFromString("12.50"),
	Land:    decimal.RequireFromString("14.00"),
	Trailer: decimal.RequireFromString("25.00"),
	Storage: decimal.RequireFromString("11.20"),
}

// MonthlyRate returns the per-foot monthly rate for a location category.
func MonthlyRate(c Category) Money {
	return M(rates[c], DefaultCurrency)
}

// ApplyMonthlyFees adds one month of charges to every vessel:
// length times the rate of its location category. It returns the total
// amount charged.
//
// There is no period tracking: calling this twice charges twice. The caller
// is responsible for invoking it once per billing period.
func (f *Fleet) ApplyMonthlyFees() Money {
	total := M(0, DefaultCurrency)
	for i := range f.vessels {
		v := &f.vessels[i]
		charge := MonthlyRate(v.Location.Category()).Mul(v.Length)
		v.Fees = v.Fees.Add(charge)
		total = total.Add(charge)
	}
	return total
}

// RecordPayment subtracts amount from the named vessel's balance.
//
// A payment greater than or equal to the balance is rejected with
// ErrExceedsBalance and changes nothing. Note that an exact full payment is
// rejected too; this boundary is preserved from the original billing rules.
func (f *Fleet) RecordPayment(name string, amount Money) error {
	i := f.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrVesselNotFound, name)
	}
	owed := f.vessels[i].Fees
	if amount.GreaterThanOrEqual(owed) {
		return fmt.Errorf("%w: that is more than the amount owed, %s", ErrExceedsBalance, owed)
	}
	f.vessels[i].Fees = owed.Sub(amount)
	return nil
}
