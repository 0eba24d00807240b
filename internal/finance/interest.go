// Package finance holds the closed-form interest and annuity helpers.
// All arithmetic is decimal; results are rounded to two places.
package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// pow raises base to a non-negative integer power by repeated squaring.
// Decimal multiplication is exact, so no precision is lost here.
func pow(base decimal.Decimal, n int) decimal.Decimal {
	result := one
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// SimpleInterest returns principal * (1 + time*rate)
func SimpleInterest(principal, time, rate decimal.Decimal) decimal.Decimal {
	return principal.Mul(one.Add(time.Mul(rate))).Round(2)
}

// CompoundInterest returns principal * (1 + rate)^time
func CompoundInterest(principal decimal.Decimal, time int, rate decimal.Decimal) (decimal.Decimal, error) {
	if time < 0 {
		return decimal.Zero, fmt.Errorf("time must not be negative, got %d", time)
	}
	return principal.Mul(pow(one.Add(rate), time)).Round(2), nil
}

// CompoundInterestWithPayments grows principal over term periods with a fixed
// payment added every period. When endOfPeriod is false the first payment is
// made up front. Interest accrues term-1 times.
func CompoundInterestWithPayments(principal, payment decimal.Decimal, term int, rate decimal.Decimal, endOfPeriod bool) (decimal.Decimal, error) {
	if term < 0 {
		return decimal.Zero, fmt.Errorf("term must not be negative, got %d", term)
	}

	if !endOfPeriod {
		principal = principal.Add(payment)
	}
	for i := 1; i < term; i++ {
		amount := principal.Mul(rate)
		principal = principal.Add(amount).Add(payment)
	}
	return principal.Round(2), nil
}

// SavingsCalculator returns the periodic payment needed to grow presentValue
// into futureValue over term periods. When endOfPeriod is false the rate is
// discounted to rate/(1+rate) first.
func SavingsCalculator(presentValue, futureValue decimal.Decimal, term int, rate decimal.Decimal, endOfPeriod bool) (decimal.Decimal, error) {
	if term <= 0 {
		return decimal.Zero, fmt.Errorf("term must be positive, got %d", term)
	}
	if rate.Equal(one.Neg()) {
		return decimal.Zero, fmt.Errorf("rate must not be -1")
	}

	if !endOfPeriod {
		rate = rate.Div(one.Add(rate))
	}

	// A zero rate degenerates to an even split
	if rate.IsZero() {
		return futureValue.Sub(presentValue).Div(decimal.NewFromInt(int64(term))).Round(2), nil
	}

	growth := pow(one.Add(rate), term)
	if growth.Equal(one) {
		return decimal.Zero, fmt.Errorf("rate %s over %d periods has no growth to solve for", rate, term)
	}
	net := futureValue.Sub(presentValue.Mul(growth))
	return net.Div(growth.Sub(one)).Round(2), nil
}
