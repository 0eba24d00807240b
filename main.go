package main

import (
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/leengari/csvjoin/internal/finance"
	"github.com/leengari/csvjoin/internal/logging"
)

// Prints the interest and savings figures for a sample plan
func main() {
	logger, closeFn := logging.SetupLogger(logging.Options{Level: slog.LevelInfo})
	defer closeFn()

	principal := decimal.NewFromInt(123456)
	rate := decimal.RequireFromString("0.08")

	// 1. Simple interest
	simple := finance.SimpleInterest(principal, decimal.NewFromInt(23), rate)
	logger.Info("simple interest", "principal", principal, "years", 23, "total", finance.FormatIndian(simple))

	// 2. Compound interest
	compound, err := finance.CompoundInterest(principal, 23, rate)
	if err != nil {
		logger.Error("compound interest failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("compound interest", "principal", principal, "years", 23, "total", finance.FormatIndian(compound))

	// 3. Yearly payments at the start of each year
	saved, err := finance.CompoundInterestWithPayments(decimal.Zero, decimal.RequireFromString("368970.52"), 35, decimal.RequireFromString("0.10"), false)
	if err != nil {
		logger.Error("compound interest with payments failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("compound interest with payments", "years", 35, "total", finance.FormatIndian(saved))

	// 4. Payment needed to reach a target
	payment, err := finance.SavingsCalculator(decimal.Zero, decimal.NewFromInt(100000000), 35, decimal.RequireFromString("0.10"), true)
	if err != nil {
		logger.Error("savings calculation failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("savings plan", "target", finance.FormatIndian(decimal.NewFromInt(100000000)), "yearly_payment", finance.FormatIndian(payment))
}
