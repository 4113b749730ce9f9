// Package format turns raw sync-client values into display strings.
package format

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DefaultPending is shown for sizes that are not known yet.
const DefaultPending = "Pending"

// Tier is one power-of-1024 size bracket.
type Tier struct {
	Suffix string
	Places int32
}

// Tiers is the ordered size scale. Each entry is 1024 times the previous one.
var Tiers = []Tier{
	{"B", 0},
	{"KB", 0},
	{"MB", 1},
	{"GB", 1},
	{"TB", 1},
	{"PB", 2},
	{"EB", 2},
	{"ZB", 2},
	{"YB", 2},
}

// SizeFormatter renders byte counts with a unit suffix.
type SizeFormatter struct {
	Pending string // Shown for negative byte counts
}

var defaultSizer = SizeFormatter{Pending: DefaultPending}

// Size formats bytes as a human-readable string (e.g., "12 MB", "1.5 GB").
func Size(bytes int64) string {
	return defaultSizer.Format(bytes)
}

// Format converts bytes to "<value> <suffix>", rounded half-up to the
// number of decimals of the chosen tier with trailing zeros removed.
func (f SizeFormatter) Format(bytes int64) string {
	if bytes < 0 {
		return f.Pending
	}

	tier := 0
	for n := bytes; n >= 1024 && tier < len(Tiers)-1; n /= 1024 {
		tier++
	}

	return scaled(bytes, tier).Round(Tiers[tier].Places).String() + " " + Tiers[tier].Suffix
}

// scaled returns bytes/1024^tier exactly: 1/1024^k == 5^(10k) * 10^(-10k).
func scaled(bytes int64, tier int) decimal.Decimal {
	exp := int64(10 * tier)
	v := new(big.Int).Exp(big.NewInt(5), big.NewInt(exp), nil)
	v.Mul(v, big.NewInt(bytes))
	return decimal.NewFromBigInt(v, int32(-exp))
}
