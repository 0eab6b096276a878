package pricefomatter

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/domain"
)

// MaxDisplayPrecision is the fixed maximum number of fractional digits of
// a display price
const MaxDisplayPrecision = 10

// PriceFormatter converts between smallest-unit integer amounts and
// decimal display strings, resolving currency decimals through the
// registry.
type PriceFormatter interface {
	// ToDisplay returns the display string and currency symbol for a raw
	// amount
	ToDisplay(ctx bCtx.Ctx, chainId domain.ChainId, currency domain.Address, raw *big.Int) (string, string, error)
	// ToRaw parses a display string into a raw amount. Non-numeric,
	// negative or sub-precision input fails with ErrInvalidAmount.
	ToRaw(ctx bCtx.Ctx, chainId domain.ChainId, currency domain.Address, display string) (*big.Int, error)
}

// FormatUnits divides raw by 10^decimals and renders at most
// MaxDisplayPrecision fractional digits, trailing zeros and a dangling
// decimal point stripped.
func FormatUnits(raw *big.Int, decimals int32) string {
	d := decimal.NewFromBigInt(raw, -decimals)
	s := d.StringFixed(MaxDisplayPrecision)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// ParseUnits converts a display string into a smallest-unit integer of
// the given decimals. Input that is not a number, is negative, or needs
// more precision than decimals allow fails with ErrInvalidAmount.
func ParseUnits(display string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(display))
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}
	if d.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	shifted := d.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, domain.ErrInvalidAmount
	}
	return shifted.BigInt(), nil
}
