// Package units converts between wei integers and human ether decimals.
// Conversion happens at the presentation boundary only; comparisons stay on *big.Int.
package units

import (
	"fmt"
	"math/big"
	"strings"

	"carpet-auction-house/internal/auctionerrors"

	"github.com/shopspring/decimal"
)

const (
	etherDecimals = 18
	// maxAmountLen bounds the input before any arithmetic; a uint256 has 78 digits
	maxAmountLen = 100
	maxWeiBits   = 256
)

// FormatEther renders a wei amount as an ether decimal string ("1.5")
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -etherDecimals).String()
}

// DisplayEther renders a wei amount with the ETH suffix ("1.5 ETH")
func DisplayEther(wei *big.Int) string {
	return FormatEther(wei) + " ETH"
}

// ParseEther converts a plain ether decimal string to wei. Exponent notation and
// results that do not fit a uint256 are rejected.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty amount", auctionerrors.ErrInvalidAmount)
	}
	if len(s) > maxAmountLen {
		return nil, fmt.Errorf("%w: amount longer than %d characters", auctionerrors.ErrInvalidAmount, maxAmountLen)
	}
	if strings.ContainsAny(s, "eE") {
		return nil, fmt.Errorf("%w: %q uses exponent notation", auctionerrors.ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", auctionerrors.ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%w: %q is negative", auctionerrors.ErrInvalidAmount, s)
	}
	wei := d.Shift(etherDecimals)
	if !wei.IsInteger() {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", auctionerrors.ErrInvalidAmount, s, etherDecimals)
	}
	v := wei.BigInt()
	if v.BitLen() > maxWeiBits {
		return nil, fmt.Errorf("%w: %q does not fit in %d bits", auctionerrors.ErrInvalidAmount, s, maxWeiBits)
	}
	return v, nil
}
