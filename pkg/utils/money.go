package utils

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ToCents converts a currency amount to the smallest currency unit without
// binary float drift (19.99 must become 1999, never 1998).
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ParseInt parses a string to int with a fallback default value
func ParseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}
