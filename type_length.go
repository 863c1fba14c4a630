package marina

import (
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Length is a vessel length in feet.
type Length struct {
	value decimal.Decimal
}

func L[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Length {
	return Length{value: newDecimal(value)}
}

// ParseLength parses a length, tolerantly: unparsable text becomes zero.
// This silent fallback is part of the file format contract.
func ParseLength(s string) Length {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Length{}
	}
	return Length{value: d}
}

func (l Length) Equal(n Length) bool { return l.value.Equal(n.value) }
func (l Length) IsZero() bool        { return l.value.IsZero() }
func (l Length) IsNegative() bool    { return l.value.IsNegative() }

// String formats the length with no fractional part, as persisted in the
// fleet file. Fractional feet do not survive a round-trip.
func (l Length) String() string { return l.value.StringFixed(0) }
