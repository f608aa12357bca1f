package ordinal

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Value is a normalized ordinal input: an exact integer of any size, a
// finite number with a fractional part, or the infinity sentinel standing
// for an unspecified position ("nth"), together with its sign. The zero
// Value is 0.
type Value struct {
	abs      *big.Int
	frac     string // decimal digits of a non-integral magnitude
	infinite bool
	negative bool
	raw      *string
}

// Int returns the Value for n.
func Int(n int64) Value {
	abs := big.NewInt(n)
	negative := abs.Sign() < 0
	return Value{abs: abs.Abs(abs), negative: negative}
}

// BigInt returns the Value for n. n is copied, later changes to it are not
// observed. A nil n is reported as ErrInvalidValue.
func BigInt(n *big.Int) (Value, error) {
	if n == nil {
		return Value{}, fmt.Errorf("%w: nil *big.Int", ErrInvalidValue)
	}
	abs := new(big.Int).Abs(n)
	return Value{abs: abs, negative: n.Sign() < 0}, nil
}

// Inf returns the infinity sentinel. A negative sign yields "nth to last",
// anything else "nth".
func Inf(sign int) Value {
	return Value{infinite: true, negative: sign < 0}
}

// ParseValue reads a numeric string. Decimal integers of any length are kept
// exact, "Infinity" and "Inf" (any case, optionally signed) map to the
// sentinel, other number syntax ("2.5", "1e3") is read exactly and a blank
// string is 0.
func ParseValue(s string) (Value, error) {
	v, err := parseNumeric(s)
	if err != nil {
		return Value{}, err
	}
	v.raw = &s
	return v, nil
}

// NormalizeValue converts the inputs accepted by Formatter.Format into a Value.
func NormalizeValue(value any) (Value, error) {
	switch v := value.(type) {
	case nil:
		return Value{}, fmt.Errorf("%w: nil", ErrInvalidValue)
	case Value:
		return v, nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return fromUint(uint64(v)), nil
	case uint16:
		return fromUint(uint64(v)), nil
	case uint32:
		return fromUint(uint64(v)), nil
	case uint64:
		return fromUint(v), nil
	case *big.Int:
		return BigInt(v)
	case big.Int:
		return BigInt(&v)
	case float32:
		return fromFloat(float64(v), 32)
	case float64:
		return fromFloat(v, 64)
	case json.Number:
		return ParseValue(string(v))
	case string:
		return ParseValue(v)
	default:
		return Value{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, value)
	}
}

// IsInf reports whether v is the infinity sentinel.
func (v Value) IsInf() bool {
	return v.infinite
}

// Sign returns -1 for values below zero and 1 otherwise, zero included.
func (v Value) Sign() int {
	if v.negative {
		return -1
	}
	return 1
}

// IsInt reports whether v is a whole number.
func (v Value) IsInt() bool {
	return !v.infinite && v.frac == ""
}

// Abs returns a copy of the magnitude, or nil for the sentinel and for
// values with a fractional part.
func (v Value) Abs() *big.Int {
	if !v.IsInt() {
		return nil
	}
	if v.abs == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.abs)
}

// String is the plain, non ordinal rendering of v. Values parsed from a
// string render as that string, unchanged, blank strings included.
func (v Value) String() string {
	if v.raw != nil {
		return *v.raw
	}

	sign := ""
	if v.negative {
		sign = "-"
	}
	if v.infinite {
		return sign + "Infinity"
	}
	return sign + v.magnitude().digits()
}

func (v Value) magnitude() magnitude {
	if v.infinite {
		return magnitude{}
	}
	if v.frac != "" {
		return magnitude{frac: v.frac}
	}
	if v.abs == nil {
		return magnitude{n: new(big.Int)}
	}
	return magnitude{n: v.abs}
}

func fromUint(n uint64) Value {
	return Value{abs: new(big.Int).SetUint64(n)}
}

func fromFloat(f float64, bitSize int) (Value, error) {
	switch {
	case math.IsNaN(f):
		return Value{}, fmt.Errorf("%w: NaN", ErrInvalidValue)
	case math.IsInf(f, 1):
		return Inf(1), nil
	case math.IsInf(f, -1):
		return Inf(-1), nil
	case f != math.Trunc(f):
		// Shortest decimal that reads back as f, so 0.1 stays "0.1".
		return Value{
			frac:     strconv.FormatFloat(math.Abs(f), 'f', -1, bitSize),
			negative: f < 0,
		}, nil
	}

	// Integral float64 values convert without rounding.
	n, _ := big.NewFloat(f).Int(nil)
	return Value{abs: n.Abs(n), negative: n.Sign() < 0}, nil
}

// fromRat keeps integral r exact and renders other values as decimals.
func fromRat(r *big.Rat) Value {
	negative := r.Sign() < 0
	if r.IsInt() {
		return Value{abs: new(big.Int).Abs(r.Num()), negative: negative}
	}
	return Value{frac: decimalDigits(new(big.Rat).Abs(r)), negative: negative}
}

// decimalDigits renders r with exactly as many decimals as it needs. r must
// come from decimal or binary notation, whose denominators only hold the
// factors 2 and 5.
func decimalDigits(r *big.Rat) string {
	scaled := new(big.Rat).Set(r)
	ten := big.NewRat(10, 1)
	prec := 0
	for !scaled.IsInt() {
		scaled.Mul(scaled, ten)
		prec++
	}
	return r.FloatString(prec)
}

func parseNumeric(s string) (Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Value{abs: new(big.Int)}, nil
	}

	body := strings.TrimLeft(trimmed, "+-")
	if len(trimmed)-len(body) > 1 {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	if strings.EqualFold(body, "infinity") || strings.EqualFold(body, "inf") {
		if strings.HasPrefix(trimmed, "-") {
			return Inf(-1), nil
		}
		return Inf(1), nil
	}

	if n, ok := new(big.Int).SetString(trimmed, 10); ok {
		return Value{abs: new(big.Int).Abs(n), negative: n.Sign() < 0}, nil
	}

	// Fractional and exponent notation, read exactly through big.Rat.
	if strings.Contains(body, "/") {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	r, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q is not numeric", ErrInvalidValue, s)
	}
	return fromRat(r), nil
}
