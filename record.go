package areaslack // import "kastelo.dev/areaslack"

import (
	"math"
	"strconv"
	"strings"
)

// Record is one line of an area/slack report.
type Record struct {
	Folder   string
	ChipArea Number
	Slack    Number
}

// Number is a float that may be absent. The zero value is absent.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a present Number.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// ParseNumber parses s as a decimal float. Anything that does not parse
// to a finite value is returned as an absent Number.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if isHex(s) {
		return Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Num(v)
}

// isHex reports whether s has a 0x prefix after an optional sign, which
// ParseFloat would otherwise accept as a hexadecimal float.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func (n Number) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}
