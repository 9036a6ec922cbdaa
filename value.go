package datatable

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

var dateTimeLayouts = []string{time.RFC3339Nano, dateTimeLayout, "2006-01-02T15:04:05", dateLayout}

// Display returns the string shown for the cell in a column of type typ.
// The formatted value wins when set; a nil value displays as "".
func (c Cell) Display(typ ColumnType) string {
	if c.Formatted != "" {
		return c.Formatted
	}
	return displayValue(typ, c.Value)
}

func displayValue(typ ColumnType, v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.String()
	case time.Time:
		return displayTime(typ, x)
	case *time.Time:
		if x == nil {
			return ""
		}
		return displayTime(typ, *x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

func displayTime(typ ColumnType, t time.Time) string {
	switch typ {
	case Date:
		return t.Format(dateLayout)
	case DateTime:
		return t.Format(dateTimeLayout)
	default:
		return t.Format(time.RFC3339)
	}
}

// ExactNumber is a number on the wire kept in its decimal text form. JSON and
// YAML emit it as a bare number with every digit intact.
type ExactNumber string

// MarshalJSON implements json.Marshaler.
func (n ExactNumber) MarshalJSON() ([]byte, error) { return []byte(n), nil }

// MarshalYAML implements yaml.Marshaler.
func (n ExactNumber) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: string(n)}, nil
}

// encodeValue converts a cell value into its wire form. Times in date and
// datetime columns become JavaScript date literals with a zero-based month,
// decimals become an [ExactNumber].
func encodeValue(typ ColumnType, v any) any {
	switch x := v.(type) {
	case time.Time:
		return encodeTime(typ, x)
	case *time.Time:
		if x == nil {
			return nil
		}
		return encodeTime(typ, *x)
	case decimal.Decimal:
		return ExactNumber(x.String())
	case *decimal.Decimal:
		if x == nil {
			return nil
		}
		return ExactNumber(x.String())
	default:
		return v
	}
}

// finite reports whether v is not a NaN or infinite float. JSON has no
// representation for those.
func finite(v any) bool {
	switch x := v.(type) {
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case float32:
		return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
	default:
		return true
	}
}

func encodeTime(typ ColumnType, t time.Time) any {
	switch typ {
	case Date:
		return fmt.Sprintf("Date(%d,%d,%d)", t.Year(), int(t.Month())-1, t.Day())
	case DateTime:
		return fmt.Sprintf("Date(%d,%d,%d,%d,%d,%d,%d)",
			t.Year(), int(t.Month())-1, t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
	default:
		return t.Format(time.RFC3339)
	}
}

// ParseValue converts text into a value of the given column type. Number
// columns yield float64, boolean columns bool, date and datetime columns
// time.Time. Blank input yields nil for every type except [String].
func ParseValue(typ ColumnType, s string) (any, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColumnType, typ)
	}
	if typ == String {
		return s, nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	switch typ {
	case Number:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s)
		}
		return f, nil
	case Boolean:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, s)
		}
		return b, nil
	case Date:
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a date", ErrInvalidValue, s)
		}
		return t, nil
	default:
		for _, layout := range dateTimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("%w: %q is not a datetime", ErrInvalidValue, s)
	}
}
