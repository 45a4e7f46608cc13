package unit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/chazu/stockyard/pkg/number"
)

var (
	// ErrUnknownUnit is returned when a quantity literal names a symbol that
	// is not a unit of the expected dimension.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrMissingUnit is returned when a quantity literal has no unit symbol.
	ErrMissingUnit = errors.New("missing unit")
)

// Unit describes how a value in some unit maps onto the canonical unit of
// its dimension: canonical = (value + Constant()) * Coefficient().
type Unit interface {
	Symbol() string
	Coefficient() number.Number
	Constant() number.Number
}

func toCanonical(u Unit, n number.Number) number.Number {
	return n.Add(u.Constant()).Mul(u.Coefficient())
}

func fromCanonical(u Unit, n number.Number) number.Number {
	return n.Quo(u.Coefficient()).Sub(u.Constant())
}

// parseQuantity parses "<decimal> <symbol>" (the space is optional) and
// returns the canonical value.
func parseQuantity(s, dimension string, units map[string]Unit) (number.Number, error) {
	text, symbol := splitQuantity(strings.TrimSpace(s))
	if symbol == "" {
		return number.Number{}, fmt.Errorf("unit: parse %s %q: %w", dimension, s, ErrMissingUnit)
	}
	u, ok := units[symbol]
	if !ok {
		return number.Number{}, fmt.Errorf("unit: parse %s %q: %w %q", dimension, s, ErrUnknownUnit, symbol)
	}
	n, err := number.Parse(text)
	if err != nil {
		return number.Number{}, fmt.Errorf("unit: parse %s %q: %w", dimension, s, err)
	}
	return toCanonical(u, n), nil
}

func splitQuantity(s string) (string, string) {
	if fields := strings.Fields(s); len(fields) == 2 {
		return fields[0], fields[1]
	}
	for i, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if (r == 'e' || r == 'E') && i > 0 && i+1 < len(s) && isExponentStart(s[i+1]) {
			continue
		}
		return strings.TrimSpace(s[:i]), s[i:]
	}
	return s, ""
}

func isExponentStart(c byte) bool {
	return c == '+' || c == '-' || (c >= '0' && c <= '9')
}

// decodeQuantityText accepts either a bare canonical number or a quantity
// literal.
func decodeQuantityText(s, dimension string, units map[string]Unit) (number.Number, error) {
	if n, err := number.Parse(strings.TrimSpace(s)); err == nil {
		return n, nil
	}
	return parseQuantity(s, dimension, units)
}

// unmarshalQuantityJSON decodes a JSON number (canonical) or string. The
// boolean result is false for JSON null.
func unmarshalQuantityJSON(data []byte, dimension string, units map[string]Unit) (number.Number, bool, error) {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		return number.Number{}, false, nil
	}
	if !strings.HasPrefix(text, `"`) {
		var n number.Number
		if err := n.UnmarshalJSON(data); err != nil {
			return number.Number{}, false, fmt.Errorf("unit: decode %s: %w", dimension, err)
		}
		return n, true, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return number.Number{}, false, fmt.Errorf("unit: decode %s: %w", dimension, err)
	}
	n, err := decodeQuantityText(s, dimension, units)
	return n, err == nil, err
}

func unmarshalQuantityYAML(value *yaml.Node, dimension string, units map[string]Unit) (number.Number, error) {
	var n number.Number
	if err := value.Decode(&n); err == nil {
		return n, nil
	}
	if value.Kind != yaml.ScalarNode {
		return number.Number{}, fmt.Errorf("unit: line %d: %s must be a scalar", value.Line, dimension)
	}
	n, err := parseQuantity(value.Value, dimension, units)
	if err != nil {
		return number.Number{}, fmt.Errorf("line %d: %w", value.Line, err)
	}
	return n, nil
}

func formatQuantity(n number.Number, canonical Unit) string {
	return n.String() + " " + canonical.Symbol()
}
