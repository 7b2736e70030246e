package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Localized is a bilingual value used for customer-facing text and price
// fields, serialized as {"tr": ..., "en": ...}.
type Localized struct {
	TR string `json:"tr"`
	EN string `json:"en"`
}

// ParseLocalized normalizes the three shapes bilingual fields arrive in:
// a {tr, en} object (as JSON), a JSON-encoded string containing such an
// object, or a plain string. Plain and unparseable input becomes the
// English fallback value. It never fails.
func ParseLocalized(raw string) Localized {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Localized{}
	}

	var l Localized
	if err := json.Unmarshal([]byte(raw), &l); err == nil {
		return l
	}

	// Legacy callers double-encode: the value is a JSON string that
	// itself contains the {tr, en} object.
	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &l); err == nil {
			return l
		}
		return Localized{EN: inner}
	}

	return Localized{EN: raw}
}

// UnmarshalJSON accepts an object, a string holding an encoded object,
// or a plain string, per ParseLocalized.
func (l *Localized) UnmarshalJSON(data []byte) error {
	type plain Localized
	var p plain
	if err := json.Unmarshal(data, &p); err == nil {
		*l = Localized(p)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = ParseLocalized(s)
		return nil
	}

	// Malformed locale data must not fail a request.
	*l = Localized{}
	return nil
}

// Get resolves the value for a language code, preferring the requested
// locale, then English, then the empty string.
func (l Localized) Get(lang string) string {
	if lang == "tr" && l.TR != "" {
		return l.TR
	}
	if lang == "en" && l.EN != "" {
		return l.EN
	}
	if l.EN != "" {
		return l.EN
	}
	return l.TR
}

// IsZero reports whether neither locale is set.
func (l Localized) IsZero() bool {
	return l.TR == "" && l.EN == ""
}

// Value stores the pair as a JSON column.
func (l Localized) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode localized value: %w", err)
	}
	return string(b), nil
}

// Scan reads a JSON column, tolerating legacy plain-string rows.
func (l *Localized) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = Localized{}
		return nil
	case []byte:
		*l = ParseLocalized(string(v))
		return nil
	case string:
		*l = ParseLocalized(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Localized", src)
	}
}
