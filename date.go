package paystack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// isoLayout matches what JavaScript's Date.prototype.toISOString produces, which the API expects
const isoLayout = "2006-01-02T15:04:05.000Z"

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date is a point in time sent to the API as an ISO-8601 UTC string with millisecond precision
type Date struct {
	t time.Time
}

// NewDate wraps t
func NewDate(t time.Time) *Date {
	return &Date{t: t}
}

// ParseDate reads RFC 3339 timestamps, `2006-01-02T15:04:05`, `2006-01-02 15:04:05` and plain `2006-01-02` dates.
// Inputs without a zone are taken as UTC.
func ParseDate(s string) (*Date, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &Date{t: t}, nil
		}
	}
	return nil, fmt.Errorf("error parsing date %q, expected an ISO-8601 date or timestamp", s)
}

// MustParseDate is like ParseDate but panics on malformed input. Use it for constants.
func MustParseDate(s string) *Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the wrapped time
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether d holds the zero time
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.t.UTC().Format(isoLayout)
}

// MarshalJSON encodes d as an ISO-8601 string
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts any layout ParseDate does, or milliseconds since the epoch
func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("error parsing date %s, %w", b, err)
		}
		d.t = time.UnixMilli(ms).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// EncodeValues adds d to a query string under key
func (d Date) EncodeValues(key string, v *url.Values) error {
	v.Set(key, d.String())
	return nil
}
