package paystack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Response is the envelope every successful call returns
type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta describes a page of results. Page-based endpoints fill Total through PageCount,
// cursor-based ones fill Next and Previous.
type Meta struct {
	Total     FlexInt `json:"total,omitempty"`
	Skipped   FlexInt `json:"skipped,omitempty"`
	PerPage   FlexInt `json:"perPage,omitempty"`
	Page      FlexInt `json:"page,omitempty"`
	PageCount FlexInt `json:"pageCount,omitempty"`
	Next      *string `json:"next,omitempty"`
	Previous  *string `json:"previous,omitempty"`
}

// FlexInt is an integer the API sometimes encodes as a JSON string
type FlexInt int64

// UnmarshalJSON accepts 12, "12" and null
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(b), 64)
		if ferr != nil {
			return fmt.Errorf("error parsing %q as integer, %w", b, err)
		}
		v = int64(f)
	}
	*n = FlexInt(v)
	return nil
}

// Message is the response of operations whose data the API leaves undocumented
type Message = Response[json.RawMessage]

// FlexString is a string the API sometimes encodes as a JSON number
type FlexString string

// UnmarshalJSON accepts "abc", 12 and null
func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("error parsing %s as string or number, %w", b, err)
	}
	*s = FlexString(n.String())
	return nil
}

// IntegrationRef is the integration a record belongs to.
// Most endpoints send only the ID; transfer webhooks send the integration object.
type IntegrationRef struct {
	ID           int64  `json:"id"`
	IsLive       bool   `json:"is_live,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	LogoPath     string `json:"logo_path,omitempty"`
}

// UnmarshalJSON accepts an integration ID or an integration object
func (i *IntegrationRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '{' {
		type plain IntegrationRef
		var v plain
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("error parsing integration, %w", err)
		}
		*i = IntegrationRef(v)
		return nil
	}
	var id FlexInt
	if err := id.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("error parsing integration, %w", err)
	}
	*i = IntegrationRef{ID: int64(id)}
	return nil
}
