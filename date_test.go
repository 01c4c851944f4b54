package paystack_test

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/harshitrajsinha/paystack-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2024-01-01T00:00:00.000Z"},
		{"2024-01-01 13:04:05", "2024-01-01T13:04:05.000Z"},
		{"2024-01-01T13:04:05", "2024-01-01T13:04:05.000Z"},
		{"2024-01-01T13:04:05Z", "2024-01-01T13:04:05.000Z"},
		{"2024-01-01T13:04:05.123456+01:00", "2024-01-01T12:04:05.123Z"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := paystack.ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := paystack.ParseDate("01/02/2024")
	assert.Error(t, err)

	assert.Panics(t, func() { paystack.MustParseDate("yesterday") })
}

func TestDate_MarshalJSON(t *testing.T) {
	d := paystack.NewDate(time.Date(2025, 6, 30, 23, 15, 0, 0, time.FixedZone("EAT", 3*3600)))

	b, err := json.Marshal(struct {
		At *paystack.Date `json:"at"`
	}{d})

	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2025-06-30T20:15:00.000Z"}`, string(b))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var out struct {
		A *paystack.Date `json:"a"`
		B *paystack.Date `json:"b"`
		C *paystack.Date `json:"c"`
	}

	err := json.Unmarshal([]byte(`{"a":"2024-03-05T10:00:00.000Z","b":1709632800000,"c":null}`), &out)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T10:00:00.000Z", out.A.String())
	assert.True(t, out.A.Time().Equal(out.B.Time()))
	assert.Nil(t, out.C)
}

func TestDate_UnmarshalJSONRejectsGarbage(t *testing.T) {
	var d paystack.Date
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDate_EncodeValues(t *testing.T) {
	v, err := query.Values(struct {
		From *paystack.Date `url:"from,omitempty"`
		To   *paystack.Date `url:"to,omitempty"`
	}{From: paystack.MustParseDate("2024-02-29")})

	require.NoError(t, err)
	assert.Equal(t, url.Values{"from": {"2024-02-29T00:00:00.000Z"}}, v)
}
