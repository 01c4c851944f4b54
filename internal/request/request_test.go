package request_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/harshitrajsinha/paystack-go/internal/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateParams struct {
	Code  string `json:"-" url:"-" path:"code"`
	Name  string `json:"name,omitempty" url:"name,omitempty"`
	Email string `json:"email,omitempty" url:"email,omitempty"`
}

type pathOnly struct {
	ID int64 `json:"-" url:"-" path:"id"`
}

func base(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("https://api.paystack.co/")
	require.NoError(t, err)
	return u
}

func body(t *testing.T, req *http.Request) string {
	t.Helper()
	if req.Body == nil {
		return ""
	}
	b, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	return string(b)
}

func TestNew_PathParamsLeaveTheBody(t *testing.T) {
	ep := request.Endpoint{Method: http.MethodPut, Path: "subaccount/{code}"}

	req, err := request.New(context.Background(), base(t), ep, &updateParams{Code: "ACCT_123", Name: "Shop"})

	require.NoError(t, err)
	assert.Equal(t, "https://api.paystack.co/subaccount/ACCT_123", req.URL.String())
	assert.JSONEq(t, `{"name":"Shop"}`, body(t, req))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}

func TestNew_GetSendsQuery(t *testing.T) {
	ep := request.Endpoint{Method: http.MethodGet, Path: "customer/{code}"}

	req, err := request.New(context.Background(), base(t), ep, &updateParams{Code: "CUS_1", Name: "a b", Email: "x@y.z"})

	require.NoError(t, err)
	assert.Equal(t, "/customer/CUS_1", req.URL.Path)
	assert.Equal(t, "a b", req.URL.Query().Get("name"))
	assert.Equal(t, "x@y.z", req.URL.Query().Get("email"))
	assert.False(t, req.URL.Query().Has("code"))
	assert.Nil(t, req.Body)
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestNew_GetWithoutParams(t *testing.T) {
	req, err := request.New(context.Background(), base(t), request.Endpoint{Method: http.MethodGet, Path: "balance"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "https://api.paystack.co/balance", req.URL.String())
	assert.Empty(t, req.URL.RawQuery)
}

func TestNew_PostWithoutParamsSendsEmptyObject(t *testing.T) {
	req, err := request.New(context.Background(), base(t), request.Endpoint{Method: http.MethodPost, Path: "transfer/enable_otp"}, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{}`, body(t, req))
}

func TestNew_DeleteBody(t *testing.T) {
	ep := request.Endpoint{Method: http.MethodDelete, Path: "dedicated_account/{id}"}

	req, err := request.New(context.Background(), base(t), ep, &pathOnly{ID: 42})
	require.NoError(t, err)
	assert.Equal(t, "/dedicated_account/42", req.URL.Path)
	assert.Nil(t, req.Body, "no body when every field is a path param")

	ep = request.Endpoint{Method: http.MethodDelete, Path: "virtual_terminal/{code}/split_code"}
	req, err = request.New(context.Background(), base(t), ep, &struct {
		Code      string `json:"-" path:"code"`
		SplitCode string `json:"split_code"`
	}{Code: "VT_1", SplitCode: "SPL_1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"split_code":"SPL_1"}`, body(t, req))
}

func TestNew_BasePathIsKept(t *testing.T) {
	u, err := url.Parse("http://127.0.0.1:8080/mock/")
	require.NoError(t, err)

	req, err := request.New(context.Background(), u, request.Endpoint{Method: http.MethodGet, Path: "bank"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/mock/bank", req.URL.String())
}

func TestNew_UnfilledPlaceholder(t *testing.T) {
	ep := request.Endpoint{Method: http.MethodGet, Path: "terminal/{terminal_id}/event/{event_id}"}

	_, err := request.New(context.Background(), base(t), ep, &struct {
		TerminalID string `json:"-" url:"-" path:"terminal_id"`
	}{TerminalID: "T1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "{event_id}")
}

func TestNew_EndpointOnContext(t *testing.T) {
	ep := request.Endpoint{Method: http.MethodGet, Path: "transaction/verify/{reference}"}

	req, err := request.New(context.Background(), base(t), ep, &struct {
		Reference string `json:"-" url:"-" path:"reference"`
	}{Reference: "ref_1"})
	require.NoError(t, err)

	got, ok := request.EndpointFrom(req.Context())
	require.True(t, ok)
	assert.Equal(t, ep, got)

	_, ok = request.EndpointFrom(context.Background())
	assert.False(t, ok)
}
