package paystack_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/harshitrajsinha/paystack-go"
	"github.com/harshitrajsinha/paystack-go/internal/mocks"
	"github.com/harshitrajsinha/paystack-go/paystacktest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKey = "sk_test_0123456789"

// clearEnv keeps the developer's environment out of client construction
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PAYSTACK_SECRET", "PAYSTACK_BASE_URL", "PAYSTACK_TIMEOUT", "PAYSTACK_DEBUG", "PAYSTACK_LOG_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func newTestClient(t *testing.T, opts ...paystack.Option) (*paystack.Client, *paystacktest.Server) {
	t.Helper()
	clearEnv(t)
	srv := paystacktest.NewServer(t)
	client, err := paystack.New(testKey, append([]paystack.Option{paystack.WithBaseURL(srv.URL)}, opts...)...)
	require.NoError(t, err)
	return client, srv
}

func lastRequest(t *testing.T, srv *paystacktest.Server) paystacktest.Request {
	t.Helper()
	req, ok := srv.Last()
	require.True(t, ok, "no request reached the server")
	return req
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNew_SecretKeyRequired(t *testing.T) {
	clearEnv(t)

	client, err := paystack.New("")

	assert.Nil(t, client)
	require.ErrorIs(t, err, paystack.ErrSecretKeyRequired)
	assert.Contains(t, err.Error(), "secret key is required")
}

func TestNew_WhitespaceSecretKey(t *testing.T) {
	clearEnv(t)

	_, err := paystack.New("   ")

	assert.ErrorIs(t, err, paystack.ErrSecretKeyRequired)
}

func TestNew_SecretKeyFromEnv(t *testing.T) {
	clearEnv(t)
	srv := paystacktest.NewServer(t)
	srv.OK(http.MethodGet, "/balance", []any{})
	t.Setenv("PAYSTACK_SECRET", "sk_test_from_env")

	client, err := paystack.New("", paystack.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.TransfersControl.CheckBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk_test_from_env", lastRequest(t, srv).Header.Get("Authorization"))
}

func TestNew_ExplicitKeyWinsOverEnv(t *testing.T) {
	clearEnv(t)
	srv := paystacktest.NewServer(t)
	srv.OK(http.MethodGet, "/balance", []any{})
	t.Setenv("PAYSTACK_SECRET", "sk_test_from_env")

	client, err := paystack.New("sk_test_explicit", paystack.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.TransfersControl.CheckBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk_test_explicit", lastRequest(t, srv).Header.Get("Authorization"))
}

func TestNew_DefaultBaseURL(t *testing.T) {
	clearEnv(t)

	client, err := paystack.New(testKey)

	require.NoError(t, err)
	assert.Equal(t, "https://api.paystack.co/", client.BaseURL())
}

func TestNewFromConfig(t *testing.T) {
	clearEnv(t)
	srv := paystacktest.NewServer(t)
	srv.OK(http.MethodGet, "/country", []any{})
	t.Setenv("PAYSTACK_BASE_URL", "http://127.0.0.1:1")

	client, err := paystack.NewFromConfig(paystack.Config{SecretKey: testKey, BaseURL: srv.URL, Timeout: paystack.Duration(time.Second)})
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/", client.BaseURL(), "config overrides env")

	_, err = client.Miscellaneous.ListCountries(context.Background())
	assert.NoError(t, err)
}

func TestNew_BaseURLFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYSTACK_BASE_URL", "http://localhost:4010/")

	client, err := paystack.New(testKey)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4010/", client.BaseURL())
}

func TestCall_SendsHeaders(t *testing.T) {
	client, srv := newTestClient(t, paystack.WithUserAgent("shop/1.0"))
	srv.OK(http.MethodGet, "/balance", []map[string]any{{"currency": "NGN", "balance": 150000}})

	res, err := client.TransfersControl.CheckBalance(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Status)
	require.Len(t, res.Data, 1)
	assert.Equal(t, int64(150000), res.Data[0].Balance)

	req := lastRequest(t, srv)
	assert.Equal(t, "Bearer "+testKey, req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "shop/1.0", req.Header.Get("User-Agent"))
}

func TestCall_APIError(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Handle(http.MethodGet, "/transaction/verify/{reference}", http.StatusBadRequest,
		map[string]any{"status": false, "message": "Transaction reference not found", "data": map[string]any{"ref": "x"}})

	res, err := client.Transactions.Verify(context.Background(), "missing_ref")

	assert.Nil(t, res)
	var apiErr *paystack.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, apiErr.Status)
	assert.Equal(t, "Transaction reference not found", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, map[string]any{"ref": "x"}, apiErr.Data)
	assert.Equal(t, "paystack: 400 Transaction reference not found", apiErr.Error())

	var httpErr *paystack.HTTPError
	require.ErrorAs(t, err, &httpErr, "the original failure is kept as the cause")
	assert.Equal(t, http.MethodGet, httpErr.Method)
	assert.True(t, strings.HasSuffix(httpErr.URL, "/transaction/verify/missing_ref"))

	b, err := json.Marshal(apiErr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":false,"message":"Transaction reference not found","statusCode":400,"data":{"ref":"x"}}`, string(b))
}

func TestCall_APIErrorWithoutJSONBody(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Handle(http.MethodGet, "/balance", http.StatusBadGateway, "<html>upstream down</html>")

	_, err := client.TransfersControl.CheckBalance(context.Background())

	var apiErr *paystack.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, apiErr.Status)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestCall_InvalidPayloadSendsNothing(t *testing.T) {
	clearEnv(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := mocks.NewMockRoundTripper(ctrl)
	rt.EXPECT().RoundTrip(gomock.Any()).Times(0)

	client, err := paystack.New(testKey, paystack.WithHTTPClient(&http.Client{Transport: rt}))
	require.NoError(t, err)

	_, err = client.Transactions.Initialize(context.Background(), &paystack.InitializeTransactionParams{
		Amount: "5000",
		Email:  "not-an-email",
	})

	var verr *paystack.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("email"))
	assert.False(t, verr.Has("amount"))
}

func TestCall_NilParamsAreValidated(t *testing.T) {
	clearEnv(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := mocks.NewMockRoundTripper(ctrl)
	rt.EXPECT().RoundTrip(gomock.Any()).Times(0)

	client, err := paystack.New(testKey, paystack.WithHTTPClient(&http.Client{Transport: rt}))
	require.NoError(t, err)

	_, err = client.Transactions.Initialize(context.Background(), nil)

	var verr *paystack.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("email"))
	assert.True(t, verr.Has("amount"))
}

func TestCall_ExactlyOneRoundTrip(t *testing.T) {
	clearEnv(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := mocks.NewMockRoundTripper(ctrl)
	rt.EXPECT().RoundTrip(gomock.Any()).DoAndReturn(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		return jsonResponse(http.StatusOK, `{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"ref_1"}}`), nil
	}).Times(1)

	client, err := paystack.New(testKey, paystack.WithHTTPClient(&http.Client{Transport: rt}))
	require.NoError(t, err)

	res, err := client.Transactions.Initialize(context.Background(), &paystack.InitializeTransactionParams{
		Amount: "5000",
		Email:  "customer@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc", res.Data.AuthorizationURL)
	assert.Equal(t, "Authorization URL created", res.Message)
}

func TestCall_TransportErrorIsWrapped(t *testing.T) {
	clearEnv(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := mocks.NewMockRoundTripper(ctrl)
	rt.EXPECT().RoundTrip(gomock.Any()).Return(nil, errors.New("connection reset"))

	client, err := paystack.New(testKey, paystack.WithHTTPClient(&http.Client{Transport: rt}))
	require.NoError(t, err)

	_, err = client.Miscellaneous.ListCountries(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	var apiErr *paystack.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestCall_RepeatedReadsAreNotCached(t *testing.T) {
	client, srv := newTestClient(t)
	srv.OK(http.MethodGet, "/customer/{code}", map[string]any{"id": 1, "customer_code": "CUS_1", "email": "a@b.co"})

	for i := 0; i < 2; i++ {
		res, err := client.Customers.Fetch(context.Background(), "CUS_1")
		require.NoError(t, err)
		assert.Equal(t, "CUS_1", res.Data.CustomerCode)
	}

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, reqs[0].Path, reqs[1].Path)
	assert.Equal(t, reqs[0].Query, reqs[1].Query)
}

func TestCall_Cancellation(t *testing.T) {
	client, srv := newTestClient(t)
	srv.HandleFunc(http.MethodGet, "/balance", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.TransfersControl.CheckBalance(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCall_Timeout(t *testing.T) {
	client, srv := newTestClient(t, paystack.WithTimeout(50*time.Millisecond))
	srv.HandleFunc(http.MethodGet, "/balance", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	start := time.Now()
	_, err := client.TransfersControl.CheckBalance(context.Background())

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCall_DebugLogsFullURL(t *testing.T) {
	var buf bytes.Buffer
	client, srv := newTestClient(t, paystack.WithDebug(true), paystack.WithLogger(log.New(&buf, "", 0)))
	srv.OK(http.MethodGet, "/bank", []any{})

	_, err := client.Miscellaneous.ListBanks(context.Background(), &paystack.ListBanksParams{Country: "ghana", PerPage: 5})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), srv.URL+"/bank?")
	assert.Contains(t, buf.String(), "country=ghana")
	assert.Contains(t, buf.String(), "perPage=5")
}

func TestCall_NoLogsByDefault(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	client, srv := newTestClient(t)
	srv.OK(http.MethodGet, "/country", []any{})

	_, err := client.Miscellaneous.ListCountries(context.Background())

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestCall_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, srv := newTestClient(t, paystack.WithMetrics(reg))
	srv.OK(http.MethodGet, "/transaction/verify/{reference}", map[string]any{"id": 1, "status": "success"})

	for _, ref := range []string{"ref_one", "ref_two"} {
		_, err := client.Transactions.Verify(context.Background(), ref)
		require.NoError(t, err)
	}

	count, err := testutil.GatherAndCount(reg, "paystack_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one series for the endpoint template, not one per reference")

	expected := `
# HELP paystack_client_requests_total Total requests sent to the Paystack API
# TYPE paystack_client_requests_total counter
paystack_client_requests_total{endpoint="transaction/verify/{reference}",method="GET",status="200"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "paystack_client_requests_total"))
}

// slowBalance answers /balance after delay unless the request is cancelled first
func slowBalance(srv *paystacktest.Server, delay time.Duration) {
	srv.HandleFunc(http.MethodGet, "/balance", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Balances retrieved","data":[]}`))
	})
}

func TestNew_KeepsHTTPClientTimeout(t *testing.T) {
	client, srv := newTestClient(t, paystack.WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	slowBalance(srv, 2*time.Second)

	start := time.Now()
	_, err := client.TransfersControl.CheckBalance(context.Background())

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNew_WithTimeoutReplacesHTTPClientTimeout(t *testing.T) {
	client, srv := newTestClient(t,
		paystack.WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}),
		paystack.WithTimeout(5*time.Second),
	)
	slowBalance(srv, 200*time.Millisecond)

	_, err := client.TransfersControl.CheckBalance(context.Background())

	require.NoError(t, err)
}

func TestNew_EnvTimeoutReplacesHTTPClientTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYSTACK_TIMEOUT", "50ms")
	srv := paystacktest.NewServer(t)
	slowBalance(srv, 2*time.Second)

	client, err := paystack.New(testKey, paystack.WithBaseURL(srv.URL), paystack.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	require.NoError(t, err)

	start := time.Now()
	_, err = client.TransfersControl.CheckBalance(context.Background())

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewFromConfig_ZeroTimeoutDisablesEnvTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYSTACK_TIMEOUT", "50ms")
	srv := paystacktest.NewServer(t)
	slowBalance(srv, 200*time.Millisecond)

	client, err := paystack.NewFromConfig(paystack.Config{SecretKey: testKey, BaseURL: srv.URL, Timeout: paystack.Duration(0)})
	require.NoError(t, err)

	_, err = client.TransfersControl.CheckBalance(context.Background())

	require.NoError(t, err)
}

func TestNewFromConfig_DebugFalseOverridesEnv(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	clearEnv(t)
	t.Setenv("PAYSTACK_DEBUG", "true")
	srv := paystacktest.NewServer(t)
	srv.OK(http.MethodGet, "/bank", []any{})

	client, err := paystack.NewFromConfig(paystack.Config{SecretKey: testKey, BaseURL: srv.URL, Debug: paystack.Bool(false)})
	require.NoError(t, err)

	_, err = client.Miscellaneous.ListBanks(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestNewFromConfig_NilDebugKeepsEnv(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	clearEnv(t)
	t.Setenv("PAYSTACK_DEBUG", "true")
	srv := paystacktest.NewServer(t)
	srv.OK(http.MethodGet, "/bank", []any{})

	client, err := paystack.NewFromConfig(paystack.Config{SecretKey: testKey, BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Miscellaneous.ListBanks(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), srv.URL+"/bank")
}
