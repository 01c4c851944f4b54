package paystack_test

import (
	"strings"
	"testing"

	"github.com/harshitrajsinha/paystack-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	ref := paystack.NewReference("order_")

	assert.True(t, strings.HasPrefix(ref, "order_"))
	assert.Len(t, ref, len("order_")+32)
	assert.NotEqual(t, ref, paystack.NewReference("order_"))
}

func TestNewReference_LongPrefixIsCut(t *testing.T) {
	ref := paystack.NewReference(strings.Repeat("p", 40))

	assert.Len(t, ref, 50)
	assert.True(t, strings.HasPrefix(ref, strings.Repeat("p", 18)))
}

func TestNewReference_FitsTransferBounds(t *testing.T) {
	for _, prefix := range []string{"", "t", strings.Repeat("x", 60)} {
		n := len(paystack.NewReference(prefix))
		assert.GreaterOrEqual(t, n, 16)
		assert.LessOrEqual(t, n, 50)
	}
}

func TestToSubunit(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"150", 15000},
		{"150.5", 15050},
		{"0.01", 1},
		{"1999.99", 199999},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := paystack.ToSubunit(decimal.RequireFromString(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToSubunit_TooPrecise(t *testing.T) {
	_, err := paystack.ToSubunit(decimal.RequireFromString("10.005"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than two decimal places")
}

func TestFromSubunit(t *testing.T) {
	assert.Equal(t, "150.5", paystack.FromSubunit(15050).String())
	assert.True(t, decimal.RequireFromString("0.01").Equal(paystack.FromSubunit(1)))
}

func TestPaymentPageQR(t *testing.T) {
	png, err := paystack.PaymentPageQR("buy-a-mug", 256)

	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), png[:8])
	assert.Equal(t, paystack.PaymentPageBaseURL+"buy-a-mug", paystack.PaymentPageURL("buy-a-mug"))
}
