package paystack_test

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/harshitrajsinha/paystack-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"id":302961,"reference":"qTPrJoy9Bx","amount":10000}}`)
	sig := sign(body, testKey)

	assert.True(t, paystack.VerifySignature(body, sig, testKey))
	assert.False(t, paystack.VerifySignature(body, sig, "sk_test_other"), "wrong secret")
	assert.False(t, paystack.VerifySignature(append(body, ' '), sig, testKey), "tampered body")
	assert.False(t, paystack.VerifySignature(body, "not-hex", testKey))
	assert.False(t, paystack.VerifySignature(body, "", testKey))
}

func TestParseEvent_ChargeSuccess(t *testing.T) {
	ev, err := paystack.ParseEvent([]byte(`{"event":"charge.success","data":{"id":302961,"reference":"qTPrJoy9Bx","amount":10000,"status":"success"}}`))

	require.NoError(t, err)
	assert.Equal(t, paystack.EventChargeSuccess, ev.Event)
	tx, ok := ev.Data.(*paystack.Transaction)
	require.True(t, ok, "data is %T", ev.Data)
	assert.Equal(t, "qTPrJoy9Bx", tx.Reference)
	assert.Equal(t, int64(10000), tx.Amount)
}

func TestParseEvent_Transfer(t *testing.T) {
	ev, err := paystack.ParseEvent([]byte(`{"event":"transfer.failed","data":{"transfer_code":"TRF_1","status":"failed"}}`))

	require.NoError(t, err)
	tr, ok := ev.Data.(*paystack.Transfer)
	require.True(t, ok, "data is %T", ev.Data)
	assert.Equal(t, "TRF_1", tr.TransferCode)
}

func TestParseEvent_UnknownKeepsRawData(t *testing.T) {
	ev, err := paystack.ParseEvent([]byte(`{"event":"charge.dispute.create","data":{"id":9}}`))

	require.NoError(t, err)
	raw, ok := ev.Data.(json.RawMessage)
	require.True(t, ok, "data is %T", ev.Data)
	assert.JSONEq(t, `{"id":9}`, string(raw))
}

func TestParseEvent_Malformed(t *testing.T) {
	_, err := paystack.ParseEvent([]byte(`{"data":{}}`))
	assert.Error(t, err)

	_, err = paystack.ParseEvent([]byte(`not json`))
	assert.Error(t, err)

	_, err = paystack.ParseEvent([]byte(`{"event":"charge.success","data":{"amount":"lots"}}`))
	assert.Error(t, err)
}

func TestClient_ParseWebhook(t *testing.T) {
	client, _ := newTestClient(t)
	body := []byte(`{"event":"refund.processed","data":{"id":1,"status":"processed"}}`)

	ev, err := client.ParseWebhook(body, sign(body, testKey))
	require.NoError(t, err)
	_, ok := ev.Data.(*paystack.Refund)
	assert.True(t, ok, "data is %T", ev.Data)

	_, err = client.ParseWebhook(body, sign(body, "sk_test_other"))
	assert.ErrorIs(t, err, paystack.ErrInvalidSignature)
}

const transferWebhook = `{
  "event": "transfer.success",
  "data": {
    "amount": 30000,
    "currency": "NGN",
    "domain": "test",
    "failures": null,
    "id": 37272792,
    "integration": {"id": 463433, "is_live": true, "business_name": "Boom Boom Industries NG"},
    "reason": "Have fun...",
    "reference": "1jhbs3ozmen0k7y5efmw",
    "source": "balance",
    "source_details": null,
    "status": "success",
    "titan_code": null,
    "transfer_code": "TRF_wpl1dem4967avzm",
    "transferred_at": null,
    "recipient": {
      "active": true,
      "createdAt": "2020-09-13T04:43:29.000Z",
      "currency": "NGN",
      "description": "",
      "domain": "test",
      "email": null,
      "id": 8690817,
      "integration": 463433,
      "metadata": null,
      "name": "Jack Sparrow",
      "recipient_code": "RCP_a8wkxiychzdzfgs",
      "type": "nuban",
      "updatedAt": "2020-09-13T04:43:29.000Z",
      "is_deleted": false,
      "details": {
        "authorization_code": null,
        "account_number": "0000000000",
        "account_name": null,
        "bank_code": "011",
        "bank_name": "First Bank of Nigeria"
      }
    },
    "session": {"provider": null, "id": null},
    "created_at": "2020-10-26T12:28:57.000Z",
    "updated_at": "2020-10-26T12:28:57.000Z",
    "fee_charged": 1000,
    "gateway_response": null
  }
}`

const chargeWebhook = `{
  "event": "charge.success",
  "data": {
    "id": 302961,
    "domain": "live",
    "status": "success",
    "reference": "qTPrJoy9Bx",
    "amount": 10000,
    "message": null,
    "gateway_response": "Approved by Financial Institution",
    "paid_at": "2016-09-30T21:10:19.000Z",
    "created_at": "2016-09-30T21:09:56.000Z",
    "channel": "card",
    "currency": "NGN",
    "ip_address": "41.242.49.37",
    "metadata": 0,
    "log": {
      "time_spent": 16,
      "attempts": 1,
      "authentication": "pin",
      "errors": 0,
      "success": false,
      "mobile": false,
      "input": [],
      "channel": null,
      "history": [
        {"type": "input", "message": "Filled these fields: card number, card expiry, card cvv", "time": 15},
        {"type": "action", "message": "Attempted to pay", "time": 15}
      ]
    },
    "fees": null,
    "customer": {
      "id": 68324,
      "first_name": "BoJack",
      "last_name": "Horseman",
      "email": "bojack@horseman.com",
      "customer_code": "CUS_qo38as2hpsgk2r0",
      "phone": null,
      "metadata": null,
      "risk_action": "default"
    },
    "authorization": {
      "authorization_code": "AUTH_f5rnfq9p",
      "bin": "539999",
      "last4": "8877",
      "exp_month": "08",
      "exp_year": "2020",
      "card_type": "mastercard DEBIT",
      "bank": "Guaranty Trust Bank",
      "country_code": "NG",
      "brand": "mastercard",
      "account_name": "BoJack Horseman"
    },
    "plan": {}
  }
}`

const paymentRequestWebhook = `{
  "event": "paymentrequest.pending",
  "data": {
    "id": 1089700,
    "domain": "test",
    "amount": 10000000,
    "currency": "NGN",
    "due_date": null,
    "has_invoice": false,
    "invoice_number": "INV-0042",
    "description": "Pay up",
    "pdf_url": null,
    "line_items": [],
    "tax": [],
    "request_code": "PRQ_y0paeo93jh99mho",
    "status": "pending",
    "paid": false,
    "paid_at": null,
    "metadata": null,
    "notifications": [{"sent_at": "2018-06-18T14:25:08.000Z", "channel": "email"}, null],
    "offline_reference": "3365451089700",
    "customer": 7454223,
    "created_at": "2018-06-18T14:25:08.000Z"
  }
}`

func TestParseEvent_FullPayloads(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, data any)
	}{
		{
			name: "transfer with integration object",
			body: transferWebhook,
			check: func(t *testing.T, data any) {
				tr, ok := data.(*paystack.Transfer)
				require.True(t, ok, "data is %T", data)
				assert.Equal(t, int64(463433), tr.Integration.ID)
				assert.Equal(t, "Boom Boom Industries NG", tr.Integration.BusinessName)
				assert.True(t, tr.Integration.IsLive)
				assert.Equal(t, "TRF_wpl1dem4967avzm", tr.TransferCode)
				assert.Equal(t, int64(1000), tr.FeeCharged)
				require.NotNil(t, tr.Session)
			},
		},
		{
			name: "transfer with integration id",
			body: `{"event":"transfer.reversed","data":{"id":1,"integration":463433,"status":"reversed"}}`,
			check: func(t *testing.T, data any) {
				tr := data.(*paystack.Transfer)
				assert.Equal(t, int64(463433), tr.Integration.ID)
				assert.Empty(t, tr.Integration.BusinessName)
			},
		},
		{
			name: "charge with numeric metadata and null fees",
			body: chargeWebhook,
			check: func(t *testing.T, data any) {
				tx, ok := data.(*paystack.Transaction)
				require.True(t, ok, "data is %T", data)
				assert.Equal(t, "AUTH_f5rnfq9p", tx.Authorization.AuthorizationCode)
				assert.Equal(t, "CUS_qo38as2hpsgk2r0", tx.Customer.CustomerCode)
				require.NotNil(t, tx.Log)
				assert.Len(t, tx.Log.History, 2)
			},
		},
		{
			name: "customer identification success",
			body: `{"event":"customeridentification.success","data":{"customer_id":"82796315","customer_code":"CUS_XXXXXXXXXXXXXXX","email":"email@email.com","identification":{"country":"NG","type":"bvn","value":"200*****677"}}}`,
			check: func(t *testing.T, data any) {
				ci, ok := data.(*paystack.CustomerIdentification)
				require.True(t, ok, "data is %T", data)
				assert.Equal(t, paystack.FlexString("82796315"), ci.CustomerID)
				assert.Equal(t, "200*****677", ci.Identification.Value)
			},
		},
		{
			name: "customer identification failed",
			body: `{"event":"customeridentification.failed","data":{"customer_id":82796315,"customer_code":"CUS_XXXXXXXXXXXXXXX","email":"email@email.com","identification":{"country":"NG","type":"bank_account","bvn":"123*****456","account_number":"012****345","bank_code":"999991"},"reason":"Account number or BVN is incorrect"}}`,
			check: func(t *testing.T, data any) {
				ci := data.(*paystack.CustomerIdentification)
				assert.Equal(t, paystack.FlexString("82796315"), ci.CustomerID)
				assert.Equal(t, "Account number or BVN is incorrect", ci.Reason)
				assert.Equal(t, "999991", ci.Identification.BankCode)
			},
		},
		{
			name: "dedicated account assigned",
			body: `{"event":"dedicatedaccount.assign.success","data":{"customer":{"id":100110,"first_name":"John","last_name":"Doe","email":"johndoe@test.com","customer_code":"CUS_hcekca0j0bbg2m4","phone":"+2348100000000","metadata":{},"risk_action":"default","international_format_phone":"+2348100000000"},"dedicated_account":{"bank":{"name":"Test Bank","id":20,"slug":"test-bank"},"account_name":"PAYSTACK/John Doe","account_number":"1234567890","assigned":true,"currency":"NGN","metadata":null,"active":true,"id":987654,"created_at":"2022-06-21T17:12:40.000Z","updated_at":"2022-08-12T14:02:51.000Z","assignment":{"integration":100123,"assignee_id":100110,"assignee_type":"Customer","expired":false,"account_type":"PAY-WITH-TRANSFER-RECURRING","assigned_at":"2022-08-12T14:02:51.614Z","expired_at":null}}}}`,
			check: func(t *testing.T, data any) {
				da, ok := data.(*paystack.DedicatedAccountAssignment)
				require.True(t, ok, "data is %T", data)
				assert.Equal(t, "1234567890", da.DedicatedAccount.AccountNumber)
				assert.Equal(t, "test-bank", da.DedicatedAccount.Bank.Slug)
				assert.Nil(t, da.DedicatedAccount.Assignment.ExpiredAt)
			},
		},
		{
			name: "dedicated account assignment failed",
			body: `{"event":"dedicatedaccount.assign.failed","data":{"customer":{"id":100110,"first_name":"John","last_name":"Doe","email":"johndoe@test.com","customer_code":"CUS_hcekca0j0bbg2m4","phone":"+2348100000000","metadata":{},"risk_action":"default","international_format_phone":"+2348100000000"},"dedicated_account":null}}`,
			check: func(t *testing.T, data any) {
				da := data.(*paystack.DedicatedAccountAssignment)
				assert.Nil(t, da.DedicatedAccount)
				assert.Equal(t, "CUS_hcekca0j0bbg2m4", da.Customer.CustomerCode)
			},
		},
		{
			name: "payment request with string invoice number",
			body: paymentRequestWebhook,
			check: func(t *testing.T, data any) {
				pr, ok := data.(*paystack.PaymentRequest)
				require.True(t, ok, "data is %T", data)
				assert.Equal(t, paystack.FlexString("INV-0042"), pr.InvoiceNumber)
				assert.Equal(t, "PRQ_y0paeo93jh99mho", pr.RequestCode)
				assert.Len(t, pr.Notifications, 2)
			},
		},
		{
			name: "refund",
			body: `{"event":"refund.processed","data":{"status":"success","transaction_reference":"1641367998441","refund_reference":"RF_1","amount":10000,"currency":"NGN","processor":"mastercard","customer":{"first_name":"Damilola","last_name":"Odujoko","email":"damilola@example.com"},"integration":412829,"domain":"live"}}`,
			check: func(t *testing.T, data any) {
				rf, ok := data.(*paystack.Refund)
				require.True(t, ok, "data is %T", data)
				assert.Equal(t, "1641367998441", rf.TransactionReference)
				assert.Equal(t, "damilola@example.com", rf.Customer.Email)
				assert.Equal(t, int64(412829), rf.Integration)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := paystack.ParseEvent([]byte(tt.body))
			require.NoError(t, err)
			tt.check(t, ev.Data)
		})
	}
}

func TestClient_ParseWebhookTransferPayload(t *testing.T) {
	client, _ := newTestClient(t)
	body := []byte(transferWebhook)

	ev, err := client.ParseWebhook(body, sign(body, testKey))

	require.NoError(t, err)
	assert.Equal(t, paystack.EventTransferSuccess, ev.Event)
}
