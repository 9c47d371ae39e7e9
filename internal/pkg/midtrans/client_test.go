package midtrans

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skybook/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.MidtransConfig{
		ServerKey: "server-key",
		ClientKey: "client-key",
		BaseURL:   srv.URL,
	}, srv.Client())
}

func TestTokenizeCard_BuildsQuery(t *testing.T) {
	var gotQuery map[string]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"client_key":     r.URL.Query().Get("client_key"),
			"card_number":    r.URL.Query().Get("card_number"),
			"card_cvv":       r.URL.Query().Get("card_cvv"),
			"card_exp_month": r.URL.Query().Get("card_exp_month"),
			"card_exp_year":  r.URL.Query().Get("card_exp_year"),
		}
		json.NewEncoder(w).Encode(map[string]string{"status_code": "200", "token_id": "tok-123"})
	})

	token, err := c.TokenizeCard(context.Background(), CardDetails{
		Number:   "4811111111111114",
		CVV:      "123",
		ExpMonth: "12",
		ExpYear:  "2027",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "client-key", gotQuery["client_key"])
	assert.Equal(t, "4811111111111114", gotQuery["card_number"])
	assert.Equal(t, "12", gotQuery["card_exp_month"])
	assert.Equal(t, "2027", gotQuery["card_exp_year"])
}

func TestTokenizeCard_ProviderRejection(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status_code": "411", "status_message": "token expired"})
	})

	_, err := c.TokenizeCard(context.Background(), CardDetails{Number: "4811", CVV: "123"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "411")
}

func TestCharge_SetsAuthAndPaymentType(t *testing.T) {
	var gotBody ChargeRequest
	var gotUser string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUser, _, _ = r.BasicAuth()
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{
			"status_code":        "201",
			"transaction_id":     "txn-1",
			"transaction_status": "pending",
		})
	})

	req := NewChargeRequest("ord-1", 1500000, CustomerDetails{FirstName: "Ayu", Email: "ayu@example.com"}, BankTransfer{Bank: "bca"})
	resp, err := c.Charge(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "server-key", gotUser)
	assert.Equal(t, "bank_transfer", gotBody.PaymentType)
	require.NotNil(t, gotBody.BankTransfer)
	assert.Equal(t, "bca", gotBody.BankTransfer.Bank)
	assert.Equal(t, int64(1500000), gotBody.TransactionDetails.GrossAmount)
	assert.Equal(t, "txn-1", resp.TransactionID)
}

func TestCharge_DeclinedIsError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status_code": "402", "status_message": "payment declined"})
	})

	req := NewChargeRequest("ord-2", 100, CustomerDetails{}, Gopay{})
	_, err := c.Charge(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "declined")
}

func TestNewChargeRequest_Variants(t *testing.T) {
	tests := []struct {
		name        string
		payload     Payload
		paymentType string
	}{
		{"credit card", CreditCard{TokenID: "tok"}, "credit_card"},
		{"mandiri bill", MandiriBill{}, "echannel"},
		{"permata", Permata{}, "permata"},
		{"gopay", Gopay{CallbackURL: "https://app/payment-success"}, "gopay"},
		{"counter alfamart", Counter{Store: "alfamart", Message: "hi"}, "cstore"},
		{"counter indomaret", Counter{Store: "indomaret", Message: "hi"}, "cstore"},
		{"cardless credit", CardlessCredit{}, "akulaku"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewChargeRequest("ord", 1, CustomerDetails{}, tt.payload)
			assert.Equal(t, tt.paymentType, req.PaymentType)
		})
	}
}

func TestNewChargeRequest_AlfamartFreeText(t *testing.T) {
	req := NewChargeRequest("ord", 1, CustomerDetails{}, Counter{Store: "alfamart", Message: "note"})

	require.NotNil(t, req.CStore)
	assert.NotEmpty(t, req.CStore.AlfamartFreeText1)

	req = NewChargeRequest("ord", 1, CustomerDetails{}, Counter{Store: "indomaret", Message: "note"})
	require.NotNil(t, req.CStore)
	assert.Empty(t, req.CStore.AlfamartFreeText1)
}
