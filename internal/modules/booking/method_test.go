package booking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skybook/internal/pkg/midtrans"
)

func payReq(method string) PayBookingRequest {
	return PayBookingRequest{
		BookingCode:   "AB12CD34EF56",
		FlightID:      1,
		PaymentMethod: method,
	}
}

func TestValidateMethod_CardRequiresCardFields(t *testing.T) {
	req := payReq(MethodCreditCard)
	err := validateMethod(req)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, MethodCreditCard, invalid.Method)
}

func TestValidateMethod_CardRejectsBankName(t *testing.T) {
	req := payReq(MethodCreditCard)
	req.CardNumber = "4811111111111114"
	req.CardCVV = "123"
	req.CardExpiry = "12/28"
	req.BankName = "bca"

	var invalid *InvalidInputError
	require.ErrorAs(t, validateMethod(req), &invalid)
	assert.Equal(t, MethodCreditCard, invalid.Method)
}

func TestValidateMethod_CardExpiryFormat(t *testing.T) {
	req := payReq(MethodCreditCard)
	req.CardNumber = "4811111111111114"
	req.CardCVV = "123"
	req.CardExpiry = "2028-12"

	assert.Error(t, validateMethod(req))
}

func TestValidateMethod_BankTransferNeedsKnownBank(t *testing.T) {
	req := payReq(MethodBankTransfer)
	req.BankName = "hsbc"

	var invalid *InvalidInputError
	require.ErrorAs(t, validateMethod(req), &invalid)

	req.BankName = "BCA"
	assert.NoError(t, validateMethod(req))
}

func TestValidateMethod_GopayRejectsForeignFields(t *testing.T) {
	req := payReq(MethodGopay)
	req.Store = "alfamart"

	var invalid *InvalidInputError
	require.ErrorAs(t, validateMethod(req), &invalid)
	assert.Equal(t, MethodGopay, invalid.Method)

	req = payReq(MethodGopay)
	req.CallbackURL = "https://example.com/cb"
	assert.NoError(t, validateMethod(req))
}

func TestValidateMethod_CounterStores(t *testing.T) {
	req := payReq(MethodCounter)
	require.Error(t, validateMethod(req)) // store missing

	req.Store = "indomaret"
	req.Message = "pickup note"
	assert.NoError(t, validateMethod(req))

	req.Store = "seven-eleven"
	assert.Error(t, validateMethod(req))
}

func TestValidateMethod_CounterRequiresMessage(t *testing.T) {
	req := payReq(MethodCounter)
	req.Store = "alfamart"

	var invalid *InvalidInputError
	require.ErrorAs(t, validateMethod(req), &invalid)
	assert.Equal(t, MethodCounter, invalid.Method)
	assert.Contains(t, invalid.Reason, "message")
}

func TestValidateMethod_BareMethodsTakeNoFields(t *testing.T) {
	for _, method := range []string{MethodMandiriBill, MethodPermata, MethodCardlessCredit} {
		assert.NoError(t, validateMethod(payReq(method)), method)

		req := payReq(method)
		req.CardNumber = "4811111111111114"
		assert.Error(t, validateMethod(req), method)
	}
}

func TestValidateMethod_UnknownMethod(t *testing.T) {
	var invalid *InvalidInputError
	require.ErrorAs(t, validateMethod(payReq("cash")), &invalid)
	assert.Equal(t, "cash", invalid.Method)
}

func TestPayloadFor_SetsExactlyOnePaymentType(t *testing.T) {
	cases := map[string]string{
		MethodCreditCard:     "credit_card",
		MethodBankTransfer:   "bank_transfer",
		MethodMandiriBill:    "echannel",
		MethodPermata:        "permata",
		MethodGopay:          "gopay",
		MethodCounter:        "cstore",
		MethodCardlessCredit: "akulaku",
	}

	for method, paymentType := range cases {
		req := payReq(method)
		req.BankName = "bca"
		req.Store = "alfamart"

		charge := midtrans.NewChargeRequest("ORDER", 500, midtrans.CustomerDetails{}, payloadFor(req, "tok"))

		raw, err := json.Marshal(charge)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, paymentType, decoded["payment_type"], method)
	}
}

func TestSplitExpiry(t *testing.T) {
	month, year, err := splitExpiry("03/27")
	require.NoError(t, err)
	assert.Equal(t, "03", month)
	assert.Equal(t, "2027", year)

	for _, bad := range []string{"", "0327", "3/27", "03/2027", "03-27"} {
		_, _, err := splitExpiry(bad)
		assert.Error(t, err, bad)
	}
}
