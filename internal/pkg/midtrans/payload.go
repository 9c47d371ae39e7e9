package midtrans

// Payload is the closed set of provider charge payloads, one variant per
// payment method. The unexported method keeps the union closed: callers
// cannot smuggle in a request with no payment type set.
type Payload interface {
	apply(r *ChargeRequest)
}

type creditCardCharge struct {
	TokenID        string `json:"token_id"`
	Authentication bool   `json:"authentication"`
}

type bankTransferCharge struct {
	Bank string `json:"bank"`
}

type echannelCharge struct {
	BillInfo1 string `json:"bill_info1"`
	BillInfo2 string `json:"bill_info2"`
}

type gopayCharge struct {
	EnableCallback bool   `json:"enable_callback"`
	CallbackURL    string `json:"callback_url,omitempty"`
}

type cstoreCharge struct {
	Store             string `json:"store"`
	Message           string `json:"message"`
	AlfamartFreeText1 string `json:"alfamart_free_text_1,omitempty"`
	AlfamartFreeText2 string `json:"alfamart_free_text_2,omitempty"`
	AlfamartFreeText3 string `json:"alfamart_free_text_3,omitempty"`
}

// CreditCard charges a previously tokenized card.
type CreditCard struct {
	TokenID string
}

func (p CreditCard) apply(r *ChargeRequest) {
	r.PaymentType = "credit_card"
	r.CreditCard = &creditCardCharge{TokenID: p.TokenID, Authentication: true}
}

type BankTransfer struct {
	Bank string
}

func (p BankTransfer) apply(r *ChargeRequest) {
	r.PaymentType = "bank_transfer"
	r.BankTransfer = &bankTransferCharge{Bank: p.Bank}
}

type MandiriBill struct{}

func (MandiriBill) apply(r *ChargeRequest) {
	r.PaymentType = "echannel"
	r.EChannel = &echannelCharge{BillInfo1: "Payment:", BillInfo2: "Online purchase"}
}

type Permata struct{}

func (Permata) apply(r *ChargeRequest) {
	r.PaymentType = "permata"
}

type Gopay struct {
	CallbackURL string
}

func (p Gopay) apply(r *ChargeRequest) {
	r.PaymentType = "gopay"
	r.Gopay = &gopayCharge{EnableCallback: true, CallbackURL: p.CallbackURL}
}

// Counter is an over-the-counter store payment (alfamart or indomaret).
type Counter struct {
	Store   string
	Message string
}

func (p Counter) apply(r *ChargeRequest) {
	r.PaymentType = "cstore"
	cs := &cstoreCharge{Store: p.Store, Message: p.Message}
	if p.Store == "alfamart" {
		cs.AlfamartFreeText1 = "1st row of receipt,"
		cs.AlfamartFreeText2 = "This is the 2nd row,"
		cs.AlfamartFreeText3 = "3rd row. The end."
	}
	r.CStore = cs
}

type CardlessCredit struct{}

func (CardlessCredit) apply(r *ChargeRequest) {
	r.PaymentType = "akulaku"
}

// NewChargeRequest assembles the full provider request for one payload.
func NewChargeRequest(orderID string, grossAmount int64, customer CustomerDetails, payload Payload) ChargeRequest {
	req := ChargeRequest{
		TransactionDetails: TransactionDetails{OrderID: orderID, GrossAmount: grossAmount},
		CustomerDetails:    customer,
	}
	payload.apply(&req)
	return req
}
