package booking

import (
	"fmt"
	"strings"

	"skybook/internal/pkg/midtrans"
)

// Payment method names as accepted on the wire; they follow the provider's
// payment_type vocabulary.
const (
	MethodCreditCard     = "credit_card"
	MethodBankTransfer   = "bank_transfer"
	MethodMandiriBill    = "echannel"
	MethodPermata        = "permata"
	MethodGopay          = "gopay"
	MethodCounter        = "cstore"
	MethodCardlessCredit = "akulaku"
)

var counterStores = map[string]bool{"alfamart": true, "indomaret": true}
var transferBanks = map[string]bool{"bca": true, "bni": true, "bri": true}

// fieldSet tracks which optional fields a request actually populated.
type fieldSet struct {
	card     bool
	bank     bool
	store    bool
	message  bool
	callback bool
}

func fieldsOf(req PayBookingRequest) fieldSet {
	return fieldSet{
		card:     req.CardNumber != "" || req.CardCVV != "" || req.CardExpiry != "",
		bank:     req.BankName != "",
		store:    req.Store != "",
		message:  req.Message != "",
		callback: req.CallbackURL != "",
	}
}

func reject(method, reason string) error {
	return &InvalidInputError{Method: method, Reason: reason}
}

// validateMethod checks the request's fields against the chosen method:
// every field the method needs must be present and every field it does not
// know must be absent. Unknown methods are rejected outright rather than
// falling through to a charge with no payment type.
func validateMethod(req PayBookingRequest) error {
	f := fieldsOf(req)

	switch req.PaymentMethod {
	case MethodCreditCard:
		if req.CardNumber == "" || req.CardCVV == "" || req.CardExpiry == "" {
			return reject(req.PaymentMethod, "cardNumber, cardCvv and cardExpiry are required")
		}
		if _, _, err := splitExpiry(req.CardExpiry); err != nil {
			return reject(req.PaymentMethod, err.Error())
		}
		if f.bank || f.store || f.message || f.callback {
			return reject(req.PaymentMethod, "only card fields are accepted")
		}

	case MethodBankTransfer:
		if req.BankName == "" {
			return reject(req.PaymentMethod, "bankName is required")
		}
		if !transferBanks[strings.ToLower(req.BankName)] {
			return reject(req.PaymentMethod, "bankName must be one of bca, bni, bri")
		}
		if f.card || f.store || f.message || f.callback {
			return reject(req.PaymentMethod, "only bankName is accepted")
		}

	case MethodCounter:
		if req.Store == "" || req.Message == "" {
			return reject(req.PaymentMethod, "store and message are required")
		}
		if !counterStores[strings.ToLower(req.Store)] {
			return reject(req.PaymentMethod, "store must be alfamart or indomaret")
		}
		if f.card || f.bank || f.callback {
			return reject(req.PaymentMethod, "only store and message are accepted")
		}

	case MethodGopay:
		if f.card || f.bank || f.store || f.message {
			return reject(req.PaymentMethod, "only callbackUrl is accepted")
		}

	case MethodMandiriBill, MethodPermata, MethodCardlessCredit:
		if f.card || f.bank || f.store || f.message || f.callback {
			return reject(req.PaymentMethod, "method takes no extra fields")
		}

	default:
		return reject(req.PaymentMethod, "unknown payment method")
	}
	return nil
}

// payloadFor builds the provider payload for an already-validated request.
// tokenID is only consulted for card payments.
func payloadFor(req PayBookingRequest, tokenID string) midtrans.Payload {
	switch req.PaymentMethod {
	case MethodCreditCard:
		return midtrans.CreditCard{TokenID: tokenID}
	case MethodBankTransfer:
		return midtrans.BankTransfer{Bank: strings.ToLower(req.BankName)}
	case MethodMandiriBill:
		return midtrans.MandiriBill{}
	case MethodPermata:
		return midtrans.Permata{}
	case MethodGopay:
		return midtrans.Gopay{CallbackURL: req.CallbackURL}
	case MethodCounter:
		return midtrans.Counter{Store: strings.ToLower(req.Store), Message: req.Message}
	case MethodCardlessCredit:
		return midtrans.CardlessCredit{}
	}
	return nil
}

// splitExpiry parses "MM/YY" into the month and four-digit year the
// tokenization endpoint expects.
func splitExpiry(expiry string) (month, year string, err error) {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return "", "", fmt.Errorf("cardExpiry must be formatted MM/YY")
	}
	return parts[0], "20" + parts[1], nil
}
