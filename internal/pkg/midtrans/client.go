package midtrans

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skybook/internal/config"
)

// Client talks to the Midtrans Core API: card tokenization and charging.
// The HTTP client is injected so tests can point it at a stub server.
type Client struct {
	cfg  config.MidtransConfig
	http *http.Client
}

func NewClient(cfg config.MidtransConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{cfg: cfg, http: httpClient}
}

type CardDetails struct {
	Number   string
	CVV      string
	ExpMonth string
	ExpYear  string
}

type tokenResponse struct {
	StatusCode    string `json:"status_code"`
	StatusMessage string `json:"status_message"`
	TokenID       string `json:"token_id"`
}

// TokenizeCard exchanges raw card details for a one-time charge token.
func (c *Client) TokenizeCard(ctx context.Context, card CardDetails) (string, error) {
	q := url.Values{}
	q.Set("client_key", c.cfg.ClientKey)
	q.Set("card_number", card.Number)
	q.Set("card_cvv", card.CVV)
	q.Set("card_exp_month", card.ExpMonth)
	q.Set("card_exp_year", card.ExpYear)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v2/token?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("midtrans tokenize: %w", err)
	}
	defer resp.Body.Close()

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("midtrans tokenize: decode response: %w", err)
	}
	if body.StatusCode != "200" || body.TokenID == "" {
		return "", fmt.Errorf("midtrans tokenize: status %s: %s", body.StatusCode, body.StatusMessage)
	}
	return body.TokenID, nil
}

type TransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type CustomerDetails struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ChargeRequest struct {
	PaymentType        string              `json:"payment_type,omitempty"`
	TransactionDetails TransactionDetails  `json:"transaction_details"`
	CustomerDetails    CustomerDetails     `json:"customer_details"`
	CreditCard         *creditCardCharge   `json:"credit_card,omitempty"`
	BankTransfer       *bankTransferCharge `json:"bank_transfer,omitempty"`
	EChannel           *echannelCharge     `json:"echannel,omitempty"`
	Gopay              *gopayCharge        `json:"gopay,omitempty"`
	CStore             *cstoreCharge       `json:"cstore,omitempty"`
}

type ChargeResponse struct {
	StatusCode        string `json:"status_code"`
	StatusMessage     string `json:"status_message"`
	TransactionID     string `json:"transaction_id"`
	OrderID           string `json:"order_id"`
	PaymentType       string `json:"payment_type"`
	TransactionStatus string `json:"transaction_status"`
	RedirectURL       string `json:"redirect_url,omitempty"`
}

// Charge submits a charge request built from one of the Payload variants.
func (c *Client) Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v2/charge", strings.NewReader(string(raw)))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.cfg.ServerKey, "")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("midtrans charge: %w", err)
	}
	defer resp.Body.Close()

	var body ChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("midtrans charge: decode response: %w", err)
	}
	if body.StatusCode != "200" && body.StatusCode != "201" {
		return nil, fmt.Errorf("midtrans charge: status %s: %s", body.StatusCode, body.StatusMessage)
	}
	return &body, nil
}
