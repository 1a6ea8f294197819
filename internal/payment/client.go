package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/denzstore/storepanel/internal/models"
	"github.com/denzstore/storepanel/internal/remoteconfig"
)

// Client is HTTP client for the payment gateway
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates new Client instance
func NewClient(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
	}
}

type qrisRequest struct {
	Project string  `json:"project"`
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
	APIKey  string  `json:"api_key"`
}

type qrisResponse struct {
	Payment struct {
		PaymentNumber string `json:"payment_number"`
	} `json:"payment"`
}

// CreateQRIS requests a QR payment code for the order amount.
// POST /api/transactioncreate/qris {project, order_id, amount, api_key}
func (c *Client) CreateQRIS(ctx context.Context, creds remoteconfig.Credentials, orderID string, amount float64) (string, error) {
	reqURL, err := url.JoinPath(c.baseURL, "/api/transactioncreate/qris")
	if err != nil {
		return "", err
	}

	buf, err := json.Marshal(qrisRequest{
		Project: creds.Project,
		OrderID: orderID,
		Amount:  amount,
		APIKey:  creds.PaymentKey,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", models.NewUpstreamError(resp.Status)
	}

	qris := qrisResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&qris); err != nil {
		return "", err
	}
	if qris.Payment.PaymentNumber == "" {
		return "", models.NewUpstreamError("empty payment number")
	}

	return qris.Payment.PaymentNumber, nil
}
