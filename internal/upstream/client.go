package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/denzstore/storepanel/internal/models"
	"github.com/denzstore/storepanel/internal/remoteconfig"
)

// Client is HTTP client for the upstream provider API
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

// flexFloat accepts a JSON number or a numeric string. The provider
// returns prices as strings in some catalog revisions.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexString accepts a JSON string or number
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

type serviceEntry struct {
	Service     flexString `json:"service"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Price       flexFloat  `json:"price"`
	Min         int        `json:"min"`
	Max         int        `json:"max"`
	Refill      bool       `json:"refill"`
	Description string     `json:"description"`
}

type servicesResponse struct {
	Status   bool           `json:"status"`
	Services []serviceEntry `json:"services"`
	Msg      string         `json:"msg"`
}

// ServiceInfo is one catalog entry with its raw provider category.
type ServiceInfo struct {
	Entry    models.ServiceEntry
	Category string
}

// Services fetches the provider service catalog.
// POST /api/services {api_id, api_key}
func (c *Client) Services(ctx context.Context, creds remoteconfig.Credentials) ([]ServiceInfo, error) {
	var resp servicesResponse
	if err := c.post(ctx, "/api/services", map[string]any{
		"api_id":  creds.APIID,
		"api_key": creds.APIKey,
	}, &resp); err != nil {
		return nil, models.NewUpstreamError(err.Error())
	}
	if !resp.Status {
		return nil, models.NewUpstreamError(resp.Msg)
	}

	infos := make([]ServiceInfo, 0, len(resp.Services))
	for _, s := range resp.Services {
		infos = append(infos, ServiceInfo{
			Entry: models.ServiceEntry{
				ID:          string(s.Service),
				Name:        s.Name,
				Price:       float64(s.Price),
				Min:         s.Min,
				Max:         s.Max,
				Refill:      s.Refill,
				Description: s.Description,
			},
			Category: s.Category,
		})
	}

	return infos, nil
}

type orderResponse struct {
	Status bool       `json:"status"`
	Order  flexString `json:"order"`
	Price  flexFloat  `json:"price"`
	Msg    string     `json:"msg"`
}

// OrderResult is the provider order-creation result. OrderID is empty
// when the provider does not assign one; Price is the unit price.
type OrderResult struct {
	OrderID string
	Price   float64
}

// CreateOrder places an order with the provider.
// POST /api/order {api_id, api_key, service, target, quantity}
func (c *Client) CreateOrder(ctx context.Context, creds remoteconfig.Credentials, service, target string, quantity int) (*OrderResult, error) {
	var resp orderResponse
	if err := c.post(ctx, "/api/order", map[string]any{
		"api_id":   creds.APIID,
		"api_key":  creds.APIKey,
		"service":  service,
		"target":   target,
		"quantity": quantity,
	}, &resp); err != nil {
		return nil, models.NewUpstreamError(err.Error())
	}
	if !resp.Status {
		return nil, models.NewUpstreamError(resp.Msg)
	}

	return &OrderResult{
		OrderID: string(resp.Order),
		Price:   float64(resp.Price),
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body map[string]any, out any) error {
	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return err
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return err
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
