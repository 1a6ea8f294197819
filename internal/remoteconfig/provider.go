package remoteconfig

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/denzstore/storepanel/internal/logger"
	"github.com/denzstore/storepanel/internal/models"
	"go.uber.org/zap"
)

// default base url of the panel
const defaultBaseURL = "https://denzpanelnya.turbohost.my.id"

var errNoCredentials = errors.New("config document has no apikey section")

// Credentials is operational credentials snapshot: panel base url,
// upstream provider id/key and payment gateway project/key.
type Credentials struct {
	BaseURL    string
	APIID      string
	APIKey     string
	Project    string
	PaymentKey string
}

// Defaults returns credentials used before the first successful refresh.
func Defaults() Credentials {
	return Credentials{BaseURL: defaultBaseURL}
}

// Provider keeps the active credentials snapshot and refreshes it from
// a remote JSON document. Readers always see a fully populated snapshot:
// the swap is whole-object under the mutex, never field-by-field in place.
type Provider struct {
	client *http.Client
	url    string

	mu  sync.RWMutex
	cur Credentials
}

// New creates provider with default credentials
func New(url string) *Provider {
	return &Provider{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		url: url,
		cur: Defaults(),
	}
}

// Current returns the active credentials snapshot
func (p *Provider) Current() Credentials {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cur
}

// flexString accepts a JSON string or number, some documents carry the
// provider id as a bare number
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

type configDocument struct {
	APIKey *struct {
		DNS        string     `json:"dns"`
		FayuID     flexString `json:"fayu_id"`
		FayuAPI    string     `json:"fayu_api"`
		Project    string     `json:"project"`
		PakasirAPI string     `json:"pakasir_api"`
	} `json:"apikey"`
}

// Refresh fetches the remote config document and swaps the active
// snapshot. On any failure the previous snapshot stays untouched.
func (p *Provider) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		logger.Log.Error("config refresh request failed", zap.Error(err))
		return err
	}
	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("config refresh bad status", zap.Int("code", resp.StatusCode))
		return models.ErrInternalError
	}

	doc := configDocument{}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		logger.Log.Error("config refresh decode failed", zap.Error(err))
		return err
	}
	if doc.APIKey == nil {
		logger.Log.Warn("config document is empty, keeping current credentials")
		return errNoCredentials
	}

	p.mu.Lock()
	next := Credentials{
		BaseURL:    doc.APIKey.DNS,
		APIID:      string(doc.APIKey.FayuID),
		APIKey:     doc.APIKey.FayuAPI,
		Project:    doc.APIKey.Project,
		PaymentKey: doc.APIKey.PakasirAPI,
	}
	if next.BaseURL == "" {
		next.BaseURL = p.cur.BaseURL
	}
	p.cur = next
	p.mu.Unlock()

	logger.Log.Info("credentials refreshed", zap.String("base_url", next.BaseURL))
	return nil
}
