package epay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// defaultAPIEndpoint is used when the configured submit URL cannot be mapped
// to a status-query endpoint.
const defaultAPIEndpoint = "https://pay.epayapi.com/api.php"

const (
	submitPath = "/submit.php"
	apiPath    = "/api.php"
)

// Client queries the epay gateway for transaction state
type Client struct {
	client      *http.Client
	apiURL      string
	merchantID  string
	merchantKey string
}

// New creates new Client instance. The status-query endpoint is derived from
// the submit endpoint once, at construction time.
func New(submitURL, merchantID, merchantKey string) *Client {
	return &Client{
		// no client timeout, cancellation is up to the request context
		client:      &http.Client{},
		apiURL:      deriveAPIURL(submitURL),
		merchantID:  merchantID,
		merchantKey: merchantKey,
	}
}

// deriveAPIURL swaps the submit path segment for the api path segment,
// falling back to the default endpoint for unrecognized shapes.
func deriveAPIURL(submitURL string) string {
	u, err := url.Parse(submitURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return defaultAPIEndpoint
	}
	if !strings.HasSuffix(u.Path, submitPath) {
		return defaultAPIEndpoint
	}

	u.Path = strings.TrimSuffix(u.Path, submitPath) + apiPath
	u.RawQuery = ""
	u.Fragment = ""

	return u.String()
}

// OrderStatus is the gateway's order query envelope.
// Code 1 means the query itself succeeded, Status then carries the
// transaction state: 0 — refunded, 1 — paid.
type OrderStatus struct {
	Code   int    `json:"code"`
	Status *int   `json:"status"`
	Msg    string `json:"msg"`
}

// QueryOrder asks the gateway for the current state of the transaction
// identified by the shop order number.
// GET <api>?act=order&pid=<merchant id>&key=<merchant key>&out_trade_no=<order number>
func (c *Client) QueryOrder(ctx context.Context, orderNumber string) (*OrderStatus, error) {
	query := url.Values{}
	query.Set("act", "order")
	query.Set("pid", c.merchantID)
	query.Set("key", c.merchantKey)
	query.Set("out_trade_no", orderNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned %s", resp.Status)
	}

	status := OrderStatus{}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}

	return &status, nil
}
