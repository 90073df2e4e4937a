// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/profitpulse/backend/internal/application/adapter"
)

// shopifyClient implements the adapter.ShopifyClient interface against the
// Shopify admin OAuth endpoints.
type shopifyClient struct {
	apiKey      string
	apiSecret   string
	scopes      string
	redirectURI string
	httpClient  *http.Client
}

// NewShopifyClient creates a new Shopify client instance.
func NewShopifyClient(apiKey, apiSecret, scopes, redirectURI string) adapter.ShopifyClient {
	return &shopifyClient{
		apiKey:      apiKey,
		apiSecret:   apiSecret,
		scopes:      scopes,
		redirectURI: redirectURI,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthorizeURL builds the merchant-facing install URL for the shop.
func (c *shopifyClient) AuthorizeURL(shop, state string) string {
	query := url.Values{}
	query.Set("client_id", c.apiKey)
	query.Set("scope", c.scopes)
	query.Set("state", state)
	query.Set("redirect_uri", c.redirectURI)
	return fmt.Sprintf("https://%s/admin/oauth/authorize?%s", shop, query.Encode())
}

// ExchangeAccessToken exchanges a temporary authorization code for a
// permanent access token.
func (c *shopifyClient) ExchangeAccessToken(ctx context.Context, shop, code string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"client_id":     c.apiKey,
		"client_secret": c.apiSecret,
		"code":          code,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode token request: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s/admin/oauth/access_token", shop)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token exchange response missing access_token")
	}

	return body.AccessToken, nil
}

// VerifyCallbackHMAC reports whether the callback query parameters carry a
// valid signature. Shopify signs the query string with every parameter
// except "hmac" itself, sorted by key and joined with "&".
func (c *shopifyClient) VerifyCallbackHMAC(params map[string]string) bool {
	provided, ok := params["hmac"]
	if !ok || provided == "" {
		return false
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		if key == "hmac" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}
	message := strings.Join(pairs, "&")

	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(message))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(provided))
}
