// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"testing"
)

func signParams(secret string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		if key != "hmac" {
			keys = append(keys, key)
		}
	}
	// Build in sorted order by hand; the fixture has few keys.
	pairs := make([]string, 0, len(keys))
	for _, key := range []string{"code", "shop", "state", "timestamp"} {
		if value, ok := params[key]; ok {
			pairs = append(pairs, key+"="+value)
		}
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestShopifyClient_VerifyCallbackHMAC(t *testing.T) {
	const secret = "shpss_test_secret"
	client := &shopifyClient{apiKey: "key", apiSecret: secret}

	params := func() map[string]string {
		p := map[string]string{
			"code":      "auth-code",
			"shop":      "my-brand.myshopify.com",
			"state":     "state-token",
			"timestamp": "1736500000",
		}
		p["hmac"] = signParams(secret, p)
		return p
	}

	t.Run("accepts a correctly signed callback", func(t *testing.T) {
		if !client.VerifyCallbackHMAC(params()) {
			t.Error("expected a valid signature to verify")
		}
	})

	t.Run("rejects a tampered parameter", func(t *testing.T) {
		p := params()
		p["shop"] = "evil.myshopify.com"
		if client.VerifyCallbackHMAC(p) {
			t.Error("expected a tampered callback to fail")
		}
	})

	t.Run("rejects a missing hmac", func(t *testing.T) {
		p := params()
		delete(p, "hmac")
		if client.VerifyCallbackHMAC(p) {
			t.Error("expected a callback without hmac to fail")
		}
	})

	t.Run("rejects a signature from the wrong secret", func(t *testing.T) {
		p := params()
		p["hmac"] = signParams("a-different-secret", p)
		if client.VerifyCallbackHMAC(p) {
			t.Error("expected a foreign signature to fail")
		}
	})
}

func TestShopifyClient_AuthorizeURL(t *testing.T) {
	client := &shopifyClient{
		apiKey:      "api-key",
		scopes:      "read_orders,read_products",
		redirectURI: "http://localhost:8080/api/integrations/shopify/callback",
	}

	raw := client.AuthorizeURL("my-brand.myshopify.com", "state-token")

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("authorize URL does not parse: %v", err)
	}
	if parsed.Host != "my-brand.myshopify.com" {
		t.Errorf("expected shop host, got %s", parsed.Host)
	}
	if parsed.Path != "/admin/oauth/authorize" {
		t.Errorf("unexpected path %s", parsed.Path)
	}

	query := parsed.Query()
	if query.Get("client_id") != "api-key" {
		t.Errorf("expected client_id api-key, got %s", query.Get("client_id"))
	}
	if query.Get("scope") != "read_orders,read_products" {
		t.Errorf("unexpected scope %s", query.Get("scope"))
	}
	if query.Get("state") != "state-token" {
		t.Errorf("expected the state token, got %s", query.Get("state"))
	}
	if query.Get("redirect_uri") == "" {
		t.Error("expected a redirect_uri")
	}
}
