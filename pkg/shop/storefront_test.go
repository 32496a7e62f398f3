package shop

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/storefront/pkg/server"
)

func newTestServer(t *testing.T) (*Storefront, *httptest.Server) {
	t.Helper()

	s := New(SampleCatalog())
	ts := httptest.NewServer(server.New(s.Options()...).Handler())
	t.Cleanup(ts.Close)

	return s, ts
}

func noRedirect(t *testing.T) *http.Client {
	t.Helper()
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func post(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := noRedirect(t).Post(ts.URL+path, "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, ts *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := noRedirect(t).Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestMenuPage(t *testing.T) {
	_, ts := newTestServer(t)

	code, body := get(t, ts, "/menu")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "New Arrivals")
	assert.Contains(t, body, "glyph-expand-right")
	assert.Contains(t, body, `action="/menu/activate?node=1"`)
}

func TestActivateLeafRedirectsWithQuery(t *testing.T) {
	s, ts := newTestServer(t)

	post(t, ts, "/menu/open")
	resp := post(t, ts, "/menu/activate?node=0&color=red")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/tag/new-arrivals?color=red", resp.Header.Get("Location"))

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.False(t, s.menu.IsOpen())
}

func TestActivateBranchAndPanel(t *testing.T) {
	_, ts := newTestServer(t)

	resp := post(t, ts, "/menu/activate?node=1")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/menu", resp.Header.Get("Location"))

	_, body := get(t, ts, "/menu")
	assert.Contains(t, body, `class="nav-panel"`)
	assert.Contains(t, body, "glyph-expand-down")

	resp = post(t, ts, "/menu/activate?node=p.0")
	assert.Equal(t, "/menu", resp.Header.Get("Location"))

	_, body = get(t, ts, "/menu")
	assert.Contains(t, body, "glyph-collapse-up")
	assert.Contains(t, body, "Trail")

	resp = post(t, ts, "/menu/activate?node=p.0.1")
	assert.Equal(t, "/tag/road", resp.Header.Get("Location"))
}

func TestActivateUnknownNode(t *testing.T) {
	_, ts := newTestServer(t)

	for _, addr := range []string{"", "9", "0.0", "p.0"} {
		resp := post(t, ts, "/menu/activate?node="+addr)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, addr)
	}
}

func TestTagPage(t *testing.T) {
	_, ts := newTestServer(t)

	code, body := get(t, ts, "/tag/boots?color=red")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "<h1>boots</h1>")
	assert.Contains(t, body, "color=red")
}

func TestGroupPage(t *testing.T) {
	_, ts := newTestServer(t)

	code, body := get(t, ts, "/groups/default")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, strings.Count(body, `class="cart-item"`))
	assert.Contains(t, body, "Jane<br>1 Main St<br>Springfield, IL 62704<br>US")
	assert.Contains(t, body, "order-summary")

	code, _ = get(t, ts, "/groups/missing")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCartIntentsAreRelayedNotApplied(t *testing.T) {
	s, ts := newTestServer(t)

	resp := post(t, ts, "/groups/default/items/sku-2/quantity?value=5")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/groups/default", resp.Header.Get("Location"))

	resp = post(t, ts, "/groups/default/items/sku-1/remove")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = post(t, ts, "/groups/default/more")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = post(t, ts, "/groups/default/items/sku-2/quantity?value=lots")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, ts, "/groups/missing/items/sku-2/remove")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Equal(t, SampleCatalog().Groups["default"], s.catalog.Groups["default"])

	_, body := get(t, ts, "/metrics")
	assert.Contains(t, body, `storefront_cart_intents_total{intent="quantity"} 1`)
	assert.Contains(t, body, `storefront_cart_intents_total{intent="remove"} 1`)
	assert.Contains(t, body, `storefront_cart_intents_total{intent="load_more"} 1`)
}

func TestActivationMetrics(t *testing.T) {
	_, ts := newTestServer(t)

	post(t, ts, "/menu/activate?node=1")
	post(t, ts, "/menu/activate?node=p.0")
	post(t, ts, "/menu/activate?node=2")

	_, body := get(t, ts, "/metrics")
	assert.Contains(t, body, `storefront_nav_activations_total{outcome="delegated"} 1`)
	assert.Contains(t, body, `storefront_nav_activations_total{outcome="toggled"} 1`)
	assert.Contains(t, body, `storefront_nav_activations_total{outcome="navigated"} 1`)
}

func TestRootRedirects(t *testing.T) {
	_, ts := newTestServer(t)

	code, _ := get(t, ts, "/")
	assert.Equal(t, http.StatusFound, code)

	code, body := get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"title": "Outlet",
		"navigation": [
			{"name": "Shoes", "slug": "shoes", "subTags": {"edges": [{"node": {"name": "Boots", "slug": "boots"}}]}}
		],
		"groups": {
			"g1": {"items": {"nodes": [{"_id": "a", "title": "Boot", "quantity": 1}]}}
		}
	}`), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "Outlet", c.Title)
	require.Len(t, c.Navigation, 1)
	assert.Equal(t, "boots", c.Navigation[0].SubItems[0].Slug)
	assert.Equal(t, 1, c.Groups["g1"].ItemCount())
	assert.Nil(t, c.Groups["g1"].ShippingAddress)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read catalog")

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	_, err = LoadCatalog(path)
	assert.ErrorContains(t, err, "failed to parse catalog")
}
