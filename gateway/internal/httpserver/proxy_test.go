package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func registerTestGateway(t *testing.T, d *Deps) *echo.Echo {
	t.Helper()
	e := echo.New()
	require.NoError(t, Register(e, d))
	return e
}

func TestProxyRelaysUpstreamStatusAndBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customers/c1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"customer_id":"c1","name":"Gerald"}`))
	}))
	defer upstream.Close()

	e := registerTestGateway(t, &Deps{
		Gateway:      &GatewayHTTP{},
		CustomerURL:  upstream.URL,
		ProductURL:   upstream.URL,
		InventoryURL: upstream.URL,
		OrderURL:     upstream.URL,
	})

	req := httptest.NewRequest(http.MethodGet, "/customers/c1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"customer_id":"c1","name":"Gerald"}`, rec.Body.String())
}

func TestProxyRelays404Verbatim(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"product not found"}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	e := registerTestGateway(t, &Deps{
		Gateway:      &GatewayHTTP{},
		CustomerURL:  upstream.URL,
		ProductURL:   upstream.URL,
		InventoryURL: upstream.URL,
		OrderURL:     upstream.URL,
	})

	req := httptest.NewRequest(http.MethodGet, "/products/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "product not found")
}

func TestProxyUnreachableUpstreamIs503(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	e := registerTestGateway(t, &Deps{
		Gateway:      &GatewayHTTP{},
		CustomerURL:  url,
		ProductURL:   url,
		InventoryURL: url,
		OrderURL:     url,
	})

	req := httptest.NewRequest(http.MethodGet, "/inventory/p1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "inventory service unavailable")
}

func TestOrderLookupRewritesToByCustomerPath(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	e := registerTestGateway(t, &Deps{
		Gateway:      &GatewayHTTP{},
		CustomerURL:  upstream.URL,
		ProductURL:   upstream.URL,
		InventoryURL: upstream.URL,
		OrderURL:     upstream.URL,
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/c1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "/orders/by_customer/c1", gotPath)
}
