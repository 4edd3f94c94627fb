package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geraldbane/e-commerce-microservices/services/product/internal/models"
	"github.com/geraldbane/e-commerce-microservices/services/product/internal/repo"
	"github.com/geraldbane/e-commerce-microservices/services/product/internal/service"
)

type testEnv struct {
	T *testing.T
	E *echo.Echo
	H *ProductHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	svc := &service.ProductService{Repo: &repo.GormRepo{DB: db}}
	return &testEnv{
		T: t,
		E: echo.New(),
		H: &ProductHTTP{Svc: svc}, // nil producer drops events
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) handle(c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		env.E.HTTPErrorHandler(err, c)
	}
}

func productPayload() map[string]any {
	return map[string]any{
		"name":        "keyboard",
		"description": "87-key mechanical",
		"price":       49.90,
		"updated":     "2025-06-01T10:00:00Z",
		"expired":     false,
		"categories":  []string{"peripherals"},
	}
}

func TestCreateProductAssignsID(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/products", productPayload())
	env.handle(c, env.H.CreateProduct)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp.ProductID)
	require.NoError(t, err)
	require.Equal(t, "keyboard", resp.Name)
	require.InDelta(t, 49.90, resp.Price, 1e-9)
}

func TestCreateProductNamesMissingField(t *testing.T) {
	env := newTestEnv(t)

	payload := productPayload()
	delete(payload, "categories")

	rec, c := env.doJSONRequest(http.MethodPost, "/products", payload)
	env.handle(c, env.H.CreateProduct)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "categories")
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	env := newTestEnv(t)

	payload := productPayload()
	payload["price"] = -1.0

	rec, c := env.doJSONRequest(http.MethodPost, "/products", payload)
	env.handle(c, env.H.CreateProduct)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/products", productPayload())
	env.handle(c, env.H.CreateProduct)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec, c = env.doJSONRequest(http.MethodGet, "/products/"+created.ProductID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ProductID)
	env.handle(c, env.H.GetProduct)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created.ProductID, got.ProductID)
	require.Equal(t, []string{"peripherals"}, got.Categories)
}

func TestGetProductUnknownIs404(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/products/nope", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")
	env.handle(c, env.H.GetProduct)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/products", productPayload())
	env.handle(c, env.H.CreateProduct)
	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec, c = env.doJSONRequest(http.MethodDelete, "/products/"+created.ProductID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ProductID)
	env.handle(c, env.H.DeleteProduct)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, c = env.doJSONRequest(http.MethodDelete, "/products/"+created.ProductID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ProductID)
	env.handle(c, env.H.DeleteProduct)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
