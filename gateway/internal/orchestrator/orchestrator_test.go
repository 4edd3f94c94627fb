package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geraldbane/e-commerce-microservices/gateway/internal/client"
)

func ptr[T any](v T) *T { return &v }

type fakeDirectory struct {
	customers map[string]*client.Customer
	err       error
	calls     int
}

func (f *fakeDirectory) GetCustomer(_ context.Context, id string) (*client.Customer, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.customers[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return c, nil
}

type fakeCatalog struct {
	products map[string]*client.Product
	err      error
	calls    int
}

func (f *fakeCatalog) GetProduct(_ context.Context, id string) (*client.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return p, nil
}

type fakeStock struct {
	stock map[string]int
	err   error
	calls int
}

func (f *fakeStock) GetInventory(_ context.Context, productID string) (*client.Inventory, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.stock[productID]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &client.Inventory{ProductID: productID, Stock: s}, nil
}

type fakeOrders struct {
	received []client.OrderDocument
	err      error
	calls    int
}

func (f *fakeOrders) CreateOrder(_ context.Context, doc client.OrderDocument) (*client.OrderDocument, error) {
	f.calls++
	f.received = append(f.received, doc)
	if f.err != nil {
		return nil, f.err
	}
	return &doc, nil
}

type fixture struct {
	customers *fakeDirectory
	products  *fakeCatalog
	stock     *fakeStock
	orders    *fakeOrders
	orc       *Orchestrator
}

func newFixture() *fixture {
	f := &fixture{
		customers: &fakeDirectory{customers: map[string]*client.Customer{
			"c1": {CustomerID: "c1", Name: "Gerald", Email: "gerald@example.com"},
		}},
		products: &fakeCatalog{products: map[string]*client.Product{
			"p1": {ProductID: "p1", Name: "keyboard", Price: 49.90},
			"p2": {ProductID: "p2", Name: "mouse", Price: 19.90},
			"p3": {ProductID: "p3", Name: "monitor", Price: 179.00},
		}},
		stock:  &fakeStock{stock: map[string]int{"p1": 10, "p2": 5, "p3": 2}},
		orders: &fakeOrders{},
	}
	f.orc = &Orchestrator{
		Customers: f.customers,
		Products:  f.products,
		Inventory: f.stock,
		Orders:    f.orders,
	}
	return f
}

func validRequest() OrderRequest {
	return OrderRequest{
		CustomerID: ptr("c1"),
		Products: ptr([]client.OrderLine{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		}),
		TotalAmount:     ptr(999.99),
		Status:          ptr("pending"),
		Timestamp:       ptr("2025-06-01T10:00:00Z"),
		Updated:         ptr("2025-06-01T10:00:00Z"),
		Confirmed:       ptr(false),
		TrackingNumbers: ptr([]string{}),
	}
}

func TestCreateOrderComputesTotalFromProductPrices(t *testing.T) {
	f := newFixture()

	conf, err := f.orc.CreateOrder(context.Background(), validRequest())
	require.NoError(t, err)

	// Quantity is not priced: total is the sum of unit prices per line.
	require.InDelta(t, 49.90+19.90, conf.TotalAmount, 1e-9)
	require.Equal(t, "order created", conf.Status)
	require.NotEmpty(t, conf.OrderID)

	require.Len(t, f.orders.received, 1)
	persisted := f.orders.received[0]
	require.Equal(t, conf.OrderID, persisted.OrderID)
	require.InDelta(t, conf.TotalAmount, persisted.TotalAmount, 1e-9)
	require.Equal(t, "c1", persisted.CustomerID)
}

func TestCreateOrderIgnoresClientDeclaredTotal(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.TotalAmount = ptr(0.01)

	conf, err := f.orc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	require.InDelta(t, 49.90+19.90, conf.TotalAmount, 1e-9)
	require.InDelta(t, conf.TotalAmount, f.orders.received[0].TotalAmount, 1e-9)
}

func TestCreateOrderIssuesUniqueIdentifiers(t *testing.T) {
	f := newFixture()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		conf, err := f.orc.CreateOrder(context.Background(), validRequest())
		require.NoError(t, err)
		require.False(t, seen[conf.OrderID], "order id reissued")
		seen[conf.OrderID] = true
	}
}

func TestCreateOrderNamesFirstMissingField(t *testing.T) {
	cases := []struct {
		field string
		strip func(*OrderRequest)
	}{
		{"customer_id", func(r *OrderRequest) { r.CustomerID = nil }},
		{"products", func(r *OrderRequest) { r.Products = nil }},
		{"total_amount", func(r *OrderRequest) { r.TotalAmount = nil }},
		{"status", func(r *OrderRequest) { r.Status = nil }},
		{"timestamp", func(r *OrderRequest) { r.Timestamp = nil }},
		{"updated", func(r *OrderRequest) { r.Updated = nil }},
		{"confirmed", func(r *OrderRequest) { r.Confirmed = nil }},
		{"tracking_numbers", func(r *OrderRequest) { r.TrackingNumbers = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tc.strip(&req)

			_, err := f.orc.CreateOrder(context.Background(), req)
			require.ErrorIs(t, err, ErrValidation)
			require.Contains(t, err.Error(), tc.field)
			require.Zero(t, f.customers.calls, "no remote call before validation passes")
		})
	}
}

func TestCreateOrderRejectsBadTimestampBeforeAnyRemoteCall(t *testing.T) {
	for _, field := range []string{"timestamp", "updated"} {
		t.Run(field, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			if field == "timestamp" {
				req.Timestamp = ptr("yesterday at noon")
			} else {
				req.Updated = ptr("not-a-time")
			}

			_, err := f.orc.CreateOrder(context.Background(), req)
			require.ErrorIs(t, err, ErrValidation)
			require.Zero(t, f.customers.calls)
			require.Zero(t, f.products.calls)
			require.Zero(t, f.stock.calls)
		})
	}
}

func TestCreateOrderRejectsEmptyProducts(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Products = ptr([]client.OrderLine{})

	_, err := f.orc.CreateOrder(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
	require.Zero(t, f.customers.calls)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Products = ptr([]client.OrderLine{{ProductID: "p1", Quantity: 0}})

	_, err := f.orc.CreateOrder(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrderUnknownCustomerStopsBeforeProducts(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.CustomerID = ptr("ghost")

	_, err := f.orc.CreateOrder(context.Background(), req)
	require.ErrorIs(t, err, ErrReference)
	require.Contains(t, err.Error(), "invalid customer")
	require.Zero(t, f.products.calls)
	require.Zero(t, f.stock.calls)
	require.Zero(t, f.orders.calls)
}

func TestCreateOrderShortCircuitsOnSecondOutOfStockProduct(t *testing.T) {
	f := newFixture()
	f.stock.stock["p2"] = 0
	req := validRequest()
	req.Products = ptr([]client.OrderLine{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p3", Quantity: 1},
	})

	_, err := f.orc.CreateOrder(context.Background(), req)
	require.ErrorIs(t, err, ErrReference)
	require.Contains(t, err.Error(), "p2")

	// The third line is never looked up.
	require.Equal(t, 2, f.products.calls)
	require.Equal(t, 2, f.stock.calls)
	require.Zero(t, f.orders.calls)
}

func TestCreateOrderUnknownProductReportsItsID(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Products = ptr([]client.OrderLine{{ProductID: "nope", Quantity: 1}})

	_, err := f.orc.CreateOrder(context.Background(), req)
	require.ErrorIs(t, err, ErrReference)
	require.Contains(t, err.Error(), "nope")
	require.Zero(t, f.stock.calls)
}

func TestCreateOrderCustomerServiceDownWritesNothing(t *testing.T) {
	f := newFixture()
	f.customers.err = client.ErrUnavailable

	_, err := f.orc.CreateOrder(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrUnavailable)
	require.Zero(t, f.orders.calls, "no order may be written downstream")
}

func TestCreateOrderInventoryServiceDown(t *testing.T) {
	f := newFixture()
	f.stock.err = client.ErrUnavailable

	_, err := f.orc.CreateOrder(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrUnavailable)
	require.Zero(t, f.orders.calls)
}

func TestCreateOrderPersistenceFailureNeverReusesID(t *testing.T) {
	f := newFixture()
	f.orders.err = client.ErrRejected

	_, err := f.orc.CreateOrder(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPersistence)
	_, err = f.orc.CreateOrder(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPersistence)

	require.Len(t, f.orders.received, 2)
	require.NotEqual(t, f.orders.received[0].OrderID, f.orders.received[1].OrderID,
		"a discarded order id must not be reused on retry")
}

func TestCreateOrderOrderServiceDown(t *testing.T) {
	f := newFixture()
	f.orders.err = client.ErrUnavailable

	_, err := f.orc.CreateOrder(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrUnavailable)
}
