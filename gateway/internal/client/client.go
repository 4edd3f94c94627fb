// Package client is the gateway's HTTP client for the record services. It
// maps every outcome to ErrNotFound, ErrRejected or ErrUnavailable so raw
// transport errors never reach the orchestrator.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrNotFound    = errors.New("not found")   // the collaborator answered 404
	ErrRejected    = errors.New("rejected")    // the collaborator refused a well-formed write
	ErrUnavailable = errors.New("unavailable") // transport failure or malformed response
)

type Customer struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type Product struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type Inventory struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}

type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderDocument is the canonical order sent to the order service. Timestamps
// travel as ISO-8601 strings.
type OrderDocument struct {
	OrderID         string      `json:"order_id"`
	CustomerID      string      `json:"customer_id"`
	Products        []OrderLine `json:"products"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	Timestamp       string      `json:"timestamp"`
	Updated         string      `json:"updated"`
	Confirmed       bool        `json:"confirmed"`
	TrackingNumbers []string    `json:"tracking_numbers"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	return nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	var customer Customer
	if err := c.getJSON(ctx, "/customers/"+id, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.getJSON(ctx, "/products/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) GetInventory(ctx context.Context, productID string) (*Inventory, error) {
	var inv Inventory
	if err := c.getJSON(ctx, "/inventory/"+productID, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) CreateOrder(ctx context.Context, doc OrderDocument) (*OrderDocument, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: encode order: %v", ErrRejected, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	var created OrderDocument
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	return &created, nil
}
