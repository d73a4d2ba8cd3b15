package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"riko-storefront/storefront-svc/internal/domain"

	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type BackendConfig struct {
	BaseURL string
	// RequestsPerSecond throttles outbound calls; zero disables throttling.
	RequestsPerSecond float64
	Burst             int
}

// APIError is a non-2xx answer from the remote API.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

func (e *APIError) StatusCode() int {
	return e.Status
}

// BackendClient talks to the remote order, cart, catalog and courier API.
type BackendClient struct {
	config  BackendConfig
	client  HTTPClient
	limiter *rate.Limiter
}

func NewBackendClient(config BackendConfig, client HTTPClient) *BackendClient {
	b := &BackendClient{
		config: config,
		client: client,
	}
	if config.RequestsPerSecond > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}
		b.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), burst)
	}
	b.config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return b
}

func (b *BackendClient) do(ctx context.Context, method, path, token string, body, out any) error {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		log.Printf("ERROR: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Method: method, Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", method, path, err)
	}
	return nil
}

type addToCartRequest struct {
	ProductID    string    `json:"productId"`
	Quantity     int       `json:"quantity"`
	Client       clientRef `json:"client"`
	RestaurantID string    `json:"id_restaurant"`
}

type clientRef struct {
	ID string `json:"_id"`
}

type removeFromCartRequest struct {
	ProductID string `json:"productId"`
	ClientID  string `json:"clientId"`
}

type createOrderResponse struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
}

type deliveredRequest struct {
	WhoConfirms string `json:"quien_confirma"`
}

func (b *BackendClient) GetCart(ctx context.Context, sess domain.Session) (*domain.RemoteCart, error) {
	var cart domain.RemoteCart
	if err := b.do(ctx, http.MethodGet, "/cart/cart/"+url.PathEscape(sess.ClientID), sess.Token, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (b *BackendClient) AddToCart(ctx context.Context, sess domain.Session, productID, restaurantID string, quantity int) error {
	return b.do(ctx, http.MethodPost, "/cart/add", sess.Token, addToCartRequest{
		ProductID:    productID,
		Quantity:     quantity,
		Client:       clientRef{ID: sess.ClientID},
		RestaurantID: restaurantID,
	}, nil)
}

func (b *BackendClient) RemoveFromCart(ctx context.Context, sess domain.Session, productID string) error {
	return b.do(ctx, http.MethodPost, "/cart/cart/remove", sess.Token, removeFromCartRequest{
		ProductID: productID,
		ClientID:  sess.ClientID,
	}, nil)
}

func (b *BackendClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := b.do(ctx, http.MethodGet, "/product/product", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (b *BackendClient) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := b.do(ctx, http.MethodGet, "/product/product/"+url.PathEscape(id), "", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (b *BackendClient) ListRestaurants(ctx context.Context) ([]domain.RestaurantMeta, error) {
	var restaurants []domain.RestaurantMeta
	if err := b.do(ctx, http.MethodGet, "/restaurant/restaurants", "", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (b *BackendClient) GetRestaurant(ctx context.Context, id string) (*domain.RestaurantMeta, error) {
	var r domain.RestaurantMeta
	if err := b.do(ctx, http.MethodGet, "/restaurant/restaurant/"+url.PathEscape(id), "", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateOrder returns the id assigned by the order API.
func (b *BackendClient) CreateOrder(ctx context.Context, sess domain.Session, order domain.Order) (string, error) {
	var resp createOrderResponse
	if err := b.do(ctx, http.MethodPost, "/pedido/pedidos", sess.Token, order, &resp); err != nil {
		return "", err
	}
	id := resp.ID
	if id == "" {
		id = resp.MongoID
	}
	if id == "" {
		return "", fmt.Errorf("POST /pedido/pedidos: response carries no order id")
	}
	return id, nil
}

func (b *BackendClient) CancelOrder(ctx context.Context, sess domain.Session, orderID string) error {
	return b.do(ctx, http.MethodPut, "/pedido/pedidos/"+url.PathEscape(orderID)+"/cancelar", sess.Token, nil, nil)
}

func (b *BackendClient) ConfirmDelivered(ctx context.Context, sess domain.Session, orderID string) error {
	return b.do(ctx, http.MethodPut, "/pedido/pedidos/"+url.PathEscape(orderID)+"/entregado", sess.Token,
		deliveredRequest{WhoConfirms: "cliente"}, nil)
}

func (b *BackendClient) ListClientOrders(ctx context.Context, sess domain.Session) ([]domain.OrderRecord, error) {
	var orders []domain.OrderRecord
	if err := b.do(ctx, http.MethodGet, "/pedido/pedidos/cliente/"+url.PathEscape(sess.ClientID), sess.Token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (b *BackendClient) GetOrder(ctx context.Context, sess domain.Session, orderID string) (*domain.OrderRecord, error) {
	var o domain.OrderRecord
	if err := b.do(ctx, http.MethodGet, "/pedido/pedidos/"+url.PathEscape(orderID), sess.Token, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (b *BackendClient) GetCourier(ctx context.Context, sess domain.Session, courierID string) (*domain.Courier, error) {
	var c domain.Courier
	if err := b.do(ctx, http.MethodGet, "/repartidor/repartidor/"+url.PathEscape(courierID), sess.Token, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
