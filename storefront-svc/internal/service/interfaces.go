package service

import (
	"context"
	"io"

	"riko-storefront/storefront-svc/internal/domain"
)

type CartAPI interface {
	GetCart(ctx context.Context, sess domain.Session) (*domain.RemoteCart, error)
	AddToCart(ctx context.Context, sess domain.Session, productID, restaurantID string, quantity int) error
	RemoveFromCart(ctx context.Context, sess domain.Session, productID string) error
}

type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListRestaurants(ctx context.Context) ([]domain.RestaurantMeta, error)
	GetRestaurant(ctx context.Context, id string) (*domain.RestaurantMeta, error)
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, sess domain.Session, order domain.Order) (string, error)
	CancelOrder(ctx context.Context, sess domain.Session, orderID string) error
	ConfirmDelivered(ctx context.Context, sess domain.Session, orderID string) error
	ListClientOrders(ctx context.Context, sess domain.Session) ([]domain.OrderRecord, error)
	GetOrder(ctx context.Context, sess domain.Session, orderID string) (*domain.OrderRecord, error)
	GetCourier(ctx context.Context, sess domain.Session, courierID string) (*domain.Courier, error)
}

type SessionStore interface {
	Create(ctx context.Context, sess *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	UpdateLocation(ctx context.Context, id, coordinate string) error
	UpdateCurrencyRate(ctx context.Context, id string, rate float64) error
	Delete(ctx context.Context, id string) error
}

type CheckoutStore interface {
	SavePending(ctx context.Context, checkout domain.Checkout) error
	GetPending(ctx context.Context, sessionID, restaurantID string) (*domain.Checkout, error)
	ClaimPending(ctx context.Context, sessionID, restaurantID string) (*domain.Checkout, error)
}

type JournalStore interface {
	Record(ctx context.Context, entry *domain.JournalEntry) error
	ListByClient(ctx context.Context, clientID string, limit int) ([]domain.JournalEntry, error)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg domain.KafkaMessage) error
}

type ChatStore interface {
	CreateChannel(ctx context.Context, orderID string) error
	Append(ctx context.Context, orderID string, msg domain.ChatMessage) error
	List(ctx context.Context, orderID string) ([]domain.ChatMessage, error)
}

type ChatBroker interface {
	Publish(ctx context.Context, msg domain.ChatMessage) error
	Subscribe(ctx context.Context, orderID string) (<-chan domain.ChatMessage, error)
}

type ProofUploader interface {
	UploadProof(ctx context.Context, orderID, filename, contentType string, r io.Reader, size int64) (string, error)
}

type QRGenerator interface {
	Generate(payload string) ([]byte, error)
}

type SessionServiceInterface interface {
	Start(ctx context.Context, req StartSession) (*domain.Session, error)
	Resolve(ctx context.Context, id string) (*domain.Session, error)
	UpdateLocation(ctx context.Context, sess *domain.Session, coordinate string) (*domain.Session, error)
	UpdateCurrencyRate(ctx context.Context, sess *domain.Session, rate float64) (*domain.Session, error)
	End(ctx context.Context, sess *domain.Session) error
}

type CatalogServiceInterface interface {
	Restaurants(ctx context.Context) ([]RestaurantView, error)
	Restaurant(ctx context.Context, id string) (*RestaurantView, error)
	Products(ctx context.Context, restaurantID string) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
}

type CartServiceInterface interface {
	View(ctx context.Context, sess domain.Session) (*CartView, error)
	Add(ctx context.Context, sess domain.Session, productID string, quantity int) error
	Remove(ctx context.Context, sess domain.Session, productID string) error
}

type CheckoutServiceInterface interface {
	Prepare(ctx context.Context, sess domain.Session, restaurantID string) (*domain.Checkout, error)
	Confirm(ctx context.Context, sess domain.Session, restaurantID string) (*ConfirmResult, error)
	PaymentQR(ctx context.Context, sess domain.Session, restaurantID string) ([]byte, error)
	History(ctx context.Context, sess domain.Session) ([]domain.JournalEntry, error)
}

type OrderServiceInterface interface {
	List(ctx context.Context, sess domain.Session) ([]domain.OrderView, error)
	Get(ctx context.Context, sess domain.Session, orderID string) (*domain.OrderView, error)
	Cancel(ctx context.Context, sess domain.Session, orderID string) error
	ConfirmDelivered(ctx context.Context, sess domain.Session, orderID string) error
}

type ChatServiceInterface interface {
	Messages(ctx context.Context, sess domain.Session, orderID string) ([]domain.ChatMessage, error)
	Send(ctx context.Context, sess domain.Session, orderID string, msg domain.ChatMessage) (*domain.ChatMessage, error)
	UploadProof(ctx context.Context, sess domain.Session, orderID string, proof Proof) (*domain.ChatMessage, error)
	Subscribe(ctx context.Context, sess domain.Session, orderID string) (<-chan domain.ChatMessage, error)
}

var (
	_ SessionServiceInterface  = (*SessionService)(nil)
	_ CatalogServiceInterface  = (*CatalogService)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
	_ ChatServiceInterface     = (*ChatService)(nil)
)
