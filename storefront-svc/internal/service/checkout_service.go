package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"riko-storefront/storefront-svc/internal/cart"
	"riko-storefront/storefront-svc/internal/domain"

	"github.com/google/uuid"
)

const (
	OrderPlacedEvent = "order_placed"
	ClientSenderType = "cliente"
	historyLimit     = 50
)

type ConfirmResult struct {
	Checkout domain.Checkout `json:"checkout"`
	// Cart is the local cart with the placed restaurant's items removed.
	Cart []domain.CartItem `json:"cart"`
}

type CheckoutDeps struct {
	Carts     CartServiceInterface
	Catalog   CatalogServiceInterface
	Orders    OrderAPI
	CartAPI   CartAPI
	Chat      ChatStore
	Broker    ChatBroker
	Pending   CheckoutStore
	Journal   JournalStore
	Publisher OrderPublisher
	QR        QRGenerator
}

// CheckoutService places the order of one restaurant group:
// Idle -> FetchingPaymentInfo -> AwaitingUserConfirmation -> Submitting ->
// ChatChannelCreated, or back to Idle on any error.
type CheckoutService struct {
	deps CheckoutDeps
	Now  func() time.Time
}

func NewCheckoutService(deps CheckoutDeps) *CheckoutService {
	return &CheckoutService{deps: deps, Now: time.Now}
}

func (s *CheckoutService) Prepare(ctx context.Context, sess domain.Session, restaurantID string) (*domain.Checkout, error) {
	view, err := s.deps.Carts.View(ctx, sess)
	if err != nil {
		return nil, err
	}

	var group *cart.Summary
	for i := range view.Groups {
		if view.Groups[i].RestaurantID == restaurantID {
			group = &view.Groups[i]
			break
		}
	}
	if group == nil || len(group.Items) == 0 {
		return nil, ErrEmptyGroup
	}
	if sess.LastLocation == "" {
		return nil, ErrNoDeliveryLocation
	}

	checkout := domain.Checkout{
		SessionID:       sess.ID,
		ClientID:        sess.ClientID,
		RestaurantID:    restaurantID,
		RestaurantName:  group.RestaurantName,
		DeliveryAddress: sess.LastLocation,
		Items:           group.Items,
		Quote:           group.Quote,
		State:           domain.CheckoutFetchingPaymentInfo,
		CreatedAt:       s.Now(),
		CartSnapshot:    view.Items,
	}

	restaurant, err := s.deps.Catalog.Restaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	switch {
	case restaurant.Suspended:
		return nil, ErrRestaurantSuspended
	case !restaurant.Open:
		return nil, ErrRestaurantClosed
	case !restaurant.Payment.Configured():
		return nil, ErrNoPaymentInfo
	}

	checkout.Payment = *restaurant.Payment
	checkout.RestaurantName = restaurant.Name
	checkout.State = domain.CheckoutAwaitingUserConfirmation
	if err := s.deps.Pending.SavePending(ctx, checkout); err != nil {
		return nil, fmt.Errorf("failed to keep checkout: %w", err)
	}
	return &checkout, nil
}

// Confirm submits a prepared checkout. The pending checkout is claimed first, so
// a repeated confirm finds nothing to submit. The steps are not transactional: a
// failure leaves earlier steps in place and returns a *StepError.
func (s *CheckoutService) Confirm(ctx context.Context, sess domain.Session, restaurantID string) (*ConfirmResult, error) {
	pending, err := s.deps.Pending.ClaimPending(ctx, sess.ID, restaurantID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrNoPendingCheckout
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkout: %w", err)
	}
	if pending.State != domain.CheckoutAwaitingUserConfirmation {
		return nil, ErrNoPendingCheckout
	}

	checkout := *pending
	checkout.State = domain.CheckoutSubmitting

	if err := s.submit(ctx, sess, &checkout); err != nil {
		return nil, err
	}

	checkout.State = domain.CheckoutChatChannelCreated
	s.publish(ctx, checkout)

	log.Printf("[CHECKOUT] order %s placed for client %s at restaurant %s", checkout.OrderID, sess.ClientID, restaurantID)
	return &ConfirmResult{
		Checkout: checkout,
		Cart:     cart.WithoutRestaurant(checkout.CartSnapshot, restaurantID),
	}, nil
}

func (s *CheckoutService) submit(ctx context.Context, sess domain.Session, checkout *domain.Checkout) error {
	order := domain.Order{
		ClientID:        sess.ClientID,
		RestaurantID:    checkout.RestaurantID,
		DeliveryAddress: checkout.DeliveryAddress,
		Lines:           make([]domain.OrderLine, 0, len(checkout.Items)),
		Total:           checkout.Quote.Total,
	}
	for _, it := range checkout.Items {
		order.Lines = append(order.Lines, domain.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	orderID, err := s.deps.Orders.CreateOrder(ctx, sess, order)
	if err != nil {
		return s.fail(ctx, checkout, StepCreateOrder, err)
	}
	checkout.OrderID = orderID
	s.record(ctx, checkout, StepCreateOrder, nil)

	if err := s.deps.Chat.CreateChannel(ctx, orderID); err != nil {
		return s.fail(ctx, checkout, StepCreateChat, err)
	}
	s.record(ctx, checkout, StepCreateChat, nil)

	msg := domain.ChatMessage{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		SenderID:   sess.ClientID,
		SenderType: ClientSenderType,
		Content:    checkout.DeliveryAddress,
		Type:       domain.MessageLocation,
		Timestamp:  s.Now().UTC(),
	}
	if err := s.deps.Chat.Append(ctx, orderID, msg); err != nil {
		return s.fail(ctx, checkout, StepInitialMessage, err)
	}
	s.record(ctx, checkout, StepInitialMessage, nil)
	if s.deps.Broker != nil {
		if err := s.deps.Broker.Publish(ctx, msg); err != nil {
			log.Printf("ERROR: [CHECKOUT] push initial message of %s: %v", orderID, err)
		}
	}

	for _, it := range checkout.Items {
		if err := s.deps.CartAPI.RemoveFromCart(ctx, sess, it.ProductID); err != nil {
			return s.fail(ctx, checkout, StepClearCart, fmt.Errorf("product %s: %w", it.ProductID, err))
		}
	}
	s.record(ctx, checkout, StepClearCart, nil)
	return nil
}

func (s *CheckoutService) fail(ctx context.Context, checkout *domain.Checkout, step string, err error) error {
	s.record(ctx, checkout, step, err)
	log.Printf("ERROR: [CHECKOUT] %s for restaurant %s: %v", step, checkout.RestaurantID, err)
	return &StepError{Step: step, Err: err}
}

// record never fails the checkout; the journal is informational.
func (s *CheckoutService) record(ctx context.Context, checkout *domain.Checkout, step string, stepErr error) {
	if s.deps.Journal == nil {
		return
	}
	entry := &domain.JournalEntry{
		SessionID:    checkout.SessionID,
		ClientID:     checkout.ClientID,
		RestaurantID: checkout.RestaurantID,
		OrderID:      checkout.OrderID,
		Step:         step,
		Succeeded:    stepErr == nil,
	}
	if stepErr != nil {
		entry.Detail = stepErr.Error()
	}
	if err := s.deps.Journal.Record(ctx, entry); err != nil {
		log.Printf("ERROR: [CHECKOUT] journal %s: %v", step, err)
	}
}

func (s *CheckoutService) publish(ctx context.Context, checkout domain.Checkout) {
	if s.deps.Publisher == nil {
		return
	}
	err := s.deps.Publisher.PublishOrderPlaced(ctx, domain.KafkaMessage{
		Type:         OrderPlacedEvent,
		OrderID:      checkout.OrderID,
		ClientID:     checkout.ClientID,
		RestaurantID: checkout.RestaurantID,
		Total:        checkout.Quote.Total,
		Timestamp:    s.Now(),
	})
	if err != nil {
		log.Printf("ERROR: [CHECKOUT] publish %s: %v", checkout.OrderID, err)
	}
}

func (s *CheckoutService) PaymentQR(ctx context.Context, sess domain.Session, restaurantID string) ([]byte, error) {
	pending, err := s.deps.Pending.GetPending(ctx, sess.ID, restaurantID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrNoPendingCheckout
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkout: %w", err)
	}
	png, err := s.deps.QR.Generate(PaymentInstructions(*pending))
	if err != nil {
		return nil, fmt.Errorf("failed to render payment QR: %w", err)
	}
	return png, nil
}

func (s *CheckoutService) History(ctx context.Context, sess domain.Session) ([]domain.JournalEntry, error) {
	if s.deps.Journal == nil {
		return []domain.JournalEntry{}, nil
	}
	return s.deps.Journal.ListByClient(ctx, sess.ClientID, historyLimit)
}
