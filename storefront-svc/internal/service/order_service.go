package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/geo"
)

const (
	StatusPending   = "Pendiente"
	StatusPreparing = "En preparación"
	StatusToPickup  = "En camino a recoger"
	StatusToDeliver = "En camino a entregar"
	StatusDelivered = "Entregado"
	StatusCancelled = "Cancelado"
	StatusRejected  = "Rechazado"
)

const unknownStatusPriority = 99

var statusPriority = map[string]int{
	StatusPending:   1,
	StatusPreparing: 2,
	StatusToPickup:  3,
	StatusToDeliver: 4,
	StatusDelivered: 5,
	StatusCancelled: 6,
	StatusRejected:  7,
}

func StatusPriority(status string) int {
	if p, ok := statusPriority[status]; ok {
		return p
	}
	return unknownStatusPriority
}

// IsFinal reports whether no further state change is expected.
func IsFinal(status string) bool {
	return status == StatusDelivered || status == StatusCancelled || status == StatusRejected
}

type OrderService struct {
	api OrderAPI
}

func NewOrderService(api OrderAPI) *OrderService {
	return &OrderService{api: api}
}

// List sorts active orders first by status priority, keeping the API order
// among equal statuses.
func (s *OrderService) List(ctx context.Context, sess domain.Session) ([]domain.OrderView, error) {
	records, err := s.api.ListClientOrders(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return StatusPriority(records[i].Status) < StatusPriority(records[j].Status)
	})

	couriers := make(map[string]*domain.Courier)
	views := make([]domain.OrderView, 0, len(records))
	for _, r := range records {
		views = append(views, s.decorate(ctx, sess, r, couriers))
	}
	return views, nil
}

func (s *OrderService) Get(ctx context.Context, sess domain.Session, orderID string) (*domain.OrderView, error) {
	record, err := s.api.GetOrder(ctx, sess, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	view := s.decorate(ctx, sess, *record, make(map[string]*domain.Courier))
	return &view, nil
}

func (s *OrderService) Cancel(ctx context.Context, sess domain.Session, orderID string) error {
	record, err := s.api.GetOrder(ctx, sess, orderID)
	if err != nil {
		return fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	if record.Status != StatusPending {
		return ErrOrderNotCancelable
	}
	if err := s.api.CancelOrder(ctx, sess, orderID); err != nil {
		return fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}
	log.Printf("order %s cancelled by client %s", orderID, sess.ClientID)
	return nil
}

func (s *OrderService) ConfirmDelivered(ctx context.Context, sess domain.Session, orderID string) error {
	record, err := s.api.GetOrder(ctx, sess, orderID)
	if err != nil {
		return fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	if record.Status != StatusToDeliver {
		return ErrOrderNotDeliverable
	}
	if record.ConfirmedByClient {
		return ErrAlreadyConfirmed
	}
	if err := s.api.ConfirmDelivered(ctx, sess, orderID); err != nil {
		return fmt.Errorf("failed to confirm delivery of %s: %w", orderID, err)
	}
	return nil
}

// decorate adds the ETA and the assigned courier. A courier that can not be
// read is left out; couriers is shared across one listing.
func (s *OrderService) decorate(ctx context.Context, sess domain.Session, r domain.OrderRecord, couriers map[string]*domain.Courier) domain.OrderView {
	view := domain.OrderView{OrderRecord: r}
	if !IsFinal(r.Status) {
		if eta, ok := geo.EstimateETA(r.DeliveryAddress, r.Restaurant.Coordinate); ok {
			view.ETAMinutes = eta
		}
	}
	if r.CourierID == "" {
		return view
	}
	courier, seen := couriers[r.CourierID]
	if !seen {
		c, err := s.api.GetCourier(ctx, sess, r.CourierID)
		if err != nil {
			log.Printf("ERROR: courier %s: %v", r.CourierID, err)
		}
		courier = c
		couriers[r.CourierID] = c
	}
	view.Courier = courier
	return view
}
