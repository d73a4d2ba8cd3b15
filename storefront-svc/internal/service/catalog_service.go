package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/hours"
)

// RestaurantView is a restaurant with its open state at the time of the read.
type RestaurantView struct {
	domain.RestaurantMeta
	Open  bool                      `json:"abierto"`
	Today *domain.WorkingHoursEntry `json:"horario_hoy,omitempty"`
}

type statusCoder interface {
	StatusCode() int
}

// CatalogService serves products and restaurants from snapshots that the
// poller keeps fresh, and reads through to the API until the first snapshot
// lands.
type CatalogService struct {
	api   CatalogAPI
	hours hours.Evaluator
	Now   func() time.Time

	mu          sync.RWMutex
	products    []domain.Product
	restaurants []domain.RestaurantMeta
	byID        map[string]domain.RestaurantMeta
	productByID map[string]domain.Product
}

func NewCatalogService(api CatalogAPI, evaluator hours.Evaluator) *CatalogService {
	return &CatalogService{
		api:   api,
		hours: evaluator,
		Now:   time.Now,
	}
}

// StartPolling keeps both snapshots fresh until the poller stops.
func (s *CatalogService) StartPolling(p *Poller, productsEvery, restaurantsEvery time.Duration) {
	p.Every("products", productsEvery, s.productsTask)
	p.Every("restaurants", restaurantsEvery, s.restaurantsTask)
}

func (s *CatalogService) productsTask(ctx context.Context) (func(), error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return func() { s.setProducts(products) }, nil
}

func (s *CatalogService) restaurantsTask(ctx context.Context) (func(), error) {
	restaurants, err := s.api.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return func() { s.setRestaurants(restaurants) }, nil
}

func (s *CatalogService) setProducts(products []domain.Product) {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	s.mu.Lock()
	s.products = products
	s.productByID = byID
	s.mu.Unlock()
}

func (s *CatalogService) setRestaurants(restaurants []domain.RestaurantMeta) {
	byID := make(map[string]domain.RestaurantMeta, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}
	s.mu.Lock()
	s.restaurants = restaurants
	s.byID = byID
	s.mu.Unlock()
}

func (s *CatalogService) Restaurants(ctx context.Context) ([]RestaurantView, error) {
	s.mu.RLock()
	restaurants := s.restaurants
	s.mu.RUnlock()

	if restaurants == nil {
		fetched, err := s.api.ListRestaurants(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list restaurants: %w", err)
		}
		s.setRestaurants(fetched)
		restaurants = fetched
	}

	now := s.Now()
	views := make([]RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, s.view(r, now))
	}
	return views, nil
}

func (s *CatalogService) Restaurant(ctx context.Context, id string) (*RestaurantView, error) {
	meta, err := s.restaurantMeta(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(*meta, s.Now())
	return &view, nil
}

// Products lists the non-suspended products, optionally of one restaurant.
func (s *CatalogService) Products(ctx context.Context, restaurantID string) ([]domain.Product, error) {
	s.mu.RLock()
	products := s.products
	s.mu.RUnlock()

	if products == nil {
		fetched, err := s.api.ListProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		s.setProducts(fetched)
		products = fetched
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Suspended {
			continue
		}
		if restaurantID != "" && p.RestaurantID != restaurantID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *CatalogService) Product(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	p, ok := s.productByID[id]
	s.mu.RUnlock()
	if ok {
		return &p, nil
	}

	fetched, err := s.api.GetProduct(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return fetched, nil
}

func (s *CatalogService) restaurantMeta(ctx context.Context, id string) (*domain.RestaurantMeta, error) {
	s.mu.RLock()
	r, ok := s.byID[id]
	s.mu.RUnlock()
	if ok {
		return &r, nil
	}

	fetched, err := s.api.GetRestaurant(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant %s: %w", id, err)
	}
	return fetched, nil
}

func (s *CatalogService) view(r domain.RestaurantMeta, now time.Time) RestaurantView {
	v := RestaurantView{
		RestaurantMeta: r,
		Open:           !r.Suspended && s.hours.IsOpen(r.WorkingHours, now),
	}
	if entry, ok := s.hours.Today(r.WorkingHours, now); ok {
		v.Today = &entry
	}
	return v
}

func isNotFound(err error) bool {
	var coded statusCoder
	return errors.As(err, &coded) && coded.StatusCode() == http.StatusNotFound
}
