package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"riko-storefront/storefront-svc/internal/cart"
	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/pricing"
)

// UnavailableProductName is shown for cart lines whose product can not be read.
const UnavailableProductName = "Producto no disponible"

type CartView struct {
	Items  []domain.CartItem `json:"items"`
	Groups []cart.Summary    `json:"groups"`
}

type CartService struct {
	api     CartAPI
	catalog CatalogServiceInterface
	fees    pricing.FeeConfig
}

func NewCartService(api CartAPI, catalog CatalogServiceInterface, fees pricing.FeeConfig) *CartService {
	return &CartService{api: api, catalog: catalog, fees: fees}
}

// View resolves the remote cart into priced groups, one per restaurant.
// Restaurant metadata is read once per group.
func (s *CartService) View(ctx context.Context, sess domain.Session) (*CartView, error) {
	remote, err := s.api.GetCart(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	items := make([]domain.CartItem, 0, len(remote.Items))
	for _, line := range remote.Items {
		item := domain.CartItem{
			ProductID:    line.ProductID,
			Quantity:     line.Quantity,
			RestaurantID: line.RestaurantID,
		}
		product, err := s.catalog.Product(ctx, line.ProductID)
		if err != nil {
			if !errors.Is(err, ErrProductNotFound) {
				log.Printf("ERROR: cart product %s: %v", line.ProductID, err)
			}
			item.Name = UnavailableProductName
		} else {
			item.Name = product.Name
			item.UnitPrice = product.Price
			if item.RestaurantID == "" {
				item.RestaurantID = product.RestaurantID
			}
		}
		items = append(items, item)
	}

	groups := cart.GroupByRestaurant(items)
	metas := make(map[string]domain.RestaurantMeta, len(groups))
	open := make(map[string]bool, len(groups))
	for _, g := range groups {
		r, err := s.catalog.Restaurant(ctx, g.RestaurantID)
		if err != nil {
			log.Printf("ERROR: cart restaurant %s: %v", g.RestaurantID, err)
			continue
		}
		metas[g.RestaurantID] = r.RestaurantMeta
		open[g.RestaurantID] = r.Open
	}

	summaries := cart.Summarize(groups, metas, sess.LastLocation, s.fees, sess.CurrencyRate)
	for i := range summaries {
		summaries[i].Open = open[summaries[i].RestaurantID]
	}
	return &CartView{Items: items, Groups: summaries}, nil
}

// Add sends a quantity delta; negative values decrement.
func (s *CartService) Add(ctx context.Context, sess domain.Session, productID string, quantity int) error {
	if quantity == 0 {
		return ErrInvalidQuantity
	}
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return err
	}
	if product.Suspended {
		return ErrProductNotFound
	}
	if err := s.api.AddToCart(ctx, sess, productID, product.RestaurantID, quantity); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	return nil
}

func (s *CartService) Remove(ctx context.Context, sess domain.Session, productID string) error {
	if err := s.api.RemoveFromCart(ctx, sess, productID); err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}
	return nil
}
