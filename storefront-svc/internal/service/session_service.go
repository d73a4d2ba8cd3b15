package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/geo"

	"github.com/google/uuid"
)

type StartSession struct {
	Token        string  `json:"token"`
	ClientID     string  `json:"client_id"`
	Location     string  `json:"location,omitempty"`
	CurrencyRate float64 `json:"currency_rate,omitempty"`
}

type SessionService struct {
	store SessionStore
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{store: store}
}

func (s *SessionService) Start(ctx context.Context, req StartSession) (*domain.Session, error) {
	clientID := strings.TrimSpace(req.ClientID)
	if clientID == "" {
		return nil, ErrMissingClient
	}
	sess := &domain.Session{
		ID:       uuid.NewString(),
		Token:    req.Token,
		ClientID: clientID,
	}
	if req.Location != "" {
		coord, ok := geo.ParseCoordinate(req.Location)
		if !ok {
			return nil, ErrInvalidLocation
		}
		sess.LastLocation = geo.FormatCoordinate(coord)
	}
	if req.CurrencyRate > 0 {
		sess.CurrencyRate = req.CurrencyRate
	}

	if err := s.store.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

func (s *SessionService) Resolve(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, ErrNoSession
	}
	sess, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

// UpdateLocation stores the coordinate in its canonical "lat,lon" form.
func (s *SessionService) UpdateLocation(ctx context.Context, sess *domain.Session, coordinate string) (*domain.Session, error) {
	coord, ok := geo.ParseCoordinate(coordinate)
	if !ok {
		return nil, ErrInvalidLocation
	}
	normalized := geo.FormatCoordinate(coord)
	if err := s.store.UpdateLocation(ctx, sess.ID, normalized); err != nil {
		return nil, s.wrapUpdate(err)
	}
	updated := *sess
	updated.LastLocation = normalized
	return &updated, nil
}

func (s *SessionService) UpdateCurrencyRate(ctx context.Context, sess *domain.Session, rate float64) (*domain.Session, error) {
	if rate < 0 {
		rate = 0
	}
	if err := s.store.UpdateCurrencyRate(ctx, sess.ID, rate); err != nil {
		return nil, s.wrapUpdate(err)
	}
	updated := *sess
	updated.CurrencyRate = rate
	return &updated, nil
}

func (s *SessionService) End(ctx context.Context, sess *domain.Session) error {
	return s.store.Delete(ctx, sess.ID)
}

func (s *SessionService) wrapUpdate(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrNoSession
	}
	return fmt.Errorf("failed to update session: %w", err)
}
