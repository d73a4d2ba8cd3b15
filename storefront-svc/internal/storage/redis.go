package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"riko-storefront/storefront-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) SessionKey(id string) string {
	return "session:" + id
}

func (s *RedisSessionStore) Create(ctx context.Context, sess *domain.Session) error {
	key := s.SessionKey(sess.ID)
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]any{
			"session_id":    sess.ID,
			"token":         sess.Token,
			"client_id":     sess.ClientID,
			"last_location": sess.LastLocation,
			"currency_rate": strconv.FormatFloat(sess.CurrencyRate, 'f', -1, 64),
		})
		pipe.Expire(ctx, key, s.TTL)
		return nil
	})
	return err
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	fields, err := s.Client.HGetAll(ctx, s.SessionKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, domain.ErrNotFound
	}

	sess := &domain.Session{
		ID:           fields["session_id"],
		Token:        fields["token"],
		ClientID:     fields["client_id"],
		LastLocation: fields["last_location"],
	}
	if raw := fields["currency_rate"]; raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("session %s: bad currency rate %q: %w", id, raw, err)
		}
		sess.CurrencyRate = rate
	}
	return sess, nil
}

func (s *RedisSessionStore) UpdateLocation(ctx context.Context, id, coordinate string) error {
	return s.setField(ctx, id, "last_location", coordinate)
}

func (s *RedisSessionStore) UpdateCurrencyRate(ctx context.Context, id string, rate float64) error {
	return s.setField(ctx, id, "currency_rate", strconv.FormatFloat(rate, 'f', -1, 64))
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.SessionKey(id)).Err()
}

// setField refreshes the TTL on every write so active sessions stay alive.
func (s *RedisSessionStore) setField(ctx context.Context, id, field, value string) error {
	key := s.SessionKey(id)
	exists, err := s.Client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return domain.ErrNotFound
	}
	_, err = s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, value)
		pipe.Expire(ctx, key, s.TTL)
		return nil
	})
	return err
}

// RedisCheckoutStore keeps checkouts that wait for the user's confirmation.
type RedisCheckoutStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCheckoutStore(client *redis.Client, ttl time.Duration) *RedisCheckoutStore {
	return &RedisCheckoutStore{Client: client, TTL: ttl}
}

func (s *RedisCheckoutStore) PendingKey(sessionID, restaurantID string) string {
	return "checkout:" + sessionID + ":" + restaurantID
}

func (s *RedisCheckoutStore) SavePending(ctx context.Context, checkout domain.Checkout) error {
	payload, err := json.Marshal(checkout)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.PendingKey(checkout.SessionID, checkout.RestaurantID), payload, s.TTL).Err()
}

func (s *RedisCheckoutStore) GetPending(ctx context.Context, sessionID, restaurantID string) (*domain.Checkout, error) {
	return decodePending(s.Client.Get(ctx, s.PendingKey(sessionID, restaurantID)).Bytes())
}

// ClaimPending reads and removes the checkout in one GETDEL, so only one caller
// gets it.
func (s *RedisCheckoutStore) ClaimPending(ctx context.Context, sessionID, restaurantID string) (*domain.Checkout, error) {
	return decodePending(s.Client.GetDel(ctx, s.PendingKey(sessionID, restaurantID)).Bytes())
}

func decodePending(raw []byte, err error) (*domain.Checkout, error) {
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var checkout domain.Checkout
	if err := json.Unmarshal(raw, &checkout); err != nil {
		return nil, fmt.Errorf("failed to decode pending checkout: %w", err)
	}
	return &checkout, nil
}

// RedisChatBroker fans chat messages out to every subscriber of an order.
type RedisChatBroker struct {
	Client *redis.Client
}

func NewRedisChatBroker(client *redis.Client) *RedisChatBroker {
	return &RedisChatBroker{Client: client}
}

func ChatChannel(orderID string) string {
	return "chat:" + orderID
}

func (b *RedisChatBroker) Publish(ctx context.Context, msg domain.ChatMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.Client.Publish(ctx, ChatChannel(msg.OrderID), payload).Err()
}

// Subscribe returns once the subscription is active. The channel is closed and
// the subscription released when ctx is done.
func (b *RedisChatBroker) Subscribe(ctx context.Context, orderID string) (<-chan domain.ChatMessage, error) {
	pubsub := b.Client.Subscribe(ctx, ChatChannel(orderID))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", ChatChannel(orderID), err)
	}

	out := make(chan domain.ChatMessage)
	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				var msg domain.ChatMessage
				if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
					log.Printf("ERROR: dropping malformed chat payload on %s: %v", m.Channel, err)
					continue
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
