package storage

import (
	"context"
	"errors"
	"sort"
	"time"

	"riko-storefront/storefront-svc/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// chatDocument is one chat channel: the document id is the order id.
type chatDocument struct {
	ID        string               `bson:"_id"`
	Messages  []domain.ChatMessage `bson:"messages"`
	CreatedAt time.Time            `bson:"created_at"`
}

type MongoChatStore struct {
	Collection *mongo.Collection
}

func NewMongoChatStore(collection *mongo.Collection) *MongoChatStore {
	return &MongoChatStore{Collection: collection}
}

// CreateChannel is idempotent: an existing channel keeps its messages.
func (s *MongoChatStore) CreateChannel(ctx context.Context, orderID string) error {
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$setOnInsert": bson.M{
			"messages":   bson.A{},
			"created_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoChatStore) Append(ctx context.Context, orderID string, msg domain.ChatMessage) error {
	res, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$push": bson.M{"messages": msg}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *MongoChatStore) List(ctx context.Context, orderID string) ([]domain.ChatMessage, error) {
	var doc chatDocument
	err := s.Collection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	msgs := doc.Messages
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	for i := range msgs {
		msgs[i].OrderID = orderID
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
	return msgs, nil
}
