package storage

import (
	"context"
	"testing"
	"time"

	"riko-storefront/storefront-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoChatStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create channel", func(mt *mtest.T) {
		store := NewMongoChatStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		require.NoError(mt, store.CreateChannel(context.Background(), "o1"))
	})

	mt.Run("append to missing channel", func(mt *mtest.T) {
		store := NewMongoChatStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := store.Append(context.Background(), "ghost", domain.ChatMessage{ID: "m1", Content: "hola"})
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("append", func(mt *mtest.T) {
		store := NewMongoChatStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := store.Append(context.Background(), "o1", domain.ChatMessage{ID: "m1", Content: "hola"})
		assert.NoError(mt, err)
	})

	mt.Run("list sorts by timestamp", func(mt *mtest.T) {
		store := NewMongoChatStore(mt.Coll)
		later := time.Date(2025, 3, 5, 12, 5, 0, 0, time.UTC)
		earlier := later.Add(-5 * time.Minute)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.chats", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "o1"},
			{Key: "messages", Value: bson.A{
				bson.D{{Key: "id", Value: "m2"}, {Key: "content", Value: "second"}, {Key: "type", Value: "text"}, {Key: "timestamp", Value: later}},
				bson.D{{Key: "id", Value: "m1"}, {Key: "content", Value: "10,20"}, {Key: "type", Value: "location"}, {Key: "timestamp", Value: earlier}},
			}},
		}))

		msgs, err := store.List(context.Background(), "o1")
		require.NoError(mt, err)
		require.Len(mt, msgs, 2)
		assert.Equal(mt, "m1", msgs[0].ID)
		assert.Equal(mt, "m2", msgs[1].ID)
		assert.Equal(mt, "o1", msgs[0].OrderID)
	})

	mt.Run("list missing channel", func(mt *mtest.T) {
		store := NewMongoChatStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.chats", mtest.FirstBatch))

		_, err := store.List(context.Background(), "ghost")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}
