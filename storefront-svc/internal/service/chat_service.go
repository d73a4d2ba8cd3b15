package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/geo"

	"github.com/google/uuid"
)

const ProofCaption = "Comprobante de pago"

// Proof is an uploaded bank transfer receipt.
type Proof struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ChatService serves the chat of an order only to the client that placed it.
type ChatService struct {
	store    ChatStore
	broker   ChatBroker
	uploader ProofUploader
	orders   OrderAPI
	Now      func() time.Time
}

func NewChatService(store ChatStore, broker ChatBroker, uploader ProofUploader, orders OrderAPI) *ChatService {
	return &ChatService{store: store, broker: broker, uploader: uploader, orders: orders, Now: time.Now}
}

// authorize reads the order and checks that it belongs to the session's client.
// An order without a client id is refused too.
func (s *ChatService) authorize(ctx context.Context, sess domain.Session, orderID string) error {
	record, err := s.orders.GetOrder(ctx, sess, orderID)
	if isNotFound(err) {
		return ErrChatNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	if record.Client.ID == "" || record.Client.ID != sess.ClientID {
		log.Printf("ERROR: client %s asked for chat of order %s owned by %q", sess.ClientID, orderID, record.Client.ID)
		return ErrOrderNotOwned
	}
	return nil
}

func (s *ChatService) Messages(ctx context.Context, sess domain.Session, orderID string) ([]domain.ChatMessage, error) {
	if err := s.authorize(ctx, sess, orderID); err != nil {
		return nil, err
	}
	msgs, err := s.store.List(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrChatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read chat %s: %w", orderID, err)
	}
	return msgs, nil
}

// Send stores the message and pushes it to live subscribers. Sender fields and
// the timestamp are always set here.
func (s *ChatService) Send(ctx context.Context, sess domain.Session, orderID string, msg domain.ChatMessage) (*domain.ChatMessage, error) {
	if err := s.authorize(ctx, sess, orderID); err != nil {
		return nil, err
	}
	return s.send(ctx, sess, orderID, msg)
}

func (s *ChatService) send(ctx context.Context, sess domain.Session, orderID string, msg domain.ChatMessage) (*domain.ChatMessage, error) {
	msg.Content = strings.TrimSpace(msg.Content)
	if msg.Type == "" {
		msg.Type = domain.MessageText
	}
	switch msg.Type {
	case domain.MessageText:
		if msg.Content == "" {
			return nil, fmt.Errorf("%w: empty text", ErrInvalidMessage)
		}
	case domain.MessageLocation:
		coord, ok := geo.ParseCoordinate(msg.Content)
		if !ok {
			return nil, fmt.Errorf("%w: bad location %q", ErrInvalidMessage, msg.Content)
		}
		msg.Content = geo.FormatCoordinate(coord)
	case domain.MessageImage:
		if msg.ImageURL == "" {
			return nil, fmt.Errorf("%w: image without url", ErrInvalidMessage)
		}
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidMessage, msg.Type)
	}

	msg.ID = uuid.NewString()
	msg.OrderID = orderID
	msg.SenderID = sess.ClientID
	msg.SenderType = ClientSenderType
	msg.Timestamp = s.Now().UTC()

	if err := s.store.Append(ctx, orderID, msg); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to store chat message: %w", err)
	}
	if err := s.broker.Publish(ctx, msg); err != nil {
		log.Printf("ERROR: push chat message %s of %s: %v", msg.ID, orderID, err)
	}
	return &msg, nil
}

func (s *ChatService) UploadProof(ctx context.Context, sess domain.Session, orderID string, proof Proof) (*domain.ChatMessage, error) {
	if proof.Body == nil {
		return nil, fmt.Errorf("%w: empty proof", ErrInvalidMessage)
	}
	if err := s.authorize(ctx, sess, orderID); err != nil {
		return nil, err
	}
	url, err := s.uploader.UploadProof(ctx, orderID, proof.Filename, proof.ContentType, proof.Body, proof.Size)
	if err != nil {
		return nil, err
	}
	return s.send(ctx, sess, orderID, domain.ChatMessage{
		Type:     domain.MessageImage,
		Content:  ProofCaption,
		ImageURL: url,
	})
}

func (s *ChatService) Subscribe(ctx context.Context, sess domain.Session, orderID string) (<-chan domain.ChatMessage, error) {
	if err := s.authorize(ctx, sess, orderID); err != nil {
		return nil, err
	}
	return s.broker.Subscribe(ctx, orderID)
}
