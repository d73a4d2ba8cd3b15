package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	httpapi "riko-storefront/storefront-svc/internal/api/http"
	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/mocks"
	"riko-storefront/storefront-svc/internal/service"
	"riko-storefront/storefront-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	sessions *mocks.SessionServiceInterface
	catalog  *mocks.CatalogServiceInterface
	cart     *mocks.CartServiceInterface
	checkout *mocks.CheckoutServiceInterface
	orders   *mocks.OrderServiceInterface
	chat     *mocks.ChatServiceInterface
}

func newTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		sessions: mocks.NewSessionServiceInterface(t),
		catalog:  mocks.NewCatalogServiceInterface(t),
		cart:     mocks.NewCartServiceInterface(t),
		checkout: mocks.NewCheckoutServiceInterface(t),
		orders:   mocks.NewOrderServiceInterface(t),
		chat:     mocks.NewChatServiceInterface(t),
	}
	handler := httpapi.NewHandler(m.sessions, m.catalog, m.cart, m.checkout, m.orders, m.chat)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func withTestSession(m handlerMocks) {
	m.sessions.On("Resolve", mock.Anything, "s1").Return(&testSession, nil).Once()
}

func TestHandlers_RequireSession(t *testing.T) {
	router, m := newTestRouter(t)
	m.sessions.On("Resolve", mock.Anything, "").Return(nil, service.ErrNoSession).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandlers_SessionFromQuery(t *testing.T) {
	router, m := newTestRouter(t)
	withTestSession(m)
	m.checkout.On("History", mock.Anything, testSession).Return([]domain.JournalEntry{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/checkout/history?session=s1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestStartSessionHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.SessionServiceInterface)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"token":"tok","client_id":"c1","location":"10.5,-66.9"}`,
			setupMock: func(m *mocks.SessionServiceInterface) {
				m.On("Start", mock.Anything, service.StartSession{Token: "tok", ClientID: "c1", Location: "10.5,-66.9"}).
					Return(&testSession, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.SessionServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing client",
			body: `{"token":"tok"}`,
			setupMock: func(m *mocks.SessionServiceInterface) {
				m.On("Start", mock.Anything, mock.Anything).Return(nil, service.ErrMissingClient).Once()
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			testCase.setupMock(m.sessions)

			req := httptest.NewRequest(http.MethodPost, "/api/session", bytes.NewBufferString(testCase.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
		})
	}
}

func TestAddCartItemHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.CartServiceInterface)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"product_id":"p1","quantity":2}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("Add", mock.Anything, testSession, "p1", 2).Return(nil).Once()
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.CartServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing product",
			body:      `{"quantity":1}`,
			setupMock: func(m *mocks.CartServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "zero quantity",
			body: `{"product_id":"p1","quantity":0}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("Add", mock.Anything, testSession, "p1", 0).Return(service.ErrInvalidQuantity).Once()
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			withTestSession(m)
			testCase.setupMock(m.cart)

			req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBufferString(testCase.body))
			req.Header.Set(httpapi.SessionHeader, "s1")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
		})
	}
}

func TestCancelOrderHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "cancelled", err: nil, wantCode: http.StatusNoContent},
		{name: "not pending", err: service.ErrOrderNotCancelable, wantCode: http.StatusConflict},
		{name: "remote not found", err: fmt.Errorf("failed to get order o1: %w", &storage.APIError{Status: 404}), wantCode: http.StatusNotFound},
		{name: "remote failure", err: fmt.Errorf("failed to cancel order o1: %w", &storage.APIError{Status: 500, Body: "stack trace"}), wantCode: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			withTestSession(m)
			m.orders.On("Cancel", mock.Anything, testSession, "o1").Return(testCase.err).Once()

			req := httptest.NewRequest(http.MethodPut, "/api/orders/o1/cancel", nil)
			req.Header.Set(httpapi.SessionHeader, "s1")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
			assert.NotContains(t, rr.Body.String(), "stack trace")
		})
	}
}

func TestPrepareCheckoutHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "no payment info", err: service.ErrNoPaymentInfo, wantCode: http.StatusPreconditionFailed},
		{name: "closed", err: service.ErrRestaurantClosed, wantCode: http.StatusConflict},
		{name: "empty group", err: service.ErrEmptyGroup, wantCode: http.StatusConflict},
		{name: "no location", err: service.ErrNoDeliveryLocation, wantCode: http.StatusBadRequest},
		{name: "unknown restaurant", err: service.ErrRestaurantNotFound, wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			withTestSession(m)
			m.checkout.On("Prepare", mock.Anything, testSession, "r1").Return(nil, testCase.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/api/checkout/r1", nil)
			req.Header.Set(httpapi.SessionHeader, "s1")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
		})
	}
}

func TestConfirmCheckoutHandler(t *testing.T) {
	t.Run("placed", func(t *testing.T) {
		router, m := newTestRouter(t)
		withTestSession(m)
		m.checkout.On("Confirm", mock.Anything, testSession, "r1").Return(&service.ConfirmResult{
			Checkout: domain.Checkout{OrderID: "o1", State: domain.CheckoutChatChannelCreated},
			Cart:     []domain.CartItem{},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/checkout/r1/confirm", nil)
		req.Header.Set(httpapi.SessionHeader, "s1")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var result service.ConfirmResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "o1", result.Checkout.OrderID)
	})

	t.Run("step failure names the step", func(t *testing.T) {
		router, m := newTestRouter(t)
		withTestSession(m)
		m.checkout.On("Confirm", mock.Anything, testSession, "r1").
			Return(nil, &service.StepError{Step: service.StepCreateChat, Err: errors.New("mongo down")}).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/checkout/r1/confirm", nil)
		req.Header.Set(httpapi.SessionHeader, "s1")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.JSONEq(t, `{"error":"failed to place order","step":"create_chat"}`, rr.Body.String())
	})
}

func TestPaymentQRCodeHandler(t *testing.T) {
	router, m := newTestRouter(t)
	withTestSession(m)
	m.checkout.On("PaymentQR", mock.Anything, testSession, "r1").Return([]byte("\x89PNG"), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/checkout/r1/qrcode", nil)
	req.Header.Set(httpapi.SessionHeader, "s1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rr.Body.String())
}

func TestGetProductsHandler(t *testing.T) {
	router, m := newTestRouter(t)
	m.catalog.On("Products", mock.Anything, "r1").Return([]domain.Product{{ID: "p1", Name: "Arepa"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products?restaurant=r1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Arepa", products[0].Name)
}

func TestSendMessageHandler(t *testing.T) {
	router, m := newTestRouter(t)
	withTestSession(m)
	m.chat.On("Send", mock.Anything, testSession, "o1", mock.MatchedBy(func(msg domain.ChatMessage) bool {
		return msg.Content == "hola"
	})).Return(nil, service.ErrChatNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/chat/o1/messages", bytes.NewBufferString(`{"content":"hola"}`))
	req.Header.Set(httpapi.SessionHeader, "s1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetMessagesHandler(t *testing.T) {
	tests := []struct {
		name     string
		msgs     []domain.ChatMessage
		err      error
		wantCode int
	}{
		{name: "own order", msgs: []domain.ChatMessage{{ID: "m1", Content: "hola"}}, wantCode: http.StatusOK},
		{name: "foreign order", err: service.ErrOrderNotOwned, wantCode: http.StatusForbidden},
		{name: "unknown chat", err: service.ErrChatNotFound, wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			withTestSession(m)
			m.chat.On("Messages", mock.Anything, testSession, "o1").Return(testCase.msgs, testCase.err).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/chat/o1/messages", nil)
			req.Header.Set(httpapi.SessionHeader, "s1")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
		})
	}
}

func proofRequest(t *testing.T, contentType string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="proof"; filename="recibo.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	part.Write([]byte("fake image"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/chat/o1/proof", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(httpapi.SessionHeader, "s1")
	return req
}

func TestUploadProofHandler(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		setupMock   func(*mocks.ChatServiceInterface)
		wantCode    int
	}{
		{
			name:        "jpeg accepted",
			contentType: "image/jpeg",
			setupMock: func(m *mocks.ChatServiceInterface) {
				m.On("UploadProof", mock.Anything, testSession, "o1", mock.MatchedBy(func(p service.Proof) bool {
					return p.Filename == "recibo.jpg" && p.ContentType == "image/jpeg" && p.Size == 10
				})).Return(&domain.ChatMessage{ID: "m1", Type: domain.MessageImage}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:        "text rejected",
			contentType: "text/plain",
			setupMock:   func(m *mocks.ChatServiceInterface) {},
			wantCode:    http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			withTestSession(m)
			testCase.setupMock(m.chat)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, proofRequest(t, testCase.contentType))

			assert.Equal(t, testCase.wantCode, rr.Code)
		})
	}
}
