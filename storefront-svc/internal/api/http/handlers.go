package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/service"

	"github.com/gorilla/mux"
)

const SessionHeader = "X-Session-ID"

const maxProofSize = 10 << 20

type Handler struct {
	Sessions service.SessionServiceInterface
	Catalog  service.CatalogServiceInterface
	Cart     service.CartServiceInterface
	Checkout service.CheckoutServiceInterface
	Orders   service.OrderServiceInterface
	Chat     service.ChatServiceInterface
}

func NewHandler(
	sessions service.SessionServiceInterface,
	catalog service.CatalogServiceInterface,
	cart service.CartServiceInterface,
	checkout service.CheckoutServiceInterface,
	orders service.OrderServiceInterface,
	chat service.ChatServiceInterface,
) *Handler {
	return &Handler{
		Sessions: sessions,
		Catalog:  catalog,
		Cart:     cart,
		Checkout: checkout,
		Orders:   orders,
		Chat:     chat,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/session", h.startSession).Methods("POST")
	r.HandleFunc("/api/session", h.withSession(h.getSession)).Methods("GET")
	r.HandleFunc("/api/session", h.withSession(h.endSession)).Methods("DELETE")
	r.HandleFunc("/api/session/location", h.withSession(h.updateLocation)).Methods("PUT")
	r.HandleFunc("/api/session/currency-rate", h.withSession(h.updateCurrencyRate)).Methods("PUT")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.getProduct).Methods("GET")

	r.HandleFunc("/api/cart", h.withSession(h.getCart)).Methods("GET")
	r.HandleFunc("/api/cart/items", h.withSession(h.addCartItem)).Methods("POST")
	r.HandleFunc("/api/cart/items/{productId}", h.withSession(h.removeCartItem)).Methods("DELETE")

	r.HandleFunc("/api/checkout/history", h.withSession(h.checkoutHistory)).Methods("GET")
	r.HandleFunc("/api/checkout/{restaurantId}", h.withSession(h.prepareCheckout)).Methods("POST")
	r.HandleFunc("/api/checkout/{restaurantId}/confirm", h.withSession(h.confirmCheckout)).Methods("POST")
	r.HandleFunc("/api/checkout/{restaurantId}/qrcode", h.withSession(h.paymentQRCode)).Methods("GET")

	r.HandleFunc("/api/orders", h.withSession(h.getOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.withSession(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/cancel", h.withSession(h.cancelOrder)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/delivered", h.withSession(h.confirmDelivered)).Methods("PUT")

	r.HandleFunc("/api/chat/{orderId}/messages", h.withSession(h.getMessages)).Methods("GET")
	r.HandleFunc("/api/chat/{orderId}/messages", h.withSession(h.sendMessage)).Methods("POST")
	r.HandleFunc("/api/chat/{orderId}/proof", h.withSession(h.uploadProof)).Methods("POST")
	r.HandleFunc("/api/chat/{orderId}/ws", h.withSession(h.chatSocket)).Methods("GET")
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *domain.Session)

// withSession resolves the session from the X-Session-ID header, or from the
// session query parameter for websocket clients that can not set headers.
func (h *Handler) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		if id == "" {
			id = r.URL.Query().Get("session")
		}
		sess, err := h.Sessions.Resolve(r.Context(), id)
		if err != nil {
			writeError(w, err, "resolve session")
			return
		}
		next(w, r, sess)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req service.StartSession
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	sess, err := h.Sessions.Start(r.Context(), req)
	if err != nil {
		writeError(w, err, "start session")
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) endSession(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if err := h.Sessions.End(r.Context(), sess); err != nil {
		writeError(w, err, "end session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateLocation(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var payload struct {
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	updated, err := h.Sessions.UpdateLocation(r.Context(), sess, payload.Location)
	if err != nil {
		writeError(w, err, "update location")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) updateCurrencyRate(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var payload struct {
		Rate float64 `json:"rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	updated, err := h.Sessions.UpdateCurrencyRate(r.Context(), sess, payload.Rate)
	if err != nil {
		writeError(w, err, "update currency rate")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.Restaurants(r.Context())
	if err != nil {
		writeError(w, err, "list restaurants")
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.Restaurant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "get restaurant")
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.Products(r.Context(), r.URL.Query().Get("restaurant"))
	if err != nil {
		writeError(w, err, "list products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Catalog.Product(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "get product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	view, err := h.Cart.View(r.Context(), *sess)
	if err != nil {
		writeError(w, err, "load cart")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var payload struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" {
		http.Error(w, "Missing product_id", http.StatusBadRequest)
		return
	}
	if err := h.Cart.Add(r.Context(), *sess, payload.ProductID, payload.Quantity); err != nil {
		writeError(w, err, "add to cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if err := h.Cart.Remove(r.Context(), *sess, mux.Vars(r)["productId"]); err != nil {
		writeError(w, err, "remove from cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) prepareCheckout(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	checkout, err := h.Checkout.Prepare(r.Context(), *sess, mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err, "prepare order")
		return
	}
	writeJSON(w, http.StatusOK, checkout)
}

func (h *Handler) confirmCheckout(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	result, err := h.Checkout.Confirm(r.Context(), *sess, mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err, "place order")
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) paymentQRCode(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	png, err := h.Checkout.PaymentQR(r.Context(), *sess, mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err, "render payment QR")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) checkoutHistory(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	entries, err := h.Checkout.History(r.Context(), *sess)
	if err != nil {
		writeError(w, err, "load checkout history")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	orders, err := h.Orders.List(r.Context(), *sess)
	if err != nil {
		writeError(w, err, "list orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	order, err := h.Orders.Get(r.Context(), *sess, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "get order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if err := h.Orders.Cancel(r.Context(), *sess, mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "cancel order")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) confirmDelivered(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if err := h.Orders.ConfirmDelivered(r.Context(), *sess, mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "confirm delivery")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMessages(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	msgs, err := h.Chat.Messages(r.Context(), *sess, mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err, "load chat")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	var msg domain.ChatMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	sent, err := h.Chat.Send(r.Context(), *sess, mux.Vars(r)["orderId"], msg)
	if err != nil {
		writeError(w, err, "send message")
		return
	}
	writeJSON(w, http.StatusCreated, sent)
}

var allowedProofTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

func (h *Handler) uploadProof(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProofSize+1<<20)
	if err := r.ParseMultipartForm(maxProofSize); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedProofTypes[contentType] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, WebP, PDF allowed", http.StatusBadRequest)
		return
	}

	msg, err := h.Chat.UploadProof(r.Context(), *sess, mux.Vars(r)["orderId"], service.Proof{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeError(w, err, "upload payment proof")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type statusCoder interface {
	StatusCode() int
}

// writeError maps service errors to statuses. Remote failures surface as a
// general message naming the action, without the backend's body.
func writeError(w http.ResponseWriter, err error, action string) {
	var stepErr *service.StepError
	var remote statusCoder

	switch {
	case errors.Is(err, service.ErrNoSession):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrMissingClient),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidMessage),
		errors.Is(err, service.ErrNoDeliveryLocation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrChatNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyGroup),
		errors.Is(err, service.ErrRestaurantClosed),
		errors.Is(err, service.ErrRestaurantSuspended),
		errors.Is(err, service.ErrNoPendingCheckout),
		errors.Is(err, service.ErrOrderNotCancelable),
		errors.Is(err, service.ErrOrderNotDeliverable),
		errors.Is(err, service.ErrAlreadyConfirmed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrOrderNotOwned):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrNoPaymentInfo):
		http.Error(w, err.Error(), http.StatusPreconditionFailed)
	case errors.As(err, &stepErr):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "failed to " + action,
			"step":  stepErr.Step,
		})
	case errors.As(err, &remote):
		if remote.StatusCode() == http.StatusNotFound {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR: %s: %v", action, err)
		http.Error(w, "failed to "+action, http.StatusBadGateway)
	default:
		log.Printf("ERROR: %s: %v", action, err)
		http.Error(w, "failed to "+action, http.StatusInternalServerError)
	}
}
