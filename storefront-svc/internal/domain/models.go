package domain

import (
	"encoding/json"
	"time"
)

// Coordinate is a latitude/longitude pair in degrees. On the wire it travels as
// "lat,lon".
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type WorkingHoursEntry struct {
	Day   string `json:"dia"`
	Start string `json:"inicio"`
	End   string `json:"fin"`
}

// PaymentInfo is the bank-transfer destination configured by a restaurant.
type PaymentInfo struct {
	Bank       string `json:"banco"`
	Holder     string `json:"titular"`
	Account    string `json:"cuenta"`
	DocumentID string `json:"cedula,omitempty"`
	Phone      string `json:"telefono,omitempty"`
}

// Configured reports whether the destination is usable for a transfer.
func (p *PaymentInfo) Configured() bool {
	return p != nil && p.Bank != "" && p.Account != ""
}

type RestaurantMeta struct {
	ID           string              `json:"_id"`
	Name         string              `json:"nombre"`
	Coordinate   string              `json:"ubicacion"`
	WorkingHours []WorkingHoursEntry `json:"horario_de_trabajo"`
	Images       Images              `json:"images,omitempty"`
	Suspended    bool                `json:"suspendido,omitempty"`
	Payment      *PaymentInfo        `json:"datos_de_pago,omitempty"`
}

// Images accepts either a single URL or a list of URLs.
type Images []string

func (im *Images) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*im = nil
		} else {
			*im = Images{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*im = many
	return nil
}

type Product struct {
	ID           string   `json:"_id"`
	Name         string   `json:"nombre"`
	Description  string   `json:"descripcion,omitempty"`
	Price        float64  `json:"precio"`
	Images       Images   `json:"images,omitempty"`
	RestaurantID string   `json:"id_restaurant"`
	Tags         []string `json:"tags,omitempty"`
	Suspended    bool     `json:"suspendido,omitempty"`
}

type CartItem struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	RestaurantID string  `json:"restaurant_id"`
}

// RemoteCart is the cart document returned by GET /cart/cart/{clientId}.
type RemoteCart struct {
	ID       string           `json:"_id"`
	ClientID string           `json:"id_client"`
	Total    float64          `json:"total"`
	Items    []RemoteCartItem `json:"items"`
}

type RemoteCartItem struct {
	ProductID    string `json:"product"`
	Quantity     int    `json:"quantity"`
	RestaurantID string `json:"id_restaurant"`
}

type OrderLine struct {
	ProductID string `json:"id_producto"`
	Quantity  int    `json:"cantidad"`
}

// Order is the creation payload for POST /pedido/pedidos.
type Order struct {
	ClientID        string      `json:"id_cliente"`
	RestaurantID    string      `json:"id_restaurant"`
	DeliveryAddress string      `json:"direccion_de_entrega"`
	Lines           []OrderLine `json:"detalles"`
	Total           float64     `json:"total"`
}

type OrderRestaurant struct {
	ID         string `json:"_id"`
	Name       string `json:"nombre"`
	Coordinate string `json:"ubicacion"`
}

type OrderRecordLine struct {
	Product  Product `json:"id_producto"`
	Quantity int     `json:"cantidad"`
}

// OrderClient is the ordering client. The order API sends either the bare id or
// the populated client.
type OrderClient struct {
	ID       string `json:"_id"`
	Name     string `json:"nombre,omitempty"`
	LastName string `json:"apellido,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (c *OrderClient) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*c = OrderClient{ID: id}
		return nil
	}
	type plain OrderClient
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = OrderClient(p)
	return nil
}

// OrderRecord is an order as read back from the order API.
type OrderRecord struct {
	ID                 string            `json:"_id"`
	Status             string            `json:"estado"`
	Total              float64           `json:"total"`
	DeliveryAddress    string            `json:"direccion_de_entrega"`
	Client             OrderClient       `json:"id_cliente"`
	Restaurant         OrderRestaurant   `json:"id_restaurant"`
	CourierID          string            `json:"id_repartidor,omitempty"`
	Lines              []OrderRecordLine `json:"detalles"`
	CreatedAt          time.Time         `json:"createdAt"`
	ConfirmedByClient  bool              `json:"confirmado_por_cliente,omitempty"`
	ConfirmedByCourier bool              `json:"confirmado_por_repartidor,omitempty"`
}

type Courier struct {
	ID       string `json:"_id"`
	Name     string `json:"nombre"`
	LastName string `json:"apellido"`
	Phone    string `json:"telefono,omitempty"`
	Location string `json:"ubicacion,omitempty"`
}

// OrderView is an OrderRecord decorated for display.
type OrderView struct {
	OrderRecord
	ETAMinutes int      `json:"eta_minutes,omitempty"`
	Courier    *Courier `json:"repartidor,omitempty"`
}

const (
	MessageText     = "text"
	MessageImage    = "image"
	MessageLocation = "location"
)

type ChatMessage struct {
	ID         string    `json:"id" bson:"id"`
	OrderID    string    `json:"order_id" bson:"-"`
	SenderID   string    `json:"senderId" bson:"senderId"`
	SenderType string    `json:"senderType" bson:"senderType"`
	Content    string    `json:"content" bson:"content"`
	Type       string    `json:"type" bson:"type"`
	ImageURL   string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// Session is the per-client state that the web view used to keep in local storage.
type Session struct {
	ID           string  `json:"session_id"`
	Token        string  `json:"token"`
	ClientID     string  `json:"client_id"`
	LastLocation string  `json:"last_location,omitempty"`
	CurrencyRate float64 `json:"currency_rate,omitempty"`
}

type KafkaMessage struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	ClientID     string    `json:"client_id"`
	RestaurantID string    `json:"restaurant_id"`
	Total        float64   `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

type Quote struct {
	Subtotal     float64 `json:"subtotal"`
	Fee          float64 `json:"delivery_fee"`
	Total        float64 `json:"total"`
	DisplayTotal float64 `json:"display_total"`
	LocalTotal   float64 `json:"local_total,omitempty"`
	ByDistance   bool    `json:"by_distance"`
}

type CheckoutState string

const (
	CheckoutIdle                     CheckoutState = "Idle"
	CheckoutFetchingPaymentInfo      CheckoutState = "FetchingPaymentInfo"
	CheckoutAwaitingUserConfirmation CheckoutState = "AwaitingUserConfirmation"
	CheckoutSubmitting               CheckoutState = "Submitting"
	CheckoutChatChannelCreated       CheckoutState = "ChatChannelCreated"
)

// Checkout is one order placement for a single restaurant group.
type Checkout struct {
	SessionID       string        `json:"session_id"`
	ClientID        string        `json:"client_id"`
	RestaurantID    string        `json:"restaurant_id"`
	RestaurantName  string        `json:"restaurant_name"`
	DeliveryAddress string        `json:"delivery_address"`
	Items           []CartItem    `json:"items"`
	Quote           Quote         `json:"quote"`
	Payment         PaymentInfo   `json:"payment"`
	State           CheckoutState `json:"state"`
	OrderID         string        `json:"order_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	// CartSnapshot is the whole local cart when the checkout was prepared.
	CartSnapshot []CartItem `json:"cart_snapshot,omitempty"`
}

// JournalEntry records the outcome of one submission step.
type JournalEntry struct {
	ID           int       `json:"id"`
	SessionID    string    `json:"session_id"`
	ClientID     string    `json:"client_id"`
	RestaurantID string    `json:"restaurant_id"`
	OrderID      string    `json:"order_id,omitempty"`
	Step         string    `json:"step"`
	Succeeded    bool      `json:"succeeded"`
	Detail       string    `json:"detail,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
