package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PayCash        PaymentMethod = "Efectivo"
	PayBancolombia PaymentMethod = "Bancolombia"
	PayNequi       PaymentMethod = "Nequi"
	PayDaviplata   PaymentMethod = "Daviplata"
)

func (m PaymentMethod) IsValid() bool {
	return m == PayCash || m == PayBancolombia || m == PayNequi || m == PayDaviplata
}

// OrderStatus follows the kitchen lifecycle stored in pedidos.estado.
// StatusCompleted is the terminal state the engine stamps on a checkout
// snapshot; the kitchen states below are only ever written by the store.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pendiente"
	StatusConfirmed OrderStatus = "confirmado"
	StatusPreparing OrderStatus = "preparando"
	StatusReady     OrderStatus = "listo"
	StatusDelivered OrderStatus = "entregado"
	StatusCancelled OrderStatus = "cancelado"
	StatusCompleted OrderStatus = "completed"
)

type OrderType string

const (
	OrderDelivery OrderType = "domicilio"
	OrderPickup   OrderType = "recoger"
)

// CartItem is one line in the cart. Its ID is unique per add-to-cart call,
// so adding the same menu item twice yields two independent lines.
type CartItem struct {
	ID                  string                `json:"id"`
	MenuItem            MenuItem              `json:"menu_item"`
	Quantity            int                   `json:"quantity"`
	Customizations      []CustomizationOption `json:"customizations"`
	WithFries           bool                  `json:"with_fries"`
	SpecialInstructions string                `json:"special_instructions,omitempty"`
}

// BasePrice substitutes the combo price when the line has the fries
// upgrade and the item defines one.
func (ci CartItem) BasePrice() float64 {
	if ci.WithFries && ci.MenuItem.PriceWithFries != nil {
		return *ci.MenuItem.PriceWithFries
	}
	return ci.MenuItem.Price
}

func (ci CartItem) ExtrasTotal() float64 {
	var sum float64
	for _, opt := range ci.Customizations {
		sum += opt.Price
	}
	return sum
}

func (ci CartItem) UnitPrice() float64 {
	return ci.BasePrice() + ci.ExtrasTotal()
}

// LineTotal is always (basePrice + extras) * quantity.
func (ci CartItem) LineTotal() float64 {
	return ci.UnitPrice() * float64(ci.Quantity)
}

// Order is an immutable snapshot of a completed cart, labeled with the
// order number that was current when checkout finished.
type Order struct {
	ID            string        `json:"id"`
	Number        int           `json:"number"`
	Items         []CartItem    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	DeliveryFee   float64       `json:"delivery_fee"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type Customer struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"nombre" json:"name"`
	Phone        string    `db:"telefono" json:"phone"`
	Email        string    `db:"email" json:"email"`
	Cedula       string    `db:"cedula" json:"cedula"`
	Address      string    `db:"direccion" json:"address"`
	Neighborhood string    `db:"barrio" json:"neighborhood"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Invoice struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Number         string    `db:"numero_factura" json:"number"`
	OrderID        uuid.UUID `db:"pedido_id" json:"order_id"`
	CustomerName   string    `db:"cliente_nombre" json:"customer_name"`
	CustomerCedula string    `db:"cliente_cedula" json:"customer_cedula"`
	CustomerEmail  string    `db:"cliente_email" json:"customer_email"`
	Subtotal       float64   `db:"subtotal" json:"subtotal"`
	Tax            float64   `db:"iva" json:"tax"`
	Total          float64   `db:"total" json:"total"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
