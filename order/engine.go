package order

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/parrilleros/kiosk/models"
)

// IVA is applied as a proportion of the tax-inclusive total, not added on
// top. Fixed business rule.
const (
	taxShare     = 0.08
	taxBaseShare = 0.92
)

// NumberStore persists the order number across kiosk sessions under a
// fixed key.
type NumberStore interface {
	LastOrderNumber() (int, error)
	SetLastOrderNumber(n int) error
}

// Breakdown is the money summary every renderer (cart screen, ticket,
// invoice, WhatsApp text) must agree on. TaxBase and Tax are derived from
// the rounded total and rounded independently for display; their sum is
// not reconciled back against Total.
type Breakdown struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	TaxBase     float64 `json:"tax_base"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Compute derives the breakdown from a line-item subtotal and a delivery
// fee. The subtotal is expected to be rounded already.
func Compute(subtotal, deliveryFee float64) Breakdown {
	total := math.Round(subtotal + deliveryFee)
	return Breakdown{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		TaxBase:     math.Round(total * taxBaseShare),
		Tax:         math.Round(total * taxShare),
		Total:       total,
	}
}

// Engine owns the cart and order-number state for the lifetime of the
// kiosk session. All mutation goes through it; screens only read.
//
// Order numbers advance when the cart is cleared after a completed order,
// so refreshing or abandoning a cart never burns a number.
type Engine struct {
	mu            sync.Mutex
	numbers       NumberStore
	cart          []models.CartItem
	orderNumber   int
	paymentMethod models.PaymentMethod
	currentOrder  *models.Order
	deliveryFee   float64
	completed     bool
	lastStamp     int64
}

// NewEngine loads the last persisted order number and resumes from it,
// starting at 1 on a fresh install.
func NewEngine(numbers NumberStore) *Engine {
	n, err := numbers.LastOrderNumber()
	if err != nil {
		logrus.Printf("failed to load last order number, starting fresh, error: %v", err)
	}
	if n < 1 {
		n = 1
	}
	return &Engine{numbers: numbers, orderNumber: n}
}

// AddToCart appends a new line with a fresh id, even if an identical
// item/customization combination is already in the cart. Duplicate
// customization options within one call are dropped.
func (e *Engine) AddToCart(item models.MenuItem, quantity int, customizations []models.CustomizationOption, withFries bool, specialInstructions string) models.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	opts := make([]models.CustomizationOption, 0, len(customizations))
	seen := make(map[int]bool, len(customizations))
	for _, opt := range customizations {
		if seen[opt.ID] {
			continue
		}
		seen[opt.ID] = true
		opts = append(opts, opt)
	}

	// Line ids are item id + insertion timestamp; nudge the stamp forward
	// when two adds land on the same tick so ids stay unique.
	stamp := time.Now().UnixNano()
	if stamp <= e.lastStamp {
		stamp = e.lastStamp + 1
	}
	e.lastStamp = stamp

	line := models.CartItem{
		ID:                  fmt.Sprintf("%d_%d", item.ID, stamp),
		MenuItem:            item,
		Quantity:            quantity,
		Customizations:      opts,
		WithFries:           withFries,
		SpecialInstructions: specialInstructions,
	}
	e.cart = append(e.cart, line)
	return line
}

// RemoveFromCart deletes the matching line. Unknown ids are a no-op.
func (e *Engine) RemoveFromCart(cartItemID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(cartItemID)
}

func (e *Engine) removeLocked(cartItemID string) {
	kept := e.cart[:0]
	for _, line := range e.cart {
		if line.ID != cartItemID {
			kept = append(kept, line)
		}
	}
	e.cart = kept
}

// UpdateQuantity replaces the quantity on the matching line; a quantity
// of zero or less removes the line instead.
func (e *Engine) UpdateQuantity(cartItemID string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity <= 0 {
		e.removeLocked(cartItemID)
		return
	}
	for i := range e.cart {
		if e.cart[i].ID == cartItemID {
			e.cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart and resets the payment method and delivery
// fee. If an order was completed since the last clear, the order number
// advances and is persisted before the next customer starts.
func (e *Engine) ClearCart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cart = nil
	e.paymentMethod = ""
	e.deliveryFee = 0
	if e.completed {
		e.completed = false
		e.orderNumber++
		if err := e.numbers.SetLastOrderNumber(e.orderNumber); err != nil {
			logrus.Printf("failed to persist order number %d, error: %v", e.orderNumber, err)
		}
	}
}

func (e *Engine) SetPaymentMethod(method models.PaymentMethod) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paymentMethod = method
}

func (e *Engine) SetDeliveryFee(fee float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deliveryFee = fee
}

// CompleteOrder snapshots the cart, total and payment method into a new
// immutable Order and keeps it as the current one. On an empty cart it
// does nothing and returns nil, leaving any prior snapshot in place.
// Clearing the cart is a separate, caller-invoked step.
func (e *Engine) CompleteOrder() *models.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.cart) == 0 {
		return nil
	}

	items := make([]models.CartItem, len(e.cart))
	copy(items, e.cart)
	b := Compute(e.subtotalLocked(), e.deliveryFee)

	o := &models.Order{
		ID:            fmt.Sprintf("ORD_%03d", e.orderNumber),
		Number:        e.orderNumber,
		Items:         items,
		Subtotal:      b.Subtotal,
		DeliveryFee:   b.DeliveryFee,
		Total:         b.Total,
		PaymentMethod: e.paymentMethod,
		Status:        models.StatusCompleted,
		CreatedAt:     time.Now(),
	}
	e.currentOrder = o
	e.completed = true
	return o
}

func (e *Engine) subtotalLocked() float64 {
	var sum float64
	for _, line := range e.cart {
		sum += line.LineTotal()
	}
	return math.Round(sum)
}

// Cart returns a copy of the current lines.
func (e *Engine) Cart() []models.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	items := make([]models.CartItem, len(e.cart))
	copy(items, e.cart)
	return items
}

func (e *Engine) Subtotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.subtotalLocked()
}

func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return math.Round(e.subtotalLocked() + e.deliveryFee)
}

func (e *Engine) Breakdown() Breakdown {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Compute(e.subtotalLocked(), e.deliveryFee)
}

func (e *Engine) OrderNumber() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.orderNumber
}

func (e *Engine) PaymentMethod() models.PaymentMethod {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paymentMethod
}

func (e *Engine) DeliveryFee() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.deliveryFee
}

func (e *Engine) CurrentOrder() *models.Order {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentOrder
}
