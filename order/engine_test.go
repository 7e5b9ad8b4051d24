package order

import (
	"errors"
	"testing"

	"github.com/parrilleros/kiosk/models"
)

type memNumbers struct {
	n       int
	failGet bool
	failSet bool
	sets    int
}

func (m *memNumbers) LastOrderNumber() (int, error) {
	if m.failGet {
		return 0, errors.New("boom")
	}
	return m.n, nil
}

func (m *memNumbers) SetLastOrderNumber(n int) error {
	if m.failSet {
		return errors.New("boom")
	}
	m.n = n
	m.sets++
	return nil
}

func fries(v float64) *float64 { return &v }

func burger() models.MenuItem {
	return models.MenuItem{
		ID:             1,
		Name:           "Hamburguesa Parrillera",
		Price:          25000,
		PriceWithFries: fries(30000),
		Customizable:   true,
	}
}

func soda() models.MenuItem {
	return models.MenuItem{ID: 2, Name: "Limonada Natural", Price: 6000}
}

func TestLineTotalWithFriesAndCustomization(t *testing.T) {
	e := NewEngine(&memNumbers{})
	tocineta := models.CustomizationOption{ID: 10, Name: "AD Tocineta", Price: 3000}

	line := e.AddToCart(burger(), 2, []models.CustomizationOption{tocineta}, true, "")
	if got := line.LineTotal(); got != 66000 {
		t.Fatalf("expected line total 66000, got %v", got)
	}
	if got := e.Subtotal(); got != 66000 {
		t.Fatalf("expected subtotal 66000, got %v", got)
	}
}

func TestSubtotalSumsAllLines(t *testing.T) {
	e := NewEngine(&memNumbers{})
	e.AddToCart(burger(), 1, nil, false, "")
	e.AddToCart(burger(), 2, nil, true, "")
	e.AddToCart(soda(), 3, nil, false, "")

	want := 25000.0 + 2*30000 + 3*6000
	if got := e.Subtotal(); got != want {
		t.Fatalf("expected subtotal %v, got %v", want, got)
	}
}

func TestAddToCartNeverMerges(t *testing.T) {
	e := NewEngine(&memNumbers{})
	a := e.AddToCart(burger(), 1, nil, false, "")
	b := e.AddToCart(burger(), 1, nil, false, "")

	if len(e.Cart()) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(e.Cart()))
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct line ids, both were %q", a.ID)
	}
}

func TestAddToCartDropsDuplicateOptions(t *testing.T) {
	e := NewEngine(&memNumbers{})
	queso := models.CustomizationOption{ID: 11, Name: "AD Queso", Price: 2500}

	line := e.AddToCart(burger(), 1, []models.CustomizationOption{queso, queso}, false, "")
	if len(line.Customizations) != 1 {
		t.Fatalf("expected 1 customization, got %d", len(line.Customizations))
	}
	if got := line.LineTotal(); got != 27500 {
		t.Fatalf("expected line total 27500, got %v", got)
	}
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		e := NewEngine(&memNumbers{})
		line := e.AddToCart(burger(), 1, nil, false, "")
		e.UpdateQuantity(line.ID, qty)
		if len(e.Cart()) != 0 {
			t.Fatalf("quantity %d should remove the line, cart has %d", qty, len(e.Cart()))
		}
	}
}

func TestUpdateQuantityLeavesOtherLinesUntouched(t *testing.T) {
	e := NewEngine(&memNumbers{})
	a := e.AddToCart(burger(), 1, nil, false, "")
	b := e.AddToCart(soda(), 1, nil, false, "")

	e.UpdateQuantity(b.ID, 4)

	cart := e.Cart()
	if cart[0].ID != a.ID || cart[0].Quantity != 1 {
		t.Fatalf("first line changed unexpectedly: %+v", cart[0])
	}
	if cart[1].Quantity != 4 {
		t.Fatalf("expected quantity 4 on second line, got %d", cart[1].Quantity)
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	e := NewEngine(&memNumbers{})
	line := e.AddToCart(burger(), 2, nil, false, "sin cebolla")

	e.RemoveFromCart("999_123")
	e.UpdateQuantity("999_123", 7)

	cart := e.Cart()
	if len(cart) != 1 {
		t.Fatalf("expected cart unchanged, got %d lines", len(cart))
	}
	if cart[0].ID != line.ID || cart[0].Quantity != 2 || cart[0].SpecialInstructions != "sin cebolla" {
		t.Fatalf("line mutated: %+v", cart[0])
	}
}

func TestClearCartResetsEverything(t *testing.T) {
	e := NewEngine(&memNumbers{})
	e.AddToCart(burger(), 1, nil, false, "")
	e.SetPaymentMethod(models.PayNequi)
	e.SetDeliveryFee(4000)

	e.ClearCart()

	if len(e.Cart()) != 0 {
		t.Fatalf("expected empty cart")
	}
	if e.PaymentMethod() != "" {
		t.Fatalf("expected payment method reset, got %q", e.PaymentMethod())
	}
	if e.DeliveryFee() != 0 {
		t.Fatalf("expected delivery fee reset, got %v", e.DeliveryFee())
	}
}

func TestCompleteOrderEmptyCartKeepsPriorSnapshot(t *testing.T) {
	e := NewEngine(&memNumbers{})
	e.AddToCart(burger(), 1, nil, false, "")
	first := e.CompleteOrder()
	if first == nil {
		t.Fatalf("expected an order")
	}
	e.ClearCart()

	if got := e.CompleteOrder(); got != nil {
		t.Fatalf("expected nil on empty cart, got %+v", got)
	}
	if e.CurrentOrder() != first {
		t.Fatalf("prior snapshot was overwritten")
	}
}

func TestCompleteOrderSnapshot(t *testing.T) {
	e := NewEngine(&memNumbers{n: 41})
	e.AddToCart(burger(), 2, nil, true, "")
	e.SetPaymentMethod(models.PayCash)
	e.SetDeliveryFee(5000)

	o := e.CompleteOrder()
	if o.ID != "ORD_041" || o.Number != 41 {
		t.Fatalf("unexpected order id/number: %q %d", o.ID, o.Number)
	}
	if o.Subtotal != 60000 || o.Total != 65000 {
		t.Fatalf("unexpected totals: subtotal %v total %v", o.Subtotal, o.Total)
	}
	if o.PaymentMethod != models.PayCash || o.Status != models.StatusCompleted {
		t.Fatalf("unexpected payment/status: %q %q", o.PaymentMethod, o.Status)
	}

	// The snapshot must not track later cart mutations.
	e.UpdateQuantity(o.Items[0].ID, 9)
	if o.Items[0].Quantity != 2 {
		t.Fatalf("snapshot mutated after UpdateQuantity")
	}
}

func TestBreakdownDerivedFromRoundedTotal(t *testing.T) {
	b := Compute(50000, 0)
	if b.TaxBase != 46000 {
		t.Fatalf("expected tax base 46000, got %v", b.TaxBase)
	}
	if b.Tax != 4000 {
		t.Fatalf("expected tax 4000, got %v", b.Tax)
	}

	// TaxBase and Tax are each rounded independently from the rounded
	// total; they are never derived from each other, and their sum is not
	// forced to reconcile with Total.
	b = Compute(25107, 4000)
	if b.Total != 29107 {
		t.Fatalf("expected total 29107, got %v", b.Total)
	}
	if b.TaxBase != 26778 { // round(29107 * 0.92) = round(26778.44)
		t.Fatalf("expected tax base 26778, got %v", b.TaxBase)
	}
	if b.Tax != 2329 { // round(29107 * 0.08) = round(2328.56)
		t.Fatalf("expected tax 2329, got %v", b.Tax)
	}
}

func TestOrderNumbersAdvanceOnClearAfterCompletion(t *testing.T) {
	store := &memNumbers{}
	e := NewEngine(store)
	if e.OrderNumber() != 1 {
		t.Fatalf("fresh install should start at 1, got %d", e.OrderNumber())
	}

	// Clearing an abandoned cart must not burn a number.
	e.AddToCart(burger(), 1, nil, false, "")
	e.ClearCart()
	if e.OrderNumber() != 1 || store.sets != 0 {
		t.Fatalf("abandoned cart advanced the number: n=%d sets=%d", e.OrderNumber(), store.sets)
	}

	var numbers []int
	for i := 0; i < 3; i++ {
		e.AddToCart(burger(), 1, nil, false, "")
		o := e.CompleteOrder()
		numbers = append(numbers, o.Number)
		e.ClearCart()
	}
	if numbers[0] != 1 || numbers[1] != 2 || numbers[2] != 3 {
		t.Fatalf("expected strictly increasing numbers 1,2,3, got %v", numbers)
	}
	if store.n != 4 {
		t.Fatalf("expected 4 persisted as the next number, got %d", store.n)
	}
}

func TestOrderNumberResumesAfterRestart(t *testing.T) {
	store := &memNumbers{}
	e := NewEngine(store)
	e.AddToCart(burger(), 1, nil, false, "")
	e.CompleteOrder()
	e.ClearCart()

	restarted := NewEngine(store)
	if restarted.OrderNumber() != 2 {
		t.Fatalf("expected restart to resume at 2, got %d", restarted.OrderNumber())
	}
}

func TestEngineSurvivesStoreFailures(t *testing.T) {
	e := NewEngine(&memNumbers{failGet: true})
	if e.OrderNumber() != 1 {
		t.Fatalf("expected fallback to 1 when load fails, got %d", e.OrderNumber())
	}

	e = NewEngine(&memNumbers{failSet: true})
	e.AddToCart(burger(), 1, nil, false, "")
	e.CompleteOrder()
	e.ClearCart() // persist fails, must not panic
	if e.OrderNumber() != 2 {
		t.Fatalf("in-memory number should still advance, got %d", e.OrderNumber())
	}
}
