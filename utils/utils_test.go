package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/parrilleros/kiosk/models"
)

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{500, "$500"},
		{25000, "$25.000"},
		{1234567, "$1.234.567"},
		{-1500, "-$1.500"},
	}
	for _, tc := range cases {
		if got := FormatCOP(tc.in); got != tc.want {
			t.Errorf("FormatCOP(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisplayNameStripsKitchenPrefix(t *testing.T) {
	opt := models.CustomizationOption{Name: "AD Tocineta"}
	if got := DisplayName(opt); got != "Tocineta" {
		t.Fatalf("DisplayName = %q, want %q", got, "Tocineta")
	}
	plain := models.CustomizationOption{Name: "Queso extra"}
	if got := DisplayName(plain); got != "Queso extra" {
		t.Fatalf("DisplayName = %q, want %q", got, "Queso extra")
	}
}

func sampleOrder() *models.Order {
	withFries := 30000.0
	return &models.Order{
		ID:     "ORD_041",
		Number: 41,
		Items: []models.CartItem{
			{
				ID: "1_100",
				MenuItem: models.MenuItem{
					ID: 1, Name: "Hamburguesa Sencilla", Price: 25000, PriceWithFries: &withFries,
				},
				Quantity:  2,
				WithFries: true,
				Customizations: []models.CustomizationOption{
					{ID: 1, Name: "AD Tocineta", Price: 3000},
				},
				SpecialInstructions: "sin cebolla",
			},
		},
		Subtotal:      66000,
		DeliveryFee:   5000,
		Total:         71000,
		PaymentMethod: models.PayNequi,
		Status:        models.StatusCompleted,
		CreatedAt:     time.Date(2025, 3, 14, 15, 4, 0, 0, time.UTC),
	}
}

func TestTicketContent(t *testing.T) {
	got := Ticket(sampleOrder())

	for _, want := range []string{
		"PARRILLEROS",
		"Pedido #041",
		"2 x Hamburguesa Sencilla + Papas",
		"+ Tocineta",
		"* sin cebolla",
		"Subtotal: $65.320",
		"IVA (8%): $5.680",
		"Domicilio: $5.000",
		"TOTAL: $71.000",
		"Forma de pago: Nequi",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ticket missing %q:\n%s", want, got)
		}
	}
}

func TestInvoiceTextContent(t *testing.T) {
	inv := models.Invoice{Number: "FAC-000123"}
	c := models.Customer{
		Name: "Ana", Phone: "3001234567", Email: "ana@example.com",
		Cedula: "1090123456", Address: "Calle 1 #2-3", Neighborhood: "Centro",
	}
	sede := models.Sede{Name: "Sede Norte", Address: "Av 5 #10-20", Phone: "6075551234"}

	got := InvoiceText(sampleOrder(), inv, c, sede)

	for _, want := range []string{
		"FACTURA DE VENTA",
		"FAC-000123",
		"Cliente: Ana",
		"CC: 1090123456",
		"Sede: Sede Norte",
		"TOTAL: $71.000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("invoice missing %q:\n%s", want, got)
		}
	}
}

// Every rendering of the same order must show identical money figures.
func TestRenderersAgreeOnTotals(t *testing.T) {
	o := sampleOrder()
	c := models.Customer{Name: "Ana", Phone: "3001234567", Address: "Calle 1", Neighborhood: "Centro"}

	ticket := Ticket(o)
	wa := WhatsAppMessage(o, c)

	for _, figure := range []string{"$65.320", "$5.680", "$71.000"} {
		if !strings.Contains(ticket, figure) {
			t.Errorf("ticket missing %q", figure)
		}
		if !strings.Contains(wa, figure) {
			t.Errorf("whatsapp message missing %q", figure)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	got := WhatsAppLink("+573186025827", "hola mundo")
	want := "https://wa.me/573186025827?text=hola+mundo"
	if got != want {
		t.Fatalf("WhatsAppLink = %q, want %q", got, want)
	}
	if strings.Contains(got, "+57") {
		t.Fatal("link must not keep the + prefix")
	}
}
