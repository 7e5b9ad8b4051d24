package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/parrilleros/kiosk/models"
	"github.com/parrilleros/kiosk/order"
)

// FormatCOP renders a peso amount with dot thousand separators, e.g.
// 25000 -> "$25.000".
func FormatCOP(v float64) string {
	n := int64(v)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + "$" + strings.Join(parts, ".")
}

// DisplayName strips the kitchen "AD " prefix from customization names
// for customer-facing text.
func DisplayName(opt models.CustomizationOption) string {
	return strings.TrimPrefix(opt.Name, "AD ")
}

func writeLines(b *strings.Builder, o *models.Order) {
	for _, line := range o.Items {
		name := line.MenuItem.Name
		if line.WithFries {
			name += " + Papas"
		}
		fmt.Fprintf(b, "%d x %s  %s  %s\n",
			line.Quantity, name, FormatCOP(line.UnitPrice()), FormatCOP(line.LineTotal()))
		if len(line.Customizations) > 0 {
			names := make([]string, 0, len(line.Customizations))
			for _, opt := range line.Customizations {
				names = append(names, DisplayName(opt))
			}
			fmt.Fprintf(b, "   + %s\n", strings.Join(names, ", "))
		}
		if line.SpecialInstructions != "" {
			fmt.Fprintf(b, "   * %s\n", line.SpecialInstructions)
		}
	}
}

func writeBreakdown(b *strings.Builder, o *models.Order) {
	bd := order.Compute(o.Subtotal, o.DeliveryFee)
	fmt.Fprintf(b, "Subtotal: %s\n", FormatCOP(bd.TaxBase))
	fmt.Fprintf(b, "IVA (8%%): %s\n", FormatCOP(bd.Tax))
	if bd.DeliveryFee > 0 {
		fmt.Fprintf(b, "Domicilio: %s\n", FormatCOP(bd.DeliveryFee))
	}
	fmt.Fprintf(b, "TOTAL: %s\n", FormatCOP(bd.Total))
}

// Ticket renders the printable pickup ticket for a completed order.
func Ticket(o *models.Order) string {
	var b strings.Builder
	b.WriteString("PARRILLEROS\nFAST FOOD\n")
	fmt.Fprintf(&b, "%s\n", o.CreatedAt.Format("02/01/2006 3:04 PM"))
	fmt.Fprintf(&b, "Pedido #%03d\n", o.Number)
	b.WriteString("--------------------------------\n")
	writeLines(&b, o)
	b.WriteString("--------------------------------\n")
	writeBreakdown(&b, o)
	if o.PaymentMethod != "" {
		fmt.Fprintf(&b, "Forma de pago: %s\n", o.PaymentMethod)
	}
	b.WriteString("--------------------------------\n")
	b.WriteString("Tiempo estimado de espera: 15-20 min\n")
	b.WriteString("¡Gracias por tu compra!\n")
	return b.String()
}

// InvoiceText renders the sales invoice for a delivery order.
func InvoiceText(o *models.Order, inv models.Invoice, c models.Customer, sede models.Sede) string {
	var b strings.Builder
	b.WriteString("PARRILLEROS FAST FOOD\n")
	b.WriteString("FACTURA DE VENTA\n")
	fmt.Fprintf(&b, "%s  Pedido #%03d\n", inv.Number, o.Number)
	fmt.Fprintf(&b, "Fecha: %s\n", o.CreatedAt.Format("02/01/2006 3:04 PM"))
	fmt.Fprintf(&b, "Sede: %s - %s  Tel: %s\n", sede.Name, sede.Address, sede.Phone)
	b.WriteString("--------------------------------\n")
	b.WriteString("INFORMACIÓN DEL CLIENTE\n")
	fmt.Fprintf(&b, "Cliente: %s\n", c.Name)
	fmt.Fprintf(&b, "Teléfono: %s\n", c.Phone)
	fmt.Fprintf(&b, "Dirección: %s, %s\n", c.Address, c.Neighborhood)
	if c.Cedula != "" {
		fmt.Fprintf(&b, "CC: %s\n", c.Cedula)
	}
	if c.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", c.Email)
	}
	b.WriteString("--------------------------------\n")
	writeLines(&b, o)
	b.WriteString("--------------------------------\n")
	writeBreakdown(&b, o)
	fmt.Fprintf(&b, "Forma de pago: %s\n", o.PaymentMethod)
	b.WriteString("Tiempo estimado de entrega: 45-60 minutos\n")
	b.WriteString("¡Gracias por su preferencia!\n")
	return b.String()
}

// WhatsAppMessage builds the order text the kiosk hands to the sede's
// WhatsApp line after a delivery checkout.
func WhatsAppMessage(o *models.Order, c models.Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍔 *NUEVO PEDIDO #%03d*\n\n", o.Number)
	fmt.Fprintf(&b, "*Cliente:* %s\n", c.Name)
	fmt.Fprintf(&b, "*Teléfono:* %s\n", c.Phone)
	fmt.Fprintf(&b, "*Dirección:* %s, %s\n\n", c.Address, c.Neighborhood)
	b.WriteString("*Pedido:*\n")
	for _, line := range o.Items {
		name := line.MenuItem.Name
		if line.WithFries {
			name += " + Papas"
		}
		fmt.Fprintf(&b, "• %d x %s (%s)\n", line.Quantity, name, FormatCOP(line.LineTotal()))
		for _, opt := range line.Customizations {
			fmt.Fprintf(&b, "   + %s\n", DisplayName(opt))
		}
		if line.SpecialInstructions != "" {
			fmt.Fprintf(&b, "   * %s\n", line.SpecialInstructions)
		}
	}
	bd := order.Compute(o.Subtotal, o.DeliveryFee)
	fmt.Fprintf(&b, "\n*Subtotal:* %s\n", FormatCOP(bd.TaxBase))
	fmt.Fprintf(&b, "*IVA (8%%):* %s\n", FormatCOP(bd.Tax))
	if bd.DeliveryFee > 0 {
		fmt.Fprintf(&b, "*Domicilio:* %s\n", FormatCOP(bd.DeliveryFee))
	}
	fmt.Fprintf(&b, "*TOTAL:* %s\n", FormatCOP(bd.Total))
	fmt.Fprintf(&b, "*Pago:* %s\n", o.PaymentMethod)
	return b.String()
}

// WhatsAppLink builds the wa.me deep link for a sede number like
// "+573186025827".
func WhatsAppLink(number, message string) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
