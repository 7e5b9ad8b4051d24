package dbhelper

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/parrilleros/kiosk/models"
)

// UpsertCustomer reuses an existing customer matched by phone, otherwise
// inserts a new record.
func UpsertCustomer(tx *sql.Tx, c models.Customer) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(`SELECT id FROM clientes WHERE telefono = $1`, c.Phone).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return uuid.Nil, err
	}

	err = tx.QueryRow(`
		INSERT INTO clientes (nombre, telefono, email, cedula, direccion, barrio)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		c.Name, c.Phone, c.Email, c.Cedula, c.Address, c.Neighborhood).Scan(&id)
	return id, err
}

// InsertOrder stores a completed order snapshot and its lines. The
// breakdown columns hold the displayed figures: subtotal = tax base,
// iva = tax, both derived from the rounded total.
func InsertOrder(tx *sql.Tx, o *models.Order, customerID uuid.UUID, sedeID int, orderType models.OrderType, taxBase, tax float64) (uuid.UUID, error) {
	var orderID uuid.UUID
	err := tx.QueryRow(`
		INSERT INTO pedidos (numero_pedido, cliente_id, sede_id, tipo_pedido, estado,
		                     subtotal, iva, total, domicilio, metodo_pago)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		o.ID, customerID, sedeID, orderType, models.StatusConfirmed,
		taxBase, tax, o.Total, o.DeliveryFee, o.PaymentMethod).Scan(&orderID)
	if err != nil {
		return uuid.Nil, err
	}

	for _, line := range o.Items {
		names := make([]string, 0, len(line.Customizations))
		for _, opt := range line.Customizations {
			names = append(names, opt.Name)
		}
		_, err := tx.Exec(`
			INSERT INTO pedido_items (pedido_id, producto_id, nombre, cantidad, con_papas,
			                          precio_unitario, personalizaciones, total_linea, instrucciones)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			orderID, line.MenuItem.ID, line.MenuItem.Name, line.Quantity, line.WithFries,
			line.UnitPrice(), pq.Array(names), line.LineTotal(), line.SpecialInstructions)
		if err != nil {
			return uuid.Nil, err
		}
	}
	return orderID, nil
}

// NextInvoiceNumber advances the invoice counter and formats it as
// FAC-000001 style.
func NextInvoiceNumber(tx *sql.Tx) (string, error) {
	var n int
	err := tx.QueryRow(`
		UPDATE configuracion
		SET valor = (valor::int + 1)::text, fecha_actualizacion = now()
		WHERE clave = 'ultimo_numero_factura'
		RETURNING valor::int`).Scan(&n)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("FAC-%06d", n), nil
}

func InsertInvoice(tx *sql.Tx, inv models.Invoice) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(`
		INSERT INTO facturas (numero_factura, pedido_id, cliente_nombre, cliente_cedula,
		                      cliente_email, subtotal, iva, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		inv.Number, inv.OrderID, inv.CustomerName, inv.CustomerCedula,
		inv.CustomerEmail, inv.Subtotal, inv.Tax, inv.Total).Scan(&id)
	return id, err
}
