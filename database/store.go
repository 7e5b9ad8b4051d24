package database

import (
	"database/sql"
	"fmt"

	"github.com/parrilleros/kiosk/database/dbhelper"
	"github.com/parrilleros/kiosk/models"
	"github.com/parrilleros/kiosk/order"
)

// Store is the persistence collaborator handed to the HTTP layer. It is
// a thin façade over dbhelper so handlers never touch SQL.
type Store struct {
	db *DB
}

func NewStore(db *DB) *Store {
	return &Store{db: db}
}

func (s *Store) Categories() ([]models.Category, error) {
	return dbhelper.GetCategories(s.db)
}

func (s *Store) MenuItems(categorySlug string) ([]models.MenuItem, error) {
	return dbhelper.GetMenuItems(s.db, categorySlug)
}

func (s *Store) MenuItem(id int) (models.MenuItem, error) {
	return dbhelper.GetMenuItemByID(s.db, id)
}

func (s *Store) CustomizationOptions(ids []int) ([]models.CustomizationOption, error) {
	return dbhelper.GetCustomizationOptions(s.db, ids)
}

func (s *Store) Sedes() ([]models.Sede, error) {
	return dbhelper.GetSedes(s.db)
}

func (s *Store) Sede(id int) (models.Sede, error) {
	return dbhelper.GetSedeByID(s.db, id)
}

func (s *Store) DeliveryZones(sedeID int) ([]models.DeliveryZone, error) {
	return dbhelper.GetDeliveryZones(s.db, sedeID)
}

func (s *Store) DeliveryFee(sedeID int, neighborhood string) (float64, error) {
	return dbhelper.GetDeliveryFee(s.db, sedeID, neighborhood)
}

// SaveCompletedOrder writes the customer, the order with its lines and,
// when requested, the invoice in a single transaction.
func (s *Store) SaveCompletedOrder(o *models.Order, c models.Customer, sedeID int, orderType models.OrderType, withInvoice bool) (*models.Invoice, error) {
	b := order.Compute(o.Subtotal, o.DeliveryFee)

	var invoice *models.Invoice
	err := s.db.Tx(func(tx *sql.Tx) error {
		customerID, err := dbhelper.UpsertCustomer(tx, c)
		if err != nil {
			return fmt.Errorf("failed to save customer: %w", err)
		}

		orderID, err := dbhelper.InsertOrder(tx, o, customerID, sedeID, orderType, b.TaxBase, b.Tax)
		if err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		if !withInvoice {
			return nil
		}

		number, err := dbhelper.NextInvoiceNumber(tx)
		if err != nil {
			return fmt.Errorf("failed to issue invoice number: %w", err)
		}
		inv := models.Invoice{
			Number:         number,
			OrderID:        orderID,
			CustomerName:   c.Name,
			CustomerCedula: c.Cedula,
			CustomerEmail:  c.Email,
			Subtotal:       b.TaxBase,
			Tax:            b.Tax,
			Total:          b.Total,
		}
		if inv.ID, err = dbhelper.InsertInvoice(tx, inv); err != nil {
			return fmt.Errorf("failed to save invoice: %w", err)
		}
		invoice = &inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}
