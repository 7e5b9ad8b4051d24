package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/parrilleros/kiosk/models"
	"github.com/parrilleros/kiosk/order"
)

// CatalogStore provides the static catalog: menu, customization options
// and sedes with their delivery pricing tables.
type CatalogStore interface {
	Categories() ([]models.Category, error)
	MenuItems(categorySlug string) ([]models.MenuItem, error)
	MenuItem(id int) (models.MenuItem, error)
	CustomizationOptions(ids []int) ([]models.CustomizationOption, error)
	Sedes() ([]models.Sede, error)
	Sede(id int) (models.Sede, error)
	DeliveryZones(sedeID int) ([]models.DeliveryZone, error)
	DeliveryFee(sedeID int, neighborhood string) (float64, error)
}

// OrderStore archives completed orders.
type OrderStore interface {
	SaveCompletedOrder(o *models.Order, c models.Customer, sedeID int, orderType models.OrderType, withInvoice bool) (*models.Invoice, error)
}

// API holds the kiosk's dependencies; every handler is a method on it.
type API struct {
	catalog       CatalogStore
	orders        OrderStore
	engine        *order.Engine
	checkoutDelay time.Duration
}

func NewAPI(catalog CatalogStore, orders OrderStore, engine *order.Engine, checkoutDelay time.Duration) *API {
	return &API{
		catalog:       catalog,
		orders:        orders,
		engine:        engine,
		checkoutDelay: checkoutDelay,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
