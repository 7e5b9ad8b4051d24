package models

// Category groups menu items for the kiosk screens. The slug is what the
// frontend routes on (e.g. "hamburguesas-clasicas").
type Category struct {
	ID           int    `db:"id" json:"id"`
	Name         string `db:"nombre" json:"name"`
	Slug         string `db:"slug" json:"slug"`
	Icon         string `db:"icono" json:"icon"`
	DisplayOrder int    `db:"orden_display" json:"display_order"`
}

// MenuItem is a catalog entry. PriceWithFries is only set for items that
// offer the combo upgrade.
type MenuItem struct {
	ID             int      `db:"id" json:"id"`
	Name           string   `db:"nombre" json:"name"`
	Description    string   `db:"descripcion" json:"description"`
	Price          float64  `db:"precio" json:"price"`
	PriceWithFries *float64 `db:"precio_con_papas" json:"price_with_fries,omitempty"`
	Image          string   `db:"imagen_url" json:"image"`
	CategoryID     int      `db:"categoria_id" json:"category_id"`
	Category       string   `db:"-" json:"category"`
	Customizable   bool     `db:"personalizable" json:"customizable"`
	Badges         []string `db:"-" json:"badges,omitempty"`
}

// CustomizationOption is a priced add-on selectable per cart line. Names
// come from the catalog with the "AD " kitchen prefix; renderers strip it.
type CustomizationOption struct {
	ID    int     `db:"id" json:"id"`
	Name  string  `db:"nombre" json:"name"`
	Price float64 `db:"precio_adicional" json:"price"`
}

// Sede is a physical store location with its own WhatsApp contact and
// delivery pricing table.
type Sede struct {
	ID           int            `db:"id" json:"id"`
	Name         string         `db:"nombre" json:"name"`
	Address      string         `db:"direccion" json:"address"`
	Phone        string         `db:"telefono" json:"phone"`
	WhatsApp     string         `db:"whatsapp" json:"whatsapp"`
	Neighborhood string         `db:"barrio" json:"neighborhood"`
	Zones        []DeliveryZone `db:"-" json:"zones,omitempty"`
}

// DeliveryZone maps a neighborhood covered by a sede to its delivery fee.
type DeliveryZone struct {
	ID           int     `db:"id" json:"id"`
	SedeID       int     `db:"sede_id" json:"sede_id"`
	Neighborhood string  `db:"barrio" json:"neighborhood"`
	Fee          float64 `db:"tarifa" json:"fee"`
}
