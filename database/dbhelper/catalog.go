package dbhelper

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/parrilleros/kiosk/models"
)

// Querier is the subset of the connection the helpers need; both the
// database wrapper and a transaction satisfy it.
type Querier interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func GetCategories(db Querier) ([]models.Category, error) {
	rows, err := db.Query(`
		SELECT id, nombre, slug, icono, orden_display
		FROM categorias
		WHERE activo
		ORDER BY orden_display`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.DisplayOrder); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetMenuItems lists the active catalog; pass an empty slug for all
// categories.
func GetMenuItems(db Querier, categorySlug string) ([]models.MenuItem, error) {
	query := `
		SELECT p.id, p.nombre, p.descripcion, p.precio, p.precio_con_papas,
		       p.imagen_url, p.categoria_id, c.slug, p.personalizable
		FROM productos p
		JOIN categorias c ON c.id = p.categoria_id
		WHERE p.activo AND ($1 = '' OR c.slug = $1)
		ORDER BY p.orden_display`

	rows, err := db.Query(query, categorySlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func GetMenuItemByID(db Querier, id int) (models.MenuItem, error) {
	row := db.QueryRow(`
		SELECT p.id, p.nombre, p.descripcion, p.precio, p.precio_con_papas,
		       p.imagen_url, p.categoria_id, c.slug, p.personalizable
		FROM productos p
		JOIN categorias c ON c.id = p.categoria_id
		WHERE p.id = $1 AND p.activo`, id)
	return scanMenuItem(row)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuItem(row scanner) (models.MenuItem, error) {
	var item models.MenuItem
	var withFries sql.NullFloat64
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &withFries,
		&item.Image, &item.CategoryID, &item.Category, &item.Customizable)
	if err != nil {
		return models.MenuItem{}, err
	}
	if withFries.Valid {
		item.PriceWithFries = &withFries.Float64
	}
	return item, nil
}

// GetCustomizationOptions resolves the given option ids; pass nil for the
// whole active set.
func GetCustomizationOptions(db Querier, ids []int) ([]models.CustomizationOption, error) {
	query := `
		SELECT id, nombre, precio_adicional
		FROM opciones_personalizacion
		WHERE activo AND ($1::int[] IS NULL OR id = ANY($1))
		ORDER BY id`

	var filter interface{}
	if ids != nil {
		filter = pq.Array(ids)
	}
	rows, err := db.Query(query, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []models.CustomizationOption
	for rows.Next() {
		var opt models.CustomizationOption
		if err := rows.Scan(&opt.ID, &opt.Name, &opt.Price); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func GetSedes(db Querier) ([]models.Sede, error) {
	rows, err := db.Query(`
		SELECT id, nombre, direccion, telefono, whatsapp, barrio
		FROM sedes
		WHERE activo
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sedes []models.Sede
	for rows.Next() {
		var s models.Sede
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.WhatsApp, &s.Neighborhood); err != nil {
			return nil, err
		}
		sedes = append(sedes, s)
	}
	return sedes, rows.Err()
}

func GetSedeByID(db Querier, id int) (models.Sede, error) {
	var s models.Sede
	err := db.QueryRow(`
		SELECT id, nombre, direccion, telefono, whatsapp, barrio
		FROM sedes
		WHERE id = $1 AND activo`, id).
		Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.WhatsApp, &s.Neighborhood)
	return s, err
}

func GetDeliveryZones(db Querier, sedeID int) ([]models.DeliveryZone, error) {
	rows, err := db.Query(`
		SELECT id, sede_id, barrio, tarifa
		FROM zonas_entrega
		WHERE sede_id = $1
		ORDER BY barrio`, sedeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []models.DeliveryZone
	for rows.Next() {
		var z models.DeliveryZone
		if err := rows.Scan(&z.ID, &z.SedeID, &z.Neighborhood, &z.Fee); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

// GetDeliveryFee returns sql.ErrNoRows when the sede does not deliver to
// the neighborhood.
func GetDeliveryFee(db Querier, sedeID int, neighborhood string) (float64, error) {
	var fee float64
	err := db.QueryRow(`
		SELECT tarifa FROM zonas_entrega
		WHERE sede_id = $1 AND LOWER(barrio) = LOWER($2)`, sedeID, neighborhood).
		Scan(&fee)
	return fee, err
}
