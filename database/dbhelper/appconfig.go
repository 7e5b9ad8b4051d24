package dbhelper

import (
	"database/sql"
	"strconv"
)

const orderNumberKey = "ultimo_numero_pedido"

func GetConfig(db Querier, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT valor FROM configuracion WHERE clave = $1`, key).Scan(&value)
	return value, err
}

func SetConfig(db Querier, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO configuracion (clave, valor)
		VALUES ($1, $2)
		ON CONFLICT (clave) DO UPDATE
		SET valor = EXCLUDED.valor, fecha_actualizacion = now()`, key, value)
	return err
}

// OrderNumbers persists the kiosk order counter in the configuracion
// table; it backs the engine's NumberStore.
type OrderNumbers struct {
	db Querier
}

func NewOrderNumbers(db Querier) *OrderNumbers {
	return &OrderNumbers{db: db}
}

func (s *OrderNumbers) LastOrderNumber() (int, error) {
	value, err := GetConfig(s.db, orderNumberKey)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

func (s *OrderNumbers) SetLastOrderNumber(n int) error {
	return SetConfig(s.db, orderNumberKey, strconv.Itoa(n))
}
