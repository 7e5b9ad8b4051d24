// Package chat implements the kiosk's rule-based assistant: a keyword
// dispatcher over the menu catalog. It performs no inference or parsing
// beyond substring matching.
package chat

import (
	"fmt"
	"strings"

	"github.com/parrilleros/kiosk/models"
)

type Response struct {
	Reply       string            `json:"reply"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Products    []models.MenuItem `json:"products,omitempty"`
}

const (
	maxBurgers = 6
	maxDrinks  = 8
	maxSides   = 6
)

// Reply answers one user message against a catalog snapshot and the
// current cart size.
func Reply(menu []models.MenuItem, cartSize int, input string) Response {
	in := strings.ToLower(strings.TrimSpace(input))

	switch {
	case in == "":
		return welcome()

	case containsAny(in, "domicilio", "entrega", "delivery"):
		if cartSize == 0 {
			return Response{
				Reply:       "Para pedir a domicilio necesitas tener productos en tu carrito. ¿Te ayudo a agregar algo?",
				Suggestions: []string{"Ver hamburguesas", "Ver bebidas", "Ver acompañamientos"},
			}
		}
		return Response{
			Reply: "¡Perfecto! Completa el formulario de domicilio para terminar tu pedido. 🛵",
		}

	case containsAny(in, "hamburguesa", "burger"):
		burgers := filterByCategory(menu, burgerCategories(in)...)
		if len(burgers) == 0 {
			return Response{Reply: "No encontré hamburguesas con esa descripción. ¿Podrías ser más específico?"}
		}
		return Response{
			Reply:       fmt.Sprintf("Encontré %d hamburguesas para ti. ¿Cuál te llama la atención?", len(limit(burgers, maxBurgers))),
			Suggestions: []string{"Ver todas las hamburguesas", "Buscar bebidas", "Ver mi carrito"},
			Products:    limit(burgers, maxBurgers),
		}

	case containsAny(in, "bebida", "tomar", "jugo", "gaseosa"):
		return Response{
			Reply:       "Aquí tienes nuestras bebidas disponibles:",
			Suggestions: []string{"Ver todas las bebidas", "Buscar hamburguesas", "Ver mi carrito"},
			Products:    limit(filterByCategory(menu, "drinks"), maxDrinks),
		}

	case containsAny(in, "papa", "acompañamiento", "acompanamiento"):
		return Response{
			Reply:       "Estos son nuestros acompañamientos:",
			Suggestions: []string{"Ver papas especiales", "Buscar hamburguesas", "Ver mi carrito"},
			Products:    limit(filterByCategory(menu, "sides", "fries"), maxSides),
		}

	case containsAny(in, "carrito", "mi pedido", "mi orden"):
		if cartSize == 0 {
			return Response{
				Reply:       "Tu carrito está vacío. Añade productos del menú para comenzar tu pedido.",
				Suggestions: []string{"Ver hamburguesas clásicas", "Mostrar bebidas"},
			}
		}
		return Response{
			Reply:       fmt.Sprintf("Tienes %d producto(s) en tu carrito. Puedes revisar el detalle en la pantalla del pedido.", cartSize),
			Suggestions: []string{"Pedir a domicilio", "Seguir comprando"},
		}

	default:
		return welcome()
	}
}

func welcome() Response {
	return Response{
		Reply: "¡Hola! 👋 Soy tu asistente virtual de Parrilleros. Puedo ayudarte a hacer tu pedido más rápido. ¿Qué te gustaría ordenar hoy?",
		Suggestions: []string{
			"Ver hamburguesas clásicas",
			"Mostrar bebidas",
			"Quiero una hamburguesa especial",
			"Ver mi carrito",
		},
	}
}

// burgerCategories narrows burger searches when the message mentions a
// specific line; otherwise every burger category matches.
func burgerCategories(in string) []string {
	switch {
	case containsAny(in, "clasica", "clásica"):
		return []string{"classic-burgers"}
	case strings.Contains(in, "deluxe"):
		return []string{"deluxe-burgers"}
	case containsAny(in, "especial", "concurso", "master"):
		return []string{"contest-burgers"}
	default:
		return []string{"classic-burgers", "deluxe-burgers", "contest-burgers"}
	}
}

func filterByCategory(menu []models.MenuItem, categories ...string) []models.MenuItem {
	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}
	var out []models.MenuItem
	for _, item := range menu {
		if allowed[item.Category] {
			out = append(out, item)
		}
	}
	return out
}

func limit(items []models.MenuItem, n int) []models.MenuItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
