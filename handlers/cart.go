package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parrilleros/kiosk/models"
	"github.com/parrilleros/kiosk/order"
)

type cartResponse struct {
	OrderNumber int               `json:"order_number"`
	Items       []models.CartItem `json:"items"`
	order.Breakdown
	PaymentMethod models.PaymentMethod `json:"payment_method,omitempty"`
}

func (a *API) cartSummary() cartResponse {
	return cartResponse{
		OrderNumber:   a.engine.OrderNumber(),
		Items:         a.engine.Cart(),
		Breakdown:     a.engine.Breakdown(),
		PaymentMethod: a.engine.PaymentMethod(),
	}
}

func (a *API) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.cartSummary())
}

func (a *API) AddCartItem(w http.ResponseWriter, r *http.Request) {
	type request struct {
		MenuItemID          int    `json:"menu_item_id"`
		Quantity            int    `json:"quantity"`
		CustomizationIDs    []int  `json:"customization_ids"`
		WithFries           bool   `json:"with_fries"`
		SpecialInstructions string `json:"special_instructions"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		http.Error(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}

	item, err := a.catalog.MenuItem(req.MenuItemID)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "menu item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to query menu item", http.StatusInternalServerError)
		return
	}

	var options []models.CustomizationOption
	if len(req.CustomizationIDs) > 0 {
		options, err = a.catalog.CustomizationOptions(req.CustomizationIDs)
		if err != nil {
			http.Error(w, "failed to query customization options", http.StatusInternalServerError)
			return
		}
	}

	line := a.engine.AddToCart(item, req.Quantity, options, req.WithFries, req.SpecialInstructions)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"item": line,
		"cart": a.cartSummary(),
	})
}

func (a *API) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Quantity int `json:"quantity"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	a.engine.UpdateQuantity(mux.Vars(r)["id"], req.Quantity)
	writeJSON(w, http.StatusOK, a.cartSummary())
}

func (a *API) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	a.engine.RemoveFromCart(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, a.cartSummary())
}

func (a *API) ClearCart(w http.ResponseWriter, r *http.Request) {
	a.engine.ClearCart()
	writeJSON(w, http.StatusOK, a.cartSummary())
}

func (a *API) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	type request struct {
		PaymentMethod models.PaymentMethod `json:"payment_method"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if !req.PaymentMethod.IsValid() {
		http.Error(w, "invalid payment method", http.StatusBadRequest)
		return
	}

	a.engine.SetPaymentMethod(req.PaymentMethod)
	writeJSON(w, http.StatusOK, a.cartSummary())
}
