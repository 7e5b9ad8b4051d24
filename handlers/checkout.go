package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/parrilleros/kiosk/middlewares"
	"github.com/parrilleros/kiosk/models"
	"github.com/parrilleros/kiosk/utils"
)

type checkoutRequest struct {
	Name            string               `json:"name"`
	Address         string               `json:"address"`
	Neighborhood    string               `json:"neighborhood"`
	Phone           string               `json:"phone"`
	Cedula          string               `json:"cedula"`
	Email           string               `json:"email"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	SedeID          int                  `json:"sede_id"`
	RequiresInvoice bool                 `json:"requires_invoice"`
}

func (req checkoutRequest) validate(cartSize int) error {
	var verr *multierror.Error
	if req.Name == "" {
		verr = multierror.Append(verr, errors.New("name is required"))
	}
	if req.Address == "" {
		verr = multierror.Append(verr, errors.New("address is required"))
	}
	if req.Neighborhood == "" {
		verr = multierror.Append(verr, errors.New("neighborhood is required"))
	}
	if req.Phone == "" {
		verr = multierror.Append(verr, errors.New("phone is required"))
	}
	if req.Cedula == "" {
		verr = multierror.Append(verr, errors.New("cedula is required"))
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		verr = multierror.Append(verr, errors.New("a valid email is required"))
	}
	if !req.PaymentMethod.IsValid() {
		verr = multierror.Append(verr, errors.New("payment method must be one of: Efectivo, Bancolombia, Nequi, Daviplata"))
	}
	if cartSize == 0 {
		verr = multierror.Append(verr, errors.New("cart is empty"))
	}
	return verr.ErrorOrNil()
}

// Checkout runs the delivery flow: validates the form, resolves the
// delivery fee for the neighborhood, completes the order and archives it
// together with the customer and, when requested, the invoice. The
// submission delay is simulated; once started the flow always resolves
// to success. The cart is NOT cleared here - the kiosk clears it when
// the customer taps finish on the confirmation screen.
func (a *API) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := req.validate(len(a.engine.Cart())); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sede, err := a.catalog.Sede(req.SedeID)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "sede not found", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to query sede", http.StatusInternalServerError)
		return
	}

	fee, err := a.catalog.DeliveryFee(req.SedeID, req.Neighborhood)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "delivery is not available for that neighborhood", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to query delivery fee", http.StatusInternalServerError)
		return
	}

	a.engine.SetPaymentMethod(req.PaymentMethod)
	a.engine.SetDeliveryFee(fee)

	ord := a.engine.CompleteOrder()
	if ord == nil {
		http.Error(w, "cart is empty", http.StatusBadRequest)
		return
	}

	customer := models.Customer{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Cedula:       req.Cedula,
		Address:      req.Address,
		Neighborhood: req.Neighborhood,
	}

	invoice, err := a.orders.SaveCompletedOrder(ord, customer, sede.ID, models.OrderDelivery, req.RequiresInvoice)
	if err != nil {
		logrus.Printf("failed to archive order %s (request %s), error: %v", ord.ID, middlewares.RequestID(r), err)
		http.Error(w, "failed to save order", http.StatusInternalServerError)
		return
	}

	// Simulated dispatch hand-off; fixed delay, always succeeds.
	time.Sleep(a.checkoutDelay)

	message := utils.WhatsAppMessage(ord, customer)
	resp := map[string]interface{}{
		"message":            "¡Pedido Enviado Exitosamente! Te contactaremos pronto",
		"order":              ord,
		"ticket":             utils.Ticket(ord),
		"whatsapp_link":      utils.WhatsAppLink(sede.WhatsApp, message),
		"estimated_delivery": "45-60 minutos",
	}
	if invoice != nil {
		resp["invoice"] = invoice
		resp["invoice_text"] = utils.InvoiceText(ord, *invoice, customer, sede)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CurrentTicket renders the printable ticket for the last completed
// order.
func (a *API) CurrentTicket(w http.ResponseWriter, r *http.Request) {
	ord := a.engine.CurrentOrder()
	if ord == nil {
		http.Error(w, "no completed order", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(utils.Ticket(ord)))
}
