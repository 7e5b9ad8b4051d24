package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/parrilleros/kiosk/handlers"
	"github.com/parrilleros/kiosk/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes(api *handlers.API) *Server {
	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	apiRoutes := router.PathPrefix("/api").Subrouter()

	apiRoutes.HandleFunc("/menu", api.ListMenu).Methods("GET")
	apiRoutes.HandleFunc("/menu/categories", api.ListCategories).Methods("GET")
	apiRoutes.HandleFunc("/menu/customizations", api.ListCustomizations).Methods("GET")
	apiRoutes.HandleFunc("/sedes", api.ListSedes).Methods("GET")
	apiRoutes.HandleFunc("/sedes/{id}/zones", api.ListSedeZones).Methods("GET")

	apiRoutes.HandleFunc("/cart", api.GetCart).Methods("GET")
	apiRoutes.HandleFunc("/cart", api.ClearCart).Methods("DELETE")
	apiRoutes.HandleFunc("/cart/items", api.AddCartItem).Methods("POST")
	apiRoutes.HandleFunc("/cart/items/{id}", api.UpdateCartItem).Methods("PATCH")
	apiRoutes.HandleFunc("/cart/items/{id}", api.RemoveCartItem).Methods("DELETE")
	apiRoutes.HandleFunc("/cart/payment-method", api.SetPaymentMethod).Methods("PUT")

	apiRoutes.HandleFunc("/checkout", api.Checkout).Methods("POST")
	apiRoutes.HandleFunc("/orders/current/ticket", api.CurrentTicket).Methods("GET")
	apiRoutes.HandleFunc("/chat", api.Chat).Methods("POST")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
