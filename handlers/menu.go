package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func (a *API) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := a.catalog.MenuItems(r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, "failed to query menu", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.catalog.Categories()
	if err != nil {
		http.Error(w, "failed to query categories", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (a *API) ListCustomizations(w http.ResponseWriter, r *http.Request) {
	options, err := a.catalog.CustomizationOptions(nil)
	if err != nil {
		http.Error(w, "failed to query customization options", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func (a *API) ListSedes(w http.ResponseWriter, r *http.Request) {
	sedes, err := a.catalog.Sedes()
	if err != nil {
		http.Error(w, "failed to query sedes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sedes)
}

func (a *API) ListSedeZones(w http.ResponseWriter, r *http.Request) {
	sedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid sede id", http.StatusBadRequest)
		return
	}
	if _, err := a.catalog.Sede(sedeID); err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "sede not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to query sede", http.StatusInternalServerError)
		return
	}
	zones, err := a.catalog.DeliveryZones(sedeID)
	if err != nil {
		http.Error(w, "failed to query delivery zones", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, zones)
}
