package server

import (
	"net/http"
	"strconv"

	"github.com/chargeplan/chargeplan/pkg/catalog"
	"github.com/chargeplan/chargeplan/pkg/rates"
	"github.com/chargeplan/chargeplan/pkg/types"
)

func (s *Server) handleListChargers(w http.ResponseWriter, r *http.Request) {
	chargers := catalog.Chargers()

	if level := r.URL.Query().Get("level"); level != "" {
		chargers = catalog.ChargersForLevel(types.ChargerLevel(level))
	}

	writeJSON(w, chargers)
}

func (s *Server) handleListServiceClasses(w http.ResponseWriter, r *http.Request) {
	classes := catalog.ServiceClasses()

	if raw := r.URL.Query().Get("demandKw"); raw != "" {
		demandKw, err := strconv.ParseFloat(raw, 64)
		if err != nil || demandKw < 0 {
			writeJSONError(w, "invalid demandKw", http.StatusBadRequest)
			return
		}
		classes = catalog.ServiceClassesForDemand(demandKw)
	}

	writeJSON(w, classes)
}

func (s *Server) handleListUtilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, rates.Utilities())
}
