package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chargeplan/chargeplan/pkg/engine"
	"github.com/chargeplan/chargeplan/pkg/log"
	"github.com/chargeplan/chargeplan/pkg/rates"
	"github.com/chargeplan/chargeplan/pkg/storage"
	"github.com/chargeplan/chargeplan/pkg/types"
)

type calculateRequest struct {
	// Project runs the calculation on an inline, unsaved project.
	Project *types.Project `json:"project,omitempty"`
	// ProjectID runs it on a stored project instead.
	ProjectID string `json:"projectID,omitempty"`
}

type calculateResponse struct {
	Result *types.CalculationResult `json:"result"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode calculate request", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var project types.Project
	switch {
	case req.Project != nil:
		project = *req.Project
	case req.ProjectID != "":
		user := s.getUser(r)
		if !s.mayAccessProject(user, req.ProjectID) {
			log.Ctx(ctx).WarnContext(ctx, "project access denied", slog.String("userID", user.ID), slog.String("projectID", req.ProjectID))
			writeJSONError(w, "project access denied", http.StatusForbidden)
			return
		}
		var err error
		project, err = s.getProjectWithMigration(ctx, req.ProjectID)
		if err != nil {
			if errors.Is(err, storage.ErrProjectNotFound) {
				writeJSONError(w, "project not found", http.StatusNotFound)
				return
			}
			log.Ctx(ctx).ErrorContext(ctx, "failed to get project", slog.Any("error", err))
			writeJSONError(w, "failed to get project", http.StatusInternalServerError)
			return
		}
	default:
		writeJSONError(w, "project or projectID required", http.StatusBadRequest)
		return
	}

	result, err := engine.Compute(project)
	if err != nil {
		if errors.Is(err, rates.ErrUnknownUtility) || errors.Is(err, rates.ErrUnknownServiceClass) {
			writeJSONError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "calculation failed", slog.Any("error", err))
		writeJSONError(w, "calculation failed", http.StatusInternalServerError)
		return
	}

	// result is nil for a project with no equipment; that still returns
	// 200 so clients can render an empty estimate
	writeJSON(w, calculateResponse{Result: result})
}

type allocateRequest struct {
	PortsInUse   float64 `json:"portsInUse"`
	HoursPerPort float64 `json:"hoursPerPort"`
}

func (s *Server) handleAllocate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req allocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode allocate request", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, engine.AllocateTOU(req.PortsInUse, req.HoursPerPort))
}
