package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chargeplan/chargeplan/pkg/log"
	"github.com/chargeplan/chargeplan/pkg/storage"
	"github.com/chargeplan/chargeplan/pkg/types"
)

// getProjectWithMigration reads a project and, if it was stored under an
// older schema version, migrates it and writes the migrated document
// back. The migrated project is returned even if the write-back fails so
// the current request works with current semantics.
func (s *Server) getProjectWithMigration(ctx context.Context, projectID string) (types.Project, error) {
	project, version, err := s.storage.GetProject(ctx, projectID)
	if err != nil {
		return types.Project{}, err
	}

	if version < types.CurrentProjectVersion {
		log.Ctx(ctx).InfoContext(ctx, "migrating project", slog.Int("oldVersion", version), slog.Int("newVersion", types.CurrentProjectVersion))
		migrated, changed, err := types.MigrateProject(project, version)
		if err != nil {
			// Log error but return the project as is (best effort)
			log.Ctx(ctx).ErrorContext(ctx, "failed to migrate project", slog.Int("currentVersion", version), slog.Any("error", err))
		} else if changed {
			project = migrated
			if err := s.storage.SetProject(ctx, projectID, migrated, types.CurrentProjectVersion); err != nil {
				log.Ctx(ctx).ErrorContext(ctx, "failed to save migrated project", slog.Any("error", err))
			} else {
				log.Ctx(ctx).InfoContext(ctx, "saved migrated project", slog.Int("oldVersion", version), slog.Int("newVersion", types.CurrentProjectVersion))
			}
		}
	}

	return project, nil
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := s.getUser(r)

	projects, err := s.storage.ListProjects(ctx)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to list projects", slog.Any("error", err))
		writeJSONError(w, "failed to list projects", http.StatusInternalServerError)
		return
	}

	visible := make([]types.Project, 0, len(projects))
	for _, p := range projects {
		if s.mayAccessProject(user, p.ID) {
			visible = append(visible, p)
		}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, struct {
		Projects []types.Project `json:"projects"`
	}{Projects: visible})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("id")

	user := s.getUser(r)
	if !s.mayAccessProject(user, projectID) {
		log.Ctx(ctx).WarnContext(ctx, "project access denied", slog.String("userID", user.ID), slog.String("projectID", projectID))
		writeJSONError(w, "project access denied", http.StatusForbidden)
		return
	}

	project, err := s.getProjectWithMigration(ctx, projectID)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			writeJSONError(w, "project not found", http.StatusNotFound)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to get project", slog.Any("error", err))
		writeJSONError(w, "failed to get project", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, project)
}

func (s *Server) handlePutProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("id")

	user := s.getUser(r)
	userToRegister, registering := ctx.Value(userToRegisterContextKey).(types.User)

	// An authenticated user may claim a project that doesn't exist yet; the
	// save then grants them access (and registers new users). Everything
	// else requires existing access.
	grantAccess := false
	if !s.mayAccessProject(user, projectID) {
		if user.ID == "" && !registering {
			log.Ctx(ctx).WarnContext(ctx, "project access denied", slog.String("projectID", projectID))
			writeJSONError(w, "project access denied", http.StatusForbidden)
			return
		}
		if _, _, err := s.storage.GetProject(ctx, projectID); err == nil {
			log.Ctx(ctx).WarnContext(ctx, "project access denied", slog.String("userID", user.ID), slog.String("projectID", projectID))
			writeJSONError(w, "project access denied", http.StatusForbidden)
			return
		} else if !errors.Is(err, storage.ErrProjectNotFound) {
			log.Ctx(ctx).ErrorContext(ctx, "failed to check project", slog.Any("error", err))
			writeJSONError(w, "failed to save project", http.StatusInternalServerError)
			return
		}
		grantAccess = true
	}

	var project types.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode project", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	// the path owns the identity
	project.ID = projectID

	if project.Usage.DaysInMonth < 0 {
		writeJSONError(w, "days in month cannot be negative", http.StatusBadRequest)
		return
	}
	for _, e := range project.Equipment {
		if e.Quantity < 0 {
			writeJSONError(w, "equipment quantity cannot be negative", http.StatusBadRequest)
			return
		}
		if e.PowerKw < 0 {
			writeJSONError(w, "equipment power cannot be negative", http.StatusBadRequest)
			return
		}
	}

	if err := s.storage.SetProject(ctx, projectID, project, types.CurrentProjectVersion); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to save project", slog.Any("error", err))
		writeJSONError(w, "failed to save project", http.StatusInternalServerError)
		return
	}

	if grantAccess {
		if registering {
			newUser := types.User{
				ID:         userToRegister.ID,
				Email:      userToRegister.Email,
				ProjectIDs: []string{projectID},
			}
			if err := s.storage.CreateUser(ctx, newUser); err != nil {
				log.Ctx(ctx).ErrorContext(ctx, "failed to register user", slog.String("userID", newUser.ID), slog.Any("error", err))
				writeJSONError(w, "failed to save project permissions", http.StatusInternalServerError)
				return
			}
			log.Ctx(ctx).InfoContext(ctx, "registered user", slog.String("userID", newUser.ID), slog.String("projectID", projectID))
		} else {
			user.ProjectIDs = append(user.ProjectIDs, projectID)
			if err := s.storage.UpdateUser(ctx, user); err != nil {
				log.Ctx(ctx).ErrorContext(ctx, "failed to grant project access", slog.String("userID", user.ID), slog.Any("error", err))
				writeJSONError(w, "failed to save project permissions", http.StatusInternalServerError)
				return
			}
		}
	}

	log.Ctx(ctx).InfoContext(ctx, "project saved", slog.String("projectID", projectID))
	writeJSON(w, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("id")

	user := s.getUser(r)
	if !s.mayAccessProject(user, projectID) {
		log.Ctx(ctx).WarnContext(ctx, "project access denied", slog.String("userID", user.ID), slog.String("projectID", projectID))
		writeJSONError(w, "project access denied", http.StatusForbidden)
		return
	}

	if err := s.storage.DeleteProject(ctx, projectID); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to delete project", slog.Any("error", err))
		writeJSONError(w, "failed to delete project", http.StatusInternalServerError)
		return
	}

	log.Ctx(ctx).InfoContext(ctx, "project deleted", slog.String("projectID", projectID))
	w.WriteHeader(http.StatusOK)
}
