package storage

import (
	"context"
	"errors"

	"github.com/chargeplan/chargeplan/pkg/types"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Database defines the interface for persisting projects and users.
type Database interface {
	// Projects
	// GetProject returns the stored project and the schema version it was
	// written with, so callers can migrate stale documents.
	GetProject(ctx context.Context, projectID string) (types.Project, int, error)
	ListProjects(ctx context.Context) ([]types.Project, error)
	SetProject(ctx context.Context, projectID string, project types.Project, version int) error
	DeleteProject(ctx context.Context, projectID string) error

	// Users
	GetUser(ctx context.Context, userID string) (types.User, error)
	CreateUser(ctx context.Context, user types.User) error
	UpdateUser(ctx context.Context, user types.User) error

	// Lifecycle
	Close() error
}
