package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/chargeplan/chargeplan/pkg/log"
	"github.com/chargeplan/chargeplan/pkg/types"
	"github.com/levenlabs/go-lflag"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreProvider implements the Database interface using Google Cloud
// Firestore. Projects and users are stored as JSON strings inside their
// documents so the Go types own the schema, not Firestore's field mapping.
type FirestoreProvider struct {
	client    *firestore.Client
	projectID string
	database  string
}

// configuredFirestore sets up the Firestore provider.
// It registers flags for configuration.
func configuredFirestore() *FirestoreProvider {
	projectID := lflag.String("firestore-project-id", "", "Google Cloud Project ID for Firestore")
	database := lflag.String("firestore-database", "", "Google Cloud Firestore Database")
	emulator := lflag.String("firestore-emulator", "", "Use Firestore emulator")

	f := &FirestoreProvider{}

	lflag.Do(func() {
		f.projectID = *projectID
		f.database = *database

		// set this because that's how firestore client expects it
		if *emulator != "" {
			os.Setenv("FIRESTORE_EMULATOR_HOST", *emulator)
		}
	})

	return f
}

// Validate checks if the provider is properly configured.
func (f *FirestoreProvider) Validate() error {
	// Project ID verification could be here, but we allow empty if inferred.
	return nil
}

// Init initializes the Firestore client.
// This must be called before using the provider methods.
func (f *FirestoreProvider) Init(ctx context.Context) error {
	projectID := f.projectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	database := f.database
	if database == "" {
		database = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, database)
	if err != nil {
		return fmt.Errorf("failed to create firestore client (project=%s, database=%s): %w", projectID, database, err)
	}
	f.client = client
	return nil
}

// Close closes the Firestore client connection.
func (f *FirestoreProvider) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func decodeProjectDoc(ctx context.Context, doc *firestore.DocumentSnapshot) (types.Project, int, error) {
	// version defaults to 0 for documents written before it existed
	var version int
	if v, err := doc.DataAt("version"); err == nil {
		if vInt, ok := v.(int64); ok {
			version = int(vInt)
		}
	}

	val, err := doc.DataAt("json")
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "project doc missing json", slog.String("projectID", doc.Ref.ID))
		return types.Project{}, 0, fmt.Errorf("project document %s missing 'json' field: %w", doc.Ref.ID, err)
	}
	jsonStr, ok := val.(string)
	if !ok {
		log.Ctx(ctx).WarnContext(ctx, "project doc json not string", slog.String("projectID", doc.Ref.ID))
		return types.Project{}, 0, fmt.Errorf("project document %s 'json' field is not a string", doc.Ref.ID)
	}

	var p types.Project
	if err := json.Unmarshal([]byte(jsonStr), &p); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to unmarshal project json", slog.String("projectID", doc.Ref.ID), slog.Any("err", err))
		return types.Project{}, 0, fmt.Errorf("failed to unmarshal project json (id=%s): %w", doc.Ref.ID, err)
	}
	p.ID = doc.Ref.ID
	return p, version, nil
}

// GetProject retrieves a project from the "projects" collection along with
// the schema version it was stored under.
func (f *FirestoreProvider) GetProject(ctx context.Context, projectID string) (types.Project, int, error) {
	if projectID == "" {
		return types.Project{}, 0, fmt.Errorf("projectID cannot be empty")
	}
	doc, err := f.client.Collection("projects").Doc(projectID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Project{}, 0, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
		}
		return types.Project{}, 0, fmt.Errorf("failed to fetch project %s: %w", projectID, err)
	}
	return decodeProjectDoc(ctx, doc)
}

// ListProjects retrieves all projects from the "projects" collection.
// Malformed documents are skipped so one bad write can't hide the rest.
func (f *FirestoreProvider) ListProjects(ctx context.Context) ([]types.Project, error) {
	iter := f.client.Collection("projects").Documents(ctx)
	defer iter.Stop()

	var projects []types.Project
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating projects: %w", err)
		}

		p, _, err := decodeProjectDoc(ctx, doc)
		if err != nil {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// SetProject saves a project to the "projects" collection as a JSON string
// tagged with the schema version it was written at.
func (f *FirestoreProvider) SetProject(ctx context.Context, projectID string, project types.Project, version int) error {
	if projectID == "" {
		return fmt.Errorf("projectID cannot be empty")
	}
	jsonBytes, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project %s: %w", projectID, err)
	}

	_, err = f.client.Collection("projects").Doc(projectID).Set(ctx, map[string]interface{}{
		"json":    string(jsonBytes),
		"version": version,
	})
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", projectID, err)
	}
	return nil
}

// DeleteProject removes a project document. Deleting a project that does
// not exist is not an error.
func (f *FirestoreProvider) DeleteProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return fmt.Errorf("projectID cannot be empty")
	}
	_, err := f.client.Collection("projects").Doc(projectID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	return nil
}

// GetUser retrieves a user from the "users" collection.
func (f *FirestoreProvider) GetUser(ctx context.Context, userID string) (types.User, error) {
	doc, err := f.client.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return types.User{}, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	val, err := doc.DataAt("json")
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "user doc missing json", slog.String("userID", userID))
		return types.User{}, fmt.Errorf("user %s missing json: %w", userID, err)
	}
	jsonStr, ok := val.(string)
	if !ok {
		log.Ctx(ctx).WarnContext(ctx, "user doc json not string", slog.String("userID", userID))
		return types.User{}, fmt.Errorf("user %s json not string", userID)
	}

	var user types.User
	if err := json.Unmarshal([]byte(jsonStr), &user); err != nil {
		return types.User{}, fmt.Errorf("failed to unmarshal user %s: %w", userID, err)
	}
	user.ID = userID
	return user, nil
}

// CreateUser creates a new user document in the "users" collection.
func (f *FirestoreProvider) CreateUser(ctx context.Context, user types.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user %s: %w", user.ID, err)
	}
	_, err = f.client.Collection("users").Doc(user.ID).Create(ctx, map[string]interface{}{
		"json": string(userJSON),
	})
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}
	return nil
}

// UpdateUser updates an existing user document in the "users" collection.
func (f *FirestoreProvider) UpdateUser(ctx context.Context, user types.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user %s: %w", user.ID, err)
	}
	_, err = f.client.Collection("users").Doc(user.ID).Set(ctx, map[string]interface{}{
		"json": string(userJSON),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return nil
}
