package storage

import (
	"context"
	"fmt"

	"github.com/levenlabs/go-lflag"
)

// Configured returns the project database selected by flags. The chosen
// provider is validated and initialized once flags are parsed; a bad
// configuration panics since the service can't run without storage.
func Configured() Database {
	provider := lflag.String("storage-provider", "firestore", "Project storage backend (available: firestore)")

	var db struct{ Database }

	fs := configuredFirestore()

	lflag.Do(func() {
		switch *provider {
		case "firestore":
			if err := fs.Validate(); err != nil {
				panic(fmt.Sprintf("invalid firestore storage config: %v", err))
			}
			if err := fs.Init(context.Background()); err != nil {
				panic(fmt.Sprintf("firestore storage init failed: %v", err))
			}
			db.Database = fs
		default:
			panic(fmt.Sprintf("unknown storage provider: %q", *provider))
		}
	})

	return &db
}
