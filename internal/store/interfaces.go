package store

import (
	"context"

	"github.com/MKhiriev/securecrt-dump/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UnitSource lists and reads session containers on the target.
type UnitSource interface {
	// List returns the files under root whose name ends with suffix,
	// skipping names in exclude (exact match). Returns
	// ErrSessionsRootNotFound when root does not exist.
	List(ctx context.Context, root, suffix string, exclude ...string) ([]models.UnitRef, error)
	// Read returns the raw bytes of one listed file.
	Read(ctx context.Context, ref models.UnitRef) ([]byte, error)
}

// CredentialRepository persists recovered credentials.
type CredentialRepository interface {
	// SaveCredential stores c. Returns ErrCredentialExists when the same
	// login for the same session was stored before.
	SaveCredential(ctx context.Context, c models.Credential) error
	// ListCredentials returns every stored credential, oldest first.
	ListCredentials(ctx context.Context) ([]models.Credential, error)
}

// LootWriter stores report artifacts and returns where they were written.
type LootWriter interface {
	Write(ctx context.Context, name string, content []byte) (string, error)
}
