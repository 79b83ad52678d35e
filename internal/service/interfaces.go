package service

import (
	"context"

	"github.com/MKhiriev/securecrt-dump/models"
)

// SessionService recovers saved SecureCRT sessions from a sessions
// directory and hands them to the configured outputs.
type SessionService interface {
	// DecodeUnit turns one session file into a record. It reports false
	// when the unit carries nothing to decode.
	DecodeUnit(ctx context.Context, unit models.ConfigUnit) (models.SessionRecord, bool)

	// Enumerate decodes every session file under root, in listing order.
	Enumerate(ctx context.Context, root string) ([]models.SessionRecord, error)

	// Store persists records as credentials. Duplicates are skipped.
	Store(ctx context.Context, records []models.SessionRecord) error

	// Run is the whole flow: enumerate, store, render and save the loot.
	Run(ctx context.Context, root string) error

	// ListStored prints the credentials kept in the database.
	ListStored(ctx context.Context) error
}

// IDGenerator hands out credential identifiers.
type IDGenerator interface {
	Generate() string
}
