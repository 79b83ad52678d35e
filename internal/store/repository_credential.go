package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/securecrt-dump/internal/logger"
	"github.com/MKhiriev/securecrt-dump/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository] over the "credentials" table. It works with both
// the SQLite and PostgreSQL connectors; placeholders and constraint errors
// are resolved through the [DB] it was built with.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// SaveCredential inserts c.
//
// Error handling:
//   - unique violation on (unit_name, address, port, username) → [ErrCredentialExists].
//   - query build failure → wrapped [ErrBuildingSQLQuery].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *credentialRepository) SaveCredential(ctx context.Context, c models.Credential) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCredentialQuery(c, r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.SaveCredential").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrCredentialExists
		}
		log.Err(err).Str("func", "*credentialRepository.SaveCredential").Msg("error inserting credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ListCredentials returns every stored credential ordered by creation time.
func (r *credentialRepository) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery(r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error querying credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var result []models.Credential
	for rows.Next() {
		var (
			c      models.Credential
			status string
		)
		if err = rows.Scan(
			&c.ID,
			&c.UnitName,
			&c.Address,
			&c.Port,
			&c.ServiceName,
			&c.Protocol,
			&c.Username,
			&c.PrivateType,
			&c.PrivateData,
			&c.OriginType,
			&status,
			&c.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error scanning credential row")
			return nil, errors.Join(ErrScanningRows, err)
		}
		c.Status = models.LoginStatus(status)
		result = append(result, c)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return result, nil
}
