package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/securecrt-dump/internal/app"
	"github.com/MKhiriev/securecrt-dump/internal/config"
	"github.com/MKhiriev/securecrt-dump/internal/crypto"
	"github.com/MKhiriev/securecrt-dump/internal/extract"
	"github.com/MKhiriev/securecrt-dump/internal/logger"
	"github.com/MKhiriev/securecrt-dump/internal/report"
	"github.com/MKhiriev/securecrt-dump/internal/store"
	"github.com/MKhiriev/securecrt-dump/internal/textenc"
	"github.com/MKhiriev/securecrt-dump/internal/utils"
	"github.com/MKhiriev/securecrt-dump/internal/validators"
	"github.com/MKhiriev/securecrt-dump/internal/workers"
	"github.com/MKhiriev/securecrt-dump/models"
)

// Session files that never describe a session: folder metadata and the
// template every new session is copied from.
const (
	folderDataUnit     = "__FolderData__.ini"
	defaultSessionUnit = "Default.ini"
)

// ExcludedUnits lists the file names skipped during enumeration.
var ExcludedUnits = []string{folderDataUnit, defaultSessionUnit}

type sessionService struct {
	units       store.UnitSource
	credentials store.CredentialRepository
	loot        store.LootWriter

	cipher    crypto.SessionCipher
	validator validators.Validator
	ids       IDGenerator

	passphrase  string
	suffix      string
	concurrency int

	out    io.Writer
	now    func() time.Time
	logger *logger.Logger
}

// NewSessionService wires the service to the run's storages. The rendered
// table is printed to out. Credentials and loot are optional in storages.
func NewSessionService(storages *store.Storages, cfg config.StructuredConfig, out io.Writer, logger *logger.Logger) SessionService {
	return &sessionService{
		units:       storages.Units,
		credentials: storages.Credentials,
		loot:        storages.Loot,
		cipher:      crypto.NewSessionCipher(),
		validator:   validators.NewSessionValidator(),
		ids:         utils.NewUUIDGenerator(),
		passphrase:  cfg.App.Passphrase,
		suffix:      cfg.Source.Suffix,
		concurrency: cfg.Workers.Concurrency,
		out:         out,
		now:         time.Now,
		logger:      logger.GetChildLogger("service"),
	}
}

func (s *sessionService) Run(ctx context.Context, root string) error {
	if root == "" {
		s.logger.Error().Msg(app.MsgConfigRootNotFound)
		return ErrConfigRootNotFound
	}

	records, err := s.Enumerate(ctx, root)
	if errors.Is(err, store.ErrSessionsRootNotFound) {
		s.logger.Error().Str("root", root).Msg(app.MsgConfigRootNotFound)
		return fmt.Errorf("%w: %s", ErrConfigRootNotFound, root)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		s.logger.Info().Str("root", root).Msg(app.MsgNoSessions)
		return nil
	}

	if err = s.Store(ctx, records); err != nil {
		return err
	}

	table := report.Render(records)
	if _, err = io.WriteString(s.out, table); err != nil {
		return fmt.Errorf("error printing session table: %w", err)
	}

	if s.loot == nil {
		return nil
	}
	path, err := s.loot.Write(ctx, report.LootName, []byte(table))
	if err != nil {
		return fmt.Errorf("error storing loot: %w", err)
	}
	s.logger.Info().Str("path", path).Msg(app.MsgLootStored)

	return nil
}

func (s *sessionService) ListStored(ctx context.Context) error {
	if s.credentials == nil {
		return ErrNoCredentialStore
	}

	credentials, err := s.credentials.ListCredentials(ctx)
	if err != nil {
		return fmt.Errorf("error listing stored credentials: %w", err)
	}

	records := make([]models.SessionRecord, 0, len(credentials))
	for _, c := range credentials {
		records = append(records, c.Record())
	}
	s.logger.Debug().Int("count", len(records)).Msg("stored credentials loaded")

	if _, err = io.WriteString(s.out, report.Render(records)); err != nil {
		return fmt.Errorf("error printing stored credentials: %w", err)
	}

	return nil
}

type decodeResult struct {
	record models.SessionRecord
	ok     bool
}

func (s *sessionService) Enumerate(ctx context.Context, root string) ([]models.SessionRecord, error) {
	refs, err := s.units.List(ctx, root, s.suffix, ExcludedUnits...)
	if err != nil {
		return nil, fmt.Errorf("error listing session files: %w", err)
	}
	s.logger.Debug().Int("count", len(refs)).Msg("session files found")

	results, err := workers.Map(ctx, s.concurrency, refs, func(ctx context.Context, ref models.UnitRef) (decodeResult, error) {
		data, err := s.units.Read(ctx, ref)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return decodeResult{}, ctxErr
			}
			s.logger.Warn().Err(err).Str(logger.UnitFieldName, ref.Name).Msg("skipping unreadable session file")
			return decodeResult{}, nil
		}

		record, ok := s.DecodeUnit(ctx, models.ConfigUnit{Name: ref.Name, Data: data})
		return decodeResult{record: record, ok: ok}, nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]models.SessionRecord, 0, len(results))
	for _, r := range results {
		if r.ok {
			records = append(records, r.record)
		}
	}

	return records, nil
}

func (s *sessionService) DecodeUnit(ctx context.Context, unit models.ConfigUnit) (models.SessionRecord, bool) {
	_, log := s.logger.WithUnit(ctx, unit.Name)

	if unit.IsEmpty() {
		log.Debug().Msg("empty session file")
		return models.SessionRecord{}, false
	}

	fields := extract.Extract(textenc.Normalize(unit.Data))
	if !fields.HasCiphertext() {
		log.Debug().Msg("session has no stored password")
	}

	var passwordV1, passwordV2 *string
	if fields.PasswordV1 != nil {
		password, err := s.cipher.DecryptV1(*fields.PasswordV1)
		switch {
		case err == nil:
			passwordV1 = &password
		case errors.Is(err, crypto.ErrNoTerminator):
			log.Warn().Msg(app.MsgV1DecodeFailed)
		default:
			log.Warn().Err(err).Str("field", extract.FieldPasswordV1).Msg("could not decrypt password")
		}
	}

	if fields.PasswordV2 != nil {
		password, err := s.cipher.DecryptV2(*fields.PasswordV2, s.passphrase)
		switch {
		case err == nil:
			passwordV2 = &password
		case errors.Is(err, crypto.ErrPassphraseMismatch):
			log.Warn().Msg(app.MsgV2PassphraseSet)
			log.Warn().Msg(app.MsgV2ProvidePassphrase)
		default:
			log.Warn().Err(err).Str("field", extract.FieldPasswordV2).Msg("could not decrypt password")
		}
	}

	return Assemble(unit.Name, fields, passwordV1, passwordV2), true
}

func (s *sessionService) Store(ctx context.Context, records []models.SessionRecord) error {
	if s.credentials == nil {
		s.logger.Debug().Msg("credential storage disabled")
		return nil
	}

	for _, record := range records {
		ctx, log := s.logger.WithUnit(ctx, record.UnitName)

		if err := s.validator.Validate(ctx, record); err != nil {
			log.Debug().Err(err).Msg("not storing session")
			continue
		}

		credential := models.NewCredential(record)
		credential.ID = s.ids.Generate()
		credential.CreatedAt = s.now().UTC()

		if err := s.validator.Validate(ctx, credential); err != nil {
			return fmt.Errorf("error validating credential for %s: %w", record.UnitName, err)
		}

		err := s.credentials.SaveCredential(ctx, credential)
		switch {
		case err == nil:
			log.Debug().Str("address", credential.Address).Msg("credential stored")
		case errors.Is(err, store.ErrCredentialExists):
			log.Info().Str("address", credential.Address).Msg("credential already stored, skipping")
		default:
			return fmt.Errorf("error storing credential for %s: %w", record.UnitName, err)
		}
	}

	return nil
}
