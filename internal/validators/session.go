package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/securecrt-dump/models"
)

// Field names accepted by [SessionValidator].
const (
	// FieldUnitName targets the session file name.
	FieldUnitName = "unit_name"

	// FieldHostname targets the hostname (address for credentials).
	FieldHostname = "hostname"

	// FieldPort targets the TCP port; 0 means unknown and is allowed.
	FieldPort = "port"

	// FieldLogin requires at least one of username or password.
	FieldLogin = "login"

	// FieldID targets the credential identifier.
	FieldID = "id"

	// FieldService targets the fixed service attributes of a credential.
	FieldService = "service"

	// FieldCreatedAt targets the credential creation time.
	FieldCreatedAt = "created_at"
)

const maxPort = 65535

// SessionValidator validates [models.SessionRecord] and [models.Credential]
// values before they are persisted.
type SessionValidator struct {
}

func NewSessionValidator() Validator {
	return &SessionValidator{}
}

func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SessionRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.SessionRecord:
		return v.validateRecord(ctx, *value, fields...)

	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SessionValidator) validateRecord(_ context.Context, r models.SessionRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUnitName, FieldHostname, FieldPort, FieldLogin}
	}

	for _, f := range fields {
		switch f {
		case FieldUnitName:
			if r.UnitName == "" {
				return ErrEmptyUnitName
			}
		case FieldHostname:
			if strings.TrimSpace(r.HostnameOrEmpty()) == "" {
				return ErrEmptyHostname
			}
		case FieldPort:
			if !isValidPort(r.Port) {
				return ErrInvalidPort
			}
		case FieldLogin:
			if r.Username == nil && r.Password == nil {
				return ErrEmptyCredential
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SessionValidator) validateCredential(_ context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUnitName, FieldHostname, FieldPort, FieldService, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if c.ID == "" {
				return ErrInvalidID
			}
		case FieldUnitName:
			if c.UnitName == "" {
				return ErrEmptyUnitName
			}
		case FieldHostname:
			if strings.TrimSpace(c.Address) == "" {
				return ErrEmptyHostname
			}
		case FieldPort:
			if !isValidPort(c.Port) {
				return ErrInvalidPort
			}
		case FieldLogin:
			if c.Username == "" && c.PrivateData == "" {
				return ErrEmptyCredential
			}
		case FieldService:
			if c.ServiceName == "" || c.Protocol == "" || c.PrivateType == "" || c.OriginType == "" {
				return ErrInvalidService
			}
		case FieldCreatedAt:
			if c.CreatedAt.IsZero() {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidPort(p int) bool {
	return p >= 0 && p <= maxPort
}
