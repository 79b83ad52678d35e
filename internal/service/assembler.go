// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"

	"github.com/MKhiriev/securecrt-dump/models"
)

// Assemble builds the record of one unit from its extracted fields and the
// decrypted passwords. A non-empty password is kept over an empty one, and
// v1 takes precedence when both are non-empty. A nil password means none
// could be recovered. The port is 0 when absent or not a number.
func Assemble(unitName string, fields models.ExtractedFields, passwordV1, passwordV2 *string) models.SessionRecord {
	record := models.SessionRecord{
		UnitName: unitName,
		Hostname: fields.Hostname,
		Username: fields.Username,
		Password: pickPassword(passwordV1, passwordV2),
	}

	if fields.Port != nil {
		if port, err := strconv.Atoi(*fields.Port); err == nil {
			record.Port = port
		}
	}

	return record
}

func pickPassword(v1, v2 *string) *string {
	switch {
	case v1 != nil && *v1 != "":
		return v1
	case v2 != nil && *v2 != "":
		return v2
	case v1 != nil:
		return v1
	default:
		return v2
	}
}
