// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/securecrt-dump/models"
)

const credentialsTable = "credentials"

var credentialColumns = []string{
	"id",
	"unit_name",
	"address",
	"port",
	"service_name",
	"protocol",
	"username",
	"private_type",
	"private_data",
	"origin_type",
	"status",
	"created_at",
}

func buildInsertCredentialQuery(c models.Credential, format sq.PlaceholderFormat) (string, []any, error) {
	return sq.Insert(credentialsTable).
		Columns(credentialColumns...).
		Values(
			c.ID,
			c.UnitName,
			c.Address,
			c.Port,
			c.ServiceName,
			c.Protocol,
			c.Username,
			c.PrivateType,
			c.PrivateData,
			c.OriginType,
			string(c.Status),
			c.CreatedAt,
		).
		PlaceholderFormat(format).
		ToSql()
}

func buildSelectCredentialsQuery(format sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select(credentialColumns...).
		From(credentialsTable).
		OrderBy("created_at", "id").
		PlaceholderFormat(format).
		ToSql()
}
