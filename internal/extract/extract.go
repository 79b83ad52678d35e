// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package extract locates session fields inside normalized SecureCRT
// session text.
//
// A session file is a list of typed key/value lines:
//
//	S:"Hostname"=bastion.example.com
//	D:"[SSH2] Port"=00000016
//	S:"Username"=alice
//	S:"Password"=u4f1c...
//	S:"Password V2"=02:9ab3...
//
// Each field is described by a [FieldRule]; [Extract] runs the whole
// table over the text. A missing field is not an error.
package extract

import (
	"strconv"

	"github.com/MKhiriev/securecrt-dump/models"
)

// Field names reported by the rule table.
const (
	FieldHostname   = "hostname"
	FieldPasswordV1 = "password"
	FieldPasswordV2 = "password_v2"
	FieldPort       = "port"
	FieldUsername   = "username"
)

// Rules is the fixed rule table used by [Extract].
var Rules = []FieldRule{
	NewKeyValueRule(FieldHostname, markerString, "Hostname", "", UntilLineEnd),
	NewKeyValueRule(FieldPasswordV1, markerString, "Password", "u", LowerHexRun),
	NewKeyValueRule(FieldPasswordV2, markerString, "Password V2", "02:", LowerHexRun),
	NewKeyValueRule(FieldPort, markerDWord, "[SSH2] Port", "", FixedLowerHex(8)),
	NewKeyValueRule(FieldUsername, markerString, "Username", "", UntilLineEnd),
}

// Extract applies [Rules] to text. Fields are located independently of each
// other, so line order does not matter.
func Extract(text string) models.ExtractedFields {
	var fields models.ExtractedFields

	for _, rule := range Rules {
		value, ok := rule.Find(text)
		if !ok {
			continue
		}

		switch rule.Name() {
		case FieldHostname:
			fields.Hostname = &value
		case FieldUsername:
			fields.Username = &value
		case FieldPort:
			if port, ok := hexPortToDecimal(value); ok {
				fields.Port = &port
			}
		case FieldPasswordV1:
			if len(value)%2 == 0 {
				fields.PasswordV1 = &value
			}
		case FieldPasswordV2:
			if len(value)%2 == 0 {
				fields.PasswordV2 = &value
			}
		}
	}

	return fields
}

// hexPortToDecimal converts the 8-digit DWORD value to its decimal string.
func hexPortToDecimal(value string) (string, bool) {
	n, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return "", false
	}
	return strconv.FormatUint(n, 10), true
}
