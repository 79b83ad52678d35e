// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExtractedFields holds the values located inside one normalized session
// container. A nil pointer means the field was not present.
//
// PasswordV1 and PasswordV2 are lowercase hex strings of even length when
// set. Usually at most one of them is present.
type ExtractedFields struct {
	Hostname   *string
	Port       *string
	Username   *string
	PasswordV1 *string
	PasswordV2 *string
}

// HasCiphertext reports whether any password ciphertext was found.
func (f ExtractedFields) HasCiphertext() bool {
	return f.PasswordV1 != nil || f.PasswordV2 != nil
}

// SessionRecord is the normalized result for one session container.
//
// Hostname, Username and Password keep "unknown" distinct from an empty
// value: nil means the field was absent (or, for Password, could not be
// decrypted), while a pointer to "" is a present but empty value.
type SessionRecord struct {
	UnitName string
	Hostname *string
	Port     int
	Username *string
	Password *string
}

// HostnameOrEmpty returns the hostname or "" when unknown.
func (r SessionRecord) HostnameOrEmpty() string {
	return deref(r.Hostname)
}

// UsernameOrEmpty returns the username or "" when unknown.
func (r SessionRecord) UsernameOrEmpty() string {
	return deref(r.Username)
}

// PasswordOrEmpty returns the password or "" when it was not recovered.
func (r SessionRecord) PasswordOrEmpty() string {
	return deref(r.Password)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
