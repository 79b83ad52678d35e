// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "path/filepath"

// UnitRef is a single entry returned by a session directory search: the
// file name of a session container and the directory that holds it.
type UnitRef struct {
	// Name is the base file name, e.g. "prod-bastion.ini".
	Name string
	// Path is the directory holding the file.
	Path string
}

// FullPath joins Path and Name.
func (r UnitRef) FullPath() string {
	return filepath.Join(r.Path, r.Name)
}

// ConfigUnit is the raw content of one session container. It is read once,
// handed to extraction and then discarded.
type ConfigUnit struct {
	// Name identifies the unit in reports and credentials (the file name).
	Name string
	// Data holds the raw, not yet normalized, file bytes.
	Data []byte
}

// IsEmpty reports whether the unit carries no bytes to decode.
func (u ConfigUnit) IsEmpty() bool {
	return len(u.Data) == 0
}
