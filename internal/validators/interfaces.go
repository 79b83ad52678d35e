// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators decides which decoded sessions are fit to be stored.
//
// A Validator checks a value and can be scoped to a subset of named fields,
// so callers can reuse one implementation for slightly different rules
// (for example, a record shown in the report versus one persisted as a
// credential).
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
