// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"strings"
)

// Type markers used by SecureCRT in front of a quoted key.
const (
	markerString = "S"
	markerDWord  = "D"
)

// Terminator decides how much of the text following a key belongs to the
// value. It returns the value length, or -1 when the text at this position
// does not hold an acceptable value.
type Terminator func(rest string) int

// FieldRule locates a single field inside normalized session text.
type FieldRule interface {
	// Name is the field the rule extracts, e.g. "hostname".
	Name() string
	// Find returns the value of the first acceptable occurrence.
	Find(text string) (string, bool)
}

// keyValueRule matches lines of the form
//
//	<marker>:"<key>"=<valuePrefix><value>
//
// Matching is case-sensitive and the first occurrence whose value is
// accepted by the terminator wins.
type keyValueRule struct {
	name        string
	marker      string
	key         string
	valuePrefix string
	terminator  Terminator
}

// NewKeyValueRule builds a [FieldRule] for a typed SecureCRT key.
func NewKeyValueRule(name, marker, key, valuePrefix string, terminator Terminator) FieldRule {
	return &keyValueRule{
		name:        name,
		marker:      marker,
		key:         key,
		valuePrefix: valuePrefix,
		terminator:  terminator,
	}
}

func (r *keyValueRule) Name() string {
	return r.name
}

func (r *keyValueRule) anchor() string {
	return r.marker + `:"` + r.key + `"=` + r.valuePrefix
}

func (r *keyValueRule) Find(text string) (string, bool) {
	anchor := r.anchor()

	for offset := 0; offset <= len(text); {
		i := strings.Index(text[offset:], anchor)
		if i < 0 {
			return "", false
		}

		start := offset + i + len(anchor)
		if n := r.terminator(text[start:]); n >= 0 {
			return text[start : start+n], true
		}
		offset += i + 1
	}

	return "", false
}

// UntilLineEnd accepts everything up to the first '\r' or '\n', possibly
// nothing.
func UntilLineEnd(rest string) int {
	if i := strings.IndexAny(rest, "\r\n"); i >= 0 {
		return i
	}
	return len(rest)
}

// LowerHexRun accepts a non-empty run of [0-9a-f].
func LowerHexRun(rest string) int {
	n := 0
	for n < len(rest) && isLowerHex(rest[n]) {
		n++
	}
	if n == 0 {
		return -1
	}
	return n
}

// FixedLowerHex accepts exactly n characters of [0-9a-f]. Whatever follows
// them is not inspected.
func FixedLowerHex(n int) Terminator {
	return func(rest string) int {
		if len(rest) < n {
			return -1
		}
		for i := 0; i < n; i++ {
			if !isLowerHex(rest[i]) {
				return -1
			}
		}
		return n
	}
}

func isLowerHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}
