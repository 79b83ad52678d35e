// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package textenc turns the raw bytes of a session container into UTF-8
// text suitable for field extraction.
//
// SecureCRT writes session files either as UTF-8 or as UTF-16 with a byte
// order mark, depending on version and platform. [Normalize] sniffs the
// leading bytes and decodes accordingly. It never fails: undecodable
// sequences are replaced with U+FFFD so a single broken field does not cost
// the whole session.
package textenc

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}

	// Not a standard BOM (UTF-8 is EF BB BF). Files starting with it are
	// passed through untouched, BOM included; see DESIGN.md.
	bomPassThrough = []byte{0xFE, 0xBB, 0xBF}
)

// Encoding names the detected container encoding.
type Encoding int

const (
	// UTF8 means the bytes are used as they are.
	UTF8 Encoding = iota
	// UTF16LE means a FF FE prefix was found.
	UTF16LE
	// UTF16BE means a FE FF prefix was found.
	UTF16BE
	// PassThrough means the FE BB BF prefix was found.
	PassThrough
)

// String implements fmt.Stringer.
func (e Encoding) String() string {
	switch e {
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	case PassThrough:
		return "pass-through"
	default:
		return "utf-8"
	}
}

// Detect classifies data by its leading bytes. The order of the checks
// matters: FE BB BF must be tested before FE FF.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomPassThrough):
		return PassThrough
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	default:
		return UTF8
	}
}

// Normalize returns data as UTF-8 text. UTF-16 input has its BOM stripped;
// everything else is returned byte for byte.
func Normalize(data []byte) string {
	switch Detect(data) {
	case UTF16LE:
		return decode(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data[len(bomUTF16LE):])
	case UTF16BE:
		return decode(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), data[len(bomUTF16BE):])
	default:
		return string(data)
	}
}

// DecodeUTF16LE decodes a BOM-less little-endian UTF-16 byte sequence.
func DecodeUTF16LE(data []byte) string {
	return decode(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data)
}

func decode(enc encoding.Encoding, data []byte) string {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err == nil {
		return string(out)
	}

	// best effort: retry without a dangling half code unit
	if len(data)%2 == 1 {
		if trimmed, _, err := transform.Bytes(enc.NewDecoder(), data[:len(data)-1]); err == nil {
			return string(trimmed) + "\uFFFD"
		}
	}
	return strings.ToValidUTF8(string(out), "\uFFFD")
}
