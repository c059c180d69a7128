// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vaultschema

// Schema identifies a vault blob format version.
type Schema int

const (
	// SchemaV1 is the only published schema.
	SchemaV1 Schema = iota + 1
)

const (
	// FormatV1 is the blob format tag of [SchemaV1].
	FormatV1 = "com.sudoplatform.passwordmanager.vault.v1"

	schemaVersionV1 = 1.0
)

// Latest returns the schema every write uses.
func Latest() Schema { return SchemaV1 }

// FromFormatTag maps a blob format tag to its schema. Unknown tags map to
// the latest schema.
func FromFormatTag(tag string) Schema {
	switch tag {
	case FormatV1:
		return SchemaV1
	default:
		return Latest()
	}
}

// FormatTag returns the blob format tag of s.
func (s Schema) FormatTag() string {
	switch s {
	case SchemaV1:
		return FormatV1
	default:
		return Latest().FormatTag()
	}
}
