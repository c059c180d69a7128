// Package vaultschema encodes and decodes vault blobs.
//
// A blob is a UTF-8 JSON document shared with the other platform SDKs:
//
//	{
//	  "bankAccount": [...], "creditCard": [...],
//	  "generatedPassword": [...], "login": [...],
//	  "schemaVersion": 1.0
//	}
//
// Every item carries a lower-camel-case "type" tag, dates are ISO-8601 UTC
// with an explicit milliseconds part, and secure fields are objects of the
// form {"secureValue": "<base64 iv‖ciphertext>"}.
//
// Decoding is lenient: type tags are matched case-insensitively against an
// alias table, unrecognized tags become [models.UnknownItem], and dates fall
// back to a legacy layout and then to the epoch. Encoding always writes the
// latest schema.
package vaultschema
