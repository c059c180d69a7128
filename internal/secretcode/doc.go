// Package secretcode formats and parses the human-shareable recovery code
// that carries a user's key deriving key between devices.
//
// A raw code is 37 hex characters: a 5-character subscriber prefix derived
// from the user's subject followed by the 32 hex characters of the key
// deriving key. The display form groups it 5-6-5-5-5-5-6 with hyphens:
//
//	XXXXX-XXXXXX-XXXXX-XXXXX-XXXXX-XXXXX-XXXXXX
package secretcode
