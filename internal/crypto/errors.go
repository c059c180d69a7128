package crypto

import "errors"

var (
	// ErrCiphertextTooShort is returned when a blob cannot hold an IV (or
	// nonce) followed by at least one block of ciphertext.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrInvalidPadding is returned when PKCS#7 padding does not verify,
	// which almost always means the wrong key was used.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidBlockSize is returned when the ciphertext is not a whole
	// number of cipher blocks.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of the block size")
)
