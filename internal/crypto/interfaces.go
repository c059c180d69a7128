package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SecureFieldCrypto generates vault keys and encrypts individual secure
// fields. Output is byte-compatible with the other platform SDKs:
// AES-128-CBC, PKCS#7 padding, blob = iv ‖ ciphertext.
//
// Keys are never logged or retained beyond a single call.
type SecureFieldCrypto interface {
	// GenerateKey returns a fresh random 128-bit key.
	GenerateKey() ([]byte, error)

	// Encrypt encrypts plaintext under key with a freshly generated IV and
	// returns iv ‖ ciphertext.
	Encrypt(plaintext, key []byte) ([]byte, error)

	// Decrypt splits the IV off blob and decrypts the remainder. Blobs no
	// longer than one cipher block fail with [ErrCiphertextTooShort].
	Decrypt(blob, key []byte) ([]byte, error)
}

// KeyChainService holds the credential cryptography of the local
// secure-vault backend. The backend never stores the master password; it
// keeps an auth hash of a key derived from (password, key deriving key)
// and seals vault blobs with that same derived key.
//
//	CredentialKey = DeriveCredentialKey(password, kdk)   (Argon2id)
//	AuthHash      = GenerateAuthHash(CredentialKey, authSalt)
//	Sealed        = SealBlob(blob, CredentialKey)        (AES-256-GCM)
type KeyChainService interface {
	// DeriveCredentialKey derives a 256-bit key from password, salted with
	// the user's key deriving key.
	DeriveCredentialKey(password, kdk []byte) []byte

	// GenerateAuthHash returns SHA-256(credentialKey ‖ authSalt).
	GenerateAuthHash(credentialKey []byte, authSalt string) []byte

	// VerifyAuthHash recomputes the auth hash and compares it with expected
	// in constant time.
	VerifyAuthHash(credentialKey, expected []byte, authSalt string) bool

	// SealBlob encrypts blob with AES-256-GCM and returns base64(nonce ‖ ct).
	SealBlob(blob, key []byte) (string, error)

	// OpenBlob reverses [KeyChainService.SealBlob].
	OpenBlob(sealed string, key []byte) ([]byte, error)
}
