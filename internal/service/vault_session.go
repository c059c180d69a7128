package service

import (
	"fmt"

	"github.com/awnumar/memguard"
)

// session is the unlocked state: the normalized master password and the
// key deriving key, sealed in a memguard enclave between uses.
type session struct {
	enclave *memguard.Enclave
	kdkLen  int
}

// newSession seals kdk ‖ password. The inputs are left untouched.
func newSession(password, kdk []byte) *session {
	buf := make([]byte, 0, len(kdk)+len(password))
	buf = append(buf, kdk...)
	buf = append(buf, password...)

	// NewEnclave wipes buf
	return &session{enclave: memguard.NewEnclave(buf), kdkLen: len(kdk)}
}

// use opens the enclave for the duration of fn. kdk and password must not
// be retained after fn returns; copy them if needed.
func (s *session) use(fn func(kdk, password []byte) error) error {
	buf, err := s.enclave.Open()
	if err != nil {
		return fmt.Errorf("open session enclave: %w", err)
	}
	defer buf.Destroy()

	b := buf.Bytes()
	return fn(b[:s.kdkLen], b[s.kdkLen:])
}
