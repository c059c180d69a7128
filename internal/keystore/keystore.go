package keystore

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	BackendKeyring = "keyring"
	BackendBolt    = "bolt"
	BackendMemory  = "memory"
)

// New opens the key store selected by cfg.Backend. The returned close
// function releases the store's resources and is never nil.
func New(cfg config.Keystore, log *logger.Logger) (KeyStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case BackendKeyring:
		log.Debug().Str("service", cfg.Service).Msg("using OS keyring key store")
		return NewKeyringStore(cfg.Service), noop, nil
	case BackendBolt:
		s, err := OpenBoltStore(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		log.Debug().Str("path", cfg.Path).Msg("using bbolt key store")
		return s, s.Close, nil
	case BackendMemory:
		log.Warn().Msg("using in-memory key store; the key deriving key is lost on exit")
		return NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}
