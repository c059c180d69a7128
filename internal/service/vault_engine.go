// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/keystore"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/secretcode"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vaultschema"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/awnumar/memguard"
)

const kdkNamePrefix = "kdk-"

// Collaborators are the external services the engine composes.
type Collaborators struct {
	Backend      adapter.SecureVaultClient
	Profiles     adapter.ProfileClient
	Identity     adapter.IdentityClient
	Entitlements adapter.EntitlementsClient
	Keys         keystore.KeyStore
}

type vaultEngine struct {
	// mu guards session; the store has its own lock.
	mu      sync.RWMutex
	session *session
	lock    *models.LockFlag

	store       *store.VaultStore
	fieldCrypto crypto.SecureFieldCrypto

	backend      adapter.SecureVaultClient
	profiles     adapter.ProfileClient
	identity     adapter.IdentityClient
	entitlements adapter.EntitlementsClient
	keys         keystore.KeyStore

	now          func() time.Time
	lastActivity atomic.Int64

	logger *logger.Logger
}

// NewVaultEngine returns a locked engine.
func NewVaultEngine(c Collaborators, fieldCrypto crypto.SecureFieldCrypto, log *logger.Logger) VaultEngine {
	e := &vaultEngine{
		lock:         models.NewLockFlag(true),
		store:        store.NewVaultStore(),
		fieldCrypto:  fieldCrypto,
		backend:      c.Backend,
		profiles:     c.Profiles,
		identity:     c.Identity,
		entitlements: c.Entitlements,
		keys:         c.Keys,
		now:          time.Now,
		logger:       log,
	}
	e.store.WithClock(e.stamp)
	e.touch()
	return e
}

func (e *vaultEngine) Register(ctx context.Context, password string) error {
	const method = "Register"
	e.touch()

	name, err := e.kdkName(ctx)
	if err != nil {
		return e.fail(method, err)
	}

	kdk, found, err := e.cachedKDK(name)
	if err != nil {
		return e.fail(method, err)
	}
	if !found {
		if kdk, err = e.fieldCrypto.GenerateKey(); err != nil {
			return e.fail(method, app.Wrap(app.ErrCryptography, err))
		}
		// persisted first so a retry after a backend failure reuses it
		if err = e.keys.Put(name, kdk); err != nil {
			return e.fail(method, app.Wrap(app.ErrCryptography, err))
		}
	}
	defer memguard.WipeBytes(kdk)

	pw := normalizePassword(password)
	defer memguard.WipeBytes(pw)

	if _, err = e.backend.Register(ctx, kdk, pw); err != nil {
		return e.fail(method, err)
	}

	e.logger.Info().Str("func", "*vaultEngine.Register").Bool("new_key", !found).Msg("user registered")
	return nil
}

func (e *vaultEngine) Unlock(ctx context.Context, password, secretCode string) error {
	const method = "Unlock"
	e.touch()

	name, err := e.kdkName(ctx)
	if err != nil {
		return e.fail(method, err)
	}

	kdk, cached, err := e.cachedKDK(name)
	if err != nil {
		return e.fail(method, err)
	}
	if cached {
		if secretCode != "" {
			e.logger.Debug().Str("func", "*vaultEngine.Unlock").Msg("cached key deriving key used, secret code ignored")
		}
	} else {
		parsed, ok := secretcode.Parse(secretCode)
		if !ok {
			return e.fail(method, app.Wrap(app.ErrInvalidPasswordOrMissingSecretCode, app.MsgMissingSecretCode))
		}
		kdk = parsed
	}
	defer memguard.WipeBytes(kdk)

	pw := normalizePassword(password)
	defer memguard.WipeBytes(pw)

	// listing succeeds only with valid credentials
	records, decodeErr, err := e.fetchVaults(ctx, kdk, pw)
	if err != nil {
		return e.fail(method, err)
	}

	if !cached {
		if err = e.keys.Put(name, kdk); err != nil && !errors.Is(err, keystore.ErrKeyAlreadyExists) {
			return e.fail(method, app.Wrap(app.ErrCryptography, err))
		}
	}

	e.mu.Lock()
	e.session = newSession(pw, kdk)
	e.store.RemoveAll()
	e.store.ImportDecoded(records)
	e.lock.Set(false)
	e.mu.Unlock()

	e.logger.Info().Str("func", "*vaultEngine.Unlock").Int("vaults", len(records)).Msg("vaults unlocked")

	if decodeErr != nil {
		return e.fail(method, app.Wrap(app.ErrInvalidFormat, decodeErr))
	}
	return nil
}

func (e *vaultEngine) Lock() {
	e.touch()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.lock.Set(true)
	e.session = nil
	e.store.RemoveAll()
}

func (e *vaultEngine) IsLocked() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.session == nil
}

func (e *vaultEngine) Reset(ctx context.Context) error {
	const method = "Reset"
	e.Lock()

	keysErr := e.keys.ResetAll()
	backendErr := e.backend.Reset(ctx)

	if keysErr != nil {
		return e.fail(method, app.Wrap(app.ErrCryptography, keysErr))
	}
	if backendErr != nil {
		return e.fail(method, backendErr)
	}
	return nil
}

func (e *vaultEngine) Deregister(ctx context.Context) error {
	const method = "Deregister"
	e.Lock()

	// the key survives a failed deregistration so the user can still unlock
	if err := e.backend.Deregister(ctx); err != nil {
		return e.fail(method, err)
	}

	keysErr := e.keys.ResetAll()
	backendErr := e.backend.Reset(ctx)

	if keysErr != nil {
		return e.fail(method, app.Wrap(app.ErrCryptography, keysErr))
	}
	if backendErr != nil {
		return e.fail(method, backendErr)
	}
	return nil
}

func (e *vaultEngine) ChangeMasterPassword(ctx context.Context, oldPassword, newPassword string) error {
	const method = "ChangeMasterPassword"
	e.touch()

	sess, err := e.current()
	if err != nil {
		return e.fail(method, err)
	}

	oldPw, newPw := normalizePassword(oldPassword), normalizePassword(newPassword)
	defer memguard.WipeBytes(oldPw)
	defer memguard.WipeBytes(newPw)

	var (
		records   []models.VaultRecord
		decodeErr error
	)
	err = sess.use(func(kdk, _ []byte) error {
		if err := e.backend.ChangeVaultPassword(ctx, kdk, oldPw, newPw); err != nil {
			return err
		}

		// every version changed, so reload everything
		var err error
		records, decodeErr, err = e.fetchVaults(ctx, kdk, newPw)
		if err != nil {
			return err
		}

		if !e.whileCurrent(sess, func() {
			e.session = newSession(newPw, kdk)
			e.store.RemoveAll()
			e.store.ImportDecoded(records)
		}) {
			return app.Wrap(app.ErrVaultLocked, app.MsgVaultsMustBeUnlocked)
		}
		return nil
	})
	if err != nil {
		return e.fail(method, err)
	}

	if decodeErr != nil {
		return e.fail(method, app.Wrap(app.ErrInvalidFormat, decodeErr))
	}
	return nil
}

func (e *vaultEngine) GetSecretCode(ctx context.Context) (string, bool, error) {
	const method = "GetSecretCode"
	e.touch()

	name, err := e.kdkName(ctx)
	if err != nil {
		return "", false, e.fail(method, err)
	}

	kdk, found, err := e.cachedKDK(name)
	if err != nil {
		return "", false, e.fail(method, err)
	}
	if !found {
		return "", false, nil
	}
	defer memguard.WipeBytes(kdk)

	subject, err := e.identity.Subject(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, e.fail(method, err)
		}
		// the code stays usable with the fallback prefix
		e.logger.Warn().Err(err).Str("func", "*vaultEngine.GetSecretCode").Msg("subject unavailable, using fallback prefix")
		subject = ""
	}

	code, ok := secretcode.Build(kdk, subject)
	if !ok {
		return "", false, e.fail(method, app.Wrap(app.ErrCryptography, "cached key deriving key has an unexpected length"))
	}
	return code, true, nil
}

func (e *vaultEngine) GetRegistrationStatus(ctx context.Context) (models.RegistrationStatus, error) {
	const method = "GetRegistrationStatus"
	e.touch()

	registered, err := e.backend.IsRegistered(ctx)
	if err != nil {
		return models.NotRegistered, e.fail(method, err)
	}
	if !registered {
		return models.NotRegistered, nil
	}

	name, err := e.kdkName(ctx)
	if err != nil {
		return models.NotRegistered, e.fail(method, err)
	}
	kdk, found, err := e.cachedKDK(name)
	if err != nil {
		return models.NotRegistered, e.fail(method, err)
	}
	if !found {
		return models.MissingSecretCode, nil
	}
	memguard.WipeBytes(kdk)
	return models.Registered, nil
}

func (e *vaultEngine) LastActivity() time.Time {
	return time.Unix(0, e.lastActivity.Load())
}

// stamp is the time written into items. The vault blob keeps milliseconds
// only, so anything finer would not survive a re-list.
func (e *vaultEngine) stamp() time.Time {
	return e.now().Truncate(time.Millisecond)
}

func (e *vaultEngine) touch() {
	e.lastActivity.Store(e.now().UnixNano())
}

// current returns the live session or ErrVaultLocked.
func (e *vaultEngine) current() (*session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.session == nil {
		return nil, app.Wrap(app.ErrVaultLocked, app.MsgVaultsMustBeUnlocked)
	}
	return e.session, nil
}

// whileCurrent runs fn under the session lock if sess is still the live
// session. A Lock that raced the caller wins and fn is skipped.
func (e *vaultEngine) whileCurrent(sess *session, fn func()) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != sess {
		return false
	}
	fn()
	return true
}

func (e *vaultEngine) kdkName(ctx context.Context) (string, error) {
	userID, err := e.identity.UserID(ctx)
	if err != nil {
		return "", err
	}
	return kdkNamePrefix + userID, nil
}

// cachedKDK returns the key deriving key stored under name. found is false
// when none is cached.
func (e *vaultEngine) cachedKDK(name string) (kdk []byte, found bool, err error) {
	kdk, err = e.keys.Get(name)
	switch {
	case errors.Is(err, keystore.ErrKeyNotFound):
		return nil, false, nil
	case err != nil:
		return nil, false, app.Wrap(app.ErrCryptography, err)
	}
	return kdk, true, nil
}

// fetchVaults lists and decodes every vault. Vaults that fail to decode are
// reported in decodeErr; err is a backend failure.
func (e *vaultEngine) fetchVaults(ctx context.Context, kdk, password []byte) (records []models.VaultRecord, decodeErr, err error) {
	raws, err := e.backend.ListVaults(ctx, kdk, password)
	if err != nil {
		return nil, nil, err
	}

	records, decodeErr = vaultschema.DecodeVaults(raws)
	if decodeErr != nil {
		e.logger.Warn().Err(decodeErr).Str("func", "*vaultEngine.fetchVaults").
			Int("listed", len(raws)).Int("decoded", len(records)).Msg("some vaults failed to decode")
	}
	return records, decodeErr, nil
}

// fail maps err into the error taxonomy and logs it once.
func (e *vaultEngine) fail(method string, err error) error {
	mapped := mapError(err)

	event := e.logger.Err(mapped)
	if errors.Is(mapped, context.Canceled) || errors.Is(mapped, context.DeadlineExceeded) || errors.Is(mapped, app.ErrVaultLocked) {
		event = e.logger.Debug().Err(mapped)
	}
	event.Str("func", "*vaultEngine."+method).Msg("vault engine operation failed")

	return mapped
}
