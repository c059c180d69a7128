package models

// RegistrationStatus is the result of checking whether the current user can
// unlock vaults on this device.
type RegistrationStatus int

const (
	// NotRegistered means the backend has no registration for the user.
	NotRegistered RegistrationStatus = iota

	// MissingSecretCode means the user is registered but no key deriving key
	// is cached locally; unlock needs the secret code.
	MissingSecretCode

	// Registered means the user is registered and the key is cached.
	Registered
)

func (s RegistrationStatus) String() string {
	switch s {
	case Registered:
		return "REGISTERED"
	case MissingSecretCode:
		return "MISSING_SECRET_CODE"
	default:
		return "NOT_REGISTERED"
	}
}
