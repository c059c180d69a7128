package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// StaticIdentity reports a fixed signed-in user.
type StaticIdentity struct {
	userID  string
	subject string
}

// NewStaticIdentity takes the user from cfg. Fields left empty are filled
// from the claims of cfg.IDToken when one is configured.
func NewStaticIdentity(cfg config.App) (*StaticIdentity, error) {
	id := &StaticIdentity{userID: cfg.UserID, subject: cfg.Subject}

	if cfg.IDToken != "" && (id.userID == "" || id.subject == "") {
		claims, err := utils.ParseIdentityClaims(cfg.IDToken)
		if err != nil {
			return nil, err
		}
		if id.userID == "" {
			id.userID = claims.UserID
		}
		if id.subject == "" {
			id.subject = claims.Subject
		}
	}
	return id, nil
}

func (s *StaticIdentity) UserID(context.Context) (string, error) {
	if s.userID == "" {
		return "", ErrMissingIdentity
	}
	return s.userID, nil
}

// Subject returns [ErrMissingIdentity] when no subject is known.
func (s *StaticIdentity) Subject(context.Context) (string, error) {
	if s.subject == "" {
		return "", ErrMissingIdentity
	}
	return s.subject, nil
}
