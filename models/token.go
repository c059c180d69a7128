package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// OwnershipProof wraps the signed JWT the profile service issues to prove
// that the current user owns a profile. The backend verifies it before
// attaching the profile as a vault owner.
//
// The standard claims carry the proof: "sub" is the owner id, "aud" the
// audience the proof was minted for and "iss" the owner issuer.
type OwnershipProof struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form travels between collaborators.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the proof.
	SignedString string `json:"-"`
}

// OwnerID returns the "sub" claim.
func (p *OwnershipProof) OwnerID() string {
	return p.Subject
}

// String returns the compact JWS serialization of the proof.
// It implements the [fmt.Stringer] interface.
func (p *OwnershipProof) String() string {
	return p.SignedString
}

// IdentityClaims are the claims read from an identity-service ID token.
// UserID falls back to the subject when the token has no "user_id" claim.
type IdentityClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
}
