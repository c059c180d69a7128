package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-pass-vault/models"
)

// GenerateOwnershipProof creates a signed HMAC-SHA256 ownership proof.
//
// The token includes the following standard claims:
//   - Issuer    (iss): the owner issuer (e.g. the profile service)
//   - Subject   (sub): the owner id
//   - Audience  (aud): the service the proof is minted for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	proof, err := utils.GenerateOwnershipProof(models.OwnerIssuerSudoService, "sudo-1",
//		models.SecureVaultAudience, time.Minute, "secret")
func GenerateOwnershipProof(issuer, ownerID, audience string, ttl time.Duration, signKey string) (models.OwnershipProof, error) {
	if issuer == "" || ownerID == "" || audience == "" || ttl == 0 || signKey == "" {
		return models.OwnershipProof{}, errors.New("invalid params for generating ownership proof")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   ownerID,
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.OwnershipProof{}, fmt.Errorf("error occurred during singing ownership proof: %w", err)
	}

	return models.OwnershipProof{Token: token, RegisteredClaims: claims, SignedString: signed}, nil
}

// ValidateOwnershipProof verifies the signature, issuer, audience and expiry
// of a proof and returns its claims.
//
// Example usage:
//
//	proof, err := utils.ValidateOwnershipProof(raw, "secret", models.OwnerIssuerSudoService, models.SecureVaultAudience)
//	if err != nil {
//	    // reject the vault owner
//	}
func ValidateOwnershipProof(tokenString, signKey, issuer, audience string) (models.OwnershipProof, error) {
	proof := models.OwnershipProof{}
	token, err := jwt.ParseWithClaims(tokenString, &proof, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.OwnershipProof{}, fmt.Errorf("error occurred validating ownership proof: %w", err)
	}

	if proof.Subject == "" {
		return models.OwnershipProof{}, errors.New("empty subject error")
	}

	proof.Token = token
	proof.SignedString = tokenString
	return proof, nil
}

// ParseIdentityClaims reads the claims of an identity token without
// verifying its signature. The identity service vouches for the token; the
// engine only needs the user id and subject from it.
func ParseIdentityClaims(tokenString string) (models.IdentityClaims, error) {
	claims := models.IdentityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.IdentityClaims{}, fmt.Errorf("error occurred parsing identity token: %w", err)
	}

	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return models.IdentityClaims{}, errors.New("identity token has no user id")
	}
	return claims, nil
}
