package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func jwtClaims(ownerID string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{Subject: ownerID, Issuer: models.OwnerIssuerSudoService}
}

// ── LocalProfiles ────────────────────────────────────────────────────────────

func TestLocalProfiles_ProofRoundTrip(t *testing.T) {
	p, err := NewLocalProfiles(config.Profiles{SignKey: "k", Owners: []string{"sudo-1"}, ProofTTL: time.Minute}, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	proof, err := p.GetOwnershipProof(ctx, "sudo-1", models.SecureVaultAudience)
	require.NoError(t, err)

	got, err := p.VerifyProof(proof, models.SecureVaultAudience)
	require.NoError(t, err)
	assert.Equal(t, "sudo-1", got.OwnerID())
	assert.Equal(t, models.OwnerIssuerSudoService, got.Issuer)

	_, err = p.VerifyProof(proof, "other-audience")
	assert.Error(t, err)
}

func TestLocalProfiles_UnknownOwner(t *testing.T) {
	p, err := NewLocalProfiles(config.Profiles{SignKey: "k", Owners: []string{"sudo-1"}, ProofTTL: time.Minute}, logger.Nop())
	require.NoError(t, err)

	_, err = p.GetOwnershipProof(context.Background(), "sudo-9", models.SecureVaultAudience)
	assert.ErrorIs(t, err, ErrSudoNotFound)
}

func TestLocalProfiles_GeneratedKeyIsPerInstance(t *testing.T) {
	cfg := config.Profiles{Owners: []string{"sudo-1"}, ProofTTL: time.Minute}
	a, err := NewLocalProfiles(cfg, logger.Nop())
	require.NoError(t, err)
	b, err := NewLocalProfiles(cfg, logger.Nop())
	require.NoError(t, err)

	proof, err := a.GetOwnershipProof(context.Background(), "sudo-1", models.SecureVaultAudience)
	require.NoError(t, err)

	_, err = a.VerifyProof(proof, models.SecureVaultAudience)
	require.NoError(t, err)
	_, err = b.VerifyProof(proof, models.SecureVaultAudience)
	assert.Error(t, err)
}

func TestLocalProfiles_ListOwnersIsACopy(t *testing.T) {
	p, err := NewLocalProfiles(config.Profiles{SignKey: "k", Owners: []string{"sudo-1", "sudo-2"}}, logger.Nop())
	require.NoError(t, err)

	owners, err := p.ListOwners(context.Background())
	require.NoError(t, err)
	owners[0] = "changed"

	again, _ := p.ListOwners(context.Background())
	assert.Equal(t, []string{"sudo-1", "sudo-2"}, again)
}

// ── StaticIdentity ───────────────────────────────────────────────────────────

func TestStaticIdentity(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-from-token"},
		UserID:           "user-from-token",
	}).SignedString([]byte("idp"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		cfg         config.App
		wantUser    string
		wantSubject string
	}{
		{"config only", config.App{UserID: "u1", Subject: "s1"}, "u1", "s1"},
		{"token only", config.App{IDToken: token}, "user-from-token", "sub-from-token"},
		{"config wins", config.App{UserID: "u1", IDToken: token}, "u1", "sub-from-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewStaticIdentity(tt.cfg)
			require.NoError(t, err)

			user, err := id.UserID(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)

			subject, err := id.Subject(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, subject)
		})
	}
}

func TestStaticIdentity_Missing(t *testing.T) {
	id, err := NewStaticIdentity(config.App{UserID: "u1"})
	require.NoError(t, err)

	_, err = id.Subject(context.Background())
	assert.ErrorIs(t, err, ErrMissingIdentity)

	_, err = NewStaticIdentity(config.App{IDToken: "garbage"})
	assert.Error(t, err)
}

// ── StaticEntitlements ───────────────────────────────────────────────────────

func TestStaticEntitlements(t *testing.T) {
	ents, err := NewStaticEntitlements(config.Entitlements{MaxVaultsPerSudo: 3}).GetEntitlements(context.Background())
	require.NoError(t, err)
	require.Len(t, ents, 1)
	assert.Equal(t, models.EntitlementMaxVaultsPerSudo, ents[0].Name)
	assert.Equal(t, 3, ents[0].Limit)
}
