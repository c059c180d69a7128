package adapter

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// LocalProfiles is an in-process profile service. It owns the configured
// profile ids and signs ownership proofs for them with HS256.
type LocalProfiles struct {
	owners  []string
	signKey string
	ttl     time.Duration
	logger  *logger.Logger
}

// NewLocalProfiles builds the service from cfg. An empty sign key is
// replaced by a random one, valid for the life of the process.
func NewLocalProfiles(cfg config.Profiles, log *logger.Logger) (*LocalProfiles, error) {
	signKey := cfg.SignKey
	if signKey == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("generate proof signing key: %w", err)
		}
		signKey = hex.EncodeToString(buf)
		log.Debug().Msg("generated ephemeral ownership proof signing key")
	}

	return &LocalProfiles{
		owners:  slices.Clone(cfg.Owners),
		signKey: signKey,
		ttl:     cfg.ProofTTL,
		logger:  log,
	}, nil
}

func (p *LocalProfiles) GetOwnershipProof(ctx context.Context, ownerID, audience string) (string, error) {
	if !slices.Contains(p.owners, ownerID) {
		return "", fmt.Errorf("%w: %s", ErrSudoNotFound, ownerID)
	}

	proof, err := utils.GenerateOwnershipProof(models.OwnerIssuerSudoService, ownerID, audience, p.ttl, p.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*LocalProfiles.GetOwnershipProof").Msg("error signing ownership proof")
		return "", fmt.Errorf("%w: %w", ErrServiceError, err)
	}
	return proof.String(), nil
}

func (p *LocalProfiles) ListOwners(context.Context) ([]string, error) {
	return slices.Clone(p.owners), nil
}

// VerifyProof implements [ProofVerifier] with the service's own key.
func (p *LocalProfiles) VerifyProof(proof, audience string) (models.OwnershipProof, error) {
	return utils.ValidateOwnershipProof(proof, p.signKey, models.OwnerIssuerSudoService, audience)
}
