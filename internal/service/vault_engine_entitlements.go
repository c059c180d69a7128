package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

func (e *vaultEngine) GetEntitlements(ctx context.Context) ([]models.Entitlement, error) {
	e.touch()

	entitlements, err := e.entitlements.GetEntitlements(ctx)
	if err != nil {
		return nil, e.fail("GetEntitlements", err)
	}
	return entitlements, nil
}

// GetEntitlementState reports, for every owner known to the profile
// service, how many vaults it owns against the per-owner limit.
func (e *vaultEngine) GetEntitlementState(ctx context.Context) ([]models.EntitlementState, error) {
	const method = "GetEntitlementState"
	e.touch()

	entitlements, err := e.entitlements.GetEntitlements(ctx)
	if err != nil {
		return nil, e.fail(method, err)
	}
	limit := 0
	for _, ent := range entitlements {
		if ent.Name == models.EntitlementMaxVaultsPerSudo {
			limit = ent.Limit
		}
	}

	metas, err := e.backend.ListVaultsMetadataOnly(ctx)
	if err != nil {
		return nil, e.fail(method, err)
	}
	owners, err := e.profiles.ListOwners(ctx)
	if err != nil {
		return nil, e.fail(method, err)
	}

	counts := make(map[string]int, len(owners))
	for _, meta := range metas {
		for _, owner := range meta.Owners {
			if owner.Issuer == models.OwnerIssuerSudoService {
				counts[owner.ID]++
			}
		}
	}

	states := make([]models.EntitlementState, 0, len(owners))
	for _, ownerID := range owners {
		states = append(states, models.EntitlementState{
			Name:    models.EntitlementMaxVaultsPerSudo,
			OwnerID: ownerID,
			Limit:   limit,
			Value:   counts[ownerID],
		})
	}
	return states, nil
}
