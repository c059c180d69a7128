package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/models"
)

// StaticEntitlements grants the limits set in configuration.
type StaticEntitlements struct {
	maxVaultsPerSudo int
}

func NewStaticEntitlements(cfg config.Entitlements) *StaticEntitlements {
	return &StaticEntitlements{maxVaultsPerSudo: cfg.MaxVaultsPerSudo}
}

func (e *StaticEntitlements) GetEntitlements(context.Context) ([]models.Entitlement, error) {
	return []models.Entitlement{{
		Name:        models.EntitlementMaxVaultsPerSudo,
		Description: "Maximum number of vaults per Sudo",
		Limit:       e.maxVaultsPerSudo,
	}}, nil
}
