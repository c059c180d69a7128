package models

// EntitlementMaxVaultsPerSudo limits how many vaults a single profile may own.
const EntitlementMaxVaultsPerSudo = "sudoplatform.vault.vaultMaxPerSudo"

// Entitlement is a usage limit granted to the user.
type Entitlement struct {
	Name        string
	Description string
	Limit       int
}

// EntitlementState is an entitlement's consumption for one owner.
type EntitlementState struct {
	Name    string
	OwnerID string
	Limit   int
	Value   int
}
