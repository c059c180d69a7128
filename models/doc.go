// Package models declares the vault domain types shared by the engine,
// the schema codec and the in-memory store: vault records and their
// documents, the item variants, secure fields and the bookkeeping values
// exchanged with the secure-vault backend and the entitlements service.
package models
