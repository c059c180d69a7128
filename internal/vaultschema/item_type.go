package vaultschema

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	collectionBankAccount       = "bankAccount"
	collectionCreditCard        = "creditCard"
	collectionGeneratedPassword = "generatedPassword"
	collectionLogin             = "login"
)

// aliases maps lower-cased serialized tags and enum names to item types.
var aliases = map[string]models.ItemType{
	"bankaccount":        models.ItemTypeBankAccount,
	"bank_account":       models.ItemTypeBankAccount,
	"creditcard":         models.ItemTypeCreditCard,
	"credit_card":        models.ItemTypeCreditCard,
	"generatedpassword":  models.ItemTypeGeneratedPassword,
	"generated_password": models.ItemTypeGeneratedPassword,
	"login":              models.ItemTypeLogin,
}

// parseItemType resolves a serialized type tag. Unrecognized tags resolve
// to [models.ItemTypeUnknown].
func parseItemType(tag string) models.ItemType {
	if t, ok := aliases[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return t
	}
	return models.ItemTypeUnknown
}

// collectionItemType is the variant implied by a top-level collection, used
// when an item carries no type tag at all.
func collectionItemType(collection string) models.ItemType {
	switch collection {
	case collectionBankAccount:
		return models.ItemTypeBankAccount
	case collectionCreditCard:
		return models.ItemTypeCreditCard
	case collectionGeneratedPassword:
		return models.ItemTypeGeneratedPassword
	case collectionLogin:
		return models.ItemTypeLogin
	default:
		return models.ItemTypeUnknown
	}
}
