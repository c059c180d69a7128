// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vaultschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Decode parses blob written in the schema named by formatTag.
func Decode(blob []byte, formatTag string) (models.VaultDocument, error) {
	switch FromFormatTag(formatTag) {
	case SchemaV1:
		return decodeV1(blob)
	default:
		return models.VaultDocument{}, fmt.Errorf("%w: unsupported format %q", ErrMalformedVault, formatTag)
	}
}

// Encode writes doc in the latest schema regardless of the schema it was
// read from. Every secure field must already be sealed.
func Encode(doc models.VaultDocument) ([]byte, error) {
	out := wireVault{
		BankAccount:       []json.RawMessage{},
		CreditCard:        []json.RawMessage{},
		GeneratedPassword: []json.RawMessage{},
		Login:             []json.RawMessage{},
		SchemaVersion:     schemaVersionV1,
	}

	for _, item := range doc.Items {
		collection, raw, err := encodeItem(item)
		if err != nil {
			return nil, fmt.Errorf("encode item %q: %w", item.Base().ID, err)
		}
		switch collection {
		case collectionBankAccount:
			out.BankAccount = append(out.BankAccount, raw)
		case collectionCreditCard:
			out.CreditCard = append(out.CreditCard, raw)
		case collectionGeneratedPassword:
			out.GeneratedPassword = append(out.GeneratedPassword, raw)
		case collectionLogin:
			out.Login = append(out.Login, raw)
		default:
			return nil, fmt.Errorf("encode item %q: %w", item.Base().ID, ErrUnsupportedItem)
		}
	}

	return json.Marshal(out)
}

// DecodeVault decodes the blob of raw into a store record.
func DecodeVault(raw models.RawVault) (models.VaultRecord, error) {
	doc, err := Decode(raw.Blob, raw.BlobFormat)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("vault %s: %w", raw.ID, err)
	}

	return models.VaultRecord{
		ID:         raw.ID,
		BlobFormat: Latest().FormatTag(),
		CreatedAt:  raw.CreatedAt,
		UpdatedAt:  raw.UpdatedAt,
		Version:    raw.Version,
		Owners:     slices.Clone(raw.Owners),
		Document:   doc,
	}, nil
}

// DecodeVaults decodes every vault in raws. A failing vault does not stop
// the batch: the records that decoded are returned together with a joined
// error holding one [ErrMalformedVault] per failure.
func DecodeVaults(raws []models.RawVault) ([]models.VaultRecord, error) {
	records := make([]models.VaultRecord, 0, len(raws))
	var errs []error

	for _, raw := range raws {
		record, err := DecodeVault(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, record)
	}

	return records, errors.Join(errs...)
}

func decodeV1(blob []byte) (models.VaultDocument, error) {
	var w wireVault
	if err := json.Unmarshal(blob, &w); err != nil {
		return models.VaultDocument{}, fmt.Errorf("%w: %v", ErrMalformedVault, err)
	}

	doc := models.VaultDocument{SchemaVersion: w.SchemaVersion}
	for _, c := range []struct {
		name  string
		items []json.RawMessage
	}{
		{collectionBankAccount, w.BankAccount},
		{collectionCreditCard, w.CreditCard},
		{collectionGeneratedPassword, w.GeneratedPassword},
		{collectionLogin, w.Login},
	} {
		for i, raw := range c.items {
			item, err := decodeItem(c.name, raw)
			if err != nil {
				return models.VaultDocument{}, fmt.Errorf("%w: %s[%d]: %v", ErrMalformedVault, c.name, i, err)
			}
			doc.Items = append(doc.Items, item)
		}
	}

	return doc, nil
}

func decodeItem(collection string, raw json.RawMessage) (models.VaultItem, error) {
	var header wireItemHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, err
	}

	itemType := parseItemType(header.Type)
	if header.Type == "" {
		itemType = collectionItemType(collection)
	}

	switch itemType {
	case models.ItemTypeLogin:
		var w wireLogin
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return loginFromWire(w), nil

	case models.ItemTypeCreditCard:
		var w wireCreditCard
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return creditCardFromWire(w), nil

	case models.ItemTypeBankAccount:
		var w wireBankAccount
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return bankAccountFromWire(w), nil

	case models.ItemTypeGeneratedPassword:
		var w wireGeneratedPassword
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return generatedPasswordFromWire(w), nil

	default:
		return &models.UnknownItem{
			ItemBase: models.ItemBase{
				ID:        header.ID,
				Name:      header.Name,
				CreatedAt: fromWireDate(header.CreatedAt),
				UpdatedAt: fromWireDate(header.UpdatedAt),
			},
			TypeTag:    header.Type,
			Collection: collection,
			Raw:        slices.Clone(raw),
		}, nil
	}
}

func encodeItem(item models.VaultItem) (string, json.RawMessage, error) {
	var (
		collection string
		w          any
		err        error
	)

	switch v := item.(type) {
	case *models.Login:
		collection = collectionLogin
		w, err = loginToWire(v)
	case *models.CreditCard:
		collection = collectionCreditCard
		w, err = creditCardToWire(v)
	case *models.BankAccount:
		collection = collectionBankAccount
		w, err = bankAccountToWire(v)
	case *models.GeneratedPassword:
		collection = collectionGeneratedPassword
		w, err = generatedPasswordToWire(v)
	case *models.UnknownItem:
		if len(v.Raw) == 0 || collectionItemType(v.Collection) == models.ItemTypeUnknown {
			return "", nil, ErrUnsupportedItem
		}
		return v.Collection, slices.Clone(v.Raw), nil
	default:
		return "", nil, ErrUnsupportedItem
	}
	if err != nil {
		return "", nil, err
	}

	raw, err := json.Marshal(w)
	if err != nil {
		return "", nil, err
	}
	return collection, raw, nil
}
