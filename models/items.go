// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// ItemType discriminates the [VaultItem] variants.
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypeLogin
	ItemTypeCreditCard
	ItemTypeBankAccount
	ItemTypeGeneratedPassword
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeLogin:
		return "login"
	case ItemTypeCreditCard:
		return "creditCard"
	case ItemTypeBankAccount:
		return "bankAccount"
	case ItemTypeGeneratedPassword:
		return "generatedPassword"
	default:
		return "unknown"
	}
}

// SecureFieldFunc transforms one secure field of an item.
type SecureFieldFunc func(*SecureField) (*SecureField, error)

// VaultItem is one of *Login, *CreditCard, *BankAccount, *GeneratedPassword
// or *UnknownItem.
type VaultItem interface {
	// Base exposes the fields every variant shares.
	Base() *ItemBase
	// Type returns the variant tag.
	Type() ItemType
	// Clone returns a deep copy.
	Clone() VaultItem
	// MapSecureFields replaces every non-nil secure field of the item with
	// the result of fn, stopping at the first error.
	MapSecureFields(fn SecureFieldFunc) error
}

// IsNilItem reports whether item is nil or a nil pointer of one of the
// variants. Calling Base on a typed nil panics.
func IsNilItem(item VaultItem) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *Login:
		return v == nil
	case *CreditCard:
		return v == nil
	case *BankAccount:
		return v == nil
	case *GeneratedPassword:
		return v == nil
	case *UnknownItem:
		return v == nil
	}
	return false
}

// ItemBase holds the fields common to every item variant. ID is supplied by
// the caller and stays stable across updates.
type ItemBase struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Notes     *SecureField
}

// Base implements [VaultItem].
func (b *ItemBase) Base() *ItemBase { return b }

func (b ItemBase) clone() ItemBase {
	b.Notes = b.Notes.Clone()
	return b
}

// PasswordField is a secure password with its history timestamps.
// ReplacedAt is nil for the current password.
type PasswordField struct {
	Value      *SecureField
	CreatedAt  time.Time
	ReplacedAt *time.Time
}

func (p *PasswordField) clone() *PasswordField {
	if p == nil {
		return nil
	}
	c := *p
	c.Value = p.Value.Clone()
	if p.ReplacedAt != nil {
		at := *p.ReplacedAt
		c.ReplacedAt = &at
	}
	return &c
}

// Login is a website or application credential.
type Login struct {
	ItemBase
	User              string
	URL               string
	Password          *PasswordField
	PreviousPasswords []*PasswordField
}

func (l *Login) Type() ItemType { return ItemTypeLogin }

func (l *Login) Clone() VaultItem {
	c := *l
	c.ItemBase = l.ItemBase.clone()
	c.Password = l.Password.clone()
	if l.PreviousPasswords != nil {
		c.PreviousPasswords = make([]*PasswordField, len(l.PreviousPasswords))
		for i, p := range l.PreviousPasswords {
			c.PreviousPasswords[i] = p.clone()
		}
	}
	return &c
}

func (l *Login) MapSecureFields(fn SecureFieldFunc) error {
	if err := mapField(&l.Notes, fn); err != nil {
		return err
	}
	if l.Password != nil {
		if err := mapField(&l.Password.Value, fn); err != nil {
			return err
		}
	}
	for _, p := range l.PreviousPasswords {
		if p == nil {
			continue
		}
		if err := mapField(&p.Value, fn); err != nil {
			return err
		}
	}
	return nil
}

// CreditCard is a payment card.
type CreditCard struct {
	ItemBase
	CardName     string
	CardType     string
	ExpiresAt    *time.Time
	CardNumber   *SecureField
	SecurityCode *SecureField
}

func (c *CreditCard) Type() ItemType { return ItemTypeCreditCard }

func (c *CreditCard) Clone() VaultItem {
	out := *c
	out.ItemBase = c.ItemBase.clone()
	out.CardNumber = c.CardNumber.Clone()
	out.SecurityCode = c.SecurityCode.Clone()
	if c.ExpiresAt != nil {
		at := *c.ExpiresAt
		out.ExpiresAt = &at
	}
	return &out
}

func (c *CreditCard) MapSecureFields(fn SecureFieldFunc) error {
	for _, f := range []**SecureField{&c.Notes, &c.CardNumber, &c.SecurityCode} {
		if err := mapField(f, fn); err != nil {
			return err
		}
	}
	return nil
}

// BankAccount is a bank account with its routing details.
type BankAccount struct {
	ItemBase
	AccountType   string
	BankName      string
	BranchAddress string
	BranchPhone   string
	IBANNumber    string
	RoutingNumber string
	SwiftCode     string
	AccountNumber *SecureField
	AccountPin    *SecureField
}

func (b *BankAccount) Type() ItemType { return ItemTypeBankAccount }

func (b *BankAccount) Clone() VaultItem {
	out := *b
	out.ItemBase = b.ItemBase.clone()
	out.AccountNumber = b.AccountNumber.Clone()
	out.AccountPin = b.AccountPin.Clone()
	return &out
}

func (b *BankAccount) MapSecureFields(fn SecureFieldFunc) error {
	for _, f := range []**SecureField{&b.Notes, &b.AccountNumber, &b.AccountPin} {
		if err := mapField(f, fn); err != nil {
			return err
		}
	}
	return nil
}

// GeneratedPassword is a password produced by a generator, optionally
// remembered together with the URL it was generated for.
type GeneratedPassword struct {
	ItemBase
	URL      string
	Password *PasswordField
}

func (g *GeneratedPassword) Type() ItemType { return ItemTypeGeneratedPassword }

func (g *GeneratedPassword) Clone() VaultItem {
	out := *g
	out.ItemBase = g.ItemBase.clone()
	out.Password = g.Password.clone()
	return &out
}

func (g *GeneratedPassword) MapSecureFields(fn SecureFieldFunc) error {
	if err := mapField(&g.Notes, fn); err != nil {
		return err
	}
	if g.Password != nil {
		return mapField(&g.Password.Value, fn)
	}
	return nil
}

// UnknownItem is an item whose type tag this version does not recognize.
// Raw holds the item exactly as decoded and Collection the top-level array
// it came from, so encoding can write it back untouched. ItemBase is
// populated on a best-effort basis.
type UnknownItem struct {
	ItemBase
	TypeTag    string
	Collection string
	Raw        json.RawMessage
}

func (u *UnknownItem) Type() ItemType { return ItemTypeUnknown }

func (u *UnknownItem) Clone() VaultItem {
	out := *u
	out.ItemBase = u.ItemBase.clone()
	out.Raw = bytes.Clone(u.Raw)
	return &out
}

// MapSecureFields is a no-op: the raw payload is opaque.
func (u *UnknownItem) MapSecureFields(SecureFieldFunc) error { return nil }

func mapField(f **SecureField, fn SecureFieldFunc) error {
	if *f == nil {
		return nil
	}
	out, err := fn(*f)
	if err != nil {
		return err
	}
	*f = out
	return nil
}
