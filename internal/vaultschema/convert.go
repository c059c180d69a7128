package vaultschema

import (
	"github.com/MKhiriev/go-pass-vault/models"
)

// ── wire → model ─────────────────────────────────────────────────────────────

func baseFromWire(w wireItemBase) models.ItemBase {
	return models.ItemBase{
		ID:        w.ID,
		Name:      w.Name,
		CreatedAt: fromWireDate(w.CreatedAt),
		UpdatedAt: fromWireDate(w.UpdatedAt),
		Notes:     secureFromWire(w.Notes),
	}
}

func secureFromWire(w *wireSecureField) *models.SecureField {
	if w == nil {
		return nil
	}
	return models.NewSealedSecureField(w.SecureValue)
}

func passwordFromWire(w *wirePasswordField) *models.PasswordField {
	if w == nil {
		return nil
	}
	return &models.PasswordField{
		Value:      models.NewSealedSecureField(w.SecureValue),
		CreatedAt:  fromWireDate(w.CreatedAt),
		ReplacedAt: fromWireDatePtr(w.ReplacedAt),
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func loginFromWire(w wireLogin) *models.Login {
	l := &models.Login{
		ItemBase: baseFromWire(w.wireItemBase),
		User:     str(w.User),
		URL:      str(w.URL),
		Password: passwordFromWire(w.Password),
	}
	for i := range w.PreviousPasswords {
		l.PreviousPasswords = append(l.PreviousPasswords, passwordFromWire(&w.PreviousPasswords[i]))
	}
	return l
}

func creditCardFromWire(w wireCreditCard) *models.CreditCard {
	return &models.CreditCard{
		ItemBase:     baseFromWire(w.wireItemBase),
		CardName:     str(w.CardName),
		CardType:     str(w.CardType),
		ExpiresAt:    fromWireDatePtr(w.CardExpiration),
		CardNumber:   secureFromWire(w.CardNumber),
		SecurityCode: secureFromWire(w.CardSecurityCode),
	}
}

func bankAccountFromWire(w wireBankAccount) *models.BankAccount {
	return &models.BankAccount{
		ItemBase:      baseFromWire(w.wireItemBase),
		AccountType:   str(w.AccountType),
		BankName:      str(w.BankName),
		BranchAddress: str(w.BranchAddress),
		BranchPhone:   str(w.BranchPhone),
		IBANNumber:    str(w.IBANNumber),
		RoutingNumber: str(w.RoutingNumber),
		SwiftCode:     str(w.SwiftCode),
		AccountNumber: secureFromWire(w.AccountNumber),
		AccountPin:    secureFromWire(w.AccountPin),
	}
}

func generatedPasswordFromWire(w wireGeneratedPassword) *models.GeneratedPassword {
	return &models.GeneratedPassword{
		ItemBase: baseFromWire(w.wireItemBase),
		URL:      str(w.URL),
		Password: passwordFromWire(w.Password),
	}
}

// ── model → wire ─────────────────────────────────────────────────────────────

func baseToWire(b *models.ItemBase, t models.ItemType) (wireItemBase, error) {
	notes, err := secureToWire(b.Notes)
	if err != nil {
		return wireItemBase{}, err
	}
	return wireItemBase{
		CreatedAt: toWireDate(b.CreatedAt),
		ID:        b.ID,
		Name:      b.Name,
		Notes:     notes,
		UpdatedAt: toWireDate(b.UpdatedAt),
		Type:      t.String(),
	}, nil
}

func secureToWire(f *models.SecureField) (*wireSecureField, error) {
	if f == nil {
		return nil, nil
	}
	if !f.IsSealed() {
		return nil, ErrUnsealedField
	}
	return &wireSecureField{SecureValue: f.Ciphertext()}, nil
}

func passwordToWire(p *models.PasswordField) (*wirePasswordField, error) {
	if p == nil || p.Value == nil {
		return nil, nil
	}
	if !p.Value.IsSealed() {
		return nil, ErrUnsealedField
	}
	return &wirePasswordField{
		SecureValue: p.Value.Ciphertext(),
		CreatedAt:   toWireDate(p.CreatedAt),
		ReplacedAt:  toWireDatePtr(p.ReplacedAt),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func loginToWire(l *models.Login) (wireLogin, error) {
	base, err := baseToWire(&l.ItemBase, models.ItemTypeLogin)
	if err != nil {
		return wireLogin{}, err
	}
	password, err := passwordToWire(l.Password)
	if err != nil {
		return wireLogin{}, err
	}

	w := wireLogin{
		wireItemBase: base,
		Password:     password,
		URL:          optional(l.URL),
		User:         optional(l.User),
	}
	for _, p := range l.PreviousPasswords {
		prev, err := passwordToWire(p)
		if err != nil {
			return wireLogin{}, err
		}
		if prev != nil {
			w.PreviousPasswords = append(w.PreviousPasswords, *prev)
		}
	}
	return w, nil
}

func creditCardToWire(c *models.CreditCard) (wireCreditCard, error) {
	base, err := baseToWire(&c.ItemBase, models.ItemTypeCreditCard)
	if err != nil {
		return wireCreditCard{}, err
	}
	number, err := secureToWire(c.CardNumber)
	if err != nil {
		return wireCreditCard{}, err
	}
	code, err := secureToWire(c.SecurityCode)
	if err != nil {
		return wireCreditCard{}, err
	}

	return wireCreditCard{
		wireItemBase:     base,
		CardExpiration:   toWireDatePtr(c.ExpiresAt),
		CardName:         optional(c.CardName),
		CardNumber:       number,
		CardSecurityCode: code,
		CardType:         optional(c.CardType),
	}, nil
}

func bankAccountToWire(b *models.BankAccount) (wireBankAccount, error) {
	base, err := baseToWire(&b.ItemBase, models.ItemTypeBankAccount)
	if err != nil {
		return wireBankAccount{}, err
	}
	number, err := secureToWire(b.AccountNumber)
	if err != nil {
		return wireBankAccount{}, err
	}
	pin, err := secureToWire(b.AccountPin)
	if err != nil {
		return wireBankAccount{}, err
	}

	return wireBankAccount{
		wireItemBase:  base,
		AccountNumber: number,
		AccountPin:    pin,
		AccountType:   optional(b.AccountType),
		BankName:      optional(b.BankName),
		BranchAddress: optional(b.BranchAddress),
		BranchPhone:   optional(b.BranchPhone),
		IBANNumber:    optional(b.IBANNumber),
		RoutingNumber: optional(b.RoutingNumber),
		SwiftCode:     optional(b.SwiftCode),
	}, nil
}

func generatedPasswordToWire(g *models.GeneratedPassword) (wireGeneratedPassword, error) {
	base, err := baseToWire(&g.ItemBase, models.ItemTypeGeneratedPassword)
	if err != nil {
		return wireGeneratedPassword{}, err
	}
	password, err := passwordToWire(g.Password)
	if err != nil {
		return wireGeneratedPassword{}, err
	}

	return wireGeneratedPassword{
		wireItemBase: base,
		Password:     password,
		URL:          optional(g.URL),
	}, nil
}
