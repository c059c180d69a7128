package vaultschema

import "encoding/json"

// wireVault is the top-level V1 document. Collections are decoded lazily so
// each item can be dispatched on its own type tag.
type wireVault struct {
	BankAccount       []json.RawMessage `json:"bankAccount"`
	CreditCard        []json.RawMessage `json:"creditCard"`
	GeneratedPassword []json.RawMessage `json:"generatedPassword"`
	Login             []json.RawMessage `json:"login"`
	SchemaVersion     float64           `json:"schemaVersion"`
}

type wireSecureField struct {
	SecureValue string `json:"secureValue"`
}

type wirePasswordField struct {
	SecureValue string    `json:"secureValue"`
	CreatedAt   wireDate  `json:"createdAt"`
	ReplacedAt  *wireDate `json:"replacedAt,omitempty"`
}

// wireItemHeader is the part of every item the dispatcher needs.
type wireItemHeader struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedAt wireDate `json:"createdAt"`
	UpdatedAt wireDate `json:"updatedAt"`
	Type      string   `json:"type"`
}

type wireItemBase struct {
	CreatedAt wireDate         `json:"createdAt"`
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Notes     *wireSecureField `json:"notes,omitempty"`
	UpdatedAt wireDate         `json:"updatedAt"`
	Type      string           `json:"type"`
}

type wireLogin struct {
	wireItemBase
	Password          *wirePasswordField  `json:"password,omitempty"`
	PreviousPasswords []wirePasswordField `json:"previousPasswords,omitempty"`
	URL               *string             `json:"url,omitempty"`
	User              *string             `json:"user,omitempty"`
}

type wireCreditCard struct {
	wireItemBase
	CardExpiration   *wireDate        `json:"cardExpiration,omitempty"`
	CardName         *string          `json:"cardName,omitempty"`
	CardNumber       *wireSecureField `json:"cardNumber,omitempty"`
	CardSecurityCode *wireSecureField `json:"cardSecurityCode,omitempty"`
	CardType         *string          `json:"cardType,omitempty"`
}

type wireBankAccount struct {
	wireItemBase
	AccountNumber *wireSecureField `json:"accountNumber,omitempty"`
	AccountPin    *wireSecureField `json:"accountPin,omitempty"`
	AccountType   *string          `json:"accountType,omitempty"`
	BankName      *string          `json:"bankName,omitempty"`
	BranchAddress *string          `json:"branchAddress,omitempty"`
	BranchPhone   *string          `json:"branchPhone,omitempty"`
	IBANNumber    *string          `json:"ibanNumber,omitempty"`
	RoutingNumber *string          `json:"routingNumber,omitempty"`
	SwiftCode     *string          `json:"swiftCode,omitempty"`
}

type wireGeneratedPassword struct {
	wireItemBase
	Password *wirePasswordField `json:"password,omitempty"`
	URL      *string            `json:"url,omitempty"`
}
