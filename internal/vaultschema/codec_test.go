package vaultschema

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

const fixtureBlob = `{
	"bankAccount":[ {
		"id":"bank",
		"name":"ANZ Savings",
		"createdAt":"1970-01-01T00:00:00Z",
		"updatedAt":"2021-04-21T00:11:00.340Z",
		"type":"bankAccount"
	} ],
	"creditCard":[ {
		"id":"card",
		"name":"Teds Visa",
		"createdAt":"1970-01-01T00:00:00Z",
		"updatedAt":"2021-04-21T00:11:00.340Z",
		"type":"bankAccount"
	} ],
	"generatedPassword":[],
	"login":[ {
		"createdAt":"1970-01-01T00:00:00Z",
		"id":"login",
		"name":"Ted Bear",
		"updatedAt":"2021-04-21T00:11:00.340Z",
		"type":"login",
		"user":"tedbear"
	} ],
	"schemaVersion":1.0
}`

var fixtureUpdatedAt = time.UnixMilli(1618963860340).UTC()

func sealed(s string) *models.SecureField { return models.NewSealedSecureField(s) }

// ── Decode ───────────────────────────────────────────────────────────────────

func TestDecode_Fixture(t *testing.T) {
	doc, err := Decode([]byte(fixtureBlob), FormatV1)
	require.NoError(t, err)
	require.Len(t, doc.Items, 3)
	assert.Equal(t, 1.0, doc.SchemaVersion)

	login, ok := doc.Find("login").(*models.Login)
	require.True(t, ok)
	assert.Equal(t, "tedbear", login.User)
	assert.Equal(t, int64(0), login.CreatedAt.UnixMilli())
	assert.True(t, fixtureUpdatedAt.Equal(login.UpdatedAt))

	bank, ok := doc.Find("bank").(*models.BankAccount)
	require.True(t, ok)
	assert.Equal(t, "ANZ Savings", bank.Name)
	assert.True(t, fixtureUpdatedAt.Equal(bank.UpdatedAt))
}

func TestDecode_VariantFollowsTypeTag(t *testing.T) {
	doc, err := Decode([]byte(fixtureBlob), FormatV1)
	require.NoError(t, err)

	// listed under creditCard but tagged bankAccount
	item := doc.Find("card")
	require.NotNil(t, item)
	assert.Equal(t, models.ItemTypeBankAccount, item.Type())
}

func TestDecode_MissingTagUsesCollection(t *testing.T) {
	blob := `{"bankAccount":[],"creditCard":[{"id":"c","name":"n","createdAt":"1970-01-01T00:00:00Z","updatedAt":"1970-01-01T00:00:00Z","cardName":"Visa"}],"generatedPassword":[],"login":[],"schemaVersion":1.0}`

	doc, err := Decode([]byte(blob), FormatV1)
	require.NoError(t, err)
	card, ok := doc.Find("c").(*models.CreditCard)
	require.True(t, ok)
	assert.Equal(t, "Visa", card.CardName)
}

func TestDecode_TypeTagAliases(t *testing.T) {
	tests := []struct {
		tag  string
		want models.ItemType
	}{
		{"login", models.ItemTypeLogin},
		{"LOGIN", models.ItemTypeLogin},
		{"creditCard", models.ItemTypeCreditCard},
		{"CREDIT_CARD", models.ItemTypeCreditCard},
		{"bank_account", models.ItemTypeBankAccount},
		{"generatedPassword", models.ItemTypeGeneratedPassword},
		{"GENERATED_PASSWORD", models.ItemTypeGeneratedPassword},
		{"passport", models.ItemTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, parseItemType(tt.tag))
		})
	}
}

func TestDecode_SecureFieldsAreSealed(t *testing.T) {
	blob := `{"bankAccount":[],"creditCard":[],"generatedPassword":[],"login":[{
		"id":"l","name":"n","createdAt":"1970-01-01T00:00:00Z","updatedAt":"1970-01-01T00:00:00Z","type":"login",
		"notes":{"secureValue":"bm90ZXM="},
		"password":{"secureValue":"cHc=","createdAt":"2021-04-21T00:11:00.340Z"},
		"previousPasswords":[{"secureValue":"b2xk","createdAt":"1970-01-01T00:00:00Z","replacedAt":"2021-04-21T00:11:00.340Z"}]
	}],"schemaVersion":1.0}`

	doc, err := Decode([]byte(blob), FormatV1)
	require.NoError(t, err)
	login := doc.Find("l").(*models.Login)

	require.NotNil(t, login.Notes)
	assert.True(t, login.Notes.IsSealed())
	assert.Equal(t, "bm90ZXM=", login.Notes.Ciphertext())
	require.NotNil(t, login.Password)
	assert.Equal(t, "cHc=", login.Password.Value.Ciphertext())
	assert.Nil(t, login.Password.ReplacedAt)
	require.Len(t, login.PreviousPasswords, 1)
	require.NotNil(t, login.PreviousPasswords[0].ReplacedAt)
	assert.True(t, fixtureUpdatedAt.Equal(*login.PreviousPasswords[0].ReplacedAt))
}

func TestDecode_UnknownFormatTagUsesLatest(t *testing.T) {
	doc, err := Decode([]byte(fixtureBlob), "com.example.vault.v9")
	require.NoError(t, err)
	assert.Len(t, doc.Items, 3)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", `{not json`},
		{"collection not array", `{"login":{"id":"x"},"schemaVersion":1.0}`},
		{"item not object", `{"login":[42],"schemaVersion":1.0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.blob), FormatV1)
			require.ErrorIs(t, err, ErrMalformedVault)
		})
	}
}

// ── Encode ───────────────────────────────────────────────────────────────────

func TestEncode_RoundTrip(t *testing.T) {
	created := time.Date(2021, 4, 21, 0, 11, 0, 340_000_000, time.UTC)
	replaced := created.Add(time.Hour)
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	doc := models.VaultDocument{
		SchemaVersion: 1.0,
		Items: []models.VaultItem{
			&models.Login{
				ItemBase: models.ItemBase{ID: "l", Name: "mail", CreatedAt: created, UpdatedAt: created, Notes: sealed("bm90ZQ==")},
				User:     "ted",
				URL:      "https://mail.example.com",
				Password: &models.PasswordField{Value: sealed("cHc="), CreatedAt: created},
				PreviousPasswords: []*models.PasswordField{
					{Value: sealed("b2xk"), CreatedAt: created, ReplacedAt: &replaced},
				},
			},
			&models.CreditCard{
				ItemBase:     models.ItemBase{ID: "c", Name: "visa", CreatedAt: created, UpdatedAt: created},
				CardName:     "Ted",
				CardType:     "visa",
				ExpiresAt:    &expires,
				CardNumber:   sealed("NDExMQ=="),
				SecurityCode: sealed("MTIz"),
			},
			&models.BankAccount{
				ItemBase:      models.ItemBase{ID: "b", Name: "savings", CreatedAt: created, UpdatedAt: created},
				BankName:      "ANZ",
				SwiftCode:     "ANZBAU3M",
				AccountNumber: sealed("MTIzNDU="),
				AccountPin:    sealed("OTk5OQ=="),
			},
			&models.GeneratedPassword{
				ItemBase: models.ItemBase{ID: "g", Name: "gen", CreatedAt: created, UpdatedAt: created},
				URL:      "https://example.com",
				Password: &models.PasswordField{Value: sealed("Z2Vu"), CreatedAt: created},
			},
		},
	}

	blob, err := Encode(doc)
	require.NoError(t, err)

	got, err := Decode(blob, FormatV1)
	require.NoError(t, err)
	require.Len(t, got.Items, len(doc.Items))

	for _, want := range doc.Items {
		item := got.Find(want.Base().ID)
		require.NotNil(t, item, want.Base().ID)
		assert.Equal(t, want.Type(), item.Type())
		assert.Equal(t, want.Base().Name, item.Base().Name)
		assert.True(t, want.Base().CreatedAt.Equal(item.Base().CreatedAt))
	}

	login := got.Find("l").(*models.Login)
	assert.Equal(t, "ted", login.User)
	assert.True(t, login.Notes.Equal(sealed("bm90ZQ==")))
	require.Len(t, login.PreviousPasswords, 1)
	assert.True(t, replaced.Equal(*login.PreviousPasswords[0].ReplacedAt))

	card := got.Find("c").(*models.CreditCard)
	require.NotNil(t, card.ExpiresAt)
	assert.True(t, expires.Equal(*card.ExpiresAt))
	assert.Equal(t, "MTIz", card.SecurityCode.Ciphertext())

	bank := got.Find("b").(*models.BankAccount)
	assert.Equal(t, "ANZBAU3M", bank.SwiftCode)
	assert.Empty(t, bank.IBANNumber)
}

func TestEncode_Layout(t *testing.T) {
	blob, err := Encode(models.VaultDocument{Items: []models.VaultItem{
		&models.Login{ItemBase: models.ItemBase{ID: "l", Name: "n", CreatedAt: time.UnixMilli(0)}},
	}})
	require.NoError(t, err)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &out))
	for _, key := range []string{"bankAccount", "creditCard", "generatedPassword", "login", "schemaVersion"} {
		assert.Contains(t, out, key)
	}
	assert.JSONEq(t, `[]`, string(out["bankAccount"]))
	assert.JSONEq(t, `1.0`, string(out["schemaVersion"]))
	assert.Contains(t, string(blob), `"createdAt":"1970-01-01T00:00:00.00Z"`)
	assert.Contains(t, string(blob), `"type":"login"`)
	assert.NotContains(t, string(blob), `"user"`)
}

func TestEncode_UnsealedFieldRejected(t *testing.T) {
	_, err := Encode(models.VaultDocument{Items: []models.VaultItem{
		&models.Login{
			ItemBase: models.ItemBase{ID: "l"},
			Password: &models.PasswordField{Value: models.NewSecureField("plain")},
		},
	}})
	require.ErrorIs(t, err, ErrUnsealedField)
}

func TestEncode_UnknownItemPreserved(t *testing.T) {
	blob := `{"bankAccount":[],"creditCard":[],"generatedPassword":[],"login":[
		{"id":"p","name":"passport","createdAt":"1970-01-01T00:00:00Z","updatedAt":"1970-01-01T00:00:00Z","type":"passport","passportNumber":{"secureValue":"eHg="}}
	],"schemaVersion":1.0}`

	doc, err := Decode([]byte(blob), FormatV1)
	require.NoError(t, err)
	require.Len(t, doc.UnknownItems(), 1)
	unknown := doc.UnknownItems()[0]
	assert.Equal(t, "passport", unknown.TypeTag)
	assert.Equal(t, "login", unknown.Collection)
	assert.Equal(t, "p", unknown.ID)
	assert.Empty(t, doc.KnownItems())

	out, err := Encode(doc)
	require.NoError(t, err)

	var w wireVault
	require.NoError(t, json.Unmarshal(out, &w))
	require.Len(t, w.Login, 1)
	assert.JSONEq(t, string(unknown.Raw), string(w.Login[0]))
}

func TestEncode_UnknownItemWithoutCollection(t *testing.T) {
	_, err := Encode(models.VaultDocument{Items: []models.VaultItem{
		&models.UnknownItem{ItemBase: models.ItemBase{ID: "x"}, Raw: json.RawMessage(`{}`)},
	}})
	require.ErrorIs(t, err, ErrUnsupportedItem)
}

// ── DecodeVault / DecodeVaults ───────────────────────────────────────────────

func rawVault(id, blob string) models.RawVault {
	return models.RawVault{
		VaultMetadata: models.VaultMetadata{
			ID:         id,
			BlobFormat: FormatV1,
			CreatedAt:  time.UnixMilli(0).UTC(),
			UpdatedAt:  time.UnixMilli(1).UTC(),
			Version:    3,
			Owners:     []models.Owner{{ID: "sudo-1", Issuer: models.OwnerIssuerSudoService}},
		},
		Blob: []byte(blob),
	}
}

func TestDecodeVault(t *testing.T) {
	record, err := DecodeVault(rawVault("v1", fixtureBlob))
	require.NoError(t, err)

	assert.Equal(t, "v1", record.ID)
	assert.Equal(t, 3, record.Version)
	assert.Equal(t, FormatV1, record.BlobFormat)
	assert.Equal(t, []models.Owner{{ID: "sudo-1", Issuer: models.OwnerIssuerSudoService}}, record.Owners)
	assert.Len(t, record.Document.Items, 3)
}

func TestDecodeVaults_PartialFailure(t *testing.T) {
	records, err := DecodeVaults([]models.RawVault{
		rawVault("good", fixtureBlob),
		rawVault("bad-1", `garbage`),
		rawVault("bad-2", `{"login":[1]}`),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedVault)
	assert.Contains(t, err.Error(), "bad-1")
	assert.Contains(t, err.Error(), "bad-2")

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.Len(t, joined.Unwrap(), 2)

	require.Len(t, records, 1)
	assert.Equal(t, "good", records[0].ID)
}

func TestDecodeVaults_Empty(t *testing.T) {
	records, err := DecodeVaults(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
