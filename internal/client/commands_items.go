package client

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

func (a *App) listItems(ctx context.Context, args []string) error {
	items, err := a.engine.ListVaultItems(ctx, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tNAME")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Base().ID, item.Type(), item.Base().Name)
	}
	return w.Flush()
}

func (a *App) showItem(ctx context.Context, args []string) error {
	item, err := a.getItem(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(w, "%s:\t%s\n", name, value)
		}
	}
	secure := func(name string, f *models.SecureField) {
		if f != nil {
			field(name, masked)
		}
	}

	base := item.Base()
	field("id", base.ID)
	field("type", item.Type().String())
	field("name", base.Name)
	field("created", base.CreatedAt.Format(time.RFC3339))
	field("updated", base.UpdatedAt.Format(time.RFC3339))

	switch it := item.(type) {
	case *models.Login:
		field("user", it.User)
		field("url", it.URL)
		if it.Password != nil {
			secure("password", it.Password.Value)
		}
		if n := len(it.PreviousPasswords); n > 0 {
			field("previous passwords", fmt.Sprint(n))
		}
	case *models.CreditCard:
		field("card", it.CardName)
		field("card type", it.CardType)
		secure("number", it.CardNumber)
		secure("security code", it.SecurityCode)
	case *models.BankAccount:
		field("bank", it.BankName)
		field("account type", it.AccountType)
		field("iban", it.IBANNumber)
		secure("account number", it.AccountNumber)
		secure("pin", it.AccountPin)
	case *models.GeneratedPassword:
		field("url", it.URL)
		if it.Password != nil {
			secure("password", it.Password.Value)
		}
	case *models.UnknownItem:
		field("type tag", it.TypeTag)
	}
	secure("notes", base.Notes)

	return w.Flush()
}

func (a *App) addLogin(ctx context.Context, args []string) error {
	password, err := a.term.ReadPassword("password: ")
	if err != nil {
		return err
	}

	login := &models.Login{
		ItemBase: models.ItemBase{ID: args[1], Name: args[2]},
		Password: &models.PasswordField{Value: models.NewSecureField(password), CreatedAt: a.now()},
	}
	if len(args) > 3 {
		login.User = args[3]
	}
	if len(args) > 4 {
		login.URL = args[4]
	}
	return a.addItem(ctx, login, args[0])
}

func (a *App) addCard(ctx context.Context, args []string) error {
	number, err := a.term.ReadPassword("card number: ")
	if err != nil {
		return err
	}
	code, err := a.term.ReadPassword("security code: ")
	if err != nil {
		return err
	}

	card := &models.CreditCard{
		ItemBase:     models.ItemBase{ID: args[1], Name: args[2]},
		CardNumber:   models.NewSecureField(number),
		SecurityCode: models.NewSecureField(code),
	}
	if len(args) > 3 {
		card.CardName = strings.Join(args[3:], " ")
	}
	return a.addItem(ctx, card, args[0])
}

func (a *App) addBank(ctx context.Context, args []string) error {
	number, err := a.term.ReadPassword("account number: ")
	if err != nil {
		return err
	}
	pin, err := a.term.ReadPassword("pin: ")
	if err != nil {
		return err
	}

	account := &models.BankAccount{
		ItemBase:      models.ItemBase{ID: args[1], Name: args[2]},
		AccountNumber: models.NewSecureField(number),
		AccountPin:    models.NewSecureField(pin),
	}
	if len(args) > 3 {
		account.BankName = strings.Join(args[3:], " ")
	}
	return a.addItem(ctx, account, args[0])
}

func (a *App) addItem(ctx context.Context, item models.VaultItem, vaultID string) error {
	if err := a.engine.AddVaultItem(ctx, item, vaultID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "saved %s\n", item.Base().ID)
	return nil
}

func (a *App) rename(ctx context.Context, args []string) error {
	item, err := a.getItem(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	item.Base().Name = strings.Join(args[2:], " ")
	if err = a.engine.UpdateVaultItem(ctx, item, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "renamed %s\n", args[1])
	return nil
}

// setPassword replaces the password of a login and keeps the old one in
// the password history.
func (a *App) setPassword(ctx context.Context, args []string) error {
	item, err := a.getItem(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	login, ok := item.(*models.Login)
	if !ok {
		return fmt.Errorf("%w: %s is a %s", ErrUsage, args[1], item.Type())
	}

	password, err := a.term.ReadPassword("new password: ")
	if err != nil {
		return err
	}

	now := a.now()
	if login.Password != nil {
		previous := *login.Password
		previous.ReplacedAt = &now
		login.PreviousPasswords = append(login.PreviousPasswords, &previous)
	}
	login.Password = &models.PasswordField{Value: models.NewSecureField(password), CreatedAt: now}

	if err = a.engine.UpdateVaultItem(ctx, login, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "password of %s changed\n", args[1])
	return nil
}

func (a *App) removeItem(ctx context.Context, args []string) error {
	if err := a.engine.RemoveVaultItem(ctx, args[1], args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "removed %s\n", args[1])
	return nil
}

func (a *App) reveal(ctx context.Context, args []string) error {
	secret, err := a.revealSecret(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, secret)
	return nil
}

func (a *App) copySecret(ctx context.Context, args []string) error {
	secret, err := a.revealSecret(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if err = a.clip(secret); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintln(a.out, "copied to clipboard")
	return nil
}

func (a *App) revealSecret(ctx context.Context, vaultID, itemID string) (string, error) {
	item, err := a.getItem(ctx, vaultID, itemID)
	if err != nil {
		return "", err
	}
	field := primarySecret(item)
	if field == nil {
		return "", ErrNothingToReveal
	}
	return field.Reveal()
}

func (a *App) getItem(ctx context.Context, vaultID, itemID string) (models.VaultItem, error) {
	item, err := a.engine.GetVaultItem(ctx, itemID, vaultID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s in vault %s", ErrItemNotFound, itemID, vaultID)
	}
	return item, nil
}

// primarySecret is the field reveal and copy act on.
func primarySecret(item models.VaultItem) *models.SecureField {
	switch it := item.(type) {
	case *models.Login:
		if it.Password != nil {
			return it.Password.Value
		}
	case *models.GeneratedPassword:
		if it.Password != nil {
			return it.Password.Value
		}
	case *models.CreditCard:
		return it.CardNumber
	case *models.BankAccount:
		return it.AccountNumber
	}
	return nil
}
