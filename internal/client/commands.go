// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/models"
)

const masked = "********"

func (a *App) commandTable() map[string]command {
	return map[string]command{
		"help":         {usage: "help", run: a.help},
		"status":       {usage: "status", run: a.status},
		"register":     {usage: "register", run: a.register},
		"unlock":       {usage: "unlock [secret-code]", run: a.unlock},
		"lock":         {usage: "lock", run: a.lock},
		"code":         {usage: "code", run: a.secretCode},
		"passwd":       {usage: "passwd", run: a.changePassword},
		"reset":        {usage: "reset", run: a.reset},
		"deregister":   {usage: "deregister", run: a.deregister},
		"vaults":       {usage: "vaults", run: a.listVaults},
		"create-vault": {usage: "create-vault <owner-id>", minArgs: 1, run: a.createVault},
		"delete-vault": {usage: "delete-vault <vault-id>", minArgs: 1, run: a.deleteVault},
		"items":        {usage: "items <vault-id>", minArgs: 1, run: a.listItems},
		"show":         {usage: "show <vault-id> <item-id>", minArgs: 2, run: a.showItem},
		"add-login":    {usage: "add-login <vault-id> <item-id> <name> [user] [url]", minArgs: 3, run: a.addLogin},
		"add-card":     {usage: "add-card <vault-id> <item-id> <name> [card-name]", minArgs: 3, run: a.addCard},
		"add-bank":     {usage: "add-bank <vault-id> <item-id> <name> [bank-name]", minArgs: 3, run: a.addBank},
		"rename":       {usage: "rename <vault-id> <item-id> <name>", minArgs: 3, run: a.rename},
		"set-password": {usage: "set-password <vault-id> <login-id>", minArgs: 2, run: a.setPassword},
		"remove":       {usage: "remove <vault-id> <item-id>", minArgs: 2, run: a.removeItem},
		"reveal":       {usage: "reveal <vault-id> <item-id>", minArgs: 2, run: a.reveal},
		"copy":         {usage: "copy <vault-id> <item-id>", minArgs: 2, run: a.copySecret},
		"entitlements": {usage: "entitlements", run: a.entitlements},
	}
}

// ── Session ──────────────────────────────────────────────────────────────────

func (a *App) status(ctx context.Context, _ []string) error {
	st, err := a.engine.GetRegistrationStatus(ctx)
	if err != nil {
		return err
	}
	session := "unlocked"
	if a.engine.IsLocked() {
		session = "locked"
	}
	fmt.Fprintf(a.out, "registration: %s\nsession: %s\n", st, session)
	return nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	password, err := a.newPassword("new master password: ")
	if err != nil {
		return err
	}
	if err = a.engine.Register(ctx, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "registered, run 'code' and keep the secret code somewhere safe")
	return nil
}

func (a *App) unlock(ctx context.Context, args []string) error {
	password, err := a.term.ReadPassword("master password: ")
	if err != nil {
		return err
	}

	err = a.engine.Unlock(ctx, password, strings.Join(args, ""))
	if errors.Is(err, app.ErrInvalidFormat) && !a.engine.IsLocked() {
		fmt.Fprintf(a.out, "unlocked, some vaults could not be read: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "unlocked")
	return nil
}

func (a *App) lock(context.Context, []string) error {
	a.engine.Lock()
	fmt.Fprintln(a.out, "locked")
	return nil
}

func (a *App) secretCode(ctx context.Context, _ []string) error {
	code, ok, err := a.engine.GetSecretCode(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "no key is cached on this device, unlock with your secret code first")
		return nil
	}
	fmt.Fprintln(a.out, code)
	return nil
}

func (a *App) changePassword(ctx context.Context, _ []string) error {
	oldPassword, err := a.term.ReadPassword("current master password: ")
	if err != nil {
		return err
	}
	newPassword, err := a.newPassword("new master password: ")
	if err != nil {
		return err
	}
	if err = a.engine.ChangeMasterPassword(ctx, oldPassword, newPassword); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "master password changed")
	return nil
}

func (a *App) reset(ctx context.Context, _ []string) error {
	if err := a.confirm("this deletes every vault and the cached key"); err != nil {
		return err
	}
	if err := a.engine.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "reset")
	return nil
}

func (a *App) deregister(ctx context.Context, _ []string) error {
	if err := a.confirm("this deletes your registration and every vault"); err != nil {
		return err
	}
	if err := a.engine.Deregister(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "deregistered")
	return nil
}

// ── Vaults ───────────────────────────────────────────────────────────────────

func (a *App) listVaults(ctx context.Context, _ []string) error {
	vaults, err := a.engine.ListVaults(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVERSION\tUPDATED\tOWNERS")
	for _, v := range vaults {
		owners := make([]string, 0, len(v.Owners))
		for _, o := range v.Owners {
			if o.Issuer == models.OwnerIssuerSudoService {
				owners = append(owners, o.ID)
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", v.ID, v.Version, v.UpdatedAt.Format(time.RFC3339), strings.Join(owners, ","))
	}
	return w.Flush()
}

func (a *App) createVault(ctx context.Context, args []string) error {
	v, err := a.engine.CreateVault(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created vault %s\n", v.ID)
	return nil
}

func (a *App) deleteVault(ctx context.Context, args []string) error {
	if err := a.engine.DeleteVault(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted vault %s\n", args[0])
	return nil
}

func (a *App) entitlements(ctx context.Context, _ []string) error {
	states, err := a.engine.GetEntitlementState(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OWNER\tVAULTS\tLIMIT")
	for _, s := range states {
		fmt.Fprintf(w, "%s\t%d\t%d\n", s.OwnerID, s.Value, s.Limit)
	}
	return w.Flush()
}
