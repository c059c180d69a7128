package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/keystore"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/awnumar/memguard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Ctrl-C wipes every enclave before exiting
	memguard.CatchInterrupt()

	code := 0
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vaultctl: %v\n", err)
		code = 1
	}

	memguard.Purge()
	os.Exit(code)
}

func run() error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	// stdout belongs to the shell, so logs go to a file or nowhere
	log := logger.Nop()
	if cfg.Log.File != "" {
		log = logger.NewFileLogger("vaultctl", cfg.Log.File)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	keys, closeKeys, err := keystore.New(cfg.Keystore, log)
	if err != nil {
		return fmt.Errorf("open key store: %w", err)
	}
	defer closeKeys()

	identity, err := adapter.NewStaticIdentity(cfg.App)
	if err != nil {
		return fmt.Errorf("resolve identity: %w", err)
	}

	profiles, err := adapter.NewLocalProfiles(cfg.Profiles, log)
	if err != nil {
		return fmt.Errorf("create profile service: %w", err)
	}

	backend := adapter.NewLocalSecureVault(store.NewRepositories(db, log), crypto.NewKeyChainService(), identity, profiles, log)

	engine := service.NewVaultEngine(service.Collaborators{
		Backend:      backend,
		Profiles:     profiles,
		Identity:     identity,
		Entitlements: adapter.NewStaticEntitlements(cfg.Entitlements),
		Keys:         keys,
	}, crypto.NewSecureFieldCrypto(), log)

	log.Info().Str("driver", cfg.Storage.DB.Driver).Str("keystore", cfg.Keystore.Backend).Msg("vault engine ready")

	shell := client.NewApp(engine, workers.NewWorkers(cfg.Workers, engine, log), client.NewConsole(os.Stdin, os.Stdout), os.Stdout, log)
	return shell.Run(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
