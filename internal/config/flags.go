package config

import (
	"flag"
	"strings"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-user-id current user id
//	-subject identity subject used for the secret code prefix
//	-id-token identity token
//	-db-driver database driver (sqlite3 | pgx)
//	-d database DSN
//	-keystore KDK store backend (keyring | bolt | memory)
//	-keystore-path bbolt key store file
//	-keystore-service OS keyring service name
//	-sign-key ownership proof signing key
//	-owners comma-separated profile ids
//	-proof-ttl ownership proof lifetime (e.g., "5m")
//	-max-vaults vault limit per profile
//	-auto-lock idle time before auto-lock (e.g., "10m")
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var userID, subject, idToken string
	var dbDriver, databaseDSN string
	var keystoreBackend, keystorePath, keystoreService string
	var signKey, owners string
	var proofTTL, autoLock time.Duration
	var maxVaults int
	var logFile string
	var jsonConfigPath string

	flag.StringVar(&userID, "user-id", "", "Current user id")
	flag.StringVar(&subject, "subject", "", "Identity subject")
	flag.StringVar(&idToken, "id-token", "", "Identity token")
	flag.StringVar(&dbDriver, "db-driver", "", "Database driver (sqlite3, pgx)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&keystoreBackend, "keystore", "", "Key store backend (keyring, bolt, memory)")
	flag.StringVar(&keystorePath, "keystore-path", "", "bbolt key store file")
	flag.StringVar(&keystoreService, "keystore-service", "", "OS keyring service name")
	flag.StringVar(&signKey, "sign-key", "", "Ownership proof signing key")
	flag.StringVar(&owners, "owners", "", "Comma-separated profile ids")
	flag.DurationVar(&proofTTL, "proof-ttl", 0, "Ownership proof lifetime (e.g., 5m)")
	flag.IntVar(&maxVaults, "max-vaults", 0, "Vault limit per profile")
	flag.DurationVar(&autoLock, "auto-lock", 0, "Idle time before auto-lock (e.g., 10m)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			UserID:  userID,
			Subject: subject,
			IDToken: idToken,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Keystore: Keystore{
			Backend: keystoreBackend,
			Path:    keystorePath,
			Service: keystoreService,
		},
		Profiles: Profiles{
			SignKey:  signKey,
			Owners:   splitList(owners),
			ProofTTL: proofTTL,
		},
		Entitlements: Entitlements{MaxVaultsPerSudo: maxVaults},
		Workers:      Workers{AutoLockAfter: autoLock},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
