package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     []string{},
			expected: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-user-id", "u1",
				"-subject", "s1",
				"-id-token", "tok",
				"-db-driver", "pgx",
				"-d", "postgres://localhost/db",
				"-keystore", "memory",
				"-keystore-path", "/tmp/k.db",
				"-keystore-service", "svc",
				"-sign-key", "key",
				"-owners", "sudo-1, sudo-2,",
				"-proof-ttl", "1m",
				"-max-vaults", "4",
				"-auto-lock", "5m",
				"-log-file", "/tmp/log",
				"-c", "/tmp/config.json",
			},
			expected: &StructuredConfig{
				App:          App{UserID: "u1", Subject: "s1", IDToken: "tok"},
				Storage:      Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/db"}},
				Keystore:     Keystore{Backend: "memory", Path: "/tmp/k.db", Service: "svc"},
				Profiles:     Profiles{SignKey: "key", Owners: []string{"sudo-1", "sudo-2"}, ProofTTL: time.Minute},
				Entitlements: Entitlements{MaxVaultsPerSudo: 4},
				Workers:      Workers{AutoLockAfter: 5 * time.Minute},
				Log:          Log{File: "/tmp/log"},
				JSONFilePath: "/tmp/config.json",
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/vault.json"},
			expected: &StructuredConfig{
				JSONFilePath: "/etc/vault.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			assert.Equal(t, tt.expected, ParseFlags())
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b "))
}
