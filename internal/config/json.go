package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		UserID  string `json:"user_id"`
		Subject string `json:"subject"`
		IDToken string `json:"id_token"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Keystore struct {
		Backend string `json:"backend"`
		Path    string `json:"path"`
		Service string `json:"service"`
	} `json:"keystore,omitempty"`

	Profiles struct {
		SignKey  string   `json:"sign_key"`
		Owners   []string `json:"owners"`
		ProofTTL Duration `json:"proof_ttl"`
	} `json:"profiles,omitempty"`

	Entitlements struct {
		MaxVaultsPerSudo int `json:"max_vaults_per_sudo"`
	} `json:"entitlements,omitempty"`

	Workers struct {
		AutoLockAfter Duration `json:"auto_lock_after"`
	} `json:"workers,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			UserID:  jsonCfg.App.UserID,
			Subject: jsonCfg.App.Subject,
			IDToken: jsonCfg.App.IDToken,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Keystore: Keystore{
			Backend: jsonCfg.Keystore.Backend,
			Path:    jsonCfg.Keystore.Path,
			Service: jsonCfg.Keystore.Service,
		},
		Profiles: Profiles{
			SignKey:  jsonCfg.Profiles.SignKey,
			Owners:   jsonCfg.Profiles.Owners,
			ProofTTL: time.Duration(jsonCfg.Profiles.ProofTTL),
		},
		Entitlements: Entitlements{MaxVaultsPerSudo: jsonCfg.Entitlements.MaxVaultsPerSudo},
		Workers:      Workers{AutoLockAfter: time.Duration(jsonCfg.Workers.AutoLockAfter)},
		Log:          Log{File: jsonCfg.Log.File},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
