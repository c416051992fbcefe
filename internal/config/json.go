package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashTime    uint32   `json:"password_hash_time"`
		PasswordHashMemory  uint32   `json:"password_hash_memory"`
		PasswordHashThreads uint8    `json:"password_hash_threads"`
		SessionTransport    string   `json:"session_transport"`
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		CookieAuthKey       string   `json:"cookie_auth_key"`
		CookieEncryptionKey string   `json:"cookie_encryption_key"`
		HashKey             string   `json:"hash_key"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Gallery struct {
		CatalogPath       string   `json:"catalog_path"`
		S3Endpoint        string   `json:"s3_endpoint"`
		S3Region          string   `json:"s3_region"`
		S3Bucket          string   `json:"s3_bucket"`
		S3AccessKeyID     string   `json:"s3_access_key_id"`
		S3SecretAccessKey string   `json:"s3_secret_access_key"`
		LinkTTL           Duration `json:"link_ttl"`
	} `json:"gallery,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
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
			PasswordHashTime:    jsonCfg.App.PasswordHashTime,
			PasswordHashMemory:  jsonCfg.App.PasswordHashMemory,
			PasswordHashThreads: jsonCfg.App.PasswordHashThreads,
			SessionTransport:    jsonCfg.App.SessionTransport,
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			CookieAuthKey:       jsonCfg.App.CookieAuthKey,
			CookieEncryptionKey: jsonCfg.App.CookieEncryptionKey,
			HashKey:             jsonCfg.App.HashKey,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Gallery: Gallery{
			CatalogPath:       jsonCfg.Gallery.CatalogPath,
			S3Endpoint:        jsonCfg.Gallery.S3Endpoint,
			S3Region:          jsonCfg.Gallery.S3Region,
			S3Bucket:          jsonCfg.Gallery.S3Bucket,
			S3AccessKeyID:     jsonCfg.Gallery.S3AccessKeyID,
			S3SecretAccessKey: jsonCfg.Gallery.S3SecretAccessKey,
			LinkTTL:           time.Duration(jsonCfg.Gallery.LinkTTL),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		JSONFilePath: "",
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
