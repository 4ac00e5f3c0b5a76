package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON config file.
// Durations accept both Go duration strings ("30s") and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Snapshots struct {
			Backend  string `json:"backend"`
			BaseDir  string `json:"base_dir"`
			Prefix   string `json:"prefix"`
			Bucket   string `json:"bucket"`
			Region   string `json:"region"`
			Endpoint string `json:"endpoint"`
			WorkDir  string `json:"work_dir"`
		} `json:"snapshots,omitempty"`
	} `json:"storage,omitempty"`

	Redis struct {
		Address  string `json:"address"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis,omitempty"`

	Queue struct {
		Backend          string `json:"backend"`
		SQSURL           string `json:"sqs_url"`
		SQSDeadLetterURL string `json:"sqs_dead_letter_url"`
		Region           string `json:"region"`
		LocalPath        string `json:"local_path"`
		Lanes            int    `json:"lanes"`
	} `json:"queue,omitempty"`

	Workers struct {
		Enabled         bool     `json:"enabled"`
		Concurrency     int      `json:"concurrency"`
		LockTTL         Duration `json:"lock_ttl"`
		PendingTTL      Duration `json:"pending_ttl"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"workers,omitempty"`

	Notify struct {
		PushURL   string   `json:"push_url"`
		PushToken string   `json:"push_token"`
		Timeout   Duration `json:"timeout"`
		Retries   int      `json:"retries"`
	} `json:"notify,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	LogLevel string `json:"log_level"`
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
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Snapshots: Snapshots{
				Backend:  jsonCfg.Storage.Snapshots.Backend,
				BaseDir:  jsonCfg.Storage.Snapshots.BaseDir,
				Prefix:   jsonCfg.Storage.Snapshots.Prefix,
				Bucket:   jsonCfg.Storage.Snapshots.Bucket,
				Region:   jsonCfg.Storage.Snapshots.Region,
				Endpoint: jsonCfg.Storage.Snapshots.Endpoint,
				WorkDir:  jsonCfg.Storage.Snapshots.WorkDir,
			},
		},
		Redis: Redis{
			Address:  jsonCfg.Redis.Address,
			Password: jsonCfg.Redis.Password,
			DB:       jsonCfg.Redis.DB,
		},
		Queue: Queue{
			Backend:          jsonCfg.Queue.Backend,
			SQSURL:           jsonCfg.Queue.SQSURL,
			SQSDeadLetterURL: jsonCfg.Queue.SQSDeadLetterURL,
			Region:           jsonCfg.Queue.Region,
			LocalPath:        jsonCfg.Queue.LocalPath,
			Lanes:            jsonCfg.Queue.Lanes,
		},
		Workers: Workers{
			Enabled:         jsonCfg.Workers.Enabled,
			Concurrency:     jsonCfg.Workers.Concurrency,
			LockTTL:         time.Duration(jsonCfg.Workers.LockTTL),
			PendingTTL:      time.Duration(jsonCfg.Workers.PendingTTL),
			ShutdownTimeout: time.Duration(jsonCfg.Workers.ShutdownTimeout),
		},
		Notify: Notify{
			PushURL:   jsonCfg.Notify.PushURL,
			PushToken: jsonCfg.Notify.PushToken,
			Timeout:   time.Duration(jsonCfg.Notify.Timeout),
			Retries:   jsonCfg.Notify.Retries,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		LogLevel: jsonCfg.LogLevel,
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
