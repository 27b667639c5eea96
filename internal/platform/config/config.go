// Package config resolves runtime settings for the persondesk client and the
// fake backend: built-in defaults, then an optional YAML file, then the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"persondesk/pkg/platform/sentinel"
)

const (
	DefaultAPIURL         = "http://localhost:8000"
	DefaultRequestTimeout = 10 * time.Second
	DefaultMessageTTL     = 3 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultFakeAPIAddr    = ":8000"
)

// Client captures the settings of the persondesk client.
type Client struct {
	APIURL         string        `yaml:"api_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// MessageTTL is how long a toast stays visible.
	MessageTTL  time.Duration `yaml:"message_ttl"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`
	LogFile     string        `yaml:"log_file"`
	MetricsAddr string        `yaml:"metrics_addr"`
}

// FakeAPI captures the settings of the in-memory development backend.
type FakeAPI struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
}

type file struct {
	Client  Client  `yaml:"client"`
	FakeAPI FakeAPI `yaml:"fakeapi"`
}

// Defaults returns the client settings used when nothing else is configured.
func Defaults() Client {
	return Client{
		APIURL:         DefaultAPIURL,
		RequestTimeout: DefaultRequestTimeout,
		MessageTTL:     DefaultMessageTTL,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
}

// Load resolves the client settings. path may be empty; a missing file at a
// non-empty path is an error.
func Load(path string) (Client, error) {
	cfg := Defaults()
	if path != "" {
		f, err := readFile(path)
		if err != nil {
			return Client{}, err
		}
		merge(&cfg, f.Client)
	}
	if err := applyEnv(&cfg); err != nil {
		return Client{}, err
	}
	return cfg, cfg.Validate()
}

// LoadFakeAPI resolves the fake backend settings the same way as Load.
func LoadFakeAPI(path string) (FakeAPI, error) {
	cfg := FakeAPI{Addr: DefaultFakeAPIAddr, LogLevel: DefaultLogLevel}
	if path != "" {
		f, err := readFile(path)
		if err != nil {
			return FakeAPI{}, err
		}
		if f.FakeAPI.Addr != "" {
			cfg.Addr = f.FakeAPI.Addr
		}
		if f.FakeAPI.LogLevel != "" {
			cfg.LogLevel = f.FakeAPI.LogLevel
		}
	}
	if v := os.Getenv("FAKEAPI_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FAKEAPI_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

// Validate rejects settings the client cannot run with.
func (c Client) Validate() error {
	var errs []error
	if c.APIURL == "" {
		errs = append(errs, fmt.Errorf("api_url is required: %w", sentinel.ErrInvalidInput))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request_timeout must be positive: %w", sentinel.ErrInvalidInput))
	}
	if c.MessageTTL <= 0 {
		errs = append(errs, fmt.Errorf("message_ttl must be positive: %w", sentinel.ErrInvalidInput))
	}
	return errors.Join(errs...)
}

func readFile(path string) (file, error) {
	var f file
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

func merge(dst *Client, src Client) {
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
	}
	if src.RequestTimeout > 0 {
		dst.RequestTimeout = src.RequestTimeout
	}
	if src.MessageTTL > 0 {
		dst.MessageTTL = src.MessageTTL
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFormat != "" {
		dst.LogFormat = src.LogFormat
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
	if src.MetricsAddr != "" {
		dst.MetricsAddr = src.MetricsAddr
	}
}

func applyEnv(cfg *Client) error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) error {
		v := os.Getenv(key)
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, sentinel.ErrInvalidInput)
		}
		*dst = d
		return nil
	}

	setString("PERSONDESK_API_URL", &cfg.APIURL)
	setString("PERSONDESK_LOG_LEVEL", &cfg.LogLevel)
	setString("PERSONDESK_LOG_FORMAT", &cfg.LogFormat)
	setString("PERSONDESK_LOG_FILE", &cfg.LogFile)
	setString("PERSONDESK_METRICS_ADDR", &cfg.MetricsAddr)
	if err := setDuration("PERSONDESK_REQUEST_TIMEOUT", &cfg.RequestTimeout); err != nil {
		return err
	}
	return setDuration("PERSONDESK_MESSAGE_TTL", &cfg.MessageTTL)
}
