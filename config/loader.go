package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config = Default()

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TRACESNAP_"

var validate = validator.New()

// LoadAppConfig loads the configuration from path, or from the first
// config.yml candidate when path is empty, applies environment overrides,
// validates it and stores it in Config. With no path and no candidate file
// the defaults are used.
func LoadAppConfig(path string) error {
	cfg := Default()

	data, err := readConfigFile(path)
	if err != nil {
		return err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return err
	}
	if err := Validate(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func readConfigFile(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return data, nil
	}
	for _, p := range []string{"config.yml", "./config/config.yml"} {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
	}
	return nil, nil
}

// LoadDotEnv seeds the process environment from .env style files. Files
// that do not exist are ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overlays TRACESNAP_* variables onto cfg.
func ApplyEnv(cfg *AppConfig) error {
	strs := map[string]*string{
		"NETWORK":    &cfg.Input.Network,
		"TRACE":      &cfg.Input.Trace,
		"GTFS":       &cfg.Input.GTFS,
		"GTFS_ROUTE": &cfg.Input.GTFSRoute,
		"VEHICLE":    &cfg.Input.Vehicle,
		"OUT":        &cfg.Output.Path,
		"FORMAT":     &cfg.Output.Format,
		"SVG":        &cfg.Output.SVG,
		"LOG_LEVEL":  &cfg.Logging.Level,
	}
	for k, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + k); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"PORT":       &cfg.Server.Port,
		"WORKERS":    &cfg.Snap.Workers,
		"TIMEOUT_MS": &cfg.Input.TimeoutMS,
	}
	for k, dst := range ints {
		v, ok := os.LookupEnv(EnvPrefix + k)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, k, err)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv(EnvPrefix + "GTFSRT"); ok {
		cfg.Input.GTFSRT = nil
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Input.GTFSRT = append(cfg.Input.GTFSRT, s)
			}
		}
	}
	return nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
