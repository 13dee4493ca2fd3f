package beca

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied to every empty Config field.
const (
	DefaultURL       = "mongodb://localhost:27017"
	DefaultDBName    = "beca"
	DefaultSources   = "sources"
	DefaultMappings  = "mappings"
	DefaultTargets   = "targets"
	DefaultResponses = "responses"
)

// Config configures the container. Every field is optional; empty fields
// take the package defaults.
type Config struct {
	// URL is the MongoDB connection string.
	URL string `yaml:"url" json:"url"`

	// DBName is the database holding every collection.
	DBName string `yaml:"dbname" json:"dbname"`

	// Collection name overrides.
	Sources   string `yaml:"sources" json:"sources"`
	Mappings  string `yaml:"mappings" json:"mappings"`
	Targets   string `yaml:"targets" json:"targets"`
	Responses string `yaml:"responses" json:"responses"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{}.WithDefaults()
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c Config) WithDefaults() Config {
	c.URL = orDefault(c.URL, DefaultURL)
	c.DBName = orDefault(c.DBName, DefaultDBName)
	c.Sources = orDefault(c.Sources, DefaultSources)
	c.Mappings = orDefault(c.Mappings, DefaultMappings)
	c.Targets = orDefault(c.Targets, DefaultTargets)
	c.Responses = orDefault(c.Responses, DefaultResponses)
	return c
}

// Merge returns c with every non-empty field of other applied on top.
func (c Config) Merge(other Config) Config {
	c.URL = orDefault(other.URL, c.URL)
	c.DBName = orDefault(other.DBName, c.DBName)
	c.Sources = orDefault(other.Sources, c.Sources)
	c.Mappings = orDefault(other.Mappings, c.Mappings)
	c.Targets = orDefault(other.Targets, c.Targets)
	c.Responses = orDefault(other.Responses, c.Responses)
	return c
}

// Override keys accepted by ConfigFromMap.
const (
	KeyURL       = "URL"
	KeyDBName    = "DBNAME"
	KeySources   = "SOURCES"
	KeyMappings  = "MAPPINGS"
	KeyTargets   = "TARGETS"
	KeyResponses = "RESPONSES"
)

// ConfigFromMap builds a Config from override keys such as
// {"DBNAME": "test", "SOURCES": "custom_sources"}. Unrecognized keys are
// ignored.
func ConfigFromMap(overrides map[string]string) Config {
	return Config{
		URL:       overrides[KeyURL],
		DBName:    overrides[KeyDBName],
		Sources:   overrides[KeySources],
		Mappings:  overrides[KeyMappings],
		Targets:   overrides[KeyTargets],
		Responses: overrides[KeyResponses],
	}
}

// EnvPrefix prefixes every environment override, e.g. BECA_DBNAME.
const EnvPrefix = "BECA_"

// FromEnv returns c overridden by the BECA_* variables found by lookup.
// A nil lookup uses os.LookupEnv.
func (c Config) FromEnv(lookup func(string) (string, bool)) Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	overrides := make(map[string]string)
	for _, key := range []string{KeyURL, KeyDBName, KeySources, KeyMappings, KeyTargets, KeyResponses} {
		if v, ok := lookup(EnvPrefix + key); ok {
			overrides[key] = v
		}
	}
	return c.Merge(ConfigFromMap(overrides))
}

// LoadConfig reads a YAML configuration file. Unknown keys are ignored and
// missing keys are left empty.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
