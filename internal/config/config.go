package config

import (
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/arcalc/internal/model"
)

// Data source kinds.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Calculator holds all configuration for the arcalc CLI.
type Calculator struct {
	LogLevel string `yaml:"log_level"`

	Data   DataConfig   `yaml:"data"`
	Rules  RulesConfig  `yaml:"rules"`
	Search SearchConfig `yaml:"search"`
	Chart  ChartConfig  `yaml:"chart"`
}

// DataConfig selects where the weapon reference data comes from.
type DataConfig struct {
	Source     string         `yaml:"source"` // embedded | file | postgres | sqlite
	File       string         `yaml:"file"`
	SQLitePath string         `yaml:"sqlite_path"`
	Database   DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RulesConfig — игровые константы калькулятора.
type RulesConfig struct {
	TwoHandingMultiplier float64 `yaml:"two_handing_multiplier"`
	IneffectivePenalty   float64 `yaml:"ineffective_penalty"`
	GatePassiveScaling   bool    `yaml:"gate_passive_scaling"`
}

// SearchConfig — значения экрана поиска по умолчанию.
type SearchConfig struct {
	Attributes    model.Attributes   `yaml:"attributes"`
	UpgradeLevel  int                `yaml:"upgrade_level"`
	TwoHanding    bool               `yaml:"two_handing"`
	WeaponTypes   []model.WeaponType `yaml:"weapon_types"`
	Affinities    []model.Affinity   `yaml:"affinities"`
	MaxWeight     float64            `yaml:"max_weight"` // 0 = no limit
	EffectiveOnly bool               `yaml:"effective_only"`
	SplitDamage   bool               `yaml:"split_damage"`
	SortBy        string             `yaml:"sort_by"`
	Descending    bool               `yaml:"descending"`
	Workers       int                `yaml:"workers"` // 0 = GOMAXPROCS
}

// WeightLimit returns MaxWeight with 0 meaning "no limit".
func (s SearchConfig) WeightLimit() float64 {
	if s.MaxWeight == 0 {
		return math.Inf(1)
	}
	return s.MaxWeight
}

// ChartConfig — параметры HTML-графика.
type ChartConfig struct {
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
	Theme  string `yaml:"theme"`
	Output string `yaml:"output"`
}

// DefaultCalculator returns Calculator config with sensible defaults.
func DefaultCalculator() Calculator {
	return Calculator{
		LogLevel: "info",
		Data: DataConfig{
			Source:     SourceEmbedded,
			SQLitePath: "arcalc.db",
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "arcalc",
				Password: "arcalc",
				DBName:   "arcalc",
				SSLMode:  "disable",
			},
		},
		Rules: RulesConfig{
			TwoHandingMultiplier: 1.5,
			IneffectivePenalty:   0.4,
		},
		Search: SearchConfig{
			Attributes: model.Attributes{Str: 10, Dex: 10, Int: 10, Fai: 10, Arc: 10},
			SortBy:     "attack",
			Descending: true,
		},
		Chart: ChartConfig{
			Width:  "900px",
			Height: "500px",
			Theme:  "light",
			Output: "attack_curve.html",
		},
	}
}

// Validate checks values a YAML file could have broken.
func (c Calculator) Validate() error {
	sources := []string{SourceEmbedded, SourceFile, SourcePostgres, SourceSQLite}
	if !slices.Contains(sources, c.Data.Source) {
		return fmt.Errorf("data.source %q: want one of %v", c.Data.Source, sources)
	}
	if c.Data.Source == SourceFile && c.Data.File == "" {
		return fmt.Errorf("data.file is required for source %q", SourceFile)
	}
	if c.Data.Source == SourceSQLite && c.Data.SQLitePath == "" {
		return fmt.Errorf("data.sqlite_path is required for source %q", SourceSQLite)
	}
	if err := c.Search.Attributes.Validate(); err != nil {
		return fmt.Errorf("search.attributes: %w", err)
	}
	if c.Search.UpgradeLevel < 0 || c.Search.UpgradeLevel > model.MaxRegularUpgradeLevel {
		return fmt.Errorf("search.upgrade_level %d outside [0, %d]", c.Search.UpgradeLevel, model.MaxRegularUpgradeLevel)
	}
	if c.Search.MaxWeight < 0 {
		return fmt.Errorf("search.max_weight %v must be >= 0", c.Search.MaxWeight)
	}
	return nil
}

// LoadCalculator loads calculator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadCalculator(path string) (Calculator, error) {
	cfg := DefaultCalculator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}
