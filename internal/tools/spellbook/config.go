package spellbook

import (
	"errors"
	"flag"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/core/fraction"
	entrypoint "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/cmd"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors/i18n"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/timeouts"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/balance"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/spell"
)

// Config holds spellbook command configuration.
type Config struct {
	UnitsPath      string
	SpellsPath     string
	DBPath         string
	Locale         string
	Tolerance      float64
	MaxDenominator int
	SheetSize      int
	Timeout        time.Duration
	DryRun         bool
	JSONOutput     bool
}

// envConfig reads WIZARDING_ACADEMY_* variables.
type envConfig struct {
	UnitsPath  string        `env:"UNITS_PATH"`
	SpellsPath string        `env:"SPELLS_PATH"`
	DBPath     string        `env:"SPELLBOOK_DB_PATH"`
	Locale     string        `env:"LOCALE" envDefault:"en-US"`
	Timeout    time.Duration `env:"SPELLBOOK_TIMEOUT"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := entrypoint.ParseConfig(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		UnitsPath:      envCfg.UnitsPath,
		SpellsPath:     envCfg.SpellsPath,
		DBPath:         envCfg.DBPath,
		Locale:         envCfg.Locale,
		Tolerance:      balance.DefaultTolerancePercent,
		MaxDenominator: fraction.DefaultMaxDenominator,
		SheetSize:      spell.SheetSize,
		Timeout:        envCfg.Timeout,
	}
	if cfg.UnitsPath == "" {
		cfg.UnitsPath = "units.md"
	}
	if cfg.SpellsPath == "" {
		cfg.SpellsPath = "spells.md"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "spellbook.db")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = timeouts.SpellbookRun
	}

	fs.StringVar(&cfg.UnitsPath, "units", cfg.UnitsPath, "units document (default: WIZARDING_ACADEMY_UNITS_PATH or units.md)")
	fs.StringVar(&cfg.SpellsPath, "spells", cfg.SpellsPath, "spells document (default: WIZARDING_ACADEMY_SPELLS_PATH or spells.md)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog sqlite database (default: WIZARDING_ACADEMY_SPELLBOOK_DB_PATH or data/spellbook.db)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages and card text casing")
	fs.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "ratio approximation tolerance in percent")
	fs.IntVar(&cfg.MaxDenominator, "max-denominator", cfg.MaxDenominator, "largest denominator tried when approximating ratios")
	fs.IntVar(&cfg.SheetSize, "sheet-size", cfg.SheetSize, "spells per bulk print sheet")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "build and report without writing to the database")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "output a JSON report")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	if cfg.Timeout <= 0 {
		return Config{}, errors.New("timeout must be > 0")
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.UnitsPath) == "" {
		return errors.New("units is required")
	}
	if strings.TrimSpace(cfg.SpellsPath) == "" {
		return errors.New("spells is required")
	}
	if !cfg.DryRun && strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("db-path is required unless -dry-run is set")
	}
	if math.IsNaN(cfg.Tolerance) || cfg.Tolerance <= 0 || cfg.Tolerance >= 100 {
		return errors.New("tolerance must be between 0 and 100 (exclusive)")
	}
	if cfg.MaxDenominator < 1 {
		return errors.New("max-denominator must be >= 1")
	}
	if cfg.SheetSize < 1 {
		return errors.New("sheet-size must be > 0")
	}
	return nil
}

func (cfg Config) locale() string {
	if strings.TrimSpace(cfg.Locale) == "" {
		return i18n.BaseLocale
	}
	return cfg.Locale
}
