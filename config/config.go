package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradejournal/analytics"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/risk"
)

// EnvPrefix prefixes environment overrides, e.g. TRADEJOURNAL_JOURNAL_DB_PATH.
const EnvPrefix = "TRADEJOURNAL"

// Config is the complete tradejournal configuration
type Config struct {
	Account AccountConfig `yaml:"account" mapstructure:"account"`
	Funded  FundedConfig  `yaml:"funded" mapstructure:"funded"`
	Journal JournalConfig `yaml:"journal" mapstructure:"journal"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// AccountConfig describes the trading account
type AccountConfig struct {
	Name     string  `yaml:"name" mapstructure:"name"`
	Currency string  `yaml:"currency" mapstructure:"currency"`
	Balance  float64 `yaml:"balance" mapstructure:"balance"`
}

// FundedConfig holds prop-firm challenge rules, in percent units
type FundedConfig struct {
	AccountSize           float64 `yaml:"account_size" mapstructure:"account_size"`
	DailyLossLimitPercent float64 `yaml:"daily_loss_limit_percent" mapstructure:"daily_loss_limit_percent"`
	MaxDrawdownPercent    float64 `yaml:"max_drawdown_percent" mapstructure:"max_drawdown_percent"`
	TargetProfitPercent   float64 `yaml:"target_profit_percent" mapstructure:"target_profit_percent"`
	RiskPerTradePercent   float64 `yaml:"risk_per_trade_percent" mapstructure:"risk_per_trade_percent"`
}

func (f FundedConfig) Rules() risk.FundedRules {
	return risk.FundedRules{
		AccountSize:           f.AccountSize,
		DailyLossLimitPercent: f.DailyLossLimitPercent,
		MaxDrawdownPercent:    f.MaxDrawdownPercent,
		TargetProfitPercent:   f.TargetProfitPercent,
		RiskPerTradePercent:   f.RiskPerTradePercent,
	}
}

// JournalConfig says where trades are kept
type JournalConfig struct {
	Type    string `yaml:"type" mapstructure:"type"` // "sqlite" or "csv"
	DBPath  string `yaml:"db_path,omitempty" mapstructure:"db_path"`
	CSVPath string `yaml:"csv_path,omitempty" mapstructure:"csv_path"`
}

// ReportConfig holds report defaults; CLI flags override them
type ReportConfig struct {
	Format       string   `yaml:"format" mapstructure:"format"` // "text" or "org"
	EquityPoints int      `yaml:"equity_points" mapstructure:"equity_points"`
	Days         []string `yaml:"days,omitempty" mapstructure:"days"`
	Parallel     bool     `yaml:"parallel" mapstructure:"parallel"`
	Setup        string   `yaml:"setup,omitempty" mapstructure:"setup"`
	Session      string   `yaml:"session,omitempty" mapstructure:"session"`
	Symbol       string   `yaml:"symbol,omitempty" mapstructure:"symbol"`
	MetricsFile  string   `yaml:"metrics_file,omitempty" mapstructure:"metrics_file"`
}

// DaySelection turns the configured weekday names into a mask. No days
// selects the whole week.
func (r ReportConfig) DaySelection() (analytics.DaySelection, error) {
	return ParseDays(r.Days)
}

// ParseDays accepts full or three-letter weekday names, any case.
func ParseDays(days []string) (analytics.DaySelection, error) {
	if len(days) == 0 {
		return analytics.AllDays(), nil
	}
	var sel analytics.DaySelection
	for _, d := range days {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		found := false
		for i, name := range analytics.WeekdayNames {
			if strings.EqualFold(d, name) || strings.EqualFold(d, name[:3]) {
				sel[i] = true
				found = true
				break
			}
		}
		if !found {
			return sel, fmt.Errorf("unknown weekday %q", d)
		}
	}
	return sel, nil
}

// Filter is the configured trade filter.
func (r ReportConfig) Filter() analytics.Filter {
	return analytics.Filter{Setup: r.Setup, Session: r.Session, Symbol: r.Symbol}
}

// LogConfig controls the zap logger
type LogConfig struct {
	Development bool `yaml:"development" mapstructure:"development"`
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	rules := risk.DefaultFundedRules()
	return &Config{
		Account: AccountConfig{
			Name:     "personal",
			Currency: "USD",
			Balance:  rules.AccountSize,
		},
		Funded: FundedConfig{
			AccountSize:           rules.AccountSize,
			DailyLossLimitPercent: rules.DailyLossLimitPercent,
			MaxDrawdownPercent:    rules.MaxDrawdownPercent,
			TargetProfitPercent:   rules.TargetProfitPercent,
			RiskPerTradePercent:   rules.RiskPerTradePercent,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./tradejournal.db",
		},
		Report: ReportConfig{
			Format:       "text",
			EquityPoints: analytics.DefaultEquityPoints,
		},
	}
}

// setDefaults registers every key so environment overrides apply even when
// the file leaves a key out.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("account.name", d.Account.Name)
	v.SetDefault("account.currency", d.Account.Currency)
	v.SetDefault("account.balance", d.Account.Balance)

	v.SetDefault("funded.account_size", d.Funded.AccountSize)
	v.SetDefault("funded.daily_loss_limit_percent", d.Funded.DailyLossLimitPercent)
	v.SetDefault("funded.max_drawdown_percent", d.Funded.MaxDrawdownPercent)
	v.SetDefault("funded.target_profit_percent", d.Funded.TargetProfitPercent)
	v.SetDefault("funded.risk_per_trade_percent", d.Funded.RiskPerTradePercent)

	v.SetDefault("journal.type", d.Journal.Type)
	v.SetDefault("journal.db_path", d.Journal.DBPath)
	v.SetDefault("journal.csv_path", d.Journal.CSVPath)

	v.SetDefault("report.format", d.Report.Format)
	v.SetDefault("report.equity_points", d.Report.EquityPoints)
	v.SetDefault("report.days", d.Report.Days)
	v.SetDefault("report.parallel", d.Report.Parallel)
	v.SetDefault("report.setup", d.Report.Setup)
	v.SetDefault("report.session", d.Report.Session)
	v.SetDefault("report.symbol", d.Report.Symbol)
	v.SetDefault("report.metrics_file", d.Report.MetricsFile)

	v.SetDefault("log.development", d.Log.Development)
}

// Load reads path, layered over Default() and under TRADEJOURNAL_*
// environment variables. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance < 0 {
		return fmt.Errorf("account.balance must not be negative")
	}
	if err := c.Funded.Rules().Validate(); err != nil {
		return fmt.Errorf("funded: %w", err)
	}
	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite journal")
		}
	case "csv":
		if c.Journal.CSVPath == "" {
			return fmt.Errorf("journal.csv_path required for csv journal")
		}
	default:
		return fmt.Errorf("journal.type must be 'sqlite' or 'csv'")
	}
	if c.Report.Format != "text" && c.Report.Format != "org" {
		return fmt.Errorf("report.format must be 'text' or 'org'")
	}
	if c.Report.EquityPoints < 0 {
		return fmt.Errorf("report.equity_points must not be negative")
	}
	if _, err := c.Report.DaySelection(); err != nil {
		return fmt.Errorf("report.days: %w", err)
	}
	if c.Report.Session != "" && journal.ParseSession(c.Report.Session) == journal.NoSession &&
		!strings.EqualFold(strings.TrimSpace(c.Report.Session), string(journal.NoSession)) {
		return fmt.Errorf("report.session: unknown session %q", c.Report.Session)
	}
	return nil
}
