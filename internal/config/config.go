// Package config loads and validates crawl configuration via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/encoding/htmlindex"
)

// Parser backend identifiers accepted in agent_config.parser.
const (
	ParserGoquery = "goquery"
	ParserNetHTML = "nethtml"
)

// Config captures everything a crawl run needs, loaded from a JSON or YAML
// file plus SPINNERET_* environment overrides.
type Config struct {
	Seeds   []string      `mapstructure:"seeds"`
	Options OptionsConfig `mapstructure:"options"`
	Agent   AgentConfig   `mapstructure:"agent_config"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// OptionsConfig controls the text-processing glue around the crawl.
type OptionsConfig struct {
	RemoveStopwords bool   `mapstructure:"remove_stopwords"`
	StopwordsLang   string `mapstructure:"stopwords_lang"`
}

// AgentConfig governs how agents resolve and parse individual pages.
type AgentConfig struct {
	// External lists substrings that mark a locator as an external (web)
	// link. An empty list means nothing is external.
	External []string `mapstructure:"external"`

	// Encoding names the charset local files are decoded with.
	Encoding string `mapstructure:"encoding"`

	// Parser selects the HTML parsing backend, ParserGoquery or ParserNetHTML.
	Parser string `mapstructure:"parser"`

	// Tags maps HTML tag names to extraction options; only listed tags count
	// as content.
	Tags map[string]TagOptions `mapstructure:"tags"`

	// Debug enables per-page failure reporting and crawl progress output.
	Debug bool `mapstructure:"debug"`
}

// TagOptions holds per-tag extraction options.
type TagOptions struct {
	// IncludeAnchorText keeps the text of nested <a> elements in content
	// blocks. Anchor text is excluded by default since it belongs to the
	// link graph, not the page's prose.
	IncludeAnchorText bool `mapstructure:"include_anchor_text"`
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics (e.g. ":9090"). Empty disables
	// the endpoint.
	Addr string `mapstructure:"addr"`
}

// Load builds a Config from the file at path plus environment overrides and
// validates it. Malformed configuration is fatal at startup, before any
// crawling begins.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SPINNERET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("options.remove_stopwords", false)
	v.SetDefault("options.stopwords_lang", "english")
	v.SetDefault("agent_config.external", []string{"https://", "http://"})
	v.SetDefault("agent_config.encoding", "UTF-8")
	v.SetDefault("agent_config.parser", ParserGoquery)
	v.SetDefault("agent_config.debug", false)
}

// Validate enforces required values. Seeds must be present, the parser must
// name a known backend, and the encoding must resolve to a charset.
func (c Config) Validate() error {
	if len(c.Seeds) == 0 {
		return fmt.Errorf("seeds must contain at least one locator")
	}
	for i, seed := range c.Seeds {
		if strings.TrimSpace(seed) == "" {
			return fmt.Errorf("seeds[%d] is blank", i)
		}
	}
	if c.Agent.Parser != ParserGoquery && c.Agent.Parser != ParserNetHTML {
		return fmt.Errorf("agent_config.parser must be %q or %q, got %q",
			ParserGoquery, ParserNetHTML, c.Agent.Parser)
	}
	if len(c.Agent.Tags) == 0 {
		return fmt.Errorf("agent_config.tags must name at least one content tag")
	}
	if _, err := htmlindex.Get(c.Agent.Encoding); err != nil {
		return fmt.Errorf("agent_config.encoding %q: %w", c.Agent.Encoding, err)
	}
	return nil
}
