package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfigFile(t, "crawl.yaml", `
seeds:
  - site/index.html
options:
  remove_stopwords: true
  stopwords_lang: french
agent_config:
  external:
    - "https://"
  encoding: ISO-8859-1
  parser: nethtml
  tags:
    p: {}
    h1:
      include_anchor_text: true
metrics:
  addr: ":9090"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"site/index.html"}, cfg.Seeds)
	assert.True(t, cfg.Options.RemoveStopwords)
	assert.Equal(t, "french", cfg.Options.StopwordsLang)
	assert.Equal(t, []string{"https://"}, cfg.Agent.External)
	assert.Equal(t, "ISO-8859-1", cfg.Agent.Encoding)
	assert.Equal(t, ParserNetHTML, cfg.Agent.Parser)
	assert.True(t, cfg.Agent.Tags["h1"].IncludeAnchorText)
	assert.False(t, cfg.Agent.Tags["p"].IncludeAnchorText)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfigFile(t, "crawl.json", `{
  "seeds": ["a.html", "b.html"],
  "agent_config": {
    "tags": {"p": {}}
  }
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.html", "b.html"}, cfg.Seeds)
	assert.Equal(t, ParserGoquery, cfg.Agent.Parser, "default parser")
	assert.Equal(t, "UTF-8", cfg.Agent.Encoding, "default encoding")
	assert.Equal(t, []string{"https://", "http://"}, cfg.Agent.External)
	assert.False(t, cfg.Options.RemoveStopwords)
	assert.Equal(t, "english", cfg.Options.StopwordsLang)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfigFile(t, "bad.yaml", "seeds: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Seeds: []string{"index.html"},
		Agent: AgentConfig{
			Encoding: "UTF-8",
			Parser:   ParserGoquery,
			Tags:     map[string]TagOptions{"p": {}},
		},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no seeds", func(c *Config) { c.Seeds = nil }},
		{"blank seed", func(c *Config) { c.Seeds = []string{"index.html", "  "} }},
		{"unknown parser", func(c *Config) { c.Agent.Parser = "regex" }},
		{"no tags", func(c *Config) { c.Agent.Tags = nil }},
		{"bad encoding", func(c *Config) { c.Agent.Encoding = "EBCDIC-37-QUUX" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
