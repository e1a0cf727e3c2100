package config

import (
	"fmt"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"

	ParserStrict = "strict"
	ParserNaive  = "naive"

	PolicyHighlights = "highlights"
	PolicyBrief      = "brief"

	RendererKroki    = "kroki"
	RendererGraphviz = "graphviz"
)

type Config struct {
	LLM        LLMConfig        `yaml:"llm"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Ollama     OllamaConfig     `yaml:"ollama"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Web        WebConfig        `yaml:"web"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Diagram    DiagramConfig    `yaml:"diagram"`
	Report     ReportConfig     `yaml:"report"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"`
}

// GeminiConfig carries the model name only. The API key is a secret and is
// read from GOOGLE_API_KEY, never from the YAML file.
type GeminiConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"-"`
}

type OllamaConfig struct {
	ServerURL string `yaml:"server_url"`
	Model     string `yaml:"model"`
}

type TranscriptConfig struct {
	Language  string `yaml:"language"`
	URLParser string `yaml:"url_parser"`
}

type WebConfig struct {
	Addr   string `yaml:"addr"`
	Policy string `yaml:"policy"`
}

type PipelineConfig struct {
	Policy         string `yaml:"policy"`
	ShowTranscript bool   `yaml:"show_transcript"`
}

// DiagramConfig controls the execution graph export. Enabled is a pointer so
// that an absent key defaults to on, with or without a config file.
type DiagramConfig struct {
	Enabled  *bool         `yaml:"enabled"`
	Renderer string        `yaml:"renderer"`
	KrokiURL string        `yaml:"kroki_url"`
	DotPath  string        `yaml:"dot_path"`
	Output   string        `yaml:"output"`
	Timeout  time.Duration `yaml:"timeout"`
}

type ReportConfig struct {
	DocxPath string `yaml:"docx_path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// IsEnabled reports whether the export should run.
func (d DiagramConfig) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.applyDefaults(); err != nil {
		panic(fmt.Sprintf("config: defaults are invalid: %v", err))
	}
	return cfg
}

// Validate fills defaults and checks that the selected provider is usable.
func (c *Config) Validate() error {
	if err := c.applyDefaults(); err != nil {
		return err
	}

	switch c.LLM.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for llm.provider %q", ProviderGemini)
		}
	case ProviderOllama:
		if c.Ollama.Model == "" {
			return fmt.Errorf("ollama.model is required for llm.provider %q", ProviderOllama)
		}
	}

	return nil
}

func (c *Config) applyDefaults() error {
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderGemini
	}
	if c.LLM.Provider != ProviderGemini && c.LLM.Provider != ProviderOllama {
		return fmt.Errorf("llm.provider must be %q or %q, got %q", ProviderGemini, ProviderOllama, c.LLM.Provider)
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-pro"
	}
	if c.Ollama.ServerURL == "" {
		c.Ollama.ServerURL = "http://localhost:11434"
	}

	if c.Transcript.Language == "" {
		c.Transcript.Language = "en"
	}
	if c.Transcript.URLParser == "" {
		c.Transcript.URLParser = ParserStrict
	}
	if c.Transcript.URLParser != ParserStrict && c.Transcript.URLParser != ParserNaive {
		return fmt.Errorf("transcript.url_parser must be %q or %q, got %q", ParserStrict, ParserNaive, c.Transcript.URLParser)
	}

	if c.Web.Addr == "" {
		c.Web.Addr = ":8501"
	}
	if c.Web.Policy == "" {
		c.Web.Policy = PolicyHighlights
	}
	if c.Pipeline.Policy == "" {
		c.Pipeline.Policy = PolicyBrief
	}
	for _, p := range []string{c.Web.Policy, c.Pipeline.Policy} {
		if p != PolicyHighlights && p != PolicyBrief {
			return fmt.Errorf("unknown summary policy %q", p)
		}
	}

	if c.Diagram.Enabled == nil {
		enabled := true
		c.Diagram.Enabled = &enabled
	}
	if c.Diagram.Renderer == "" {
		c.Diagram.Renderer = RendererKroki
	}
	if c.Diagram.Renderer != RendererKroki && c.Diagram.Renderer != RendererGraphviz {
		return fmt.Errorf("diagram.renderer must be %q or %q, got %q", RendererKroki, RendererGraphviz, c.Diagram.Renderer)
	}
	if c.Diagram.KrokiURL == "" {
		c.Diagram.KrokiURL = "https://kroki.io"
	}
	if c.Diagram.DotPath == "" {
		c.Diagram.DotPath = "dot"
	}
	if c.Diagram.Output == "" {
		c.Diagram.Output = "execution-graph.svg"
	}
	if c.Diagram.Timeout == 0 {
		c.Diagram.Timeout = 60 * time.Second
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
