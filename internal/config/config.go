package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string         `yaml:"-"`
	Env      string         `yaml:"env"`
	Server   ServerConfig   `yaml:"server"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	LLM      LLMConfig      `yaml:"llm"`
	CORS     CORSConfig     `yaml:"cors"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type GeminiConfig struct {
	APIKey     string `yaml:"apiKey"`
	TextModel  string `yaml:"textModel"`
	ImageModel string `yaml:"imageModel"`
}

type PipelineConfig struct {
	// ImagePacingMs is the spacing between section image calls; 0 disables it.
	ImagePacingMs   int           `yaml:"imagePacingMs"`
	OutlineAttempts int           `yaml:"outlineAttempts"`
	ProviderTimeout time.Duration `yaml:"providerTimeout"`
}

type LLMConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}

type TracingConfig struct {
	Stdout bool `yaml:"stdout"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Port: ":8080",
		Env:  "local",
		Gemini: GeminiConfig{
			TextModel:  "gemini-2.5-flash",
			ImageModel: "gemini-2.5-flash-image",
		},
		Pipeline: PipelineConfig{
			ImagePacingMs:   1000,
			OutlineAttempts: 3,
			ProviderTimeout: 90 * time.Second,
		},
		LLM: LLMConfig{Burst: 1},
	}
}

// Load reads .env, then the -port/-config flags in args, then the YAML file,
// then environment overrides.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("coursegen", flag.ContinueOnError)
	port := fs.String("port", "", "server port (default :8080)")
	path := fs.String("config", "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return LoadFrom(*path, *port)
}

// LoadFrom is Load without flag parsing. Empty arguments are ignored.
func LoadFrom(path, port string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	path = firstNonEmpty(path, os.Getenv("COURSEGEN_CONFIG"))
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Server.Port != "" {
		cfg.Port = cfg.Server.Port
	}
	if port != "" {
		cfg.Port = port
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Port = normalizePort(cfg.Port)
	cfg.Server.Port = cfg.Port
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HasGeminiCredential reports whether text and image generation can be wired.
func (c *Config) HasGeminiCredential() bool {
	return strings.TrimSpace(c.Gemini.APIKey) != ""
}

// ImagePacing converts ImagePacingMs to the pipeline convention where a
// negative duration disables pacing.
func (c *Config) ImagePacing() time.Duration {
	if c.Pipeline.ImagePacingMs <= 0 {
		return -1
	}
	return time.Duration(c.Pipeline.ImagePacingMs) * time.Millisecond
}

func applyEnv(cfg *Config) error {
	if v := env("PORT"); v != "" {
		cfg.Port = v
	}
	if v := env("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := firstNonEmpty(env("GEMINI_API_KEY"), env("GOOGLE_API_KEY")); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := env("GEMINI_TEXT_MODEL"); v != "" {
		cfg.Gemini.TextModel = v
	}
	if v := env("GEMINI_IMAGE_MODEL"); v != "" {
		cfg.Gemini.ImageModel = v
	}
	if err := envInt("IMAGE_PACING_MS", &cfg.Pipeline.ImagePacingMs); err != nil {
		return err
	}
	if err := envInt("OUTLINE_ATTEMPTS", &cfg.Pipeline.OutlineAttempts); err != nil {
		return err
	}
	if v := env("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: PROVIDER_TIMEOUT: %w", err)
		}
		cfg.Pipeline.ProviderTimeout = d
	}
	if v := env("LLM_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: LLM_RPS: %w", err)
		}
		cfg.LLM.RPS = f
	}
	if err := envInt("LLM_BURST", &cfg.LLM.Burst); err != nil {
		return err
	}
	if v := env("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.CORS.AllowOrigins = splitList(v)
	}
	if v := env("OTEL_TRACES_STDOUT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: OTEL_TRACES_STDOUT: %w", err)
		}
		cfg.Tracing.Stdout = b
	}
	return nil
}

func (c *Config) validate() error {
	switch {
	case c.Pipeline.ImagePacingMs < 0:
		return fmt.Errorf("config: imagePacingMs must be >= 0")
	case c.Pipeline.OutlineAttempts < 1:
		return fmt.Errorf("config: outlineAttempts must be >= 1")
	case c.LLM.RPS < 0:
		return fmt.Errorf("config: llm rps must be >= 0")
	}
	return nil
}

func env(key string) string { return strings.TrimSpace(os.Getenv(key)) }

func envInt(key string, dst *int) error {
	v := env(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}

func normalizePort(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ":8080"
	}
	if strings.Contains(p, ":") {
		return p
	}
	return ":" + p
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
