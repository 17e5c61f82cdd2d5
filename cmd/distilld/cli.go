package main

import (
	"fmt"
	"time"

	distillhttp "github.com/fwojciec/distill/http"
	"github.com/fwojciec/distill/rod"
)

// CLI defines the server configuration. Every flag can also be set through
// the environment.
type CLI struct {
	Host string `help:"Interface to listen on." default:"0.0.0.0" env:"HOST"`
	Port string `help:"Port to listen on." default:"3000" env:"PORT"`

	MaxConcurrency    int           `help:"Browser pages allowed to render at once." default:"3" env:"DISTILL_MAX_CONCURRENCY"`
	NavigationTimeout time.Duration `help:"Page navigation timeout." default:"15s" env:"DISTILL_NAVIGATION_TIMEOUT"`
	ProbeTimeout      time.Duration `help:"URL reachability check timeout." default:"10s" env:"DISTILL_PROBE_TIMEOUT"`
	MaxPages          int64         `help:"Pages opened before the browser is recycled." default:"75" env:"DISTILL_MAX_PAGES"`
	BrowserBin        string        `help:"Path to the Chrome binary. Downloaded when empty." env:"DISTILL_BROWSER_BIN"`
	NoSandbox         bool          `help:"Disable the Chrome sandbox (needed as root in containers)." env:"DISTILL_NO_SANDBOX"`
	RateLimit         float64       `help:"Requests per second per host. Zero disables limiting." default:"0" env:"DISTILL_RATE_LIMIT"`

	Normalizer string `help:"Article normalizer." enum:"readability,trafilatura" default:"readability" env:"DISTILL_NORMALIZER"`

	LLMCleanup   bool   `name:"llm-cleanup" help:"Clean markdown with a language model before reducing it to text." env:"DISTILL_LLM_CLEANUP"`
	LLMProvider  string `name:"llm-provider" help:"Language model provider." enum:"openai,gemini" default:"openai" env:"DISTILL_LLM_PROVIDER"`
	LLMModel     string `name:"llm-model" help:"Model name. Provider default when empty." env:"DISTILL_LLM_MODEL"`
	OpenAIAPIKey string `name:"openai-api-key" help:"OpenAI API key." env:"OPENAI_API_KEY"`
	GeminiAPIKey string `name:"gemini-api-key" help:"Gemini API key." env:"GEMINI_API_KEY"`

	MaxUploadSize int64 `help:"Largest accepted upload in bytes." default:"33554432" env:"DISTILL_MAX_UPLOAD_SIZE"`
	Debug         bool  `help:"Enable debug logging." env:"DISTILL_DEBUG"`
}

// check reports configuration errors that kong cannot express.
func (c *CLI) check() error {
	if c.MaxConcurrency <= 0 {
		return fmt.Errorf("max concurrency must be positive, got %d", c.MaxConcurrency)
	}
	if c.NavigationTimeout <= 0 {
		return fmt.Errorf("navigation timeout must be positive, got %s", c.NavigationTimeout)
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive, got %s", c.ProbeTimeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %g", c.RateLimit)
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.MaxUploadSize)
	}
	if !c.LLMCleanup {
		return nil
	}
	switch c.LLMProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("LLM cleanup with openai requires OPENAI_API_KEY")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("LLM cleanup with gemini requires GEMINI_API_KEY. Get a key at https://aistudio.google.com/apikey")
		}
	}
	return nil
}

// managerOptions translates browser flags into rod options.
func (c *CLI) managerOptions() []rod.ManagerOption {
	return []rod.ManagerOption{
		rod.WithMaxPages(c.MaxPages),
		rod.WithBrowserBin(c.BrowserBin),
		rod.WithNoSandbox(c.NoSandbox),
	}
}

func (c *CLI) proberOptions() []distillhttp.ProberOption {
	return []distillhttp.ProberOption{distillhttp.WithProbeTimeout(c.ProbeTimeout)}
}
