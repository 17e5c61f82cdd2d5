package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/etree"
	"github.com/fwojciec/distill/gemini"
	"github.com/fwojciec/distill/goldmark"
	"github.com/fwojciec/distill/goquery"
	"github.com/fwojciec/distill/htmltomarkdown"
	distillhttp "github.com/fwojciec/distill/http"
	"github.com/fwojciec/distill/openai"
	"github.com/fwojciec/distill/pdf"
	"github.com/fwojciec/distill/readability"
	"github.com/fwojciec/distill/rod"
	"github.com/fwojciec/distill/scrape"
	distillslog "github.com/fwojciec/distill/slog"
	"github.com/fwojciec/distill/trafilatura"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

// shutdownTimeout bounds how long in-flight requests may take after a signal.
const shutdownTimeout = 2 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	Config CLI
	Logger *slog.Logger
	Stderr io.Writer

	Pool   *rod.Pool
	Server *distillhttp.Server
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{Stderr: io.Discard}
}

// Run parses args, starts the service and blocks until ctx is canceled.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	parser, err := kong.New(&m.Config,
		kong.Name("distilld"),
		kong.Description("Render web pages and uploaded documents into clean text."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "help" || arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if err := m.Config.check(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if m.Config.Debug {
		level = slog.LevelDebug
	}
	m.Stderr = stderr
	m.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := m.Open(ctx); err != nil {
		return err
	}
	return m.serve(ctx)
}

// Open wires the services together and launches the browser.
func (m *Main) Open(ctx context.Context) error {
	cfg := &m.Config

	cleaner, err := m.newCleaner(ctx)
	if err != nil {
		return err
	}

	manager, err := rod.NewBrowserManager(cfg.managerOptions()...)
	if err != nil {
		fmt.Fprintln(m.Stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	m.Pool = rod.NewPool(rod.NewLoggingSource(manager, m.Logger), cfg.MaxConcurrency)

	var normalizer distill.Normalizer = readability.NewNormalizer()
	if cfg.Normalizer == "trafilatura" {
		normalizer = trafilatura.NewNormalizer(m.Logger)
	}

	svc := &scrape.Service{
		Validator:         distillhttp.NewProber(cfg.proberOptions()...),
		Pool:              distillslog.NewLoggingPagePool(m.Pool, m.Logger),
		Extractor:         goquery.NewExtractor(distill.DefaultExtractionRules(), m.Logger),
		Normalizer:        normalizer,
		Converter:         htmltomarkdown.NewConverter(),
		Reducer:           goldmark.NewReducer(),
		NavigationTimeout: cfg.NavigationTimeout,
		Logger:            m.Logger,
	}
	if cfg.RateLimit > 0 {
		svc.Limiter = scrape.NewDomainLimiter(cfg.RateLimit)
	}
	if cleaner != nil {
		svc.Cleaner = distillslog.NewLoggingCleaner(cleaner, m.Logger)
	}

	files := &scrape.FileService{
		Text: scrape.PlainText{},
		PDF:  pdf.NewExtractor(),
		DOCX: etree.NewDocxExtractor(),
	}

	m.Server = distillhttp.NewServer(net.JoinHostPort(cfg.Host, cfg.Port))
	m.Server.Scraper = distillslog.NewLoggingScraper(svc, m.Logger)
	m.Server.Files = distillslog.NewLoggingFileExtractor(files, m.Logger)
	m.Server.Stats = m.Pool.Stats
	m.Server.Logger = m.Logger
	m.Server.MaxUploadSize = cfg.MaxUploadSize
	return nil
}

// newCleaner returns the configured LLM cleaner, or nil when cleanup is off.
func (m *Main) newCleaner(ctx context.Context) (distill.Cleaner, error) {
	cfg := &m.Config
	if !cfg.LLMCleanup {
		return nil, nil
	}
	switch cfg.LLMProvider {
	case "gemini":
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCleaner(client, cfg.LLMModel), nil
	default:
		return openai.NewCleaner(openai.NewClient(cfg.OpenAIAPIKey), cfg.LLMModel), nil
	}
}

// serve runs the HTTP server until ctx is canceled, then shuts down the
// server before draining the page pool.
func (m *Main) serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(m.Server.Open)
	g.Go(func() error {
		<-gctx.Done()
		m.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return m.Server.Close(shutdownCtx)
	})

	err := g.Wait()
	if cerr := m.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	return err
}

// Close releases the page pool and the browser.
func (m *Main) Close() error {
	if m.Pool != nil {
		return m.Pool.Close()
	}
	return nil
}
