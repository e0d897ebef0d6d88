// Command hantl translates Korean-English text from the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZaguanLabs/hantl"
	"github.com/ZaguanLabs/hantl/cache"
	"github.com/ZaguanLabs/hantl/processor"
	"github.com/ZaguanLabs/hantl/provider"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hantl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	from := fs.String("from", "", "Source language: ko or en (default: saved preference, then ko)")
	to := fs.String("to", "", "Target language: ko or en (default: saved preference, then en)")
	word := fs.Bool("word", false, "Treat the input as a single word lookup")
	wordContext := fs.String("context", "", "Surrounding sentence for a word lookup")
	dbPath := fs.String("db", "", "Cache database path (default: user cache dir)")
	noCache := fs.Bool("no-cache", false, "Skip the persistent cache")
	apiKey := fs.String("api-key", "", "API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "Model to use")
	baseURL := fs.String("base-url", "", "OpenAI-compatible server URL (e.g. a local model server)")
	rpm := fs.Int("rpm", 0, "Maximum inference requests per minute (0 = unlimited)")
	clearCache := fs.Bool("clear-cache", false, "Clear cached translations and exit")
	olderThan := fs.Int("older-than", 0, "With -clear-cache, only delete entries older than this many days")
	saveLangs := fs.Bool("save-langs", false, "Persist -from/-to as the default language pair")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", hantl.Name, hantl.FullVersion())
		return nil
	}

	ctx := context.Background()

	var store *cache.SQLiteStore
	if !*noCache {
		path := *dbPath
		if path == "" {
			dir, err := os.UserCacheDir()
			if err != nil {
				return fmt.Errorf("locating cache dir: %w", err)
			}
			path = filepath.Join(dir, "hantl", "translations.db")
		}

		var err error
		store, err = cache.NewSQLiteStore(path)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer store.Close()
	}

	if *clearCache {
		if store == nil {
			return fmt.Errorf("-clear-cache cannot be combined with -no-cache")
		}
		if err := store.Clear(ctx, time.Duration(*olderThan)*24*time.Hour); err != nil {
			return err
		}
		if !*quiet {
			fmt.Fprintln(stderr, "cache cleared")
		}
		return nil
	}

	// Language pair: flags override saved preferences; ko->en otherwise.
	source, target := hantl.Korean, hantl.English
	if store != nil {
		store.GetPreference(ctx, hantl.PrefSourceLang, &source)
		store.GetPreference(ctx, hantl.PrefTargetLang, &target)
	}
	if *from != "" {
		source = hantl.Language(*from)
	}
	if *to != "" {
		target = hantl.Language(*to)
	}
	if !source.Valid() || !target.Valid() || source == target {
		return fmt.Errorf("unsupported language pair %s -> %s", source, target)
	}

	if *saveLangs && store != nil {
		if err := store.PutPreference(ctx, hantl.PrefSourceLang, source); err != nil {
			return err
		}
		if err := store.PutPreference(ctx, hantl.PrefTargetLang, target); err != nil {
			return err
		}
	}

	// Get input
	var text string
	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	} else {
		text = strings.Join(fs.Args(), " ")
	}
	// Clean here rather than relying on Submit's preprocessing: input that
	// reduces to nothing would make Submit a silent no-op and leave the CLI
	// waiting on a result that never comes.
	text = processor.Clean(text)
	if text == "" {
		return fmt.Errorf("no input text")
	}

	// Get API key; a local server may run without one.
	key := *apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" && *baseURL == "" {
		return fmt.Errorf("API key required: set --api-key or OPENAI_API_KEY")
	}

	var p hantl.InferenceProvider = provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey:  key,
		Model:   *model,
		BaseURL: *baseURL,
	})
	p = provider.NewBreakerProvider(p, provider.BreakerConfig{})
	if *rpm > 0 {
		p = provider.NewRateLimitedProvider(p, provider.RateLimitConfig{RequestsPerMinute: *rpm})
	}

	done := make(chan error, 1)
	handler := hantl.HandlerFuncs{
		Result: func(res hantl.Result) {
			if !*quiet && res.FromCache {
				fmt.Fprintln(stderr, "(cached)")
			}
			fmt.Fprintln(stdout, res.Text)
			if res.Contextual != "" {
				fmt.Fprintf(stdout, "\nIn context: %s\n", res.Contextual)
			}
			done <- nil
		},
		Error: func(_ hantl.RequestKind, msg string) {
			done <- errors.New(msg)
		},
		Busy: func(active bool) {
			if active && !*quiet {
				fmt.Fprintln(stderr, "translating...")
			}
		},
	}

	var opts []hantl.OrchestratorOption
	if store != nil {
		opts = append(opts, hantl.WithStore(store))
	}
	orch := hantl.NewOrchestrator(p, handler, opts...)

	kind := hantl.KindFullText
	if *word {
		kind = hantl.KindWord
	}
	orch.Submit(hantl.TranslationRequest{
		Text:    text,
		Source:  source,
		Target:  target,
		Kind:    kind,
		Context: *wordContext,
	})

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Minute):
		return fmt.Errorf("timed out waiting for translation")
	}
}
