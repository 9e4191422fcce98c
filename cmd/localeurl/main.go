package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/caarlos0/env/v11"

	localeurl "github.com/goliatone/go-localeurl"
)

// cliConfig carries environment defaults; flags override each field.
type cliConfig struct {
	SheetURL      string        `env:"LOCALEURL_SHEET_URL"`
	FallbackFile  string        `env:"LOCALEURL_FALLBACK_FILE"`
	Locales       string        `env:"LOCALEURL_LOCALES" envDefault:"en-uk,de-ch,fr-ch"`
	DefaultLocale string        `env:"LOCALEURL_DEFAULT_LOCALE"`
	CountryFirst  string        `env:"LOCALEURL_COUNTRY_FIRST" envDefault:"ch"`
	Timeout       time.Duration `env:"LOCALEURL_TIMEOUT" envDefault:"10s"`
	LogLevel      string        `env:"LOCALEURL_LOG_LEVEL" envDefault:"warn"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "localeurl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := cliConfig{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	flags := flag.NewFlagSet("localeurl", flag.ContinueOnError)
	path := flags.String("path", "", "current page path to resolve (required)")
	flags.StringVar(&cfg.SheetURL, "sheet-url", cfg.SheetURL, "remote url-mappings sheet resource")
	flags.StringVar(&cfg.FallbackFile, "fallback", cfg.FallbackFile, "local fallback mapping file (json or yaml)")
	flags.StringVar(&cfg.Locales, "locales", cfg.Locales, "comma separated locale keys, e.g. en-uk,de-ch")
	flags.StringVar(&cfg.DefaultLocale, "default", cfg.DefaultLocale, "default locale key (first locale when empty)")
	flags.StringVar(&cfg.CountryFirst, "country-first", cfg.CountryFirst, "comma separated country-first country codes")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall resolution timeout")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		flags.Usage()
		return fmt.Errorf("-path is required")
	}

	definitions, err := parseLocaleKeys(cfg.Locales)
	if err != nil {
		return err
	}

	logger := localeurl.NewGlogLogger("localeurl", cfg.LogLevel)

	options := []localeurl.Option{
		localeurl.WithDefaultLocale(cfg.DefaultLocale),
		localeurl.WithLocales(definitions...),
		localeurl.WithCountryFirst(splitList(cfg.CountryFirst)...),
		localeurl.WithLogger(logger),
	}
	if cfg.SheetURL != "" {
		options = append(options, localeurl.WithSheetURL(cfg.SheetURL))
	}
	if cfg.FallbackFile != "" {
		options = append(options, localeurl.WithFallbackFile(cfg.FallbackFile))
	}

	config, err := localeurl.NewConfig(options...)
	if err != nil {
		return err
	}

	store := config.BuildStore()
	mapper, err := localeurl.NewMapper(config.Catalog(), store, localeurl.WithMapperLogger(logger))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	links := mapper.SwitcherLinks(ctx, *path)
	alternates := mapper.Alternates(ctx, *path)

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tHREFLANG\tSOURCE\tURL")
	for _, link := range links {
		source := ""
		if resolution, ok := alternates[link.Key]; ok {
			source = string(resolution.Source)
		}
		marker := ""
		if link.Current {
			marker = " *"
		}
		fmt.Fprintf(writer, "%s%s\t%s\t%s\t%s\n", link.Key, marker, link.Hreflang, source, link.URL)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	status := store.LastStatus()
	fmt.Printf("\nmappings: %s (%d rows)\n", status.Source, status.Rows)
	if status.RemoteErr != nil {
		fmt.Printf("remote: %v\n", status.RemoteErr)
	}
	if status.FallbackErr != nil {
		fmt.Printf("fallback: %v\n", status.FallbackErr)
	}

	return nil
}

func parseLocaleKeys(raw string) ([]localeurl.LocaleDefinition, error) {
	keys := splitList(raw)
	if len(keys) == 0 {
		return nil, fmt.Errorf("no locales configured")
	}

	definitions := make([]localeurl.LocaleDefinition, 0, len(keys))
	for _, key := range keys {
		language, country := localeurl.SplitLocaleKey(key)
		if language == "" || country == "" {
			return nil, fmt.Errorf("malformed locale key %q, want lang-country", key)
		}
		definitions = append(definitions, localeurl.LocaleDefinition{
			Language: language,
			Country:  country,
		})
	}
	return definitions, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
