package localeurl

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Mapper resolves "what is the equivalent of this path in locale X" with a
// deterministic fallback ladder:
//
//	parse -> invalid       => target homepage
//	      -> exact hit     => stored target path
//	      -> remainder     => locale-prefix substitution
//	      -> locale root   => target homepage
//
// Every terminal output is a navigable path; no error value ever reaches
// the caller.
type Mapper struct {
	catalog *LocaleCatalog
	store   *MappingStore
	logger  Logger
	hooks   []ResolveHook
}

// MapperOption mutates a Mapper during construction.
type MapperOption func(*Mapper)

// WithMapperLogger sets the logger used for swallowed per-locale failures.
func WithMapperLogger(logger Logger) MapperOption {
	return func(m *Mapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMapperHooks registers resolve observer hooks. Nil hooks are dropped.
func WithMapperHooks(hooks ...ResolveHook) MapperOption {
	return func(m *Mapper) {
		m.hooks = append(m.hooks, filterResolveHooks(hooks)...)
	}
}

// NewMapper builds a mapper over the catalog and mapping store. The store
// may be nil, in which case only the heuristic rungs of the ladder apply.
func NewMapper(catalog *LocaleCatalog, store *MappingStore, opts ...MapperOption) (*Mapper, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	mapper := &Mapper{
		catalog: catalog,
		store:   store,
		logger:  NoopLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(mapper)
	}
	return mapper, nil
}

// Catalog exposes the supported-locale table the mapper was built with.
func (m *Mapper) Catalog() *LocaleCatalog {
	if m == nil {
		return nil
	}
	return m.catalog
}

// MapURLToLocale resolves the equivalent of currentPath in the target
// locale. It never fails: mapping-table lookups that cannot be served fall
// through to prefix substitution or the target homepage.
//
// An exact table hit is trusted as authoritative and returned verbatim; the
// row's stored target locale is not cross-checked against the requested
// pair. The sheet is the contract here, so a row pointing elsewhere is an
// authoring problem, not one this layer second-guesses.
func (m *Mapper) MapURLToLocale(ctx context.Context, currentPath, language, country string) Resolution {
	if m == nil || m.catalog == nil {
		return Resolution{URL: "/", Source: SourceHomepage}
	}

	hookCtx := &ResolveHookContext{
		Path:     currentPath,
		Language: normalizeCode(language),
		Country:  normalizeCode(country),
	}

	for _, hook := range m.hooks {
		hook.BeforeResolve(hookCtx)
	}

	hookCtx.Result = m.resolve(ctx, hookCtx.Path, hookCtx.Language, hookCtx.Country)

	for _, hook := range m.hooks {
		hook.AfterResolve(hookCtx)
	}

	return hookCtx.Result
}

func (m *Mapper) resolve(ctx context.Context, currentPath, language, country string) Resolution {
	homepage := m.catalog.HomepageFor(language, country)

	parsed := m.catalog.ParsePath(currentPath)
	if !parsed.Valid {
		// No coherent source locale to map from.
		return Resolution{URL: homepage, Source: SourceHomepage}
	}

	if m.store != nil {
		table := m.store.Load(ctx)
		key := LocaleKey(parsed.Language, parsed.Country)
		if target, ok := table.Lookup(key, currentPath); ok && target.Path != "" {
			return Resolution{URL: target.Path, Source: SourceMapping}
		}
	}

	if parsed.Remainder != "/" {
		prefix := m.catalog.PrefixFor(language, country)
		return Resolution{URL: prefix + parsed.Remainder, Source: SourcePrefix}
	}

	return Resolution{URL: homepage, Source: SourceHomepage}
}

// Alternates resolves currentPath into every configured locale, fanning out
// concurrently. A failing locale is substituted with its homepage so the
// aggregate result always carries exactly one entry per catalog locale.
func (m *Mapper) Alternates(ctx context.Context, currentPath string) map[string]Resolution {
	if m == nil || m.catalog == nil {
		return map[string]Resolution{}
	}

	keys := m.catalog.Keys()
	out := make(map[string]Resolution, len(keys))

	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)

	for _, key := range keys {
		definition, ok := m.catalog.Definition(key)
		if !ok {
			continue
		}
		group.Go(func() error {
			result := m.resolveGuarded(ctx, currentPath, definition)

			mu.Lock()
			out[key] = result
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = group.Wait()

	return out
}

// resolveGuarded contains a single locale's failure so one bad resolution
// cannot abort the rest of the fan-out.
func (m *Mapper) resolveGuarded(ctx context.Context, currentPath string, definition LocaleDefinition) (result Resolution) {
	defer func() {
		if recovered := recover(); recovered != nil {
			m.logger.Error("localeurl: alternate resolution failed",
				"locale", definition.Key(),
				"path", currentPath,
				"panic", recovered)
			result = Resolution{
				URL:    m.catalog.HomepageFor(definition.Language, definition.Country),
				Source: SourceHomepage,
			}
		}
	}()

	return m.MapURLToLocale(ctx, currentPath, definition.Language, definition.Country)
}

// CurrentLocale interprets the path and returns the matching catalog
// definition, or the default locale when the path is not a supported locale
// path.
func (m *Mapper) CurrentLocale(path string) LocaleDefinition {
	if m == nil || m.catalog == nil {
		return LocaleDefinition{}
	}

	parsed := m.catalog.ParsePath(path)
	if parsed.Valid {
		if definition, ok := m.catalog.Definition(LocaleKey(parsed.Language, parsed.Country)); ok {
			return definition
		}
	}
	return m.catalog.Default()
}
