package localeurl

// Config captures catalog and mapper setup
type Config struct {
	DefaultLocale string
	Locales       []LocaleDefinition
	CountryFirst  []string
	Remote        MappingLoader
	Fallback      MappingLoader
	Logger        Logger
	Hooks         []ResolveHook

	catalog *LocaleCatalog
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = NoopLogger()
	}

	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0].Key()
	}

	catalog, err := NewLocaleCatalog(cfg.DefaultLocale, cfg.Locales, cfg.CountryFirst...)
	if err != nil {
		return nil, err
	}
	cfg.catalog = catalog

	return cfg, nil
}

// WithDefaultLocale sets the default locale key in Config
func WithDefaultLocale(key string) Option {
	return func(c *Config) error {
		c.DefaultLocale = key
		return nil
	}
}

// WithLocales registers supported locale definitions
func WithLocales(definitions ...LocaleDefinition) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, definitions...)
		return nil
	}
}

// WithCountryFirst registers country codes whose URLs lead with the country
// segment.
func WithCountryFirst(codes ...string) Option {
	return func(c *Config) error {
		c.CountryFirst = append(c.CountryFirst, codes...)
		return nil
	}
}

// WithLoader sets the remote mapping loader.
func WithLoader(loader MappingLoader) Option {
	return func(c *Config) error {
		c.Remote = loader
		return nil
	}
}

// WithFallbackLoader sets the local fallback mapping loader.
func WithFallbackLoader(loader MappingLoader) Option {
	return func(c *Config) error {
		c.Fallback = loader
		return nil
	}
}

// WithSheetURL is a convenience wiring of WithLoader over a SheetLoader.
func WithSheetURL(url string, opts ...SheetLoaderOption) Option {
	return func(c *Config) error {
		if url == "" {
			return nil
		}
		c.Remote = NewSheetLoader(url, opts...)
		return nil
	}
}

// WithFallbackFile is a convenience wiring of WithFallbackLoader over a
// FileLoader.
func WithFallbackFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return nil
		}
		c.Fallback = NewFileLoader(path)
		return nil
	}
}

// WithLogger sets the logger shared by the store and the mapper.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		if logger != nil {
			c.Logger = logger
		}
		return nil
	}
}

// WithResolveHooks registers mapper observer hooks.
func WithResolveHooks(hooks ...ResolveHook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, filterResolveHooks(hooks)...)
		return nil
	}
}

// Catalog exposes the validated locale catalog built from the options.
func (cfg *Config) Catalog() *LocaleCatalog {
	if cfg == nil {
		return nil
	}
	return cfg.catalog
}

// BuildStore assembles the mapping store from the configured loaders.
func (cfg *Config) BuildStore() *MappingStore {
	if cfg == nil {
		return nil
	}
	return NewMappingStore(cfg.Remote, cfg.Fallback, WithStoreLogger(cfg.Logger))
}

// BuildMapper assembles the full resolver: catalog, store and mapper.
func (cfg *Config) BuildMapper() (*Mapper, error) {
	if cfg == nil {
		return nil, ErrNilCatalog
	}

	return NewMapper(cfg.catalog, cfg.BuildStore(),
		WithMapperLogger(cfg.Logger),
		WithMapperHooks(cfg.Hooks...))
}
