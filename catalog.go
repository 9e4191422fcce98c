package localeurl

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LocaleDefinition describes a single supported language+country pair.
type LocaleDefinition struct {
	Language    string
	Country     string
	Hreflang    string
	DisplayName string
}

// Key returns the canonical locale key for the definition.
func (d LocaleDefinition) Key() string {
	return LocaleKey(d.Language, d.Country)
}

// LocaleCatalog is an immutable snapshot of the supported-locale table, the
// country-first set and the default locale. A (language, country) pair is
// valid only when it appears in the table; individually known codes do not
// make an arbitrary combination valid.
type LocaleCatalog struct {
	defaultKey   string
	locales      map[string]LocaleDefinition
	keys         []string
	countryFirst map[string]struct{}
}

// NewLocaleCatalog validates the definitions and builds a catalog. The
// default locale may be empty, in which case the first definition wins.
// Hreflang tags are validated with x/text and derived from the pair when
// absent.
func NewLocaleCatalog(defaultLocale string, definitions []LocaleDefinition, countryFirst ...string) (*LocaleCatalog, error) {
	if len(definitions) == 0 {
		return nil, ErrNoLocales
	}

	locales := make(map[string]LocaleDefinition, len(definitions))
	keys := make([]string, 0, len(definitions))

	for _, definition := range definitions {
		definition.Language = normalizeCode(definition.Language)
		definition.Country = normalizeCode(definition.Country)

		key := definition.Key()
		if key == "" {
			return nil, fmt.Errorf("localeurl: locale definition %q/%q has empty codes", definition.Language, definition.Country)
		}
		if _, exists := locales[key]; exists {
			return nil, fmt.Errorf("localeurl: duplicate locale %q", key)
		}

		hreflang, err := resolveHreflang(definition)
		if err != nil {
			return nil, err
		}
		definition.Hreflang = hreflang

		locales[key] = definition
		keys = append(keys, key)
	}

	normalizedDefault := normalizeCode(defaultLocale)
	if normalizedDefault == "" {
		normalizedDefault = keys[0]
	}
	if _, exists := locales[normalizedDefault]; !exists {
		return nil, fmt.Errorf("localeurl: default locale %q not defined", normalizedDefault)
	}

	catalog := &LocaleCatalog{
		defaultKey: normalizedDefault,
		locales:    locales,
		keys:       keys,
	}

	if codes := normalizeCodes(countryFirst); len(codes) > 0 {
		catalog.countryFirst = make(map[string]struct{}, len(codes))
		for _, code := range codes {
			catalog.countryFirst[code] = struct{}{}
		}
	}

	return catalog, nil
}

func resolveHreflang(definition LocaleDefinition) (string, error) {
	raw := strings.TrimSpace(definition.Hreflang)
	if raw == "" {
		// Derive from the pair; URL country segments are not always real
		// BCP 47 regions, so an unparseable derivation is kept as-is.
		derived := definition.Language + "-" + definition.Country
		if tag, err := language.Parse(derived); err == nil {
			return tag.String(), nil
		}
		return derived, nil
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("localeurl: locale %q has invalid hreflang %q: %w", definition.Key(), raw, err)
	}
	return tag.String(), nil
}

// DefaultKey returns the configured default locale key.
func (c *LocaleCatalog) DefaultKey() string {
	if c == nil {
		return ""
	}
	return c.defaultKey
}

// Default returns the definition of the default locale.
func (c *LocaleCatalog) Default() LocaleDefinition {
	if c == nil {
		return LocaleDefinition{}
	}
	return c.locales[c.defaultKey]
}

// Keys returns every locale key in definition order.
func (c *LocaleCatalog) Keys() []string {
	if c == nil || len(c.keys) == 0 {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Locales returns every definition in definition order.
func (c *LocaleCatalog) Locales() []LocaleDefinition {
	if c == nil || len(c.keys) == 0 {
		return nil
	}
	out := make([]LocaleDefinition, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, c.locales[key])
	}
	return out
}

// Definition returns the full definition for a locale key.
func (c *LocaleCatalog) Definition(key string) (LocaleDefinition, bool) {
	if c == nil {
		return LocaleDefinition{}, false
	}
	definition, ok := c.locales[normalizeCode(key)]
	return definition, ok
}

// Has reports whether the (language, country) pair is in the supported table.
func (c *LocaleCatalog) Has(language, country string) bool {
	if c == nil {
		return false
	}
	_, ok := c.locales[LocaleKey(language, country)]
	return ok
}

// IsCountryFirst reports whether the code belongs to the country-first set.
func (c *LocaleCatalog) IsCountryFirst(code string) bool {
	if c == nil || len(c.countryFirst) == 0 {
		return false
	}
	_, ok := c.countryFirst[normalizeCode(code)]
	return ok
}

// PrefixFor reconstructs the locale path prefix for the pair, honouring the
// country-first convention. The order is a property of the country code
// alone: the same country always yields the same segment order.
func (c *LocaleCatalog) PrefixFor(language, country string) string {
	language = normalizeCode(language)
	country = normalizeCode(country)
	if language == "" || country == "" {
		return ""
	}
	if c.IsCountryFirst(country) {
		return "/" + country + "/" + language
	}
	return "/" + language + "/" + country
}

// HomepageFor returns the locale root path for the pair.
func (c *LocaleCatalog) HomepageFor(language, country string) string {
	prefix := c.PrefixFor(language, country)
	if prefix == "" {
		return "/"
	}
	return prefix + "/"
}

// ParsePath interprets the leading two segments of a URL path as a locale
// pair. It is a pure function of the path and the catalog tables.
//
// The first segment decides the convention: membership in the country-first
// set reads the path as /country/lang, anything else as /lang/country. A
// code present in both the language and country-first sets is disambiguated
// purely by this positional rule. That is a deliberate simplification
// carried over from the URL grammar, not a defect to tighten here.
func (c *LocaleCatalog) ParsePath(path string) ParsedPath {
	segments := splitPathSegments(path)
	if c == nil || len(segments) < 2 {
		return ParsedPath{Remainder: path}
	}

	first := normalizeCode(segments[0])
	second := normalizeCode(segments[1])

	parsed := ParsedPath{}
	if c.IsCountryFirst(first) {
		parsed.Order = OrderCountryFirst
		parsed.Country = first
		parsed.Language = second
		parsed.LocalePrefix = "/" + parsed.Country + "/" + parsed.Language
	} else {
		parsed.Order = OrderLanguageFirst
		parsed.Language = first
		parsed.Country = second
		parsed.LocalePrefix = "/" + parsed.Language + "/" + parsed.Country
	}

	parsed.Remainder = "/" + strings.Join(segments[2:], "/")
	parsed.Valid = c.Has(parsed.Language, parsed.Country)

	return parsed
}
