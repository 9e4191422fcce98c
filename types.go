package localeurl

// SegmentOrder identifies which locale segment leads a URL path.
type SegmentOrder string

const (
	// OrderLanguageFirst is the default /lang/country convention.
	OrderLanguageFirst SegmentOrder = "lang-country"
	// OrderCountryFirst is the /country/lang convention used by
	// country-first markets.
	OrderCountryFirst SegmentOrder = "country-lang"
)

// ParsedPath is the result of interpreting a URL path against the locale
// grammar. A path with fewer than two segments yields an explicitly invalid
// result rather than an error: Order is empty, Valid is false and Remainder
// carries the original path untouched.
type ParsedPath struct {
	Order        SegmentOrder
	Language     string
	Country      string
	Remainder    string
	LocalePrefix string
	Valid        bool
}

// IsLocalePath reports whether the path carried enough segments to extract
// a locale pair, regardless of whether the pair is supported.
func (p ParsedPath) IsLocalePath() bool {
	return p.Order != ""
}

// MappingTarget is the resolved side of an exact mapping table entry.
type MappingTarget struct {
	Locale string
	Path   string
}

// Mappings is the two-level mapping table keyed by locale key, then by
// exact source path.
type Mappings map[string]map[string]MappingTarget

// Lookup returns the target for localeKey/sourcePath and ok=false if missing.
func (m Mappings) Lookup(localeKey, sourcePath string) (MappingTarget, bool) {
	if len(m) == 0 {
		return MappingTarget{}, false
	}
	bucket, ok := m[localeKey]
	if !ok || bucket == nil {
		return MappingTarget{}, false
	}
	target, ok := bucket[sourcePath]
	return target, ok
}

// Set registers a mapping entry, allocating buckets as needed.
func (m Mappings) Set(localeKey, sourcePath string, target MappingTarget) {
	if m == nil || localeKey == "" || sourcePath == "" {
		return
	}
	bucket := m[localeKey]
	if bucket == nil {
		bucket = make(map[string]MappingTarget)
		m[localeKey] = bucket
	}
	bucket[sourcePath] = target
}

// Len returns the total number of mapping rows across all locale keys.
func (m Mappings) Len() int {
	total := 0
	for _, bucket := range m {
		total += len(bucket)
	}
	return total
}

// Clone builds a deep copy so cached tables stay immutable.
func (m Mappings) Clone() Mappings {
	if m == nil {
		return nil
	}
	out := make(Mappings, len(m))
	for localeKey, bucket := range m {
		if bucket == nil {
			continue
		}
		clone := make(map[string]MappingTarget, len(bucket))
		for path, target := range bucket {
			clone[path] = target
		}
		out[localeKey] = clone
	}
	return out
}

// ResolutionSource names the rung of the fallback ladder that produced a URL.
type ResolutionSource string

const (
	// SourceMapping marks an exact mapping table hit.
	SourceMapping ResolutionSource = "mapping"
	// SourcePrefix marks a heuristic locale-prefix substitution.
	SourcePrefix ResolutionSource = "prefix"
	// SourceHomepage marks the target locale homepage fallback.
	SourceHomepage ResolutionSource = "homepage"
)

// Resolution is the outcome of a single alternate-URL resolution. URL is
// never empty; Source records why that URL was chosen so callers and tests
// can distinguish an authoritative mapping from a degraded fallback.
type Resolution struct {
	URL    string
	Source ResolutionSource
}
