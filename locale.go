package localeurl

import "strings"

// LocaleKey returns the canonical "language-country" form used to index the
// mapping table and the catalog.
func LocaleKey(language, country string) string {
	language = normalizeCode(language)
	country = normalizeCode(country)
	if language == "" || country == "" {
		return ""
	}
	return language + "-" + country
}

// SplitLocaleKey breaks a canonical locale key back into its language and
// country codes. Malformed keys yield empty strings.
func SplitLocaleKey(key string) (language, country string) {
	parts := strings.Split(normalizeCode(key), "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", ""
	}
	return parts[0], parts[1]
}

// normalizeCode normalizes a language or country code by trimming
// whitespace and lowercasing.
func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// splitPathSegments splits a URL path into its non-empty segments.
func splitPathSegments(path string) []string {
	if path == "" {
		return nil
	}
	raw := strings.Split(path, "/")
	segments := make([]string, 0, len(raw))
	for _, segment := range raw {
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}

func normalizeCodes(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(codes))
	result := make([]string, 0, len(codes))
	for _, code := range codes {
		normalized := normalizeCode(code)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}
