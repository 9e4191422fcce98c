package localeurl

import "context"

// HreflangDefault is the hreflang value pointing search engines at the
// locale-independent default variant.
const HreflangDefault = "x-default"

// SwitcherLink is one entry of a language-switcher menu or hreflang link
// set: a locale, its display label and the resolved alternate URL for the
// page being viewed.
type SwitcherLink struct {
	Key         string
	URL         string
	Hreflang    string
	DisplayName string
	Current     bool
}

// SwitcherLinks resolves the alternate set for path and shapes it into an
// ordered link list: one entry per catalog locale in definition order,
// followed by an x-default entry pointing at the default locale's URL.
func (m *Mapper) SwitcherLinks(ctx context.Context, path string) []SwitcherLink {
	if m == nil || m.catalog == nil {
		return nil
	}

	alternates := m.Alternates(ctx, path)
	currentKey := m.CurrentLocale(path).Key()

	keys := m.catalog.Keys()
	links := make([]SwitcherLink, 0, len(keys)+1)

	for _, key := range keys {
		definition, ok := m.catalog.Definition(key)
		if !ok {
			continue
		}
		resolution, ok := alternates[key]
		if !ok || resolution.URL == "" {
			resolution = Resolution{
				URL:    m.catalog.HomepageFor(definition.Language, definition.Country),
				Source: SourceHomepage,
			}
		}
		links = append(links, SwitcherLink{
			Key:         key,
			URL:         resolution.URL,
			Hreflang:    definition.Hreflang,
			DisplayName: definition.DisplayName,
			Current:     key == currentKey,
		})
	}

	defaultKey := m.catalog.DefaultKey()
	if resolution, ok := alternates[defaultKey]; ok {
		links = append(links, SwitcherLink{
			Key:         defaultKey,
			URL:         resolution.URL,
			Hreflang:    HreflangDefault,
			DisplayName: m.catalog.Default().DisplayName,
		})
	}

	return links
}
