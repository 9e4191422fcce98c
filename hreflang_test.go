package localeurl

import (
	"context"
	"testing"
)

func TestSwitcherLinks(t *testing.T) {
	mapper := testMapper(t, nil, nil)

	links := mapper.SwitcherLinks(context.Background(), "/ch/de/uber-uns")
	if len(links) != 4 {
		t.Fatalf("SwitcherLinks returned %d entries, want 3 locales + x-default", len(links))
	}

	wantOrder := []string{"en-uk", "de-ch", "fr-ch", "en-uk"}
	for i, key := range wantOrder {
		if links[i].Key != key {
			t.Fatalf("links[%d].Key = %q, want %q", i, links[i].Key, key)
		}
	}

	for i, link := range links {
		if link.URL == "" {
			t.Fatalf("links[%d] has empty URL", i)
		}
	}

	if links[0].Hreflang != "en-GB" || links[1].Hreflang != "de-CH" {
		t.Fatalf("hreflang tags = %q,%q", links[0].Hreflang, links[1].Hreflang)
	}
	if links[3].Hreflang != HreflangDefault {
		t.Fatalf("last link hreflang = %q, want %q", links[3].Hreflang, HreflangDefault)
	}

	if !links[1].Current {
		t.Fatal("de-ch should be marked current")
	}
	if links[0].Current || links[2].Current || links[3].Current {
		t.Fatal("only the current locale may carry the Current flag")
	}

	if links[1].URL != "/ch/de/uber-uns" {
		t.Fatalf("current locale URL = %q", links[1].URL)
	}
	if links[2].URL != "/ch/fr/uber-uns" {
		t.Fatalf("fr alternate = %q, want prefix substitution", links[2].URL)
	}
	if links[3].URL != "/en/uk/uber-uns" {
		t.Fatalf("x-default URL = %q, want the default locale alternate", links[3].URL)
	}
}

func TestSwitcherLinksInvalidPath(t *testing.T) {
	mapper := testMapper(t, nil, nil)

	links := mapper.SwitcherLinks(context.Background(), "/unknownpath")
	if len(links) != 4 {
		t.Fatalf("SwitcherLinks returned %d entries", len(links))
	}

	homepages := map[string]string{
		"en-uk": "/en/uk/",
		"de-ch": "/ch/de/",
		"fr-ch": "/ch/fr/",
	}
	for _, link := range links[:3] {
		if link.URL != homepages[link.Key] {
			t.Fatalf("link %q URL = %q, want homepage %q", link.Key, link.URL, homepages[link.Key])
		}
	}

	// The default locale is current when the path carries no locale.
	if !links[0].Current {
		t.Fatal("default locale should be current for non-locale paths")
	}
}
