package localeurl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"gopkg.in/yaml.v3"
)

// MappingLoader retrieves the mapping table used to seed a MappingStore.
type MappingLoader interface {
	Load(ctx context.Context) (Mappings, error)
}

// LoaderFunc adapters allow bare functions to implement MappingLoader.
type LoaderFunc func(ctx context.Context) (Mappings, error)

// Load implements MappingLoader for LoaderFunc.
func (fn LoaderFunc) Load(ctx context.Context) (Mappings, error) {
	return fn(ctx)
}

// sheetFieldAliases tolerates both camelCase and flattened-lowercase row
// field names. Author tooling normalizes sheet headers inconsistently, so
// both spellings are accepted through an explicit alias table.
var sheetFieldAliases = map[string][]string{
	"sourceLocale": {"sourceLocale", "sourcelocale"},
	"sourcePath":   {"sourcePath", "sourcepath"},
	"targetLocale": {"targetLocale", "targetlocale"},
	"targetPath":   {"targetPath", "targetpath"},
}

type sheetPayload struct {
	Data []map[string]any `json:"data"`
}

// SheetLoader fetches the sheet-backed remote mapping resource. Rows missing
// any of the four fields are skipped; a payload with zero usable rows yields
// ErrNoMappings so the store can fall through to the fallback loader.
type SheetLoader struct {
	url    string
	client *http.Client
}

// SheetLoaderOption mutates a SheetLoader during construction.
type SheetLoaderOption func(*SheetLoader)

// WithSheetHTTPClient overrides the HTTP client used to fetch the sheet.
func WithSheetHTTPClient(client *http.Client) SheetLoaderOption {
	return func(l *SheetLoader) {
		if client != nil {
			l.client = client
		}
	}
}

// NewSheetLoader builds a loader for the given mapping resource URL.
func NewSheetLoader(url string, opts ...SheetLoaderOption) *SheetLoader {
	loader := &SheetLoader{
		url:    url,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(loader)
	}
	return loader
}

// Load implements MappingLoader.
func (l *SheetLoader) Load(ctx context.Context) (Mappings, error) {
	if l == nil || l.url == "" {
		return nil, ErrNoMappings
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "localeurl: build mapping request")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "localeurl: fetch url mappings")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerrors.Wrap(fmt.Errorf("unexpected status %s", resp.Status), goerrors.CategoryExternal, "localeurl: fetch url mappings")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "localeurl: read url mappings")
	}

	var payload sheetPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "localeurl: decode url mappings")
	}

	table := decodeSheetRows(payload.Data)
	if table.Len() == 0 {
		return nil, ErrNoMappings
	}

	return table, nil
}

// decodeSheetRows translates remote rows into the canonical nested table
// shape. Partial rows are dropped individually rather than failing the load.
func decodeSheetRows(rows []map[string]any) Mappings {
	table := make(Mappings)

	for _, row := range rows {
		sourceLocale, ok := sheetRowField(row, "sourceLocale")
		if !ok {
			continue
		}
		sourcePath, ok := sheetRowField(row, "sourcePath")
		if !ok {
			continue
		}
		targetLocale, ok := sheetRowField(row, "targetLocale")
		if !ok {
			continue
		}
		targetPath, ok := sheetRowField(row, "targetPath")
		if !ok {
			continue
		}

		table.Set(normalizeCode(sourceLocale), sourcePath, MappingTarget{
			Locale: normalizeCode(targetLocale),
			Path:   targetPath,
		})
	}

	return table
}

func sheetRowField(row map[string]any, field string) (string, bool) {
	for _, alias := range sheetFieldAliases[field] {
		raw, ok := row[alias]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		return value, true
	}
	return "", false
}

// FileLoader reads a local fallback mapping file. The file is already in the
// canonical nested shape, keyed by locale key then source path, with the
// target path as a plain string. JSON and YAML are supported by extension.
type FileLoader struct {
	path string
}

// NewFileLoader builds a loader for the given mapping file path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load implements MappingLoader.
func (l *FileLoader) Load(ctx context.Context) (Mappings, error) {
	if l == nil || l.path == "" {
		return nil, ErrNoMappings
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("localeurl: read %s: %w", l.path, err)
	}

	raw, err := decodeMappingFile(l.path, data)
	if err != nil {
		return nil, fmt.Errorf("localeurl: decode %s: %w", l.path, err)
	}

	table := make(Mappings)
	for localeKey, bucket := range raw {
		normalized := normalizeCode(localeKey)
		for sourcePath, targetPath := range bucket {
			if sourcePath == "" || targetPath == "" {
				continue
			}
			table.Set(normalized, sourcePath, MappingTarget{Path: targetPath})
		}
	}

	if table.Len() == 0 {
		return nil, ErrNoMappings
	}

	return table, nil
}

func decodeMappingFile(path string, data []byte) (map[string]map[string]string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw map[string]map[string]string
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	return raw, nil
}

// StaticLoader wraps a pre-built table, mostly useful in tests and examples.
func StaticLoader(table Mappings) MappingLoader {
	return LoaderFunc(func(context.Context) (Mappings, error) {
		if table.Len() == 0 {
			return nil, ErrNoMappings
		}
		return table.Clone(), nil
	})
}
