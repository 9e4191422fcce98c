package localeurl

import "errors"

// ErrNoMappings indicates a loader produced zero usable mapping rows.
var ErrNoMappings = errors.New("localeurl: no usable mapping rows")

// ErrNoLocales indicates a catalog was constructed without locale definitions.
var ErrNoLocales = errors.New("localeurl: no locales defined")

// ErrNilCatalog marks mapper construction without a locale catalog.
var ErrNilCatalog = errors.New("localeurl: locale catalog is required")
