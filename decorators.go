package localeurl

// ResolveHook observes alternate-URL resolutions. Hooks run synchronously
// around every MapURLToLocale call, including the per-locale calls made by
// Alternates.
type ResolveHook interface {
	BeforeResolve(ctx *ResolveHookContext)
	AfterResolve(ctx *ResolveHookContext)
}

// ResolveHookContext carries the inputs and outcome of a single resolution.
// AfterResolve may rewrite Result; the mapper returns whatever the last hook
// leaves in place.
type ResolveHookContext struct {
	Path     string
	Language string
	Country  string
	Result   Resolution
	Metadata map[string]any
}

// SetMetadata stores hook-to-hook metadata on the context.
func (ctx *ResolveHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

// MetadataValue reads hook metadata by key.
func (ctx *ResolveHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// ResolveHookFuncs adapts bare functions into a ResolveHook.
type ResolveHookFuncs struct {
	Before func(ctx *ResolveHookContext)
	After  func(ctx *ResolveHookContext)
}

func (h ResolveHookFuncs) BeforeResolve(ctx *ResolveHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h ResolveHookFuncs) AfterResolve(ctx *ResolveHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterResolveHooks(hooks []ResolveHook) []ResolveHook {
	if len(hooks) == 0 {
		return nil
	}
	filtered := make([]ResolveHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}
