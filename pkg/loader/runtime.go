package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"slices"
	"sync/atomic"

	"github.com/dmitrymomot/localekit/pkg/langtag"
	"github.com/dmitrymomot/localekit/pkg/message"
)

// MissingHandler is called when a lookup exhausts every fallback candidate.
// Useful for detecting untranslated identifiers in development or monitoring
// localization gaps in production.
type MissingHandler func(lang langtag.Tag, textID string)

// RuntimeOption configures a RuntimeLoader during construction.
type RuntimeOption func(*runtimeConfig) error

type runtimeConfig struct {
	resources map[string][]message.Resource
	shared    []message.Resource
	filesys   []fs.FS
	fallback  langtag.Tag
	customize Customizer
	missing   MissingHandler
}

// WithResources adds parsed resources for a language, appended to any
// resources already registered for it.
func WithResources(lang string, resources ...message.Resource) RuntimeOption {
	return func(cfg *runtimeConfig) error {
		if lang == "" {
			return langtag.ErrEmptyTag
		}
		cfg.resources[lang] = append(cfg.resources[lang], resources...)
		return nil
	}
}

// WithSharedResources adds resources merged into every language's catalog
// before its own, in the order given.
func WithSharedResources(resources ...message.Resource) RuntimeOption {
	return func(cfg *runtimeConfig) error {
		cfg.shared = append(cfg.shared, resources...)
		return nil
	}
}

// WithFS adds a filesystem source of resources, read at construction and
// re-read on every Reload. See LoadFS for the expected layout.
func WithFS(fsys fs.FS) RuntimeOption {
	return func(cfg *runtimeConfig) error {
		if fsys == nil {
			return errors.New("loader: fs source cannot be nil")
		}
		cfg.filesys = append(cfg.filesys, fsys)
		return nil
	}
}

// WithFallback sets the ultimate fallback language. Required.
func WithFallback(lang langtag.Tag) RuntimeOption {
	return func(cfg *runtimeConfig) error {
		if lang.IsEmpty() {
			return ErrNoFallbackLanguage
		}
		cfg.fallback = lang
		return nil
	}
}

// WithCustomizer sets the hook invoked once per catalog, after all resources
// are merged and before the catalog is frozen.
func WithCustomizer(customize Customizer) RuntimeOption {
	return func(cfg *runtimeConfig) error {
		cfg.customize = customize
		return nil
	}
}

// WithMissingHandler sets the handler called when a lookup resolves nothing
// anywhere in the fallback chain.
func WithMissingHandler(handler MissingHandler) RuntimeOption {
	return func(cfg *runtimeConfig) error {
		cfg.missing = handler
		return nil
	}
}

// RuntimeLoader resolves lookups against catalogs that can be rebuilt at
// run time. Lookups read an immutable snapshot; Reload builds a new snapshot
// off the critical path and swaps it in atomically, so concurrent readers
// always observe either the old or the new state, never a mix.
type RuntimeLoader struct {
	snap    atomic.Pointer[snapshot]
	cfg     runtimeConfig
	missing MissingHandler
}

// NewRuntime builds a RuntimeLoader from the given options. At least one
// resource source (WithResources or WithFS) and a fallback language
// (WithFallback) are required. Construction fails on malformed language
// identifiers, unreadable or undecodable resource files, and catalog merge
// conflicts; no partially-built loader is returned.
func NewRuntime(opts ...RuntimeOption) (*RuntimeLoader, error) {
	cfg := runtimeConfig{resources: make(map[string][]message.Resource)}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if cfg.fallback.IsEmpty() {
		return nil, ErrNoFallbackLanguage
	}
	if len(cfg.resources) == 0 && len(cfg.filesys) == 0 {
		return nil, ErrNoResources
	}

	l := &RuntimeLoader{cfg: cfg, missing: cfg.missing}

	snap, err := l.buildFromConfig()
	if err != nil {
		return nil, err
	}
	l.snap.Store(snap)

	return l, nil
}

// Reload re-reads every filesystem source and rebuilds all catalogs and
// fallback chains. On error the previous snapshot stays in place; on success
// the new snapshot becomes visible atomically to subsequent lookups.
func (l *RuntimeLoader) Reload() error {
	snap, err := l.buildFromConfig()
	if err != nil {
		return err
	}
	l.snap.Store(snap)
	return nil
}

func (l *RuntimeLoader) buildFromConfig() (*snapshot, error) {
	// Clipped copies so appends below never write into the config's slices.
	resources := make(map[string][]message.Resource, len(l.cfg.resources))
	for lang, res := range l.cfg.resources {
		resources[lang] = slices.Clip(res)
	}
	shared := slices.Clip(l.cfg.shared)

	for _, fsys := range l.cfg.filesys {
		fsResources, fsShared, err := LoadFS(fsys)
		if err != nil {
			return nil, err
		}
		for lang, res := range fsResources {
			resources[lang] = append(resources[lang], res...)
		}
		shared = append(shared, fsShared...)
	}

	return buildSnapshot(resources, shared, l.cfg.fallback, l.cfg.customize)
}

// LookupComplete implements Loader.
func (l *RuntimeLoader) LookupComplete(lang langtag.Tag, textID string, args message.Args) string {
	snap := l.snap.Load()
	text, err := snap.tryLookup(lang, textID, args)
	if err == nil {
		return text
	}

	if l.missing != nil && errors.Is(err, ErrNotFound) {
		l.missing(lang, textID)
	}

	var fe *FormatError
	if errors.As(err, &fe) && fe.Partial != "" {
		return fe.Partial
	}

	return sentinel(textID)
}

// TryLookupComplete implements Loader.
func (l *RuntimeLoader) TryLookupComplete(lang langtag.Tag, textID string, args message.Args) (string, error) {
	text, err := l.snap.Load().tryLookup(lang, textID, args)
	if err != nil && l.missing != nil && errors.Is(err, ErrNotFound) {
		l.missing(lang, textID)
	}
	return text, err
}

// Locales implements Loader.
func (l *RuntimeLoader) Locales() iter.Seq[langtag.Tag] {
	return l.snap.Load().localeSeq()
}

// LookupSingleLanguage resolves textID in exactly one language, with no
// fallback of any kind.
func (l *RuntimeLoader) LookupSingleLanguage(lang langtag.Tag, textID string, args message.Args) (string, error) {
	return l.snap.Load().lookupSingle(lang, textID, args)
}

// LookupNoDefaultFallback walks only lang's fallback chain, never the
// ultimate fallback. A language without a chain is a miss.
func (l *RuntimeLoader) LookupNoDefaultFallback(lang langtag.Tag, textID string, args message.Args) (string, error) {
	return l.snap.Load().lookupNoDefault(lang, textID, args)
}

// Fallback returns the ultimate fallback language.
func (l *RuntimeLoader) Fallback() langtag.Tag {
	return l.snap.Load().fallback
}

var _ Loader = (*RuntimeLoader)(nil)
