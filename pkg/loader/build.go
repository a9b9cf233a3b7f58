package loader

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/localekit/pkg/langtag"
	"github.com/dmitrymomot/localekit/pkg/message"
)

// languageResources pairs a parsed language with every resource supplied for
// it, across all spellings of its key.
type languageResources struct {
	tag       langtag.Tag
	resources []message.Resource
}

// buildSnapshot constructs the frozen lookup state: one catalog per language
// (built concurrently, each merging the shared resources first) and the
// fallback chain map over the full language set. Resource keys are grouped
// by canonical tag first, so spellings like "en-US" and "en_US" merge into
// one catalog — and genuine duplicate messages between them surface as a
// conflict — instead of one spelling silently overwriting the other. Any
// malformed language key or catalog merge conflict aborts the build; no
// partial snapshot is ever returned.
func buildSnapshot(resources map[string][]message.Resource, shared []message.Resource, fallback langtag.Tag, customize Customizer) (*snapshot, error) {
	grouped := make(map[string]languageResources, len(resources))
	for _, key := range slices.Sorted(maps.Keys(resources)) {
		tag, err := langtag.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("parsing language %q: %w", key, err)
		}

		group := grouped[tag.String()]
		group.tag = tag
		group.resources = append(group.resources, resources[key]...)
		grouped[tag.String()] = group
	}

	var (
		mu       sync.Mutex
		g        errgroup.Group
		catalogs = make(map[string]*Catalog, len(grouped))
	)

	for canonical, group := range grouped {
		g.Go(func() error {
			catalog, err := BuildCatalog(group.tag, group.resources, shared, customize)
			if err != nil {
				return fmt.Errorf("building catalog for %s: %w", group.tag, err)
			}

			mu.Lock()
			catalogs[canonical] = catalog
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	locales := make([]langtag.Tag, 0, len(grouped))
	for _, group := range grouped {
		locales = append(locales, group.tag)
	}

	return &snapshot{
		catalogs:  catalogs,
		fallbacks: langtag.BuildFallbacks(locales),
		locales:   locales,
		fallback:  fallback,
	}, nil
}
