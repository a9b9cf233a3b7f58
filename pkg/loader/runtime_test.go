package loader_test

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/langtag"
	"github.com/dmitrymomot/localekit/pkg/loader"
	"github.com/dmitrymomot/localekit/pkg/message"
)

func TestNewRuntime(t *testing.T) {
	t.Parallel()

	t.Run("requires a fallback language", func(t *testing.T) {
		t.Parallel()
		_, err := loader.NewRuntime(
			loader.WithResources("en", message.MustNewResource()),
		)
		require.ErrorIs(t, err, loader.ErrNoFallbackLanguage)
	})

	t.Run("requires at least one source", func(t *testing.T) {
		t.Parallel()
		_, err := loader.NewRuntime(loader.WithFallback(langtag.MustParse("en")))
		require.ErrorIs(t, err, loader.ErrNoResources)
	})

	t.Run("rejects empty language in resources", func(t *testing.T) {
		t.Parallel()
		_, err := loader.NewRuntime(
			loader.WithResources("", message.MustNewResource()),
			loader.WithFallback(langtag.MustParse("en")),
		)
		require.ErrorIs(t, err, langtag.ErrEmptyTag)
	})

	t.Run("builds from explicit resources", func(t *testing.T) {
		t.Parallel()
		l, err := loader.NewRuntime(
			loader.WithResources("en-US", message.MustNewResource(
				message.New("hello-world", message.Text("Hello World!")),
			)),
			loader.WithFallback(langtag.MustParse("en-US")),
		)
		require.NoError(t, err)
		require.Equal(t, "Hello World!", loader.Lookup(l, langtag.MustParse("en-US"), "hello-world"))
	})

	t.Run("fallback language need not be loaded", func(t *testing.T) {
		t.Parallel()
		l, err := loader.NewRuntime(
			loader.WithResources("fr", message.MustNewResource(
				message.New("hello-world", message.Text("Bonjour le monde!")),
			)),
			loader.WithFallback(langtag.MustParse("en-US")),
		)
		require.NoError(t, err)

		// fr still resolves; anything else exhausts the chain.
		require.Equal(t, "Bonjour le monde!", loader.Lookup(l, langtag.MustParse("fr"), "hello-world"))
		require.Equal(t, "Unknown localization hello-world",
			loader.Lookup(l, langtag.MustParse("de"), "hello-world"))
	})

	t.Run("shared resources and customizer are applied", func(t *testing.T) {
		t.Parallel()
		l, err := loader.NewRuntime(
			loader.WithResources("en", message.MustNewResource(
				message.New("hello", message.Text("Hello")),
			)),
			loader.WithSharedResources(message.MustNewResource(
				message.New("app-name", message.Text("Localekit")),
			)),
			loader.WithCustomizer(func(b *loader.CatalogBuilder) {
				b.RemoveMessage("hello")
			}),
			loader.WithFallback(langtag.MustParse("en")),
		)
		require.NoError(t, err)

		require.Equal(t, "Localekit", loader.Lookup(l, langtag.MustParse("en"), "app-name"))
		_, err = loader.TryLookup(l, langtag.MustParse("en"), "hello")
		require.ErrorIs(t, err, loader.ErrNotFound)
	})
}

func TestRuntimeLoaderFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"core.yaml":       {Data: []byte("app-name: Localekit\n")},
		"en-US/main.yaml": {Data: []byte("hello-world: Hello World!\n")},
		"fr/main.json":    {Data: []byte(`{"hello-world": "Bonjour le monde!"}`)},
	}

	l, err := loader.NewRuntime(
		loader.WithFS(fsys),
		loader.WithFallback(langtag.MustParse("en-US")),
	)
	require.NoError(t, err)

	t.Run("loads language directories", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Bonjour le monde!", loader.Lookup(l, langtag.MustParse("fr"), "hello-world"))
	})

	t.Run("root core file is shared across languages", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Localekit", loader.Lookup(l, langtag.MustParse("fr"), "app-name"))
		require.Equal(t, "Localekit", loader.Lookup(l, langtag.MustParse("en-US"), "app-name"))
	})
}

func TestRuntimeLoaderReload(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/main.yaml": {Data: []byte("hello: Hello\n")},
	}

	l, err := loader.NewRuntime(
		loader.WithFS(fsys),
		loader.WithFallback(langtag.MustParse("en")),
	)
	require.NoError(t, err)
	require.Equal(t, "Hello", loader.Lookup(l, langtag.MustParse("en"), "hello"))

	t.Run("reload picks up changed resources", func(t *testing.T) {
		fsys["en/main.yaml"] = &fstest.MapFile{Data: []byte("hello: Howdy\n")}
		fsys["de/main.yaml"] = &fstest.MapFile{Data: []byte("hello: Hallo\n")}

		require.NoError(t, l.Reload())
		require.Equal(t, "Howdy", loader.Lookup(l, langtag.MustParse("en"), "hello"))
		require.Equal(t, "Hallo", loader.Lookup(l, langtag.MustParse("de"), "hello"))
	})

	t.Run("failed reload keeps the previous snapshot", func(t *testing.T) {
		fsys["en/broken.json"] = &fstest.MapFile{Data: []byte("{")}

		err := l.Reload()
		require.ErrorIs(t, err, message.ErrInvalidResource)
		require.Equal(t, "Howdy", loader.Lookup(l, langtag.MustParse("en"), "hello"))

		delete(fsys, "en/broken.json")
	})
}

func TestRuntimeLoaderMissingHandler(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		missed []string
	)

	l, err := loader.NewRuntime(
		loader.WithResources("en", message.MustNewResource(
			message.New("hello", message.Text("Hello")),
		)),
		loader.WithFallback(langtag.MustParse("en")),
		loader.WithMissingHandler(func(lang langtag.Tag, textID string) {
			mu.Lock()
			missed = append(missed, lang.String()+":"+textID)
			mu.Unlock()
		}),
	)
	require.NoError(t, err)

	require.Equal(t, "Hello", loader.Lookup(l, langtag.MustParse("en"), "hello"))
	require.Empty(t, missed)

	loader.Lookup(l, langtag.MustParse("en"), "nope")
	require.Equal(t, []string{"en:nope"}, missed)
}

func TestRuntimeLoaderConcurrentLookups(t *testing.T) {
	t.Parallel()

	l, err := loader.NewRuntime(
		loader.WithResources("en", message.MustNewResource(
			message.New("hello", message.Text("Hello")),
		)),
		loader.WithFallback(langtag.MustParse("en")),
	)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			for range 100 {
				if got := loader.Lookup(l, langtag.MustParse("en"), "hello"); got != "Hello" {
					t.Errorf("lookup returned %q", got)
					return
				}
			}
		})
	}
	wg.Wait()
}
