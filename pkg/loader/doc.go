// Package loader resolves localized messages by walking deterministic
// language fallback chains over immutable per-language catalogs.
//
// A loader is built once from parsed resources and is safe for unrestricted
// concurrent use afterwards. Looking up an identifier walks the requested
// language's fallback chain (pre-computed by langtag.BuildFallbacks), then
// the designated ultimate fallback language, and finally degrades to the
// sentinel "Unknown localization <id>" — or, on the Try paths, to an
// explicit error:
//
//	l, err := loader.NewStatic(map[string][]message.Resource{
//		"en-US": {message.MustNewResource(
//			message.New("hello-world", message.Text("Hello World!")),
//		)},
//		"fr": {message.MustNewResource(
//			message.New("hello-world", message.Text("Bonjour le monde!")),
//		)},
//	}, nil, langtag.MustParse("en-US"), nil)
//
//	loader.Lookup(l, langtag.MustParse("fr"), "hello-world")
//	// "Bonjour le monde!"
//	loader.Lookup(l, langtag.MustParse("de"), "hello-world")
//	// "Hello World!" (ultimate fallback)
//
// Identifiers of the form "msg.attr" address a named attribute of a message
// instead of its primary value.
//
// # Unknown languages
//
// A requested language no catalog was built for is handled leniently: it is
// negotiated against the known languages on the fly ("de-AT" reaches a
// loaded "de") and otherwise falls through to the ultimate fallback. Lookups
// never abort because of an unrecognized language. The one strict surface is
// LookupNoDefaultFallback, which walks only the pre-computed chain.
//
// # Misses versus formatting failures
//
// An identifier absent from a catalog is a miss and continues the chain
// walk. A message that exists but cannot be rendered (a referenced argument
// is missing) is a *FormatError and stops the walk: the Try paths return it,
// the non-failing paths return the engine's best-effort output.
//
// # Loader variants
//
// StaticLoader freezes its catalogs at construction. RuntimeLoader supports
// hot reload: Reload builds a complete new snapshot off the critical path
// and swaps it in atomically, so concurrent readers never observe a
// mid-update state. MultiLoader composes independent loaders in priority
// order, delegating to the first source that answers.
package loader
