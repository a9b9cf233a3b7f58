package loader

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/message"
)

// sharedResourceName is the basename of root-level files merged into every
// language's catalog.
const sharedResourceName = "core"

// LoadFS reads localization resources from a filesystem. Language
// directories sit at the root, each holding resource files decoded by
// extension; a root-level "core" file becomes a shared resource merged into
// every language:
//
//	core.yaml
//	en-US/main.yaml
//	en-US/errors.json
//	fr/main.toml
//
// Supported extensions are .yaml, .yml, .json, and .toml (case-insensitive);
// other files are ignored. Files are visited in lexical order, so a given
// tree always yields the same resources. Any unreadable or undecodable file
// fails the whole load.
func LoadFS(fsys fs.FS) (resources map[string][]message.Resource, shared []message.Resource, err error) {
	resources = make(map[string][]message.Resource)

	err = fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		decode, ok := decoderFor(filePath)
		if !ok {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		res, err := decode(data)
		if err != nil {
			return fmt.Errorf("decoding %q: %w", filePath, err)
		}

		dir := path.Dir(filePath)
		if dir == "." {
			if baseName(filePath) != sharedResourceName {
				return fmt.Errorf("loader: file %q must be inside a language directory", filePath)
			}
			shared = append(shared, res)
			return nil
		}

		// Nested directories below the language level are not part of the
		// layout; the language is always the top-level directory name.
		lang := strings.SplitN(dir, "/", 2)[0]
		resources[lang] = append(resources[lang], res)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return resources, shared, nil
}

func decoderFor(filePath string) (func([]byte) (message.Resource, error), bool) {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".yaml", ".yml":
		return message.DecodeYAML, true
	case ".json":
		return message.DecodeJSON, true
	case ".toml":
		return message.DecodeTOML, true
	default:
		return nil, false
	}
}

func baseName(filePath string) string {
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}
