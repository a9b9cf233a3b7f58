package message

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML document into a resource via ResourceFromMap.
func DecodeYAML(data []byte) (Resource, error) {
	return decode(data, "yaml", func(data []byte, v any) error {
		return yaml.Unmarshal(data, v)
	})
}

// DecodeJSON decodes a JSON document into a resource via ResourceFromMap.
func DecodeJSON(data []byte) (Resource, error) {
	return decode(data, "json", json.Unmarshal)
}

// DecodeTOML decodes a TOML document into a resource via ResourceFromMap.
func DecodeTOML(data []byte) (Resource, error) {
	return decode(data, "toml", toml.Unmarshal)
}

func decode(data []byte, format string, unmarshal func([]byte, any) error) (Resource, error) {
	var doc map[string]any
	if err := unmarshal(data, &doc); err != nil {
		return Resource{}, fmt.Errorf("%w: %s: %s", ErrInvalidResource, format, err)
	}
	return ResourceFromMap(doc)
}
