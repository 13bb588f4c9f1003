package fileops

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/ghetzel/go-stockutil/typeutil"
	yaml "gopkg.in/yaml.v2"
)

// LoadConfig reads the named file and parses it into a map according to its
// extension: .toml, .yaml/.yml, .json, or .env/.txt (flat "key=value" lines,
// "#" comments).  Nested YAML/TOML/JSON structures are preserved.
func LoadConfig(path string) (map[string]interface{}, error) {
	data, err := ReadString(path)

	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case `.toml`:
		if _, err := toml.Decode(data, &out); err != nil {
			return nil, err
		}
	case `.yaml`, `.yml`:
		var parsed map[interface{}]interface{}

		if err := yaml.Unmarshal([]byte(data), &parsed); err == nil {
			for k, v := range parsed {
				out[typeutil.String(k)] = stringifyKeys(v)
			}
		} else {
			return nil, err
		}
	case `.json`:
		if err := json.Unmarshal([]byte(data), &out); err != nil {
			return nil, err
		}
	case `.env`, `.txt`:
		for _, line := range strings.Split(data, "\n") {
			line = strings.TrimSpace(line)

			if len(line) == 0 || strings.HasPrefix(line, `#`) {
				continue
			}

			k, v := stringutil.SplitPair(line, `=`)
			out[strings.TrimSpace(k)] = typeutil.Auto(strings.TrimSpace(v))
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	return out, nil
}

// LoadConfigInto parses the named config file and deep-merges each value into
// the given struct or map via maputil.
func LoadConfigInto(path string, into map[string]interface{}) error {
	if parsed, err := LoadConfig(path); err == nil {
		for k, v := range parsed {
			maputil.DeepSet(into, strings.Split(k, `.`), v)
		}

		return nil
	} else {
		return err
	}
}

// yaml.v2 decodes mappings as map[interface{}]interface{}; rekey them as
// strings all the way down so the result is JSON-encodable.
func stringifyKeys(in interface{}) interface{} {
	switch v := in.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))

		for k, vv := range v {
			out[typeutil.String(k)] = stringifyKeys(vv)
		}

		return out
	case []interface{}:
		for i, vv := range v {
			v[i] = stringifyKeys(vv)
		}

		return v
	default:
		return in
	}
}
