package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Load reads a profile file, picking the codec by extension (.json,
// .yaml/.yml, .toml).
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	switch ext(path) {
	case "json":
		err = json.Unmarshal(data, &p)
	case "yaml":
		err = yaml.Unmarshal(data, &p)
	case "toml":
		err = toml.Unmarshal(data, &p)
	default:
		return nil, fmt.Errorf("unsupported profile format %q (want .json, .yaml or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &p, nil
}

// Save writes the profile, picking the codec by extension.
func (p *Profile) Save(path string) error {
	var data []byte
	var err error
	switch ext(path) {
	case "json":
		if data, err = json.MarshalIndent(p, "", "  "); err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(p)
	case "toml":
		data, err = toml.Marshal(p)
	default:
		return fmt.Errorf("unsupported profile format %q (want .json, .yaml or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func ext(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return ""
}
