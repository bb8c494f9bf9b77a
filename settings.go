package hdrloader

import (
	"bytes"
	"errors"
	"io"

	"github.com/vearutop/hdrloader/asset"
	"gopkg.in/yaml.v3"
)

// Settings configures a single HDR load.
// The zero value is the default: pixel data is kept in host memory.
type Settings struct {
	CPUPersistentAccess asset.PersistencePolicy `json:"cpu_persistent_access" yaml:"cpu_persistent_access"`
}

// ParseSettings decodes settings from a YAML sidecar.
// Empty input yields the default settings, unknown fields are rejected.
func ParseSettings(meta []byte) (Settings, error) {
	var s Settings
	if len(bytes.TrimSpace(meta)) == 0 {
		return s, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(meta))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Settings{}, nil
		}
		return Settings{}, newError(KindSettings, err)
	}
	return s, nil
}

// MarshalYAMLSettings encodes s in the sidecar format read by ParseSettings.
func MarshalYAMLSettings(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}
