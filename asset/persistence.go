package asset

import (
	"fmt"
	"strings"
)

// PersistencePolicy controls whether decoded pixel data stays in host memory
// after the GPU upload.
type PersistencePolicy int

const (
	// PersistencePolicyKeep retains Image.Data after upload. It is the default.
	PersistencePolicyKeep PersistencePolicy = iota
	// PersistencePolicyUnload drops Image.Data once the texture is on the GPU.
	PersistencePolicyUnload
)

func (p PersistencePolicy) String() string {
	switch p {
	case PersistencePolicyKeep:
		return "keep"
	case PersistencePolicyUnload:
		return "unload"
	default:
		return fmt.Sprintf("PersistencePolicy(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p PersistencePolicy) MarshalText() ([]byte, error) {
	switch p {
	case PersistencePolicyKeep, PersistencePolicyUnload:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("unknown persistence policy %d", int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, names are case-insensitive.
func (p *PersistencePolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "keep":
		*p = PersistencePolicyKeep
	case "unload":
		*p = PersistencePolicyUnload
	default:
		return fmt.Errorf("unknown persistence policy %q", string(text))
	}
	return nil
}
