package rawview

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Workspaces name the two 12-bit packings used by the supported cameras.
const (
	WorkspaceCE7 = "CE7" // packed
	WorkspaceTW2 = "TW2" // high-zero
)

// WorkspaceHighZero returns the packing of a named workspace.
func WorkspaceHighZero(name string) (bool, error) {
	switch strings.ToUpper(name) {
	case WorkspaceCE7:
		return false, nil
	case WorkspaceTW2:
		return true, nil
	default:
		return false, configErrorf(UnsupportedFormat, "workspace %q, supported: CE7, TW2", name)
	}
}

// Profile is a named, persisted set of decode parameters.
type Profile struct {
	Name      string `yaml:"name,omitempty"`
	Workspace string `yaml:"workspace,omitempty"`
	Params    `yaml:",inline"`
}

// LoadProfile reads a YAML profile. Fields missing from the file keep
// their DefaultParams values; a workspace overrides high_zero.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	prof := &Profile{Params: DefaultParams()}
	if err := yaml.Unmarshal(data, prof); err != nil {
		return nil, fmt.Errorf("rawview: parse profile %s: %w", path, err)
	}
	if prof.Workspace != "" {
		hz, err := WorkspaceHighZero(prof.Workspace)
		if err != nil {
			return nil, err
		}
		prof.HighZero = hz
	}
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("rawview: profile %s: %w", path, err)
	}
	return prof, nil
}

// SaveProfile writes prof to path as YAML.
func SaveProfile(path string, prof *Profile) error {
	data, err := yaml.Marshal(prof)
	if err != nil {
		return fmt.Errorf("rawview: encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
