// Package manifest defines the cloud-agnostic infrastructure
// description and its YAML decoding and validation.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

// APIVersion is the manifest schema version this build understands
const APIVersion = "cloudforge/v1"

// Manifest is one infrastructure description file
type Manifest struct {
	// APIVersion is the schema version
	APIVersion string `yaml:"apiVersion"`

	// Name names the deployment
	Name string `yaml:"name"`

	// Resources are the requested compute resources
	Resources []types.ResourceRequest `yaml:"resources"`
}

// Load reads and validates a manifest from a file path
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read manifest", err).WithContext("path", path)
	}
	return Parse(data)
}

// Parse decodes and validates a manifest from YAML bytes
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Config("failed to parse manifest", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks structural invariants the engine relies on
func (m *Manifest) Validate() error {
	if m.APIVersion != "" && m.APIVersion != APIVersion {
		return errors.Input(fmt.Sprintf("unsupported apiVersion: %s (expected %s)", m.APIVersion, APIVersion))
	}
	if len(m.Resources) == 0 {
		return errors.Input("manifest declares no resources")
	}

	seen := make(map[string]bool, len(m.Resources))
	for i, r := range m.Resources {
		if r.Name == "" {
			return errors.Input(fmt.Sprintf("resource %d has no name", i))
		}
		if seen[r.Name] {
			return errors.Input(fmt.Sprintf("duplicate resource name: %s", r.Name))
		}
		seen[r.Name] = true

		if err := validateResource(r); err != nil {
			return err
		}
	}
	return nil
}

func validateResource(r types.ResourceRequest) error {
	// size class XOR explicit cores/memory, never both
	hasFlavor := r.Flavor != ""
	hasExplicit := r.HasExplicitSize()
	switch {
	case hasFlavor && hasExplicit:
		return errors.Input(fmt.Sprintf("resource %s sets both flavor and explicit cores/memory", r.Name))
	case !hasFlavor && !hasExplicit && r.Overrides.InstanceType == "":
		return errors.Input(fmt.Sprintf("resource %s sets neither flavor nor explicit cores/memory", r.Name))
	case hasExplicit && (r.Cores <= 0 || r.MemoryGB <= 0):
		return errors.Input(fmt.Sprintf("resource %s needs both cores and memory_gb > 0", r.Name))
	}

	if r.Image == "" && r.Overrides.ImageID == "" {
		return errors.Input(fmt.Sprintf("resource %s has no image", r.Name))
	}
	if r.Location == "" && r.Overrides.RegionID == "" {
		return errors.Input(fmt.Sprintf("resource %s has no location", r.Name))
	}

	if !r.Provider.IsValid() && !r.Provider.IsVirtual() {
		return errors.Input(fmt.Sprintf("resource %s has unknown provider %q", r.Name, r.Provider))
	}

	if r.GPU != nil {
		if r.GPU.Count <= 0 {
			return errors.Input(fmt.Sprintf("resource %s gpu count must be > 0", r.Name))
		}
		if r.GPU.Type == "" {
			return errors.Input(fmt.Sprintf("resource %s gpu type must be set (use %q for any)", r.Name, types.GPUTypeAny))
		}
	}

	for _, p := range r.ExcludeProviders {
		if !p.IsValid() {
			return errors.Input(fmt.Sprintf("resource %s excludes unknown provider %q", r.Name, p))
		}
	}
	return nil
}
