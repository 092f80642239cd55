package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// LoadPanelProfile loads a panel profile from a YAML file. Keys left out of
// the file keep their default values.
func LoadPanelProfile(path string) (*model.PanelProfile, error) {
	if path == "" {
		return nil, goerr.New("panel profile path is required")
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "panel profile not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read panel profile",
			goerr.V("path", path))
	}

	// Parse YAML
	var profile model.PanelProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, goerr.Wrap(err, "failed to parse panel profile",
			goerr.V("path", path))
	}
	profile = profile.WithDefaults()

	if err := profile.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid panel profile",
			goerr.V("path", path))
	}

	return &profile, nil
}
