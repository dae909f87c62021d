package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/prismslide/internal/board"
)

//go:embed defaults/modules.yaml
var defaultModulesYAML []byte

// Load reads the module catalogue.
// Search order: customPath -> ~/.prismslide/modules.yaml -> ./modules.yaml -> embedded default
func Load(customPath string) ([]*board.Module, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalogue %s: %w", customPath, err)
		}
		modules, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse catalogue %s: %w", customPath, err)
		}
		return modules, nil
	}

	if userPath := userCataloguePath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if modules, err := Parse(data); err == nil {
				return modules, nil
			}
		}
	}

	if data, err := os.ReadFile("modules.yaml"); err == nil {
		if modules, err := Parse(data); err == nil {
			return modules, nil
		}
	}

	return Default()
}

// Default returns the embedded module catalogue.
func Default() ([]*board.Module, error) {
	modules, err := Parse(defaultModulesYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalogue is invalid: %w", err)
	}
	return modules, nil
}

// userCataloguePath returns the per-user catalogue path, or empty if home is
// unavailable.
func userCataloguePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".prismslide", "modules.yaml")
}
