package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ternarybob/folio/internal/models"
)

// portfolioFile is the on-disk portfolio document shape
type portfolioFile struct {
	Holdings []models.Holding `json:"holdings" yaml:"holdings"`
}

// Load reads a portfolio file (.json, .yaml or .yml) and constructs an
// immutable snapshot from its holdings. A missing holdings key yields an
// empty snapshot rather than an error.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file %s: %w", path, err)
	}

	var doc portfolioFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse portfolio file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse portfolio file %s: %w", path, err)
		}
	}

	return NewSnapshot(doc.Holdings)
}
