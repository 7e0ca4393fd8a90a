package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kinow/cylc-ui/pkg/models"
)

// ParseWorkflow loads a workflow snapshot file. JSON is the wire shape the
// backend delivers; YAML is accepted for hand-written fixtures.
func ParseWorkflow(path string) (*models.Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	workflow := &models.Workflow{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, workflow); err != nil {
			return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, workflow); err != nil {
			return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
		}
	}

	return workflow, nil
}
