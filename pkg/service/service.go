package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kinow/cylc-ui/pkg/index"
	"github.com/kinow/cylc-ui/pkg/models"
	"github.com/kinow/cylc-ui/pkg/tree"
)

// Service is the core workflow service: it loads workflow snapshots,
// builds trees out of them and keeps the workflow index up to date.
type Service struct {
	Index  *index.Index
	Config *Config
}

// Config holds service configuration
type Config struct {
	DataDir string
}

// New creates a new workflow service
func New(config *Config) (*Service, error) {
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	idx, err := index.NewIndex(filepath.Join(config.DataDir, "index.db"))
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &Service{
		Index:  idx,
		Config: config,
	}, nil
}

// BuildTree converts a workflow snapshot into a populated tree and records
// the workflow in the index. The snapshot is validated up front; nothing
// is inserted or indexed for an invalid one.
func (s *Service) BuildTree(workflow *models.Workflow) (*tree.Tree, error) {
	if !tree.IsValid(workflow) {
		return nil, tree.ErrInvalidInput
	}

	t := tree.New()
	if err := tree.Populate(t, workflow); err != nil {
		return nil, err
	}

	if err := s.Index.IndexWorkflow(workflow); err != nil {
		return nil, fmt.Errorf("index workflow: %w", err)
	}

	return t, nil
}

// ListWorkflows returns every workflow recorded in the index.
func (s *Service) ListWorkflows() ([]*index.WorkflowSummary, error) {
	return s.Index.Workflows()
}

// SearchTasks searches indexed tasks by name or cycle point.
func (s *Service) SearchTasks(query string, opts *index.Options) ([]*index.TaskEntry, error) {
	return s.Index.SearchTasks(query, opts)
}

// Close releases the index database.
func (s *Service) Close() error {
	return s.Index.Close()
}
