package index

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kinow/cylc-ui/pkg/models"
)

// Index keeps a queryable record of the workflow snapshots seen so far,
// so workflows and their tasks can be listed without reparsing snapshots.
type Index struct {
	db *sql.DB
}

// WorkflowSummary is one indexed workflow with its task-state rollup.
type WorkflowSummary struct {
	ID          string
	Name        string
	Status      string
	Owner       string
	TaskCount   int
	StateTotals map[string]int
	IndexedAt   time.Time
}

// TaskEntry is one indexed task proxy.
type TaskEntry struct {
	WorkflowID    string
	ID            string
	Name          string
	CyclePoint    string
	State         string
	LatestMessage string
}

// NewIndex opens (or creates) the index database at dbPath.
func NewIndex(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	idx := &Index{db: db}
	if err := idx.init(); err != nil {
		return nil, err
	}

	return idx, nil
}

func (idx *Index) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workflows (
		id TEXT PRIMARY KEY,
		name TEXT,
		status TEXT,
		owner TEXT,
		task_count INTEGER,
		state_totals TEXT,
		indexed_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		workflow_id TEXT,
		name TEXT,
		cycle_point TEXT,
		state TEXT,
		latest_message TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_workflow ON tasks(workflow_id);
	CREATE INDEX IF NOT EXISTS idx_tasks_state ON tasks(state);
	`

	_, err := idx.db.Exec(schema)
	return err
}

// IndexWorkflow indexes or reindexes a workflow snapshot.
func (idx *Index) IndexWorkflow(workflow *models.Workflow) error {
	if workflow == nil {
		return fmt.Errorf("index workflow: nil workflow")
	}

	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM workflows WHERE id = ?", workflow.ID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM tasks WHERE workflow_id = ?", workflow.ID); err != nil {
		return err
	}

	totals := map[string]int{}
	for _, task := range workflow.TaskProxies {
		if state := task.StateName(); state != "" {
			totals[state]++
		}
	}
	totalsJSON, err := json.Marshal(totals)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO workflows (id, name, status, owner, task_count, state_totals, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, workflow.ID, workflow.Name, workflow.Status, workflow.Owner,
		len(workflow.TaskProxies), string(totalsJSON), time.Now().UTC())
	if err != nil {
		return err
	}

	for _, task := range workflow.TaskProxies {
		_, err = tx.Exec(`
			INSERT INTO tasks (id, workflow_id, name, cycle_point, state, latest_message)
			VALUES (?, ?, ?, ?, ?, ?)
		`, task.ID, workflow.ID, task.Name, task.CyclePoint,
			task.StateName(), task.LatestMessage)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Workflows lists every indexed workflow, most recently indexed first.
func (idx *Index) Workflows() ([]*WorkflowSummary, error) {
	rows, err := idx.db.Query(`
		SELECT id, name, status, owner, task_count, state_totals, indexed_at
		FROM workflows
		ORDER BY indexed_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*WorkflowSummary
	for rows.Next() {
		summary := &WorkflowSummary{}
		var totalsJSON string

		err := rows.Scan(
			&summary.ID, &summary.Name, &summary.Status, &summary.Owner,
			&summary.TaskCount, &totalsJSON, &summary.IndexedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(totalsJSON), &summary.StateTotals); err != nil {
			return nil, err
		}

		results = append(results, summary)
	}

	return results, rows.Err()
}

// Options filters task searches.
type Options struct {
	WorkflowID string
	State      string
	Limit      int
}

// SearchTasks finds indexed tasks whose name or cycle point matches query.
func (idx *Index) SearchTasks(query string, opts *Options) ([]*TaskEntry, error) {
	if opts == nil {
		opts = &Options{Limit: 50}
	}
	if opts.Limit == 0 {
		opts.Limit = 50
	}

	conditions := []string{"(name LIKE ? OR cycle_point LIKE ?)"}
	pattern := "%" + strings.ReplaceAll(query, " ", "%") + "%"
	args := []any{pattern, pattern}

	if opts.WorkflowID != "" {
		conditions = append(conditions, "workflow_id = ?")
		args = append(args, opts.WorkflowID)
	}
	if opts.State != "" {
		conditions = append(conditions, "state = ?")
		args = append(args, opts.State)
	}

	searchQuery := fmt.Sprintf(`
		SELECT id, workflow_id, name, cycle_point, state, latest_message
		FROM tasks
		WHERE %s
		ORDER BY workflow_id, cycle_point, name
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)

	rows, err := idx.db.Query(searchQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*TaskEntry
	for rows.Next() {
		entry := &TaskEntry{}
		err := rows.Scan(
			&entry.ID, &entry.WorkflowID, &entry.Name,
			&entry.CyclePoint, &entry.State, &entry.LatestMessage,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, entry)
	}

	return results, rows.Err()
}

// RemoveWorkflow drops a workflow and its tasks from the index.
func (idx *Index) RemoveWorkflow(id string) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM workflows WHERE id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM tasks WHERE workflow_id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (idx *Index) Close() error {
	return idx.db.Close()
}
