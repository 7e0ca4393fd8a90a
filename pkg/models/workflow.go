package models

// Workflow is a flat snapshot of a running workflow as delivered by the
// backend: the root record plus its cycle points, family proxies and task
// proxies as parallel collections, linked to each other by identifiers
// rather than nesting.
type Workflow struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name,omitempty" yaml:"name,omitempty"`
	Status        string         `json:"status,omitempty" yaml:"status,omitempty"`
	Owner         string         `json:"owner,omitempty" yaml:"owner,omitempty"`
	Host          string         `json:"host,omitempty" yaml:"host,omitempty"`
	Port          int            `json:"port,omitempty" yaml:"port,omitempty"`
	CyclePoints   []*CyclePoint  `json:"cyclePoints" yaml:"cyclePoints"`
	FamilyProxies []*FamilyProxy `json:"familyProxies" yaml:"familyProxies"`
	TaskProxies   []*TaskProxy   `json:"taskProxies" yaml:"taskProxies"`
}

// CyclePoint is one scheduling iteration of a workflow.
type CyclePoint struct {
	CyclePoint string `json:"cyclePoint" yaml:"cyclePoint"`
}

// FamilyProxy is a named grouping of tasks within a cycle point. A family
// whose first parent is another family nests under it; otherwise it sits
// directly under its cycle point.
type FamilyProxy struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	CyclePoint    string `json:"cyclePoint,omitempty" yaml:"cyclePoint,omitempty"`
	State         string `json:"state,omitempty" yaml:"state,omitempty"`
	FirstParentID string `json:"firstParentId,omitempty" yaml:"firstParentId,omitempty"`
}

// TaskProxy is a scheduled instance of a task at a specific cycle point.
//
// State is a pointer because a ghost proxy — one the backend has announced
// but not yet populated — arrives with no state at all, which is not the
// same thing as an empty state. See EnsureState.
type TaskProxy struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name,omitempty" yaml:"name,omitempty"`
	CyclePoint    string  `json:"cyclePoint,omitempty" yaml:"cyclePoint,omitempty"`
	State         *string `json:"state,omitempty" yaml:"state,omitempty"`
	IsHeld        bool    `json:"isHeld,omitempty" yaml:"isHeld,omitempty"`
	LatestMessage string  `json:"latestMessage,omitempty" yaml:"latestMessage,omitempty"`
	FirstParentID string  `json:"firstParentId,omitempty" yaml:"firstParentId,omitempty"`
	Jobs          []*Job  `json:"jobs,omitempty" yaml:"jobs,omitempty"`
}

// EnsureState defaults a missing state to the empty string. Task proxy
// records are shared by reference between application state and tree nodes,
// so the default is visible to every holder of the record, not just the
// tree. This is the only mutation the tree layer performs on a record.
func (t *TaskProxy) EnsureState() {
	if t.State == nil {
		s := ""
		t.State = &s
	}
}

// StateName returns the task state, or the empty string for a ghost proxy.
func (t *TaskProxy) StateName() string {
	if t.State == nil {
		return ""
	}
	return *t.State
}

// Job is one execution attempt of a task proxy. FirstParentID references
// the owning task proxy. A job has no message of its own; the latest
// message lives on the task proxy.
type Job struct {
	ID            string `json:"id" yaml:"id"`
	FirstParentID string `json:"firstParentId,omitempty" yaml:"firstParentId,omitempty"`
	Host          string `json:"host,omitempty" yaml:"host,omitempty"`
	BatchSysName  string `json:"batchSysName,omitempty" yaml:"batchSysName,omitempty"`
	BatchSysJobID string `json:"batchSysJobId,omitempty" yaml:"batchSysJobId,omitempty"`
	SubmitNum     int    `json:"submitNum,omitempty" yaml:"submitNum,omitempty"`
	State         string `json:"state,omitempty" yaml:"state,omitempty"`
	SubmittedTime string `json:"submittedTime,omitempty" yaml:"submittedTime,omitempty"`
	StartedTime   string `json:"startedTime,omitempty" yaml:"startedTime,omitempty"`
	FinishedTime  string `json:"finishedTime,omitempty" yaml:"finishedTime,omitempty"`
}
