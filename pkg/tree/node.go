package tree

import (
	"github.com/kinow/cylc-ui/pkg/models"
)

// Kind discriminates the node variants of the workflow tree.
type Kind string

const (
	KindWorkflow    Kind = "workflow"
	KindCyclePoint  Kind = "cyclepoint"
	KindFamilyProxy Kind = "family-proxy"
	KindTaskProxy   Kind = "task-proxy"
	KindJob         Kind = "job"
	KindJobDetails  Kind = "job-details"
)

const (
	// BaseNodeSize is the rendering height hint for a single tree row.
	BaseNodeSize = 1

	// JobDetailProperties is the number of properties the job detail leaf
	// displays: host, job id, batch system, submitted time, started time,
	// finished time and the latest message.
	JobDetailProperties = 7

	jobDetailsSuffix = "-details"
)

// Node is a single entry in the workflow tree. Every node wraps its domain
// record by reference: the record stays owned by the application state that
// supplied it, and mutations on either side are visible to both.
type Node interface {
	ID() string
	Kind() Kind
	Children() []Node

	// links anchors the interface to the branch embedded in every variant,
	// closing the set of node kinds to this package.
	links() *branch
}

// Renderable is implemented by every node kind except the workflow root,
// which is never independently rendered and so has no display defaults.
type Renderable interface {
	Size() int
	DefaultOpen() bool
}

// branch holds child links shared by all node kinds. Only the tree store
// manipulates it.
type branch struct {
	children []Node
	parent   Node
}

func (b *branch) Children() []Node { return b.children }
func (b *branch) links() *branch { return b }

// display holds the render defaults shared by every non-root kind.
type display struct {
	size int
	open bool
}

func (d *display) Size() int { return d.size }
func (d *display) DefaultOpen() bool { return d.open }

// WorkflowNode is the tree root. It carries no display defaults: the tree
// view shows only its descendants.
type WorkflowNode struct {
	branch
	workflow *models.Workflow
}

func (n *WorkflowNode) ID() string { return n.workflow.ID }
func (n *WorkflowNode) Kind() Kind { return KindWorkflow }
func (n *WorkflowNode) Workflow() *models.Workflow { return n.workflow }

// CyclePointNode groups everything scheduled at one cycle point. Cycle
// points default to expanded.
type CyclePointNode struct {
	branch
	display
	point *models.CyclePoint
}

func (n *CyclePointNode) ID() string { return n.point.CyclePoint }
func (n *CyclePointNode) Kind() Kind { return KindCyclePoint }
func (n *CyclePointNode) Point() *models.CyclePoint { return n.point }

// FamilyProxyNode groups tasks below a cycle point. Families default to
// expanded.
type FamilyProxyNode struct {
	branch
	display
	family *models.FamilyProxy
}

func (n *FamilyProxyNode) ID() string { return n.family.ID }
func (n *FamilyProxyNode) Kind() Kind { return KindFamilyProxy }
func (n *FamilyProxyNode) Family() *models.FamilyProxy { return n.family }

// TaskProxyNode is a scheduled task instance. Tasks default to collapsed.
type TaskProxyNode struct {
	branch
	display
	task *models.TaskProxy
}

func (n *TaskProxyNode) ID() string { return n.task.ID }
func (n *TaskProxyNode) Kind() Kind { return KindTaskProxy }
func (n *TaskProxyNode) TaskProxy() *models.TaskProxy { return n.task }

// JobNode is one execution attempt of a task. The latest message is
// sourced from the owning task proxy, since job records carry no message
// of their own. A job node always holds exactly one child, its detail leaf.
type JobNode struct {
	branch
	display
	job           *models.Job
	latestMessage string
	ownerID       string
}

func (n *JobNode) ID() string { return n.job.ID }
func (n *JobNode) Kind() Kind { return KindJob }
func (n *JobNode) Job() *models.Job { return n.job }
func (n *JobNode) LatestMessage() string { return n.latestMessage }

// Details returns the job detail leaf.
func (n *JobNode) Details() *JobDetailsNode {
	return n.children[0].(*JobDetailsNode)
}

// JobDetailsNode is the synthetic leaf that expands a job into its
// displayable properties. Its size spans one row per property.
type JobDetailsNode struct {
	branch
	display
	job           *models.Job
	latestMessage string
}

func (n *JobDetailsNode) ID() string { return n.job.ID + jobDetailsSuffix }
func (n *JobDetailsNode) Kind() Kind { return KindJobDetails }
func (n *JobDetailsNode) Job() *models.Job { return n.job }
func (n *JobDetailsNode) LatestMessage() string { return n.latestMessage }
