package tree

import (
	"github.com/kinow/cylc-ui/pkg/models"
)

// NewWorkflowNode wraps a workflow record as the tree root.
func NewWorkflowNode(workflow *models.Workflow) *WorkflowNode {
	return &WorkflowNode{workflow: workflow}
}

// NewCyclePointNode wraps a cycle point record. The node id is the cycle
// point value itself.
func NewCyclePointNode(point *models.CyclePoint) *CyclePointNode {
	return &CyclePointNode{
		display: display{size: BaseNodeSize, open: true},
		point:   point,
	}
}

// NewFamilyProxyNode wraps a family proxy record.
func NewFamilyProxyNode(family *models.FamilyProxy) *FamilyProxyNode {
	return &FamilyProxyNode{
		display: display{size: BaseNodeSize, open: true},
		family:  family,
	}
}

// NewTaskProxyNode wraps a task proxy record. Ghost proxies get their
// missing state defaulted on the shared record, so the default is visible
// to the application state that owns the record as well.
func NewTaskProxyNode(task *models.TaskProxy) *TaskProxyNode {
	task.EnsureState()
	return &TaskProxyNode{
		display: display{size: BaseNodeSize},
		task:    task,
	}
}

// NewJobNode wraps a job record together with its owning task proxy, which
// supplies the latest message and the fallback parent link. The detail
// leaf is attached here: a job node always has exactly one child.
func NewJobNode(job *models.Job, owner *models.TaskProxy) *JobNode {
	n := &JobNode{
		display:       display{size: BaseNodeSize},
		job:           job,
		latestMessage: owner.LatestMessage,
		ownerID:       owner.ID,
	}
	details := &JobDetailsNode{
		display:       display{size: BaseNodeSize * JobDetailProperties},
		job:           job,
		latestMessage: owner.LatestMessage,
	}
	details.parent = n
	n.children = []Node{details}
	return n
}
