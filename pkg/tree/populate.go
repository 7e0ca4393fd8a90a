package tree

import (
	"errors"

	"github.com/kinow/cylc-ui/pkg/models"
)

// ErrInvalidInput is returned when the store handle or the workflow record
// is missing, or the record fails structural validation. No insertion
// happens on an invalid call.
var ErrInvalidInput = errors.New("invalid workflow provided")

// Store is the insertion contract Populate drives. *Tree implements it.
type Store interface {
	SetWorkflow(*WorkflowNode)
	AddCyclePoint(*CyclePointNode)
	AddFamilyProxy(*FamilyProxyNode)
	AddTaskProxy(*TaskProxyNode)
	AddJob(*JobNode)
}

// IsValid reports whether a workflow record has the minimum structural
// shape for population: the record itself and its three collections must
// be present. Collections may be empty; element shape is not inspected.
func IsValid(workflow *models.Workflow) bool {
	return workflow != nil &&
		workflow.CyclePoints != nil &&
		workflow.FamilyProxies != nil &&
		workflow.TaskProxies != nil
}

// Populate converts a flat workflow record into tree nodes and hands them
// to the store, parents strictly before the children that reference them:
// the workflow root, then every cycle point, then every family proxy, then
// every task proxy with its jobs. Input order is preserved within each
// collection.
func Populate(store Store, workflow *models.Workflow) error {
	if store == nil || !IsValid(workflow) {
		return ErrInvalidInput
	}

	store.SetWorkflow(NewWorkflowNode(workflow))
	for _, point := range workflow.CyclePoints {
		store.AddCyclePoint(NewCyclePointNode(point))
	}
	for _, family := range workflow.FamilyProxies {
		store.AddFamilyProxy(NewFamilyProxyNode(family))
	}
	for _, task := range workflow.TaskProxies {
		store.AddTaskProxy(NewTaskProxyNode(task))
		for _, job := range task.Jobs {
			store.AddJob(NewJobNode(job, task))
		}
	}
	return nil
}
