package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinow/cylc-ui/pkg/models"
)

func TestNewWorkflowNode(t *testing.T) {
	workflow := &models.Workflow{ID: "user/one"}
	node := NewWorkflowNode(workflow)

	assert.Equal(t, "user/one", node.ID())
	assert.Equal(t, KindWorkflow, node.Kind())
	assert.Empty(t, node.Children())
	// The record is wrapped by reference, not copied.
	assert.Same(t, workflow, node.Workflow())

	// The root is never independently rendered and has no display defaults.
	_, renderable := Node(node).(Renderable)
	assert.False(t, renderable)
}

func TestNewCyclePointNode(t *testing.T) {
	point := &models.CyclePoint{CyclePoint: "20000101T0000Z"}
	node := NewCyclePointNode(point)

	assert.Equal(t, "20000101T0000Z", node.ID())
	assert.Equal(t, KindCyclePoint, node.Kind())
	assert.Same(t, point, node.Point())
	assert.Equal(t, BaseNodeSize, node.Size())
	assert.True(t, node.DefaultOpen())
	assert.Empty(t, node.Children())
}

func TestNewFamilyProxyNode(t *testing.T) {
	family := &models.FamilyProxy{ID: "user/one/20000101T0000Z/GOOD", Name: "GOOD"}
	node := NewFamilyProxyNode(family)

	assert.Equal(t, "user/one/20000101T0000Z/GOOD", node.ID())
	assert.Equal(t, KindFamilyProxy, node.Kind())
	assert.Same(t, family, node.Family())
	assert.True(t, node.DefaultOpen())
}

func TestNewTaskProxyNode(t *testing.T) {
	state := models.StateRunning
	task := &models.TaskProxy{ID: "user/one/20000101T0000Z/foo", State: &state}
	node := NewTaskProxyNode(task)

	assert.Equal(t, "user/one/20000101T0000Z/foo", node.ID())
	assert.Equal(t, KindTaskProxy, node.Kind())
	assert.Same(t, task, node.TaskProxy())
	assert.False(t, node.DefaultOpen())
	assert.Equal(t, models.StateRunning, node.TaskProxy().StateName())
}

func TestNewTaskProxyNodeDefaultsGhostState(t *testing.T) {
	// A ghost proxy arrives with no state at all. The factory defaults it
	// on the shared record, so the owner of the record sees it too.
	task := &models.TaskProxy{ID: "user/one/20000102T0000Z/checkpoint"}
	require.Nil(t, task.State)

	NewTaskProxyNode(task)

	require.NotNil(t, task.State)
	assert.Equal(t, "", *task.State)
}

func TestNewJobNode(t *testing.T) {
	task := &models.TaskProxy{
		ID:            "user/one/20000101T0000Z/foo",
		LatestMessage: "started",
	}
	job := &models.Job{ID: "user/one/20000101T0000Z/foo/1", SubmitNum: 1}
	node := NewJobNode(job, task)

	assert.Equal(t, "user/one/20000101T0000Z/foo/1", node.ID())
	assert.Equal(t, KindJob, node.Kind())
	assert.Same(t, job, node.Job())
	assert.False(t, node.DefaultOpen())

	// The job's latest message lives on the owning task proxy.
	assert.Equal(t, "started", node.LatestMessage())

	require.Len(t, node.Children(), 1)
	details := node.Details()
	assert.Equal(t, KindJobDetails, details.Kind())
	assert.Equal(t, "user/one/20000101T0000Z/foo/1-details", details.ID())
	assert.Equal(t, BaseNodeSize*JobDetailProperties, details.Size())
	assert.False(t, details.DefaultOpen())
	assert.Equal(t, "started", details.LatestMessage())
	assert.Empty(t, details.Children())
}
