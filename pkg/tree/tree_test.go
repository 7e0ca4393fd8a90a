package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinow/cylc-ui/pkg/models"
)

// sampleWorkflow mirrors the shape of a small two-cycle suite: a GOOD
// family with one task under the first cycle point, a nested SUB family
// under GOOD, and a bare task with two job attempts under the second.
func sampleWorkflow() *models.Workflow {
	running := models.StateRunning
	failed := models.StateFailed
	return &models.Workflow{
		ID:     "user/one",
		Name:   "one",
		Status: models.StatusRunning,
		CyclePoints: []*models.CyclePoint{
			{CyclePoint: "20000101T0000Z"},
			{CyclePoint: "20000102T0000Z"},
		},
		FamilyProxies: []*models.FamilyProxy{
			{
				ID:         "user/one/20000101T0000Z/GOOD",
				Name:       "GOOD",
				CyclePoint: "20000101T0000Z",
			},
			{
				ID:            "user/one/20000101T0000Z/SUB",
				Name:          "SUB",
				CyclePoint:    "20000101T0000Z",
				FirstParentID: "user/one/20000101T0000Z/GOOD",
			},
		},
		TaskProxies: []*models.TaskProxy{
			{
				ID:            "user/one/20000101T0000Z/prep",
				Name:          "prep",
				CyclePoint:    "20000101T0000Z",
				State:         &running,
				FirstParentID: "user/one/20000101T0000Z/GOOD",
				LatestMessage: "submitted",
				Jobs: []*models.Job{
					{
						ID:            "user/one/20000101T0000Z/prep/1",
						FirstParentID: "user/one/20000101T0000Z/prep",
						SubmitNum:     1,
					},
				},
			},
			{
				ID:            "user/one/20000102T0000Z/retry",
				Name:          "retry",
				CyclePoint:    "20000102T0000Z",
				State:         &failed,
				LatestMessage: "failed/EXIT",
				Jobs: []*models.Job{
					{
						ID:            "user/one/20000102T0000Z/retry/1",
						FirstParentID: "user/one/20000102T0000Z/retry",
						SubmitNum:     1,
					},
					{
						ID:            "user/one/20000102T0000Z/retry/2",
						FirstParentID: "user/one/20000102T0000Z/retry",
						SubmitNum:     2,
					},
				},
			},
		},
	}
}

func TestTreePlacement(t *testing.T) {
	tr := New()
	require.NoError(t, Populate(tr, sampleWorkflow()))

	root := tr.Root()
	require.NotNil(t, root)
	assert.Equal(t, "user/one", root.ID())
	require.Len(t, root.Children(), 2)

	// Families resolve under their cycle point, nested families under
	// their first parent, tasks under their family or cycle point.
	good := tr.Get("user/one/20000101T0000Z/GOOD")
	require.NotNil(t, good)
	assert.Same(t, tr.Get("20000101T0000Z"), good.links().parent)

	sub := tr.Get("user/one/20000101T0000Z/SUB")
	require.NotNil(t, sub)
	assert.Same(t, good, sub.links().parent)

	prep := tr.Get("user/one/20000101T0000Z/prep")
	require.NotNil(t, prep)
	assert.Same(t, good, prep.links().parent)

	retry := tr.Get("user/one/20000102T0000Z/retry")
	require.NotNil(t, retry)
	assert.Same(t, tr.Get("20000102T0000Z"), retry.links().parent)

	// Jobs land under their owning task proxy.
	job := tr.Get("user/one/20000101T0000Z/prep/1")
	require.NotNil(t, job)
	assert.Same(t, prep, job.links().parent)
}

func TestTreeJobOrdering(t *testing.T) {
	tr := New()
	require.NoError(t, Populate(tr, sampleWorkflow()))

	retry := tr.Get("user/one/20000102T0000Z/retry")
	require.NotNil(t, retry)
	require.Len(t, retry.Children(), 2)

	// Latest submit first.
	first := retry.Children()[0].(*JobNode)
	second := retry.Children()[1].(*JobNode)
	assert.Equal(t, 2, first.Job().SubmitNum)
	assert.Equal(t, 1, second.Job().SubmitNum)
}

func TestTreeSiblingCollation(t *testing.T) {
	tr := New()
	workflow := &models.Workflow{
		ID:            "w1",
		CyclePoints:   []*models.CyclePoint{{CyclePoint: "10"}, {CyclePoint: "2"}},
		FamilyProxies: []*models.FamilyProxy{},
		TaskProxies: []*models.TaskProxy{
			{ID: "t-b", Name: "bravo", CyclePoint: "2"},
			{ID: "t-a", Name: "alpha", CyclePoint: "2"},
		},
	}
	require.NoError(t, Populate(tr, workflow))

	root := tr.Root()
	require.Len(t, root.Children(), 2)
	// Numeric collation: 2 before 10.
	assert.Equal(t, "2", root.Children()[0].ID())
	assert.Equal(t, "10", root.Children()[1].ID())

	point := tr.Get("2")
	require.Len(t, point.Children(), 2)
	assert.Equal(t, "t-a", point.Children()[0].ID())
	assert.Equal(t, "t-b", point.Children()[1].ID())
}

func TestTreeOrphanFallsBackToRoot(t *testing.T) {
	tr := New()
	workflow := &models.Workflow{
		ID:            "w1",
		CyclePoints:   []*models.CyclePoint{},
		FamilyProxies: []*models.FamilyProxy{},
		TaskProxies: []*models.TaskProxy{
			{ID: "t-orphan", Name: "orphan", CyclePoint: "nowhere"},
		},
	}
	require.NoError(t, Populate(tr, workflow))

	orphan := tr.Get("t-orphan")
	require.NotNil(t, orphan)
	assert.Same(t, Node(tr.Root()), orphan.links().parent)
}

func TestTreeRepopulateOverwrites(t *testing.T) {
	tr := New()
	require.NoError(t, Populate(tr, sampleWorkflow()))
	sizeAfterFirst := tr.Len()

	require.NoError(t, Populate(tr, sampleWorkflow()))

	assert.Equal(t, sizeAfterFirst, tr.Len())
	require.Len(t, tr.Root().Children(), 2)
	point := tr.Get("20000101T0000Z")
	require.NotNil(t, point)
	assert.Len(t, point.Children(), 1)
}

func TestTreeDuplicateIDReplaces(t *testing.T) {
	tr := New()
	tr.SetWorkflow(NewWorkflowNode(&models.Workflow{ID: "w1"}))
	tr.AddCyclePoint(NewCyclePointNode(&models.CyclePoint{CyclePoint: "1"}))

	replacement := NewCyclePointNode(&models.CyclePoint{CyclePoint: "1"})
	tr.AddCyclePoint(replacement)

	require.Len(t, tr.Root().Children(), 1)
	assert.Same(t, Node(replacement), tr.Root().Children()[0])
	assert.Same(t, Node(replacement), tr.Get("1"))
}

func TestTreeAddBeforeRootIsIgnored(t *testing.T) {
	tr := New()
	tr.AddCyclePoint(NewCyclePointNode(&models.CyclePoint{CyclePoint: "1"}))

	assert.Nil(t, tr.Root())
	assert.Nil(t, tr.Get("1"))
	assert.Zero(t, tr.Len())
}

func TestWalk(t *testing.T) {
	tr := New()
	require.NoError(t, Populate(tr, sampleWorkflow()))

	var ids []string
	Walk(tr.Root(), 0, func(n Node, depth int) bool {
		ids = append(ids, n.ID())
		// Do not descend into jobs, skipping the detail leaves.
		return n.Kind() != KindJob
	})

	assert.Contains(t, ids, "user/one")
	assert.Contains(t, ids, "user/one/20000101T0000Z/prep/1")
	assert.NotContains(t, ids, "user/one/20000101T0000Z/prep/1-details")
}
