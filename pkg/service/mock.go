package service

import (
	"github.com/kinow/cylc-ui/pkg/models"
)

// MockProvider supplies a canned workflow snapshot for demos and tests
// when no real snapshot is available. Delivery is reported through the
// injected Dispatch callback rather than any shared state, so callers
// decide what, if anything, happens on delivery.
type MockProvider struct {
	Dispatch func(*models.Workflow)
}

// NewMockProvider returns a provider with no dispatch callback.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Workflow builds a fresh copy of the canned "user/one" snapshot: two
// cycle points, a GOOD/BAD family split, tasks across the common states,
// a retried job and one ghost task the backend has not populated yet.
func (p *MockProvider) Workflow() *models.Workflow {
	state := func(s string) *string { return &s }

	workflow := &models.Workflow{
		ID:     "user/one",
		Name:   "one",
		Status: models.StatusRunning,
		Owner:  "user",
		Host:   "localhost",
		Port:   43043,
		CyclePoints: []*models.CyclePoint{
			{CyclePoint: "20000101T0000Z"},
			{CyclePoint: "20000102T0000Z"},
		},
		FamilyProxies: []*models.FamilyProxy{
			{
				ID:         "user/one/20000101T0000Z/GOOD",
				Name:       "GOOD",
				CyclePoint: "20000101T0000Z",
				State:      models.StateSucceeded,
			},
			{
				ID:         "user/one/20000101T0000Z/BAD",
				Name:       "BAD",
				CyclePoint: "20000101T0000Z",
				State:      models.StateFailed,
			},
		},
		TaskProxies: []*models.TaskProxy{
			{
				ID:            "user/one/20000101T0000Z/eventually_succeeded",
				Name:          "eventually_succeeded",
				CyclePoint:    "20000101T0000Z",
				State:         state(models.StateSucceeded),
				FirstParentID: "user/one/20000101T0000Z/GOOD",
				LatestMessage: "succeeded",
				Jobs: []*models.Job{
					{
						ID:            "user/one/20000101T0000Z/eventually_succeeded/2",
						FirstParentID: "user/one/20000101T0000Z/eventually_succeeded",
						Host:          "localhost",
						BatchSysName:  "background",
						BatchSysJobID: "28044",
						SubmitNum:     2,
						State:         models.StateSucceeded,
						SubmittedTime: "2000-01-01T00:02:00Z",
						StartedTime:   "2000-01-01T00:02:01Z",
						FinishedTime:  "2000-01-01T00:02:10Z",
					},
					{
						ID:            "user/one/20000101T0000Z/eventually_succeeded/1",
						FirstParentID: "user/one/20000101T0000Z/eventually_succeeded",
						Host:          "localhost",
						BatchSysName:  "background",
						BatchSysJobID: "27992",
						SubmitNum:     1,
						State:         models.StateFailed,
						SubmittedTime: "2000-01-01T00:00:00Z",
						StartedTime:   "2000-01-01T00:00:01Z",
						FinishedTime:  "2000-01-01T00:00:05Z",
					},
				},
			},
			{
				ID:            "user/one/20000101T0000Z/failed",
				Name:          "failed",
				CyclePoint:    "20000101T0000Z",
				State:         state(models.StateFailed),
				FirstParentID: "user/one/20000101T0000Z/BAD",
				LatestMessage: "failed/EXIT",
				Jobs: []*models.Job{
					{
						ID:            "user/one/20000101T0000Z/failed/1",
						FirstParentID: "user/one/20000101T0000Z/failed",
						Host:          "localhost",
						BatchSysName:  "background",
						BatchSysJobID: "28096",
						SubmitNum:     1,
						State:         models.StateFailed,
						SubmittedTime: "2000-01-01T00:00:00Z",
						StartedTime:   "2000-01-01T00:00:01Z",
						FinishedTime:  "2000-01-01T00:00:04Z",
					},
				},
			},
			{
				ID:            "user/one/20000102T0000Z/sleepy",
				Name:          "sleepy",
				CyclePoint:    "20000102T0000Z",
				State:         state(models.StateRunning),
				LatestMessage: "started",
				Jobs: []*models.Job{
					{
						ID:            "user/one/20000102T0000Z/sleepy/1",
						FirstParentID: "user/one/20000102T0000Z/sleepy",
						Host:          "localhost",
						BatchSysName:  "background",
						BatchSysJobID: "28132",
						SubmitNum:     1,
						State:         models.StateRunning,
						SubmittedTime: "2000-01-02T00:00:00Z",
						StartedTime:   "2000-01-02T00:00:01Z",
					},
				},
			},
			{
				// Ghost: announced by the scheduler, not yet populated.
				ID:         "user/one/20000102T0000Z/checkpoint",
				Name:       "checkpoint",
				CyclePoint: "20000102T0000Z",
			},
		},
	}

	if p.Dispatch != nil {
		p.Dispatch(workflow)
	}
	return workflow
}
