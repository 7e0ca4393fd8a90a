package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskProxyEnsureState(t *testing.T) {
	ghost := &TaskProxy{ID: "t1"}
	require.Nil(t, ghost.State)
	assert.Equal(t, "", ghost.StateName())

	ghost.EnsureState()
	require.NotNil(t, ghost.State)
	assert.Equal(t, "", *ghost.State)

	// An existing state is left alone.
	running := StateRunning
	task := &TaskProxy{ID: "t2", State: &running}
	task.EnsureState()
	assert.Equal(t, StateRunning, task.StateName())
}

func TestTaskProxyStateDistinguishesMissingFromEmpty(t *testing.T) {
	var populated TaskProxy
	err := json.Unmarshal([]byte(`{"id": "t1", "state": ""}`), &populated)
	require.NoError(t, err)
	require.NotNil(t, populated.State)

	var ghost TaskProxy
	err = json.Unmarshal([]byte(`{"id": "t2"}`), &ghost)
	require.NoError(t, err)
	assert.Nil(t, ghost.State)
}

func TestWorkflowUnmarshal(t *testing.T) {
	payload := `{
		"id": "user/one",
		"name": "one",
		"status": "running",
		"cyclePoints": [{"cyclePoint": "20000101T0000Z"}],
		"familyProxies": [{"id": "f1", "name": "GOOD", "cyclePoint": "20000101T0000Z"}],
		"taskProxies": [
			{
				"id": "t1",
				"name": "prep",
				"state": "running",
				"latestMessage": "started",
				"jobs": [{"id": "j1", "submitNum": 1, "batchSysName": "slurm"}]
			}
		]
	}`

	var workflow Workflow
	require.NoError(t, json.Unmarshal([]byte(payload), &workflow))

	assert.Equal(t, "user/one", workflow.ID)
	require.Len(t, workflow.CyclePoints, 1)
	require.Len(t, workflow.FamilyProxies, 1)
	require.Len(t, workflow.TaskProxies, 1)

	task := workflow.TaskProxies[0]
	assert.Equal(t, "running", task.StateName())
	require.Len(t, task.Jobs, 1)
	assert.Equal(t, "slurm", task.Jobs[0].BatchSysName)
}
