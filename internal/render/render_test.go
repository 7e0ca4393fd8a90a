package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinow/cylc-ui/pkg/service"
	"github.com/kinow/cylc-ui/pkg/tree"
)

func TestTree(t *testing.T) {
	tr := tree.New()
	require.NoError(t, tree.Populate(tr, service.NewMockProvider().Workflow()))

	out := Tree(tr)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "user/one", lines[0])
	assert.Contains(t, out, "20000101T0000Z")
	assert.Contains(t, out, "GOOD [succeeded]")
	assert.Contains(t, out, "failed [failed]")
	assert.Contains(t, out, "#2 [succeeded]")
	// Ghost tasks render with an unknown state.
	assert.Contains(t, out, "checkpoint [unknown]")
	// The detail leaf renders one line per property.
	assert.Contains(t, out, "Host: localhost")
	assert.Contains(t, out, "Batch System: background")
	assert.Contains(t, out, "Latest Message: started")
}

func TestTreeEmpty(t *testing.T) {
	assert.Equal(t, "", Tree(nil))
	assert.Equal(t, "", Tree(tree.New()))
}
