package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kinow/cylc-ui/pkg/tree"
)

var titler = cases.Title(language.English)

// Tree renders a populated workflow tree as indented text with box-drawing
// connectors, one line per node and one line per job detail property.
func Tree(t *tree.Tree) string {
	if t == nil || t.Root() == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(t.Root().ID())
	b.WriteString("\n")
	renderChildren(&b, t.Root(), "")
	return b.String()
}

func renderChildren(b *strings.Builder, n tree.Node, prefix string) {
	children := n.Children()
	for i, child := range children {
		last := i == len(children)-1
		connector, childPrefix := "├── ", prefix+"│   "
		if last {
			connector, childPrefix = "└── ", prefix+"    "
		}

		if details, ok := child.(*tree.JobDetailsNode); ok {
			for _, line := range JobDetails(details) {
				b.WriteString(prefix)
				b.WriteString(connector)
				b.WriteString(line)
				b.WriteString("\n")
				connector = strings.Repeat(" ", len([]rune(connector)))
			}
			continue
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(label(child))
		b.WriteString("\n")
		renderChildren(b, child, childPrefix)
	}
}

func label(n tree.Node) string {
	switch n := n.(type) {
	case *tree.CyclePointNode:
		return n.ID()
	case *tree.FamilyProxyNode:
		name := n.Family().Name
		if name == "" {
			name = n.ID()
		}
		if n.Family().State != "" {
			return fmt.Sprintf("%s [%s]", name, n.Family().State)
		}
		return name
	case *tree.TaskProxyNode:
		name := n.TaskProxy().Name
		if name == "" {
			name = n.ID()
		}
		state := n.TaskProxy().StateName()
		if state == "" {
			state = "unknown"
		}
		return fmt.Sprintf("%s [%s]", name, state)
	case *tree.JobNode:
		return fmt.Sprintf("#%d [%s]", n.Job().SubmitNum, n.Job().State)
	}
	return n.ID()
}

// JobDetails expands a job detail leaf into one line per displayable
// property, in display order.
func JobDetails(n *tree.JobDetailsNode) []string {
	job := n.Job()
	pairs := []struct {
		key   string
		value string
	}{
		{"host", job.Host},
		{"job id", job.BatchSysJobID},
		{"batch system", job.BatchSysName},
		{"submitted", job.SubmittedTime},
		{"started", job.StartedTime},
		{"finished", job.FinishedTime},
		{"latest message", n.LatestMessage()},
	}

	lines := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		lines = append(lines, fmt.Sprintf("%s: %s", titler.String(pair.key), pair.value))
	}
	return lines
}
