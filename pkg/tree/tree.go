package tree

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Tree accumulates workflow nodes into parent/child relationships. Parent
// placement is resolved from the identifiers embedded in each record (first
// parent, cycle point), which is why population order matters: a parent
// must be indexed before a child naming it arrives.
//
// Inserting a node with an id that is already indexed replaces the old
// node in place, dropping its subtree. Installing a new root resets the
// tree entirely, so repeated population overwrites rather than duplicates.
type Tree struct {
	root   *WorkflowNode
	lookup map[string]Node
	coll   *collate.Collator
}

// New returns an empty tree. Siblings keep collation order, numerically
// aware so cycle points like "2" and "10" sort as dates and integers do.
func New() *Tree {
	return &Tree{
		lookup: make(map[string]Node),
		coll:   collate.New(language.English, collate.Numeric),
	}
}

// Root returns the workflow node, or nil before SetWorkflow.
func (t *Tree) Root() *WorkflowNode { return t.root }

// Get returns the indexed node with the given id, or nil.
func (t *Tree) Get(id string) Node { return t.lookup[id] }

// Len returns the number of indexed nodes. Detail leaves are not indexed.
func (t *Tree) Len() int { return len(t.lookup) }

// SetWorkflow installs the root node and resets the index.
func (t *Tree) SetWorkflow(n *WorkflowNode) {
	t.root = n
	t.lookup = map[string]Node{n.ID(): n}
}

// AddCyclePoint inserts a cycle point node under the root.
func (t *Tree) AddCyclePoint(n *CyclePointNode) {
	if t.root == nil {
		return
	}
	t.attach(t.root, n)
}

// AddFamilyProxy inserts a family proxy under its first parent family, or
// under its cycle point when the first parent is not in the tree.
func (t *Tree) AddFamilyProxy(n *FamilyProxyNode) {
	if t.root == nil {
		return
	}
	f := n.Family()
	t.attach(t.resolve(f.FirstParentID, f.CyclePoint), n)
}

// AddTaskProxy inserts a task proxy under its first parent family, or
// under its cycle point.
func (t *Tree) AddTaskProxy(n *TaskProxyNode) {
	if t.root == nil {
		return
	}
	task := n.TaskProxy()
	t.attach(t.resolve(task.FirstParentID, task.CyclePoint), n)
}

// AddJob inserts a job node, detail leaf already attached, under its
// owning task proxy.
func (t *Tree) AddJob(n *JobNode) {
	if t.root == nil {
		return
	}
	t.attach(t.resolve(n.job.FirstParentID, n.ownerID), n)
}

// resolve returns the first identifier that names an indexed node, falling
// back to the root so records with unresolvable parents stay visible
// rather than silently lost.
func (t *Tree) resolve(ids ...string) Node {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if n, ok := t.lookup[id]; ok {
			return n
		}
	}
	return t.root
}

func (t *Tree) attach(parent, child Node) {
	if old, ok := t.lookup[child.ID()]; ok {
		t.detach(old)
	}
	t.lookup[child.ID()] = child
	siblings := parent.links().children
	at := len(siblings)
	for i, sibling := range siblings {
		if t.less(child, sibling) {
			at = i
			break
		}
	}
	siblings = append(siblings, nil)
	copy(siblings[at+1:], siblings[at:])
	siblings[at] = child
	parent.links().children = siblings
	child.links().parent = parent
}

// detach removes a node and prunes its subtree from the index.
func (t *Tree) detach(n Node) {
	if parent := n.links().parent; parent != nil {
		siblings := parent.links().children
		for i, sibling := range siblings {
			if sibling == n {
				parent.links().children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	n.links().parent = nil
	t.prune(n)
}

func (t *Tree) prune(n Node) {
	delete(t.lookup, n.ID())
	for _, child := range n.Children() {
		t.prune(child)
	}
}

// less orders siblings: jobs latest submit first, everything else by
// collated name.
func (t *Tree) less(a, b Node) bool {
	if aj, ok := a.(*JobNode); ok {
		if bj, ok := b.(*JobNode); ok {
			return aj.job.SubmitNum > bj.job.SubmitNum
		}
	}
	return t.coll.CompareString(sortKey(a), sortKey(b)) < 0
}

func sortKey(n Node) string {
	switch n := n.(type) {
	case *FamilyProxyNode:
		if n.family.Name != "" {
			return n.family.Name
		}
	case *TaskProxyNode:
		if n.task.Name != "" {
			return n.task.Name
		}
	}
	return n.ID()
}

// Walk visits n and then, if fn returns true, its descendants depth first
// in child order.
func Walk(n Node, depth int, fn func(Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, depth+1, fn)
	}
}
