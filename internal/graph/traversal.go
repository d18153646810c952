package graph

// queueItem pairs a node with its hop depth during breadth-first walks.
type queueItem struct {
	node  *Node
	depth int
}

// nodeQueue is a head/tail-indexed queue that avoids reallocating on every
// push during breadth-first traversal.
type nodeQueue struct {
	items []queueItem
	head  int
	tail  int
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{items: make([]queueItem, capacity)}
}

func (q *nodeQueue) push(n *Node, depth int) {
	if q.tail >= len(q.items) {
		grown := make([]queueItem, len(q.items)*2)
		copy(grown, q.items[q.head:q.tail])
		q.items = grown
		q.tail -= q.head
		q.head = 0
	}
	q.items[q.tail] = queueItem{n, depth}
	q.tail++
}

func (q *nodeQueue) pop() (queueItem, bool) {
	if q.head >= q.tail {
		return queueItem{}, false
	}
	item := q.items[q.head]
	q.items[q.head] = queueItem{}
	q.head++
	return item, true
}

func (q *nodeQueue) len() int { return q.tail - q.head }

// BreadthFirst walks the graph in level order from start. The visit hook is
// invoked exactly once per discovered node with its hop depth, starting with
// the start node at depth 0. Nodes are marked at enqueue time so no node is
// expanded twice. Returning false from the hook stops the walk.
func (g *Graph) BreadthFirst(start *Node, visit func(n *Node, depth int) bool) {
	if start == nil {
		return
	}

	visited := make(map[*Node]bool, len(g.nodes))
	queue := newNodeQueue(64)

	visited[start] = true
	if !visit(start, 0) {
		return
	}
	queue.push(start, 0)

	for queue.len() > 0 {
		item, _ := queue.pop()
		for _, e := range item.node.Adj {
			next := e.To
			if visited[next] {
				continue
			}
			visited[next] = true
			if !visit(next, item.depth+1) {
				return
			}
			queue.push(next, item.depth+1)
		}
	}
}

// DepthFirst walks the graph in pre-order from start, marking each node at
// first visit. Returning false from the hook stops the walk.
func (g *Graph) DepthFirst(start *Node, visit func(n *Node) bool) {
	if start == nil {
		return
	}
	visited := make(map[*Node]bool, len(g.nodes))
	g.depthFirstVisit(start, visited, visit)
}

// DepthFirstAll runs a pre-order depth-first walk over every component of
// the graph, in node insertion order.
func (g *Graph) DepthFirstAll(visit func(n *Node) bool) {
	visited := make(map[*Node]bool, len(g.nodes))
	for _, n := range g.nodes {
		if visited[n] {
			continue
		}
		if !g.depthFirstVisit(n, visited, visit) {
			return
		}
	}
}

func (g *Graph) depthFirstVisit(n *Node, visited map[*Node]bool, visit func(n *Node) bool) bool {
	visited[n] = true
	if !visit(n) {
		return false
	}
	for _, e := range n.Adj {
		if visited[e.To] {
			continue
		}
		if !g.depthFirstVisit(e.To, visited, visit) {
			return false
		}
	}
	return true
}
