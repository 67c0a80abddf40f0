// Package dot provides the abstract graph assembled by the builder and
// consumed by Encode.
package dot

// Graph is an abstract directed graph of labeled, categorized nodes and
// edges. Nodes either belong to exactly one cluster or are free. Entity
// IDs are minted in declaration order, which fixes the emission order.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	next int

	free         []int         // free node IDs in declaration order
	clusters     []int         // cluster IDs in declaration order
	clusterNodes map[int][]int // cluster ID → member node IDs in declaration order
	edges        []edge        // edges in declaration order

	labels     map[int]string
	categories map[int][]string
}

// edge records one directed edge entity.
type edge struct {
	id       int
	from, to int
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		clusterNodes: make(map[int][]int),
		labels:       make(map[int]string),
		categories:   make(map[int][]string),
	}
}

// fresh mints the next entity ID.
func (g *Graph) fresh() int {
	id := g.next
	g.next++

	return id
}

// AddCluster declares a labeled cluster and returns its ID.
func (g *Graph) AddCluster(label string) int {
	id := g.fresh()
	g.clusters = append(g.clusters, id)
	g.clusterNodes[id] = nil
	g.labels[id] = label

	return id
}

// AddNode declares a node inside the given cluster and returns its ID.
// The cluster must be an ID returned by AddCluster; an unknown cluster ID
// leaves the node free.
func (g *Graph) AddNode(cluster int, label string, categories ...string) int {
	id := g.fresh()
	if members, ok := g.clusterNodes[cluster]; ok {
		g.clusterNodes[cluster] = append(members, id)
	} else {
		g.free = append(g.free, id)
	}
	g.labels[id] = label
	if len(categories) > 0 {
		g.categories[id] = categories
	}

	return id
}

// AddFreeNode declares a node belonging to no cluster and returns its ID.
func (g *Graph) AddFreeNode(label string, categories ...string) int {
	id := g.fresh()
	g.free = append(g.free, id)
	g.labels[id] = label
	if len(categories) > 0 {
		g.categories[id] = categories
	}

	return id
}

// AddEdge declares a directed edge from one node ID to another and
// returns the edge's own entity ID. An empty label emits no label.
func (g *Graph) AddEdge(from, to int, label string, categories ...string) int {
	id := g.fresh()
	g.edges = append(g.edges, edge{id: id, from: from, to: to})
	if label != "" {
		g.labels[id] = label
	}
	if len(categories) > 0 {
		g.categories[id] = categories
	}

	return id
}

// Label returns the label of an entity, if any.
func (g *Graph) Label(id int) string { return g.labels[id] }

// Categories returns the category list of an entity.
func (g *Graph) Categories(id int) []string { return g.categories[id] }

// NodeCount returns the number of declared nodes, free and clustered.
func (g *Graph) NodeCount() int {
	n := len(g.free)
	for _, id := range g.clusters {
		n += len(g.clusterNodes[id])
	}

	return n
}

// EdgeCount returns the number of declared edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ClusterCount returns the number of declared clusters.
func (g *Graph) ClusterCount() int { return len(g.clusters) }
