package core

// Builder accumulates vertices and edge instances and freezes them into an
// immutable Graph. The zero Builder is not usable; construct via NewBuilder.
//
// Builder is not safe for concurrent use; the whole pipeline it feeds is
// synchronous and single-threaded.
type Builder struct {
	labels []string       // id → label arena
	ids    map[string]int // label → id lookup
	edges  []Edge         // edge id → edge instance
	out    [][]int        // vertex id → out-edge ids, insertion order
	frozen bool
}

// NewBuilder returns an empty Builder.
// Complexity: O(1)
func NewBuilder() *Builder {
	return &Builder{ids: make(map[string]int)}
}

// AddVertex resolves label to its vertex id, registering the label on first
// use. Repeated calls with the same label return the same id (idempotent).
//
// Returns ErrEmptyLabel for the empty string and ErrFrozen after Finalize.
// Complexity: O(1) amortized.
func (b *Builder) AddVertex(label string) (int, error) {
	if b.frozen {
		return 0, ErrFrozen
	}
	if label == "" {
		return 0, ErrEmptyLabel
	}
	if id, ok := b.ids[label]; ok {
		return id, nil
	}
	id := len(b.labels)
	b.labels = append(b.labels, label)
	b.ids[label] = id
	b.out = append(b.out, nil)

	return id, nil
}

// AddEdge creates a new directed edge instance from→to with the given
// capacity and cost, registering both endpoint labels as needed. A repeated
// endpoint pair always creates a fresh parallel instance with its own id.
//
// Capacity must be strictly positive; violations are rejected eagerly with
// ErrNonPositiveCapacity before any state changes.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to string, capacity int64, cost float64) (int, error) {
	if b.frozen {
		return 0, ErrFrozen
	}
	if capacity <= 0 {
		return 0, ErrNonPositiveCapacity
	}
	u, err := b.AddVertex(from)
	if err != nil {
		return 0, err
	}
	v, err := b.AddVertex(to)
	if err != nil {
		return 0, err
	}
	id := len(b.edges)
	b.edges = append(b.edges, Edge{From: u, To: v, Capacity: capacity, Cost: cost})
	b.out[u] = append(b.out[u], id)

	return id, nil
}

// Finalize freezes the Builder and returns the immutable Graph over the
// accumulated vertex and edge sets. The Builder rejects all further
// mutations with ErrFrozen.
// Complexity: O(1) — storage is handed off, not copied.
func (b *Builder) Finalize() *Graph {
	b.frozen = true

	return &Graph{labels: b.labels, ids: b.ids, edges: b.edges, out: b.out}
}
