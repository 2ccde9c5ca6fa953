package orrery

import (
	"fmt"
	"sort"
	"time"
)

// Body is one node of a system: a celestial object orbiting its parent. The
// root body (empty ParentID) sits at the origin and carries no elements.
// Radius, RotationPeriod and AxialTilt are passthrough payload for a renderer;
// the engine never reads them.
type Body struct {
	ID             string
	ParentID       string
	Elements       Elements
	Radius         float64
	RotationPeriod float64
	AxialTilt      float64
}

// System is a fixed forest of bodies rooted at a central object. Topology is
// validated once at construction and never mutated, so a System is safe for
// concurrent queries without locking.
type System struct {
	Name   string
	root   string
	bodies map[string]Body
	order  []string // IDs sorted parent-before-child
}

// NewSystem builds a system from a root body and its satellites. Construction
// fails with ErrUnknownParent if a body names an absent parent and with
// ErrCycleDetected if a parent chain loops. Non-root bodies must carry
// validated elements (see NewElements).
func NewSystem(name string, bodies []Body) (*System, error) {
	sys := &System{Name: name, bodies: make(map[string]Body, len(bodies))}
	for _, b := range bodies {
		if _, dup := sys.bodies[b.ID]; dup {
			return nil, fmt.Errorf("duplicate body %q", b.ID)
		}
		if b.ParentID != "" {
			if err := b.Elements.validate(); err != nil {
				return nil, fmt.Errorf("body %q: %w", b.ID, err)
			}
		}
		sys.bodies[b.ID] = b
		if b.ParentID == "" {
			if sys.root != "" {
				return nil, fmt.Errorf("two root bodies: %q and %q", sys.root, b.ID)
			}
			sys.root = b.ID
		}
	}
	// Walking each parent chain both validates the topology and gives a
	// parent-before-child evaluation order for the batch query.
	depths := make(map[string]int, len(bodies))
	for id := range sys.bodies {
		if _, err := sys.chainDepth(id, depths); err != nil {
			return nil, err
		}
	}
	if sys.root == "" {
		return nil, fmt.Errorf("no root body provided")
	}
	sys.order = make([]string, 0, len(bodies))
	for id := range sys.bodies {
		sys.order = append(sys.order, id)
	}
	sort.Slice(sys.order, func(i, j int) bool {
		if depths[sys.order[i]] != depths[sys.order[j]] {
			return depths[sys.order[i]] < depths[sys.order[j]]
		}
		return sys.order[i] < sys.order[j]
	})
	return sys, nil
}

// chainDepth returns the number of ancestors of id, memoizing into depths.
func (s *System) chainDepth(id string, depths map[string]int) (int, error) {
	if d, ok := depths[id]; ok {
		return d, nil
	}
	seen := make(map[string]bool)
	var walk func(string) (int, error)
	walk = func(cur string) (int, error) {
		if d, ok := depths[cur]; ok {
			return d, nil
		}
		if seen[cur] {
			return 0, fmt.Errorf("%w: via body %q", ErrCycleDetected, cur)
		}
		seen[cur] = true
		b := s.bodies[cur]
		if b.ParentID == "" {
			depths[cur] = 0
			return 0, nil
		}
		if _, ok := s.bodies[b.ParentID]; !ok {
			return 0, fmt.Errorf("%w: body %q references %q", ErrUnknownParent, cur, b.ParentID)
		}
		d, err := walk(b.ParentID)
		if err != nil {
			return 0, err
		}
		depths[cur] = d + 1
		return d + 1, nil
	}
	return walk(id)
}

// Root returns the ID of the central body.
func (s *System) Root() string { return s.root }

// Body returns a body by ID.
func (s *System) Body(id string) (Body, bool) {
	b, ok := s.bodies[id]
	return b, ok
}

// Bodies returns all bodies ordered parents before children.
func (s *System) Bodies() []Body {
	out := make([]Body, len(s.order))
	for k, id := range s.order {
		out[k] = s.bodies[id]
	}
	return out
}

// AbsolutePosition returns the position of one body at dt in the root's frame:
// the parent's absolute position plus the body's local orbital offset,
// recursively up to the root at the origin.
func (s *System) AbsolutePosition(id string, dt time.Time) ([]float64, error) {
	b, ok := s.bodies[id]
	if !ok {
		return nil, fmt.Errorf("no body %q in system %s", id, s.Name)
	}
	if b.ParentID == "" {
		return []float64{0, 0, 0}, nil
	}
	parent, err := s.AbsolutePosition(b.ParentID, dt)
	if err != nil {
		return nil, err
	}
	local, err := b.Elements.Position(dt)
	if err != nil {
		return nil, fmt.Errorf("body %q: %w", id, err)
	}
	return add(parent, local), nil
}

// AbsolutePositions computes every body's position at dt in one pass, visiting
// parents before children so each node is solved exactly once. The memo table
// is local to the call: positions are time-dependent and must never be cached
// across queries.
func (s *System) AbsolutePositions(dt time.Time) (map[string][]float64, error) {
	abs := make(map[string][]float64, len(s.order))
	for _, id := range s.order {
		b := s.bodies[id]
		if b.ParentID == "" {
			abs[id] = []float64{0, 0, 0}
			continue
		}
		local, err := b.Elements.Position(dt)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", id, err)
		}
		abs[id] = add(abs[b.ParentID], local)
	}
	return abs, nil
}
