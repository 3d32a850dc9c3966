package opgroup

import (
	"fmt"
	"sync"
)

// NoIndex marks an absent entry in the multiplication table: the product of
// the row and column operations is not a member of the set. Only reachable
// for collections that fail IsGroup.
const NoIndex = -1

// Element is the contract an operation type must satisfy to live in a
// Group. Product composes ("apply the argument, then the receiver"),
// Inverse and Equal follow the usual group semantics, and HashKey is a
// coarse integer key consistent with Equal: equal elements share a key,
// distinct elements may collide.
type Element[T any] interface {
	Product(T) T
	Inverse() T
	Equal(T) bool
	IsIdentity() bool
	HashKey() int
}

// Group is an ordered, duplicate-free collection of operations. It is
// immutable after New; derived structures (multiplication table, conjugacy
// classes) are computed on first use and cached.
type Group[T Element[T]] struct {
	ops     []T
	buckets map[int][]int // HashKey -> indices, resolved by Equal

	multOnce  sync.Once
	multTable [][]int

	classOnce sync.Once
	classes   [][]int
	classErr  error
}

// New builds a Group from ops, preserving order. It fails with
// ErrEmptyGroup on empty input and ErrDuplicateOp if two operations are
// Equal.
func New[T Element[T]](ops []T) (*Group[T], error) {
	if len(ops) == 0 {
		return nil, ErrEmptyGroup
	}

	g := &Group[T]{
		ops:     make([]T, len(ops)),
		buckets: make(map[int][]int, len(ops)),
	}
	copy(g.ops, ops)

	for i, op := range g.ops {
		key := op.HashKey()
		for _, j := range g.buckets[key] {
			if g.ops[j].Equal(op) {
				return nil, fmt.Errorf("New: positions %d and %d: %w", j, i, ErrDuplicateOp)
			}
		}
		g.buckets[key] = append(g.buckets[key], i)
	}

	return g, nil
}

// Len returns the number of operations (the group order, if IsGroup holds).
func (g *Group[T]) Len() int { return len(g.ops) }

// Op returns the operation at position i in insertion order.
func (g *Group[T]) Op(i int) T { return g.ops[i] }

// Ops returns a copy of the operations in insertion order.
func (g *Group[T]) Ops() []T {
	out := make([]T, len(g.ops))
	copy(out, g.ops)

	return out
}

// Index returns the position of op, or NoIndex if op is not a member.
// Lookup goes through the hash buckets and is resolved by Equal.
func (g *Group[T]) Index(op T) int {
	for _, i := range g.buckets[op.HashKey()] {
		if g.ops[i].Equal(op) {
			return i
		}
	}

	return NoIndex
}

// Contains reports whether op is a member of the collection.
func (g *Group[T]) Contains(op T) bool { return g.Index(op) != NoIndex }

// Count returns the number of members equal to op: 0 or 1, since the
// container is duplicate-free.
func (g *Group[T]) Count(op T) int {
	if g.Contains(op) {
		return 1
	}

	return 0
}

// Equal reports whether two collections contain the same operations,
// regardless of order.
func (g *Group[T]) Equal(other *Group[T]) bool {
	if other == nil || g.Len() != other.Len() {
		return false
	}

	for _, op := range g.ops {
		if !other.Contains(op) {
			return false
		}
	}

	return true
}

// IsGroup reports whether the collection satisfies the group axioms:
// exactly one identity element, every element's inverse present, and
// closure under the product. It is a diagnostic for untrusted generator
// input and never returns an error.
func (g *Group[T]) IsGroup() bool {
	identities := 0
	for _, op := range g.ops {
		if op.IsIdentity() {
			identities++
		}
	}
	if identities != 1 {
		return false
	}

	for _, op := range g.ops {
		if !g.Contains(op.Inverse()) {
			return false
		}
	}

	for _, a := range g.ops {
		for _, b := range g.ops {
			if !g.Contains(a.Product(b)) {
				return false
			}
		}
	}

	return true
}

// IsCommutative reports whether all pairs of operations commute.
func (g *Group[T]) IsCommutative() bool {
	for i := 0; i < len(g.ops); i++ {
		for j := i + 1; j < len(g.ops); j++ {
			ab := g.ops[i].Product(g.ops[j])
			ba := g.ops[j].Product(g.ops[i])
			if !ab.Equal(ba) {
				return false
			}
		}
	}

	return true
}

// IsAbelianGroup reports whether the collection is a commutative group.
func (g *Group[T]) IsAbelianGroup() bool {
	return g.IsCommutative() && g.IsGroup()
}

// MultTable returns the n×n multiplication table: entry [i][j] is the index
// of Op(i)·Op(j), or NoIndex if the product falls outside the set (only
// possible when IsGroup is false). The table is built once and cached.
func (g *Group[T]) MultTable() [][]int {
	g.multOnce.Do(func() {
		n := len(g.ops)
		g.multTable = make([][]int, n)
		for i := range g.multTable {
			g.multTable[i] = make([]int, n)
			for j := 0; j < n; j++ {
				g.multTable[i][j] = g.Index(g.ops[i].Product(g.ops[j]))
			}
		}
	})

	return g.multTable
}

// ClassIndices partitions the collection into conjugacy classes. Classes
// are emitted in the order their representative first appears; sublist k
// holds the member indices of class k in container order. Closure is a
// precondition: a conjugate falling outside the set fails with
// ErrClosureViolation.
func (g *Group[T]) ClassIndices() ([][]int, error) {
	g.classOnce.Do(func() { g.classes, g.classErr = g.buildClasses() })

	return g.classes, g.classErr
}

func (g *Group[T]) buildClasses() ([][]int, error) {
	n := len(g.ops)
	found := make([]bool, n)
	var classes [][]int

	for i, op := range g.ops {
		if found[i] {
			continue
		}

		var class []int
		for _, x := range g.ops {
			conj := x.Inverse().Product(op).Product(x)

			k := g.Index(conj)
			if k == NoIndex {
				return nil, fmt.Errorf("ClassIndices: conjugate of element %d escapes the set: %w",
					i, ErrClosureViolation)
			}
			if !found[k] {
				found[k] = true
				class = append(class, k)
			}
		}
		classes = append(classes, class)
	}

	total := 0
	for _, c := range classes {
		total += len(c)
	}
	if total != n {
		return nil, fmt.Errorf("ClassIndices: classes cover %d of %d elements: %w",
			total, n, ErrClosureViolation)
	}

	return classes, nil
}

// NumClasses returns the number of conjugacy classes.
func (g *Group[T]) NumClasses() (int, error) {
	classes, err := g.ClassIndices()
	if err != nil {
		return 0, err
	}

	return len(classes), nil
}

// Classes returns the operations grouped by conjugacy class, in the same
// order as ClassIndices.
func (g *Group[T]) Classes() ([][]T, error) {
	indices, err := g.ClassIndices()
	if err != nil {
		return nil, err
	}

	out := make([][]T, len(indices))
	for k, class := range indices {
		out[k] = make([]T, len(class))
		for m, idx := range class {
			out[k][m] = g.ops[idx]
		}
	}

	return out, nil
}
