package tree

import "github.com/benz9527/xllrb/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

// LLRBNode is the read-only view of a tree node.
// Color tags the link from the parent to this node.
type LLRBNode[K, V any] interface {
	Key() K
	Val() V
	Color() RBColor
	// Size is the count of the nodes in the subtree rooted here.
	Size() int64
	Left() LLRBNode[K, V]
	Right() LLRBNode[K, V]
}

// LLRBIterator is the in-order (ascending) iterator.
// Any structural mutation of the tree invalidates the iterator.
type LLRBIterator[K, V any] interface {
	// Valid reports false if the iterator reaches the end.
	Valid() bool
	Key() K
	Val() V
	Next()
	Equal(other LLRBIterator[K, V]) bool
}

type LLRBTree[K, V any] interface {
	Len() int64
	IsEmpty() bool
	Root() LLRBNode[K, V]
	KeyCompare(k1, k2 K) infra.CmpResult

	// Insert overwrites the value of the existing key unless ifNotPresent is true.
	Insert(key K, val V, ifNotPresent ...bool) error
	// Upsert returns the reference of the value stored for the key, inserts
	// the zero value first if the key is absent. The reference is valid until
	// the next removal.
	Upsert(key K) *V
	Remove(key K) (LLRBNode[K, V], error)
	RemoveMin() (LLRBNode[K, V], error)
	RemoveMax() (LLRBNode[K, V], error)

	At(key K) (V, error)
	Contains(key K) bool
	// Rank returns the count of the keys strictly less than the key.
	Rank(key K) (int64, error)
	Min() (K, error)
	Max() (K, error)
	// Floor returns the largest key less than or equal to the key.
	Floor(key K) (K, error)
	// Ceiling returns the smallest key greater than or equal to the key.
	Ceiling(key K) (K, error)
	// RankSelect returns the key whose rank is exactly the rank.
	RankSelect(rank int64) (K, error)

	// Serialize dumps the keys in preorder.
	Serialize(toString func(K) string, opts ...SerializeOption) (string, error)
	// Depth returns the count of the nodes on the longest root to leaf path.
	Depth() int64
	Begin() LLRBIterator[K, V]
	End() LLRBIterator[K, V]
	Find(key K) LLRBIterator[K, V]
	Foreach(action func(idx int64, key K, val V) bool)

	// Clone deep copies the whole tree.
	Clone() LLRBTree[K, V]
	// EqualFunc reports the two trees have the same shape, keys and values.
	EqualFunc(other LLRBTree[K, V], valEq func(v1, v2 V) bool) bool
	Validate() error
	Release()
}
