package kv

import (
	"github.com/samber/lo"

	"github.com/benz9527/xllrb/lib/tree"
)

// OrderStatistics is the read-only order queries shared by
// the ordered map and the ordered set.
type OrderStatistics[K any] interface {
	Len() int64
	IsEmpty() bool
	Contains(key K) bool
	// Rank returns the count of the keys strictly less than the key.
	Rank(key K) (int64, error)
	Min() (K, error)
	Max() (K, error)
	Floor(key K) (K, error)
	Ceiling(key K) (K, error)
	RankSelect(rank int64) (K, error)
	Depth() int64
	Serialize(toString func(K) string, opts ...tree.SerializeOption) (string, error)
}

// OrderedMap keeps the entries sorted by the key ordering. The key
// ordering is still decided by the less function, not by ==.
// Note that the map is not thread safe.
type OrderedMap[K comparable, V any] interface {
	OrderStatistics[K]
	At(key K) (V, error)
	// Ref returns the reference of the value stored for the key, the zero
	// value is inserted first if the key is absent. The reference is valid
	// until the next removal.
	Ref(key K) *V
	Insert(key K, val V, ifNotPresent ...bool) error
	Remove(key K) (V, error)
	RemoveMin() (lo.Entry[K, V], error)
	RemoveMax() (lo.Entry[K, V], error)
	Begin() tree.LLRBIterator[K, V]
	End() tree.LLRBIterator[K, V]
	Find(key K) tree.LLRBIterator[K, V]
	Foreach(action func(idx int64, key K, val V) bool)
	// Entries returns the in-order snapshot.
	Entries() []lo.Entry[K, V]
	Clone() OrderedMap[K, V]
	// Equal reports the same shape, keys and values.
	Equal(other OrderedMap[K, V], valEq func(v1, v2 V) bool) bool
	Validate() error
	Release()
}

// OrderedSet keeps the unique keys sorted by the key ordering.
// Note that the set is not thread safe.
type OrderedSet[K any] interface {
	OrderStatistics[K]
	// Insert returns false if the key is present already.
	Insert(key K) bool
	Remove(key K) error
	RemoveMin() (K, error)
	RemoveMax() (K, error)
	Begin() tree.LLRBIterator[K, struct{}]
	End() tree.LLRBIterator[K, struct{}]
	Find(key K) tree.LLRBIterator[K, struct{}]
	Foreach(action func(idx int64, key K) bool)
	Keys() []K
	Clone() OrderedSet[K]
	Equal(other OrderedSet[K]) bool
	Validate() error
	Release()
}
