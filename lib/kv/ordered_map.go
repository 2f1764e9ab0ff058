package kv

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xllrb/lib/infra"
	"github.com/benz9527/xllrb/lib/tree"
	"github.com/benz9527/xllrb/lib/xlog"
)

var _ OrderedMap[int, struct{}] = (*orderedMap[int, struct{}])(nil) // Type check assertion

type orderedMap[K comparable, V any] struct {
	tree.LLRBTree[K, V]
}

func (m *orderedMap[K, V]) Ref(key K) *V {
	return m.Upsert(key)
}

func (m *orderedMap[K, V]) Remove(key K) (V, error) {
	removed, err := m.LLRBTree.Remove(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return removed.Val(), nil
}

func (m *orderedMap[K, V]) RemoveMin() (lo.Entry[K, V], error) {
	return toEntry[K, V](m.LLRBTree.RemoveMin())
}

func (m *orderedMap[K, V]) RemoveMax() (lo.Entry[K, V], error) {
	return toEntry[K, V](m.LLRBTree.RemoveMax())
}

func toEntry[K comparable, V any](node tree.LLRBNode[K, V], err error) (lo.Entry[K, V], error) {
	if err != nil {
		return lo.Entry[K, V]{}, err
	}
	return lo.Entry[K, V]{Key: node.Key(), Value: node.Val()}, nil
}

func (m *orderedMap[K, V]) Entries() []lo.Entry[K, V] {
	entries := make([]lo.Entry[K, V], 0, m.Len())
	m.Foreach(func(idx int64, key K, val V) bool {
		entries = append(entries, lo.Entry[K, V]{Key: key, Value: val})
		return true
	})
	return entries
}

func (m *orderedMap[K, V]) Clone() OrderedMap[K, V] {
	return &orderedMap[K, V]{
		LLRBTree: m.LLRBTree.Clone(),
	}
}

func (m *orderedMap[K, V]) Equal(other OrderedMap[K, V], valEq func(v1, v2 V) bool) bool {
	that, ok := other.(*orderedMap[K, V])
	if !ok || that == nil {
		return false
	}
	return m.EqualFunc(that.LLRBTree, valEq)
}

type orderedMapCfg[K comparable, V any] struct {
	desc         bool
	logger       xlog.XLogger
	entries      []lo.Entry[K, V]
	goMapEntries []lo.Entry[K, V]
}

type OrderedMapOpt[K comparable, V any] func(*orderedMapCfg[K, V])

func WithOrderedMapDesc[K comparable, V any]() OrderedMapOpt[K, V] {
	return func(cfg *orderedMapCfg[K, V]) {
		cfg.desc = true
	}
}

func WithOrderedMapLogger[K comparable, V any](logger xlog.XLogger) OrderedMapOpt[K, V] {
	return func(cfg *orderedMapCfg[K, V]) {
		cfg.logger = logger
	}
}

// WithOrderedMapEntries loads the entries in order, the later
// one wins on the same key.
func WithOrderedMapEntries[K comparable, V any](entries ...lo.Entry[K, V]) OrderedMapOpt[K, V] {
	return func(cfg *orderedMapCfg[K, V]) {
		cfg.entries = append(cfg.entries, entries...)
	}
}

// WithOrderedMapGoMap loads the pairs of m after the entries. The Go map
// has no iteration order, so if the less function treats distinct keys of m
// as equal, which one of them is kept is unspecified. The kept key always
// stays paired with its own value from m, and the pairs of m never overwrite
// a key loaded already.
func WithOrderedMapGoMap[K comparable, V any](m map[K]V) OrderedMapOpt[K, V] {
	return func(cfg *orderedMapCfg[K, V]) {
		cfg.goMapEntries = append(cfg.goMapEntries, lo.Entries(m)...)
	}
}

func NewOrderedMap[K infra.OrderedKey, V any](opts ...OrderedMapOpt[K, V]) OrderedMap[K, V] {
	return NewOrderedMapFunc[K, V](infra.OrderedLess[K], opts...)
}

// NewOrderedMapFunc orders the keys by the strict weak ordering less.
func NewOrderedMapFunc[K comparable, V any](less infra.LessFunc[K], opts ...OrderedMapOpt[K, V]) OrderedMap[K, V] {
	cfg := &orderedMapCfg[K, V]{}
	for _, o := range opts {
		o(cfg)
	}

	treeOpts := make([]tree.LLRBTreeOpt[K, V], 0, 2)
	if cfg.desc {
		treeOpts = append(treeOpts, tree.WithLLRBDesc[K, V]())
	}
	if cfg.logger != nil {
		treeOpts = append(treeOpts, tree.WithLLRBLogger[K, V](cfg.logger.Named("omap")))
	}
	m := &orderedMap[K, V]{
		LLRBTree: tree.NewLLRBTreeFunc[K, V](less, treeOpts...),
	}
	for _, e := range cfg.entries {
		_ = m.Insert(e.Key, e.Value)
	}
	for _, e := range cfg.goMapEntries {
		_ = m.Insert(e.Key, e.Value, true)
	}
	if loaded := len(cfg.entries) + len(cfg.goMapEntries); cfg.logger != nil && loaded > 0 {
		cfg.logger.Debug("[kv] ordered map loaded",
			zap.Int("entries", loaded),
			zap.Int64("size", m.Len()),
		)
	}
	return m
}
