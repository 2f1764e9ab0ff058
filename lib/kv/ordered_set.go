package kv

import (
	"go.uber.org/zap"

	"github.com/benz9527/xllrb/lib/infra"
	"github.com/benz9527/xllrb/lib/tree"
	"github.com/benz9527/xllrb/lib/xlog"
)

var _ OrderedSet[int] = (*orderedSet[int])(nil) // Type check assertion

type orderedSet[K any] struct {
	tree.LLRBTree[K, struct{}]
}

func (s *orderedSet[K]) Insert(key K) bool {
	if s.Contains(key) {
		return false
	}
	return s.LLRBTree.Insert(key, struct{}{}) == nil
}

func (s *orderedSet[K]) Remove(key K) error {
	_, err := s.LLRBTree.Remove(key)
	return err
}

func (s *orderedSet[K]) RemoveMin() (K, error) {
	return toKey[K](s.LLRBTree.RemoveMin())
}

func (s *orderedSet[K]) RemoveMax() (K, error) {
	return toKey[K](s.LLRBTree.RemoveMax())
}

func toKey[K any](node tree.LLRBNode[K, struct{}], err error) (K, error) {
	if err != nil {
		var zero K
		return zero, err
	}
	return node.Key(), nil
}

func (s *orderedSet[K]) Foreach(action func(idx int64, key K) bool) {
	if action == nil {
		return
	}
	s.LLRBTree.Foreach(func(idx int64, key K, _ struct{}) bool {
		return action(idx, key)
	})
}

func (s *orderedSet[K]) Keys() []K {
	keys := make([]K, 0, s.Len())
	s.Foreach(func(idx int64, key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (s *orderedSet[K]) Clone() OrderedSet[K] {
	return &orderedSet[K]{
		LLRBTree: s.LLRBTree.Clone(),
	}
}

func (s *orderedSet[K]) Equal(other OrderedSet[K]) bool {
	that, ok := other.(*orderedSet[K])
	if !ok || that == nil {
		return false
	}
	return s.EqualFunc(that.LLRBTree, func(struct{}, struct{}) bool {
		return true
	})
}

type orderedSetCfg[K any] struct {
	desc   bool
	logger xlog.XLogger
	keys   []K
}

type OrderedSetOpt[K any] func(*orderedSetCfg[K])

func WithOrderedSetDesc[K any]() OrderedSetOpt[K] {
	return func(cfg *orderedSetCfg[K]) {
		cfg.desc = true
	}
}

func WithOrderedSetLogger[K any](logger xlog.XLogger) OrderedSetOpt[K] {
	return func(cfg *orderedSetCfg[K]) {
		cfg.logger = logger
	}
}

// WithOrderedSetKeys loads the keys, the duplicates are ignored.
func WithOrderedSetKeys[K any](keys ...K) OrderedSetOpt[K] {
	return func(cfg *orderedSetCfg[K]) {
		cfg.keys = append(cfg.keys, keys...)
	}
}

func NewOrderedSet[K infra.OrderedKey](opts ...OrderedSetOpt[K]) OrderedSet[K] {
	return NewOrderedSetFunc[K](infra.OrderedLess[K], opts...)
}

func NewOrderedSetFunc[K any](less infra.LessFunc[K], opts ...OrderedSetOpt[K]) OrderedSet[K] {
	cfg := &orderedSetCfg[K]{}
	for _, o := range opts {
		o(cfg)
	}

	treeOpts := make([]tree.LLRBTreeOpt[K, struct{}], 0, 2)
	if cfg.desc {
		treeOpts = append(treeOpts, tree.WithLLRBDesc[K, struct{}]())
	}
	if cfg.logger != nil {
		treeOpts = append(treeOpts, tree.WithLLRBLogger[K, struct{}](cfg.logger.Named("oset")))
	}
	s := &orderedSet[K]{
		LLRBTree: tree.NewLLRBTreeFunc[K, struct{}](less, treeOpts...),
	}
	for _, key := range cfg.keys {
		s.Insert(key)
	}
	if cfg.logger != nil && len(cfg.keys) > 0 {
		cfg.logger.Debug("[kv] ordered set loaded",
			zap.Int("keys", len(cfg.keys)),
			zap.Int64("size", s.Len()),
		)
	}
	return s
}
