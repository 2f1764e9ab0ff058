package tree

import (
	"strings"

	"go.uber.org/zap"

	"github.com/benz9527/xllrb/lib/infra"
	"github.com/benz9527/xllrb/lib/list"
)

const (
	defaultSerializeDelimiter = ","
	defaultSerializeNilMarker = ")"
)

type serializeCfg struct {
	delimiter string
	nilMarker string
}

type SerializeOption func(*serializeCfg)

func WithSerializeDelimiter(delimiter string) SerializeOption {
	return func(cfg *serializeCfg) {
		cfg.delimiter = delimiter
	}
}

// WithSerializeNilMarker sets the token appended right after a leaf.
func WithSerializeNilMarker(nilMarker string) SerializeOption {
	return func(cfg *serializeCfg) {
		cfg.nilMarker = nilMarker
	}
}

// Serialize walks in preorder, the left subtree goes first.
// Each key is followed by the delimiter and a leaf is followed
// by one more nil marker.
// For example, the keys 3,1,5,0,4,2,6 inserted in order are
// dumped as "3,1,0,)2,)5,4,)6,)".
func (tree *llrbTree[K, V]) Serialize(toString func(K) string, opts ...SerializeOption) (string, error) {
	if tree.root == nil {
		return "", infra.WrapErrorStack(ErrLLRBEmpty)
	}
	if toString == nil {
		return "", infra.NewErrorStack("[llrb] nil key to string function")
	}
	cfg := &serializeCfg{
		delimiter: defaultSerializeDelimiter,
		nilMarker: defaultSerializeNilMarker,
	}
	for _, o := range opts {
		o(cfg)
	}

	builder := strings.Builder{}
	stack := list.NewDeque[*llrbNode[K, V]]()
	stack.PushBack(tree.root)
	for !stack.IsEmpty() {
		node, _ := stack.PopBack()
		_, _ = builder.WriteString(toString(node.key))
		_, _ = builder.WriteString(cfg.delimiter)
		if node.right != nil {
			stack.PushBack(node.right)
		}
		if node.left != nil {
			stack.PushBack(node.left)
		}
		if /* leaf */ node.left == nil && node.right == nil {
			_, _ = builder.WriteString(cfg.nilMarker)
		}
	}
	return builder.String(), nil
}

// Depth walks level by level, the root is at depth 1.
// An empty tree has depth 0.
func (tree *llrbTree[K, V]) Depth() int64 {
	if tree.root == nil {
		return 0
	}
	var (
		depth  int64
		nodes  = list.NewDeque[*llrbNode[K, V]]()
		depths = list.NewDeque[int64]()
	)
	nodes.PushBack(tree.root)
	depths.PushBack(1)
	for !nodes.IsEmpty() {
		node, _ := nodes.PopFront()
		d, _ := depths.PopFront()
		depth = max(depth, d)
		if node.left != nil {
			nodes.PushBack(node.left)
			depths.PushBack(d + 1)
		}
		if node.right != nil {
			nodes.PushBack(node.right)
			depths.PushBack(d + 1)
		}
	}
	return depth
}

var _ LLRBIterator[int, struct{}] = (*llrbIterator[int, struct{}])(nil) // Type check assertion

// llrbIterator keeps the pending ancestors, the top of the stack
// is the current node.
type llrbIterator[K, V any] struct {
	stack list.Deque[*llrbNode[K, V]]
}

func newLLRBIterator[K, V any]() *llrbIterator[K, V] {
	return &llrbIterator[K, V]{
		stack: list.NewDeque[*llrbNode[K, V]](),
	}
}

func (it *llrbIterator[K, V]) pushLeft(node *llrbNode[K, V]) {
	for ; node != nil; node = node.left {
		it.stack.PushBack(node)
	}
}

func (it *llrbIterator[K, V]) current() *llrbNode[K, V] {
	node, ok := it.stack.Back()
	if !ok {
		panic( /* debug assertion */ "[llrb] dereference the end iterator")
	}
	return node
}

func (it *llrbIterator[K, V]) Valid() bool {
	return !it.stack.IsEmpty()
}

func (it *llrbIterator[K, V]) Key() K {
	return it.current().key
}

func (it *llrbIterator[K, V]) Val() V {
	return it.current().val
}

// Next is a no-op at the end.
func (it *llrbIterator[K, V]) Next() {
	node, ok := it.stack.PopBack()
	if !ok {
		return
	}
	it.pushLeft(node.right)
}

func (it *llrbIterator[K, V]) Equal(other LLRBIterator[K, V]) bool {
	that, ok := other.(*llrbIterator[K, V])
	if !ok || that == nil {
		return false
	}
	if it.stack.IsEmpty() || that.stack.IsEmpty() {
		return it.stack.IsEmpty() && that.stack.IsEmpty()
	}
	n1, _ := it.stack.Back()
	n2, _ := that.stack.Back()
	return n1 == n2
}

func (tree *llrbTree[K, V]) Begin() LLRBIterator[K, V] {
	it := newLLRBIterator[K, V]()
	it.pushLeft(tree.root)
	return it
}

func (tree *llrbTree[K, V]) End() LLRBIterator[K, V] {
	return newLLRBIterator[K, V]()
}

// Find returns the end iterator if the key is absent.
func (tree *llrbTree[K, V]) Find(key K) LLRBIterator[K, V] {
	it := newLLRBIterator[K, V]()
	for aux := tree.root; aux != nil; {
		switch tree.less.Compare(key, aux.key) {
		case infra.LessThan:
			// Visited after the left subtree.
			it.stack.PushBack(aux)
			aux = aux.left
		case infra.GreaterThan:
			aux = aux.right
		default:
			it.stack.PushBack(aux)
			return it
		}
	}
	it.stack.Clear()
	return it
}

// Foreach visits in order until the action returns false.
func (tree *llrbTree[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	if action == nil {
		return
	}
	idx := int64(0)
	for it := tree.Begin(); it.Valid(); it.Next() {
		if !action(idx, it.Key(), it.Val()) {
			return
		}
		idx++
	}
}

// Release tears down the whole tree without recursion.
func (tree *llrbTree[K, V]) Release() {
	if tree.root == nil {
		return
	}
	size := tree.root.size
	stack := list.NewDeque[*llrbNode[K, V]]()
	stack.PushBack(tree.root)
	for !stack.IsEmpty() {
		node, _ := stack.PopBack()
		if node.left != nil {
			stack.PushBack(node.left)
		}
		if node.right != nil {
			stack.PushBack(node.right)
		}
		node.left, node.right = nil, nil
	}
	tree.root = nil
	tree.logger.Debug("[llrb] released", zap.Int64("size", size))
}

func (tree *llrbTree[K, V]) EqualFunc(other LLRBTree[K, V], valEq func(v1, v2 V) bool) bool {
	if other == nil || valEq == nil {
		return false
	}
	if tree.Len() != other.Len() {
		return false
	}
	return tree.equalFunc(tree.Root(), other.Root(), valEq)
}

func (tree *llrbTree[K, V]) equalFunc(n1, n2 LLRBNode[K, V], valEq func(v1, v2 V) bool) bool {
	if n1 == nil || n2 == nil {
		return n1 == nil && n2 == nil
	}
	if tree.KeyCompare(n1.Key(), n2.Key()) != infra.EqualTo || !valEq(n1.Val(), n2.Val()) {
		return false
	}
	return tree.equalFunc(n1.Left(), n2.Left(), valEq) &&
		tree.equalFunc(n1.Right(), n2.Right(), valEq)
}
