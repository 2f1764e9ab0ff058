package tree

import (
	"errors"

	"go.uber.org/zap"

	"github.com/benz9527/xllrb/lib/infra"
	"github.com/benz9527/xllrb/lib/xlog"
)

// References:
// https://sedgewick.io/wp-content/themes/sedgewick/papers/2008LLRB.pdf
// https://algs4.cs.princeton.edu/33balanced/RedBlackBST.java.html
//
// Left-leaning red-black tree properties:
// p1. A right link is never red.
// p2. No node has two red links connected to it. (red-violation)
// p3. Every path from the root to a nil link has the same
//   number of black links. (black-violation)
// p4. The root link is black.
// It is a 1-1 correspondence with the 2-3 tree, so the height
// is no more than 2 * lg(n + 1).

var (
	ErrLLRBEmpty           = errors.New("[llrb] there is no element")
	ErrLLRBKeyNotFound     = errors.New("[llrb] key not found")
	ErrLLRBOutOfDomain     = errors.New("[llrb] out of domain")
	ErrLLRBReplaceDisabled = errors.New("[llrb] replace disabled")
	ErrLLRBRedViolation    = errors.New("[llrb] red violation")
	ErrLLRBBlackViolation  = errors.New("[llrb] black violation")
	ErrLLRBSizeViolation   = errors.New("[llrb] size violation")
	ErrLLRBOrderViolation  = errors.New("[llrb] order violation")
)

var _ LLRBTree[int, struct{}] = (*llrbTree[int, struct{}])(nil) // Type check assertion

type llrbNode[K, V any] struct {
	left  *llrbNode[K, V]
	right *llrbNode[K, V]
	key   K
	val   V
	size  int64
	color RBColor
}

func newLLRBNode[K, V any](key K, val V) *llrbNode[K, V] {
	return &llrbNode[K, V]{
		key:   key,
		val:   val,
		size:  1,
		color: Red,
	}
}

func (node *llrbNode[K, V]) Key() K         { return node.key }
func (node *llrbNode[K, V]) Val() V         { return node.val }
func (node *llrbNode[K, V]) Color() RBColor { return node.color }
func (node *llrbNode[K, V]) Size() int64    { return node.sizeOf() }

// Left avoids the typed nil interface.
func (node *llrbNode[K, V]) Left() LLRBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *llrbNode[K, V]) Right() LLRBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *llrbNode[K, V]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *llrbNode[K, V]) sizeOf() int64 {
	if node == nil {
		return 0
	}
	return node.size
}

func (node *llrbNode[K, V]) resize() {
	node.size = 1 + node.left.sizeOf() + node.right.sizeOf()
}

func (node *llrbNode[K, V]) minimum() *llrbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *llrbNode[K, V]) maximum() *llrbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

/*
<X> is linked by a RED link.
[X] is linked by a BLACK link.
{X} is linked by either a RED or a BLACK link.

	    {X}                         {S}
	    / \     rotateLeft(X)      /   \
	   L  <S>   ============>    <X>    Sd
	      / \                    / \
	    Sc   Sd                 L   Sc
*/
func (node *llrbNode[K, V]) rotateLeft() *llrbNode[K, V] {
	x := node.right
	node.right, x.left = x.left, node
	x.color, node.color = node.color, Red
	x.size = node.size
	node.resize()
	return x
}

/*
	        {X}                       {S}
	        / \    rotateRight(X)     / \
	      <S>  R   ============>     Sc <X>
	      / \                           / \
	    Sc   Sd                       Sd   R
*/
func (node *llrbNode[K, V]) rotateRight() *llrbNode[K, V] {
	x := node.left
	node.left, x.right = x.right, node
	x.color, node.color = node.color, Red
	x.size = node.size
	node.resize()
	return x
}

/*
Split a temporary 4-node, or merge two 2-nodes with the parent.

	    [X]                <X>
	    / \    flip(X)     / \
	  <L> <R>  ======>   [L] [R]
*/
func (node *llrbNode[K, V]) flipColors() {
	node.color = node.color.flip()
	node.left.color = node.left.color.flip()
	node.right.color = node.right.color.flip()
}

func (c RBColor) flip() RBColor {
	if c == Red {
		return Black
	}
	return Red
}

// rbFix restores the left-leaning form on the way up.
// f1. A right leaning red link, rotate it to lean left.
// f2. Two left red links in a row, rotate the top one right.
// f3. Both children are red, split the temporary 4-node.
// The order of f1, f2 and f3 is significant.
func (node *llrbNode[K, V]) rbFix() *llrbNode[K, V] {
	if /* f1 */ node.right.isRed() && !node.left.isRed() {
		node = node.rotateLeft()
	}
	if /* f2 */ node.left.isRed() && node.left.left.isRed() {
		node = node.rotateRight()
	}
	if /* f3 */ node.left.isRed() && node.right.isRed() {
		node.flipColors()
	}
	node.resize()
	return node
}

/*
The left child X and its left child are both black (X is a 2-node).
Borrow from the right sibling S to make X or one of its children red.

	    {P}                 [P]
	    / \    flip(P)      / \
	  [X] [S]  ======>    <X> <S>

If the sibling S is a 3-node (Sc is red), lend Sc to the left side.

	      [P]                        [Sc]
	      / \      rotateRight(S)    /  \
	    <X> <S>    rotateLeft(P)   [P]  [S]
	        /      flip(Sc)        /
	      <Sc>     ==========>   <X>
*/
func (node *llrbNode[K, V]) moveRedLeft() *llrbNode[K, V] {
	node.flipColors()
	if node.right.left.isRed() {
		node.right = node.right.rotateRight()
		node = node.rotateLeft()
		node.flipColors()
	}
	return node
}

// moveRedRight is the mirror of moveRedLeft. The sibling lends
// its red left child to the right side.
func (node *llrbNode[K, V]) moveRedRight() *llrbNode[K, V] {
	node.flipColors()
	if node.left.left.isRed() {
		node = node.rotateRight()
		node.flipColors()
	}
	return node
}

// eraseMin returns the new subtree root, nil if the subtree becomes empty.
func (node *llrbNode[K, V]) eraseMin() *llrbNode[K, V] {
	if node.left == nil {
		return nil
	}
	if !node.left.isRed() && !node.left.left.isRed() {
		node = node.moveRedLeft()
	}
	node.left = node.left.eraseMin()
	return node.rbFix()
}

func (node *llrbNode[K, V]) eraseMax() *llrbNode[K, V] {
	if node.left.isRed() {
		node = node.rotateRight()
	}
	if node.right == nil {
		return nil
	}
	if !node.right.isRed() && !node.right.left.isRed() {
		node = node.moveRedRight()
	}
	node.right = node.right.eraseMax()
	return node.rbFix()
}

func (node *llrbNode[K, V]) clone() *llrbNode[K, V] {
	if node == nil {
		return nil
	}
	return &llrbNode[K, V]{
		left:  node.left.clone(),
		right: node.right.clone(),
		key:   node.key,
		val:   node.val,
		size:  node.size,
		color: node.color,
	}
}

type llrbTree[K, V any] struct {
	root   *llrbNode[K, V]
	less   infra.LessFunc[K]
	logger xlog.XLogger
}

func (tree *llrbTree[K, V]) KeyCompare(k1, k2 K) infra.CmpResult {
	return tree.less.Compare(k1, k2)
}

func (tree *llrbTree[K, V]) Len() int64 {
	return tree.root.sizeOf()
}

func (tree *llrbTree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

func (tree *llrbTree[K, V]) Root() LLRBNode[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// insert returns the new subtree root and the node holding the key.
// An existing key keeps the structure untouched.
func (tree *llrbTree[K, V]) insert(node *llrbNode[K, V], key K, val V, replace bool) (*llrbNode[K, V], *llrbNode[K, V]) {
	if node == nil {
		z := newLLRBNode[K, V](key, val)
		return z, z
	}

	var target *llrbNode[K, V]
	switch tree.less.Compare(key, node.key) {
	case infra.LessThan:
		node.left, target = tree.insert(node.left, key, val, replace)
	case infra.GreaterThan:
		node.right, target = tree.insert(node.right, key, val, replace)
	default:
		if replace {
			node.val = val
		}
		return node, node
	}
	return node.rbFix(), target
}

func (tree *llrbTree[K, V]) Insert(key K, val V, ifNotPresent ...bool) error {
	if /* disabled */ len(ifNotPresent) > 0 && ifNotPresent[0] && tree.search(key) != nil {
		return infra.WrapErrorStack(ErrLLRBReplaceDisabled)
	}
	tree.root, _ = tree.insert(tree.root, key, val, true)
	tree.root.color = Black
	return nil
}

func (tree *llrbTree[K, V]) Upsert(key K) *V {
	var (
		zero   V
		target *llrbNode[K, V]
	)
	tree.root, target = tree.insert(tree.root, key, zero, false)
	tree.root.color = Black
	return &target.val
}

// erase requires the key is present in the subtree. Push a red link
// down along the search path, so the node to be removed is never a
// 2-node. Then fix the right leaning reds on the way up.
func (tree *llrbTree[K, V]) erase(node *llrbNode[K, V], key K) *llrbNode[K, V] {
	if tree.less.Compare(key, node.key) == infra.LessThan {
		if !node.left.isRed() && !node.left.left.isRed() {
			node = node.moveRedLeft()
		}
		node.left = tree.erase(node.left, key)
		return node.rbFix()
	}

	if node.left.isRed() {
		node = node.rotateRight()
	}
	if /* leaf */ tree.less.Compare(key, node.key) == infra.EqualTo && node.right == nil {
		return nil
	}
	if !node.right.isRed() && !node.right.left.isRed() {
		node = node.moveRedRight()
	}
	if tree.less.Compare(key, node.key) == infra.EqualTo {
		// Borrow the successor.
		succ := node.right.minimum()
		node.key, node.val = succ.key, succ.val
		node.right = node.right.eraseMin()
	} else {
		node.right = tree.erase(node.right, key)
	}
	return node.rbFix()
}

// prepareRootForErase makes sure there is a red link to be pushed down.
func (tree *llrbTree[K, V]) prepareRootForErase() {
	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
}

func (tree *llrbTree[K, V]) finishErase() {
	if tree.root != nil {
		tree.root.color = Black
	}
}

func (tree *llrbTree[K, V]) Remove(key K) (LLRBNode[K, V], error) {
	if tree.root == nil {
		return nil, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	// Look up first, the tree is untouched on failure.
	z := tree.search(key)
	if z == nil {
		return nil, infra.WrapErrorStack(ErrLLRBKeyNotFound)
	}
	removed := detachedLLRBNode(z)

	tree.prepareRootForErase()
	tree.root = tree.erase(tree.root, key)
	tree.finishErase()
	return removed, nil
}

func (tree *llrbTree[K, V]) RemoveMin() (LLRBNode[K, V], error) {
	if tree.root == nil {
		return nil, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	removed := detachedLLRBNode(tree.root.minimum())

	tree.prepareRootForErase()
	tree.root = tree.root.eraseMin()
	tree.finishErase()
	return removed, nil
}

func (tree *llrbTree[K, V]) RemoveMax() (LLRBNode[K, V], error) {
	if tree.root == nil {
		return nil, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	removed := detachedLLRBNode(tree.root.maximum())

	tree.prepareRootForErase()
	tree.root = tree.root.eraseMax()
	tree.finishErase()
	return removed, nil
}

// The node storage may be reused by the successor borrowing,
// so the removed key and value are returned by a copy.
func detachedLLRBNode[K, V any](node *llrbNode[K, V]) *llrbNode[K, V] {
	return &llrbNode[K, V]{
		key:   node.key,
		val:   node.val,
		size:  1,
		color: Black,
	}
}

func (tree *llrbTree[K, V]) Clone() LLRBTree[K, V] {
	cloned := &llrbTree[K, V]{
		root:   tree.root.clone(),
		less:   tree.less,
		logger: tree.logger,
	}
	tree.logger.Debug("[llrb] deep copied", zap.Int64("size", cloned.Len()))
	return cloned
}

type LLRBTreeOpt[K, V any] func(*llrbTree[K, V])

// WithLLRBDesc reverses the ordering.
func WithLLRBDesc[K, V any]() LLRBTreeOpt[K, V] {
	return func(tree *llrbTree[K, V]) {
		tree.less = tree.less.Reverse()
	}
}

func WithLLRBLogger[K, V any](logger xlog.XLogger) LLRBTreeOpt[K, V] {
	return func(tree *llrbTree[K, V]) {
		if logger != nil {
			tree.logger = logger.Named("llrb")
		}
	}
}

// NewLLRBTree orders the keys by the natural order.
func NewLLRBTree[K infra.OrderedKey, V any](opts ...LLRBTreeOpt[K, V]) LLRBTree[K, V] {
	return NewLLRBTreeFunc[K, V](infra.OrderedLess[K], opts...)
}

// NewLLRBTreeFunc orders the keys by the strict weak ordering less.
func NewLLRBTreeFunc[K, V any](less infra.LessFunc[K], opts ...LLRBTreeOpt[K, V]) LLRBTree[K, V] {
	if less == nil {
		panic( /* debug assertion */ "[llrb] nil less function")
	}
	tree := &llrbTree[K, V]{
		less:   less,
		logger: xlog.NewNopXLogger(),
	}
	for _, o := range opts {
		o(tree)
	}
	return tree
}
