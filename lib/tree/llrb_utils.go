package tree

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xllrb/lib/infra"
	"github.com/benz9527/xllrb/lib/list"
)

// llrb rule validation utilities.

// References:
// https://algs4.cs.princeton.edu/33balanced/RedBlackBST.java.html (check, is23, isBalanced)

func isRedNode[K, V any](node LLRBNode[K, V]) bool {
	return node != nil && node.Color() == Red
}

// RedViolationValidate walks in order, checks no right link is red
// and no red node has a red left child.
func RedViolationValidate[K, V any](tree LLRBTree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if isRedNode[K, V](root) {
		return infra.WrapErrorStackWithMessage(ErrLLRBRedViolation, "red root")
	}

	stack := list.NewDeque[LLRBNode[K, V]]()
	defer stack.Clear()
	for aux := root; aux != nil; aux = aux.Left() {
		stack.PushBack(aux)
	}
	for !stack.IsEmpty() {
		aux, _ := stack.PopBack()
		if isRedNode[K, V](aux.Right()) {
			return infra.WrapErrorStackWithMessage(ErrLLRBRedViolation, "red right link")
		}
		if isRedNode[K, V](aux) && isRedNode[K, V](aux.Left()) {
			return infra.WrapErrorStackWithMessage(ErrLLRBRedViolation, "two red links in a row")
		}
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack.PushBack(aux)
		}
	}
	return nil
}

/*
<X> is linked by a RED link.
[X] is linked by a BLACK link.

	      [8]
	      / \
	   <4>   [12]
	   / \    /
	 [2] [6] <10>

2-3 tree like:

	     [4 --- 8]
	    /    |    \
	  [2]   [6]  [10-12]

Every path from the root to a nil link has the same count of black links.
*/
func BlackViolationValidate[K, V any](tree LLRBTree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}

	var (
		expected    = int64(-1)
		nodes       = list.NewDeque[LLRBNode[K, V]]()
		blackDepths = list.NewDeque[int64]()
	)
	defer func() {
		nodes.Clear()
		blackDepths.Clear()
	}()
	nodes.PushBack(root)
	blackDepths.PushBack(1)
	for !nodes.IsEmpty() {
		aux, _ := nodes.PopFront()
		depth, _ := blackDepths.PopFront()
		l, r := aux.Left(), aux.Right()
		if /* nil links */ l == nil || r == nil {
			if expected < 0 {
				expected = depth
			} else if expected != depth {
				return infra.WrapErrorStack(ErrLLRBBlackViolation)
			}
		}
		for _, child := range []LLRBNode[K, V]{l, r} {
			if child == nil {
				continue
			}
			nodes.PushBack(child)
			if isRedNode[K, V](child) {
				blackDepths.PushBack(depth)
			} else {
				blackDepths.PushBack(depth + 1)
			}
		}
	}
	return nil
}

// SizeViolationValidate checks every subtree size augmentation.
func SizeViolationValidate[K, V any](tree LLRBTree[K, V]) error {
	root := tree.Root()
	if root == nil {
		if tree.Len() != 0 {
			return infra.WrapErrorStack(ErrLLRBSizeViolation)
		}
		return nil
	}
	if _, ok := countSubtree[K, V](root); !ok {
		return infra.WrapErrorStack(ErrLLRBSizeViolation)
	}
	return nil
}

func countSubtree[K, V any](node LLRBNode[K, V]) (int64, bool) {
	if node == nil {
		return 0, true
	}
	l, ok := countSubtree[K, V](node.Left())
	if !ok {
		return 0, false
	}
	r, ok := countSubtree[K, V](node.Right())
	if !ok {
		return 0, false
	}
	if node.Size() != 1+l+r {
		return 0, false
	}
	return node.Size(), true
}

// OrderViolationValidate checks the in-order keys are strictly increasing.
func OrderViolationValidate[K, V any](tree LLRBTree[K, V]) error {
	var (
		prev    K
		hasPrev bool
		err     error
	)
	tree.Foreach(func(idx int64, key K, val V) bool {
		if hasPrev && tree.KeyCompare(prev, key) != infra.LessThan {
			err = infra.WrapErrorStack(ErrLLRBOrderViolation)
			return false
		}
		prev, hasPrev = key, true
		return true
	})
	return err
}

// Validate combines all the rule violations.
func (tree *llrbTree[K, V]) Validate() error {
	err := multierr.Combine(
		RedViolationValidate[K, V](tree),
		BlackViolationValidate[K, V](tree),
		SizeViolationValidate[K, V](tree),
		OrderViolationValidate[K, V](tree),
	)
	if err != nil {
		err = infra.WrapErrorStackWithMessage(err, "[llrb] invalid tree")
		tree.logger.ErrorStack(err, "[llrb] validate", zap.Int64("size", tree.Len()))
	}
	return err
}
