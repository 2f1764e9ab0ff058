package tree

import (
	"github.com/benz9527/xllrb/lib/infra"
)

func (tree *llrbTree[K, V]) search(key K) *llrbNode[K, V] {
	for aux := tree.root; aux != nil; {
		switch tree.less.Compare(key, aux.key) {
		case infra.LessThan:
			aux = aux.left
		case infra.GreaterThan:
			aux = aux.right
		default:
			return aux
		}
	}
	return nil
}

func (tree *llrbTree[K, V]) At(key K) (V, error) {
	var zero V
	if tree.root == nil {
		return zero, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	if node := tree.search(key); node != nil {
		return node.val, nil
	}
	return zero, infra.WrapErrorStack(ErrLLRBKeyNotFound)
}

func (tree *llrbTree[K, V]) Contains(key K) bool {
	return tree.search(key) != nil
}

// Rank is well-defined for the absent keys as well.
func (tree *llrbTree[K, V]) Rank(key K) (int64, error) {
	if tree.root == nil {
		return 0, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	rank := int64(0)
	for aux := tree.root; aux != nil; {
		switch tree.less.Compare(key, aux.key) {
		case infra.LessThan:
			aux = aux.left
		case infra.GreaterThan:
			rank += 1 + aux.left.sizeOf()
			aux = aux.right
		default:
			return rank + aux.left.sizeOf(), nil
		}
	}
	return rank, nil
}

func (tree *llrbTree[K, V]) Min() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	return tree.root.minimum().key, nil
}

func (tree *llrbTree[K, V]) Max() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	return tree.root.maximum().key, nil
}

func (tree *llrbTree[K, V]) Floor(key K) (K, error) {
	var zero K
	if tree.root == nil {
		return zero, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	var candidate *llrbNode[K, V]
	for aux := tree.root; aux != nil; {
		switch tree.less.Compare(key, aux.key) {
		case infra.LessThan:
			aux = aux.left
		case infra.GreaterThan:
			candidate = aux
			aux = aux.right
		default:
			return aux.key, nil
		}
	}
	if candidate == nil {
		return zero, infra.WrapErrorStackWithMessage(ErrLLRBOutOfDomain, "argument too small")
	}
	return candidate.key, nil
}

func (tree *llrbTree[K, V]) Ceiling(key K) (K, error) {
	var zero K
	if tree.root == nil {
		return zero, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	var candidate *llrbNode[K, V]
	for aux := tree.root; aux != nil; {
		switch tree.less.Compare(key, aux.key) {
		case infra.LessThan:
			candidate = aux
			aux = aux.left
		case infra.GreaterThan:
			aux = aux.right
		default:
			return aux.key, nil
		}
	}
	if candidate == nil {
		return zero, infra.WrapErrorStackWithMessage(ErrLLRBOutOfDomain, "argument too large")
	}
	return candidate.key, nil
}

// RankSelect is the inverse of Rank, the rank ranges in [0, Len()).
func (tree *llrbTree[K, V]) RankSelect(rank int64) (K, error) {
	var zero K
	if tree.root == nil {
		return zero, infra.WrapErrorStack(ErrLLRBEmpty)
	}
	if rank < 0 || rank >= tree.root.size {
		return zero, infra.WrapErrorStackWithMessage(ErrLLRBOutOfDomain, "invalid rank")
	}
	aux := tree.root
	for {
		leftSize := aux.left.sizeOf()
		if rank < leftSize {
			aux = aux.left
		} else if rank > leftSize {
			rank -= leftSize + 1
			aux = aux.right
		} else {
			return aux.key, nil
		}
	}
}
