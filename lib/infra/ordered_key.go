package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

type CmpResult int8

const (
	LessThan CmpResult = -1 + iota
	EqualTo
	GreaterThan
)

func (res CmpResult) String() string {
	switch res {
	case LessThan:
		return "LessThan"
	case EqualTo:
		return "EqualTo"
	case GreaterThan:
		return "GreaterThan"
	default:
	}
	return "Unknown"
}

// LessFunc is a strict weak ordering predicate.
// The keys i and j are treated as equal iff neither
// less(i, j) nor less(j, i) holds.
type LessFunc[K any] func(i, j K) bool

// Compare turns the predicate into a three-way comparison.
// Assume i is the new key.
//  1. less(i, j), return LessThan, turn to left part.
//  2. less(j, i), return GreaterThan, turn to right part.
//  3. otherwise i and j are equal, return EqualTo.
func (less LessFunc[K]) Compare(i, j K) CmpResult {
	if less(i, j) {
		return LessThan
	}
	if less(j, i) {
		return GreaterThan
	}
	return EqualTo
}

// Reverse returns the predicate for the descending order.
func (less LessFunc[K]) Reverse() LessFunc[K] {
	return func(i, j K) bool {
		return less(j, i)
	}
}

func OrderedLess[K OrderedKey](i, j K) bool {
	return i < j
}
