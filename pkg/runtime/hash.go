package runtime

import "strings"

// HashKey is the comparable identity of a hashable value. Only integers,
// booleans and strings can be hash keys.
type HashKey struct {
	Kind Kind
	Int  int64
	Str  string
}

// HashKeyOf returns the key for v and whether v is hashable.
func HashKeyOf(v Value) (HashKey, bool) {
	switch val := v.(type) {
	case IntegerValue:
		return HashKey{Kind: KindInteger, Int: val.Val}, true
	case *BoolValue:
		var n int64
		if val.Val {
			n = 1
		}
		return HashKey{Kind: KindBool, Int: n}, true
	case StringValue:
		return HashKey{Kind: KindString, Str: val.Val}, true
	default:
		return HashKey{}, false
	}
}

// HashPair keeps the original key value for display.
type HashPair struct {
	Key   Value
	Value Value
}

// HashValue maps hash keys to values and remembers insertion order for
// Inspect. Lookups do not depend on order.
type HashValue struct {
	pairs map[HashKey]HashPair
	order []HashKey
}

func NewHash() *HashValue {
	return &HashValue{pairs: make(map[HashKey]HashPair)}
}

func (v *HashValue) Kind() Kind { return KindHash }

// Set binds key to value. A repeated key keeps its first position and takes
// the latest value.
func (v *HashValue) Set(key HashKey, pair HashPair) {
	if _, exists := v.pairs[key]; !exists {
		v.order = append(v.order, key)
	}
	v.pairs[key] = pair
}

// Get returns the pair stored under key.
func (v *HashValue) Get(key HashKey) (HashPair, bool) {
	pair, ok := v.pairs[key]
	return pair, ok
}

// Len reports the number of distinct keys.
func (v *HashValue) Len() int { return len(v.order) }

// Pairs returns the entries in insertion order.
func (v *HashValue) Pairs() []HashPair {
	out := make([]HashPair, 0, len(v.order))
	for _, key := range v.order {
		out = append(out, v.pairs[key])
	}
	return out
}

func (v *HashValue) Inspect() string {
	parts := make([]string, 0, len(v.order))
	for _, pair := range v.Pairs() {
		parts = append(parts, pair.Key.Inspect()+": "+pair.Value.Inspect())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
