package search

import "sort"

// IDSet is an unordered set of ids within one kind.
type IDSet map[string]struct{}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in lexical order.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Results partitions discovered ids by kind. Returned results never hold empty buckets.
type Results map[Kind]IDSet

// Has reports whether id is recorded under kind.
func (r Results) Has(kind Kind, id string) bool {
	return r[kind].Has(id)
}

func (r Results) add(kind Kind, id string) bool {
	bucket, ok := r[kind]
	if !ok {
		bucket = make(IDSet)
		r[kind] = bucket
	}
	if bucket.Has(id) {
		return false
	}
	bucket[id] = struct{}{}
	return true
}

// Kinds returns the kinds present in r, in canonical order.
func (r Results) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r))
	for _, k := range supportedKinds {
		if len(r[k]) > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Len returns the total number of ids across all kinds.
func (r Results) Len() int {
	n := 0
	for _, bucket := range r {
		n += len(bucket)
	}
	return n
}

// Sorted converts the results to sorted id lists keyed by kind name.
// This is the wire shape forwarded to callers.
func (r Results) Sorted() map[string][]string {
	out := make(map[string][]string, len(r))
	for kind, bucket := range r {
		if len(bucket) == 0 {
			continue
		}
		out[string(kind)] = bucket.Sorted()
	}
	return out
}

// Counts returns the number of ids per kind.
func (r Results) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(r))
	for kind, bucket := range r {
		counts[kind] = len(bucket)
	}
	return counts
}
