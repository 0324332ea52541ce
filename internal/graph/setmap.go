package graph

import mapset "github.com/deckarep/golang-set/v2"

// SetMap maps each key to a set of values.
type SetMap[K, V comparable] map[K]mapset.Set[V]

func NewSetMap[K, V comparable](keys ...K) SetMap[K, V] {
	m := make(SetMap[K, V], len(keys))
	for _, key := range keys {
		m[key] = mapset.NewSet[V]()
	}
	return m
}

func (m SetMap[K, V]) Add(key K, value V) {
	if _, ok := m[key]; !ok {
		m[key] = mapset.NewSet[V]()
	}
	m[key].Add(value)
}

// Get returns the set for key, or an empty set if key is absent.
func (m SetMap[K, V]) Get(key K) mapset.Set[V] {
	if s, ok := m[key]; ok {
		return s
	}
	return mapset.NewSet[V]()
}
