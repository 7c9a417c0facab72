package ecs

import "sort"

// StorageStats summarises what a Storage currently holds.
type StorageStats struct {
	EntityCount     int
	ComponentCounts []ComponentCount
	RegisteredTypes int
}

// ComponentCount is the number of live entities carrying one component type.
type ComponentCount struct {
	Type  string
	Count int
}

// CollectStats walks the storage and counts entities per component type.
// Counts are sorted by type name.
func (s *Storage) CollectStats() StorageStats {
	counts := make(map[string]int)
	for _, id := range s.order {
		e, ok := s.entities.Get(id)
		if !ok {
			continue
		}
		for t := range e.components {
			counts[t.String()]++
		}
	}

	stats := StorageStats{
		EntityCount:     s.Len(),
		ComponentCounts: make([]ComponentCount, 0, len(counts)),
		RegisteredTypes: len(s.registry.types),
	}
	for name, n := range counts {
		stats.ComponentCounts = append(stats.ComponentCounts, ComponentCount{Type: name, Count: n})
	}
	sort.Slice(stats.ComponentCounts, func(i, j int) bool {
		return stats.ComponentCounts[i].Type < stats.ComponentCounts[j].Type
	})
	return stats
}
