package store

import "github.com/forestrie/go-mst/page"

// MissingSet computes, via depth-first traversal from root with a work stack
// and a visited set, every page ID reachable from root that is not present
// in s. The root sentinel (page.ID{}) is never missing: an empty tree has no
// pages to fetch.
func (s *MemStore) MissingSet(root page.ID) map[page.ID]struct{} {
	result := map[page.ID]struct{}{}
	if root.IsZero() {
		return result
	}

	visited := map[page.ID]struct{}{}
	stack := []page.ID{root}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}

		p, ok := s.Get(id)
		if !ok {
			result[id] = struct{}{}
			continue
		}
		for _, ref := range p.Refs() {
			if _, seen := visited[ref]; !seen {
				stack = append(stack, ref)
			}
		}
	}

	return result
}
