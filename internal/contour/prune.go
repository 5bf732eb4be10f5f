package contour

// Prune removes a from the contour set. It returns false if a was already removed (or is the
// target sentinel, which can never be pruned).
//
// Removing a may invalidate the layer of arrows that depended on it to extend their chain: those
// arrows are recomputed, and the recomputation cascades outward one layer at a time, stopping at
// the first layer where nothing changed.
func (s *Set) Prune(a *Arrow) bool {
	if a.layer <= 0 {
		return false
	}
	layer := a.layer
	if !s.remove(a) {
		return false
	}
	s.propagate(layer + 1)
	return true
}

// remove deletes a from its recorded layer, using its hint as a starting guess.
func (s *Set) remove(a *Arrow) bool {
	bucket := s.layers[a.layer]
	i := a.hint
	if i < 0 || i >= len(bucket) || bucket[i] != a {
		i = -1
		for j, b := range bucket {
			if b == a {
				i = j
				break
			}
		}
		if i < 0 {
			return false
		}
	}
	s.layers[a.layer] = append(bucket[:i], bucket[i+1:]...)
	for j := i; j < len(s.layers[a.layer]); j++ {
		s.layers[a.layer][j].hint = j
	}
	a.layer = -1
	return true
}

// propagate recomputes every arrow from startLayer onward whose best chain might route through
// an arrow that was just removed, stopping as soon as a whole layer comes back unchanged.
func (s *Set) propagate(startLayer int) {
	for layer := startLayer; layer < len(s.layers); layer++ {
		changed := false
		for _, a := range append([]*Arrow(nil), s.layers[layer]...) {
			below := s.maxLayerReaching(a.P.Add(a.Len, a.Len))
			newChainLen := a.Len
			if below >= 0 {
				newChainLen += s.LenSum(below)
			}
			newLayer := below + 1
			if newLayer == a.layer {
				if newChainLen != a.chainLen {
					a.chainLen = newChainLen
					changed = true
				}
				continue
			}
			changed = true
			s.remove(a)
			s.insert(a, newLayer)
		}
		if !changed {
			break
		}
	}
}
