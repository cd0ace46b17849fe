package keypad

// unreachable flood-fills from the first key and returns every key the
// fill never touched, in ascending order. An empty result means connected.
//
// Time:   O(K·4).
// Memory: O(K).
func (l *Layout) unreachable() []rune {
	seen := make(map[Key]bool, len(l.keys))
	queue := []Key{l.keys[0]}
	seen[l.keys[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, e := range l.adj[queue[qi]] {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	var missing []rune
	for _, k := range l.keys {
		if !seen[k] {
			missing = append(missing, rune(k))
		}
	}
	return missing
}
