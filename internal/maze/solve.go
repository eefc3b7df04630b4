package maze

// Solve returns the shortest path from start to end, both included,
// following open walls. It returns nil when end is unreachable.
func Solve(g *Grid, start, end Position) []Position {
	if g == nil || !g.InBounds(start) || !g.InBounds(end) {
		return nil
	}

	prev := make(map[Position]Position, g.cols*g.rows)
	prev[start] = start
	queue := []Position{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			break
		}

		for _, d := range Directions {
			if !CanMove(g, curr, d) {
				continue
			}
			n := curr.Step(d)
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = curr
			queue = append(queue, n)
		}
	}

	if _, ok := prev[end]; !ok {
		return nil
	}

	var path []Position
	for p := end; p != start; p = prev[p] {
		path = append(path, p)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Reachable returns the number of cells reachable from start.
func Reachable(g *Grid, start Position) int {
	if g == nil || !g.InBounds(start) {
		return 0
	}
	seen := map[Position]bool{start: true}
	queue := []Position{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if !CanMove(g, curr, d) {
				continue
			}
			n := curr.Step(d)
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}
