package gridcomplex

// ConnectedComponents returns the islands of land cells as lists of row-major
// indices. Components are ordered by their first cell in row-major scan order;
// cells inside a component appear in BFS order.
//
// Complexity: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
func (gc *GridComplex) ConnectedComponents() [][]int {
	visited := make([]bool, gc.Width*gc.Height)
	var comps [][]int

	for y := 0; y < gc.Height; y++ {
		for x := 0; x < gc.Width; x++ {
			start := gc.index(x, y)
			if visited[start] || !gc.IsLand(x, y) {
				continue
			}
			visited[start] = true
			queue := []int{start}
			var comp []int
			for len(queue) > 0 {
				u := queue[0]
				queue = queue[1:]
				comp = append(comp, u)
				ux, uy := gc.Coordinate(u)
				for _, d := range gc.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gc.IsLand(vx, vy) {
						continue
					}
					v := gc.index(vx, vy)
					if visited[v] {
						continue
					}
					visited[v] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
