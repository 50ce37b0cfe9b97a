package internal

// ReconstructPath walks cameFrom back from current to start and returns the
// path in start-to-current order. steps is the known distance and sizes the
// result up front; the path is filled from the back so no reversal is needed.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
	steps int,
) []NodeType {
	if steps < 0 {
		steps = 0
	}
	path := make([]NodeType, steps+1)
	index := steps
	path[index] = current
	for current != start && index > 0 {
		previousNode, exists := cameFrom[current]
		if !exists {
			break
		}
		index--
		path[index] = previousNode
		current = previousNode
	}

	return path[index:]
}
