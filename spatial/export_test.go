package spatial

// Height returns the number of nodes on the longest root-to-leaf path.
// Exposed for tests that check insertion-order dependent shape.
func (t *KDTree) Height() int {
	return t.height(0)
}

func (t *KDTree) height(cur int32) int {
	if cur == noChild || int(cur) >= len(t.nodes) {
		return 0
	}
	n := t.nodes[cur]

	return 1 + max(t.height(n.left), t.height(n.right))
}
