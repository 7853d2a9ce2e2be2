package voronoi

// arcID addresses an arc in the beachline arena.
type arcID int32

const nilArc arcID = -1

// arc is a beachline section. Tree and list links are arena indices, so
// removing an arc only unlinks it; the slot stays allocated until the sweep
// ends.
type arc struct {
	site int
	// edge is the edge traced by the breakpoint on the left of this arc.
	edge int
	// event is the pending circle event squeezing this arc.
	event *event
	// gen changes every time the arc loses its pending circle event.
	gen   uint32
	alive bool

	left, right, parent arcID
	prev, next          arcID
	red                 bool
}

// rbt keeps the arcs ordered left to right. It is a red-black tree whose
// nodes also carry in-order prev/next links.
type rbt struct {
	arcs []arc
	root arcID
}

func (t *rbt) at(id arcID) *arc {
	return &t.arcs[id]
}

func (t *rbt) isRed(id arcID) bool {
	return id != nilArc && t.arcs[id].red
}

func (t *rbt) newArc(site int) arcID {
	t.arcs = append(t.arcs, arc{
		site:   site,
		edge:   noEdge,
		alive:  true,
		left:   nilArc,
		right:  nilArc,
		parent: nilArc,
		prev:   nilArc,
		next:   nilArc,
	})
	return arcID(len(t.arcs) - 1)
}

// insertSuccessor links successor right after node, or as the leftmost arc
// when node is nilArc.
func (t *rbt) insertSuccessor(node, successor arcID) {
	s := t.at(successor)
	var parent arcID
	if node != nilArc {
		n := t.at(node)
		s.prev = node
		s.next = n.next
		if n.next != nilArc {
			t.at(n.next).prev = successor
		}
		n.next = successor
		if n.right != nilArc {
			node = t.first(n.right)
			t.at(node).left = successor
		} else {
			n.right = successor
		}
		parent = node
	} else if t.root != nilArc {
		node = t.first(t.root)
		s.prev = nilArc
		s.next = node
		t.at(node).prev = successor
		t.at(node).left = successor
		parent = node
	} else {
		s.prev = nilArc
		s.next = nilArc
		t.root = successor
		parent = nilArc
	}
	s.left = nilArc
	s.right = nilArc
	s.parent = parent
	s.red = true

	node = successor
	for parent != nilArc && t.at(parent).red {
		grandpa := t.at(parent).parent
		if parent == t.at(grandpa).left {
			uncle := t.at(grandpa).right
			if t.isRed(uncle) {
				t.at(parent).red = false
				t.at(uncle).red = false
				t.at(grandpa).red = true
				node = grandpa
			} else {
				if node == t.at(parent).right {
					t.rotateLeft(parent)
					node = parent
					parent = t.at(node).parent
				}
				t.at(parent).red = false
				t.at(grandpa).red = true
				t.rotateRight(grandpa)
			}
		} else {
			uncle := t.at(grandpa).left
			if t.isRed(uncle) {
				t.at(parent).red = false
				t.at(uncle).red = false
				t.at(grandpa).red = true
				node = grandpa
			} else {
				if node == t.at(parent).left {
					t.rotateRight(parent)
					node = parent
					parent = t.at(node).parent
				}
				t.at(parent).red = false
				t.at(grandpa).red = true
				t.rotateLeft(grandpa)
			}
		}
		parent = t.at(node).parent
	}
	t.at(t.root).red = false
}

func (t *rbt) removeNode(node arcID) {
	n := t.at(node)
	if n.next != nilArc {
		t.at(n.next).prev = n.prev
	}
	if n.prev != nilArc {
		t.at(n.prev).next = n.next
	}
	n.next = nilArc
	n.prev = nilArc

	parent := n.parent
	left := n.left
	right := n.right
	var next arcID
	switch {
	case left == nilArc:
		next = right
	case right == nilArc:
		next = left
	default:
		next = t.first(right)
	}
	if parent != nilArc {
		if t.at(parent).left == node {
			t.at(parent).left = next
		} else {
			t.at(parent).right = next
		}
	} else {
		t.root = next
	}

	var isRed bool
	if left != nilArc && right != nilArc {
		nx := t.at(next)
		isRed = nx.red
		nx.red = n.red
		nx.left = left
		t.at(left).parent = next
		if next != right {
			parent = nx.parent
			nx.parent = n.parent
			node = nx.right
			t.at(parent).left = node
			nx.right = right
			t.at(right).parent = next
		} else {
			nx.parent = parent
			parent = next
			node = nx.right
		}
	} else {
		isRed = n.red
		node = next
	}
	n.left, n.right, n.parent = nilArc, nilArc, nilArc

	if node != nilArc {
		t.at(node).parent = parent
	}
	if isRed {
		return
	}
	if t.isRed(node) {
		t.at(node).red = false
		return
	}

	var sibling arcID
	for node != t.root {
		if node == t.at(parent).left {
			sibling = t.at(parent).right
			if t.isRed(sibling) {
				t.at(sibling).red = false
				t.at(parent).red = true
				t.rotateLeft(parent)
				sibling = t.at(parent).right
			}
			if t.isRed(t.at(sibling).left) || t.isRed(t.at(sibling).right) {
				if !t.isRed(t.at(sibling).right) {
					t.at(t.at(sibling).left).red = false
					t.at(sibling).red = true
					t.rotateRight(sibling)
					sibling = t.at(parent).right
				}
				t.at(sibling).red = t.at(parent).red
				t.at(parent).red = false
				t.at(t.at(sibling).right).red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = t.at(parent).left
			if t.isRed(sibling) {
				t.at(sibling).red = false
				t.at(parent).red = true
				t.rotateRight(parent)
				sibling = t.at(parent).left
			}
			if t.isRed(t.at(sibling).left) || t.isRed(t.at(sibling).right) {
				if !t.isRed(t.at(sibling).left) {
					t.at(t.at(sibling).right).red = false
					t.at(sibling).red = true
					t.rotateLeft(sibling)
					sibling = t.at(parent).left
				}
				t.at(sibling).red = t.at(parent).red
				t.at(parent).red = false
				t.at(t.at(sibling).left).red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		t.at(sibling).red = true
		node = parent
		parent = t.at(parent).parent
		if t.at(node).red {
			break
		}
	}
	if node != nilArc {
		t.at(node).red = false
	}
}

func (t *rbt) rotateLeft(node arcID) {
	p := t.at(node)
	q := p.right
	parent := p.parent
	if parent != nilArc {
		if t.at(parent).left == node {
			t.at(parent).left = q
		} else {
			t.at(parent).right = q
		}
	} else {
		t.root = q
	}
	qa := t.at(q)
	qa.parent = parent
	p.parent = q
	p.right = qa.left
	if p.right != nilArc {
		t.at(p.right).parent = node
	}
	qa.left = node
}

func (t *rbt) rotateRight(node arcID) {
	p := t.at(node)
	q := p.left
	parent := p.parent
	if parent != nilArc {
		if t.at(parent).left == node {
			t.at(parent).left = q
		} else {
			t.at(parent).right = q
		}
	} else {
		t.root = q
	}
	qa := t.at(q)
	qa.parent = parent
	p.parent = q
	p.left = qa.right
	if p.left != nilArc {
		t.at(p.left).parent = node
	}
	qa.right = node
}

func (t *rbt) first(node arcID) arcID {
	for t.at(node).left != nilArc {
		node = t.at(node).left
	}
	return node
}
