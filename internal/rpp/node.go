package rpp

// Node is one element of a parsed project: a tagged block with ordered
// children, or a leaf attribute line. Children preserve source order; that
// order carries meaning (effect chains process top to bottom) and is required
// for faithful write-back.
type Node struct {
	Tag      string
	Attrib   []string
	Children []*Node
	Block    bool

	// raw holds the original line text without indentation. Cleared when the
	// line is modified; the writer regenerates cleared lines from Tag/Attrib.
	raw string
	// quoted marks attributes that appeared quoted in the source, so
	// regenerated lines keep their quoting and extraction heuristics can
	// distinguish quoted overrides from bare tokens.
	quoted []bool
}

// NewBlock returns a block node with the given tag and attributes.
func NewBlock(tag string, attrib ...string) *Node {
	return &Node{Tag: tag, Attrib: attrib, Block: true}
}

// NewLeaf returns a leaf attribute line with the given tag and attributes.
func NewLeaf(tag string, attrib ...string) *Node {
	return &Node{Tag: tag, Attrib: attrib}
}

// Attr returns the attribute at index i, or "" when out of range.
func (n *Node) Attr(i int) string {
	if n == nil || i < 0 || i >= len(n.Attrib) {
		return ""
	}
	return n.Attrib[i]
}

// AttrCount returns the number of attributes.
func (n *Node) AttrCount() int {
	if n == nil {
		return 0
	}
	return len(n.Attrib)
}

// AttrQuoted reports whether the attribute at index i was quoted in the
// source text.
func (n *Node) AttrQuoted(i int) bool {
	if n == nil || i < 0 || i >= len(n.quoted) {
		return false
	}
	return n.quoted[i]
}

// SetAttr replaces the attribute at index i and invalidates the cached line
// text. Indices beyond the current attribute list are ignored.
func (n *Node) SetAttr(i int, value string) {
	if n == nil || i < 0 || i >= len(n.Attrib) {
		return
	}
	n.Attrib[i] = value
	if i < len(n.quoted) {
		n.quoted[i] = false
	}
	n.raw = ""
}

// Retag renames the node and invalidates the cached line text. Used when a
// cloned subtree changes kind, e.g. FXCHAIN becoming MASTERFXLIST.
func (n *Node) Retag(tag string) {
	if n == nil {
		return
	}
	n.Tag = tag
	n.raw = ""
}

// FindChild returns the first direct child with the given tag, or nil.
func (n *Node) FindChild(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// FindAllChildren returns all direct children with the given tag, in order.
func (n *Node) FindAllChildren(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.Children {
		if child.Tag == tag {
			out = append(out, child)
		}
	}
	return out
}

// FindDescendant returns the first node with the given tag in depth-first
// document order, excluding n itself.
func (n *Node) FindDescendant(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Tag == tag {
			return child
		}
		if found := child.FindDescendant(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAllDescendants returns every node with the given tag in depth-first
// document order, excluding n itself.
func (n *Node) FindAllDescendants(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.Children {
		if child.Tag == tag {
			out = append(out, child)
		}
		out = append(out, child.FindAllDescendants(tag)...)
	}
	return out
}

// AppendChild adds a node at the end of the child list.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// InsertChildAfter inserts child directly after the first direct child with
// the given tag. When no such child exists, child is appended at the end.
func (n *Node) InsertChildAfter(tag string, child *Node) {
	for i, existing := range n.Children {
		if existing.Tag == tag {
			n.Children = append(n.Children, nil)
			copy(n.Children[i+2:], n.Children[i+1:])
			n.Children[i+1] = child
			return
		}
	}
	n.Children = append(n.Children, child)
}

// ReplaceChild swaps old for replacement in place, preserving position.
// Reports whether old was found.
func (n *Node) ReplaceChild(old, replacement *Node) bool {
	for i, child := range n.Children {
		if child == old {
			n.Children[i] = replacement
			return true
		}
	}
	return false
}

// RemoveChildren deletes every direct child whose tag is in tags, preserving
// the order of the remainder. Returns the number removed.
func (n *Node) RemoveChildren(tags ...string) int {
	if n == nil || len(n.Children) == 0 {
		return 0
	}
	drop := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		drop[tag] = struct{}{}
	}
	kept := n.Children[:0]
	removed := 0
	for _, child := range n.Children {
		if _, ok := drop[child.Tag]; ok {
			removed++
			continue
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < len(n.Children); i++ {
		n.Children[i] = nil
	}
	n.Children = kept
	return removed
}

// Clone returns a deep copy sharing no state with the original. Raw line
// text is carried over so an untouched clone still serializes byte-exact.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{
		Tag:   n.Tag,
		Block: n.Block,
		raw:   n.raw,
	}
	if len(n.Attrib) > 0 {
		cp.Attrib = make([]string, len(n.Attrib))
		copy(cp.Attrib, n.Attrib)
	}
	if len(n.quoted) > 0 {
		cp.quoted = make([]bool, len(n.quoted))
		copy(cp.quoted, n.quoted)
	}
	if len(n.Children) > 0 {
		cp.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			cp.Children[i] = child.Clone()
		}
	}
	return cp
}

// Equal reports deep structural equality of two trees: tags, attributes,
// block-ness, and children. Cached line text is ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Block != b.Block || len(a.Attrib) != len(b.Attrib) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrib {
		if a.Attrib[i] != b.Attrib[i] {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
