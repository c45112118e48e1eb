package goprop

import "strings"

// pathStack tracks the dotted property path during encoding. Push/pop follow
// strict stack discipline; callers pair them with defer so a failing rule can
// never leak path state into a sibling property.
type pathStack struct {
	parts []string
}

func (p *pathStack) push(seg string) { p.parts = append(p.parts, seg) }

func (p *pathStack) pop() {
	if n := len(p.parts); n > 0 {
		p.parts = p.parts[:n-1]
	}
}

func (p *pathStack) depth() int { return len(p.parts) }

func (p *pathStack) reset() { p.parts = p.parts[:0] }

// String renders the current dotted path, e.g. "parent.child.grandchild".
func (p *pathStack) String() string { return strings.Join(p.parts, ".") }
