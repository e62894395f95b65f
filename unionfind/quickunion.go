// SPDX-License-Identifier: MIT

package unionfind

// QuickUnion keeps a parent link per site; a component is the tree under
// its root.
type QuickUnion struct {
	sites
}

// NewQuickUnion returns n sites, each its own root.
func NewQuickUnion(n int) (*QuickUnion, error) {
	s, err := newSites(n)
	if err != nil {
		return nil, err
	}

	return &QuickUnion{sites: s}, nil
}

func (u *QuickUnion) root(p int) int {
	for p != u.id.Get(p) {
		p = u.id.Get(p)
	}

	return p
}

// Find returns the root of p's tree.
func (u *QuickUnion) Find(p int) (int, error) {
	if err := u.check(p); err != nil {
		return 0, err
	}

	return u.root(p), nil
}

// Connected reports whether p and q share a root.
func (u *QuickUnion) Connected(p, q int) (bool, error) {
	if err := u.checkPair(p, q); err != nil {
		return false, err
	}

	return u.root(p) == u.root(q), nil
}

// Connect links the root of p under the root of q.
func (u *QuickUnion) Connect(p, q int) error {
	if err := u.checkPair(p, q); err != nil {
		return err
	}
	rp, rq := u.root(p), u.root(q)
	if rp == rq {
		return nil
	}
	u.id.Set(rp, rq)
	u.count--

	return nil
}
