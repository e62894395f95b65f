// SPDX-License-Identifier: MIT

package unionfind

// QuickFind keeps the component identifier of every site, so Find is a
// lookup and Connect relabels a whole component.
type QuickFind struct {
	sites
}

// NewQuickFind returns n sites, each in its own component.
func NewQuickFind(n int) (*QuickFind, error) {
	s, err := newSites(n)
	if err != nil {
		return nil, err
	}

	return &QuickFind{sites: s}, nil
}

// Find returns the component identifier of p.
func (u *QuickFind) Find(p int) (int, error) {
	if err := u.check(p); err != nil {
		return 0, err
	}

	return u.id.Get(p), nil
}

// Connected reports whether p and q share a component.
func (u *QuickFind) Connected(p, q int) (bool, error) {
	if err := u.checkPair(p, q); err != nil {
		return false, err
	}

	return u.id.Get(p) == u.id.Get(q), nil
}

// Connect relabels the component of p with the identifier of q's. O(n).
func (u *QuickFind) Connect(p, q int) error {
	if err := u.checkPair(p, q); err != nil {
		return err
	}
	from, to := u.id.Get(p), u.id.Get(q)
	if from == to {
		return nil
	}
	for i, c := range u.id.All() {
		if c == from {
			u.id.Set(i, to)
		}
	}
	u.count--

	return nil
}
