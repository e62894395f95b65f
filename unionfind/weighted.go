// SPDX-License-Identifier: MIT

package unionfind

import "github.com/jlzhjp/algorithms/vector"

// WeightedQuickUnion links the smaller tree under the larger one and halves
// paths while searching for a root, which keeps trees nearly flat.
//
// When both trees have the same size the root of p goes under the root of
// q, so Connect(p, q) still merges p's component into q's.
type WeightedQuickUnion struct {
	sites
	size *vector.Vector[int]
}

// NewWeightedQuickUnion returns n sites, each a tree of size 1.
func NewWeightedQuickUnion(n int) (*WeightedQuickUnion, error) {
	s, err := newSites(n)
	if err != nil {
		return nil, err
	}
	size, err := vector.New(vector.WithCapacity[int](n))
	if err != nil {
		return nil, err
	}
	if err = size.AssignN(n, 1); err != nil {
		return nil, err
	}

	return &WeightedQuickUnion{sites: s, size: size}, nil
}

// root returns p's root, pointing every other visited site at its
// grandparent.
func (u *WeightedQuickUnion) root(p int) int {
	for p != u.id.Get(p) {
		grand := u.id.Get(u.id.Get(p))
		u.id.Set(p, grand)
		p = grand
	}

	return p
}

// Find returns the root of p's tree.
func (u *WeightedQuickUnion) Find(p int) (int, error) {
	if err := u.check(p); err != nil {
		return 0, err
	}

	return u.root(p), nil
}

// Connected reports whether p and q share a root.
func (u *WeightedQuickUnion) Connected(p, q int) (bool, error) {
	if err := u.checkPair(p, q); err != nil {
		return false, err
	}

	return u.root(p) == u.root(q), nil
}

// Connect merges the trees of p and q, smaller under larger.
func (u *WeightedQuickUnion) Connect(p, q int) error {
	if err := u.checkPair(p, q); err != nil {
		return err
	}
	rp, rq := u.root(p), u.root(q)
	if rp == rq {
		return nil
	}
	if u.size.Get(rp) > u.size.Get(rq) {
		rp, rq = rq, rp
	}
	u.id.Set(rp, rq)
	u.size.Set(rq, u.size.Get(rq)+u.size.Get(rp))
	u.count--

	return nil
}

// Size returns the number of sites in p's component.
func (u *WeightedQuickUnion) Size(p int) (int, error) {
	if err := u.check(p); err != nil {
		return 0, err
	}

	return u.size.Get(u.root(p)), nil
}
