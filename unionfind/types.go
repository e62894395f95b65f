// SPDX-License-Identifier: MIT

package unionfind

import (
	"errors"
	"fmt"

	"github.com/jlzhjp/algorithms/vector"
)

// Sentinel errors for union-find operations.
var (
	// ErrSiteOutOfRange indicates a site outside [0, Len()).
	ErrSiteOutOfRange = errors.New("unionfind: site out of range")

	// ErrInvalidSize indicates a negative number of sites.
	ErrInvalidSize = errors.New("unionfind: invalid size")
)

// UnionFind is the contract shared by QuickFind, QuickUnion and
// WeightedQuickUnion.
type UnionFind interface {
	Connect(p, q int) error
	Connected(p, q int) (bool, error)
	Find(p int) (int, error)
	Count() int
	Len() int
}

var (
	_ UnionFind = (*QuickFind)(nil)
	_ UnionFind = (*QuickUnion)(nil)
	_ UnionFind = (*WeightedQuickUnion)(nil)
)

// sites is the identity table common to every strategy: id[p] is the
// component (QuickFind) or parent (QuickUnion) of p.
type sites struct {
	id    *vector.Vector[int]
	count int
}

// newSites returns n singleton components.
func newSites(n int) (sites, error) {
	if n < 0 {
		return sites{}, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	id, err := identity(n)
	if err != nil {
		return sites{}, err
	}

	return sites{id: id, count: n}, nil
}

// identity returns [0, 1, ..., n-1].
func identity(n int) (*vector.Vector[int], error) {
	v, err := vector.New(vector.WithCapacity[int](n))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = v.PushBack(i); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (s *sites) check(p int) error {
	if p < 0 || p >= s.id.Len() {
		return fmt.Errorf("%w: site %d, %d sites", ErrSiteOutOfRange, p, s.id.Len())
	}

	return nil
}

func (s *sites) checkPair(p, q int) error {
	if err := s.check(p); err != nil {
		return err
	}

	return s.check(q)
}

// Count returns the number of components.
func (s *sites) Count() int { return s.count }

// Len returns the number of sites.
func (s *sites) Len() int { return s.id.Len() }
