package array2d

import "fmt"

// lease tracks which borrows of a buffer are current. Every view records the
// generation it was issued under; once gen moves on, the view is stale.
//
// The holder may hand out any number of shared views within one generation.
// An exclusive claim starts a new generation, so at most one mutable view is
// live and no shared view survives it. Any access by the holder ends an
// exclusive claim, and writes by the holder end every outstanding view.
//
// The root array holds the first lease. Each mutable view holds its own lease
// for the views cropped from it, chained to the ticket it was issued under, so
// ending a borrow ends everything borrowed from it.
type lease struct {
	gen       uint64
	exclusive bool
	// holder is the borrow this lease lends from. It is zero for a root buffer.
	holder ticket
}

// ticket is the borrow a view was issued under.
type ticket struct {
	lease *lease
	gen   uint64
}

// sub returns a fresh lease for views borrowed through t.
func (t ticket) sub() *lease { return &lease{holder: t} }

func (l *lease) ownerRead() {
	if l != nil && l.exclusive {
		l.gen++
		l.exclusive = false
	}
}

func (l *lease) ownerWrite() {
	if l != nil {
		l.gen++
		l.exclusive = false
	}
}

func (l *lease) share() ticket {
	if l == nil {
		return ticket{}
	}
	l.ownerRead()
	return ticket{lease: l, gen: l.gen}
}

func (l *lease) claim() ticket {
	if l == nil {
		return ticket{}
	}
	l.gen++
	l.exclusive = true
	return ticket{lease: l, gen: l.gen}
}

// live reports whether t and every borrow it descends from are current. The
// zero ticket belongs to the zero view, which is empty and always live.
func (t ticket) live() bool {
	for t.lease != nil {
		if t.lease.gen != t.gen {
			return false
		}
		t = t.lease.holder
	}
	return true
}

func (t ticket) check() {
	if !t.live() {
		panic(fmt.Errorf("%w: borrow issued at generation %d has ended", ErrStaleView, t.gen))
	}
}
