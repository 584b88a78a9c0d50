package array2d

// reader is backing storage that can be read and shared with read-only views.
type reader[T any] interface {
	items() []T
	share() ([]T, ticket)
}

// writer is backing storage that can also be written and lent exclusively.
type writer[T any] interface {
	reader[T]
	mutItems() []T
	claim() ([]T, ticket)
}

// owned is the root buffer of an Array2D.
type owned[T any] struct {
	buf   []T
	lease *lease
}

func (o owned[T]) items() []T {
	o.lease.ownerRead()
	return o.buf
}

func (o owned[T]) mutItems() []T {
	o.lease.ownerWrite()
	return o.buf
}

func (o owned[T]) share() ([]T, ticket) { return o.buf, o.lease.share() }

func (o owned[T]) claim() ([]T, ticket) { return o.buf, o.lease.claim() }

// shared is a read-only borrow of part of a root buffer.
type shared[T any] struct {
	buf []T
	ticket
}

func (s shared[T]) items() []T {
	s.check()
	return s.buf
}

func (s shared[T]) share() ([]T, ticket) {
	s.check()
	return s.buf, s.ticket
}

// exclusive is a mutable borrow of part of a root buffer. Views cropped from
// it borrow through sub: reading through e ends a mutable child, writing
// through e ends every child, and a new claim ends the previous children.
type exclusive[T any] struct {
	buf []T
	ticket
	sub *lease
}

func (e exclusive[T]) items() []T {
	e.check()
	e.sub.ownerRead()
	return e.buf
}

func (e exclusive[T]) mutItems() []T {
	e.check()
	e.sub.ownerWrite()
	return e.buf
}

func (e exclusive[T]) share() ([]T, ticket) {
	e.check()
	return e.buf, e.sub.share()
}

func (e exclusive[T]) claim() ([]T, ticket) {
	e.check()
	return e.buf, e.sub.claim()
}
