// Package limb implements Store, a copy-on-write, small-buffer-optimized
// sequence of 32-bit unsigned limbs. It is the digit-storage substrate for
// package bigint: short magnitudes live inline with no heap allocation,
// longer ones share a backing buffer, and any write detaches (privately
// clones) that buffer first so that independent handles never observe each
// other's mutations.
package limb

import "fmt"

// Limb is one base-2^32 digit. Little-endian ordering is a convention of
// the caller (package bigint); Store itself is agnostic to digit meaning.
type Limb = uint32

// InlineCap is the number of limbs a Store holds without a heap allocation.
// Chosen to roughly match the footprint of the shared-buffer descriptor
// it replaces; any value >= 1 is valid per the small-buffer-optimization
// contract, so this is an implementation detail, not an observable.
const InlineCap = 3

// oversize is the number of spare limbs a detach or reallocation adds
// beyond the immediately-required size, giving subsequent pushes room to
// grow without reallocating every time.
const oversize = 2

// shared is the heap-backed buffer a Store switches to once it holds more
// than InlineCap limbs. refcount counts how many Store handles currently
// point at this exact buffer; it is bumped only by Clone (see Store's doc
// comment for why plain Go assignment cannot participate in that count) and is
// not required to be atomic: a Store is not safe for concurrent mutation
// from multiple goroutines, matching the value's single-threaded contract.
type shared struct {
	refcount int32
	data     []Limb // len(data) is the buffer's capacity; only data[:size] is live
}

// Store is a value-semantics sequence of limbs. The zero Store is empty
// and inline; it is always safe to copy with plain assignment for reading.
//
// Mutating methods (PushBack, PopBack, Set) take a pointer receiver and
// detach a shared buffer before writing to it if that buffer's refcount
// indicates another Store might be holding the same pointer. A Store
// obtained through Clone is guaranteed independent after such a write; a
// Store obtained through plain assignment behaves like a raw Go slice
// (shares the backing array; the refcount stays at 1, so a write through
// either handle does not detach and is visible through the other) — callers
// that need to keep reading an old handle across a mutation of a new one
// must go through Clone, exactly as they would call clone() on any other
// COW value. Package bigint never relies on the plain-assignment case: its
// mutating operators always rebuild the whole limb sequence from scratch
// rather than writing through an aliased handle.
type Store struct {
	size   uint32
	inline [InlineCap]Limb
	sh     *shared
}

// New returns an empty, inline Store.
func New() Store {
	return Store{}
}

// NewZeroed returns a Store of n limbs, all zero.
func NewZeroed(n int) Store {
	return NewFilled(n, 0)
}

// NewFilled returns a Store of n limbs, each set to v.
func NewFilled(n int, v Limb) Store {
	var s Store
	if n <= InlineCap {
		for i := 0; i < n; i++ {
			s.inline[i] = v
		}
		s.size = uint32(n)
		return s
	}
	data := make([]Limb, n)
	for i := range data {
		data[i] = v
	}
	s.sh = &shared{refcount: 1, data: data}
	s.size = uint32(n)
	return s
}

// FromSlice returns a Store holding exactly the given limbs, in order.
func FromSlice(vals []Limb) Store {
	n := len(vals)
	if n <= InlineCap {
		var s Store
		copy(s.inline[:], vals)
		s.size = uint32(n)
		return s
	}
	data := make([]Limb, n)
	copy(data, vals)
	return Store{size: uint32(n), sh: &shared{refcount: 1, data: data}}
}

// Clone returns a new handle to s's data. For an inline Store this is a
// plain value copy (the inline array is duplicated automatically). For a
// shared Store this bumps the buffer's refcount, marking it aliased so
// that a write through either handle detaches before mutating.
func (s Store) Clone() Store {
	if s.sh != nil {
		s.sh.refcount++
	}
	return s
}

// Size returns the number of valid limbs.
func (s Store) Size() int {
	return int(s.size)
}

// Get returns the limb at index i. i must be in [0, Size()).
func (s Store) Get(i int) Limb {
	s.checkIndex(i)
	if s.sh == nil {
		return s.inline[i]
	}
	return s.sh.data[i]
}

// Set writes v to index i. i must be in [0, Size()).
func (s *Store) Set(i int, v Limb) {
	s.checkIndex(i)
	if s.sh == nil {
		s.inline[i] = v
		return
	}
	s.detach()
	s.sh.data[i] = v
}

// Back returns the last limb. Panics if s is empty.
func (s Store) Back() Limb {
	if s.size == 0 {
		panic("limb: back() on empty store")
	}
	return s.Get(int(s.size) - 1)
}

// PopBack removes the last limb. Panics if s is empty.
func (s *Store) PopBack() {
	if s.size == 0 {
		panic("limb: pop_back() on empty store")
	}
	if s.sh != nil {
		s.detach()
	}
	s.size--
}

// PushBack appends v, growing and promoting inline-to-shared as needed.
func (s *Store) PushBack(v Limb) {
	if s.sh == nil {
		if int(s.size) < InlineCap {
			s.inline[s.size] = v
			s.size++
			return
		}
		cap := maxInt(InlineCap+oversize, 2*int(s.size))
		data := make([]Limb, cap)
		copy(data, s.inline[:s.size])
		data[s.size] = v
		s.sh = &shared{refcount: 1, data: data}
		s.size++
		return
	}
	s.detach()
	if int(s.size) == len(s.sh.data) {
		newCap := maxInt(int(s.size)+oversize, 2*len(s.sh.data))
		nd := make([]Limb, newCap)
		copy(nd, s.sh.data[:s.size])
		s.sh.data = nd
	}
	s.sh.data[s.size] = v
	s.size++
}

// Swap exchanges the contents of s and o.
func (s *Store) Swap(o *Store) {
	*s, *o = *o, *s
}

// detach ensures s.sh is privately owned, cloning it first if its refcount
// shows another Store handle may share the same buffer.
func (s *Store) detach() {
	if s.sh == nil || s.sh.refcount == 1 {
		return
	}
	newData := make([]Limb, int(s.size)+oversize)
	copy(newData, s.sh.data[:s.size])
	s.sh.refcount--
	s.sh = &shared{refcount: 1, data: newData}
}

func (s Store) checkIndex(i int) {
	if i < 0 || i >= int(s.size) {
		panic(fmt.Sprintf("limb: index %d out of range [0,%d)", i, s.size))
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
