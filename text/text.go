// Package text specializes the small-buffer container to UTF-8 string
// data, adding validated construction, zero-copy text views and an
// ownership-transferring conversion into a plain string.
package text

import (
	"fmt"
	"hash/maphash"
	"unicode/utf8"

	"github.com/Pavez7274/kaff-sso/buffer"
	"github.com/Pavez7274/kaff-sso/shape"
	"github.com/Pavez7274/kaff-sso/utils"
)

// Str is a UTF-8 string stored small-buffer-optimized: up to
// shape.MaxInline bytes live inside the value itself, longer content
// in an exactly-sized heap allocation.
//
// Invariant: the stored bytes form valid UTF-8 for the whole lifetime
// of the value. The validating constructors establish it by checking;
// the Unchecked constructors shift that burden to the caller. Views
// never re-validate except for Text, which exists exactly for the
// cases where provenance is uncertain (e.g. after MutBytes).
//
// Like the underlying buffer, a Str is a single-owner value: pass it
// by pointer once built.
type Str struct {
	buf buffer.Buffer[byte]
}

// FromString builds a Str from s, rejecting invalid UTF-8.
func FromString(s string) (Str, error) {
	if !utf8.ValidString(s) {
		return Str{}, encodingError(utils.S2B(s))
	}
	return FromStringUnchecked(s), nil
}

// FromStringUnchecked builds a Str from s without validating UTF-8.
// The caller guarantees validity; feeding invalid bytes here breaks
// the Str invariant for the lifetime of the value.
func FromStringUnchecked(s string) Str {
	return Str{buf: buffer.FromSlice(utils.S2B(s))}
}

// FromBytes copies b into a Str, rejecting invalid UTF-8.
func FromBytes(b []byte) (Str, error) {
	if !utf8.Valid(b) {
		return Str{}, encodingError(b)
	}
	return FromBytesUnchecked(b), nil
}

// FromBytesUnchecked copies b into a Str without validating UTF-8.
// Same caller contract as FromStringUnchecked.
func FromBytesUnchecked(b []byte) Str {
	return Str{buf: buffer.FromSlice(b)}
}

// FromOwnedBytes builds a Str taking ownership of b: sources longer
// than shape.MaxInline are adopted as the heap allocation without
// copying. Invalid UTF-8 is rejected before ownership transfers, so a
// failed call leaves b untouched. The caller must not retain b on
// success.
func FromOwnedBytes(b []byte) (Str, error) {
	if !utf8.Valid(b) {
		return Str{}, encodingError(b)
	}
	return FromOwnedBytesUnchecked(b), nil
}

// FromOwnedBytesUnchecked is FromOwnedBytes minus the validity check.
func FromOwnedBytesUnchecked(b []byte) Str {
	return Str{buf: buffer.FromOwned(b)}
}

// Len returns the length in bytes.
func (s *Str) Len() int {
	return s.buf.Len()
}

// Kind returns the active storage variant.
func (s *Str) Kind() shape.Kind {
	return s.buf.Kind()
}

// Bytes returns the stored bytes sharing the value's storage. Valid
// only until s is mutated, consumed, or copied; treat as read-only.
func (s *Str) Bytes() []byte {
	return s.buf.AsSlice()
}

// MutBytes returns the stored bytes for in-place mutation. The caller
// must keep the full range valid UTF-8, or the Str invariant is broken
// until the value is discarded; use Text afterwards when in doubt.
func (s *Str) MutBytes() []byte {
	return s.buf.AsMutSlice()
}

// UncheckedText returns the contents as a string without copying and
// without re-validating UTF-8. The string aliases the value's storage:
// it is valid only while s is neither mutated, consumed, nor copied,
// and only if the UTF-8 invariant still holds. This is the moral
// equivalent of an unsafe accessor wearing a safe signature; prefer
// Text whenever provenance of validity is uncertain.
func (s *Str) UncheckedText() string {
	return utils.B2S(s.buf.AsSlice())
}

// Text re-validates the stored bytes and returns them as an
// independent string. It fails with ErrInvalidEncoding if an unsafe
// mutation broke the UTF-8 invariant, and with ErrConsumed after an
// ownership transfer.
func (s *Str) Text() (string, error) {
	if s.Kind() == shape.KindConsumed {
		return "", ErrConsumed
	}
	b := s.buf.AsSlice()
	if !utf8.Valid(b) {
		return "", encodingError(b)
	}
	return string(b), nil
}

// IntoString consumes s and returns its contents as a string. A
// heap-backed value hands its allocation over without copying; inline
// values are copied out, since no separate allocation exists to
// repurpose. Either way s is unusable afterwards: accesses observe the
// consumed state.
func (s *Str) IntoString() (string, error) {
	b, err := s.buf.Take()
	if err != nil {
		return "", err
	}
	return utils.B2S(b), nil
}

// IntoStringZeroCopy is the strict form of IntoString: it only
// performs the allocation-repurposing transfer and fails with
// ErrUnsupportedShapeForTransfer when s is inline-backed.
func (s *Str) IntoStringZeroCopy() (string, error) {
	b, err := s.buf.TakeHeap()
	if err != nil {
		return "", err
	}
	return utils.B2S(b), nil
}

// Equal reports whether s and other have equal byte length. As with
// the generic buffer, comparison is length-only and ignores contents;
// this matches the container's original contract and is kept on
// purpose.
func (s *Str) Equal(other *Str) bool {
	return s.buf.Equal(&other.buf)
}

// Compare orders two values by byte length alone.
func (s *Str) Compare(other *Str) int {
	return s.buf.Compare(&other.buf)
}

// Hash mixes the active kind discriminant and the stored bytes.
func (s *Str) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(s.Kind()))
	h.Write(s.buf.AsSlice())
	return h.Sum64()
}

// HasPrefix reports whether the stored bytes start with prefix.
func (s *Str) HasPrefix(prefix string) bool {
	return utils.HasPrefix(s.buf.AsSlice(), prefix)
}

// HasSuffix reports whether the stored bytes end with suffix.
func (s *Str) HasSuffix(suffix string) bool {
	return utils.HasSuffix(s.buf.AsSlice(), suffix)
}

// String implements fmt.Stringer via the validating path; invalid or
// consumed values render as an error marker rather than leaking raw
// bytes.
func (s *Str) String() string {
	v, err := s.Text()
	if err != nil {
		return fmt.Sprintf("<text: %v>", err)
	}
	return v
}
