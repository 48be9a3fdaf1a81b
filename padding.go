// Package txpad pads messages to a multiple of a block size by prepending
// random bytes and appending a run of zeros, and reverses the transform
// exactly.
//
// The padded layout for a message of pos bytes is:
//
//	[header][random prefix][message][zero tail]
//
// where the header is one byte, the random prefix is padLen bytes, and the
// zero tail is blockSize-1 bytes. padLen is the unique value in
// [2, blockSize+1] that makes the total length a multiple of blockSize;
// it is stored in the low log2(blockSize) bits of the header, so the padded
// bytes alone are enough to recover the message. The high header bits are a
// fixed marker (the complement of blockSize-1), which distinguishes the
// output from plain random padding.
//
// Because the pad length depends on the full message length, the scheme
// cannot pad one block at a time: PadBlock always fails and Pad must be
// given the whole message up front.
//
// The transform never allocates or retains buffers. Concurrent calls are
// safe as long as they operate on disjoint buffers.
package txpad

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors. Both are deliberately payload-free: every pad failure
// collapses to ErrPad and every unpad failure to ErrUnpad, so callers
// cannot learn anything about malformed input from the error value.
var (
	// ErrPad is returned when the requested block size does not match the
	// scheme, the buffer is too small for the padded length, or the random
	// source fails to supply bytes.
	ErrPad = errors.New("txpad: cannot pad")

	// ErrUnpad is returned when the input is empty, too short for the
	// decoded pad length, or has non-zero bytes in the trailing zero run.
	ErrUnpad = errors.New("txpad: cannot unpad")
)

// Padding is the block padding contract shared by padding schemes.
type Padding interface {
	// Pad pads the pos message bytes at the start of buf in place and
	// returns the padded sub-slice of buf.
	Pad(buf []byte, pos, blockSize int) ([]byte, error)

	// PadBlock pads a single block in place at position pos.
	PadBlock(block []byte, pos int) error

	// Unpad returns the message sub-slice of a padded input.
	Unpad(data []byte) ([]byte, error)

	// BlockSize returns the block size the scheme is fixed to.
	BlockSize() int
}

// Scheme implements the random-prefix / zero-tail padding for one fixed
// block size. The zero value is not usable; construct with New or
// NewWithRandom.
type Scheme struct {
	blockSize int
	random    io.Reader
}

var _ Padding = (*Scheme)(nil)

// New returns a Scheme fixed to blockSize, drawing the random prefix from
// crypto/rand. blockSize must be a power of two, greater than 1 and at
// most 256.
func New(blockSize int) (*Scheme, error) {
	return NewWithRandom(blockSize, rand.Reader)
}

// NewWithRandom is New with an explicit random source. The source must
// produce bytes unpredictable to an adversary for the padding to hide
// leading patterns; a deterministic source (see NewDeterministicReader)
// is only appropriate for tests and debugging.
func NewWithRandom(blockSize int, random io.Reader) (*Scheme, error) {
	if blockSize < 2 || blockSize > 256 || blockSize&(blockSize-1) != 0 {
		return nil, fmt.Errorf("txpad: block size must be a power of two in [2, 256], got %d", blockSize)
	}
	if random == nil {
		return nil, errors.New("txpad: nil random source")
	}
	return &Scheme{blockSize: blockSize, random: random}, nil
}

// BlockSize returns the fixed block size.
func (s *Scheme) BlockSize() int {
	return s.blockSize
}

// PaddedSize returns the buffer length Pad requires for a message of pos
// bytes: the smallest multiple of the block size that fits the header,
// the random prefix, the message and the zero tail.
func (s *Scheme) PaddedSize(pos int) int {
	return s.blockSize * ((pos+1)/s.blockSize + 2)
}

// Pad pads the pos message bytes at the start of buf in place and returns
// the padded sub-slice buf[:PaddedSize(pos)]. Bytes of buf beyond that
// length are left untouched.
//
// blockSize must equal the scheme's fixed block size; this mirrors the
// shared Padding contract, which passes the block size per call.
//
// Validation failures (block size mismatch, undersized buffer) occur
// before any mutation. A random-source failure occurs after the message
// has already been shifted toward the back of buf, so on that path the
// caller sees a partially mutated buffer.
func (s *Scheme) Pad(buf []byte, pos, blockSize int) ([]byte, error) {
	if blockSize != s.blockSize || pos < 0 {
		return nil, ErrPad
	}
	total := s.PaddedSize(pos)
	if len(buf) < total {
		return nil, ErrPad
	}

	// Unique value in [2, blockSize+1] such that 1+padLen+pos+(blockSize-1)
	// is a multiple of blockSize.
	padLen := (blockSize-(pos+2)%blockSize)%blockSize + 2

	// copy has memmove semantics, so the overlapping shift is safe.
	copy(buf[1+padLen:1+padLen+pos], buf[:pos])

	if _, err := io.ReadFull(s.random, buf[1:1+padLen]); err != nil {
		return nil, ErrPad
	}

	// Low bits carry padLen-2, high bits the fixed marker.
	buf[0] = ^byte(blockSize-1) | byte(padLen-2)

	clear(buf[total-(blockSize-1) : total])
	return buf[:total], nil
}

// PadBlock always returns ErrPad. The scheme needs the whole message
// length to choose the pad length, so it cannot be expressed as an
// in-place single-block operation; it exists only to satisfy the Padding
// contract. Use Pad.
func (s *Scheme) PadBlock(block []byte, pos int) error {
	return ErrPad
}

// Unpad returns the message as a sub-slice of data, without copying.
//
// Only the low bits of the header byte are consulted; the fixed marker in
// the high bits is NOT verified. Inputs that were never produced by Pad
// can therefore unpad successfully if they pass the length and zero-tail
// checks. This leniency is part of the documented behavior; do not
// tighten it without coordinating with callers.
func (s *Scheme) Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrUnpad
	}
	padZero := s.blockSize - 1
	padLen := int(data[0]&byte(padZero)) + 2
	if len(data) < padLen+s.blockSize {
		return nil, ErrUnpad
	}
	for _, v := range data[len(data)-padZero:] {
		if v != 0 {
			return nil, ErrUnpad
		}
	}
	return data[1+padLen : len(data)-padZero], nil
}
