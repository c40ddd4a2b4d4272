package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnexpectedEnd is returned when a read runs past the end of the data.
var ErrUnexpectedEnd = errors.New("iff: unexpected end of data")

// Reader walks an IFF container held in memory, with position tracking
// and big-endian read methods. IFF stores all lengths and type tags
// big-endian and pads chunk bodies to even offsets.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over the given data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Seek moves the position to an absolute offset.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return r.wrapError(fmt.Errorf("seek to %d outside data of %d bytes", pos, len(r.data)))
	}
	r.pos = pos
	return nil
}

// ReadU32 reads a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// ReadTag reads a four-character chunk type as a big-endian uint32, so
// tag constants can be written as ASCII literals shifted into place.
func (r *Reader) ReadTag() (uint32, error) {
	return r.ReadU32()
}

// ReadBytes reads exactly n bytes without copying.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, r.wrapError(ErrUnexpectedEnd)
	}
	buf := r.data[r.pos : r.pos+n]
	r.pos += n
	return buf, nil
}

// Skip advances past n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.pos+n > len(r.data) {
		return r.wrapError(ErrUnexpectedEnd)
	}
	r.pos += n
	return nil
}

// AlignEven skips the pad byte after an odd-length chunk body.
func (r *Reader) AlignEven() error {
	if r.pos%2 == 1 {
		return r.Skip(1)
	}
	return nil
}

// ParseError wraps an error with byte position context.
type ParseError struct {
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at byte %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (r *Reader) wrapError(err error) error {
	return &ParseError{Pos: r.pos, Err: err}
}
