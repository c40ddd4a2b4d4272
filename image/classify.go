package image

import (
	stdbinary "encoding/binary"
	"io"

	"github.com/wippyai/glulx-runtime/errors"
)

// Classify inspects the first 12 bytes of an image and routes it to raw
// or archive loading. An unrecognized byte pattern is an error, never a
// silent default: misclassifying a program image would fail much later
// and much less clearly.
func Classify(head []byte) (Kind, error) {
	if len(head) < HeaderLen {
		return 0, errors.Truncated(errors.PhaseClassify, "image header", len(head), HeaderLen)
	}

	switch stdbinary.BigEndian.Uint32(head[0:4]) {
	case MagicRaw:
		return KindRaw, nil
	case MagicForm:
		if stdbinary.BigEndian.Uint32(head[8:12]) == MagicResource {
			return KindArchive, nil
		}
	}
	return 0, errors.BadMagic(head[:HeaderLen])
}

// Sniff classifies an image from a reader, returning the kind and the
// header bytes consumed so the caller can stitch the stream back
// together.
func Sniff(r io.Reader) (Kind, []byte, error) {
	head := make([]byte, HeaderLen)
	n, err := io.ReadFull(r, head)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, head[:n], errors.Truncated(errors.PhaseClassify, "image header", n, HeaderLen)
		}
		return 0, head[:n], errors.Wrap(errors.PhaseClassify, errors.KindIO, err, "read image header")
	}

	kind, err := Classify(head)
	return kind, head, err
}
