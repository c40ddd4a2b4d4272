package image

import (
	"github.com/wippyai/glulx-runtime/errors"
	"github.com/wippyai/glulx-runtime/image/internal/binary"
)

// ExtractProgram walks an archive-wrapped image and returns the
// executable bytecode chunk's payload. The returned slice aliases data.
//
// The container's first chunk must be the resource index; the program is
// the executable resource numbered zero, and the chunk it points at must
// carry the program tag.
func ExtractProgram(data []byte) ([]byte, error) {
	r := binary.NewReader(data)

	tag, err := r.ReadTag()
	if err != nil || tag != MagicForm {
		return nil, errors.InvalidData(errors.PhaseExtract, []string{"FORM"}, "not an IFF container")
	}
	formLen, err := r.ReadU32()
	if err != nil {
		return nil, wrapExtract(err, "container length")
	}
	if int(formLen) < 4 || 8+int(formLen) > len(data) {
		return nil, errors.New(errors.PhaseExtract, errors.KindTruncated).
			Path("FORM").
			Detail("container claims %d bytes, file holds %d", formLen, len(data)-8).
			Build()
	}
	tag, err = r.ReadTag()
	if err != nil || tag != MagicResource {
		return nil, errors.InvalidData(errors.PhaseExtract, []string{"FORM"}, "container is not a resource archive")
	}

	start, err := findExecResource(r)
	if err != nil {
		return nil, err
	}

	if err := r.Seek(int(start)); err != nil {
		return nil, errors.OutOfBounds(errors.PhaseExtract, []string{"RIdx", "Exec"}, int(start), len(data))
	}
	tag, err = r.ReadTag()
	if err != nil {
		return nil, wrapExtract(err, "program chunk header")
	}
	if tag != TagProgram {
		return nil, errors.New(errors.PhaseExtract, errors.KindInvalidData).
			Path("Exec").
			Detail("executable resource is not a program chunk: tag %#08x", tag).
			Build()
	}
	size, err := r.ReadU32()
	if err != nil {
		return nil, wrapExtract(err, "program chunk header")
	}
	payload, err := r.ReadBytes(int(size))
	if err != nil {
		return nil, errors.New(errors.PhaseExtract, errors.KindTruncated).
			Path("GLUL").
			Detail("program chunk claims %d bytes", size).
			Build()
	}
	return payload, nil
}

// findExecResource parses the resource index chunk, which must come
// first, and returns the container offset of executable resource zero.
func findExecResource(r *binary.Reader) (uint32, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return 0, wrapExtract(err, "resource index")
	}
	if tag != TagIndex {
		return 0, errors.InvalidData(errors.PhaseExtract, []string{"RIdx"}, "first chunk is not the resource index")
	}
	size, err := r.ReadU32()
	if err != nil {
		return 0, wrapExtract(err, "resource index")
	}
	count, err := r.ReadU32()
	if err != nil {
		return 0, wrapExtract(err, "resource index")
	}
	if uint64(size) != 4+uint64(count)*12 {
		return 0, errors.InvalidData(errors.PhaseExtract, []string{"RIdx"},
			"index size does not match entry count")
	}

	for i := uint32(0); i < count; i++ {
		usage, err := r.ReadU32()
		if err != nil {
			return 0, wrapExtract(err, "resource index entry")
		}
		number, err := r.ReadU32()
		if err != nil {
			return 0, wrapExtract(err, "resource index entry")
		}
		start, err := r.ReadU32()
		if err != nil {
			return 0, wrapExtract(err, "resource index entry")
		}
		if usage == UsageExec && number == 0 {
			return start, nil
		}
	}
	return 0, errors.NotFound(errors.PhaseExtract, "resource", "Exec 0")
}

// Program classifies an image and returns its bytecode: the input itself
// for a raw image, the extracted program chunk for an archive.
func Program(data []byte) ([]byte, Kind, error) {
	kind, err := Classify(head12(data))
	if err != nil {
		return nil, 0, err
	}
	if kind == KindRaw {
		return data, kind, nil
	}
	prog, err := ExtractProgram(data)
	if err != nil {
		return nil, 0, err
	}
	return prog, kind, nil
}

func head12(data []byte) []byte {
	if len(data) < HeaderLen {
		return data
	}
	return data[:HeaderLen]
}

func wrapExtract(err error, what string) error {
	return errors.Wrap(errors.PhaseExtract, errors.KindTruncated, err, what)
}
