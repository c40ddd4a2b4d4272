package image

// Magic numbers for image classification, stored big-endian on disk.
const (
	// MagicRaw identifies a bare bytecode image ("Glul").
	MagicRaw uint32 = 0x476C756C

	// MagicForm is the IFF container group tag ("FORM").
	MagicForm uint32 = 0x464F524D

	// MagicResource is the archive's nested format tag at offset 8 ("IFRS").
	MagicResource uint32 = 0x49465253
)

// Chunk tags inside a resource archive.
const (
	// TagIndex is the resource index chunk ("RIdx"), required to be the
	// first chunk in the container.
	TagIndex uint32 = 0x52496478

	// TagProgram is the executable bytecode chunk type ("GLUL").
	TagProgram uint32 = 0x474C554C

	// UsageExec marks a resource-index entry as executable ("Exec").
	UsageExec uint32 = 0x45786563
)

// HeaderLen is the number of bytes classification inspects.
const HeaderLen = 12

// Kind is the classification of a program image.
type Kind int

const (
	// KindRaw is a bare bytecode image, loadable as-is.
	KindRaw Kind = iota + 1

	// KindArchive is an archive-wrapped image; the program chunk must be
	// extracted before loading.
	KindArchive
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindArchive:
		return "archive"
	}
	return "unknown"
}
