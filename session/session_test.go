package session

import (
	"bytes"
	stdbinary "encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/glulx-runtime/image"
	"github.com/wippyai/glulx-runtime/rng"
)

func writeRawImage(t *testing.T, payload []byte) string {
	t.Helper()
	data := append([]byte("Glul\x00\x03\x01\x01"), payload...)
	if len(data) < image.HeaderLen {
		data = append(data, make([]byte, image.HeaderLen-len(data))...)
	}
	path := filepath.Join(t.TempDir(), "game.ulx")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeArchiveImage(t *testing.T, program []byte) string {
	t.Helper()

	var body bytes.Buffer
	be := func(v uint32) {
		var buf [4]byte
		stdbinary.BigEndian.PutUint32(buf[:], v)
		body.Write(buf[:])
	}
	be(image.MagicResource)
	be(image.TagIndex)
	be(4 + 12)
	be(1)
	be(image.UsageExec)
	be(0)
	be(uint32(12 + 8 + 16))
	be(image.TagProgram)
	be(uint32(len(program)))
	body.Write(program)
	if len(program)%2 == 1 {
		body.WriteByte(0)
	}

	var out bytes.Buffer
	be2 := func(v uint32) {
		var buf [4]byte
		stdbinary.BigEndian.PutUint32(buf[:], v)
		out.Write(buf[:])
	}
	be2(image.MagicForm)
	be2(uint32(body.Len()))
	out.Write(body.Bytes())

	path := filepath.Join(t.TempDir(), "game.gblorb")
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStart_RawImage(t *testing.T) {
	path := writeRawImage(t, []byte("bytecode body"))

	sess, err := Start(Config{ImagePath: path})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sess.Kind() != image.KindRaw {
		t.Errorf("Kind = %v, want raw", sess.Kind())
	}
	if !bytes.HasPrefix(sess.Program(), []byte("Glul")) {
		t.Error("raw program should be the file contents")
	}
}

func TestStart_ArchiveImage(t *testing.T) {
	program := append([]byte("Glul\x00\x03\x01\x01"), []byte("wrapped body")...)
	path := writeArchiveImage(t, program)

	sess, err := Start(Config{ImagePath: path})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sess.Kind() != image.KindArchive {
		t.Errorf("Kind = %v, want archive", sess.Kind())
	}
	if !bytes.Equal(sess.Program(), program) {
		t.Error("archive program should be the extracted chunk")
	}
}

func TestStart_UnrecognizedImageFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.bin")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0x42}, 64), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Start(Config{ImagePath: path}); err == nil {
		t.Fatal("unclassifiable image must be a fatal startup error")
	}
}

func TestStart_MissingPath(t *testing.T) {
	if _, err := Start(Config{}); err == nil {
		t.Fatal("empty image path should fail")
	}
	if _, err := Start(Config{ImagePath: filepath.Join(t.TempDir(), "absent")}); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestSession_RandomBoundary(t *testing.T) {
	sess, err := Start(Config{ImagePath: writeRawImage(t, nil)})
	if err != nil {
		t.Fatal(err)
	}

	sess.SetRandomSeed(42)
	ref := rng.New()
	ref.Seed(42)
	for i := 0; i < 64; i++ {
		if got, want := sess.GetRandom(), ref.Uint32(); got != want {
			t.Fatalf("draw %d = %#x, want %#x", i, got, want)
		}
	}

	sess.SetRandomSeed(0)
	if !sess.RNG().Native() {
		t.Error("seed 0 should put the session in native mode")
	}
}

func TestSession_ConfiguredSeed(t *testing.T) {
	sess, err := Start(Config{ImagePath: writeRawImage(t, nil), Seed: 7})
	if err != nil {
		t.Fatal(err)
	}

	ref := rng.New()
	ref.Seed(7)
	if got, want := sess.GetRandom(), ref.Uint32(); got != want {
		t.Errorf("configured seed not applied: %#x vs %#x", got, want)
	}
}

func TestSession_Restart(t *testing.T) {
	sess, err := Start(Config{ImagePath: writeRawImage(t, nil), Seed: 9, HeapLimit: 64})
	if err != nil {
		t.Fatal(err)
	}

	first := sess.GetRandom()
	if sess.Alloc(64) == nil {
		t.Fatal("first allocation should fit the budget")
	}

	calls := 0
	sess.OnRestart(func() { calls++ })

	if err := sess.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if calls != 1 {
		t.Errorf("restart handler invoked %d times, want 1", calls)
	}
	if got := sess.GetRandom(); got != first {
		t.Errorf("restart should replay the seeded sequence: %#x vs %#x", got, first)
	}
	if sess.Alloc(64) == nil {
		t.Error("restart should reset the heap budget")
	}
}

func TestSession_HeapBoundary(t *testing.T) {
	sess, err := Start(Config{ImagePath: writeRawImage(t, nil), HeapLimit: 32})
	if err != nil {
		t.Fatal(err)
	}

	buf := sess.Alloc(16)
	if buf == nil {
		t.Fatal("in-budget Alloc failed")
	}
	if sess.Realloc(buf, 64) != nil {
		t.Error("over-budget Realloc should return nil")
	}
	sess.Free(buf)
	if sess.Heap().Used() != 0 {
		t.Errorf("Used = %d after Free, want 0", sess.Heap().Used())
	}
}

func TestSession_FallbackConfig(t *testing.T) {
	sess, err := Start(Config{ImagePath: writeRawImage(t, nil), ClockFallback: true})
	if err != nil {
		t.Fatal(err)
	}
	if !sess.RNG().Fallback() {
		t.Error("ClockFallback should be visible on the session RNG")
	}
}
