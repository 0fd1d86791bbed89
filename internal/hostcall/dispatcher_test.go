package hostcall

import (
	"encoding/binary"
	"strings"
	"testing"

	"nitrocart/internal/memory"
)

type captureSink struct {
	strings.Builder
}

func (c *captureSink) Print(s string) { c.WriteString(s) }

func newDispatcher() (*Dispatcher, *captureSink) {
	mem := memory.New()
	sink := &captureSink{}
	d := New(mem, nil, nil, nil, sink)
	return d, sink
}

func TestTraceReadsNullTerminatedString(t *testing.T) {
	d, sink := newDispatcher()
	msg := "hello console"
	d.Mem.SetN(0x1000, append([]byte(msg), 0))

	d.Trace(0x1000)

	if sink.String() != msg {
		t.Fatalf("got %q, want %q", sink.String(), msg)
	}
}

func TestTracefFormatsAndPrints(t *testing.T) {
	d, sink := newDispatcher()
	fmtStr := "n=%d"
	d.Mem.SetN(0x1000, append([]byte(fmtStr), 0))
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, 42)
	d.Mem.SetN(0x2000, buf)

	d.Tracef(0x1000, 0x2000)

	if sink.String() != "n=42" {
		t.Fatalf("got %q", sink.String())
	}
}

func TestTraceUTF8Decodes(t *testing.T) {
	d, sink := newDispatcher()
	msg := []byte("utf8 ok")
	d.Mem.SetN(0x1000, msg)

	d.TraceUTF8(0x1000, uint32(len(msg)))

	if sink.String() != "utf8 ok" {
		t.Fatalf("got %q", sink.String())
	}
}

func TestDiskRoundTrip(t *testing.T) {
	d, _ := newDispatcher()

	src := make([]byte, 2000)
	for i := range src {
		src[i] = 0xAB
	}
	d.Mem.SetN(0x1000, src)

	written := d.Diskw(0x1000, 2000)
	if written != 1024 {
		t.Fatalf("Diskw returned %d, want 1024", written)
	}

	read := d.Diskr(0x5000, 2000)
	if read != 1024 {
		t.Fatalf("Diskr returned %d, want 1024", read)
	}

	dst, ok := d.Mem.GetN(0x5000, 1024)
	if !ok {
		t.Fatalf("GetN failed")
	}
	for i, b := range dst {
		if b != 0xAB {
			t.Fatalf("byte %d: got %d, want 0xAB", i, b)
		}
	}
}

func TestDiskwZeroPadsShortSource(t *testing.T) {
	d, _ := newDispatcher()
	d.Mem.SetN(0x1000, []byte{1, 2, 3})

	d.Diskw(0x1000, 3)

	data, dirty := d.FlushSaveCache()
	if !dirty {
		t.Fatalf("expected dirty after diskw")
	}
	if data[0] != 1 || data[1] != 2 || data[2] != 3 {
		t.Fatalf("leading bytes not preserved: %v", data[:3])
	}
	for i := 3; i < len(data); i++ {
		if data[i] != 0 {
			t.Fatalf("byte %d not zero-padded: %d", i, data[i])
		}
	}
}

func TestFlushSaveCacheClearsDirtyFlag(t *testing.T) {
	d, _ := newDispatcher()
	d.Mem.SetN(0x1000, []byte{9})
	d.Diskw(0x1000, 1)

	_, dirty := d.FlushSaveCache()
	if !dirty {
		t.Fatalf("expected dirty on first flush")
	}
	_, dirty = d.FlushSaveCache()
	if dirty {
		t.Fatalf("expected clean on second flush with no writes between")
	}
}

func TestHLineHostCallDrawsThroughCanvas(t *testing.T) {
	d, _ := newDispatcher()
	d.Mem.Reset()
	// default draw colors 0x1203: slot0 (fill) nibble=3 -> color (3-1)&3=2
	d.HLine(0, 0, 5)

	fb := d.Mem.Framebuffer()
	// pixel 0 at bits0-1 of byte0 should be color 2 (0b10)
	if fb[0]&0x3 != 2 {
		t.Fatalf("pixel 0: got %d, want 2", fb[0]&0x3)
	}
}

func TestBlitSubBadPointerIsNoop(t *testing.T) {
	d, _ := newDispatcher()
	// Pointer is within bounds but the derived sprite length overruns
	// memory; BlitSub should be a no-op rather than panic.
	before := append([]byte(nil), d.Mem.Framebuffer()...)
	d.BlitSub(memory.Size-1, 0, 0, 200, 200, 0, 0, 200, 0)

	after := d.Mem.Framebuffer()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("framebuffer mutated on failed blit at byte %d", i)
		}
	}
}
