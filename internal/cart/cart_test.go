package cart

import (
	"testing"

	"nitrocart/internal/memory"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	program := []byte{1, 2, 3, 4, 5}
	data := Encode(program)

	got, hdr, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if hdr.Magic != Magic {
		t.Fatalf("magic: got 0x%x, want 0x%x", hdr.Magic, Magic)
	}
	if hdr.Version != FormatVersion {
		t.Fatalf("version: got %d, want %d", hdr.Version, FormatVersion)
	}
	if string(got) != string(program) {
		t.Fatalf("program bytes mismatch: got %v, want %v", got, program)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data := Encode([]byte{1, 2, 3})
	data[0] ^= 0xff

	if _, _, err := Decode(data); err != ErrBadMagic {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestDecodeRejectsTruncatedProgram(t *testing.T) {
	data := Encode([]byte{1, 2, 3, 4})
	truncated := data[:len(data)-2]

	if _, _, err := Decode(truncated); err == nil {
		t.Fatalf("expected error for truncated program")
	}
}

func TestReferenceEngineInvokesExports(t *testing.T) {
	var startCalled, updateCalled bool

	eng := NewReferenceEngine(
		func(mem *memory.Memory, imports map[string]HostFunc) { startCalled = true },
		func(mem *memory.Memory, imports map[string]HostFunc) { updateCalled = true },
	)

	mem := memory.New()
	if err := eng.Instantiate(nil, mem, nil); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if err := eng.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if !startCalled {
		t.Fatalf("expected start to be invoked")
	}
	if !updateCalled {
		t.Fatalf("expected update to be invoked")
	}
}

func TestReferenceEngineMissingExportsAreNoops(t *testing.T) {
	eng := NewReferenceEngine(nil, nil)
	mem := memory.New()
	if err := eng.Instantiate(nil, mem, nil); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if err := eng.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}
