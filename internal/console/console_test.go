package console

import (
	"testing"

	"nitrocart/internal/cart"
	"nitrocart/internal/disk"
	"nitrocart/internal/memory"
)

type stubPresenter struct {
	ticks       int
	closeAfter  int
	renderCalls int
	lastFB      []byte
	lastPalette [16]byte
}

func (s *stubPresenter) PollInput() InputSample {
	return InputSample{Gamepads: [4]uint8{1, 0, 0, 0}}
}

func (s *stubPresenter) Render(fb []byte, palette [16]byte) {
	s.renderCalls++
	s.lastFB = append([]byte(nil), fb...)
	s.lastPalette = palette
}

func (s *stubPresenter) ShouldClose() bool {
	s.ticks++
	return s.ticks > s.closeAfter
}

func TestTickInvokesStartOnceThenWritesGamepadBeforeUpdate(t *testing.T) {
	var startCalls int
	var gamepadDuringUpdate uint8
	eng := cart.NewReferenceEngine(
		func(mem *memory.Memory, imports map[string]cart.HostFunc) { startCalls++ },
		func(mem *memory.Memory, imports map[string]cart.HostFunc) { gamepadDuringUpdate = mem.Gamepad(0) },
	)

	presenter := &stubPresenter{closeAfter: 2}
	c := New(eng, disk.NewNullManager(nil), nil, presenter, nil, nil)
	c.SetFrameLimit(false)
	if err := c.Load(nil); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if startCalls != 1 {
		t.Fatalf("expected start invoked exactly once across two ticks, got %d", startCalls)
	}
	if gamepadDuringUpdate != 1 {
		t.Fatalf("expected gamepad register to read 1 inside update, got %d", gamepadDuringUpdate)
	}
	if presenter.renderCalls != 2 {
		t.Fatalf("expected one render call per tick, got %d", presenter.renderCalls)
	}
}

func TestTickClearsFramebufferWhenPreserveBitClear(t *testing.T) {
	var sawZeroBeforeWrite bool
	tickNum := 0
	eng := cart.NewReferenceEngine(nil, func(mem *memory.Memory, imports map[string]cart.HostFunc) {
		tickNum++
		if tickNum == 2 {
			sawZeroBeforeWrite = mem.Framebuffer()[0] == 0
		}
		mem.Framebuffer()[0] = 0xff
	})

	presenter := &stubPresenter{closeAfter: 2}
	c := New(eng, disk.NewNullManager(nil), nil, presenter, nil, nil)
	c.SetFrameLimit(false)
	c.Load(nil)

	c.Tick() // update writes 0xff
	c.Tick() // clear runs before this tick's update, so framebuffer[0] starts zero

	if !sawZeroBeforeWrite {
		t.Fatalf("expected framebuffer to be cleared before the second tick's update")
	}
}

func TestTickPreservesFramebufferWhenBitSet(t *testing.T) {
	eng := cart.NewReferenceEngine(
		func(mem *memory.Memory, imports map[string]cart.HostFunc) {
			mem.Set(memory.OffsetSystemFlags, memory.SystemFlagPreserveFramebuffer)
			mem.Framebuffer()[0] = 0xff
		},
		nil,
	)

	presenter := &stubPresenter{closeAfter: 2}
	c := New(eng, disk.NewNullManager(nil), nil, presenter, nil, nil)
	c.SetFrameLimit(false)
	c.Load(nil)

	c.Tick() // start sets preserve bit and paints a byte
	c.Tick() // this tick should NOT clear, since preserve bit is set

	if c.Memory().Framebuffer()[0] != 0xff {
		t.Fatalf("expected preserved framebuffer byte, got %d", c.Memory().Framebuffer()[0])
	}
}
