// Package console wires the memory map, host-call dispatcher, bytecode
// engine, disk manager, audio queue, and presenter together into the
// console's fixed-step frame loop.
package console

import (
	"fmt"
	"time"

	"nitrocart/internal/audio"
	"nitrocart/internal/cart"
	"nitrocart/internal/debug"
	"nitrocart/internal/disk"
	"nitrocart/internal/hostcall"
	"nitrocart/internal/memory"
)

const targetFPS = 60

// frameTime is the fixed per-tick budget the frame loop paces itself
// against: approximately 16.67 ms.
var frameTime = time.Second / targetFPS

// Console owns one running cart instance: its linear memory, the
// dispatcher servicing its host calls, the bytecode engine executing
// its guest code, and the external collaborators (disk, audio,
// presenter) it talks to once per tick.
type Console struct {
	mem        *memory.Memory
	engine     cart.Engine
	dispatcher *hostcall.Dispatcher
	disk       disk.Manager
	presenter  Presenter
	logger     *debug.Logger

	started    bool
	lastTick   time.Time
	frameLimit bool
}

// New assembles a Console from its collaborators. printer receives text
// produced by the trace host calls (cmd/nitrocart prints it to standard
// output).
func New(engine cart.Engine, diskMgr disk.Manager, audioQueue *audio.Queue, presenter Presenter, logger *debug.Logger, printer hostcall.Printer) *Console {
	mem := memory.New()
	dispatcher := hostcall.New(mem, audioQueue, diskMgr, logger, printer)

	return &Console{
		mem:        mem,
		engine:     engine,
		dispatcher: dispatcher,
		disk:       diskMgr,
		presenter:  presenter,
		logger:     logger,
		frameLimit: true,
	}
}

// Load instantiates the engine against this console's memory and the
// dispatcher's host-call imports.
func (c *Console) Load(program []byte) error {
	imports := buildImports(c.dispatcher)
	if err := c.engine.Instantiate(program, c.mem, imports); err != nil {
		return fmt.Errorf("console: instantiate: %w", err)
	}
	return nil
}

// Run drives the fixed-step frame loop until the presenter reports
// ShouldClose. Engine-level faults during update are logged and
// swallowed: the guest is untrusted and must never be able to crash the
// host.
func (c *Console) Run() error {
	c.lastTick = time.Now()

	for !c.presenter.ShouldClose() {
		if err := c.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Tick runs exactly one frame: input gather, conditional clear, guest
// update, disk flush, scan-out, and fixed-step pacing. Exported so
// tests and tooling can step the console deterministically instead of
// calling Run's event loop.
func (c *Console) Tick() error {
	if !c.started {
		c.seedSaveCache()
		if err := c.engine.Start(); err != nil {
			c.logFault("start", err)
		}
		c.started = true
	}

	input := c.presenter.PollInput()
	for i, mask := range input.Gamepads {
		c.mem.SetGamepad(i, mask)
	}
	c.mem.SetMouse(input.MouseX, input.MouseY, input.MouseButtons)

	if c.mem.SystemFlags()&memory.SystemFlagPreserveFramebuffer == 0 {
		for i := range c.mem.Framebuffer() {
			c.mem.Framebuffer()[i] = 0
		}
	}

	if err := c.engine.Update(); err != nil {
		c.logFault("update", err)
	}

	c.flushSaveCache()

	palette := c.mem.Palette()
	var pal16 [16]byte
	copy(pal16[:], palette[:])
	c.presenter.Render(c.mem.Framebuffer(), pal16)

	c.pace()
	return nil
}

func (c *Console) seedSaveCache() {
	if c.disk == nil {
		return
	}
	data, err := c.disk.Read()
	if err != nil {
		if c.logger != nil {
			c.logger.LogDiskf(debug.LogLevelError, "failed to read persisted save: %v", err)
		}
		return
	}
	c.dispatcher.SeedSaveCache(data)
}

func (c *Console) flushSaveCache() {
	data, dirty := c.dispatcher.FlushSaveCache()
	if !dirty || c.disk == nil {
		return
	}
	if err := c.disk.Write(data); err != nil && c.logger != nil {
		c.logger.LogDiskf(debug.LogLevelError, "failed to persist save: %v", err)
	}
}

func (c *Console) logFault(phase string, err error) {
	if c.logger != nil {
		c.logger.LogSystemf(debug.LogLevelError, "guest %s fault: %v", phase, err)
	}
}

func (c *Console) pace() {
	if !c.frameLimit {
		return
	}
	elapsed := time.Since(c.lastTick)
	if elapsed < frameTime {
		time.Sleep(frameTime - elapsed)
	}
	c.lastTick = time.Now()
}

// SetFrameLimit toggles the fixed-step sleep, for tests or tooling that
// need to run many ticks as fast as possible.
func (c *Console) SetFrameLimit(enabled bool) {
	c.frameLimit = enabled
}

// Memory exposes the console's linear memory, chiefly for tests.
func (c *Console) Memory() *memory.Memory {
	return c.mem
}
