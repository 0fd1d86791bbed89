// Package hostcall implements the console's host-call dispatcher: the
// adaptation layer between the guest's raw imported-function arguments
// (offsets into linear memory, plain integers) and the framebuffer,
// trace, audio, and disk collaborators those calls drive.
package hostcall

import (
	"unicode/utf16"
	"unicode/utf8"

	"nitrocart/internal/audio"
	"nitrocart/internal/debug"
	"nitrocart/internal/disk"
	"nitrocart/internal/framebuffer"
	"nitrocart/internal/memory"
	"nitrocart/internal/trace"
)

// Printer receives the formatted text produced by any of the trace host
// calls. The console passes through whatever Printer it was built with;
// cmd/nitrocart supplies one that writes to standard output, and tests
// can supply a simple capturing stub.
type Printer interface {
	Print(s string)
}

// Dispatcher adapts guest host-call arguments into calls on the
// framebuffer, trace, audio, and disk collaborators. It never panics and
// never propagates a fault back to the guest: a bad pointer or
// out-of-range argument logs and makes the call a no-op (diskr/diskw
// instead return 0).
type Dispatcher struct {
	Mem    *memory.Memory
	Audio  *audio.Queue
	Disk   disk.Manager
	Logger *debug.Logger
	Print  Printer

	saveCache      [disk.Size]byte
	saveCacheDirty bool
}

// SeedSaveCache installs the Save Cache contents at startup, before any
// diskr/diskw call. The frame loop calls this once with whatever the
// disk Manager returned for the cart's persisted save.
func (d *Dispatcher) SeedSaveCache(data [disk.Size]byte) {
	d.saveCache = data
}

// FlushSaveCache returns the current Save Cache contents and whether
// it's dirty since the last flush, clearing the dirty flag. The frame
// loop calls this once per tick to decide whether to write the save.
func (d *Dispatcher) FlushSaveCache() (data [disk.Size]byte, dirty bool) {
	data = d.saveCache
	dirty = d.saveCacheDirty
	d.saveCacheDirty = false
	return data, dirty
}

func New(mem *memory.Memory, audioQueue *audio.Queue, diskMgr disk.Manager, logger *debug.Logger, printer Printer) *Dispatcher {
	return &Dispatcher{Mem: mem, Audio: audioQueue, Disk: diskMgr, Logger: logger, Print: printer}
}

func (d *Dispatcher) canvas() framebuffer.Canvas {
	return framebuffer.Canvas{SourceSink: memSlice(d.Mem.Framebuffer()), W: framebuffer.Width, H: framebuffer.Height}
}

func (d *Dispatcher) fail(call string, format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.LogHostCallf(debug.LogLevelError, call+": "+format, args...)
	}
}

func (d *Dispatcher) print(s string) {
	if d.Print != nil {
		d.Print.Print(s)
	}
}

// readCString reads a null-terminated byte string starting at ptr.
func (d *Dispatcher) readCString(ptr uint32) (string, bool) {
	var out []byte
	for {
		b, ok := d.Mem.Get(ptr)
		if !ok {
			return "", false
		}
		if b == 0 {
			break
		}
		out = append(out, b)
		ptr++
	}
	return string(out), true
}

// Trace implements the `trace(ptr)` host call: print a null-terminated
// byte string read from guest memory.
func (d *Dispatcher) Trace(ptr uint32) {
	s, ok := d.readCString(ptr)
	if !ok {
		d.fail("trace", "bad pointer 0x%x", ptr)
		return
	}
	d.print(s)
}

// maxTraceArgsWindow bounds how many bytes of the args region tracef
// reads to resolve its format specifiers, since the exact count isn't
// known until the format string has been parsed.
const maxTraceArgsWindow = 256

// Tracef implements the `tracef(fmt, args)` host call.
func (d *Dispatcher) Tracef(fmtPtr, argsPtr uint32) {
	fmtStr, ok := d.readCString(fmtPtr)
	if !ok {
		d.fail("tracef", "bad format pointer 0x%x", fmtPtr)
		return
	}
	n := maxTraceArgsWindow
	if uint64(argsPtr)+uint64(n) > memory.Size {
		n = memory.Size - int(argsPtr)
	}
	if n < 0 {
		n = 0
	}
	args, _ := d.Mem.GetN(argsPtr, n)
	d.print(trace.Format(fmtStr, args, memAbsolute{d.Mem}))
}

// TraceUTF8 implements the `traceUtf8(ptr,len)` host call.
func (d *Dispatcher) TraceUTF8(ptr, length uint32) {
	b, ok := d.Mem.GetN(ptr, int(length))
	if !ok {
		d.fail("traceUtf8", "bad range ptr=0x%x len=%d", ptr, length)
		return
	}
	d.print(decodeUTF8Lossy(b))
}

// TraceUTF16 implements the `traceUtf16(ptr,len)` host call: len is a
// byte count, interpreted as little-endian UTF-16 code units.
func (d *Dispatcher) TraceUTF16(ptr, length uint32) {
	b, ok := d.Mem.GetN(ptr, int(length))
	if !ok {
		d.fail("traceUtf16", "bad range ptr=0x%x len=%d", ptr, length)
		return
	}
	d.print(string(utf16.Decode(bytesToUint16LE(b))))
}

func decodeUTF8Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var out []rune
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		out = append(out, r)
		b = b[size:]
	}
	return string(out)
}

// Blit implements the `blit(ptr,x,y,w,h,flags)` host call.
func (d *Dispatcher) Blit(ptr uint32, x, y, w, h, flags int32) {
	d.BlitSub(ptr, x, y, w, h, 0, 0, w, flags)
}

// BlitSub implements the `blitSub(...)` host call.
func (d *Dispatcher) BlitSub(ptr uint32, x, y, w, h, srcX, srcY, stride, flags int32) {
	pixelWidth := int32(1)
	if flags&framebuffer.Blit2BPP != 0 {
		pixelWidth = 2
	}
	numBits := int64(stride) * int64(h+srcY) * int64(pixelWidth)
	length := (numBits + 7) / 8
	if length < 0 {
		d.fail("blitSub", "negative sprite length derived (stride=%d h=%d srcY=%d)", stride, h, srcY)
		return
	}
	if length > memory.Size {
		length = memory.Size
	}
	if _, ok := d.Mem.GetN(ptr, int(length)); !ok {
		d.fail("blitSub", "bad sprite pointer 0x%x len=%d", ptr, length)
		return
	}

	sprite := memAbsoluteOffset{mem: d.Mem, base: ptr}
	framebuffer.BlitSub(d.canvas(), sprite, x, y, w, h, srcX, srcY, stride, flags, d.Mem.DrawColors())
}

// Line implements the `line(x1,y1,x2,y2)` host call.
func (d *Dispatcher) Line(x1, y1, x2, y2 int32) {
	framebuffer.Line(d.canvas(), d.Mem.DrawColors(), x1, y1, x2, y2)
}

// HLine implements the `hline(x,y,len)` host call.
func (d *Dispatcher) HLine(x, y int32, length uint32) {
	framebuffer.HLine(d.canvas(), d.Mem.DrawColors(), x, y, length)
}

// VLine implements the `vline(x,y,len)` host call.
func (d *Dispatcher) VLine(x, y int32, length uint32) {
	framebuffer.VLine(d.canvas(), d.Mem.DrawColors(), x, y, length)
}

// Oval implements the `oval(x,y,w,h)` host call.
func (d *Dispatcher) Oval(x, y, w, h int32) {
	framebuffer.Oval(d.canvas(), d.Mem.DrawColors(), x, y, w, h)
}

// Rect implements the `rect(x,y,w,h)` host call.
func (d *Dispatcher) Rect(x, y, w, h int32) {
	framebuffer.Rect(d.canvas(), d.Mem.DrawColors(), x, y, w, h)
}

// Text implements the `text(ptr,x,y)` host call.
func (d *Dispatcher) Text(ptr uint32, x, y int32) {
	s, ok := d.readCString(ptr)
	if !ok {
		d.fail("text", "bad pointer 0x%x", ptr)
		return
	}
	framebuffer.Text(d.canvas(), []byte(s), x, y, d.Mem.DrawColors())
}

// TextUTF8 implements the `textUtf8(ptr,len,x,y)` host call.
func (d *Dispatcher) TextUTF8(ptr, length uint32, x, y int32) {
	b, ok := d.Mem.GetN(ptr, int(length))
	if !ok {
		d.fail("textUtf8", "bad range ptr=0x%x len=%d", ptr, length)
		return
	}
	framebuffer.Text(d.canvas(), b, x, y, d.Mem.DrawColors())
}

// TextUTF16 implements the `textUtf16(ptr,len,x,y)` host call: len is a
// byte count.
func (d *Dispatcher) TextUTF16(ptr, length uint32, x, y int32) {
	b, ok := d.Mem.GetN(ptr, int(length))
	if !ok {
		d.fail("textUtf16", "bad range ptr=0x%x len=%d", ptr, length)
		return
	}
	framebuffer.TextUTF16(d.canvas(), bytesToUint16LE(b), x, y, d.Mem.DrawColors())
}

func bytesToUint16LE(b []byte) []uint16 {
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return out
}

// Tone implements the `tone(freq,dur,vol,flags)` host call.
func (d *Dispatcher) Tone(freq, dur, vol, flags uint32) {
	if d.Audio == nil {
		return
	}
	d.Audio.Enqueue(audio.Command{Frequency: freq, Duration: dur, Volume: vol, Flags: flags})
}

const saveCacheSize = disk.Size

// Diskr implements the `diskr(dest,size)` host call: copies
// min(size,1024) bytes from the Save Cache into guest memory at dest,
// returning the number of bytes copied.
func (d *Dispatcher) Diskr(dest, size uint32) uint32 {
	n := int(size)
	if n > saveCacheSize {
		n = saveCacheSize
	}
	if uint64(dest)+uint64(n) > memory.Size {
		d.fail("diskr", "bad range dest=0x%x len=%d", dest, n)
		return 0
	}
	d.Mem.SetN(dest, d.saveCache[:n])
	return uint32(n)
}

// Diskw implements the `diskw(src,size)` host call: reads
// min(size,1024) bytes from guest memory at src, zero-pads to 1024,
// overwrites the Save Cache, marks it dirty, and returns the number of
// bytes written.
func (d *Dispatcher) Diskw(src, size uint32) uint32 {
	n := int(size)
	if n > saveCacheSize {
		n = saveCacheSize
	}
	b, ok := d.Mem.GetN(src, n)
	if !ok {
		d.fail("diskw", "bad range src=0x%x len=%d", src, n)
		return 0
	}

	var buf [saveCacheSize]byte
	copy(buf[:], b)
	d.saveCache = buf
	d.saveCacheDirty = true
	return uint32(n)
}
