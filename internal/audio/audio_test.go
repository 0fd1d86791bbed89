package audio

import "testing"

func TestCommandFieldUnpacking(t *testing.T) {
	cmd := Command{
		Frequency: 440 | (880 << 16),
		Duration:  uint32(4) | uint32(3)<<8 | uint32(2)<<16 | uint32(1)<<24,
		Volume:    60 | (100 << 8),
		Flags:     0b00_01_10_01, // channel=1, mode=2 (0b10<<2), pan=left (0b01<<4)
	}

	if got := cmd.FreqStart(); got != 440 {
		t.Fatalf("FreqStart: got %d", got)
	}
	if got := cmd.FreqEnd(); got != 880 {
		t.Fatalf("FreqEnd: got %d", got)
	}
	if got := cmd.AttackFrames(); got != 1 {
		t.Fatalf("AttackFrames: got %d", got)
	}
	if got := cmd.DecayFrames(); got != 2 {
		t.Fatalf("DecayFrames: got %d", got)
	}
	if got := cmd.ReleaseFrames(); got != 3 {
		t.Fatalf("ReleaseFrames: got %d", got)
	}
	if got := cmd.SustainFrames(); got != 4 {
		t.Fatalf("SustainFrames: got %d", got)
	}
	if got := cmd.SustainVolume(); got != 60 {
		t.Fatalf("SustainVolume: got %d", got)
	}
	if got := cmd.PeakVolume(); got != 100 {
		t.Fatalf("PeakVolume: got %d", got)
	}
	if got := cmd.Channel(); got != ChannelPulse2 {
		t.Fatalf("Channel: got %v", got)
	}
	if got := cmd.Mode(); got != ModeDuty50 {
		t.Fatalf("Mode: got %v", got)
	}
	if got := cmd.Pan(); got != PanLeft {
		t.Fatalf("Pan: got %v", got)
	}
}

func TestQueueDropsOnFull(t *testing.T) {
	q := NewQueue(nil)
	for i := 0; i < queueCapacity; i++ {
		q.Enqueue(Command{Frequency: uint32(i)})
	}
	// Queue is now full; this one should be silently dropped rather than
	// block or panic.
	q.Enqueue(Command{Frequency: 0xffffffff})

	for i := 0; i < queueCapacity; i++ {
		cmd, ok := q.Dequeue()
		if !ok {
			t.Fatalf("expected %d queued commands, ran out at %d", queueCapacity, i)
		}
		if cmd.Frequency != uint32(i) {
			t.Fatalf("command %d: got frequency %d", i, cmd.Frequency)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected queue empty after draining %d commands", queueCapacity)
	}
}

func TestToneConfigEnvelopeShape(t *testing.T) {
	cmd := Command{
		Frequency: 1,
		Duration:  uint32(6) | uint32(0)<<8 | uint32(0)<<16 | uint32(6)<<24,
		Volume:    0 | (100 << 8),
	}
	cfg := newToneConfig(cmd, 60)

	if v := cfg.volumeAt(0); v != 0 {
		t.Fatalf("volume at attack start: got %d, want 0", v)
	}
	mid := cfg.volumeAt(cfg.attackEnd / 2)
	if mid <= 0 || mid >= cfg.peakVolume {
		t.Fatalf("volume mid-attack: got %d, want strictly between 0 and %d", mid, cfg.peakVolume)
	}
	if v := cfg.volumeAt(cfg.releaseEnd); v != 0 {
		t.Fatalf("volume past release end: got %d, want 0", v)
	}
}
