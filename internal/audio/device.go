package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"nitrocart/internal/debug"
)

const sampleRate = 44100

// Device is an optional best-effort PortAudio sink: it drains a Queue on
// its own callback thread and mixes the four synthesizer channels into
// the host's default output stream. Absence of a usable audio device is
// non-fatal; the caller simply never starts a Device and tone commands
// become silent no-ops.
type Device struct {
	queue    *Queue
	logger   *debug.Logger
	stream   *portaudio.Stream
	channels [4]*channel
}

// NewDevice opens the default PortAudio output stream. The caller should
// treat a non-nil error as "no audio available" and continue without a
// Device, per the console's audio-device-absence error policy.
func NewDevice(queue *Queue, logger *debug.Logger) (*Device, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("audio: initialize portaudio: %w", err)
	}

	d := &Device{
		queue:  queue,
		logger: logger,
		channels: [4]*channel{
			newChannel(waveformPulse, sampleRate),
			newChannel(waveformPulse, sampleRate),
			newChannel(waveformTriangle, sampleRate),
			newChannel(waveformNoise, sampleRate),
		},
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, 0, d.render)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: open default stream: %w", err)
	}
	d.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: start stream: %w", err)
	}

	return d, nil
}

// Close stops the stream and releases PortAudio. It is only valid on a
// Device returned by a successful NewDevice; a failed NewDevice returns
// nil, and Close on a nil Device panics.
func (d *Device) Close() {
	if d.stream != nil {
		d.stream.Stop()
		d.stream.Close()
	}
	portaudio.Terminate()
}

// render is the PortAudio callback: drain pending tone commands, then
// mix one stereo frame per generator call.
func (d *Device) render(out []float32) {
	for {
		cmd, ok := d.queue.Dequeue()
		if !ok {
			break
		}
		ch := d.channels[cmd.Channel()]
		ch.setConfig(newToneConfig(cmd, sampleRate))
	}

	for i := 0; i+1 < len(out); i += 2 {
		var left, right int32
		for _, ch := range d.channels {
			l, r := ch.next()
			left += l
			right += r
		}
		out[i] = float32(left) / float32(maxAmplitude)
		out[i+1] = float32(right) / float32(maxAmplitude)
	}
}
