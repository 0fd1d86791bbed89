package audio

// sample is a signed synthesizer output value prior to normalization.
type sample = int32

const maxAmplitude int32 = 0xffff

// generatorMaxVolume is the peak sample magnitude a waveform generator
// can produce. Every generator shares the same headroom.
const generatorMaxVolume = 0x2000

const maxVolume = 100

// toneConfig is a fully-resolved ADSR/frequency-sweep envelope, derived
// once from a Command when it becomes the active configuration for its
// channel.
type toneConfig struct {
	freqStart, freqEnd                         int32
	attackEnd, decayEnd, sustainEnd, releaseEnd int32
	peakVolume, sustainVolume                   int32
	pan                                         Pan
	mode                                        Mode
}

func framesToSamples(frames uint8, sampleRate int32) int32 {
	return int32(frames) * sampleRate / 60
}

func newToneConfig(cmd Command, sampleRate int32) toneConfig {
	attackEnd := framesToSamples(cmd.AttackFrames(), sampleRate)
	decayEnd := attackEnd + framesToSamples(cmd.DecayFrames(), sampleRate)
	sustainEnd := decayEnd + framesToSamples(cmd.SustainFrames(), sampleRate)
	releaseEnd := sustainEnd + framesToSamples(cmd.ReleaseFrames(), sampleRate)

	return toneConfig{
		freqStart:    int32(cmd.FreqStart()),
		freqEnd:      int32(cmd.FreqEnd()),
		attackEnd:    attackEnd,
		decayEnd:     decayEnd,
		sustainEnd:   sustainEnd,
		releaseEnd:   releaseEnd,
		peakVolume:   int32(cmd.PeakVolume()) * generatorMaxVolume / maxVolume,
		sustainVolume: int32(cmd.SustainVolume()) * generatorMaxVolume / maxVolume,
		pan:  cmd.Pan(),
		mode: cmd.Mode(),
	}
}

func lerp(y0, y1, x, xMax int32) int32 {
	if xMax == 0 {
		return y0
	}
	return y0 + (y1-y0)*x/xMax
}

func (cfg toneConfig) frequencyAt(n int32) int32 {
	if cfg.freqEnd == 0 || cfg.freqEnd == cfg.freqStart {
		return cfg.freqStart
	}
	return lerp(cfg.freqStart, cfg.freqEnd, n, cfg.releaseEnd)
}

func (cfg toneConfig) volumeAt(n int32) int32 {
	switch {
	case n < cfg.attackEnd:
		return lerp(0, cfg.peakVolume, n, cfg.attackEnd)
	case n < cfg.decayEnd:
		return lerp(cfg.peakVolume, cfg.sustainVolume, n-cfg.attackEnd, cfg.decayEnd-cfg.attackEnd)
	case n < cfg.sustainEnd:
		return cfg.sustainVolume
	case n < cfg.releaseEnd:
		return lerp(cfg.sustainVolume, 0, n-cfg.sustainEnd, cfg.releaseEnd-cfg.sustainEnd)
	default:
		return 0
	}
}

// generatorKind selects the waveform a channel renders; every channel
// has a fixed kind matching the console's four-channel layout.
type generatorKind int

const (
	waveformPulse generatorKind = iota
	waveformTriangle
	waveformNoise
)

type lcRNG struct {
	seed uint16
}

func (r *lcRNG) next() uint16 {
	r.seed ^= r.seed >> 7
	r.seed ^= r.seed << 9
	r.seed ^= r.seed >> 13
	return r.seed
}

// channel is one synthesizer voice: a fixed waveform generator plus the
// envelope/frequency state driven by successive tone Commands.
type channel struct {
	kind generatorKind

	sampleRate        int32
	phase             int32
	pulseSwitchPhase  int32
	currentFreq       int32
	currentVolume     int32
	samplesRendered   int32

	current toneConfig
	pending *toneConfig

	noise lcRNG
	noiseSample sample
	noiseCycle  uint32
}

func newChannel(kind generatorKind, sampleRate int32) *channel {
	return &channel{
		kind:       kind,
		sampleRate: sampleRate,
		noise:      lcRNG{seed: 0x0001},
	}
}

func (ch *channel) setConfig(cfg toneConfig) {
	cfg2 := cfg
	ch.pending = &cfg2
}

func dutyPerMil(m Mode) int32 {
	switch m {
	case ModeDuty25:
		return 250
	case ModeDuty50:
		return 500
	case ModeDuty75:
		return 750
	default:
		return 125
	}
}

func (ch *channel) commitPending() {
	if ch.pending == nil {
		return
	}
	cfg := *ch.pending
	ch.pending = nil

	ch.phase = 0
	ch.pulseSwitchPhase = ch.sampleRate * dutyPerMil(cfg.mode) / 1000
	ch.samplesRendered = 0
	ch.current = cfg
}

// next produces the next stereo sample pair for this channel.
func (ch *channel) next() (sample, sample) {
	phaseEnded := false
	if ch.currentFreq == 0 {
		ch.phase = 0
		phaseEnded = true
	} else if ch.phase >= ch.sampleRate {
		ch.phase -= ch.sampleRate
		phaseEnded = true
	}

	if phaseEnded {
		ch.commitPending()

		if ch.samplesRendered >= ch.current.releaseEnd {
			ch.currentFreq = 0
			ch.currentVolume = 0
		} else {
			ch.currentVolume = ch.current.volumeAt(ch.samplesRendered)
			ch.currentFreq = ch.current.frequencyAt(ch.samplesRendered)
		}
	}

	if ch.currentFreq == 0 {
		return 0, 0
	}

	out := ch.renderSample()
	ch.samplesRendered++
	ch.phase += ch.currentFreq

	switch ch.current.pan {
	case PanLeft:
		return out, 0
	case PanRight:
		return 0, out
	default:
		return out, out
	}
}

func (ch *channel) renderSample() sample {
	switch ch.kind {
	case waveformTriangle:
		n := 2*abs32(2*ch.phase-ch.sampleRate) - ch.sampleRate
		return n * ch.currentVolume / ch.sampleRate
	case waveformNoise:
		f2 := uint32(ch.currentFreq) * uint32(ch.currentFreq)
		ch.noiseCycle += f2
		const flipCycleLimit = 1_000_000
		for ch.noiseCycle > flipCycleLimit {
			ch.noiseCycle -= flipCycleLimit
			if ch.noise.next()&1 == 1 {
				ch.noiseSample = ch.currentVolume
			} else {
				ch.noiseSample = -ch.currentVolume
			}
		}
		return ch.noiseSample
	default: // pulse
		if ch.phase < ch.pulseSwitchPhase {
			return ch.currentVolume
		}
		return -ch.currentVolume
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
