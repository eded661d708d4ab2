package audio

import (
	"bytes"
	"encoding/binary"
	"math"
)

const sampleRate = 22050

type waveform int

const (
	sine waveform = iota
	triangle
	sawtooth
	square
)

// tone is one oscillator voice. Frequency moves from freq to sweepTo over
// sweep seconds and then holds. Gain ramps linearly from gain to fade.
type tone struct {
	wave    waveform
	freq    float64
	sweepTo float64
	sweep   float64
	expo    bool
	offset  float64
	length  float64
	gain    float64
	fade    float64
}

func cueTones(c Cue) []tone {
	switch c {
	case CueCorrect:
		return []tone{{wave: sine, freq: 523.25, sweepTo: 1046.5, sweep: 0.1, expo: true, length: 0.5, gain: 0.3, fade: 0.01}}
	case CueWrong:
		return []tone{{wave: sawtooth, freq: 200, sweepTo: 100, sweep: 0.3, length: 0.3, gain: 0.3, fade: 0.01}}
	case CueHover:
		return []tone{{wave: triangle, freq: 440, length: 0.05, gain: 0.05, fade: 0.001}}
	case CueVictory:
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		out := make([]tone, len(notes))
		for i, n := range notes {
			out[i] = tone{wave: square, freq: n, offset: 0.15 * float64(i), length: 0.2, gain: 0.1, fade: 0.01}
		}
		return out
	}
	return nil
}

// renderWAV mixes tones into a 16-bit mono PCM WAV file.
func renderWAV(tones []tone) []byte {
	var total float64
	for _, t := range tones {
		total = max(total, t.offset+t.length)
	}
	mix := make([]float64, int(total*sampleRate))

	for _, t := range tones {
		start := int(t.offset * sampleRate)
		n := int(t.length * sampleRate)
		phase := 0.0
		for i := 0; i < n && start+i < len(mix); i++ {
			at := float64(i) / sampleRate
			phase += t.frequencyAt(at) / sampleRate
			phase -= math.Floor(phase)
			g := t.gain + (t.fade-t.gain)*(at/t.length)
			mix[start+i] += g * t.wave.sample(phase)
		}
	}

	pcm := make([]int16, len(mix))
	for i, v := range mix {
		v = max(-1, min(1, v))
		pcm[i] = int16(v * math.MaxInt16)
	}

	var buf bytes.Buffer
	dataLen := uint32(len(pcm) * 2)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVEfmt ")
	for _, field := range []any{
		uint32(16), uint16(1), uint16(1),
		uint32(sampleRate), uint32(sampleRate * 2),
		uint16(2), uint16(16),
	} {
		_ = binary.Write(&buf, binary.LittleEndian, field)
	}
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	_ = binary.Write(&buf, binary.LittleEndian, pcm)
	return buf.Bytes()
}

func (t tone) frequencyAt(at float64) float64 {
	if t.sweep <= 0 || t.sweepTo == 0 {
		return t.freq
	}
	if at >= t.sweep {
		return t.sweepTo
	}
	frac := at / t.sweep
	if t.expo {
		return t.freq * math.Pow(t.sweepTo/t.freq, frac)
	}
	return t.freq + (t.sweepTo-t.freq)*frac
}

// sample returns the waveform value in [-1, 1] at phase in [0, 1).
func (w waveform) sample(phase float64) float64 {
	switch w {
	case triangle:
		return 4*math.Abs(phase-0.5) - 1
	case sawtooth:
		return 2*phase - 1
	case square:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
