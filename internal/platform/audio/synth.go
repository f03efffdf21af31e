package audio

import (
	"io"
	"math"
)

// Output format: 44.1 kHz stereo float32 little-endian.
const (
	SampleRate     = 44100
	ChannelCount   = 2
	bytesPerSample = 4 * ChannelCount
)

// Synthesize renders a cue to raw PCM in the output format.
func Synthesize(c Cue) []byte {
	switch c {
	case CueJump:
		return genJump()
	case CueCollect:
		return genCollect()
	case CueScream:
		return genScream()
	case CueBump:
		return genBump()
	case CueGameOver:
		return genGameOver()
	case CueMagic:
		return genMagic()
	case CueSuccess:
		return genSuccess()
	}
	return nil
}

// genJump: short upward sweep.
func genJump() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.5, 0.4)
		freq := 300 + 600*p*p
		phase += 2 * math.Pi * freq / SampleRate
		s := (math.Sin(phase) + 0.3*math.Sin(2*phase)) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCollect: two bell notes a fifth apart.
func genCollect() []byte {
	notes := []float64{987.77, 1479.98}
	step := int(0.06 * SampleRate)
	total := step*len(notes) + int(0.18*SampleRate)
	mix := make([]float64, total)

	for ni, freq := range notes {
		start := ni * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.005, 0.5, 0.1, 0.4)
			mix[start+j] += fm(t, freq, 2, 2.5*env) * env * 0.25
		}
	}
	return render(mix)
}

// genScream: falling vowel, the chicken wins.
func genScream() []byte {
	n := int(0.45 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(4242)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.03, 0.05, 0.85, 0.15)
		pitch := (520 - 220*p) * (1 + 0.03*math.Sin(2*math.Pi*7*t))

		src := 0.0
		for h := 1; h <= 7; h++ {
			src += math.Sin(2*math.Pi*pitch*float64(h)*t) / float64(h)
		}
		formant := math.Sin(2*math.Pi*900*t)*0.18 + math.Sin(2*math.Pi*1400*t)*0.1
		s := (src*0.12 + formant + lcg(&seed)*0.04) * env * 0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBump: low thud with a noisy click on top.
func genBump() []byte {
	n := int(0.25 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(1337)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		body := math.Sin(2*math.Pi*(90-40*p)*t) * math.Exp(-p*6)
		click := lcg(&seed) * math.Exp(-p*40)
		putStereoF32(buf, i, softSat((body*0.7+click*0.3)*0.8))
	}
	return buf
}

// genGameOver: slow falling minor line.
func genGameOver() []byte {
	notes := []float64{392, 349.23, 311.13, 261.63}
	return arpeggio(notes, 0.2, 0.6, 2, 0.24)
}

// genMagic: shimmering rising arpeggio.
func genMagic() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5, 1318.51, 1567.98}
	return arpeggio(notes, 0.07, 0.4, 4, 0.2)
}

// genSuccess: major fanfare.
func genSuccess() []byte {
	notes := []float64{392, 523.25, 659.25, 783.99, 1046.5}
	return arpeggio(notes, 0.11, 0.5, 3.5, 0.26)
}

// arpeggio layers FM notes started step seconds apart, each ringing to the
// end of the buffer.
func arpeggio(notes []float64, step, tail, ratio, gain float64) []byte {
	noteStep := int(step * SampleRate)
	total := len(notes)*noteStep + int(tail*SampleRate)
	mix := make([]float64, total)

	for ni, freq := range notes {
		start := ni * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, ratio, 4*env) * env * gain
			s += math.Sin(2*math.Pi*freq*2*t) * env * gain * 0.25
			mix[start+j] += s
		}
	}
	return render(mix)
}

// render saturates a mono mix into a stereo buffer.
func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// themeStep is the length of one melody step of the background theme.
const themeStep = 0.18

// themeMelody is one loop of the lead line, in Hz; 0 is a rest.
var themeMelody = []float64{
	523.25, 0, 659.25, 783.99, 659.25, 0, 523.25, 587.33,
	659.25, 0, 587.33, 523.25, 440, 0, 392, 0,
	523.25, 0, 659.25, 783.99, 880, 0, 783.99, 659.25,
	587.33, 0, 659.25, 587.33, 523.25, 0, 0, 0,
}

// themeBass holds one root per four melody steps.
var themeBass = []float64{130.81, 130.81, 174.61, 196, 130.81, 130.81, 196, 130.81}

// Theme renders one loop of the background music. Every note decays to
// silence inside its step, so the buffer loops without a click.
func Theme() []byte {
	step := int(themeStep * SampleRate)
	mix := make([]float64, len(themeMelody)*step)

	for ni, freq := range themeMelody {
		if freq == 0 {
			continue
		}
		start := ni * step
		for j := 0; j < step; j++ {
			t := float64(j) / SampleRate
			env := adsr(float64(j)/float64(step), 0.02, 0.3, 0.4, 0.3)
			mix[start+j] += fm(t, freq, 2, 1.5*env) * env * 0.18
		}
	}

	bassStep := 4 * step
	for bi, freq := range themeBass {
		start := bi * bassStep
		for j := 0; j < bassStep && start+j < len(mix); j++ {
			t := float64(j) / SampleRate
			env := adsr(float64(j)/float64(bassStep), 0.01, 0.2, 0.6, 0.2)
			mix[start+j] += math.Sin(2*math.Pi*freq*t) * env * 0.22
		}
	}

	return render(mix)
}

// loopReader replays data forever. An empty buffer reads as EOF.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.pos:])
		n += c
		r.pos = (r.pos + c) % len(r.data)
	}
	return n, nil
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	off := i * bytesPerSample
	for ch := 0; ch < ChannelCount; ch++ {
		buf[off+ch*4] = byte(v)
		buf[off+ch*4+1] = byte(v >> 8)
		buf[off+ch*4+2] = byte(v >> 16)
		buf[off+ch*4+3] = byte(v >> 24)
	}
}

// softSat bends peaks back under 1 instead of clipping them.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack, decay and release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns a frequency-modulated sine sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*bytesPerSample) }
