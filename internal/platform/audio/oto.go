package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/egg-run/internal/core"
	"github.com/vovakirdan/egg-run/internal/games/eggrun"
)

const (
	maxVoices   = 4   // Caps overlapping cues so a burst of pickups cannot clip
	themeVolume = 0.5 // Theme level relative to the cues
)

// OtoSink plays synthesized cues and a looping background theme on the
// system audio device.
type OtoSink struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cues   map[Cue][]byte
	voices atomic.Int32

	mu     sync.Mutex
	theme  oto.Player
	closed bool
}

// NewOtoSink opens the audio device, renders every cue up front and starts
// the theme as soon as the device is ready. volume is clamped to [0, 1].
func NewOtoSink(volume float64) (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}

	cues := make(map[Cue][]byte, len(AllCues))
	for _, c := range AllCues {
		cues[c] = Synthesize(c)
	}

	s := &OtoSink{
		ctx:    ctx,
		ready:  ready,
		volume: core.ClampF(volume, 0, 1),
		cues:   cues,
	}
	go s.startTheme()
	return s, nil
}

func (s *OtoSink) startTheme() {
	data := Theme()
	<-s.ready

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.theme = s.ctx.NewPlayer(&loopReader{data: data})
	s.theme.SetVolume(s.volume * themeVolume)
	s.theme.Play()
}

// Play starts the cues for ev on their own goroutine and returns
// immediately. The cues of one event play back to back.
// Events arriving before the device is ready are dropped.
func (s *OtoSink) Play(ev eggrun.Event) {
	cues := CuesFor(ev)
	if len(cues) == 0 {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	if s.voices.Add(1) > maxVoices {
		s.voices.Add(-1)
		return
	}

	go func() {
		defer s.voices.Add(-1)
		for _, c := range cues {
			s.playOne(s.cues[c])
		}
	}()
}

func (s *OtoSink) playOne(data []byte) {
	player := s.ctx.NewPlayer(&soundReader{data: data})
	player.SetVolume(s.volume)
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	//nolint:errcheck // Nothing to do if closing a finished player fails
	player.Close()
}

// Close stops the theme. Cues already playing run to their end.
func (s *OtoSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.theme == nil {
		return nil
	}
	s.theme.Pause()
	if err := s.theme.Close(); err != nil {
		return fmt.Errorf("audio: close theme: %w", err)
	}
	s.theme = nil
	return nil
}
