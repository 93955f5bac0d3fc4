package game

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/oto/v2"

	"snowflow/internal/media"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// channel is the part of oto.Player the audio system drives.
type channel interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// AudioSystem owns the output context and the long-lived channels: the looping
// music track, the looping wind effect and the buffered one-shot cue. Any of the
// three may be missing if its file could not be loaded.
type AudioSystem struct {
	ctx   *oto.Context
	music channel
	wind  channel
	cue   *media.Clip

	tracks []*media.Track // kept open while their loops play

	// In-flight cue players; each is closed by its watcher or by StopAudio.
	mu     sync.Mutex
	cues   map[channel]struct{}
	wg     sync.WaitGroup
	poll   time.Duration
	errOut io.Writer
}

var globalAudio *AudioSystem

func newAudioSystem(ctx *oto.Context) *AudioSystem {
	return &AudioSystem{
		ctx:    ctx,
		cues:   make(map[channel]struct{}),
		poll:   10 * time.Millisecond,
		errOut: os.Stderr,
	}
}

// InitAudio opens the output device and waits for it to become ready.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return err
	}
	<-ready
	globalAudio = newAudioSystem(ctx)
	return nil
}

func (a *AudioSystem) hint(err error) {
	fmt.Fprintf(a.errOut, "audio setup error: %v\n", err)
	fmt.Fprintf(a.errOut, "make sure %s, %s and %s are present (continuing without them)\n",
		AmbientTrack, WindTrack, SleighBellsClip)
}

// StartAmbient starts the looping music and wind channels. Missing or unreadable
// files are reported and skipped.
func StartAmbient() {
	if globalAudio == nil {
		return
	}
	globalAudio.startAmbient()
}

func (a *AudioSystem) startAmbient() {
	if p, err := a.startLoop(AmbientTrack, MusicVolume); err != nil {
		a.hint(err)
	} else {
		a.music = p
	}
	if p, err := a.startLoop(WindTrack, WindVolume); err != nil {
		a.hint(err)
	} else {
		a.wind = p
	}
}

func (a *AudioSystem) startLoop(path string, volume float64) (channel, error) {
	track, err := media.LoadAudio(path)
	if err != nil {
		return nil, err
	}
	a.tracks = append(a.tracks, track)
	player := a.ctx.NewPlayer(media.NewStreamReader(track.Loop(beep.SampleRate(SampleRate))))
	player.SetVolume(volume)
	player.Play()
	return player, nil
}

// LoadCue decodes the sleigh bells into memory so each trigger can replay them.
func LoadCue() {
	if globalAudio == nil {
		return
	}
	track, err := media.LoadAudio(SleighBellsClip)
	if err != nil {
		globalAudio.hint(err)
		return
	}
	clip, err := track.Clip(beep.SampleRate(SampleRate))
	if err != nil {
		globalAudio.hint(err)
		return
	}
	globalAudio.cue = clip
}

// PlayCue plays the one-shot cue. The call returns immediately.
func PlayCue() {
	if globalAudio == nil || globalAudio.cue == nil {
		return
	}
	globalAudio.playCue(globalAudio.ctx.NewPlayer(media.NewStreamReader(globalAudio.cue.Streamer())))
}

// playCue starts p and closes it once it has finished, unless StopAudio gets
// there first.
func (a *AudioSystem) playCue(p channel) {
	p.SetVolume(CueVolume)
	p.Play()

	a.mu.Lock()
	a.cues[p] = struct{}{}
	a.mu.Unlock()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for p.IsPlaying() {
			time.Sleep(a.poll)
		}
		a.releaseCue(p)
	}()
}

func (a *AudioSystem) releaseCue(p channel) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.cues[p]; ok {
		delete(a.cues, p)
		p.Close()
	}
}

// ToggleMusic pauses or resumes the music channel only. Wind and cue are not
// affected.
func ToggleMusic() {
	if globalAudio == nil {
		return
	}
	globalAudio.toggleMusic()
}

func (a *AudioSystem) toggleMusic() {
	if a.music == nil {
		return
	}
	if a.music.IsPlaying() {
		a.music.Pause()
	} else {
		a.music.Play()
	}
}

// StopAudio stops all channels, including cues still playing, and releases
// decoders.
func StopAudio() {
	if globalAudio == nil {
		return
	}
	globalAudio.stop()
}

func (a *AudioSystem) stop() {
	for _, p := range []channel{a.music, a.wind} {
		if p != nil {
			p.Pause()
			p.Close()
		}
	}
	a.music = nil
	a.wind = nil

	a.mu.Lock()
	for p := range a.cues {
		p.Pause()
		p.Close()
		delete(a.cues, p)
	}
	a.mu.Unlock()
	a.wg.Wait()

	for _, t := range a.tracks {
		t.Close()
	}
	a.tracks = nil
}
