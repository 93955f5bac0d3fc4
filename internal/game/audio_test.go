package game

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeChannel struct {
	mu      sync.Mutex
	playing bool
	closed  bool
	volume  float64
	plays   int
	pauses  int
	closes  int
}

func (f *fakeChannel) Play() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = true
	f.plays++
}

func (f *fakeChannel) Pause() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = false
	f.pauses++
}

func (f *fakeChannel) IsPlaying() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playing
}

func (f *fakeChannel) SetVolume(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume = v
}

func (f *fakeChannel) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = false
	f.closed = true
	f.closes++
	return nil
}

// finish simulates the player draining its stream.
func (f *fakeChannel) finish() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = false
}

func (f *fakeChannel) state() (playing, closed bool, closes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playing, f.closed, f.closes
}

func newTestAudio() *AudioSystem {
	a := newAudioSystem(nil)
	a.poll = time.Millisecond
	a.errOut = &bytes.Buffer{}
	return a
}

func TestToggleMusicOnlyTouchesMusic(t *testing.T) {
	a := newTestAudio()
	music := &fakeChannel{playing: true}
	wind := &fakeChannel{playing: true}
	a.music, a.wind = music, wind

	a.toggleMusic()
	if music.IsPlaying() {
		t.Error("expected music paused after first toggle")
	}
	a.toggleMusic()
	if !music.IsPlaying() {
		t.Error("expected music resumed after second toggle")
	}
	if !wind.IsPlaying() || wind.pauses != 0 || wind.plays != 0 {
		t.Errorf("wind channel was touched: %+v", wind)
	}
}

func TestToggleMusicWithoutTrack(t *testing.T) {
	a := newTestAudio()
	wind := &fakeChannel{playing: true}
	a.wind = wind

	a.toggleMusic()
	if !wind.IsPlaying() {
		t.Error("toggle without music must not affect wind")
	}
}

func TestHintNamesExpectedFiles(t *testing.T) {
	a := newTestAudio()
	out := a.errOut.(*bytes.Buffer)

	a.hint(errors.New("load assets/winter_ambient.mp3: no such file"))

	msg := out.String()
	for _, want := range []string{"no such file", AmbientTrack, WindTrack, SleighBellsClip, "continuing"} {
		if !strings.Contains(msg, want) {
			t.Errorf("hint %q does not mention %q", msg, want)
		}
	}
}

func TestCueClosedWhenFinished(t *testing.T) {
	a := newTestAudio()
	cue := &fakeChannel{}

	a.playCue(cue)
	if cue.volume != CueVolume || cue.plays != 1 {
		t.Fatalf("cue not started: %+v", cue)
	}
	cue.finish()
	a.wg.Wait()

	if _, closed, closes := cue.state(); !closed || closes != 1 {
		t.Errorf("expected cue closed once, closed=%v closes=%d", closed, closes)
	}
	a.mu.Lock()
	left := len(a.cues)
	a.mu.Unlock()
	if left != 0 {
		t.Errorf("expected no in-flight cues, got %d", left)
	}
}

func TestStopClosesInFlightCues(t *testing.T) {
	a := newTestAudio()
	music := &fakeChannel{playing: true}
	wind := &fakeChannel{playing: true}
	a.music, a.wind = music, wind
	cues := []*fakeChannel{{}, {}}
	for _, c := range cues {
		a.playCue(c)
	}

	done := make(chan struct{})
	go func() {
		a.stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not return; cue watchers still running")
	}

	for i, c := range append(cues, music, wind) {
		playing, closed, closes := c.state()
		if playing || !closed || closes != 1 {
			t.Errorf("channel %d: playing=%v closed=%v closes=%d", i, playing, closed, closes)
		}
	}
	if a.music != nil || a.wind != nil {
		t.Error("expected music and wind cleared")
	}
}
