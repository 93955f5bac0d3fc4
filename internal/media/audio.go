package media

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// ResampleQuality is passed to beep.Resample when a file's rate differs from the
// output rate.
const ResampleQuality = 4

var ErrUnsupported = errors.New("unsupported audio format")

// Track is a decoded audio file. The caller owns it until Close, Loop or Clip.
type Track struct {
	Path   string
	Stream beep.StreamSeekCloser
	Format beep.Format
}

// LoadAudio opens and decodes an mp3 or wav file, chosen by extension.
func LoadAudio(path string) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" && ext != ".wav" {
		return nil, fmt.Errorf("load %s: %w", path, ErrUnsupported)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch ext {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &Track{Path: path, Stream: s, Format: format}, nil
}

func (t *Track) Close() error {
	return t.Stream.Close()
}

func (t *Track) resampled(s beep.Streamer, rate beep.SampleRate) beep.Streamer {
	if t.Format.SampleRate == rate {
		return s
	}
	return beep.Resample(ResampleQuality, t.Format.SampleRate, rate, s)
}

// Loop returns an endless stream of the track at the output rate. The file stays
// open for as long as the stream is played.
func (t *Track) Loop(rate beep.SampleRate) beep.Streamer {
	return t.resampled(beep.Loop(-1, t.Stream), rate)
}

// Clip decodes the whole track into memory at the output rate and closes the file.
func (t *Track) Clip(rate beep.SampleRate) (*Clip, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 4})
	buf.Append(t.resampled(t.Stream, rate))
	err := t.Stream.Err()
	if cerr := t.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("buffer %s: %w", t.Path, err)
	}
	return &Clip{buf: buf}, nil
}

// Clip is a fully decoded one-shot sound that can be replayed any number of times.
type Clip struct {
	buf *beep.Buffer
}

// Streamer returns a fresh stream over the whole clip.
func (c *Clip) Streamer() beep.Streamer {
	return c.buf.Streamer(0, c.buf.Len())
}

func (c *Clip) Len() int { return c.buf.Len() }

// StreamReader adapts a beep.Streamer to the byte stream an audio player pulls:
// interleaved stereo float32 little endian.
type StreamReader struct {
	s   beep.Streamer
	buf [][2]float64
}

func NewStreamReader(s beep.Streamer) *StreamReader {
	return &StreamReader{s: s}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]
	n, ok := r.s.Stream(buf)
	if !ok && n == 0 {
		if err := r.s.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	for i := 0; i < n; i++ {
		putStereoF32LR(p, i, buf[i][0], buf[i][1])
	}
	return n * 8, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	l := math.Float32bits(float32(left))
	r := math.Float32bits(float32(right))
	buf[i*8] = byte(l)
	buf[i*8+1] = byte(l >> 8)
	buf[i*8+2] = byte(l >> 16)
	buf[i*8+3] = byte(l >> 24)
	buf[i*8+4] = byte(r)
	buf[i*8+5] = byte(r >> 8)
	buf[i*8+6] = byte(r >> 16)
	buf[i*8+7] = byte(r >> 24)
}
