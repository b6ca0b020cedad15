package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/pion/logging"

	"github.com/cwbudde/algo-eq/dsp/audio"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/spectrogram"
	ilog "github.com/cwbudde/algo-eq/internal/logging"
	"github.com/cwbudde/algo-eq/render"
	frequencystats "github.com/cwbudde/algo-eq/stats/frequency"
	timestats "github.com/cwbudde/algo-eq/stats/time"
)

// Conventional track names of a two-track request.
const (
	TrackSong  = "song"
	TrackVoice = "voice"
)

// ErrNoTracks is returned by Run when called without tracks.
var ErrNoTracks = errors.New("pipeline: no tracks")

// Track is one input stream of a run.
type Track struct {
	Name       string
	Raw        audio.RawBuffer
	SampleRate int
}

// TrackResult is the outcome for one track.
type TrackResult struct {
	Name        string
	Signal      audio.Signal
	Spectrogram *spectrogram.Spectrogram
	// Image holds the encoded spectrogram; nil when no encoder is set.
	Image []byte

	// Level statistics and band energies of the input and processed signal.
	InputLevel  timestats.Stats
	OutputLevel timestats.Stats
	InputBands  frequencystats.Report
	OutputBands frequencystats.Report
}

// BandChange returns the level change of band in dB. A band that is silent
// before and after is unchanged.
func (r TrackResult) BandChange(band string) (float64, bool) {
	in, ok := r.InputBands.Band(band)
	if !ok {
		return 0, false
	}
	out, ok := r.OutputBands.Band(band)
	if !ok {
		return 0, false
	}
	if math.IsInf(in.DB, -1) && math.IsInf(out.DB, -1) {
		return 0, true
	}
	return out.DB - in.DB, true
}

// Result is the outcome of a run, in input track order.
type Result struct {
	RunID  string
	Tracks []TrackResult
}

// Track returns the result named name.
func (r *Result) Track(name string) (TrackResult, bool) {
	for _, t := range r.Tracks {
		if t.Name == name {
			return t, true
		}
	}
	return TrackResult{}, false
}

// ArtifactName returns the file name for a track artifact of run id.
func ArtifactName(runID, track, ext string) string {
	return fmt.Sprintf("%s-%s.%s", runID, track, ext)
}

// Pipeline equalizes tracks and renders their spectrograms.
type Pipeline struct {
	eq       *eq.Equalizer
	renderer *spectrogram.Renderer
	encoder  render.Encoder
	log      logging.LeveledLogger
	newID    func() string
}

// New builds a pipeline from opts.
func New(opts ...Option) (*Pipeline, error) {
	o := applyOptions(opts...)

	e, err := eq.New(o.eq...)
	if err != nil {
		return nil, err
	}
	r, err := spectrogram.New(o.spectrogram...)
	if err != nil {
		return nil, err
	}

	factory := o.loggers
	if factory == nil {
		factory = ilog.Factory()
	}

	return &Pipeline{
		eq:       e,
		renderer: r,
		encoder:  o.encoder,
		log:      factory.NewLogger("pipeline"),
		newID:    uuid.NewString,
	}, nil
}

// Process equalizes one track and renders the processed signal.
func (p *Pipeline) Process(ctx context.Context, t Track, profile eq.Profile) (TrackResult, error) {
	res := TrackResult{Name: t.Name}

	sig, err := audio.NewSignal(t.Raw, t.SampleRate)
	if err != nil {
		return res, fmt.Errorf("track %s: %w", t.Name, err)
	}
	p.log.Debugf("track %s: %d samples at %d Hz, %.2fs (%s)", t.Name, sig.Len(), sig.SampleRate, sig.Duration(), t.Raw.Encoding)
	res.InputLevel = timestats.Calculate(sig.Samples)

	if err := ctx.Err(); err != nil {
		return res, err
	}
	out, err := p.eq.Process(sig, profile)
	if err != nil {
		return res, fmt.Errorf("track %s: equalize: %w", t.Name, err)
	}
	res.Signal = out
	res.OutputLevel = timestats.Calculate(out.Samples)
	if n := res.OutputLevel.Clipped; n > 0 {
		p.log.Warnf("track %s: %d samples clipped at full scale", t.Name, n)
	}

	cfg := p.eq.Config()
	if res.InputBands, err = frequencystats.Analyze(sig, cfg); err != nil {
		return res, fmt.Errorf("track %s: analyze: %w", t.Name, err)
	}
	if res.OutputBands, err = frequencystats.Analyze(out, cfg); err != nil {
		return res, fmt.Errorf("track %s: analyze: %w", t.Name, err)
	}
	for _, b := range res.InputBands.Bands {
		if d, ok := res.BandChange(b.Name); ok {
			p.log.Debugf("track %s: band %s %+.1f dB", t.Name, b.Name, d)
		}
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	spec, err := p.renderer.Render(out)
	if err != nil {
		return res, fmt.Errorf("track %s: spectrogram: %w", t.Name, err)
	}
	res.Spectrogram = spec

	if p.encoder != nil {
		var buf bytes.Buffer
		if err := p.encoder.Encode(&buf, spec); err != nil {
			return res, fmt.Errorf("track %s: encode: %w", t.Name, err)
		}
		res.Image = buf.Bytes()
	}

	p.log.Debugf("track %s: %s", t.Name, spec)
	return res, nil
}

// Run processes every track concurrently with the same profile. The profile
// is validated once up front. On failure the first error in track order is
// returned together with whatever results completed.
func (p *Pipeline) Run(ctx context.Context, profile eq.Profile, tracks ...Track) (*Result, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	if err := profile.Validate(p.eq.Config().Catalog); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:  p.newID(),
		Tracks: make([]TrackResult, len(tracks)),
	}
	p.log.Infof("run %s: %d tracks, %d band gains", res.RunID, len(tracks), profile.Len())

	errs := make([]error, len(tracks))
	var wg sync.WaitGroup
	for i, t := range tracks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res.Tracks[i], errs[i] = p.Process(ctx, t, profile)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			p.log.Errorf("run %s: track %s failed: %v", res.RunID, tracks[i].Name, err)
			return res, err
		}
	}
	p.log.Infof("run %s: done", res.RunID)
	return res, nil
}
