// Command eqspec equalizes a song and a voice track with one gain profile
// and writes the processed audio plus a spectrogram of each.
//
// Usage:
//
//	eqspec [flags] -song song.wav -voice voice.flac
//
// Gains are a JSON object of band name to dB, e.g. '{"60Hz": 3, "4kHz": -6}'.
// Bands: 60Hz, 250Hz, 1kHz, 4kHz, 16kHz. Outputs are named
// <run-id>-<track>.wav and <run-id>-<track>.png in the output directory.
//
// Examples:
//
//	eqspec -song mix.wav -voice vox.wav -gains '{"1kHz": 4.5}'
//	eqspec -song mix.flac -gains @profile.json -out renders -transparent
//	eqspec -bands
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/codec"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/fourier"
	"github.com/cwbudde/algo-eq/dsp/spectrogram"
	"github.com/cwbudde/algo-eq/dsp/window"
	"github.com/cwbudde/algo-eq/internal/logging"
	"github.com/cwbudde/algo-eq/pipeline"
	"github.com/cwbudde/algo-eq/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("eqspec", flag.ContinueOnError)
	fs.SetOutput(stderr)

	song := fs.String("song", "", "song input file (.wav or .flac)")
	voice := fs.String("voice", "", "voice input file (.wav or .flac)")
	gains := fs.String("gains", "{}", "band gains as JSON, or @file to read them from a file")
	outDir := fs.String("out", ".", "output directory")
	edge := fs.String("edge", "fixed", "upper edge of the last band: fixed or nyquist")
	backend := fs.String("backend", fourier.Default().Name(), "FFT backend: algofft or godsp")
	win := fs.String("window", "hann", "STFT window: rectangular, hann, hamming, blackman, blackmanharris")
	width := fs.Int("width", 1200, "image width in pixels, 0 for one pixel per frame")
	height := fs.Int("height", 400, "image height in pixels, 0 for one pixel per row")
	transparent := fs.Bool("transparent", false, "make cells at the dB floor transparent")
	level := fs.String("log", "info", "log level: error, warn, info, debug, trace, off")
	bands := fs.Bool("bands", false, "list the equalizer bands and exit")
	report := fs.Bool("report", false, "print per-band levels before and after equalization")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: eqspec [flags] -song FILE [-voice FILE]\n\n")
		fmt.Fprintf(stderr, "Equalizes tracks and renders their spectrograms.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  eqspec -song mix.wav -voice vox.wav -gains '{\"1kHz\": 4.5}'\n")
		fmt.Fprintf(stderr, "  eqspec -song mix.flac -gains @profile.json -out renders\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *bands {
		printBands(stdout, eq.DefaultCatalog())
		return nil
	}

	lvl, ok := logging.ParseLevel(*level)
	if !ok {
		return fmt.Errorf("unknown log level %q", *level)
	}
	loggers := logging.NewFactory(stderr, lvl)
	log := loggers.NewLogger("cli")

	inputs := []struct{ name, path string }{
		{pipeline.TrackSong, *song},
		{pipeline.TrackVoice, *voice},
	}
	var tracks []pipeline.Track
	for _, in := range inputs {
		if in.path == "" {
			continue
		}
		t, err := loadTrack(in.name, in.path)
		if err != nil {
			return err
		}
		log.Debugf("loaded %s from %s", in.name, in.path)
		tracks = append(tracks, t)
	}
	if len(tracks) == 0 {
		fs.Usage()
		return errors.New("at least one of -song or -voice is required")
	}

	profile, err := loadProfile(*gains)
	if err != nil {
		return err
	}
	policy, err := eq.ParseEdgePolicy(*edge)
	if err != nil {
		return err
	}
	be, err := fourier.ByName(*backend)
	if err != nil {
		return err
	}
	wt, err := window.ParseType(*win)
	if err != nil {
		return err
	}

	imgOpts := []render.Option{render.WithSize(*width, *height)}
	if *transparent {
		imgOpts = append(imgOpts, render.WithTransparentFloor())
	}

	p, err := pipeline.New(
		pipeline.WithEqualizer(eq.WithEdgePolicy(policy), eq.WithBackend(be)),
		pipeline.WithSpectrogram(spectrogram.WithBackend(be), spectrogram.WithWindowType(wt)),
		pipeline.WithEncoder(render.NewPNGEncoder(imgOpts...)),
		pipeline.WithLoggerFactory(loggers),
	)
	if err != nil {
		return err
	}

	res, err := p.Run(ctx, profile, tracks...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}
	for _, tr := range res.Tracks {
		wavPath := filepath.Join(*outDir, pipeline.ArtifactName(res.RunID, tr.Name, "wav"))
		if err := writeWAV(wavPath, tr); err != nil {
			return err
		}
		pngPath := filepath.Join(*outDir, pipeline.ArtifactName(res.RunID, tr.Name, "png"))
		if err := os.WriteFile(pngPath, tr.Image, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", tr.Name, wavPath, pngPath)
	}
	if *report {
		printReport(stdout, res)
	}
	return nil
}

func loadTrack(name, path string) (pipeline.Track, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return pipeline.Track{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return pipeline.Track{}, err
	}
	defer f.Close()

	d, err := codec.Decode(f, format)
	if err != nil {
		return pipeline.Track{}, fmt.Errorf("%s: %w", path, err)
	}
	return pipeline.Track{Name: name, Raw: d.Raw, SampleRate: d.SampleRate}, nil
}

func loadProfile(arg string) (eq.Profile, error) {
	data := []byte(arg)
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return eq.Profile{}, err
		}
	}
	return eq.ParseProfile(data)
}

func writeWAV(path string, tr pipeline.TrackResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := codec.EncodeWAV(f, tr.Signal); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printBands(w io.Writer, c eq.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BAND\tLOW (Hz)\tHIGH (Hz)")
	for _, b := range c {
		fmt.Fprintf(tw, "%s\t%g\t%g\n", b.Name, b.Low, b.High)
	}
	tw.Flush()
}

func printReport(w io.Writer, res *pipeline.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACK\tBAND\tIN (dB)\tOUT (dB)\tCHANGE (dB)")
	for _, tr := range res.Tracks {
		for i, in := range tr.InputBands.Bands {
			out := tr.OutputBands.Bands[i]
			fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t%+.1f\n", tr.Name, in.Name, in.DB, out.DB, out.DB-in.DB)
		}
		fmt.Fprintf(tw, "%s\tpeak\t%.1f\t%.1f\t%d clipped\n",
			tr.Name, tr.InputLevel.Peak_dB, tr.OutputLevel.Peak_dB, tr.OutputLevel.Clipped)
	}
	tw.Flush()
}
