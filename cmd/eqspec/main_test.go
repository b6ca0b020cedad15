package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-eq/codec"
	"github.com/cwbudde/algo-eq/dsp/audio"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

func writeInput(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	sig := audio.Signal{Samples: testutil.DeterministicSine32(440, 8000, 0.5, 3000), SampleRate: 8000}
	if err := codec.EncodeWAV(f, sig); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	song := writeInput(t, dir, "song.wav")
	voice := writeInput(t, dir, "voice.wav")
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	args := []string{
		"-song", song, "-voice", voice, "-out", out,
		"-gains", `{"250Hz": -6, "4kHz": 2}`,
		"-width", "100", "-height", "50", "-log", "off",
	}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("stdout = %q", stdout.String())
	}
	for i, want := range []string{"song", "voice"} {
		fields := strings.Split(lines[i], "\t")
		if len(fields) != 3 || fields[0] != want {
			t.Fatalf("line %d = %q", i, lines[i])
		}
		for _, p := range fields[1:] {
			fi, err := os.Stat(p)
			if err != nil {
				t.Fatal(err)
			}
			if fi.Size() == 0 {
				t.Fatalf("%s is empty", p)
			}
		}
	}
}

func TestRunProfileFromFile(t *testing.T) {
	dir := t.TempDir()
	gains := filepath.Join(dir, "gains.json")
	if err := os.WriteFile(gains, []byte(`{"1kHz": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}
	args := []string{"-song", writeInput(t, dir, "s.wav"), "-gains", "@" + gains, "-out", dir, "-log", "off"}
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "song\t") {
		t.Fatalf("stdout = %q", stdout.String())
	}
}

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	args := []string{
		"-song", writeInput(t, dir, "s.wav"), "-out", dir, "-log", "off",
		"-gains", `{"250Hz": -6}`, "-report", "-width", "0", "-height", "0",
	}
	var stdout bytes.Buffer
	if err := run(context.Background(), args, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	for _, want := range []string{"CHANGE (dB)", "250Hz", "16kHz", "peak"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	song := writeInput(t, dir, "s.wav")

	tests := []struct {
		name string
		args []string
	}{
		{"no tracks", []string{}},
		{"bad gains", []string{"-song", song, "-gains", "{"}},
		{"unknown band", []string{"-song", song, "-gains", `{"8kHz": 1}`}},
		{"bad edge", []string{"-song", song, "-edge", "open"}},
		{"bad backend", []string{"-song", song, "-backend", "fftw"}},
		{"bad window", []string{"-song", song, "-window", "kaiser"}},
		{"bad level", []string{"-song", song, "-log", "loud"}},
		{"bad extension", []string{"-song", filepath.Join(dir, "s.ogg")}},
		{"missing file", []string{"-song", filepath.Join(dir, "nope.wav")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-out", dir)
			if err := run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-h"}, &bytes.Buffer{}, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(stderr.String(), "Usage: eqspec") {
		t.Fatalf("usage missing: %q", stderr.String())
	}
}

func TestRunListBands(t *testing.T) {
	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"-bands"}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"60Hz", "250Hz", "1kHz", "4kHz", "16kHz"} {
		if !strings.Contains(stdout.String(), name) {
			t.Fatalf("band %s missing from %q", name, stdout.String())
		}
	}
}
