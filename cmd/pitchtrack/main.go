// SPDX-License-Identifier: EPL-2.0

// Command pitchtrack prints the fundamental frequency of an audio file
// block by block, or writes a test tone with -tone.
//
//	pitchtrack [flags] <input.{wav,mp3,ogg,aiff}>
//	pitchtrack -tone 220 -duration 2 -o tone.wav
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"

	"github.com/ik5/audpitch"
	"github.com/ik5/audpitch/formats/wav"
	"github.com/ik5/audpitch/internal/config"
	"github.com/ik5/audpitch/pitch"
	"go.uber.org/zap"
)

const usage = `usage: pitchtrack [flags] <input.{wav,mp3,ogg,aiff}>
       pitchtrack -tone <hz> [-duration <s>] [-rate <hz>] -o <out.wav>`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "pitchtrack:", err)
		}
		os.Exit(1)
	}
}

type cli struct {
	configPath string
	jsonOut    bool

	block, hop, rate, workers int
	minFreq, maxFreq          float64
	silence, correlation      float64
	logLevel                  string

	tone, duration, amplitude float64
	out                       string
}

func parseFlags(args []string, stderr io.Writer) (*cli, *flag.FlagSet, error) {
	c := &cli{}
	fs := flag.NewFlagSet("pitchtrack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.BoolVar(&c.jsonOut, "json", false, "print one JSON object per frame")
	fs.IntVar(&c.block, "block", audpitch.DefaultBlockSize, "block size in samples")
	fs.IntVar(&c.hop, "hop", 0, "hop size in samples (0 = block size)")
	fs.IntVar(&c.rate, "rate", 0, "resample input to this rate (tone: output rate, default 16000)")
	fs.IntVar(&c.workers, "workers", 0, "concurrent estimations (0 = GOMAXPROCS)")
	fs.Float64Var(&c.minFreq, "min", pitch.DefaultMinFreq, "lowest detectable frequency in Hz")
	fs.Float64Var(&c.maxFreq, "max", pitch.DefaultMaxFreq, "highest detectable frequency in Hz")
	fs.Float64Var(&c.silence, "silence", pitch.DefaultSilenceThreshold, "RMS below which a block is silent")
	fs.Float64Var(&c.correlation, "correlation", pitch.DefaultCorrelationThreshold, "minimum autocorrelation peak")
	fs.StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error")
	fs.Float64Var(&c.tone, "tone", 0, "write a sine of this frequency instead of analysing")
	fs.Float64Var(&c.duration, "duration", 1, "tone length in seconds")
	fs.Float64Var(&c.amplitude, "amplitude", 0.5, "tone peak amplitude")
	fs.StringVar(&c.out, "o", "", "tone output file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return c, fs, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if c.tone != 0 {
		return writeTone(c)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one input file")
	}

	cfg, err := c.resolve(fs)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	path := fs.Arg(0)
	src, err := audpitch.NewRegistry().Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	logger.Debug("opened input",
		zap.String("path", path),
		zap.Int("sample_rate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
	)

	frames, err := audpitch.Track(ctx, src, cfg.TrackOptions(logger)...)
	if err != nil {
		return err
	}

	if c.jsonOut {
		return printJSON(stdout, frames)
	}

	printText(stdout, frames)

	return nil
}

// resolve loads the config file, if any, and applies explicitly set flags
// on top of it.
func (c *cli) resolve(fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "block":
			cfg.Analysis.BlockSize = c.block
		case "hop":
			cfg.Analysis.HopSize = c.hop
		case "rate":
			cfg.Analysis.SampleRate = c.rate
		case "workers":
			cfg.Analysis.Workers = c.workers
		case "min":
			cfg.Pitch.MinFreq = c.minFreq
		case "max":
			cfg.Pitch.MaxFreq = c.maxFreq
		case "silence":
			cfg.Pitch.SilenceThreshold = c.silence
		case "correlation":
			cfg.Pitch.CorrelationThreshold = c.correlation
		case "log-level":
			cfg.LogLevel = config.LogLevel(c.logLevel)
		}
	})

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(level config.LogLevel) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if level == config.LogDebug {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level.Zap())

	return zc.Build()
}

func writeTone(c *cli) error {
	if c.out == "" {
		return errors.New("-tone needs -o")
	}

	rate := c.rate
	if rate == 0 {
		rate = 16000
	}
	if rate < 0 || c.duration <= 0 || c.tone < 0 {
		return fmt.Errorf("invalid tone: %g Hz for %gs at %d Hz", c.tone, c.duration, rate)
	}

	samples := make([]float64, int(c.duration*float64(rate)))
	for i := range samples {
		samples[i] = c.amplitude * math.Sin(2*math.Pi*c.tone*float64(i)/float64(rate))
	}

	f, err := os.Create(c.out)
	if err != nil {
		return err
	}

	if err := wav.WriteMono(f, rate, samples); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func printText(w io.Writer, frames []audpitch.Frame) {
	for _, f := range frames {
		if !f.Result.Voiced() {
			fmt.Fprintf(w, "%10.3fs\t%8s\t%-10s\t%s\n", f.Start.Seconds(), "-", "", f.Result.Reason)
			continue
		}

		note, cents := pitch.NoteName(f.Frequency)
		fmt.Fprintf(w, "%10.3fs\t%8.2f\t%-4s %+5.1f\t%s\n",
			f.Start.Seconds(), f.Frequency, note, cents, f.Result.Reason)
	}

	s := audpitch.Summary(frames)
	if s.Voiced == 0 {
		fmt.Fprintf(w, "%d frames, none voiced\n", s.Frames)
		return
	}
	fmt.Fprintf(w, "%d frames, %d voiced, median %.2f Hz (min %.2f, max %.2f, mean %.2f)\n",
		s.Frames, s.Voiced, s.Median, s.Min, s.Max, s.Mean)
}

type jsonFrame struct {
	Index       int     `json:"index"`
	Start       float64 `json:"start"`
	Frequency   float64 `json:"frequency"`
	Note        string  `json:"note,omitempty"`
	Cents       float64 `json:"cents,omitempty"`
	Lag         int     `json:"lag"`
	Correlation float64 `json:"correlation"`
	RMS         float64 `json:"rms"`
	Reason      string  `json:"reason"`
}

func printJSON(w io.Writer, frames []audpitch.Frame) error {
	enc := json.NewEncoder(w)

	for _, f := range frames {
		note, cents := pitch.NoteName(f.Frequency)
		jf := jsonFrame{
			Index:       f.Index,
			Start:       f.Start.Seconds(),
			Frequency:   f.Frequency,
			Note:        note,
			Cents:       math.Round(cents*100) / 100,
			Lag:         f.Result.Lag,
			Correlation: f.Result.Correlation,
			RMS:         f.Result.RMS,
			Reason:      f.Result.Reason.String(),
		}
		if err := enc.Encode(jf); err != nil {
			return err
		}
	}

	return enc.Encode(struct {
		Summary audpitch.Stats `json:"summary"`
	}{audpitch.Summary(frames)})
}
