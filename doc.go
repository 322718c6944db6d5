// SPDX-License-Identifier: EPL-2.0

// Package audpitch tracks the fundamental frequency of an audio stream
// block by block.
//
// The estimator itself lives in the pitch package and works on a single
// mono block. This package feeds it: a decoded audio.Source is optionally
// resampled, cut into fixed-length blocks by an audio.Framer, and every
// block is estimated. Blocks are independent, so estimation fans out over
// a bounded pool of goroutines while the output keeps block order.
//
// # Tracking a File
//
//	src, err := audpitch.NewRegistry().Open("voice.wav")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	frames, err := audpitch.Track(ctx, src,
//	    audpitch.WithBlockSize(2048),
//	    audpitch.WithHopSize(512),
//	)
//	for _, f := range frames {
//	    if f.Result.Voiced() {
//	        fmt.Printf("%v %.1f Hz\n", f.Start, f.Frequency)
//	    }
//	}
//
// # Options
//
// Block size defaults to 4096 samples with no overlap. WithSampleRate
// resamples the source first, which also changes the searchable lag range
// since lags are derived from the rate. WithLogger attaches a zap logger;
// by default nothing is logged.
//
// # Summaries
//
// Summary reduces a track to frame counts and statistics over the voiced
// frames only.
package audpitch
