// SPDX-License-Identifier: EPL-2.0

// Package pitch estimates the fundamental frequency of a block of mono
// audio samples with time-domain autocorrelation.
//
// # Algorithm
//
// For one block of N samples at a given sample rate:
//
//  1. The RMS amplitude is computed. Blocks below Config.SilenceThreshold
//     are reported as having no pitch.
//  2. Samples are divided by the RMS so the correlation threshold does not
//     depend on loudness.
//  3. For every lag L between floor(rate/MaxFreq) and floor(rate/MinFreq)
//     the sum of n[i]*n[i+L] over the overlapping samples is computed. The
//     first lag with the largest sum wins.
//  4. A winning sum below Config.CorrelationThreshold means no pitch.
//  5. The frequency is rate/L.
//
// Because L is an integer the result is quantized: a 440 Hz tone at
// 44.1 kHz is reported as 441 Hz (lag 100).
//
// # Usage
//
//	hz, err := pitch.Estimate(block, 44100)
//	if err != nil {
//	    // empty block or bad sample rate
//	}
//	if hz == pitch.NoPitch {
//	    // silence, noise, or nothing periodic in the band
//	}
//
// Custom bands and thresholds go through Config:
//
//	cfg, err := pitch.NewConfig(pitch.WithMinFreq(60), pitch.WithMaxFreq(1000))
//	res, err := cfg.Analyze(block, 48000)
//	fmt.Println(res.Frequency, res.Reason)
//
// # Concurrency
//
// Estimation holds no state between calls. Blocks may be estimated from
// any number of goroutines at once.
package pitch
