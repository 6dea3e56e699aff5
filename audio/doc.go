// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives used to bring decoded
// audio into a track.
//
//   - Source: a stream of interleaved float32 samples in [-1, 1]
//   - Registry: decoders by file extension
//   - Resampler: Catmull-Rom sample rate conversion
//   - MonoMixer: channel averaging
//   - ToMono16: drains a source into 16-bit mono PCM at a target rate
//
// A typical chain:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm, err := audio.ToMono16(src, 8000, 4096)
//
// Resampler and MonoMixer are themselves Sources and can be chained by hand:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//	n, err := mono.ReadSamples(buf)
package audio
