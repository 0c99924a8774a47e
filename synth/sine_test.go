// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
)

func TestSampleCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		durationMs int
		sampleRate int
		want       int
	}{
		{name: "default beep", durationMs: 300, sampleRate: 44100, want: 13230},
		{name: "short beep", durationMs: 250, sampleRate: 44100, want: 11025},
		{name: "long beep", durationMs: 500, sampleRate: 44100, want: 22050},
		{name: "48kHz", durationMs: 300, sampleRate: 48000, want: 14400},
		{name: "floors fractional count", durationMs: 1, sampleRate: 44100, want: 44},
		{name: "below one sample", durationMs: 1, sampleRate: 999, want: 0},
		{name: "zero duration", durationMs: 0, sampleRate: 44100, want: 0},
		{name: "negative duration", durationMs: -10, sampleRate: 44100, want: 0},
		{name: "zero sample rate", durationMs: 300, sampleRate: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SampleCount(tt.durationMs, tt.sampleRate); got != tt.want {
				t.Errorf("SampleCount(%d, %d) = %d, want %d",
					tt.durationMs, tt.sampleRate, got, tt.want)
			}
		})
	}
}

func TestSine_Length(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 22050, 44100, 48000} {
		for durationMs := 0; durationMs <= 1000; durationMs += 37 {
			got := len(Sine(durationMs, rate, 440, 1))
			want := durationMs * rate / 1000
			if got != want {
				t.Errorf("len(Sine(%d, %d)) = %d, want %d", durationMs, rate, got, want)
			}
		}
	}
}

func TestSine_WithinVolume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		frequency float64
		volume    float64
	}{
		{name: "full volume", frequency: 440, volume: 1},
		{name: "half volume", frequency: 222, volume: 0.5},
		{name: "quiet high tone", frequency: 999, volume: 0.1},
		{name: "silent", frequency: 440, volume: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := Sine(300, 44100, tt.frequency, tt.volume)
			for i, v := range samples {
				if v < -tt.volume || v > tt.volume {
					t.Fatalf("sample[%d] = %v outside [-%v, %v]", i, v, tt.volume, tt.volume)
				}
			}

			// A 300ms tone covers many periods, so it must come close to the peak.
			if peak := samples.Peak(); math.Abs(peak-tt.volume) > 0.01 {
				t.Errorf("Peak() = %v, want ≈%v", peak, tt.volume)
			}
		})
	}
}

func TestSine_Deterministic(t *testing.T) {
	t.Parallel()

	a := Sine(250, 44100, 333, 1)
	b := Sine(250, 44100, 333, 1)

	if !a.Equal(b) {
		t.Error("Sine() gave different samples for identical arguments")
	}
}

func TestSine_Values(t *testing.T) {
	t.Parallel()

	// 1kHz at 4kHz sample rate walks the quarter points of the sine.
	samples := Sine(1, 4000, 1000, 1)
	want := []float64{0, 1, 0, -1}

	if len(samples) != len(want) {
		t.Fatalf("len = %d, want %d", len(samples), len(want))
	}

	for i := range want {
		if math.Abs(samples[i]-want[i]) > 1e-9 {
			t.Errorf("sample[%d] = %v, want %v", i, samples[i], want[i])
		}
	}
}

func TestSine_ZeroFrequencyIsSilent(t *testing.T) {
	t.Parallel()

	for i, v := range Sine(100, 44100, 0, 1) {
		if v != 0 {
			t.Fatalf("sample[%d] = %v, want 0", i, v)
		}
	}
}

func TestSine_NegativeFrequencyMirrors(t *testing.T) {
	t.Parallel()

	pos := Sine(100, 44100, 440, 1)
	neg := Sine(100, 44100, -440, 1)

	for i := range pos {
		if math.Abs(pos[i]+neg[i]) > 1e-12 {
			t.Fatalf("sample[%d]: %v and %v are not mirrored", i, pos[i], neg[i])
		}
	}
}

func TestSine_Empty(t *testing.T) {
	t.Parallel()

	samples := Sine(0, 44100, 440, 1)
	if samples == nil {
		t.Fatal("Sine() returned nil, want empty sequence")
	}
	if len(samples) != 0 {
		t.Errorf("len = %d, want 0", len(samples))
	}
}

// BenchmarkSine measures generating the default 300ms beep
func BenchmarkSine(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		_ = Sine(300, 44100, 440, 1)
	}
}
