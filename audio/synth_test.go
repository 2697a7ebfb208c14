package audio

import (
	"math"
	"testing"

	"github.com/simukka/rfxgen/common"
)

func TestGenerateWave_ProducesSamples(t *testing.T) {
	rng := common.NewSeededRNG(12345)
	params := NewWaveParams(rng)

	wave := GenerateWave(params, rng)

	if wave.SampleCount <= 0 {
		t.Errorf("Wave should have samples, got %d", wave.SampleCount)
	}
	if wave.SampleRate != 44100 {
		t.Errorf("SampleRate: expected 44100, got %d", wave.SampleRate)
	}
	if wave.SampleSize != 32 {
		t.Errorf("SampleSize: expected 32, got %d", wave.SampleSize)
	}
	if wave.Channels != 1 {
		t.Errorf("Channels: expected 1, got %d", wave.Channels)
	}
	if len(wave.Data) != wave.SampleCount {
		t.Errorf("Data length %d does not match SampleCount %d", len(wave.Data), wave.SampleCount)
	}

	hasNonZero := false
	for _, s := range wave.Data {
		if s != 0 {
			hasNonZero = true
			break
		}
	}
	if !hasNonZero {
		t.Error("Wave should contain non-zero samples")
	}
}

func TestGenerateWave_SamplesInRange(t *testing.T) {
	rng := common.NewSeededRNG(12345)

	for i := 0; i < 20; i++ {
		params := GenRandomize(NewWaveParams(rng), rng)
		wave := GenerateWave(params, rng)

		if wave.SampleCount < 1 || wave.SampleCount > MaxWaveSeconds*SampleRate {
			t.Errorf("SampleCount out of range: %d", wave.SampleCount)
		}
		for j, s := range wave.Data {
			if s < -1 || s > 1 || math.IsNaN(float64(s)) {
				t.Errorf("Sample %d out of range: %f", j, s)
				break
			}
		}
	}
}

func TestGenerateWave_Deterministic(t *testing.T) {
	params := GenLaserShoot(common.NewSeededRNG(12345))

	wave1 := GenerateWave(params, common.NewSeededRNG(12345))
	wave2 := GenerateWave(params, common.NewSeededRNG(12345))

	if wave1.SampleCount != wave2.SampleCount {
		t.Fatalf("Lengths should match: %d vs %d", wave1.SampleCount, wave2.SampleCount)
	}
	for i := range wave1.Data {
		if wave1.Data[i] != wave2.Data[i] {
			t.Errorf("Sample %d differs: %f vs %f", i, wave1.Data[i], wave2.Data[i])
			break
		}
	}
}

func TestGenerateWave_SeedOverridesSource(t *testing.T) {
	params := GenExplosion(common.NewSeededRNG(12345))
	if params.RandSeed == 0 {
		t.Fatal("Preset should carry a nonzero seed")
	}

	// The stored seed reseeds the source, so differently seeded sources
	// still render the same wave.
	wave1 := GenerateWave(params, common.NewSeededRNG(1))
	wave2 := GenerateWave(params, common.NewSeededRNG(99999))

	if wave1.SampleCount != wave2.SampleCount {
		t.Fatalf("Lengths should match: %d vs %d", wave1.SampleCount, wave2.SampleCount)
	}
	for i := range wave1.Data {
		if wave1.Data[i] != wave2.Data[i] {
			t.Errorf("Sample %d differs: %f vs %f", i, wave1.Data[i], wave2.Data[i])
			break
		}
	}
}

func TestGenerateWave_WaveTypes(t *testing.T) {
	tests := []struct {
		name     string
		waveType WaveType
	}{
		{"Square", Square},
		{"Sawtooth", Sawtooth},
		{"Sine", Sine},
		{"Noise", Noise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := common.NewSeededRNG(12345)
			params := NewWaveParams(rng)
			params.WaveType = tt.waveType

			wave := GenerateWave(params, rng)

			if wave.SampleCount <= 0 {
				t.Errorf("%s wave should produce samples", tt.name)
			}
			if rms(wave.Data) == 0 {
				t.Errorf("%s wave should carry signal", tt.name)
			}
		})
	}
}

func TestGenerateWave_MinFrequencyClampEquivalence(t *testing.T) {
	rng := common.NewSeededRNG(12345)
	params := NewWaveParams(rng)
	params.MinFrequency = 0.9 // above StartFrequency, clamped down on entry

	clamped := params
	clamped.MinFrequency = params.StartFrequency

	wave1 := GenerateWave(params, common.NewSeededRNG(42))
	wave2 := GenerateWave(clamped, common.NewSeededRNG(42))

	if wave1.SampleCount != wave2.SampleCount {
		t.Fatalf("Lengths should match: %d vs %d", wave1.SampleCount, wave2.SampleCount)
	}
	for i := range wave1.Data {
		if wave1.Data[i] != wave2.Data[i] {
			t.Errorf("Sample %d differs: %f vs %f", i, wave1.Data[i], wave2.Data[i])
			break
		}
	}
}

func TestGenerateWave_MinFrequencyCutoffEndsWave(t *testing.T) {
	rng := common.NewSeededRNG(12345)

	params := NewWaveParams(rng)
	params.StartFrequency = 0.5
	params.MinFrequency = 0.2
	params.Slide = -0.3
	params.SustainTime = 1.0
	params.DecayTime = 1.0

	wave := GenerateWave(params, rng)

	// The downward slide crosses the frequency floor long before the
	// two-second sustain runs out.
	if wave.SampleCount >= SampleRate {
		t.Errorf("Slide through the frequency floor should end the wave early, got %d samples",
			wave.SampleCount)
	}
	if wave.SampleCount <= 0 {
		t.Error("Wave should still produce samples before the cutoff")
	}
}

func TestGenerateWave_DecayEnvelopeMonotonic(t *testing.T) {
	rng := common.NewSeededRNG(12345)

	params := WaveParams{
		WaveType:  Square,
		DecayTime: 0.1,
		LpfCutoff: 1.0,
	}

	wave := GenerateWave(params, rng)

	if wave.SampleCount <= 0 {
		t.Fatal("Wave should produce samples")
	}
	if wave.Data[0] <= 0 {
		t.Fatalf("First sample should be positive, got %f", wave.Data[0])
	}

	// Near-zero frequency keeps the oscillator on the high half of the
	// duty cycle, so the amplitude traces the decay envelope.
	for i := 2; i < wave.SampleCount; i++ {
		if wave.Data[i] > wave.Data[i-1]+0.0001 {
			t.Errorf("Decay should be monotonic, sample %d rose: %f -> %f",
				i, wave.Data[i-1], wave.Data[i])
			break
		}
	}
}

func TestGenerateWave_LowPassSmoothsNoise(t *testing.T) {
	rng := common.NewSeededRNG(12345)
	params := NewWaveParams(rng)
	params.WaveType = Noise
	params.RandSeed = 777

	unfiltered := GenerateWave(params, rng)

	params.LpfCutoff = 0.2
	filtered := GenerateWave(params, rng)

	if v1, v2 := roughness(unfiltered.Data), roughness(filtered.Data); v2 >= v1 {
		t.Errorf("Low-pass should smooth noise: unfiltered %f, filtered %f", v1, v2)
	}
}

func TestGenerateWave_PhaserEffect(t *testing.T) {
	rng := common.NewSeededRNG(12345)
	params := NewWaveParams(rng)
	params.PhaserOffset = 0.5
	params.PhaserSweep = 0.1

	wave := GenerateWave(params, rng)
	if wave.SampleCount <= 0 || rms(wave.Data) == 0 {
		t.Error("Wave with phaser should produce samples")
	}
}

func TestGenerateWave_VibratoEffect(t *testing.T) {
	rng := common.NewSeededRNG(12345)
	params := NewWaveParams(rng)
	params.VibratoDepth = 0.3
	params.VibratoSpeed = 0.5

	wave := GenerateWave(params, rng)
	if wave.SampleCount <= 0 || rms(wave.Data) == 0 {
		t.Error("Wave with vibrato should produce samples")
	}
}

func TestGenerateWave_RepeatEffect(t *testing.T) {
	rng := common.NewSeededRNG(12345)
	params := NewWaveParams(rng)
	params.RepeatSpeed = 0.3
	params.Slide = -0.1

	wave := GenerateWave(params, rng)
	if wave.SampleCount <= 0 || rms(wave.Data) == 0 {
		t.Error("Wave with repeat should produce samples")
	}
}

func TestGenerateWave_AllPresetsRender(t *testing.T) {
	gens := map[string]func(Rand) WaveParams{
		"PickupCoin": GenPickupCoin,
		"LaserShoot": GenLaserShoot,
		"Explosion":  GenExplosion,
		"Powerup":    GenPowerup,
		"HitHurt":    GenHitHurt,
		"Jump":       GenJump,
		"BlipSelect": GenBlipSelect,
	}

	for name, gen := range gens {
		for seed := uint32(1); seed <= 5; seed++ {
			rng := common.NewSeededRNG(seed)
			wave := GenerateWave(gen(rng), rng)

			if wave.SampleCount <= 0 {
				t.Errorf("%s seed %d: no samples", name, seed)
			}
			if rms(wave.Data) == 0 {
				t.Errorf("%s seed %d: silent wave", name, seed)
			}
		}
	}
}

// Helper functions

func floatNear(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) < float64(epsilon)
}

func rms(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func roughness(samples []float32) float64 {
	if len(samples) < 2 {
		return 0
	}
	diffSum := 0.0
	for i := 1; i < len(samples); i++ {
		diff := float64(samples[i] - samples[i-1])
		diffSum += diff * diff
	}
	return diffSum / float64(len(samples)-1)
}
