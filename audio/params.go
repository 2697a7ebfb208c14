package audio

// WaveType selects the base oscillator waveform.
type WaveType int32

const (
	Square   WaveType = 0
	Sawtooth WaveType = 1
	Sine     WaveType = 2
	Noise    WaveType = 3
)

func (w WaveType) String() string {
	switch w {
	case Square:
		return "Square"
	case Sawtooth:
		return "Sawtooth"
	case Sine:
		return "Sine"
	case Noise:
		return "Noise"
	default:
		return "Unknown"
	}
}

// Rand is the random source threaded through the generators and the
// synthesis engine. common.SeededRNG satisfies it; callers that need
// reproducible output pass their own seeded instance.
type Rand interface {
	// Seed reseeds the source.
	Seed(seed uint32)
	// Float returns a uniform float32 in [0, max).
	Float(max float32) float32
	// IntRange returns a uniform integer in the inclusive range [min, max].
	IntRange(min, max int) int
}

// WaveParams holds all configurable parameters for sound synthesis.
// The field layout is fixed: two 32-bit integers followed by 22 32-bit
// floats (96 bytes), matching the binary image stored in .rfx files.
type WaveParams struct {
	// Random seed used to generate the wave (1..0xFFFE, 0 means unseeded)
	RandSeed int32

	// Base oscillator waveform
	WaveType WaveType

	// Wave envelope parameters
	AttackTime   float32
	SustainTime  float32
	SustainPunch float32
	DecayTime    float32

	// Frequency parameters
	StartFrequency float32
	MinFrequency   float32
	Slide          float32
	DeltaSlide     float32
	VibratoDepth   float32
	VibratoSpeed   float32

	// Tone change (arpeggio) parameters
	ChangeAmount float32
	ChangeSpeed  float32

	// Square wave parameters
	SquareDuty float32
	DutySweep  float32

	// Repeat parameters
	RepeatSpeed float32

	// Phaser parameters
	PhaserOffset float32
	PhaserSweep  float32

	// Filter parameters
	LpfCutoff      float32 // 1.0 disables the low-pass filter
	LpfCutoffSweep float32
	LpfResonance   float32
	HpfCutoff      float32
	HpfCutoffSweep float32
}

// NewWaveParams returns wave parameters reset to their defaults, with a
// fresh random seed drawn from r. The source is reseeded with the drawn
// seed so any randomized edits that follow are reproducible.
func NewWaveParams(r Rand) WaveParams {
	seed := int32(r.IntRange(0x1, 0xFFFE))
	r.Seed(uint32(seed))

	return WaveParams{
		RandSeed:       seed,
		WaveType:       Square,
		SustainTime:    0.3,
		DecayTime:      0.4,
		StartFrequency: 0.3,
		LpfCutoff:      1.0,
	}
}
