package audio

// Preset generators. Each starts from NewWaveParams and overrides a
// randomized subset of fields; the shapes and ranges follow the classic
// sfxr categories.

func sq(x float32) float32 {
	return x * x
}

func cube(x float32) float32 {
	return x * x * x
}

func pow5(x float32) float32 {
	return x * x * x * x * x
}

func coinFlip(r Rand) bool {
	return r.IntRange(0, 1) == 1
}

// GenPickupCoin generates parameters for a pickup/coin sound.
func GenPickupCoin(r Rand) WaveParams {
	p := NewWaveParams(r)

	p.StartFrequency = 0.4 + r.Float(0.5)
	p.AttackTime = 0.0
	p.SustainTime = r.Float(0.1)
	p.DecayTime = 0.1 + r.Float(0.4)
	p.SustainPunch = 0.3 + r.Float(0.3)

	if coinFlip(r) {
		p.ChangeSpeed = 0.5 + r.Float(0.2)
		p.ChangeAmount = 0.2 + r.Float(0.4)
	}

	return p
}

// GenLaserShoot generates parameters for a laser/shoot sound.
func GenLaserShoot(r Rand) WaveParams {
	p := NewWaveParams(r)

	p.WaveType = WaveType(r.IntRange(0, 2))
	if p.WaveType == Sine && coinFlip(r) {
		p.WaveType = WaveType(r.IntRange(0, 1))
	}

	p.StartFrequency = 0.5 + r.Float(0.5)
	p.MinFrequency = p.StartFrequency - 0.2 - r.Float(0.6)
	if p.MinFrequency < 0.2 {
		p.MinFrequency = 0.2
	}

	p.Slide = -0.15 - r.Float(0.2)

	if r.IntRange(0, 2) == 0 {
		p.StartFrequency = 0.3 + r.Float(0.6)
		p.MinFrequency = r.Float(0.1)
		p.Slide = -0.35 - r.Float(0.3)
	}

	if coinFlip(r) {
		p.SquareDuty = r.Float(0.5)
		p.DutySweep = r.Float(0.2)
	} else {
		p.SquareDuty = 0.4 + r.Float(0.5)
		p.DutySweep = -r.Float(0.7)
	}

	p.AttackTime = 0.0
	p.SustainTime = 0.1 + r.Float(0.2)
	p.DecayTime = r.Float(0.4)

	if coinFlip(r) {
		p.SustainPunch = r.Float(0.3)
	}

	if r.IntRange(0, 2) == 0 {
		p.PhaserOffset = r.Float(0.2)
		p.PhaserSweep = -r.Float(0.2)
	}

	if coinFlip(r) {
		p.HpfCutoff = r.Float(0.3)
	}

	return p
}

// GenExplosion generates parameters for an explosion sound.
func GenExplosion(r Rand) WaveParams {
	p := NewWaveParams(r)

	p.WaveType = Noise

	if coinFlip(r) {
		p.StartFrequency = 0.1 + r.Float(0.4)
		p.Slide = -0.1 + r.Float(0.4)
	} else {
		p.StartFrequency = 0.2 + r.Float(0.7)
		p.Slide = -0.2 - r.Float(0.2)
	}

	p.StartFrequency *= p.StartFrequency

	if r.IntRange(0, 4) == 0 {
		p.Slide = 0.0
	}
	if r.IntRange(0, 2) == 0 {
		p.RepeatSpeed = 0.3 + r.Float(0.5)
	}

	p.AttackTime = 0.0
	p.SustainTime = 0.1 + r.Float(0.3)
	p.DecayTime = r.Float(0.5)

	if r.IntRange(0, 1) == 0 {
		p.PhaserOffset = -0.3 + r.Float(0.9)
		p.PhaserSweep = -r.Float(0.3)
	}

	p.SustainPunch = 0.2 + r.Float(0.6)

	if coinFlip(r) {
		p.VibratoDepth = r.Float(0.7)
		p.VibratoSpeed = r.Float(0.6)
	}

	if r.IntRange(0, 2) == 0 {
		p.ChangeSpeed = 0.6 + r.Float(0.3)
		p.ChangeAmount = 0.8 - r.Float(1.6)
	}

	return p
}

// GenPowerup generates parameters for a powerup sound.
func GenPowerup(r Rand) WaveParams {
	p := NewWaveParams(r)

	if coinFlip(r) {
		p.WaveType = Sawtooth
	} else {
		p.SquareDuty = r.Float(0.6)
	}

	if coinFlip(r) {
		p.StartFrequency = 0.2 + r.Float(0.3)
		p.Slide = 0.1 + r.Float(0.4)
		p.RepeatSpeed = 0.4 + r.Float(0.4)
	} else {
		p.StartFrequency = 0.2 + r.Float(0.3)
		p.Slide = 0.05 + r.Float(0.2)

		if coinFlip(r) {
			p.VibratoDepth = r.Float(0.7)
			p.VibratoSpeed = r.Float(0.6)
		}
	}

	p.AttackTime = 0.0
	p.SustainTime = r.Float(0.4)
	p.DecayTime = 0.1 + r.Float(0.4)

	return p
}

// GenHitHurt generates parameters for a hit/hurt sound.
func GenHitHurt(r Rand) WaveParams {
	p := NewWaveParams(r)

	p.WaveType = WaveType(r.IntRange(0, 2))
	if p.WaveType == Sine {
		p.WaveType = Noise
	}
	if p.WaveType == Square {
		p.SquareDuty = r.Float(0.6)
	}

	p.StartFrequency = 0.2 + r.Float(0.6)
	p.Slide = -0.3 - r.Float(0.4)
	p.AttackTime = 0.0
	p.SustainTime = r.Float(0.1)
	p.DecayTime = 0.1 + r.Float(0.2)

	if coinFlip(r) {
		p.HpfCutoff = r.Float(0.3)
	}

	return p
}

// GenJump generates parameters for a jump sound.
func GenJump(r Rand) WaveParams {
	p := NewWaveParams(r)

	p.WaveType = Square
	p.SquareDuty = r.Float(0.6)
	p.StartFrequency = 0.3 + r.Float(0.3)
	p.Slide = 0.1 + r.Float(0.2)
	p.AttackTime = 0.0
	p.SustainTime = 0.1 + r.Float(0.3)
	p.DecayTime = 0.1 + r.Float(0.2)

	if coinFlip(r) {
		p.HpfCutoff = r.Float(0.3)
	}
	if coinFlip(r) {
		p.LpfCutoff = 1.0 - r.Float(0.6)
	}

	return p
}

// GenBlipSelect generates parameters for a blip/select sound.
func GenBlipSelect(r Rand) WaveParams {
	p := NewWaveParams(r)

	p.WaveType = WaveType(r.IntRange(0, 1))
	if p.WaveType == Square {
		p.SquareDuty = r.Float(0.6)
	}
	p.StartFrequency = 0.2 + r.Float(0.4)
	p.AttackTime = 0.0
	p.SustainTime = 0.1 + r.Float(0.1)
	p.DecayTime = r.Float(0.2)
	p.HpfCutoff = 0.1

	return p
}

// GenRandomize redraws every tonal field of p with shaping exponents that
// bias the distribution towards usable sounds. The wave type is kept and
// the minimum frequency is cleared; a fresh seed is drawn so the result
// reproduces.
func GenRandomize(p WaveParams, r Rand) WaveParams {
	p.RandSeed = int32(r.IntRange(0, 0xFFFE))

	p.StartFrequency = sq(r.Float(2) - 1)
	if coinFlip(r) {
		p.StartFrequency = cube(r.Float(2)-1) + 0.5
	}

	p.MinFrequency = 0.0
	p.Slide = pow5(r.Float(2) - 1)

	// Extreme pitch/slide combinations run away or die instantly; flip the
	// slide direction to keep them audible.
	if p.StartFrequency > 0.7 && p.Slide > 0.2 {
		p.Slide = -p.Slide
	}
	if p.StartFrequency < 0.2 && p.Slide < -0.05 {
		p.Slide = -p.Slide
	}

	p.DeltaSlide = cube(r.Float(2) - 1)
	p.SquareDuty = r.Float(2) - 1
	p.DutySweep = cube(r.Float(2) - 1)
	p.VibratoDepth = cube(r.Float(2) - 1)
	p.VibratoSpeed = r.Float(2) - 1
	p.AttackTime = cube(r.Float(2) - 1)
	p.SustainTime = sq(r.Float(2) - 1)
	p.DecayTime = r.Float(2) - 1
	p.SustainPunch = sq(r.Float(0.8))

	// Guard against inaudibly short envelopes.
	if p.AttackTime+p.SustainTime+p.DecayTime < 0.2 {
		p.SustainTime += 0.2 + r.Float(0.3)
		p.DecayTime += 0.2 + r.Float(0.3)
	}

	p.LpfResonance = r.Float(2) - 1
	p.LpfCutoff = 1.0 - cube(r.Float(1))
	p.LpfCutoffSweep = cube(r.Float(2) - 1)

	if p.LpfCutoff < 0.1 && p.LpfCutoffSweep < -0.05 {
		p.LpfCutoffSweep = -p.LpfCutoffSweep
	}

	p.HpfCutoff = pow5(r.Float(1))
	p.HpfCutoffSweep = pow5(r.Float(2) - 1)
	p.PhaserOffset = cube(r.Float(2) - 1)
	p.PhaserSweep = cube(r.Float(2) - 1)
	p.RepeatSpeed = r.Float(2) - 1
	p.ChangeSpeed = r.Float(2) - 1
	p.ChangeAmount = r.Float(2) - 1

	return p
}

// GenMutate nudges each tonal field of p by a small random offset with 50%
// probability per field. The seed, wave type and minimum frequency are left
// alone; out-of-range results are tolerated by the synthesis clamps.
func GenMutate(p WaveParams, r Rand) WaveParams {
	mutate := func(v *float32) {
		if coinFlip(r) {
			*v += r.Float(0.1) - 0.05
		}
	}

	mutate(&p.StartFrequency)
	mutate(&p.Slide)
	mutate(&p.DeltaSlide)
	mutate(&p.SquareDuty)
	mutate(&p.DutySweep)
	mutate(&p.VibratoDepth)
	mutate(&p.VibratoSpeed)
	mutate(&p.AttackTime)
	mutate(&p.SustainTime)
	mutate(&p.DecayTime)
	mutate(&p.SustainPunch)
	mutate(&p.LpfResonance)
	mutate(&p.LpfCutoff)
	mutate(&p.LpfCutoffSweep)
	mutate(&p.HpfCutoff)
	mutate(&p.HpfCutoffSweep)
	mutate(&p.PhaserOffset)
	mutate(&p.PhaserSweep)
	mutate(&p.RepeatSpeed)
	mutate(&p.ChangeSpeed)
	mutate(&p.ChangeAmount)

	return p
}
