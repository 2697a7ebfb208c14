package audio

import "math"

const (
	// SampleRate is the fixed internal synthesis rate in Hz.
	SampleRate = 44100

	// MaxWaveSeconds caps the generated wave length.
	MaxWaveSeconds = 10

	supersampling = 8
	phaserTaps    = 1024
	noiseTaps     = 32

	// Scales the averaged supersample down into [-1, 1].
	sampleScale = 0.2
)

// GenerateWave synthesizes a wave from the given parameters. Output is
// 44100 Hz, 32-bit float, mono, at most MaxWaveSeconds long; generation
// stops early when the volume envelope completes or the frequency slide
// falls below the minimum frequency cutoff.
//
// If params.RandSeed is nonzero, r is reseeded with it before synthesis so
// identical parameters always produce an identical wave. All synthesis
// state is local to the call; concurrent calls with independent sources
// are safe.
func GenerateWave(params WaveParams, r Rand) Wave {
	if params.RandSeed != 0 {
		r.Seed(uint32(params.RandSeed))
	}

	// Cross-field safety clamps; out-of-range single fields are consumed
	// as-is.
	if params.MinFrequency > params.StartFrequency {
		params.MinFrequency = params.StartFrequency
	}
	if params.Slide < params.DeltaSlide {
		params.Slide = params.DeltaSlide
	}

	var (
		phase  int
		period int

		fperiod    float64
		fmaxperiod float64
		fslide     float64
		fdslide    float64

		squareDuty  float32
		squareSlide float32

		envelopeStage  int
		envelopeTime   int
		envelopeLength [3]int
		envelopeVolume float32

		fphase       float32
		fdphase      float32
		iphase       int
		phaserBuffer [phaserTaps]float32
		ipp          int

		noiseBuffer [noiseTaps]float32

		fltp   float32
		fltdp  float32
		fltw   float32
		fltwd  float32
		fltdmp float32
		fltphp float32
		flthp  float32
		flthpd float32

		vibratoPhase     float32
		vibratoSpeed     float32
		vibratoAmplitude float32

		repeatTime  int
		repeatLimit int

		arpeggioTime       int
		arpeggioLimit      int
		arpeggioModulation float64
	)

	// Pitch, slide, duty and arpeggio state is re-derived both at start
	// and at every repeat boundary; envelope, filters, phaser and the
	// noise table are initialized once.
	resetCycle := func() {
		sf := float64(params.StartFrequency)
		fperiod = 100.0 / (sf*sf + 0.001)
		period = int(fperiod)
		mf := float64(params.MinFrequency)
		fmaxperiod = 100.0 / (mf*mf + 0.001)

		sl := float64(params.Slide)
		fslide = 1.0 - sl*sl*sl*0.01
		ds := float64(params.DeltaSlide)
		fdslide = -ds * ds * ds * 0.000001

		squareDuty = 0.5 - params.SquareDuty*0.5
		squareSlide = -params.DutySweep * 0.00005

		ca := float64(params.ChangeAmount)
		if ca >= 0 {
			arpeggioModulation = 1.0 - ca*ca*0.9
		} else {
			arpeggioModulation = 1.0 + ca*ca*10.0
		}

		arpeggioTime = 0
		arpeggioLimit = int(float64(sq(1.0-params.ChangeSpeed))*20000 + 32)
		if params.ChangeSpeed == 1.0 { // exact comparison, 1.0 disables
			arpeggioLimit = 0
		}
	}
	resetCycle()

	fltw = cube(params.LpfCutoff) * 0.1
	fltwd = 1.0 + params.LpfCutoffSweep*0.0001
	fltdmp = 5.0 / (1.0 + sq(params.LpfResonance)*20.0) * (0.01 + fltw)
	if fltdmp > 0.8 {
		fltdmp = 0.8
	}
	flthp = sq(params.HpfCutoff) * 0.1
	flthpd = 1.0 + params.HpfCutoffSweep*0.0003

	vibratoSpeed = sq(params.VibratoSpeed) * 0.01
	vibratoAmplitude = params.VibratoDepth * 0.5

	envelopeLength[0] = int(params.AttackTime * params.AttackTime * 100000.0)
	envelopeLength[1] = int(params.SustainTime * params.SustainTime * 100000.0)
	envelopeLength[2] = int(params.DecayTime * params.DecayTime * 100000.0)

	fphase = sq(params.PhaserOffset) * 1020.0
	if params.PhaserOffset < 0 {
		fphase = -fphase
	}
	fdphase = sq(params.PhaserSweep)
	if params.PhaserSweep < 0 {
		fdphase = -fdphase
	}
	iphase = abs(int(fphase))

	for i := range noiseBuffer {
		noiseBuffer[i] = r.Float(2.0) - 1.0
	}

	repeatLimit = int(float64(sq(1.0-params.RepeatSpeed))*20000 + 32)
	if params.RepeatSpeed == 0.0 { // exact comparison, 0.0 disables
		repeatLimit = 0
	}

	buffer := make([]float32, MaxWaveSeconds*SampleRate)
	sampleCount := len(buffer)
	generating := true

	for i := 0; i < len(buffer); i++ {
		if !generating {
			sampleCount = i
			break
		}

		// Repeat: restart pitch/slide/duty/arpeggio state
		repeatTime++
		if repeatLimit != 0 && repeatTime >= repeatLimit {
			repeatTime = 0
			resetCycle()
		}

		// Arpeggio: one-time pitch jump after the configured delay
		arpeggioTime++
		if arpeggioLimit != 0 && arpeggioTime >= arpeggioLimit {
			arpeggioLimit = 0
			fperiod *= arpeggioModulation
		}

		// Frequency slide
		fslide += fdslide
		fperiod *= fslide

		if fperiod > fmaxperiod {
			fperiod = fmaxperiod
			if params.MinFrequency > 0 {
				generating = false
			}
		}

		// Vibrato
		rfperiod := fperiod
		if vibratoAmplitude > 0 {
			vibratoPhase += vibratoSpeed
			rfperiod = fperiod * (1.0 + math.Sin(float64(vibratoPhase))*float64(vibratoAmplitude))
		}

		period = int(rfperiod)
		if period < 8 {
			period = 8
		}

		// Square duty sweep
		squareDuty += squareSlide
		if squareDuty < 0 {
			squareDuty = 0
		}
		if squareDuty > 0.5 {
			squareDuty = 0.5
		}

		// Volume envelope
		envelopeTime++
		if envelopeTime > envelopeLength[envelopeStage] {
			envelopeTime = 0
			envelopeStage++

			if envelopeStage == 3 {
				generating = false
			}
		}

		switch envelopeStage {
		case 0:
			envelopeVolume = stageFrac(envelopeTime, envelopeLength[0])
		case 1:
			envelopeVolume = 1.0 + (1.0-stageFrac(envelopeTime, envelopeLength[1]))*2.0*params.SustainPunch
		case 2:
			envelopeVolume = 1.0 - stageFrac(envelopeTime, envelopeLength[2])
		}

		// Phaser step
		fphase += fdphase
		iphase = abs(int(fphase))
		if iphase > phaserTaps-1 {
			iphase = phaserTaps - 1
		}

		// High-pass cutoff sweep
		if flthpd != 0 {
			flthp *= flthpd
			if flthp < 0.00001 {
				flthp = 0.00001
			}
			if flthp > 0.1 {
				flthp = 0.1
			}
		}

		var ssample float32

		for si := 0; si < supersampling; si++ {
			var sample float32

			phase++
			if phase >= period {
				phase %= period

				if params.WaveType == Noise {
					for n := range noiseBuffer {
						noiseBuffer[n] = r.Float(2.0) - 1.0
					}
				}
			}

			// Base waveform
			fp := float32(phase) / float32(period)

			switch params.WaveType {
			case Square:
				if fp < squareDuty {
					sample = 0.5
				} else {
					sample = -0.5
				}
			case Sawtooth:
				sample = 1.0 - fp*2
			case Sine:
				sample = float32(math.Sin(float64(fp) * 2 * math.Pi))
			case Noise:
				sample = noiseBuffer[phase*noiseTaps/period]
			}

			// Low-pass filter
			pp := fltp
			fltw *= fltwd
			if fltw < 0 {
				fltw = 0
			}
			if fltw > 0.1 {
				fltw = 0.1
			}

			if params.LpfCutoff != 1.0 { // exact comparison, 1.0 bypasses
				fltdp += (sample - fltp) * fltw
				fltdp -= fltdp * fltdmp
			} else {
				fltp = sample
				fltdp = 0
			}
			fltp += fltdp

			// High-pass filter
			fltphp += fltp - pp
			fltphp -= fltphp * flthp
			sample = fltphp

			// Phaser
			phaserBuffer[ipp&(phaserTaps-1)] = sample
			sample += phaserBuffer[(ipp-iphase+phaserTaps)&(phaserTaps-1)]
			ipp = (ipp + 1) & (phaserTaps - 1)

			ssample += sample * envelopeVolume
		}

		ssample = (ssample / supersampling) * sampleScale

		if ssample > 1.0 {
			ssample = 1.0
		}
		if ssample < -1.0 {
			ssample = -1.0
		}

		buffer[i] = ssample
	}

	return Wave{
		SampleCount: sampleCount,
		SampleRate:  SampleRate,
		SampleSize:  32,
		Channels:    1,
		Data:        buffer[:sampleCount:sampleCount],
	}
}

// stageFrac returns the progress through an envelope stage. A zero-length
// stage reads as already complete, which keeps the volume finite when a
// stage time is zero.
func stageFrac(t, length int) float32 {
	if length <= 0 {
		return 1.0
	}
	return float32(t) / float32(length)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
