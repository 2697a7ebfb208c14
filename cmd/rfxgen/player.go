package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/simukka/rfxgen/audio"
)

// PlayWave plays a generated wave on the default audio device and blocks
// until playback finishes. volume scales the samples in [0,1].
func PlayWave(wave *audio.Wave, volume float32) error {
	op := &oto.NewContextOptions{
		SampleRate:   wave.SampleRate,
		ChannelCount: wave.Channels,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	scaled := *wave
	if volume != 1 {
		scaled.Data = make([]float32, len(wave.Data))
		for i, s := range wave.Data {
			scaled.Data[i] = s * volume
		}
	}

	player := ctx.NewPlayer(bytes.NewReader(scaled.Bytes()))
	player.Play()

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	return player.Close()
}
