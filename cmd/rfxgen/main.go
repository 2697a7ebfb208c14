package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/simukka/rfxgen/audio"
	"github.com/simukka/rfxgen/common"
	"github.com/simukka/rfxgen/internal/config"
	"github.com/simukka/rfxgen/internal/logging"
)

var presets = map[string]func(audio.Rand) audio.WaveParams{
	"coin":      audio.GenPickupCoin,
	"laser":     audio.GenLaserShoot,
	"explosion": audio.GenExplosion,
	"powerup":   audio.GenPowerup,
	"hit":       audio.GenHitHurt,
	"jump":      audio.GenJump,
	"blip":      audio.GenBlipSelect,
}

func main() {
	var (
		inputFile  = flag.String("input", "", "input parameters file (.rfx or .sfs)")
		outputFile = flag.String("output", "output.wav", "output wave file (.wav)")
		paramsFile = flag.String("save", "", "save generated parameters to a .rfx file")
		format     = flag.String("format", "", "export format: sampleRate,sampleSize,channels (e.g. 44100,16,1)")
		preset     = flag.String("preset", "", "generate from preset: coin|laser|explosion|powerup|hit|jump|blip|random")
		mutations  = flag.Int("mutate", 0, "apply this many mutation passes to the parameters")
		seed       = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
		play       = flag.Bool("play", false, "play the generated wave")
		configFile = flag.String("config", "rfxgen.yaml", "configuration file")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	log := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		log.Warn("config load failed, using defaults", "error", err)
	}

	if *format != "" {
		if err := parseFormat(*format, &cfg.Export); err != nil {
			log.Error("invalid format", "format", *format, "error", err)
			os.Exit(1)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := common.NewSeededRNG(uint32(*seed))

	params, err := resolveParams(*inputFile, *preset, rng)
	if err != nil {
		log.Error("parameter setup failed", "error", err)
		os.Exit(1)
	}

	for i := 0; i < *mutations; i++ {
		params = audio.GenMutate(params, rng)
	}

	wave := audio.GenerateWave(params, rng)
	log.Info("wave generated",
		"waveType", params.WaveType.String(),
		"samples", wave.SampleCount,
		"duration", wave.Duration())

	if *paramsFile != "" {
		if err := audio.SaveWaveParams(params, *paramsFile); err != nil {
			log.Error("parameters save failed", "file", *paramsFile, "error", err)
			os.Exit(1)
		}
		log.Info("parameters saved", "file", *paramsFile)
	}

	if *outputFile != "" {
		export := wave
		export.Format(cfg.Export.SampleRate, cfg.Export.SampleSize, cfg.Export.Channels)
		if err := audio.ExportWAV(&export, *outputFile); err != nil {
			log.Error("wave export failed", "file", *outputFile, "error", err)
			os.Exit(1)
		}
		log.Info("wave exported",
			"file", *outputFile,
			"sampleRate", export.SampleRate,
			"sampleSize", export.SampleSize,
			"channels", export.Channels)
	}

	if *play && cfg.Playback.Enabled {
		if err := PlayWave(&wave, cfg.Playback.Volume); err != nil {
			log.Error("playback failed", "error", err)
			os.Exit(1)
		}
	}
}

// resolveParams picks the starting parameters: an input file when given,
// a preset otherwise, defaults when neither.
func resolveParams(inputFile, preset string, rng audio.Rand) (audio.WaveParams, error) {
	if inputFile != "" {
		return audio.LoadWaveParams(inputFile)
	}

	switch preset {
	case "":
		return audio.NewWaveParams(rng), nil
	case "random":
		return audio.GenRandomize(audio.NewWaveParams(rng), rng), nil
	default:
		gen, ok := presets[preset]
		if !ok {
			return audio.WaveParams{}, fmt.Errorf("unknown preset: %s", preset)
		}
		return gen(rng), nil
	}
}

func parseFormat(s string, export *config.ExportConfig) error {
	var rate, size, channels int
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("expected sampleRate,sampleSize,channels")
	}
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &rate, &size, &channels); err != nil {
		return err
	}
	export.SampleRate = rate
	export.SampleSize = size
	export.Channels = channels
	return export.Validate()
}
