package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// .rfx file layout:
//
//	Offset | Size | Type       | Description
//	-------|------|------------|----------------------------
//	0      | 4    | char[4]    | Signature: "rFX "
//	4      | 4    | uint32     | Version: 120
//	8      | 96   | WaveParams | Wave parameters
const (
	rfxSignature = "rFX "
	rfxVersion   = 120
)

// Legacy .sfs (sfxr) versions accepted on load.
const (
	sfsVersion100 = 100
	sfsVersion101 = 101
	sfsVersion102 = 102
)

// DefaultVolume is the master volume assumed for legacy files that
// predate the volume field.
const DefaultVolume = 0.5

var (
	// ErrInvalidSignature reports a parameter file that does not carry
	// the expected signature.
	ErrInvalidSignature = errors.New("invalid parameter file signature")

	// ErrUnsupportedVersion reports a parameter file with a version this
	// package cannot read.
	ErrUnsupportedVersion = errors.New("unsupported parameter file version")
)

// SaveWaveParams writes params to a .rfx parameter file.
func SaveWaveParams(params WaveParams, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("create parameter file: %w", err)
	}

	if err := writeRFX(params, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writeRFX(params WaveParams, w io.Writer) error {
	if _, err := w.Write([]byte(rfxSignature)); err != nil {
		return fmt.Errorf("write rfx signature: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(rfxVersion)); err != nil {
		return fmt.Errorf("write rfx version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, &params); err != nil {
		return fmt.Errorf("write rfx parameters: %w", err)
	}
	return nil
}

// LoadWaveParams loads wave parameters from a .rfx or legacy .sfs file,
// dispatching on the file extension. On error the returned parameters are
// zero-valued; a file is never partially decoded. The legacy master
// volume, if any, is discarded.
func LoadWaveParams(fileName string) (WaveParams, error) {
	if strings.EqualFold(filepath.Ext(fileName), ".sfs") {
		params, _, err := LoadSFS(fileName)
		return params, err
	}
	return LoadRFX(fileName)
}

// LoadRFX loads wave parameters from a .rfx file.
func LoadRFX(fileName string) (WaveParams, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return WaveParams{}, fmt.Errorf("open parameter file: %w", err)
	}
	defer f.Close()

	var signature [4]byte
	if _, err := io.ReadFull(f, signature[:]); err != nil {
		return WaveParams{}, fmt.Errorf("read rfx signature: %w", err)
	}
	if string(signature[:]) != rfxSignature {
		return WaveParams{}, fmt.Errorf("%s: %w", fileName, ErrInvalidSignature)
	}

	var version uint32
	if err := binary.Read(f, binary.LittleEndian, &version); err != nil {
		return WaveParams{}, fmt.Errorf("read rfx version: %w", err)
	}
	if version != rfxVersion {
		return WaveParams{}, fmt.Errorf("%s: version %d: %w", fileName, version, ErrUnsupportedVersion)
	}

	var params WaveParams
	if err := binary.Read(f, binary.LittleEndian, &params); err != nil {
		return WaveParams{}, fmt.Errorf("read rfx parameters: %w", err)
	}

	return params, nil
}

// LoadSFS loads wave parameters from a legacy .sfs (sfxr interchange)
// file and returns them together with the file's master volume. Files
// before version 102 carry no volume and report DefaultVolume. Field
// presence is version-gated; two legacy-only fields (vibrato phase delay
// and a filter-enabled flag) are read and discarded.
func LoadSFS(fileName string) (WaveParams, float32, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return WaveParams{}, 0, fmt.Errorf("open parameter file: %w", err)
	}
	defer f.Close()

	d := &sfsDecoder{r: f}

	version := d.int32()
	if d.err == nil && version != sfsVersion100 && version != sfsVersion101 && version != sfsVersion102 {
		return WaveParams{}, 0, fmt.Errorf("%s: version %d: %w", fileName, version, ErrUnsupportedVersion)
	}

	var params WaveParams
	volume := float32(DefaultVolume)

	params.WaveType = WaveType(d.int32())

	if version == sfsVersion102 {
		volume = d.float32()
	}

	params.StartFrequency = d.float32()
	params.MinFrequency = d.float32()
	params.Slide = d.float32()

	if version >= sfsVersion101 {
		params.DeltaSlide = d.float32()
	}

	params.SquareDuty = d.float32()
	params.DutySweep = d.float32()

	params.VibratoDepth = d.float32()
	params.VibratoSpeed = d.float32()
	d.float32() // vibrato phase delay, unused

	params.AttackTime = d.float32()
	params.SustainTime = d.float32()
	params.DecayTime = d.float32()
	params.SustainPunch = d.float32()

	d.byte() // filter-enabled flag, unused

	params.LpfResonance = d.float32()
	params.LpfCutoff = d.float32()
	params.LpfCutoffSweep = d.float32()
	params.HpfCutoff = d.float32()
	params.HpfCutoffSweep = d.float32()

	params.PhaserOffset = d.float32()
	params.PhaserSweep = d.float32()
	params.RepeatSpeed = d.float32()

	if version >= sfsVersion101 {
		params.ChangeSpeed = d.float32()
		params.ChangeAmount = d.float32()
	}

	if d.err != nil {
		return WaveParams{}, 0, fmt.Errorf("read sfs parameters: %w", d.err)
	}

	return params, volume, nil
}

// sfsDecoder reads sequential little-endian fields, remembering the first
// error so a truncated file yields no partial parameter set.
type sfsDecoder struct {
	r   io.Reader
	err error
}

func (d *sfsDecoder) int32() int32 {
	var v int32
	d.read(&v)
	return v
}

func (d *sfsDecoder) float32() float32 {
	var v float32
	d.read(&v)
	return v
}

func (d *sfsDecoder) byte() byte {
	var v byte
	d.read(&v)
	return v
}

func (d *sfsDecoder) read(v interface{}) {
	if d.err != nil {
		return
	}
	d.err = binary.Read(d.r, binary.LittleEndian, v)
}
