package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings configures a preview chart: columns sweep roughness, rows sweep
// anisotropy starting from an isotropic row.
type Settings struct {
	CellSize    int `json:"cell_size"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`

	Exposure float32 `json:"exposure"`
	Labels   bool    `json:"labels"`

	Surface         SurfaceDesc `json:"surface"`
	RoughnessSteps  int         `json:"roughness_steps"`
	AnisotropySteps int         `json:"anisotropy_steps"`
	TangentRotation float32     `json:"tangent_rotation_deg"`

	Lights []Light `json:"lights"`
}

func DefaultSettings() Settings {
	return Settings{
		CellSize:        96,
		Supersample:     2,
		Exposure:        1,
		Labels:          true,
		Surface:         DefaultSurface(),
		RoughnessSteps:  6,
		AnisotropySteps: 3,
		Lights: []Light{
			{
				Type:      LightTypeDirectional,
				Direction: mgl32.Vec3{-0.4, 0.5, 0.77},
				Color:     mgl32.Vec3{1, 0.96, 0.9},
				Intensity: 3,
			},
			{
				Type:      LightTypePoint,
				Position:  mgl32.Vec3{2, -1, 2},
				Color:     mgl32.Vec3{0.4, 0.55, 1},
				Intensity: 6,
				Range:     10,
			},
		},
	}
}

// LoadSettings reads a JSON file over DefaultSettings. Fields missing from
// the file keep their defaults; a "lights" array replaces the default lights.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings: %w", err)
	}
	defaultLights := s.Lights
	s.Lights = nil
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if s.Lights == nil {
		s.Lights = defaultLights
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	switch {
	case s.CellSize < 8:
		return fmt.Errorf("%w: cell_size %d below 8", ErrInvalidSettings, s.CellSize)
	case s.Supersample < 1 || s.Supersample > 8:
		return fmt.Errorf("%w: supersample %d outside 1..8", ErrInvalidSettings, s.Supersample)
	case s.RoughnessSteps < 1:
		return fmt.Errorf("%w: roughness_steps must be positive", ErrInvalidSettings)
	case s.AnisotropySteps < 1:
		return fmt.Errorf("%w: anisotropy_steps must be positive", ErrInvalidSettings)
	case s.Exposure <= 0:
		return fmt.Errorf("%w: exposure must be positive", ErrInvalidSettings)
	case len(s.Lights) == 0:
		return fmt.Errorf("%w: no lights", ErrInvalidSettings)
	}
	for i, l := range s.Lights {
		if l.Type == LightTypeDirectional && l.Direction.Len() == 0 {
			return fmt.Errorf("%w: light %d has no direction", ErrInvalidSettings, i)
		}
		if l.Intensity < 0 {
			return fmt.Errorf("%w: light %d has negative intensity", ErrInvalidSettings, i)
		}
	}
	return nil
}

// Cell returns the surface for a chart cell.
func (s Settings) Cell(row, col int) SurfaceDesc {
	d := s.Surface
	d.PerceptualRoughness = float32(col+1) / float32(s.RoughnessSteps)
	if s.AnisotropySteps > 1 {
		d.Anisotropy = float32(row) / float32(s.AnisotropySteps-1)
	}
	return d
}
