// Package config handles viewer configuration loading and management.
package config

import "github.com/Faultbox/objview/internal/engine/lighting"

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Projection ProjectionConfig `yaml:"projection"`
	Mesh       MeshConfig       `yaml:"mesh"`
	View       ViewConfig       `yaml:"view"`
	Lights     []LightConfig    `yaml:"lights"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// ProjectionConfig holds the perspective frustum.
type ProjectionConfig struct {
	FovY float32 `yaml:"fov_y"` // degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// MeshConfig holds the mesh source.
type MeshConfig struct {
	Path         string `yaml:"path"`
	CornerLayout string `yaml:"corner_layout"` // "standard" or "legacy"
}

// ViewConfig holds the initial model placement.
type ViewConfig struct {
	Position [3]float32 `yaml:"position"`
}

// LightConfig describes one point light.
type LightConfig struct {
	Position [3]float32 `yaml:"position"`
	Ambient  [3]float32 `yaml:"ambient"`
	Diffuse  [3]float32 `yaml:"diffuse"`
	Specular [3]float32 `yaml:"specular"`
}

// ScreenshotConfig holds frame capture settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "objview",
			Width:      1600,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
		},
		Projection: ProjectionConfig{
			FovY: 60,
			Near: 0.1,
			Far:  20,
		},
		Mesh: MeshConfig{
			Path:         "mba1.obj",
			CornerLayout: "standard",
		},
		View: ViewConfig{
			Position: [3]float32{0, 0, -5},
		},
		Lights: defaultLights(),
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "objview",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

func defaultLights() []LightConfig {
	stock := lighting.DefaultLights()
	lights := make([]LightConfig, len(stock))
	for i, l := range stock {
		lights[i] = LightConfig{
			Position: l.Position,
			Ambient:  l.Ambient,
			Diffuse:  l.Diffuse,
			Specular: l.Specular,
		}
	}
	return lights
}
