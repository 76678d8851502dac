package config

import "github.com/spf13/pflag"

// Overrides holds command-line settings that take priority over the config file.
type Overrides struct {
	ConfigPath   string
	Debug        bool
	Windowed     bool
	Fullscreen   bool
	Width        int
	Height       int
	CornerLayout string
	LogFile      string
}

// Bind registers the override flags on fs.
func (o *Overrides) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&o.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&o.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&o.Width, "width", 0, "Window width")
	fs.IntVar(&o.Height, "height", 0, "Window height")
	fs.StringVar(&o.CornerLayout, "corner-layout", "", "Face corner layout: standard or legacy")
	fs.StringVar(&o.LogFile, "log-file", "", "Write logs to this file as well")
}

// apply applies CLI overrides to the config.
func (o *Overrides) apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.Windowed {
		cfg.Window.Fullscreen = false
	}
	if o.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if o.Width > 0 {
		cfg.Window.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Window.Height = o.Height
	}
	if o.CornerLayout != "" {
		cfg.Mesh.CornerLayout = o.CornerLayout
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
}
