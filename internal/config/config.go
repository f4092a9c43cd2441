// Package config handles tool configuration loading and management.
package config

// Config holds all vbake settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Bake     BakeConfig     `yaml:"bake"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds settings shared with the rendering side.
type GraphicsConfig struct {
	// SolidFaceColor bakes one averaged color per triangle instead of an
	// independent sample per vertex.
	SolidFaceColor bool `yaml:"solid_face_color"`
	// BackfaceCulling is consumed by the renderer, not by baking; it is
	// carried so one config file serves both.
	BackfaceCulling bool `yaml:"backface_culling"`
}

// BakeConfig holds conversion settings.
type BakeConfig struct {
	// Workers is the number of meshes baked concurrently. 0 or 1 bakes
	// sequentially.
	Workers int `yaml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			SolidFaceColor:  false,
			BackfaceCulling: true,
		},
		Bake: BakeConfig{
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
