package config

import "sort"

// Presets are named starting points; GetPreset hands out copies.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"small": with(func(c *Config) {
		c.Screen.Width, c.Screen.Height = 960, 540
	}),
	"rest": with(func(c *Config) {
		c.Screen.Width, c.Screen.Height = 340, 340
		c.Init = "rest"
		c.Seed = 1
		c.Run.Frames = 600
	}),
	"tiny": with(func(c *Config) {
		c.Screen.Width, c.Screen.Height = 220, 220
		c.Seed = 1
		c.Run.Frames = 300
	}),
}

func with(mod func(*Config)) *Config {
	c := DefaultConfig()
	mod(c)
	return c
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
