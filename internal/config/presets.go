package config

import "sort"

// Presets are complete configurations selectable by name. The firmware runs
// "figure8"; "figure8-coarse" is the variant stepped at 0.05.
var Presets = map[string]*Config{
	"figure8":        withDt(0.04),
	"figure8-coarse": withDt(0.05),
	"figure8-fine":   withDt(0.01),
	"figure8-leapfrog": func() *Config {
		c := withDt(0.04)
		c.Integrator = "leapfrog"
		return c
	}(),
	"heavy-gamma": func() *Config {
		c := withDt(0.02)
		c.Bodies[2].Mass = 2
		return c
	}(),
}

func withDt(dt float64) *Config {
	c := DefaultConfig()
	c.Dt = dt
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
