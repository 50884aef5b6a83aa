package config

var Presets = map[string]map[string]*Config{
	"ideal": {
		"optimal": {
			Model:  "ideal",
			Launch: LaunchConfig{Angle: 45, Speed: 20},
		},
		"lob": {
			Model:  "ideal",
			Launch: LaunchConfig{Angle: 75, Speed: 15},
		},
		"flat": {
			Model:  "ideal",
			Launch: LaunchConfig{Angle: 15, Speed: 40},
		},
		"vertical": {
			Model:  "ideal",
			Launch: LaunchConfig{Angle: 90, Speed: 10},
		},
	},
	"drag": {
		"baseball": {
			Model: "drag", AirResistance: true,
			Launch: LaunchConfig{Angle: 35, Speed: 40, Mass: 0.145, Drag: 0.02},
		},
		"shotput": {
			Model: "drag", AirResistance: true,
			Launch: LaunchConfig{Angle: 40, Speed: 13, Mass: 7.26, Drag: 0.05},
		},
		"mortar": {
			Model: "drag", AirResistance: true,
			Launch: LaunchConfig{Angle: 70, Speed: 120, Mass: 4.2, Drag: 0.08},
		},
		"feather": {
			Model: "drag", AirResistance: true,
			Launch: LaunchConfig{Angle: 45, Speed: 5, Mass: 0.005, Drag: 0.02},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	out := *cfg
	if out.Engine == (EngineConfig{}) {
		out.Engine = DefaultConfig().Engine
	}
	return &out
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
