package config

// Presets maps model name to named example scenarios.
var Presets = map[string]map[string]*Config{
	"pendulum": {
		"unit":  {Model: "pendulum", Gconst: 1.0, Length: 1.0},
		"earth": {Model: "pendulum", Gconst: 9.81, Length: 1.0},
		"long":  {Model: "pendulum", Gconst: 9.81, Length: 10.0},
	},
	"nbody": {
		"binary": {Model: "nbody", Bodies: 2, Gconst: 1.0},
		"triple": {Model: "nbody", Bodies: 3, Gconst: 1.0},
		"hierarchical": {
			Model: "nbody", Bodies: 3, Gconst: 1.0,
			Masses: []float64{1.0, 1e-3, 1e-6},
		},
	},
	"np1body": {
		"two_body": {Model: "np1body", Bodies: 2, Gconst: 1.0},
		"planetary": {
			Model: "np1body", Bodies: 3, Gconst: 1.0,
			Masses: []float64{1.0, 1e-3, 1e-4},
		},
	},
	"rotating": {
		"slow": {Model: "rotating", Omega: []float64{0, 0, 0.1}},
		"fast": {Model: "rotating", Omega: []float64{0, 0, 3}},
	},
	"fixed_centres": {
		"euler_problem": {
			Model: "fixed_centres", Gconst: 1.0,
			Masses:    []float64{1, 1},
			Positions: [][]float64{{1, 0, 0}, {-1, 0, 0}},
		},
	},
	"mascon": {
		"dumbbell": {
			Model: "mascon", Gconst: 1.0,
			Masses:    []float64{0.5, 0.5},
			Positions: [][]float64{{0.5, 0, 0}, {-0.5, 0, 0}},
			Omega:     []float64{0, 0, 1},
		},
	},
}

// GetPreset returns the named preset for a model, or nil when unknown.
func GetPreset(modelName, name string) *Config {
	group, ok := Presets[modelName]
	if !ok {
		return nil
	}
	return group[name]
}

// ListPresets returns the preset names available for a model, or nil.
func ListPresets(modelName string) []string {
	group, ok := Presets[modelName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for n := range group {
		names = append(names, n)
	}
	return names
}
