package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/symdyn/internal/expr"
	"github.com/san-kum/symdyn/internal/model"
)

const (
	DefaultGconst = 1.0
	DefaultBodies = 2
	DefaultLength = 1.0
)

// Config is a yaml scenario describing one model of the catalogue and its
// physical parameters. Fields irrelevant to the selected model are ignored.
type Config struct {
	Model     string      `yaml:"model"`
	Gconst    float64     `yaml:"gconst"`
	Masses    []float64   `yaml:"masses"`
	Positions [][]float64 `yaml:"positions"`
	Omega     []float64   `yaml:"omega"`
	Bodies    int         `yaml:"bodies"`
	Length    float64     `yaml:"length"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  "pendulum",
		Gconst: DefaultGconst,
		Bodies: DefaultBodies,
		Length: DefaultLength,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) masses() []expr.Expr {
	return expr.Nums(c.Masses...)
}

func (c *Config) nbodyOpts() []model.NBodyOption {
	opts := []model.NBodyOption{model.WithGconst(c.Gconst)}
	if c.Masses != nil {
		opts = append(opts, model.WithMasses(c.masses()...))
	}
	return opts
}

// BuildSystem dispatches to the model builder selected by c.Model.
func (c *Config) BuildSystem() (model.System, error) {
	switch c.Model {
	case "mascon":
		return model.Mascon(model.MasconConfig{
			Gconst:    c.Gconst,
			Masses:    c.masses(),
			Positions: c.Positions,
			Omega:     omegaOrNil(c.Omega),
		})
	case "rotating":
		return model.Rotating(c.Omega)
	case "fixed_centres":
		return model.FixedCentres(model.FixedCentresConfig{
			Gconst:    c.Gconst,
			Masses:    c.masses(),
			Positions: c.Positions,
		})
	case "nbody":
		return model.NBody(c.Bodies, c.nbodyOpts()...)
	case "np1body":
		return model.NP1Body(c.Bodies, c.nbodyOpts()...)
	case "pendulum":
		return model.Pendulum(model.WithGravity(c.Gconst), model.WithLength(c.Length)), nil
	default:
		return nil, fmt.Errorf("config: unknown model %q", c.Model)
	}
}

// BuildEnergy returns the model's energy expression.
func (c *Config) BuildEnergy() (expr.Expr, error) {
	switch c.Model {
	case "mascon":
		return model.MasconEnergy(model.MasconConfig{
			Gconst:    c.Gconst,
			Masses:    c.masses(),
			Positions: c.Positions,
			Omega:     omegaOrNil(c.Omega),
		})
	case "rotating":
		return model.RotatingEnergy(c.Omega)
	case "fixed_centres":
		return model.FixedCentresEnergy(model.FixedCentresConfig{
			Gconst:    c.Gconst,
			Masses:    c.masses(),
			Positions: c.Positions,
		})
	case "nbody":
		return model.NBodyEnergy(c.Bodies, c.nbodyOpts()...)
	case "np1body":
		return model.NP1BodyEnergy(c.Bodies, c.nbodyOpts()...)
	case "pendulum":
		return model.PendulumEnergy(model.WithGravity(c.Gconst), model.WithLength(c.Length)), nil
	default:
		return nil, fmt.Errorf("config: unknown model %q", c.Model)
	}
}

// BuildPotential returns the model's potential expression. The pendulum has
// no standalone potential builder and reports an error.
func (c *Config) BuildPotential() (expr.Expr, error) {
	switch c.Model {
	case "mascon":
		return model.MasconPotential(model.MasconConfig{
			Gconst:    c.Gconst,
			Masses:    c.masses(),
			Positions: c.Positions,
			Omega:     omegaOrNil(c.Omega),
		})
	case "rotating":
		return model.RotatingPotential(c.Omega)
	case "fixed_centres":
		return model.FixedCentresPotential(model.FixedCentresConfig{
			Gconst:    c.Gconst,
			Masses:    c.masses(),
			Positions: c.Positions,
		})
	case "nbody":
		return model.NBodyPotential(c.Bodies, c.nbodyOpts()...)
	case "np1body":
		return model.NP1BodyPotential(c.Bodies, c.nbodyOpts()...)
	default:
		return nil, fmt.Errorf("config: no potential for model %q", c.Model)
	}
}

func omegaOrNil(omega []float64) any {
	if omega == nil {
		return nil
	}
	return omega
}
