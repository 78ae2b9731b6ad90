package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/symdyn/internal/config"
	"github.com/san-kum/symdyn/internal/export"
	"github.com/san-kum/symdyn/internal/expr"
)

var (
	gconst     float64
	length     float64
	bodies     int
	masses     []float64
	omega      []float64
	configFile string
	preset     string
	// potential scan
	axis    string
	axisMin float64
	axisMax float64
	samples int
	// export
	outFile string
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	stateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

var modelInfo = map[string]string{
	"pendulum":      "simple pendulum",
	"rotating":      "rotating-frame pseudo-forces",
	"mascon":        "point-mass field, optionally rotating",
	"fixed_centres": "fixed gravitating centres",
	"nbody":         "inertial-frame n-body",
	"np1body":       "n-body relative to a primary",
}

// main is the entry point for the symdyn CLI; it registers commands and
// flags and executes the root command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "symdyn",
		Short: "symbolic dynamics model builder",
	}

	eqsCmd := &cobra.Command{
		Use:   "eqs [model]",
		Short: "print the ODE system of a model",
		Args:  cobra.ExactArgs(1),
		RunE:  printEquations,
	}
	addModelFlags(eqsCmd)

	potentialCmd := &cobra.Command{
		Use:   "potential [model]",
		Short: "plot the potential along one axis",
		Args:  cobra.ExactArgs(1),
		RunE:  plotPotential,
	}
	addModelFlags(potentialCmd)
	potentialCmd.Flags().StringVar(&axis, "axis", "x", "state variable to sweep")
	potentialCmd.Flags().Float64Var(&axisMin, "min", 0.5, "sweep start")
	potentialCmd.Flags().Float64Var(&axisMax, "max", 5.0, "sweep end")
	potentialCmd.Flags().IntVar(&samples, "samples", 80, "sample count")

	exportCmd := &cobra.Command{
		Use:   "export [model]",
		Short: "write the model description as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportModel,
	}
	addModelFlags(exportCmd)
	exportCmd.Flags().StringVar(&outFile, "out", "model.json", "output path")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list the model catalogue",
		Run: func(cmd *cobra.Command, args []string) {
			names := make([]string, 0, len(modelInfo))
			for name := range modelInfo {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s\t%s\n", stateStyle.Render(name), dimStyle.Render(modelInfo[name]))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			sort.Strings(names)
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	rootCmd.AddCommand(eqsCmd, potentialCmd, exportCmd, modelsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gconst, "gconst", 1.0, "gravitational constant (or acceleration)")
	cmd.Flags().Float64Var(&length, "length", 1.0, "pendulum length")
	cmd.Flags().IntVar(&bodies, "bodies", 2, "number of bodies")
	cmd.Flags().Float64SliceVar(&masses, "masses", nil, "body masses")
	cmd.Flags().Float64SliceVar(&omega, "omega", nil, "angular velocity vector")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

// buildConfig resolves the scenario: config file, then preset, then flags.
func buildConfig(modelName string) (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if preset != "" {
		cfg := config.GetPreset(modelName, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q for model %s", preset, modelName)
		}
		return cfg, nil
	}
	cfg := config.DefaultConfig()
	cfg.Model = modelName
	cfg.Gconst = gconst
	cfg.Length = length
	cfg.Bodies = bodies
	cfg.Masses = masses
	cfg.Omega = omega
	if cfg.Omega == nil && (modelName == "rotating" || modelName == "mascon") {
		cfg.Omega = []float64{0, 0, 1}
	}
	if cfg.Positions == nil && (modelName == "mascon" || modelName == "fixed_centres") {
		// one unit mass at the origin unless a scenario says otherwise
		cfg.Positions = [][]float64{{0, 0, 0}}
		if cfg.Masses == nil {
			cfg.Masses = []float64{1}
		}
	}
	return cfg, nil
}

func printEquations(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}
	sys, err := cfg.BuildSystem()
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%d state variables)", cfg.Model, sys.StateDim())))
	for _, eq := range sys {
		lhs := stateStyle.Render(fmt.Sprintf("d%s/dt", eq.State.Name()))
		fmt.Printf("%s = %s\n", lhs, eq.RHS)
	}

	if en, err := cfg.BuildEnergy(); err == nil {
		fmt.Printf("\n%s = %s\n", dimStyle.Render("energy"), en)
	}
	return nil
}

func plotPotential(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}
	pot, err := cfg.BuildPotential()
	if err != nil {
		return err
	}

	names := expr.Vars(pot)
	bind := make(map[string]float64, len(names))
	for _, n := range names {
		bind[n] = 0
	}
	if _, ok := bind[axis]; !ok {
		return fmt.Errorf("potential of %s does not depend on %q (has: %s)",
			cfg.Model, axis, strings.Join(names, ", "))
	}
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples")
	}

	data := make([]float64, 0, samples)
	step := (axisMax - axisMin) / float64(samples-1)
	for i := 0; i < samples; i++ {
		bind[axis] = axisMin + float64(i)*step
		v, err := expr.Eval(pot, expr.Env{Vars: bind})
		if err != nil {
			return err
		}
		// skip singular sample points (e.g. on top of a mascon)
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		data = append(data, v)
	}
	if len(data) == 0 {
		return fmt.Errorf("no finite samples in [%g, %g]", axisMin, axisMax)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s potential along %s", cfg.Model, axis)))
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s in [%g, %g], other variables at 0", axis, axisMin, axisMax)),
	)
	fmt.Println(graph)
	return nil
}

func exportModel(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}
	sys, err := cfg.BuildSystem()
	if err != nil {
		return err
	}

	scalars := make(map[string]expr.Expr)
	if en, err := cfg.BuildEnergy(); err == nil {
		scalars["energy"] = en
	}
	if pot, err := cfg.BuildPotential(); err == nil {
		scalars["potential"] = pot
	}

	if err := export.ExportJSON(outFile, cfg.Model, sys, scalars); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d equations)\n", outFile, sys.StateDim())
	return nil
}
