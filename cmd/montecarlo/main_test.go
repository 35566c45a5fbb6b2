package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montecarlo-go/internal/config"
	"montecarlo-go/pkg/normalboxmueller"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"classify", "simulate", "plot", "sample", "hotels", "serve"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "montecarlo", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestClassifyCommand_Flags(t *testing.T) {
	for _, name := range []string{"samples", "std-dev", "seed", "center0", "center1", "sampler", "points", "points-file", "output"} {
		assert.NotNil(t, classifyCmd.Flags().Lookup(name), "classify should have --%s", name)
	}
	assert.Equal(t, "1000", classifyCmd.Flags().Lookup("samples").DefValue)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func loadTestConfig(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := config.Load()
	require.NoError(t, err)
	cfg = c
}

// newCmd returns a fresh command wired like cmd so flag state does not leak
// between tests.
func newCmd(t *testing.T, cmd *cobra.Command, setup func(*cobra.Command), args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	fresh := &cobra.Command{Use: cmd.Use, RunE: cmd.RunE}
	setup(fresh)
	require.NoError(t, fresh.ParseFlags(args))
	out := &bytes.Buffer{}
	fresh.SetOut(out)
	return fresh, out
}

func TestApplySimulationFlags(t *testing.T) {
	cmd := &cobra.Command{}
	addSimulationFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--samples", "10", "--center1", "7, 8", "--sampler", "boxmuller"}))

	sim := config.SimulationConfig{Samples: 1000, StdDev: 1.2, Center0: [2]float64{2, 2}, Center1: [2]float64{6, 6}}
	require.NoError(t, applySimulationFlags(cmd, &sim))
	assert.Equal(t, 10, sim.Samples)
	assert.Equal(t, 1.2, sim.StdDev)
	assert.Equal(t, [2]float64{2, 2}, sim.Center0)
	assert.Equal(t, [2]float64{7, 8}, sim.Center1)
	assert.Equal(t, "boxmuller", sim.Sampler)

	bad := &cobra.Command{}
	addSimulationFlags(bad)
	require.NoError(t, bad.ParseFlags([]string{"--center0", "nope"}))
	assert.Error(t, applySimulationFlags(bad, &sim))
}

func TestClassifyCommand_WritesCSV(t *testing.T) {
	loadTestConfig(t)
	classifyPoints, classifyPointsFile, classifyOutput = "", "", ""

	cmd, out := newCmd(t, classifyCmd, func(c *cobra.Command) {
		addSimulationFlags(c)
		c.Flags().StringVar(&classifyPoints, "points", "", "")
		c.Flags().StringVar(&classifyPointsFile, "points-file", "", "")
		c.Flags().StringVarP(&classifyOutput, "output", "o", "", "")
	}, "--samples", "200", "--points", "abc\n1,2\nfoo,bar\n3,4")

	require.NoError(t, cmd.RunE(cmd, nil))

	records, err := csv.NewReader(out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"1", "2"}, records[1][:2])
	assert.Equal(t, []string{"3", "4"}, records[2][:2])
}

func TestClassifyCommand_PointsFile(t *testing.T) {
	loadTestConfig(t)
	dir := t.TempDir()
	pointsPath := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(pointsPath, []byte("2,2\n6,6\n"), 0o644))
	outPath := filepath.Join(dir, "out.csv")
	classifyPoints, classifyPointsFile, classifyOutput = "", "", ""

	cmd, _ := newCmd(t, classifyCmd, func(c *cobra.Command) {
		addSimulationFlags(c)
		c.Flags().StringVar(&classifyPoints, "points", "", "")
		c.Flags().StringVar(&classifyPointsFile, "points-file", "", "")
		c.Flags().StringVarP(&classifyOutput, "output", "o", "", "")
	}, "--points-file", pointsPath, "-o", outPath)

	require.NoError(t, cmd.RunE(cmd, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[1], ",0"))
	assert.True(t, strings.HasSuffix(lines[2], ",1"))
}

func TestSimulateCommand(t *testing.T) {
	loadTestConfig(t)
	simulateOutput = ""

	cmd, out := newCmd(t, simulateCmd, func(c *cobra.Command) {
		addSimulationFlags(c)
		c.Flags().StringVarP(&simulateOutput, "output", "o", "", "")
	}, "--samples", "5")

	require.NoError(t, cmd.RunE(cmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 11)
	assert.Equal(t, "x,y,Clase", lines[0])
}

func TestSampleCommand(t *testing.T) {
	loadTestConfig(t)

	cmd, out := newCmd(t, sampleCmd, addSampleFlags, "--n", "500", "--bins", "5")

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "n=500")
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 7)
}

func TestSampleCommand_RejectsInvalidConfig(t *testing.T) {
	for _, args := range [][]string{
		{"--std-dev", "-1"},
		{"--std-dev", "0"},
		{"--samples", "100000"},
		{"--dist", "cauchy"},
		{"--dist", "uniform", "--low", "3", "--high", "1"},
		{"--low", "1", "--high", "-1"},
	} {
		loadTestConfig(t)
		cmd, _ := newCmd(t, sampleCmd, addSampleFlags, args...)
		assert.Error(t, cmd.RunE(cmd, nil), "%v", args)
	}
}

func TestDrawSample(t *testing.T) {
	loadTestConfig(t)

	uniform, _ := newCmd(t, sampleCmd, addSampleFlags, "--n", "300", "--dist", "uniform", "--low", "2", "--high", "4")
	values, err := drawSample(uniform, normalboxmueller.NewRand(1))
	require.NoError(t, err)
	require.Len(t, values, 300)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 4.0)
	}

	clamped, _ := newCmd(t, sampleCmd, addSampleFlags, "--n", "300", "--low", "-0.5", "--high", "0.5")
	values, err = drawSample(clamped, normalboxmueller.NewRand(1))
	require.NoError(t, err)
	require.Len(t, values, 300)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, -0.5)
		assert.LessOrEqual(t, v, 0.5)
	}
}

func TestPrintHistogramConstantInput(t *testing.T) {
	var buf bytes.Buffer
	printHistogram(&buf, []float64{3, 3, 3}, 2)
	assert.Contains(t, buf.String(), "n=3")
}

func TestHotelsCommand(t *testing.T) {
	loadTestConfig(t)
	dir := t.TempDir()

	cmd, out := newCmd(t, hotelsCmd, addHotelsFlags, "--n", "100", "--users", "Alice,Bob",
		"--csv", filepath.Join(dir, "h.csv"),
		"--geojson", filepath.Join(dir, "h.geojson"),
		"--chart", filepath.Join(dir, "h.png"),
		"--rolling", "--smooth", "gaussian")

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "Alice")
	assert.NotContains(t, out.String(), "Charly")

	for _, name := range []string{"h.csv", "h.geojson", "h.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestHotelsCommand_RejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"--n", "0"},
		{"--n", "20000"},
		{"--smooth", "median"},
	} {
		loadTestConfig(t)
		dir := t.TempDir()
		csvPath := filepath.Join(dir, "h.csv")
		cmd, _ := newCmd(t, hotelsCmd, addHotelsFlags, append(args, "--csv", csvPath)...)
		assert.Error(t, cmd.RunE(cmd, nil), "%v", args)
		_, err := os.Stat(csvPath)
		assert.True(t, os.IsNotExist(err), "%v wrote output", args)
	}
}

func TestApplyFlagsReportTypeErrors(t *testing.T) {
	plot := &cobra.Command{}
	plot.Flags().String("width", "", "")
	require.NoError(t, plot.ParseFlags([]string{"--width", "wide"}))
	assert.Error(t, applyPlotFlags(plot, &config.PlotConfig{}))

	h := &cobra.Command{}
	h.Flags().String("seed", "", "")
	require.NoError(t, h.ParseFlags([]string{"--seed", "x"}))
	assert.Error(t, applyHotelsFlags(h, &config.HotelsConfig{}))
}

func TestApplyPlotFlags(t *testing.T) {
	cmd := &cobra.Command{}
	addPlotFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--width", "4", "--font-size", "9"}))

	p := config.PlotConfig{Width: 10, Height: 6, FontSize: 14}
	require.NoError(t, applyPlotFlags(cmd, &p))
	assert.Equal(t, config.PlotConfig{Width: 4, Height: 6, FontSize: 9}, p)
}

func TestPlotCommand_SVG(t *testing.T) {
	loadTestConfig(t)
	dir := t.TempDir()

	cmd, _ := newCmd(t, plotCmd, addPlotFlags, "--samples", "50", "--dir", dir, "--format", "svg",
		"--width", "4", "--height", "3")
	cfg.Plot.GridSize = 5
	require.NoError(t, cmd.RunE(cmd, nil))

	files, err := filepath.Glob(filepath.Join(dir, "*.svg"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestPlotCommand_RejectsFormatBeforeWriting(t *testing.T) {
	loadTestConfig(t)
	dir := t.TempDir()

	cmd, _ := newCmd(t, plotCmd, addPlotFlags, "--samples", "50", "--dir", dir, "--format", "eps")
	assert.Error(t, cmd.RunE(cmd, nil))

	cmd, _ = newCmd(t, plotCmd, addPlotFlags, "--samples", "50",
		"--scatter", filepath.Join(dir, "s.png"), "--heatmap", filepath.Join(dir, "h.jpg"))
	assert.Error(t, cmd.RunE(cmd, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClassifyCommand_Stdin(t *testing.T) {
	loadTestConfig(t)
	classifyPoints, classifyPointsFile, classifyOutput = "", "", ""

	cmd, out := newCmd(t, classifyCmd, func(c *cobra.Command) {
		addSimulationFlags(c)
		c.Flags().StringVar(&classifyPoints, "points", "", "")
		c.Flags().StringVar(&classifyPointsFile, "points-file", "", "")
		c.Flags().StringVarP(&classifyOutput, "output", "o", "", "")
	}, "--samples", "100", "--points-file", "-")
	cmd.SetIn(strings.NewReader("2,2\nnope\n6,6\n"))

	require.NoError(t, cmd.RunE(cmd, nil))
	records, err := csv.NewReader(out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "0", records[1][4])
	assert.Equal(t, "1", records[2][4])
}

func TestClassifyCommand_MissingPointsFile(t *testing.T) {
	loadTestConfig(t)
	classifyPoints, classifyPointsFile, classifyOutput = "", "", ""

	cmd, _ := newCmd(t, classifyCmd, func(c *cobra.Command) {
		addSimulationFlags(c)
		c.Flags().StringVar(&classifyPoints, "points", "", "")
		c.Flags().StringVar(&classifyPointsFile, "points-file", "", "")
		c.Flags().StringVarP(&classifyOutput, "output", "o", "", "")
	}, "--points-file", filepath.Join(t.TempDir(), "missing.txt"))

	assert.Error(t, cmd.RunE(cmd, nil))
}
