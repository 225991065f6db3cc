package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/WallPanel/internal/engine"
	"github.com/piwi3910/WallPanel/internal/importer"
	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/piwi3910/WallPanel/internal/project"
)

func parseRequestFlags(t *testing.T, args ...string) (*cobra.Command, *requestFlags) {
	t.Helper()
	cfg = model.DefaultAppConfig()
	cmd := &cobra.Command{Use: "test"}
	f := &requestFlags{}
	addRequestFlags(cmd, f)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, f
}

func TestRequestFlags_Defaults(t *testing.T) {
	cmd, f := parseRequestFlags(t)

	req, err := f.request(cmd)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultRequest(), req)
}

func TestRequestFlags_RecentersDoor(t *testing.T) {
	cmd, f := parseRequestFlags(t, "--wall-width", "4800")

	req, err := f.request(cmd)
	require.NoError(t, err)
	assert.Equal(t, 4800.0, req.Wall.Width)
	assert.Equal(t, 1800.0, req.Door.X)
}

func TestRequestFlags_ExplicitDoorOffset(t *testing.T) {
	cmd, f := parseRequestFlags(t, "--wall-width", "4800", "--door-x", "300", "--door-width", "900")

	req, err := f.request(cmd)
	require.NoError(t, err)
	assert.Equal(t, model.DoorSpec{Width: 900, Height: 2400, X: 300}, req.Door)
}

func TestRequestFlags_Options(t *testing.T) {
	cmd, f := parseRequestFlags(t,
		"--no-door", "--mode", "hybrid", "--gap", "0", "--grid-step", "5",
		"--merge-headers", "--side-panels", "--cut-in-place", "--header-threshold", "200")

	req, err := f.request(cmd)
	require.NoError(t, err)
	assert.True(t, req.Door.Absent())
	assert.Equal(t, model.ModeHybrid, req.Mode)
	assert.Equal(t, 0.0, req.Gap)
	assert.Equal(t, 5.0, req.GridStep)
	assert.Equal(t, 200.0, req.HeaderThreshold)
	assert.True(t, req.MergeHeaders)
	assert.True(t, req.SidePanels)
	assert.True(t, req.CutInPlace)
}

func TestRequestFlags_UnknownMode(t *testing.T) {
	cmd, f := parseRequestFlags(t, "--mode", "diagonal")

	_, err := f.request(cmd)
	assert.ErrorIs(t, err, model.ErrUnknownMode)
}

func TestRequestFlags_Preset(t *testing.T) {
	presetsPath = filepath.Join(t.TempDir(), "presets.json")
	stored := model.DefaultRequest()
	stored.Wall = model.WallSpec{Width: 3600, Height: 2700}
	stored.Door = model.DoorSpec{Width: 900, Height: 2100, X: 200}
	stored.SidePanels = true
	_, err := project.SavePreset(presetsPath, "Hall", "", stored)
	require.NoError(t, err)

	cmd, f := parseRequestFlags(t, "--preset", "Hall", "--gap", "5")
	req, err := f.request(cmd)
	require.NoError(t, err)

	want := stored
	want.Gap = 5
	assert.Equal(t, want, req)

	cmd, f = parseRequestFlags(t, "--preset", "Missing")
	_, err = f.request(cmd)
	assert.ErrorIs(t, err, project.ErrPresetNotFound)
}

func TestPrintResult(t *testing.T) {
	cfg = model.DefaultAppConfig()
	result, err := engine.New(model.DefaultRequest()).Plan()
	require.NoError(t, err)

	var buf bytes.Buffer
	printResult(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "Wall 6000 x 3000 mm")
	assert.Contains(t, out, "Door 1200 x 2400 mm at x=2400 mm")
	assert.Contains(t, out, "Mode used: Vertical")
	assert.Contains(t, out, "Vertical *")
	assert.Contains(t, out, "WARNING:")
}

func TestPrintComparison(t *testing.T) {
	results := engine.CompareScenarios(engine.BuildDefaultScenarios(model.DefaultRequest()))

	var buf bytes.Buffer
	printComparison(&buf, results)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, len(results)+1)
	assert.Contains(t, lines[0], "SCENARIO")
	assert.Contains(t, lines[1], "Current Settings")
	assert.Contains(t, out, "No Gap")
	assert.Equal(t, 1, strings.Count(out, " *"))
}

func TestWriteExports(t *testing.T) {
	cfg = model.DefaultAppConfig()
	result, err := engine.New(model.DefaultRequest()).Plan()
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := writeExports(result, []string{"csv", " DXF "}, dir, "wall")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "wall.csv"), filepath.Join(dir, "wall.dxf")}, paths)
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}

	_, err = writeExports(result, []string{"svg"}, dir, "wall")
	assert.ErrorContains(t, err, `unknown format "svg"`)
}

func TestRunWalls(t *testing.T) {
	cfg = model.DefaultAppConfig()
	base := model.DefaultRequest()
	walls := []importer.WallEntry{
		{Label: "North wall", Wall: model.WallSpec{Width: 4800, Height: 2700}},
		{Label: "Broken", Wall: model.WallSpec{Width: 0, Height: 2700}},
		{Label: "Hall", Wall: model.WallSpec{Width: 3600, Height: 2700}, Door: model.DoorSpec{Width: 900, Height: 2100, X: 100}},
	}
	dir := t.TempDir()

	summaries, err := runWalls(walls, base, []string{"csv"}, dir)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.NoError(t, summaries[0].Err)
	assert.Equal(t, []string{filepath.Join(dir, "01_North_wall.csv")}, summaries[0].Files)
	assert.True(t, summaries[0].Result.Request.Door.Absent())

	assert.ErrorIs(t, summaries[1].Err, model.ErrInvalidGeometry)
	assert.Empty(t, summaries[1].Files)

	assert.NoError(t, summaries[2].Err)
	assert.Equal(t, 900.0, summaries[2].Result.Request.Door.Width)

	var buf bytes.Buffer
	printBatchSummary(&buf, summaries)
	assert.Contains(t, buf.String(), "North wall")
	assert.Contains(t, buf.String(), "invalid geometry")
}

func TestFileSafe(t *testing.T) {
	tests := map[string]string{
		"North wall": "North_wall",
		"":           "wall",
		"a/b c":      "b_c",
		"W-1_2":      "W-1_2",
	}
	for in, want := range tests {
		assert.Equal(t, want, fileSafe(in), "fileSafe(%q)", in)
	}
}
