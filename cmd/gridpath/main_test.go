package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func runArgs(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), err
}

func TestRunFlagsOnly(t *testing.T) {
	out, err := runArgs(t, "",
		"-width", "3", "-height", "3", "-obstacles", "n",
		"-start", "1,1", "-goal", "3,3", "-delay", "0", "-ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "# Non-walkable cells:\n...\n...\n...\n")
	assert.Contains(t, out, "Rows value between 1 and 3\nColumns value between 1 and 3\n")
	assert.Contains(t, out, "Path found: 2 steps, cost 28, 3 cells expanded.")
	assert.Contains(t, out, "* Animating path:")
	assert.NotContains(t, out, "Enter start", "no prompt when flags are set")
	// Later frames move the cursor back over the grid.
	assert.Equal(t, 2, strings.Count(out, "\033[3A"))
}

func TestRunPrompts(t *testing.T) {
	out, err := runArgs(t, "n\n1 1\n3, 3\n",
		"-width", "3", "-height", "3", "-delay", "0", "-ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "Do you want obstacles in the grid? (y/n): ")
	assert.Contains(t, out, "Enter start coordinates (rows, columns): ")
	assert.Contains(t, out, "Enter goal coordinates (rows, columns): ")
	assert.Contains(t, out, "Path found: 2 steps, cost 28")
}

func TestRunPromptDensity(t *testing.T) {
	out, err := runArgs(t, "y\n0\n1,1\n2,4\n",
		"-width", "4", "-height", "2", "-delay", "0", "-ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter obstacle density")
	assert.Contains(t, out, "Path found: 3 steps, cost 34")
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{"StartOutOfBounds", "", []string{"-width", "3", "-height", "3", "-obstacles", "n", "-start", "0,1", "-goal", "2,2"}, errBounds},
		{"GoalOutOfBounds", "", []string{"-width", "3", "-height", "3", "-obstacles", "n", "-start", "1,1", "-goal", "4,1"}, errBounds},
		{"AllBlocked", "", []string{"-width", "3", "-height", "3", "-obstacles", "y", "-density", "1", "-start", "1,1", "-goal", "3,3"}, errNotWalkable},
		{"BadCoord", "", []string{"-obstacles", "n", "-start", "1;1"}, errInput},
		{"BadObstaclesFlag", "", []string{"-obstacles", "maybe"}, errInput},
		{"BadDensity", "", []string{"-obstacles", "y", "-density", "1.5"}, gridgraph.ErrBadDensity},
		{"BadSize", "", []string{"-width", "0", "-obstacles", "n"}, gridgraph.ErrBadDimensions},
		{"BadDensityPrompt", "y\nlots\n", nil, errInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runArgs(t, tc.stdin, tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRunEOF(t *testing.T) {
	_, err := runArgs(t, "n\n1\n", "-width", "3", "-height", "3")
	assert.Error(t, err)
}

func TestRunHelp(t *testing.T) {
	_, err := runArgs(t, "", "-h")
	assert.NoError(t, err)
}

func TestNavigateNoPath(t *testing.T) {
	g, err := gridgraph.Parse([]string{
		"..#",
		"###",
		"#..",
	}, gridgraph.Conn8)
	require.NoError(t, err)

	var out bytes.Buffer
	cfg := config{start: "1,1", goal: "3,3", ascii: true}
	err = navigate(context.Background(), cfg, g, newPrompter(strings.NewReader(""), &out), &out)
	require.NoError(t, err, "no path is an outcome, not a failure")
	assert.Contains(t, out.String(), "# No path found.\n")
	assert.Contains(t, out.String(), "Clearing 1 obstacle(s) would open a route.")
	assert.NotContains(t, out.String(), "Animating")
}

func TestNavigateExplore(t *testing.T) {
	g, err := gridgraph.Parse([]string{
		"..#..",
		"..#..",
		".....",
	}, gridgraph.Conn8)
	require.NoError(t, err)

	var out bytes.Buffer
	cfg := config{start: "1,1", goal: "1,5", ascii: true, explore: true}
	err = navigate(context.Background(), cfg, g, newPrompter(strings.NewReader(""), &out), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "~", "expanded cells are drawn")
}

// keyScreen presses a key as soon as it is initialised.
type keyScreen struct {
	tcell.SimulationScreen
}

func (k keyScreen) Init() error {
	if err := k.SimulationScreen.Init(); err != nil {
		return err
	}
	k.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	return nil
}

func withScreen(t *testing.T, fn func() (tcell.Screen, error)) {
	t.Helper()
	prev := newScreen
	newScreen = fn
	t.Cleanup(func() { newScreen = prev })
}

func TestRunTUIKeyStops(t *testing.T) {
	withScreen(t, func() (tcell.Screen, error) {
		return keyScreen{tcell.NewSimulationScreen("UTF-8")}, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := runArgs(t, "",
			"-tui", "-width", "5", "-height", "5", "-obstacles", "n",
			"-start", "1,1", "-goal", "5,5", "-delay", "1h")
		done <- err
	}()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("key press did not stop the animation")
	}
}

func TestRunTUIContextEnds(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	withScreen(t, func() (tcell.Screen, error) { return sim, nil })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	var out bytes.Buffer
	err := run(ctx, []string{
		"-tui", "-width", "3", "-height", "3", "-obstacles", "n",
		"-start", "1,1", "-goal", "3,3", "-delay", "0",
	}, strings.NewReader(""), &out, &out)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Non-walkable cells", "the map is not printed in TUI mode")
	assert.Contains(t, out.String(), "Path found: 2 steps, cost 28")
}
