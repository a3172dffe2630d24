// Command gridpath builds a grid with optional random obstacles, asks for a
// start and a goal, finds the cheapest route with A* and animates it.
//
// Coordinates are entered 1-indexed as "row column"; rows run top to bottom.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/animate"
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	errBounds      = errors.New("coordinates out of bounds")
	errNotWalkable = errors.New("start or goal is not walkable")
)

// newScreen opens the terminal for -tui; tests swap in a simulation screen.
var newScreen = tcell.NewScreen

type config struct {
	width, height int
	obstacles     string
	density       float64
	seed          int64
	start, goal   string
	delay         time.Duration
	tui           bool
	explore       bool
	conn4         bool
	ascii         bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridpath: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.width, "width", 40, "Grid width (columns)")
	fs.IntVar(&cfg.height, "height", 20, "Grid height (rows)")
	fs.StringVar(&cfg.obstacles, "obstacles", "", "Random obstacles: y or n (prompt when empty)")
	fs.Float64Var(&cfg.density, "density", 0.2, "Obstacle density in [0,1] when -obstacles=y")
	fs.Int64Var(&cfg.seed, "seed", 0, "Obstacle seed (0 = time based)")
	fs.StringVar(&cfg.start, "start", "", "Start as row,column, 1-indexed (prompt when empty)")
	fs.StringVar(&cfg.goal, "goal", "", "Goal as row,column, 1-indexed (prompt when empty)")
	fs.DurationVar(&cfg.delay, "delay", 100*time.Millisecond, "Delay between animation frames")
	fs.BoolVar(&cfg.tui, "tui", false, "Animate in a full-screen terminal UI")
	fs.BoolVar(&cfg.explore, "explore", false, "Also show the cells the search expanded")
	fs.BoolVar(&cfg.conn4, "conn4", false, "Forbid diagonal moves")
	fs.BoolVar(&cfg.ascii, "ascii", false, "Draw with ASCII instead of emoji")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gridpath [options]\n\n")
		fmt.Fprintf(stderr, "Finds and animates the cheapest path between two cells of a grid.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  gridpath                                   # Prompt for everything\n")
		fmt.Fprintf(stderr, "  gridpath -obstacles y -density 0.3 -seed 7 -start 1,1 -goal 20,40\n")
		fmt.Fprintf(stderr, "  gridpath -tui -explore -start 1,1 -goal 20,40\n")
	}
	err := fs.Parse(args)
	return cfg, err
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	p := newPrompter(stdin, stdout)
	g, err := buildGrid(cfg, p)
	if err != nil {
		return err
	}

	return navigate(ctx, cfg, g, p, stdout)
}

// navigate shows g, reads the endpoints and then searches and animates.
func navigate(ctx context.Context, cfg config, g *gridgraph.Grid, p *prompter, stdout io.Writer) error {
	sym := animate.EmojiSymbols
	if cfg.ascii {
		sym = animate.ASCIISymbols
	}
	if !cfg.tui {
		fmt.Fprintf(stdout, "%s Non-walkable cells:\n", sym.Blocked)
		if err := animate.PrintMap(stdout, g, sym); err != nil {
			return err
		}
		fmt.Fprint(stdout, "\n\n")
	}
	fmt.Fprintf(stdout, "Rows value between 1 and %d\n", g.Height)
	fmt.Fprintf(stdout, "Columns value between 1 and %d\n\n", g.Width)

	start, err := readCoord(cfg.start, "Enter start coordinates (rows, columns): ", p)
	if err != nil {
		return err
	}
	goal, err := readCoord(cfg.goal, "Enter goal coordinates (rows, columns): ", p)
	if err != nil {
		return err
	}
	if !g.InBounds(start.X, start.Y) || !g.InBounds(goal.X, goal.Y) {
		return errBounds
	}
	if !g.Walkable(start.X, start.Y) || !g.Walkable(goal.X, goal.Y) {
		return errNotWalkable
	}

	scene := animate.NewScene(g)
	var opts []astar.Option
	if cfg.explore {
		opts = append(opts, astar.WithOnExpand(scene.MarkExplored))
	}
	res, err := astar.Search(g, start, goal, opts...)
	if err != nil {
		return err
	}

	if !res.Found {
		fmt.Fprintf(stdout, "%s No path found.\n", sym.Blocked)
		_, walls, err := g.Breach(g.Index(start.X, start.Y), g.Index(goal.X, goal.Y))
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Clearing %d obstacle(s) would open a route.\n", walls)
		return nil
	}

	fmt.Fprintf(stdout, "Path found: %d steps, cost %d, %d cells expanded.\n", len(res.Path)-1, res.Cost, res.Expanded)
	scene.SetPath(res.Path)
	if cfg.tui {
		return playScreen(ctx, scene, cfg.delay)
	}
	fmt.Fprintf(stdout, "\n%s Animating path:\n", sym.Trail)
	return animate.Play(ctx, animate.NewTextAnimator(stdout, sym), scene, cfg.delay)
}

func buildGrid(cfg config, p *prompter) (*gridgraph.Grid, error) {
	var withObstacles bool
	density := cfg.density
	switch cfg.obstacles {
	case "y", "Y", "yes", "true":
		withObstacles = true
	case "n", "N", "no", "false":
	case "":
		var err error
		if withObstacles, err = p.yesNo("Do you want obstacles in the grid? (y/n): "); err != nil {
			return nil, err
		}
		if withObstacles {
			density, err = p.float("Enter obstacle density (0.0 = none, 1.0 = all blocked), e.g. 0.2 for 20%: ")
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: -obstacles %q, want y or n", errInput, cfg.obstacles)
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []gridgraph.Option{gridgraph.WithSeed(seed)}
	if cfg.conn4 {
		opts = append(opts, gridgraph.WithConnectivity(gridgraph.Conn4))
	}
	if withObstacles {
		opts = append(opts, gridgraph.WithObstacles(density))
	}

	return gridgraph.NewGrid(cfg.width, cfg.height, opts...)
}

// readCoord turns a 1-indexed (row, column) into a 0-indexed grid Coord,
// from the flag value when set and from the prompt otherwise.
func readCoord(flagValue, question string, p *prompter) (astar.Coord, error) {
	var (
		row, col int
		err      error
	)
	if flagValue != "" {
		row, col, err = parseCoord(flagValue)
	} else {
		row, col, err = p.coord(question)
	}
	if err != nil {
		return astar.Coord{}, err
	}

	return astar.Coord{X: col - 1, Y: row - 1}, nil
}

// playScreen animates on a full-screen terminal. Any key stops the
// animation early or, once it is done, exits.
func playScreen(ctx context.Context, scene *animate.Scene, delay time.Duration) error {
	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for {
			switch screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				cancel()
				return
			}
		}
	}()

	a := animate.NewScreenAnimator(screen)
	err = animate.Play(ctx, a, scene, delay)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	a.Message(scene, "Arrived. Press any key to exit.")
	<-ctx.Done()

	return nil
}
