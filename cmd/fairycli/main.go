// Command fairycli exercises the fairy-chess movement pipeline end to
// end: parse a move notation, compile it, and check reachability
// against a board — either once (check) or interactively (repl).
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/voxelbrain/goptions"

	"github.com/zayadnimrod/fairychess/board"
	"github.com/zayadnimrod/fairychess/moveexpr"
	"github.com/zayadnimrod/fairychess/parser"
	"github.com/zayadnimrod/fairychess/piececache"
	"github.com/zayadnimrod/fairychess/reachability"
)

var getopts = func(o interface{}) {
	if err := goptions.Parse(o); err != nil {
		goptions.PrintHelp()
		os.Exit(1)
	}
}

var exit = os.Exit

type checkOpts struct {
	Move     string `goptions:"-m, --move, obligatory, description='Move notation (DSL text)'"`
	Scenario string `goptions:"-s, --scenario, description='Path to a YAML board scenario file (default: an open board spanning -1048576..1048576 on both axes)'"`
	Start    string `goptions:"--start, obligatory, description='Start square as x,y'"`
	Target   string `goptions:"--target, obligatory, description='Target square as x,y'"`
	InvertX  bool   `goptions:"--invert-x, description='Invert the X axis of every jump'"`
	InvertY  bool   `goptions:"--invert-y, description='Invert the Y axis of every jump'"`
}

type replOpts struct {
	Scenario string `goptions:"-s, --scenario, description='Path to a YAML board scenario file (default: an open board spanning -1048576..1048576 on both axes)'"`
}

func main() {
	var options struct {
		Color  string `goptions:"--color, description='Control color output (on/off/auto, default: auto)'"`
		Action goptions.Verbs
		Check  checkOpts `goptions:"check"`
		Repl   replOpts  `goptions:"repl"`
	}
	getopts(&options)

	switch options.Color {
	case "on":
		pterm.EnableColor()
	case "off":
		pterm.DisableColor()
	case "auto", "":
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			pterm.DisableColor()
		}
	default:
		pterm.Error.Printf("invalid --color option: %s\n", options.Color)
		exit(1)
		return
	}

	switch options.Action {
	case "check":
		runCheck(options.Check)
	case "repl":
		runRepl(options.Repl)
	default:
		goptions.PrintHelp()
		exit(1)
	}
}

func loadBoard(scenarioPath string) (board.Board, error) {
	if scenarioPath == "" {
		return board.RectBoard{XMin: -1 << 20, XMax: 1 << 20, YMin: -1 << 20, YMax: 1 << 20}, nil
	}
	data, err := os.ReadFile(scenarioPath)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return board.LoadScenario(data)
}

func parseSquare(text string) ([2]int, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("expected \"x,y\", got %q", text)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return [2]int{}, fmt.Errorf("parsing x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return [2]int{}, fmt.Errorf("parsing y: %w", err)
	}
	return [2]int{x, y}, nil
}

func runCheck(opts checkOpts) {
	b, err := loadBoard(opts.Scenario)
	if err != nil {
		pterm.Error.Println(err.Error())
		exit(2)
		return
	}
	start, err := parseSquare(opts.Start)
	if err != nil {
		pterm.Error.Println(err.Error())
		exit(2)
		return
	}
	target, err := parseSquare(opts.Target)
	if err != nil {
		pterm.Error.Println(err.Error())
		exit(2)
		return
	}

	trace, ok, err := checkNotation(opts.Move, b, start, target, opts.InvertX, opts.InvertY)
	if err != nil {
		pterm.Error.Println(err.Error())
		exit(2)
		return
	}
	printResult(opts.Move, start, target, trace, ok)
}

func checkNotation(move string, b board.Board, start, target [2]int, invertX, invertY bool) (reachability.MoveTrace, bool, error) {
	raw, err := parser.Parse(move)
	if err != nil {
		return nil, false, fmt.Errorf("parsing move notation: %w", err)
	}
	graph, err := graphCache.Compile(moveexpr.Lower(raw))
	if err != nil {
		return nil, false, fmt.Errorf("compiling move notation: %w", err)
	}
	trace, ok := reachability.CheckMove(graph, b, start, target,
		reachability.WithInvertX(invertX), reachability.WithInvertY(invertY))
	return trace, ok, nil
}

func printResult(move string, start, target [2]int, trace reachability.MoveTrace, ok bool) {
	if !ok {
		pterm.Error.Printf("%s cannot reach %v from %v\n", move, target, start)
		return
	}
	pterm.Success.Printf("%s reaches %v from %v\n", move, target, start)
	steps := make([]string, len(trace))
	for i, p := range trace {
		steps[i] = fmt.Sprintf("%v", p)
	}
	pterm.Info.Println(strings.Join(steps, " -> "))
}

// graphCache lets repeated evaluation of the same notation within one
// process — a REPL session varying only start/target — skip re-running
// the graph compiler. The notation is still parsed on every call.
var graphCache = piececache.New()

func runRepl(opts replOpts) {
	b, err := loadBoard(opts.Scenario)
	if err != nil {
		pterm.Error.Println(err.Error())
		exit(2)
		return
	}

	rl, err := readline.New("fairy> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		exit(2)
		return
	}
	defer rl.Close()

	pterm.Info.Println("enter: <move> <sx>,<sy> <tx>,<ty> [invert-x] [invert-y]; ctrl-D to quit")
	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			pterm.Error.Println("expected: <move> <sx>,<sy> <tx>,<ty> [invert-x] [invert-y]")
			continue
		}

		start, err := parseSquare(fields[1])
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		target, err := parseSquare(fields[2])
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		invertX := containsFlag(fields[3:], "invert-x")
		invertY := containsFlag(fields[3:], "invert-y")

		trace, ok, err := checkNotation(fields[0], b, start, target, invertX, invertY)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		printResult(fields[0], start, target, trace, ok)
	}
}

func containsFlag(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
