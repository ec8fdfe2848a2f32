// Command chesscompare runs engine-versus-engine competitions between
// two module-flag configurations of the evaluation and search engine,
// or, in all-pairs mode, between every single-flag configuration
// against every other.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/clavichord/chesscompare/internal/engine"
	"github.com/clavichord/chesscompare/internal/harness"
	"github.com/clavichord/chesscompare/internal/storage"
)

func main() {
	allPairs := flag.Bool("all-pairs", false, "run every single-flag module against every other and write a result matrix")
	modulesA := flag.String("a", "", "hex module bitmask for engine A, e.g. 0x7")
	modulesB := flag.String("b", "", "hex module bitmask for engine B, e.g. 0x3")
	pairs := flag.Int("pairs", 10, "number of color-swapped game pairs to play")
	moveBudgetUs := flag.Int64("move-budget-us", 200_000, "per-move time budget, in microseconds")
	maxPlies := flag.Int("max-plies", harness.DefaultMaxPlies, "maximum plies before a game is called inconclusive")
	out := flag.String("out", "", "output file for -all-pairs matrix (default: stdout)")
	flag.Parse()

	budget := time.Duration(*moveBudgetUs) * time.Microsecond

	if *allPairs {
		if err := runAllPairs(*pairs, budget, *maxPlies, *out); err != nil {
			log.Fatalf("chesscompare: %v", err)
		}
		return
	}

	a, err := parseModules(*modulesA)
	if err != nil {
		log.Fatalf("chesscompare: -a: %v", err)
	}
	b, err := parseModules(*modulesB)
	if err != nil {
		log.Fatalf("chesscompare: -b: %v", err)
	}

	totals, err := runSingle(a, b, *pairs, budget, *maxPlies)
	if err != nil {
		log.Fatalf("chesscompare: %v", err)
	}
	printSingleResult(os.Stdout, a, b, totals)

	if err := recordRun(a, b, totals); err != nil {
		log.Printf("chesscompare: could not persist run record: %v", err)
	}
}

// recordRun saves the outcome of a single-run comparison to the local
// run history database, so later invocations of chesscompare (or a
// future reporting tool) can see how this pairing has fared over time.
func recordRun(a, b engine.Module, t harness.Totals) error {
	store, err := storage.NewStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SaveRun(storage.Record{
		Timestamp:    time.Now(),
		ModulesA:     uint32(a),
		ModulesB:     uint32(b),
		Pairs:        t.Pairs,
		AWins:        t.AWins,
		BWins:        t.BWins,
		Draws:        t.Draws,
		Inconclusive: t.Inconclusive,
	})
}

func parseModules(s string) (engine.Module, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid module bitmask %q: %w", s, err)
	}
	m := engine.Module(n)
	if err := engine.Validate(m); err != nil {
		return 0, err
	}
	return m, nil
}

func runSingle(a, b engine.Module, pairs int, budget time.Duration, maxPlies int) (harness.Totals, error) {
	cfg := harness.Config{
		NewA:          newEngineFactory(a),
		NewB:          newEngineFactory(b),
		Pairs:         pairs,
		PerMoveBudget: budget,
		MaxPlies:      maxPlies,
	}
	agg, err := harness.StartCompetition(context.Background(), cfg)
	if err != nil {
		return harness.Totals{}, err
	}
	return agg.Snapshot(), nil
}

func newEngineFactory(modules engine.Module) func() *engine.Engine {
	return func() *engine.Engine {
		e, err := engine.NewEngine(modules)
		if err != nil {
			// modules was already validated before the competition started.
			panic(err)
		}
		return e
	}
}

func printSingleResult(w *os.File, a, b engine.Module, t harness.Totals) {
	fmt.Fprintf(w, "A=%s vs B=%s over %d pairs\n", a, b, t.Pairs)
	fmt.Fprintf(w, "  A wins: %d  B wins: %d  draws: %d  inconclusive: %d\n", t.AWins, t.BWins, t.Draws, t.Inconclusive)
	avg := t.AStats.Average(t.Pairs * 2)
	fmt.Fprintf(w, "  A avg nodes/game: %d  deepest depth reached: %d\n", avg.NodesVisited, avg.DeepestCompleted)
}

// singleFlagModules lists every module as its own standalone bitmask,
// the basis for the all-pairs comparison matrix.
var singleFlagModules = []engine.Module{
	engine.Analyze,
	engine.AlphaBeta,
	engine.TranspositionTable,
	engine.SearchExtensions,
	engine.SquareControlMetric,
	engine.SkipBadMoves,
	engine.NaivePSQT,
	engine.PawnStructure,
	engine.TaperedEveryPestoPSQT,
	engine.TaperedIncrementalPestoPSQT,
}

func runAllPairs(pairsPerMatch int, budget time.Duration, maxPlies int, outPath string) error {
	n := len(singleFlagModules)
	matrix := make([][]int, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			totals, err := runSingle(singleFlagModules[i], singleFlagModules[j], pairsPerMatch, budget, maxPlies)
			if err != nil {
				return fmt.Errorf("module %s vs %s: %w", singleFlagModules[i], singleFlagModules[j], err)
			}
			diff := totals.AWins - totals.BWins
			matrix[i][j] = diff
			matrix[j][i] = -diff
		}
	}

	w := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	writeMatrix(w, matrix)
	return nil
}

func writeMatrix(w *os.File, matrix [][]int) {
	for _, m := range singleFlagModules {
		fmt.Fprintf(w, "\t%s", m)
	}
	fmt.Fprintln(w)
	for i, row := range matrix {
		fmt.Fprintf(w, "%s", singleFlagModules[i])
		for _, v := range row {
			fmt.Fprintf(w, "\t%d", v)
		}
		fmt.Fprintln(w)
	}
}
