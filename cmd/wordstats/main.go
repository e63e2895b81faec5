// Package main provides the CLI entrypoint for wordstats.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordstats/internal/config"
	"github.com/verte-zerg/wordstats/internal/generator"
	"github.com/verte-zerg/wordstats/internal/model"
	"github.com/verte-zerg/wordstats/internal/reportui"
	"github.com/verte-zerg/wordstats/internal/stats"
	"github.com/verte-zerg/wordstats/internal/store"
	"github.com/verte-zerg/wordstats/internal/textsource"
	"github.com/verte-zerg/wordstats/internal/textstats"
)

const (
	defaultTop         = textstats.DefaultTopN
	defaultGenWords    = 1000
	defaultCaps        = 0.1
	defaultPunct       = 0.1
	defaultBenchWords  = 50_000
	defaultBenchRepeat = 1
	defaultHistoryWin  = 5
)

const defaultPunctSet = ".,!?;:"

var (
	analyzeTop     int
	analyzeWorkers int
	analyzeJSON    bool
	analyzeBars    bool

	genWords    int
	genCaps     float64
	genPunct    float64
	genPunctSet string
	genVocab    string
	genLang     string
	genCycle    bool
	genSeed     int64

	benchWords   int
	benchRepeat  int
	benchRecord  bool
	benchWorkers int

	historyEngine string
	historyLast   int
	historyWindow int

	viewTop int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordstats",
		Short:         "Word frequency and letter statistics for text",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().IntVar(&analyzeTop, "top", defaultTop, "number of most frequent words to list")
	cmd.Flags().IntVar(&analyzeWorkers, "workers", 1, "parallel workers (0 = all CPUs, 1 = sequential)")
	cmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&analyzeBars, "bars", false, "print a frequency bar chart after the report")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "top", &analyzeTop, fileCfg.Analyze.Top)
	applyConfig(cmd, "workers", &analyzeWorkers, fileCfg.Analyze.Workers)

	cfg := model.AnalyzeConfig{Top: analyzeTop, Workers: analyzeWorkers, JSON: analyzeJSON}
	if err := validateAnalyzeConfig(cfg); err != nil {
		return err
	}

	text, err := textsource.ReadText(pathArg(args), cmd.InOrStdin())
	if err != nil {
		return err
	}
	report, err := analyze(cmd.Context(), text, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	}
	if err := stats.RenderReport(out, report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if analyzeBars {
		if _, err := fmt.Fprintln(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := stats.RenderBars(out, report.Top(), 0, stats.ShouldUseColor(out)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func analyze(ctx context.Context, text []byte, cfg model.AnalyzeConfig) (textstats.Report, error) {
	if cfg.Workers == 1 {
		return textstats.Analyze(text, textstats.WithTopN(cfg.Top)), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := textstats.AnalyzeParallel(ctx, text, cfg.Workers, textstats.WithTopN(cfg.Top))
	if err != nil {
		return textstats.Report{}, err
	}
	return report, nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write synthetic text to stdout",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVar(&genWords, "words", defaultGenWords, "number of words")
	cmd.Flags().Float64Var(&genCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	cmd.Flags().Float64Var(&genPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	cmd.Flags().StringVar(&genPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	cmd.Flags().StringVar(&genVocab, "vocab", "", "vocabulary file, one word per line (default: built-in)")
	cmd.Flags().StringVar(&genLang, "lang", "en", "vocabulary filter language")
	cmd.Flags().BoolVar(&genCycle, "cycle", false, "repeat the vocabulary in order instead of sampling")
	cmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 = time based)")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "words", &genWords, fileCfg.Generate.Words)
	applyConfig(cmd, "caps", &genCaps, fileCfg.Generate.CapsPct)
	applyConfig(cmd, "punct", &genPunct, fileCfg.Generate.PunctPct)
	applyConfig(cmd, "punct-set", &genPunctSet, fileCfg.Generate.PunctSet)
	applyConfig(cmd, "vocab", &genVocab, fileCfg.Generate.Vocab)
	applyConfig(cmd, "lang", &genLang, fileCfg.Generate.Lang)

	cfg := model.GenerateConfig{
		Words:    genWords,
		CapsPct:  genCaps,
		PunctPct: genPunct,
		PunctSet: genPunctSet,
		Vocab:    genVocab,
		Lang:     genLang,
		Cycle:    genCycle,
		Seed:     genSeed,
	}
	if err := validateGenerateConfig(cfg); err != nil {
		return err
	}
	text, err := generateText(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := out.Write(text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func generateText(cfg model.GenerateConfig) ([]byte, error) {
	vocab := generator.DefaultVocab
	if cfg.Vocab != "" {
		words, err := textsource.LoadWords(cfg.Vocab)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocab = textsource.Filter(words, textsource.FilterForLang(cfg.Lang))
		if len(vocab) == 0 {
			return nil, fmt.Errorf("vocabulary %s has no usable %s words", cfg.Vocab, cfg.Lang)
		}
	}
	if cfg.Cycle {
		return generator.Cycle(vocab, cfg.Words), nil
	}
	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewWithSeed(cfg.Seed)
	}
	return gen.Text(vocab, cfg.Words, cfg.CapsPct, cfg.PunctPct, []rune(cfg.PunctSet)), nil
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the naive, sequential and parallel analyzers",
		Args:  cobra.NoArgs,
		RunE:  runBenchCmd,
	}
	cmd.Flags().IntVar(&benchWords, "words", defaultBenchWords, "number of words in the generated text")
	cmd.Flags().IntVar(&benchRepeat, "repeat", defaultBenchRepeat, "runs per engine; the fastest is reported")
	cmd.Flags().BoolVar(&benchRecord, "record", false, "store timings in the history database")
	cmd.Flags().IntVar(&benchWorkers, "workers", 0, "parallel workers (0 = all CPUs)")
	return cmd
}

func runBenchCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "words", &benchWords, fileCfg.Bench.Words)
	applyConfig(cmd, "repeat", &benchRepeat, fileCfg.Bench.Repeat)
	applyConfig(cmd, "record", &benchRecord, fileCfg.Bench.Record)
	applyConfig(cmd, "workers", &benchWorkers, fileCfg.Analyze.Workers)

	cfg := model.BenchConfig{
		Words:   benchWords,
		Repeat:  benchRepeat,
		Record:  benchRecord,
		Top:     defaultTop,
		Workers: benchWorkers,
	}
	if err := validateBenchConfig(cfg); err != nil {
		return err
	}

	text := generator.Cycle(generator.DefaultVocab, cfg.Words)
	logErrf("Analyzing %s bytes of text...\n", stats.FormatCount(len(text)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runs, err := runBench(ctx, text, cfg)
	if err != nil {
		return err
	}
	if err := stats.RenderComparison(cmd.OutOrStdout(), len(text), runs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !cfg.Record {
		return nil
	}
	return recordRuns(ctx, config.DefaultDBPath(), len(text), cfg.Workers, runs)
}

func runBench(ctx context.Context, text []byte, cfg model.BenchConfig) ([]stats.Timed, error) {
	engines := []struct {
		name string
		run  func() (textstats.Report, error)
	}{
		{model.EngineNaive, func() (textstats.Report, error) {
			return textstats.AnalyzeNaive(string(text), cfg.Top), nil
		}},
		{model.EngineSequential, func() (textstats.Report, error) {
			return textstats.Analyze(text, textstats.WithTopN(cfg.Top)), nil
		}},
		{model.EngineParallel, func() (textstats.Report, error) {
			return textstats.AnalyzeParallel(ctx, text, cfg.Workers, textstats.WithTopN(cfg.Top))
		}},
	}
	runs := make([]stats.Timed, 0, len(engines))
	for _, engine := range engines {
		best := stats.Timed{Engine: engine.name}
		for i := 0; i < cfg.Repeat; i++ {
			start := time.Now()
			report, err := engine.run()
			elapsed := time.Since(start)
			if err != nil {
				return nil, fmt.Errorf("%s run failed: %w", engine.name, err)
			}
			if i == 0 || elapsed < best.Duration {
				best.Report = report
				best.Duration = elapsed
			}
		}
		runs = append(runs, best)
	}
	return runs, nil
}

func recordRuns(ctx context.Context, dbPath string, inputBytes, workers int, runs []stats.Timed) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	now := time.Now()
	records := make([]model.BenchRun, 0, len(runs))
	for _, run := range runs {
		w := 1
		if run.Engine == model.EngineParallel {
			w = workers
			if w <= 0 {
				w = runtime.GOMAXPROCS(0)
			}
		}
		records = append(records, model.BenchRun{
			RecordedAt:  now,
			Engine:      run.Engine,
			InputBytes:  inputBytes,
			Words:       run.Report.Words(),
			UniqueWords: run.Report.UniqueWords(),
			Workers:     w,
			DurationNs:  run.Duration.Nanoseconds(),
		})
	}
	if _, err := st.InsertRuns(ctx, records); err != nil {
		return fmt.Errorf("failed to record runs: %w", err)
	}
	logErrf("Recorded %d runs in %s\n", len(records), dbPath)
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded benchmark timings",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyEngine, "engine", "", "engine filter (naive, sequential, parallel)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to the last N runs")
	cmd.Flags().IntVar(&historyWindow, "window", defaultHistoryWin, "moving average window for the trend")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg := model.HistoryConfig{Engine: historyEngine, Last: historyLast, Window: historyWindow}
	if err := validateHistoryConfig(cfg); err != nil {
		return err
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	h, err := stats.BuildHistory(ctx, st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if err := stats.RenderHistory(cmd.OutOrStdout(), h, cfg.Window); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a report interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runViewCmd,
	}
	cmd.Flags().IntVar(&viewTop, "top", 100, "number of most frequent words to list")
	return cmd
}

func runViewCmd(cmd *cobra.Command, args []string) error {
	if viewTop <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	path := pathArg(args)
	if path == "" || path == "-" {
		// The TUI owns the terminal, so stdin can't also carry the text.
		return fmt.Errorf("view needs a file argument")
	}
	text, err := textsource.ReadText(path, nil)
	if err != nil {
		return err
	}
	report := textstats.Analyze(text, textstats.WithTopN(viewTop))
	program := tea.NewProgram(reportui.NewModel(report, path), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeDefaultConfig creates the commented template unless a file exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordstats configuration
# Uncomment a value to enable it. CLI flags override config values.

[analyze]
# top = %d                # Number of most frequent words to list
# workers = 1             # Parallel workers (0 = all CPUs, 1 = sequential)

[generate]
# words = %d            # Words per generated text
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set
# vocab = ""              # Vocabulary file, one word per line
# lang = "en"             # Vocabulary filter language

[bench]
# words = %d           # Words in the benchmark text
# repeat = %d              # Runs per engine
# record = false          # Store timings in the history database
`,
		defaultTop,
		defaultGenWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		defaultBenchWords,
		defaultBenchRepeat,
	)
}

func validateAnalyzeConfig(cfg model.AnalyzeConfig) error {
	if cfg.Top < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("--workers must be >= 0")
	}
	return nil
}

func validateGenerateConfig(cfg model.GenerateConfig) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func validateBenchConfig(cfg model.BenchConfig) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.Repeat <= 0 {
		return fmt.Errorf("--repeat must be > 0")
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("--workers must be >= 0")
	}
	return nil
}

func validateHistoryConfig(cfg model.HistoryConfig) error {
	if cfg.Last < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if cfg.Window < 0 {
		return fmt.Errorf("--window must be >= 0")
	}
	switch cfg.Engine {
	case "", model.EngineNaive, model.EngineSequential, model.EngineParallel:
		return nil
	default:
		return fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
