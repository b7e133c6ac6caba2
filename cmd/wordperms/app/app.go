package app

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kestfor/WordPerms/internal/services/generator"
	"github.com/kestfor/WordPerms/internal/services/generator/impl"
	"github.com/kestfor/WordPerms/internal/services/wordlist"
	"github.com/kestfor/WordPerms/pkg"
	"github.com/kestfor/WordPerms/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const version = "1.0"

type flags struct {
	cfgPath string
	envPath string

	input          string
	output         string
	maxLength      int
	capitalization generator.Capitalization
	limit          int
	sort           bool
	trim           bool
	normalize      bool
	workers        int
	progressPeriod time.Duration
	metricsFile    string
	logLevel       string
	logJSON        bool
}

func New() *cobra.Command {
	f := &flags{capitalization: generator.CapitalizationAll}

	rootCmd := &cobra.Command{
		Use:           "wordperms",
		Short:         "Generate word permutations",
		Long:          "Generate every distinct concatenation of ordered permutations of word subsets, with capitalization variants.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				slog.Error("load config failed", slog.Any("error", err))
				return err
			}

			return run(cfg, cmd.OutOrStdout())
		},
	}

	fs := rootCmd.Flags()
	fs.StringVarP(&f.input, "input", "i", "", "input file (one word per line)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.IntVarP(&f.maxLength, "max-len", "m", defaultMaxLength, "max number of words per combination")
	fs.VarP(&f.capitalization, "cap-style", "c",
		fmt.Sprintf("capitalization style (%s)", strings.Join(generator.SupportedCapitalizations(), "|")))
	fs.IntVarP(&f.limit, "limit", "l", 0, "limit number of generated results")
	fs.BoolVar(&f.sort, "sort", false, "sort results before applying the limit")
	fs.BoolVar(&f.trim, "trim", false, "strip surrounding whitespace from input words")
	fs.BoolVar(&f.normalize, "normalize", false, "normalize input words to Unicode NFC")
	fs.IntVarP(&f.workers, "workers", "w", 0, "number of parallel workers (default: number of CPUs)")
	fs.DurationVar(&f.progressPeriod, "progress-period", 0, "log generation progress at this period (0 disables)")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write prometheus metrics to this file after the run")
	fs.StringVar(&f.logLevel, "log-level", defaultLogLevel, "log level (debug|info|warn|error)")
	fs.BoolVar(&f.logJSON, "log-json", false, "log in JSON format")
	fs.StringVar(&f.cfgPath, "config", "", "path to yaml configuration file")
	fs.StringVar(&f.envPath, "env-file", "", "path to dotenv file with WORDPERMS_* variables")

	return rootCmd
}

// loadConfig applies the flags the user set over the file and environment configuration.
func loadConfig(cmd *cobra.Command, f *flags) (*Config, error) {
	cfg, err := LoadConfig(f.cfgPath, f.envPath)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("max-len") {
		cfg.Generator.MaxLength = f.maxLength
	}
	if fs.Changed("cap-style") {
		cfg.Generator.Capitalization = f.capitalization
	}
	if fs.Changed("limit") {
		cfg.Limit = pkg.ToPtr(f.limit)
	}
	if fs.Changed("sort") {
		cfg.Sort = f.sort
	}
	if fs.Changed("trim") {
		cfg.Reader.Trim = f.trim
	}
	if fs.Changed("normalize") {
		cfg.Reader.Normalize = f.normalize
	}
	if fs.Changed("workers") {
		cfg.Generator.Workers = f.workers
	}
	if fs.Changed("progress-period") {
		cfg.Generator.ProgressPeriod = f.progressPeriod
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if fs.Changed("log-level") {
		cfg.Logger.Level = f.logLevel
	}
	if fs.Changed("log-json") {
		cfg.Logger.IsJSON = f.logJSON
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(cfg *Config, stdout io.Writer) error {
	logging.InitLogger(cfg.Logger,
		slog.String("service", "wordperms"),
		slog.String("run_id", uuid.New().String()),
	)

	slog.Info("reading words...", slog.String("input", cfg.Input))

	words, err := wordlist.ReadFile(cfg.Input, *cfg.Reader)
	if err != nil {
		slog.Error("read words failed", slog.Any("error", err))
		return err
	}

	slog.Info("words read", slog.Int("words_count", len(words)))

	space := impl.NewSearchSpace(len(words), cfg.Generator.MaxLength, cfg.Generator.Capitalization)
	slog.Info("generating permutations...",
		slog.Int("max_length", space.MaxLength()),
		slog.String("capitalization", cfg.Generator.Capitalization.String()),
		slog.Uint64("combinations_total", space.TotalCombinations()),
		slog.Uint64("candidates_max", space.TotalCandidates()),
	)

	results := impl.NewEngine(cfg.Generator).Generate(words).Slice()
	if cfg.Sort {
		slices.Sort(results)
	}

	generated := len(results)
	results = generator.Truncate(results, pkg.ValueOr(cfg.Limit, -1))

	slog.Info("permutations generated",
		slog.Int("results_count", generated),
		slog.Int("results_written", len(results)),
	)

	if err := writeResults(cfg.Output, stdout, results); err != nil {
		slog.Error("write results failed", slog.Any("error", err))
		return err
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
			slog.Error("write metrics failed", slog.Any("error", err))
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	slog.Info("done")

	return nil
}

func writeResults(path string, stdout io.Writer, results []string) error {
	writer, err := wordlist.NewFileWriterOrStdout(path, stdout)
	if err != nil {
		return err
	}

	if err := writer.WriteLines(results); err != nil {
		_ = writer.Close()
		return err
	}

	return writer.Close()
}
