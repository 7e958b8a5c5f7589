package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mattdell71/universe/resample"
)

// NewStabilityCommand builds the `stability` command: Monte Carlo
// resampling of the full clustering pipeline under measurement noise.
func NewStabilityCommand() *cobra.Command {
	var (
		configPath     string
		valuesPath     string
		sigmasPath     string
		ks             []int
		method         string
		rooted         bool
		trials         int
		seed           int64
		workers        int
		maxFailureRate float64
		samplesOut     string
	)

	cmd := &cobra.Command{
		Use:   "stability",
		Short: "Monte Carlo resampling of the clustering under measurement noise",
		Long: `Stability repeats the whole pipeline over noise-perturbed resamples of
the measurement table: every trial redraws each value from a Gaussian with its
reported standard deviation, re-clusters, and scores each candidate group
count by its Average Silhouette Width. The per-k score distributions show how
much the "best group count" conclusion depends on the noise realization.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("values") {
				cfg.Values = valuesPath
			}
			if cmd.Flags().Changed("sigmas") {
				cfg.Sigmas = sigmasPath
			}
			if cmd.Flags().Changed("ks") {
				cfg.Ks = ks
			}
			if cmd.Flags().Changed("method") {
				cfg.Method = method
			}
			if cmd.Flags().Changed("rooted") {
				cfg.Rooted = rooted
			}
			if cmd.Flags().Changed("trials") {
				cfg.Trials = trials
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("max-failure-rate") {
				cfg.MaxFailureRate = maxFailureRate
			}

			return runStability(cfg, samplesOut)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML run config (flags win over file values)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "CSV of observed values, one star per row")
	cmd.Flags().StringVar(&sigmasPath, "sigmas", "", "CSV of standard deviations, same shape")
	cmd.Flags().IntSliceVar(&ks, "ks", []int{2, 3, 4}, "candidate group counts")
	cmd.Flags().StringVar(&method, "method", "agglomerative", "clustering method (divisive|agglomerative|medoid)")
	cmd.Flags().BoolVar(&rooted, "rooted", false, "use the rooted (metric) distance transform")
	cmd.Flags().IntVar(&trials, "trials", resample.DefaultTrials, "Monte Carlo trial count")
	cmd.Flags().Int64Var(&seed, "seed", resample.DefaultSeed, "RNG seed (fixed seed ⇒ reproducible run)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel trial workers (0 = all CPUs)")
	cmd.Flags().Float64Var(&maxFailureRate, "max-failure-rate", resample.DefaultMaxFailureRate,
		"tolerated fraction of failed trials")
	cmd.Flags().StringVar(&samplesOut, "samples-out", "",
		"write per-k ASW samples to this CSV for external plotting")

	return cmd
}

func runStability(cfg RunConfig, samplesOut string) error {
	tbl, err := loadTable(cfg.Values, cfg.Sigmas)
	if err != nil {
		return err
	}

	m, err := parseMethod(cfg.Method)
	if err != nil {
		return err
	}

	opts := resample.Options{
		Trials:         cfg.Trials,
		Ks:             cfg.Ks,
		Method:         m,
		Transform:      transformOf(cfg.Rooted),
		Workers:        cfg.Workers,
		Seed:           cfg.Seed,
		MaxFailureRate: cfg.MaxFailureRate,
	}

	result, err := resample.Run(tbl, opts)
	if err != nil {
		return err
	}

	renderSummaryTable(result)

	if n := result.FailureCount(); n > 0 {
		warn := color.New(color.FgYellow)
		warn.Fprintf(os.Stderr, "warning: %d of %d trials failed and were excluded\n",
			n, result.Trials)
		for _, f := range result.Failures {
			warn.Fprintf(os.Stderr, "  %v\n", f)
		}
	}

	if samplesOut != "" {
		if err = writeSamplesCSV(samplesOut, result.Ks, result.ByK); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "samples written to %s\n", samplesOut)
	}

	return nil
}

// renderSummaryTable prints the per-k five-number summary of the ASW
// distributions, one row per candidate group count.
func renderSummaryTable(result *resample.Result) {
	summaries := result.Summary()

	ks := append([]int(nil), result.Ks...)
	sort.Ints(ks)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"k", "trials", "min", "q1", "median", "q3", "max"})
	for _, k := range ks {
		s := summaries[k]
		t.AppendRow(table.Row{
			k, s.Count,
			fmt.Sprintf("%.4f", s.Min),
			fmt.Sprintf("%.4f", s.Q1),
			fmt.Sprintf("%.4f", s.Median),
			fmt.Sprintf("%.4f", s.Q3),
			fmt.Sprintf("%.4f", s.Max),
		})
	}
	t.Render()
}
