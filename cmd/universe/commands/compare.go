package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mattdell71/universe/cluster"
	"github.com/mattdell71/universe/dissim"
	"github.com/mattdell71/universe/silhouette"
)

// NewCompareCommand builds the `compare` command: score every candidate
// group count under every clustering method on one table and print the
// ASW grid.
func NewCompareCommand() *cobra.Command {
	var (
		configPath string
		valuesPath string
		sigmasPath string
		ks         []int
		methods    []string
		rooted     bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Score candidate group counts under all clustering methods",
		Long: `Compare loads a table of spectral-index measurements with per-cell
uncertainties, builds the error-weighted dissimilarity matrix, partitions it
for every candidate group count under every requested method, and prints the
Average Silhouette Width grid that ranks the candidates.`,
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
			if cmd.Flags().Changed("rooted") {
				cfg.Rooted = rooted
			}

			return runCompare(cfg, methods)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML run config (flags win over file values)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "CSV of observed values, one star per row")
	cmd.Flags().StringVar(&sigmasPath, "sigmas", "", "CSV of standard deviations, same shape")
	cmd.Flags().IntSliceVar(&ks, "ks", []int{2, 3, 4}, "candidate group counts")
	cmd.Flags().StringSliceVar(&methods, "methods",
		[]string{"divisive", "agglomerative", "medoid"}, "clustering methods to compare")
	cmd.Flags().BoolVar(&rooted, "rooted", false, "use the rooted (metric) distance transform")

	return cmd
}

func runCompare(cfg RunConfig, methodNames []string) error {
	tbl, err := loadTable(cfg.Values, cfg.Sigmas)
	if err != nil {
		return err
	}

	methods := make([]cluster.Method, 0, len(methodNames))
	for _, name := range methodNames {
		m, err := parseMethod(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		methods = append(methods, m)
	}

	d, err := dissim.Matrix(tbl, dissim.Options{Transform: transformOf(cfg.Rooted)})
	if err != nil {
		return err
	}

	scores, err := silhouette.Compare(d, cfg.Ks, methods)
	if err != nil {
		return err
	}

	renderScoreTable(scores)
	k, method, asw := scores.Best()
	fmt.Fprintf(os.Stdout, "best: k=%d by %s (ASW %.4f)\n", k, method, asw)

	return nil
}

// renderScoreTable prints the group-count × method ASW grid.
func renderScoreTable(scores *silhouette.ScoreTable) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	header := table.Row{"k"}
	for _, m := range scores.Methods {
		header = append(header, m.String())
	}
	t.AppendHeader(header)

	for ki, k := range scores.Ks {
		row := table.Row{k}
		for mi := range scores.Methods {
			row = append(row, fmt.Sprintf("%.4f", scores.At(ki, mi)))
		}
		t.AppendRow(row)
	}
	t.Render()
}
