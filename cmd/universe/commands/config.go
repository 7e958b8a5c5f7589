// Package commands implements CLI command handlers for universe.
package commands

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mattdell71/universe/cluster"
	"github.com/mattdell71/universe/dissim"
	"github.com/mattdell71/universe/resample"
)

// ErrUnknownClusteringMethod indicates a method name outside
// {divisive, agglomerative, medoid}.
var ErrUnknownClusteringMethod = errors.New(
	"unknown clustering method. Available: divisive, agglomerative, medoid")

// RunConfig mirrors every flag of the compare and stability commands, so a
// run can be captured in a YAML file and replayed. Explicit flags always
// win over file values.
type RunConfig struct {
	Values string `yaml:"values"`
	Sigmas string `yaml:"sigmas"`

	Ks     []int  `yaml:"ks"`
	Method string `yaml:"method"`
	Rooted bool   `yaml:"rooted"`

	Trials         int     `yaml:"trials"`
	Seed           int64   `yaml:"seed"`
	Workers        int     `yaml:"workers"`
	MaxFailureRate float64 `yaml:"max_failure_rate"`
}

// defaultRunConfig mirrors the library defaults.
func defaultRunConfig() RunConfig {
	opts := resample.DefaultOptions()

	return RunConfig{
		Ks:             opts.Ks,
		Method:         opts.Method.String(),
		Trials:         opts.Trials,
		Seed:           opts.Seed,
		Workers:        0, // 0 ⇒ let the library pick NumCPU
		MaxFailureRate: opts.MaxFailureRate,
	}
}

// loadRunConfig overlays a YAML file (when path is non-empty) onto the
// defaults. Flag values are applied afterwards by the caller, so the
// precedence is defaults < file < flags.
func loadRunConfig(path string) (RunConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// parseMethod maps a method name to its cluster.Method.
func parseMethod(name string) (cluster.Method, error) {
	switch name {
	case "agglomerative":
		return cluster.Agglomerative, nil
	case "divisive":
		return cluster.Divisive, nil
	case "medoid":
		return cluster.Medoid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownClusteringMethod, name)
	}
}

// transformOf maps the rooted flag to the dissimilarity transform.
func transformOf(rooted bool) dissim.Transform {
	if rooted {
		return dissim.Rooted
	}

	return dissim.SumOfSquares
}
