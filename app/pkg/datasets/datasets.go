// Package datasets materialises the numeric sequences described by the
// configuration file and computes their maximum subarray sums.
package datasets

import (
	"errors"
	"fmt"
	"strconv"

	assetshandler "maxsubarray/app/pkg/assets-handler"
	"maxsubarray/app/pkg/kadane"
	"maxsubarray/app/pkg/utils/slicex"

	"gopkg.in/yaml.v3"
)

type Dataset struct {
	Name string
	Type string

	// Only the slice matching Type is populated.
	Ints   []int64
	Floats []float64
}

func (d *Dataset) Len() int {
	if d.Type == assetshandler.TypeFloat64 {
		return len(d.Floats)
	}
	return len(d.Ints)
}

// MaxSubarraySum returns the maximum subarray sum formatted for reporting.
func (d *Dataset) MaxSubarraySum() (string, error) {
	switch d.Type {
	case assetshandler.TypeInt64:
		best, err := kadane.MaxSubarraySum(d.Ints)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(best, 10), nil
	case assetshandler.TypeFloat64:
		best, err := kadane.MaxSubarraySum(d.Floats)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(best, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("dataset %s: unsupported type %q", d.Name, d.Type)
	}
}

// Shapes reported by Stats.
const (
	ShapeAllNegative    = "all-negative"
	ShapeAllNonNegative = "all-non-negative"
	ShapeMixed          = "mixed"
	ShapeEmpty          = "empty"
)

type Stats struct {
	Shape      string
	MaxElement string
	Total      string
}

// Stats describes the dataset independently of the scan. For all-negative
// data the maximum subarray sum equals MaxElement, for all-non-negative data
// it equals Total.
func (d *Dataset) Stats() Stats {
	if d.Type == assetshandler.TypeFloat64 {
		return summarize(d.Floats, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
	}
	return summarize(d.Ints, func(v int64) string { return strconv.FormatInt(v, 10) })
}

func summarize[T slicex.Number](values []T, format func(T) string) Stats {
	largest, ok := slicex.Max(values)
	if !ok {
		return Stats{Shape: ShapeEmpty}
	}

	stats := Stats{Shape: ShapeMixed, MaxElement: format(largest), Total: format(slicex.Sum(values))}
	switch {
	case slicex.AllNegative(values):
		stats.Shape = ShapeAllNegative
	case slicex.AllNonNegative(values):
		stats.Shape = ShapeAllNonNegative
	}
	return stats
}

func Build(cfg *assetshandler.DatasetCfg) (Dataset, error) {
	ds := Dataset{Name: cfg.Name, Type: cfg.Type}
	if ds.Type == "" {
		ds.Type = assetshandler.TypeInt64
	}

	var err error
	switch {
	case cfg.HasValues():
		err = ds.decodeLiteral(cfg)
	case cfg.Generate != nil:
		err = ds.generate(cfg.Generate)
	case cfg.ValuesFile != "":
		err = ds.readFile(cfg.ValuesFile)
	default:
		err = errors.New("no values source")
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("error building dataset %s: %w", cfg.Name, err)
	}

	return ds, nil
}

func BuildAll(cfgs []assetshandler.DatasetCfg) ([]Dataset, error) {
	sets := make([]Dataset, len(cfgs))
	for idx := range cfgs {
		ds, err := Build(&cfgs[idx])
		if err != nil {
			return nil, err
		}
		sets[idx] = ds
	}
	return sets, nil
}

func (d *Dataset) decodeLiteral(cfg *assetshandler.DatasetCfg) error {
	if d.Type == assetshandler.TypeFloat64 {
		return cfg.Values.Decode(&d.Floats)
	}

	// yaml.v3 truncates floats decoded into ints, so check each tag first
	var nodes []yaml.Node
	if err := cfg.Values.Decode(&nodes); err != nil {
		return err
	}

	d.Ints = make([]int64, len(nodes))
	for idx := range nodes {
		node := &nodes[idx]
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
			return fmt.Errorf("literal value %d: %q is not an integer", idx, node.Value)
		}
		if err := node.Decode(&d.Ints[idx]); err != nil {
			return fmt.Errorf("literal value %d: %w", idx, err)
		}
	}
	return nil
}

func (d *Dataset) readFile(path string) error {
	tokens, err := assetshandler.ReadValuesFile(path)
	if err != nil {
		return err
	}

	if d.Type == assetshandler.TypeFloat64 {
		d.Floats = make([]float64, len(tokens))
		for idx, token := range tokens {
			if d.Floats[idx], err = strconv.ParseFloat(token, 64); err != nil {
				return fmt.Errorf("line value %d: %w", idx, err)
			}
		}
		return nil
	}

	d.Ints = make([]int64, len(tokens))
	for idx, token := range tokens {
		if d.Ints[idx], err = strconv.ParseInt(token, 10, 64); err != nil {
			return fmt.Errorf("line value %d: %w", idx, err)
		}
	}
	return nil
}
