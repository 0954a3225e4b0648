package runner

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

type Report struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	Failed      int       `yaml:"failed"`
	Results     []Result  `yaml:"results"`
}

func WriteReport(w io.Writer, results []Result) error {
	report := Report{
		GeneratedAt: time.Now().UTC(),
		Failed:      Failed(results),
		Results:     results,
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	return enc.Close()
}
