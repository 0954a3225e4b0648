package assetshandler

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadValuesFile returns the raw tokens of a plain text values file: one
// number per line, blank lines and lines starting with '#' skipped.
func ReadValuesFile(path string) ([]string, error) {
	vFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening values file: %w", err)
	}
	defer vFile.Close()

	scanner := bufio.NewScanner(vFile)
	var values []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading values file %s: %w", path, err)
	}

	return values, nil
}
