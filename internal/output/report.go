package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for a format name that matches no formatter or alias.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// allFormats are written, in order, by the "all" pseudo-format.
var allFormats = []string{"console", "detailed-csv", "json", "html"}

// GenerateReport writes the results in the requested format into dir and returns the written paths.
func GenerateReport(results *domain.PlanResult, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range allFormats {
			f := GetFormatterByName(name)
			p, err := WriteFormatted(f, results, dir, Extension(f))
			if err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	p, err := WriteFormatted(f, results, dir, Extension(f))
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}
