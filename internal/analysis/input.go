package analysis

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/clusterscan/internal/parser"
)

// ReadSources gathers the text of every input path in argument order into
// one logical stream, or reads stdin when no paths are given. Files with a
// recognized document extension are run through the matching extractor first;
// anything else is treated as plain text. An unreadable or unparseable file
// is skipped with a diagnostic on stderr rather than failing the run.
func ReadSources(paths []string, stdin io.Reader) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	var parts []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v (skipped)\n", path, err)
			continue
		}
		text, err := parser.ExtractText(f, path)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v (skipped)\n", path, err)
			continue
		}
		parts = append(parts, text)
	}
	// A blank line between sources keeps each file's final paragraph from
	// running into the next file's first.
	return strings.Join(parts, "\n\n"), nil
}
