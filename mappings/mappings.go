// Package mappings consumes the output contract of the remote
// identifier-mapping harvester: files of tab-separated
// (source-entity-IRI, target-entity-IRI) pairs. The harvester itself -
// pagination, rate-limit backoff, batching - is an external collaborator
// and is not reproduced here.
package mappings

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/TTa77/PheKnowLator/errors"
)

// Pair is one cross-ontology identifier mapping.
type Pair struct {
	Source string
	Target string
}

// ReadPairs parses a harvested mapping file. The harvester's writer appends
// a trailing blank line; blank lines are tolerated anywhere. Duplicate
// pairs are eliminated and the result is sorted for determinism.
func ReadPairs(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapNotFound(
				fmt.Errorf("%w: %s", errors.ErrFileNotFound, path),
				"mappings", "ReadPairs", "open mapping file")
		}
		return nil, errors.WrapIO(err, "mappings", "ReadPairs", "open mapping file")
	}
	defer f.Close()

	seen := make(map[Pair]struct{})
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: line %d: expected 2 tab-separated identifiers", errors.ErrMalformedInput, lineNo),
				"mappings", "ReadPairs", "parse mapping line")
		}
		seen[Pair{Source: fields[0], Target: fields[1]}] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO(err, "mappings", "ReadPairs", "read mapping file")
	}

	out := make([]Pair, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out, nil
}

// Index groups pairs by source identifier.
func Index(pairs []Pair) map[string][]string {
	out := make(map[string][]string)
	for _, p := range pairs {
		out[p.Source] = append(out[p.Source], p.Target)
	}
	return out
}
