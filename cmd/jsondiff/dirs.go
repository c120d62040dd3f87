package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-jsondiff/pkg/jsondiff"
)

// fileResult is the outcome of comparing one relative path across the two
// directories.
type fileResult struct {
	rel string
	// onlyIn is "lhs" or "rhs" when the file exists on one side only.
	onlyIn string
	diffs  []jsondiff.Difference
}

func (r fileResult) clean() bool {
	return r.onlyIn == "" && len(r.diffs) == 0
}

func runDirs(lhsDir, rhsDir string, cfg *jsondiff.Config, opts options, stdout io.Writer, logger zerolog.Logger) int {
	results, err := compareDirs(context.Background(), lhsDir, rhsDir, cfg, opts.concurrency)
	if err != nil {
		logger.Error().Err(err).Msg("comparison failed")

		return exitIOError
	}

	code := exitMatch
	for _, res := range results {
		if res.clean() {
			continue
		}
		code = exitDifferences

		fmt.Fprintf(stdout, "=== %s\n", res.rel)
		if res.onlyIn != "" {
			missingFrom := "rhs"
			if res.onlyIn == "rhs" {
				missingFrom = "lhs"
			}
			fmt.Fprintf(stdout, "json file %q is missing from %s\n", res.rel, missingFrom)

			continue
		}
		printDifferences(stdout, res.diffs)
	}

	logger.Info().
		Str("lhs", lhsDir).
		Str("rhs", rhsDir).
		Int("files", len(results)).
		Bool("match", code == exitMatch).
		Msg("directory comparison finished")

	return code
}

// compareDirs pairs files by relative path and diffs every pair, at most
// concurrency pairs at a time. Results come back sorted by relative path.
func compareDirs(ctx context.Context, lhsDir, rhsDir string, cfg *jsondiff.Config, concurrency int) ([]fileResult, error) {
	lhsFiles, err := listJSONFiles(lhsDir)
	if err != nil {
		return nil, err
	}
	rhsFiles, err := listJSONFiles(rhsDir)
	if err != nil {
		return nil, err
	}

	rels := unionSorted(lhsFiles, rhsFiles)
	results := make([]fileResult, len(rels))

	if concurrency < 1 {
		concurrency = 1
	}

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(concurrency)
	for idx, rel := range rels {
		localIdx, localRel := idx, rel
		errGrp.Go(func() error {
			select {
			case <-dCtx.Done():
				return errors.Wrapf(dCtx.Err(), "%s:", localRel)
			default:
			}

			res := fileResult{rel: localRel}
			switch {
			case !lhsFiles[localRel]:
				res.onlyIn = "rhs"
			case !rhsFiles[localRel]:
				res.onlyIn = "lhs"
			default:
				diffs, err := compareFiles(filepath.Join(lhsDir, localRel), filepath.Join(rhsDir, localRel), cfg)
				if err != nil {
					return errors.Wrapf(err, "%s:", localRel)
				}
				res.diffs = diffs
			}
			results[localIdx] = res

			return nil
		})
	}

	err = errGrp.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

// listJSONFiles returns the set of .json files under root, keyed by relative
// path.
func listJSONFiles(root string) (map[string]bool, error) {
	files := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[rel] = true

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to walk %s", root)
	}

	return files, nil
}

func unionSorted(lhs, rhs map[string]bool) []string {
	rels := make([]string, 0, len(lhs)+len(rhs))
	for rel := range lhs {
		rels = append(rels, rel)
	}
	for rel := range rhs {
		if !lhs[rel] {
			rels = append(rels, rel)
		}
	}
	sort.Strings(rels)

	return rels
}
