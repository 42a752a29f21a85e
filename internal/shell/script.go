package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds how many script files are read at once.
const maxConcurrentReads = 4

// LoadScripts reads the command lines of every path. The path "-" reads
// from stdin. Files are read concurrently; the result keeps the order of
// paths so the commands run as if the files were concatenated.
//
// Stdin is read once, before the files; every "-" gets the same lines.
func LoadScripts(ctx context.Context, paths []string, stdin io.Reader) ([]string, error) {
	chunks := make([][]string, len(paths))

	var fromStdin []string
	if slices.Contains(paths, "-") {
		lines, err := readLines(stdin)
		if err != nil {
			return nil, fmt.Errorf("read script -: %w", err)
		}
		fromStdin = lines
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, p := range paths {
		if p == "-" {
			chunks[i] = fromStdin
			continue
		}
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := readFile(p)
			if err != nil {
				return fmt.Errorf("read script %s: %w", p, err)
			}
			chunks[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []string
	for _, c := range chunks {
		all = append(all, c...)
	}
	return all, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
