package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnolang/fmtstr/internal/types"
)

// ProcessFiles checks every path, recursing into directories, and
// returns all issues found. Directories are processed with a bounded
// worker pool and a progress bar.
func ProcessFiles(ctx context.Context, logger *zap.Logger, engine *Engine, paths []string) ([]types.Issue, error) {
	var allIssues []types.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues, nil
}

// ProcessPath checks one file or directory tree.
func ProcessPath(ctx context.Context, logger *zap.Logger, engine *Engine, path string) ([]types.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if filepath.Ext(path) != ".go" {
			return nil, nil
		}
		return engine.Run(path)
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && filepath.Ext(filePath) == ".go" {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	type result struct {
		issues []types.Issue
		err    error
	}

	sem := make(chan struct{}, runtime.NumCPU())
	results := make(chan result, len(files))

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		sem <- struct{}{}
		go func(fp string) {
			defer func() { <-sem }()
			issues, err := engine.Run(fp)
			if err != nil && logger != nil {
				logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
			}
			bar.Add(1)
			results <- result{issues: issues, err: err}
		}(filePath)
	}

	var issues []types.Issue
	for range files {
		r := <-results
		if r.err != nil {
			continue
		}
		issues = append(issues, r.issues...)
	}

	fmt.Println()
	return issues, nil
}
