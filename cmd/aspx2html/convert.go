package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	aspx2html "github.com/mkume/go-aspx2html"
	"github.com/mkume/go-aspx2html/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input directory specified")
	ErrNoOutput           = errors.New("no output directory specified")
	ErrInvalidInputDir    = errors.New("input path does not exist or is not a directory")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrCreateOutputDir    = errors.New("failed to create output directory")
	ErrReadSource         = errors.New("failed to read source file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File extensions and permission constants.
const (
	sourceExt = ".aspx"
	outputExt = ".html"

	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read

	maxWorkers = 32
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	inputDir, outputDir, err := resolveDirs(args, cfg)
	if err != nil {
		return err
	}

	if !aspx2html.ValidEncoding(cfg.Input.Encoding) {
		return fmt.Errorf("%w: %q", aspx2html.ErrUnsupportedEncoding, cfg.Input.Encoding)
	}

	// The input directory must exist before any processing begins.
	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidInputDir, inputDir)
	}

	files, err := discoverFiles(inputDir, outputDir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", inputDir, err)
	}

	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}

	// An empty input directory is not an error.
	if len(files) == 0 {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "No %s files found in %s\n", sourceExt, inputDir)
		}
		return nil
	}

	svc := aspx2html.New(
		aspx2html.WithLang(cfg.Document.Lang),
		aspx2html.WithDefaultTitle(cfg.Document.DefaultTitle),
	)

	workers := resolveWorkerCount(flags.workers, len(files))
	results := convertBatch(ctx, svc, files, cfg.Input.Encoding, workers)
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.encoding != "" {
		cfg.Input.Encoding = flags.encoding
	}
	if flags.lang != "" {
		cfg.Document.Lang = flags.lang
	}
	if flags.defaultTitle != "" {
		cfg.Document.DefaultTitle = flags.defaultTitle
	}
}

// resolveDirs determines the input and output directories from positional
// args, falling back to config defaults.
func resolveDirs(args []string, cfg *config.Config) (inputDir, outputDir string, err error) {
	if len(args) > 2 {
		return "", "", fmt.Errorf("%w: %s", ErrUnexpectedArgument, args[2])
	}

	inputDir = cfg.Input.DefaultDir
	if len(args) > 0 {
		inputDir = args[0]
	}
	if inputDir == "" {
		return "", "", ErrNoInput
	}

	outputDir = cfg.Output.DefaultDir
	if len(args) > 1 {
		outputDir = args[1]
	}
	if outputDir == "" {
		return "", "", ErrNoOutput
	}

	return inputDir, outputDir, nil
}

// discoverFiles lists the .aspx files directly inside inputDir.
// Subdirectories are not descended into.
func discoverFiles(inputDir, outputDir string) ([]FileToConvert, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var files []FileToConvert
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != sourceExt {
			continue
		}
		files = append(files, FileToConvert{
			InputPath:  filepath.Join(inputDir, name),
			OutputPath: filepath.Join(outputDir, outputFileName(name)),
		})
	}

	return files, nil
}

// outputFileName returns the .html name for a source file name.
func outputFileName(sourceName string) string {
	base := sourceName[:len(sourceName)-len(sourceExt)]
	return base + outputExt
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// resolveWorkerCount determines the worker count for a batch.
// Priority: explicit flag > GOMAXPROCS (adjusted by automaxprocs), capped at
// the number of files.
func resolveWorkerCount(flagWorkers, fileCount int) int {
	n := flagWorkers
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > fileCount {
		n = fileCount
	}
	if n < 1 {
		n = 1
	}
	return n
}

// convertBatch processes files concurrently. The first failure cancels the
// remaining jobs; there is no skip-and-continue.
func convertBatch(ctx context.Context, svc *aspx2html.Service, files []FileToConvert, encoding string, workers int) []ConversionResult {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], encoding)
				if results[idx].Err != nil {
					cancel()
				}
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, svc *aspx2html.Service, f FileToConvert, encoding string) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	raw, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadSource, err)
		result.Duration = time.Since(start)
		return result
	}

	source, err := aspx2html.DecodeText(raw, encoding)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	converted, err := svc.Convert(ctx, aspx2html.Input{Source: source})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- generated HTML is meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(converted.HTML), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	result.Duration = time.Since(start)
	return result
}

// printResults writes one progress line per converted file and returns the
// error that aborted the run, if any.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) error {
	// A worker that hit a real error cancels the context, so later slots may
	// hold context.Canceled; report the underlying failure instead.
	var firstErr error
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if errors.Is(r.Err, context.Canceled) {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", r.InputPath, r.Err)
			}
			continue
		}
		firstErr = fmt.Errorf("%s: %w", r.InputPath, r.Err)
		break
	}

	for _, r := range results {
		if r.Err != nil || quiet {
			continue
		}
		in := filepath.Base(r.InputPath)
		out := filepath.Base(r.OutputPath)
		if verbose {
			fmt.Fprintf(env.Stdout, "Converted: %s -> %s (%v)\n", in, out, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Converted: %s -> %s\n", in, out)
		}
	}

	return firstErr
}
