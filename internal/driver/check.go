// Package driver orchestrates checking runs: one report engine per input
// file, fanned out across workers, with every file's recorded messages
// merged back into a parent engine under the parent's own thresholds.
package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"skema/internal/report"
	"skema/internal/translate"
	"skema/internal/walker"
)

// Config carries the per-run policy. Thresholds apply to each file's
// child engine and to the parent engine that absorbs them.
type Config struct {
	LogAt       report.Severity
	AbortAt     report.Severity
	MaxMessages int
	MaxDepth    int
	Jobs        int
	Table       *translate.Table
	Cache       *Cache
	CacheSalt   string
	Log         *logrus.Logger
}

func (c Config) table() *translate.Table {
	if c.Table != nil {
		return c.Table
	}
	return translate.Default()
}

func (c Config) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	return log
}

// FileResult is the outcome of checking a single file.
type FileResult struct {
	Path     string
	Messages []report.Message
	Worst    report.Severity
	Aborted  *report.AbortError
	Cached   bool
}

// DirResult aggregates a directory run. Messages holds the parent
// engine's recorded sequence; Worst is the parent watermark.
type DirResult struct {
	Files    []FileResult
	Messages []report.Message
	Worst    report.Severity
	Success  bool
}

// CheckFile runs the full walker pipeline over one JSON document with a
// fresh child engine. The returned FileResult captures an abort instead
// of surfacing it as an error: deciding whether a file-level abort kills
// the whole run is the caller's business.
func CheckFile(path string, cfg Config) (FileResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	if cfg.Cache != nil {
		if res, ok := cfg.Cache.Get(raw, cfg.CacheSalt); ok {
			cfg.logger().WithField("path", path).Debug("cache hit")
			res.Path = path
			res.Cached = true
			return res, nil
		}
	}

	res := checkDocument(path, raw, cfg)

	if cfg.Cache != nil && res.Aborted == nil {
		if err := cfg.Cache.Put(raw, cfg.CacheSalt, res); err != nil {
			cfg.logger().WithError(err).WithField("path", path).Warn("cache write failed")
		}
	}
	return res, nil
}

func checkDocument(path string, raw []byte, cfg Config) FileResult {
	sink := report.NewDedupSink(report.NewBag(cfg.MaxMessages))
	eng := report.NewEngine(sink, cfg.LogAt, cfg.AbortAt)
	res := FileResult{Path: path}

	finish := func(err error) FileResult {
		var abort *report.AbortError
		if errors.As(err, &abort) {
			res.Aborted = abort
		}
		res.Messages = sink.Messages()
		res.Worst = eng.Worst()
		return res
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return finish(eng.Error(report.Newf(path, "invalid JSON: %v", err)))
	}

	// Каждый walker — отдельный поток сообщений; уровень выбирает
	// драйвер, не walker.
	stages := []struct {
		walk     walker.Walker
		dispatch func(*report.Engine, report.Message) error
	}{
		{walker.Outline{Doc: doc}, (*report.Engine).Debug},
		{walker.Refs{Doc: doc, Table: cfg.table()}, (*report.Engine).Info},
		{walker.Problems{Doc: doc, MaxDepth: cfg.MaxDepth}, (*report.Engine).Error},
	}
	for _, stage := range stages {
		for _, msg := range stage.walk.Walk() {
			if err := stage.dispatch(eng, msg); err != nil {
				return finish(err)
			}
		}
	}
	return finish(nil)
}

// CheckDir checks every *.json file under dir and merges the per-file
// results into a parent engine in sorted path order. If any file
// aborted, or a merged message crosses the parent's abort threshold, the
// partial DirResult is returned together with the abort.
func CheckDir(ctx context.Context, dir string, cfg Config) (DirResult, error) {
	files, err := listJSONFiles(dir)
	if err != nil {
		return DirResult{}, err
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) && len(files) > 0 {
		jobs = len(files)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := CheckFile(path, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DirResult{}, err
	}

	parentBag := report.NewBag(cfg.MaxMessages)
	parent := report.NewEngine(parentBag, cfg.LogAt, cfg.AbortAt)

	out := DirResult{Files: results}
	seal := func(abort error) (DirResult, error) {
		out.Messages = parentBag.Messages()
		out.Worst = parent.Worst()
		out.Success = parent.IsSuccess() && abort == nil
		return out, abort
	}

	for _, res := range results {
		if res.Aborted != nil {
			return seal(res.Aborted)
		}
		if err := parent.Merge(res.Messages); err != nil {
			return seal(err)
		}
	}
	return seal(nil)
}

func listJSONFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}
