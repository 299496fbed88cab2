package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"fstats/internal/domain"
	"fstats/internal/events"
)

const defaultProgressInterval = 100 * time.Millisecond

var osReadDir = os.ReadDir

// FSScanner walks a directory tree with a pool of workers. Every worker keeps
// its own fragment of the aggregate and emits it once, when it runs out of
// directories to visit.
type FSScanner struct {
	logger           logrus.FieldLogger
	workers          int
	progressInterval time.Duration
}

func NewFSScanner(logger logrus.FieldLogger) *FSScanner {
	return &FSScanner{
		logger:           logger,
		workers:          max(2, runtime.NumCPU()),
		progressInterval: defaultProgressInterval,
	}
}

// WithWorkers overrides the pool size. Values below 1 are ignored.
func (scanner *FSScanner) WithWorkers(workers int) *FSScanner {
	if workers > 0 {
		scanner.workers = workers
	}
	return scanner
}

func (scanner *FSScanner) Start(ctx context.Context, req ScanRequest, sink events.Sink) (*ScanHandle, error) {
	cfg := req.Config
	cfg.Filters = slices.Clone(cfg.Filters)
	root := cfg.RootPath
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: root %s: %w", domain.ErrConfig, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: root %s is not a directory", domain.ErrConfig, root)
	}

	logger := scanner.logger.WithFields(logrus.Fields{
		"scan":    req.ID,
		"root":    root,
		"depth":   cfg.Depth,
		"ignores": cfg.RespectIgnoreFiles,
		"hidden":  cfg.IncludeHidden,
		"filters": len(cfg.Filters),
	})

	scanCtx, cancel := context.WithCancel(ctx)
	handle := newScanHandle(req.ID, cancel)
	queue := newDirQueue()
	stopAbort := context.AfterFunc(scanCtx, queue.abort)
	queue.push(dirJob{path: root})

	go func() {
		defer handle.finish()
		defer cancel()
		defer stopAbort()

		start := time.Now()
		logger.WithField("workers", scanner.workers).Info("scan started")

		var group errgroup.Group
		for i := 0; i < scanner.workers; i++ {
			worker := &scanWorker{
				id:               req.ID,
				cfg:              cfg,
				filters:          domain.NewFilterSet(cfg.Filters),
				queue:            queue,
				sink:             sink,
				logger:           logger.WithField("worker", i),
				fragment:         make(domain.AggregateMap),
				progressInterval: scanner.progressInterval,
			}
			group.Go(func() error {
				return worker.run(scanCtx)
			})
		}
		waitErr := group.Wait()

		elapsed := time.Since(start)
		entry := logger.WithField("elapsed", elapsed)
		if waitErr != nil {
			entry.WithError(waitErr).Warn("scan stopped early")
		} else {
			entry.Info("scan complete")
		}
		sendOrLog(sink, events.ScanComplete{ScanID: req.ID, Elapsed: elapsed}, logger)
	}()

	return handle, nil
}

type scanWorker struct {
	id               uint64
	cfg              domain.ScanConfig
	filters          domain.FilterSet
	queue            *dirQueue
	sink             events.Sink
	logger           logrus.FieldLogger
	fragment         domain.AggregateMap
	progressInterval time.Duration
	lastProgress     time.Time
}

// run visits directories until the queue drains. The fragment is emitted on
// every exit path.
func (worker *scanWorker) run(ctx context.Context) error {
	defer func() {
		sendOrLog(worker.sink, events.PartialResults{ScanID: worker.id, Fragment: worker.fragment}, worker.logger)
	}()
	for {
		job, ok := worker.queue.pop()
		if !ok {
			return ctx.Err()
		}
		worker.visit(job)
		worker.queue.finish()
	}
}

func (worker *scanWorker) visit(job dirJob) {
	worker.reportProgress(job.segments)

	entries, err := osReadDir(job.path)
	if err != nil {
		entry := worker.logger.WithError(err).WithField("path", job.path)
		if isPermissionErr(err) {
			entry.Debug("skipping unreadable directory")
		} else {
			entry.Warn("failed to read directory")
		}
		if len(entries) == 0 {
			return
		}
	}

	rules := job.rules
	if worker.cfg.RespectIgnoreFiles {
		extended, ruleErr := rules.extend(job.path, job.segments)
		if ruleErr != nil {
			worker.logger.WithError(ruleErr).WithField("path", job.path).Warn("failed to read ignore file")
		}
		rules = extended
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if !worker.cfg.IncludeHidden && isHidden(name) {
			continue
		}
		segments := append(slices.Clip(job.segments), name)
		isDir := entry.IsDir()
		if rules.ignored(segments, isDir) {
			continue
		}
		if isDir {
			worker.queue.push(dirJob{
				path:     filepath.Join(job.path, name),
				segments: segments,
				rules:    rules,
			})
			continue
		}
		if !entry.Type().IsRegular() || !worker.filters.Match(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			worker.logger.WithError(err).WithField("path", filepath.Join(job.path, name)).Debug("skipping file")
			continue
		}
		worker.credit(job.segments, uint64(info.Size()))
	}
}

// credit adds a file's size to its enclosing folders, from the scan root down
// to at most cfg.Depth levels below it.
func (worker *scanWorker) credit(parent []string, size uint64) {
	stat := domain.FolderStat{Size: size, Files: 1}
	limit := min(len(parent), worker.cfg.Depth)
	for level := 0; level <= limit; level++ {
		worker.fragment.Add(folderKey(parent[:level]), stat)
	}
}

func (worker *scanWorker) reportProgress(segments []string) {
	now := time.Now()
	if now.Sub(worker.lastProgress) < worker.progressInterval {
		return
	}
	worker.lastProgress = now
	folder := folderKey(segments)
	if folder == "" {
		folder = worker.cfg.RootPath
	}
	sendOrLog(worker.sink, events.FolderProgress{ScanID: worker.id, Folder: folder}, worker.logger)
}
