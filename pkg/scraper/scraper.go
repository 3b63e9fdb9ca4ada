package scraper

import (
	"errors"
	"fmt"
	"io"
	"time"

	"leaguefetch/pkg/archive"
	"leaguefetch/pkg/config"
	fetcherrors "leaguefetch/pkg/errors"
	"leaguefetch/pkg/fetcher"
	"leaguefetch/pkg/logger"
	"leaguefetch/pkg/storage"
	"leaguefetch/pkg/ui"
)

const (
	FirstID     = 1
	LastID      = 10000
	DownloadDir = "downloaded_images"
	ArchiveName = "downloaded_images.zip"
)

// Options fixes where images come from and where they end up
type Options struct {
	BaseURL     string
	FirstID     int
	LastID      int
	DownloadDir string
	ArchivePath string
}

// DefaultOptions returns the hard-coded production range and paths
func DefaultOptions() Options {
	return Options{
		BaseURL:     fetcher.DefaultBaseURL,
		FirstID:     FirstID,
		LastID:      LastID,
		DownloadDir: DownloadDir,
		ArchivePath: ArchiveName,
	}
}

// Validate checks that the options describe a usable run
func (o Options) Validate() error {
	var errs []error
	if o.BaseURL == "" {
		errs = append(errs, errors.New("base URL is required"))
	}
	if o.FirstID > o.LastID {
		errs = append(errs, fmt.Errorf("first ID %d is greater than last ID %d", o.FirstID, o.LastID))
	}
	if o.DownloadDir == "" {
		errs = append(errs, errors.New("download directory is required"))
	}
	if o.ArchivePath == "" {
		errs = append(errs, errors.New("archive path is required"))
	}
	return errors.Join(errs...)
}

// Summary is the outcome of one run
type Summary struct {
	Attempted  int
	Downloaded int
	Skipped    int
	Bytes      int64
	Archive    *archive.Result
	Duration   time.Duration
}

// Scraper orchestrates the fetch loop and the final archive
type Scraper struct {
	client  ImageClient
	storage *storage.Manager
	console *ui.Console
	opts    Options
	logger  logger.Logger
}

// New creates a Scraper using the HTTP settings from cfg
func New(cfg *config.Config, opts Options) (*Scraper, error) {
	log := logger.GetLogger()
	return NewWithClient(fetcher.NewClient(&cfg.HTTP, log), opts, ui.NewConsole(nil), log)
}

// NewWithClient creates a Scraper with explicit collaborators
func NewWithClient(client ImageClient, opts Options, console *ui.Console, log logger.Logger) (*Scraper, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if log == nil {
		log = logger.GetLogger()
	}
	if console == nil {
		console = ui.NewConsole(nil)
	}

	return &Scraper{
		client:  client,
		storage: storage.New(opts.DownloadDir),
		console: console,
		opts:    opts,
		logger:  log,
	}, nil
}

// Run fetches every ID in range, then archives the download directory.
// Per-ID failures are never returned; only an archive failure is.
func (s *Scraper) Run() (*Summary, error) {
	start := time.Now()
	summary := &Summary{}

	s.logger.InfoWithFields("Starting league logo fetch", map[string]interface{}{
		"base_url":     s.opts.BaseURL,
		"first_id":     s.opts.FirstID,
		"last_id":      s.opts.LastID,
		"download_dir": s.opts.DownloadDir,
	})

	if err := s.storage.EnsureDir(); err != nil {
		// Every save below will fail and be reported as a skip
		s.logger.WithError(err).Warn("Failed to create download directory")
	}

	for id := s.opts.FirstID; id <= s.opts.LastID; id++ {
		summary.Attempted++

		n, err := s.fetchOne(id)
		if err != nil {
			summary.Skipped++
			s.console.Skipped(id, err.Error())
			continue
		}

		summary.Downloaded++
		summary.Bytes += n
		s.console.Downloaded(id)
	}

	s.console.Summary(summary.Downloaded, summary.Skipped)

	result, err := archive.CreateZip(s.opts.DownloadDir, s.opts.ArchivePath)
	summary.Duration = time.Since(start)
	if err != nil {
		s.logger.WithError(err).WithField("archive", s.opts.ArchivePath).Error("Failed to create archive")
		return summary, fmt.Errorf("failed to create archive: %w", err)
	}
	summary.Archive = result
	s.console.Archived(result.Path, result.Files)

	s.logger.InfoWithFields("League logo fetch completed", map[string]interface{}{
		"downloaded": summary.Downloaded,
		"skipped":    summary.Skipped,
		"bytes":      summary.Bytes,
		"archive":    result.Path,
		"archived":   result.Files,
		"duration":   summary.Duration,
	})

	return summary, nil
}

// fetchOne downloads a single ID. On failure the ID's file is removed.
func (s *Scraper) fetchOne(id int) (int64, error) {
	url := fetcher.ImageURL(s.opts.BaseURL, id)

	n, err := s.client.Fetch(url, func(body io.Reader) (int64, error) {
		return s.storage.SaveImage(body, id)
	})
	if err == nil {
		s.logger.DebugWithFields("Image downloaded", map[string]interface{}{
			"id":    id,
			"bytes": n,
		})
		return n, nil
	}

	if rmErr := s.storage.Remove(id); rmErr != nil {
		s.logger.WithError(rmErr).WithField("id", id).Warn("Failed to remove file for skipped ID")
	}

	s.logger.DebugWithFields("Image skipped", map[string]interface{}{
		"id":     id,
		"reason": string(fetcherrors.Classify(err)),
		"error":  err.Error(),
	})
	return 0, err
}
