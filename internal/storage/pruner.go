package storage

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// RetentionPruner deletes local debug copies older than the retention
// window. Debug audio is ephemeral; nothing is backed up first.
type RetentionPruner struct {
	dir       string
	retention time.Duration
	interval  time.Duration
	log       zerolog.Logger
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewRetentionPruner creates an age-based pruner for dir.
func NewRetentionPruner(dir string, retention time.Duration, log zerolog.Logger) *RetentionPruner {
	return &RetentionPruner{
		dir:       dir,
		retention: retention,
		interval:  1 * time.Hour,
		log:       log.With().Str("component", "audio-pruner").Logger(),
		stop:      make(chan struct{}),
	}
}

func (p *RetentionPruner) Start() {
	go p.loop()
}

func (p *RetentionPruner) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

func (p *RetentionPruner) loop() {
	// Run once on startup to clear any backlog from downtime
	p.prune()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.prune()
		case <-p.stop:
			return
		}
	}
}

func (p *RetentionPruner) prune() {
	if p.retention <= 0 {
		return
	}

	cutoff := time.Now().Add(-p.retention)
	var prunedCount int

	filepath.WalkDir(p.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err == nil {
				prunedCount++
			}
		}
		return nil
	})

	p.removeEmptyDirs()

	if prunedCount > 0 {
		p.log.Info().Int("pruned", prunedCount).Msg("debug audio prune complete")
	}
}

// removeEmptyDirs clears out date directories left behind after pruning.
func (p *RetentionPruner) removeEmptyDirs() {
	entries, _ := os.ReadDir(p.dir)
	for _, dateDir := range entries {
		if !dateDir.IsDir() {
			continue
		}
		datePath := filepath.Join(p.dir, dateDir.Name())
		remaining, _ := os.ReadDir(datePath)
		if len(remaining) == 0 {
			os.Remove(datePath)
		}
	}
}
