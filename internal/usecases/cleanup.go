package usecases

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// CleanupService purges aged ingest buffers from the temp dir. Buffers are
// normally removed at request end; this catches what a crashed or aborted
// request left behind.
type CleanupService interface {
	CleanupOldTempFiles(maxAge time.Duration) error
}

type cleanupService struct {
	tempDir string
}

func NewCleanupService(tempDir string) CleanupService {
	return &cleanupService{tempDir: tempDir}
}

func (s *cleanupService) CleanupOldTempFiles(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.tempDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				log.Printf("could not remove old temp file %s: %v", path, err)
				continue
			}
			log.Printf("removed old temp file: %s", path)
		}
	}
	return nil
}
