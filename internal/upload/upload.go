// Package upload manages request-scoped scratch files for uploaded reports.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	filePrefix = "temp_"
	fileSuffix = ".pdf"
)

// Save copies src into a new temp_<uuid>.pdf file under dir. The returned
// cleanup removes the file and is safe to call more than once.
func Save(dir string, src io.Reader) (string, func(), error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", nil, fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(dir, filePrefix+uuid.NewString()+fileSuffix)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", nil, fmt.Errorf("create upload file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.WithError(err).WithField("path", path).Warn("failed to remove upload")
		}
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close upload file: %w", err)
	}

	return path, cleanup, nil
}
