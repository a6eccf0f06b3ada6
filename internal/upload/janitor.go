package upload

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Janitor periodically deletes upload files left behind by a crashed
// process.
type Janitor struct {
	dir    string
	maxAge time.Duration
	cron   *cron.Cron
	now    func() time.Time
}

func NewJanitor(dir string, maxAge time.Duration) *Janitor {
	return &Janitor{
		dir:    dir,
		maxAge: maxAge,
		cron:   cron.New(),
		now:    time.Now,
	}
}

// Start schedules Sweep with a cron spec such as "@every 10m".
func (j *Janitor) Start(spec string) error {
	if _, err := j.cron.AddFunc(spec, func() {
		if n := j.Sweep(); n > 0 {
			log.WithField("removed", n).Info("swept stale uploads")
		}
	}); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop halts scheduling and waits for a running sweep.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

// Sweep removes temp_*.pdf files older than maxAge and returns how many
// were removed.
func (j *Janitor) Sweep() int {
	matches, err := filepath.Glob(filepath.Join(j.dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		log.WithError(err).Warn("upload sweep glob failed")
		return 0
	}

	cutoff := j.now().Add(-j.maxAge)
	removed := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			log.WithError(err).WithField("path", path).Warn("failed to remove stale upload")
			continue
		}
		removed++
	}
	return removed
}
