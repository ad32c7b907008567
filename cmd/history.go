package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/khanhnv2901/pqcheck/internal/checker"
	consts "github.com/khanhnv2901/pqcheck/internal/shared/constants"
)

// historyRecord is one line of the analyze history file.
type historyRecord struct {
	Timestamp       time.Time       `json:"timestamp"`
	Source          string          `json:"source"`
	Targets         []string        `json:"targets"`
	Summary         checker.Summary `json:"summary"`
	Verdicts        []historyEntry  `json:"verdicts"`
	DurationSeconds float64         `json:"duration_seconds"`
	AvgDurationSecs float64         `json:"avg_duration_per_target"`
}

// historyEntry is the outcome for one target, in run order.
type historyEntry struct {
	Host     string `json:"host"`
	Status   string `json:"status"`
	PQStatus string `json:"pq_status"`
}

func newHistoryRecord(source string, reports []*checker.Report, duration time.Duration) historyRecord {
	record := historyRecord{
		Timestamp:       time.Now().UTC(),
		Source:          source,
		Targets:         make([]string, 0, len(reports)),
		Summary:         checker.Summarize(reports),
		Verdicts:        make([]historyEntry, 0, len(reports)),
		DurationSeconds: duration.Seconds(),
	}
	for _, r := range reports {
		if r == nil {
			continue
		}
		record.Targets = append(record.Targets, r.Host)
		record.Verdicts = append(record.Verdicts, historyEntry{
			Host:     r.Host,
			Status:   r.Status,
			PQStatus: string(r.PQStatus),
		})
	}
	if len(reports) > 0 {
		record.AvgDurationSecs = duration.Seconds() / float64(len(reports))
	}
	return record
}

// appendHistory appends one JSON line describing an analyze run to path.
func appendHistory(path string, record historyRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, consts.DefaultDirPerm); err != nil {
			return fmt.Errorf("create history directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
