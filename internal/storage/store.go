// Package storage persists finished runs: JSON metadata plus one CSV time
// series per droplet.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/amolrajan/FLA-vap/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Fluid     string             `json:"fluid"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Droplets  int                `json:"droplets"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

var historyHeader = []string{"time", "temperature", "diameter", "evap_rate", "det", "number_density"}

func (s *Store) Save(fluid string, dt, duration float64, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", fluid, uuid.New().String()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Fluid:     fluid,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Droplets:  len(result.Histories),
		Steps:     result.StepsTaken,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	for _, hist := range result.Histories {
		if err := s.writeHistory(runDir, hist); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) writeHistory(runDir string, hist *sim.History) error {
	file, err := os.Create(filepath.Join(runDir, fmt.Sprintf("droplet_%03d.csv", hist.ID)))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(historyHeader); err != nil {
		return err
	}
	for i := range hist.Times {
		row := []string{
			strconv.FormatFloat(hist.Times[i], 'g', 9, 64),
			strconv.FormatFloat(hist.Temperature[i], 'g', 9, 64),
			strconv.FormatFloat(hist.Diameter[i], 'g', 9, 64),
			strconv.FormatFloat(hist.EvapRate[i], 'g', 9, 64),
			strconv.FormatFloat(hist.Det[i], 'g', 9, 64),
			strconv.FormatFloat(hist.NumberDensity[i], 'g', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadHistory reads one droplet's CSV back as columns keyed by header name.
func (s *Store) LoadHistory(runID string, dropletID int) (map[string][]float64, error) {
	path := filepath.Join(s.baseDir, runID, fmt.Sprintf("droplet_%03d.csv", dropletID))
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty history: %s", path)
	}

	cols := make(map[string][]float64, len(rows[0]))
	for _, row := range rows[1:] {
		for j, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, err
			}
			cols[rows[0][j]] = append(cols[rows[0][j]], v)
		}
	}
	return cols, nil
}
