// Package storage persists computed layout sets as export artifacts: a
// metadata file plus a CSV of every formation's target transforms. These
// snapshots are inputs for external tooling, not session state.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/morph/internal/layout"
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

type SnapshotMetadata struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Timestamp  time.Time `json:"timestamp"`
	Count      int       `json:"count"`
	Formations []string  `json:"formations"`
}

var targetHeader = []string{"formation", "index", "px", "py", "pz", "rx", "ry", "rz"}

// Save writes a snapshot of the set under a fresh snapshot directory and
// returns its ID.
func (s *Store) Save(name string, set *layout.Set) (string, error) {
	id := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	formations := layout.Formations()
	names := make([]string, len(formations))
	for i, f := range formations {
		names[i] = string(f)
	}
	meta := SnapshotMetadata{
		ID:         id,
		Name:       name,
		Timestamp:  time.Now(),
		Count:      set.Count(),
		Formations: names,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "targets.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(targetHeader); err != nil {
		return "", err
	}
	for _, f := range formations {
		for i, tr := range set.Targets(f) {
			row := []string{string(f), strconv.Itoa(i)}
			for _, v := range [6]float64{
				tr.Position.X(), tr.Position.Y(), tr.Position.Z(),
				tr.Rotation.X(), tr.Rotation.Y(), tr.Rotation.Z(),
			} {
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	w.Flush()
	return id, w.Error()
}

// List returns the metadata of every snapshot in the store.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, err
	}

	snaps := make([]SnapshotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta SnapshotMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		snaps = append(snaps, meta)
	}
	return snaps, nil
}

// LoadTargets reads one formation's target sequence back from a snapshot.
func (s *Store) LoadTargets(id string, f layout.Formation) ([]layout.Transform, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "targets.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	targets := make([]layout.Transform, 0)
	for i, rec := range records {
		if i == 0 || len(rec) != len(targetHeader) || rec[0] != string(f) {
			continue
		}
		var vals [6]float64
		ok := true
		for j := range vals {
			v, err := strconv.ParseFloat(rec[j+2], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		targets = append(targets, layout.Transform{
			Position: mgl64.Vec3{vals[0], vals[1], vals[2]},
			Rotation: mgl64.Vec3{vals[3], vals[4], vals[5]},
		})
	}
	return targets, nil
}
