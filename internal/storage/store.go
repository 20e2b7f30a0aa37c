package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/affine/internal/geom"
	"github.com/san-kum/affine/internal/probe"
)

const (
	metadataFile = "metadata.json"
	hitsFile     = "hits.csv"
)

// ErrRunNotFound indicates a run id with no saved metadata.
var ErrRunNotFound = errors.New("storage: run not found")

var hitsHeader = []string{"ray", "ox", "oy", "oz", "dx", "dy", "dz", "target", "px", "py", "pz", "distance"}

// Store keeps probe runs on disk, one directory per run.
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
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	Targets   []string           `json:"targets"`
	Rays      int                `json:"rays"`
	Hits      int                `json:"hits"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Summarize computes the metadata of a run without an id or timestamp.
func Summarize(scene string, targets []probe.Target, results []probe.Result) RunMetadata {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name()
	}
	return RunMetadata{
		Scene:   scene,
		Targets: names,
		Rays:    len(results),
		Hits:    probe.CountHits(results),
		Metrics: Metrics(results),
	}
}

// Metrics reports hit ratio and the spread of hit distances.
func Metrics(results []probe.Result) map[string]float64 {
	m := map[string]float64{"hit_ratio": 0}
	if len(results) == 0 {
		return m
	}

	n, sum := 0, 0.0
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, d := range probe.Distances(results) {
		if math.IsNaN(d) {
			continue
		}
		n++
		sum += d
		lo, hi = math.Min(lo, d), math.Max(hi, d)
	}
	m["hit_ratio"] = float64(n) / float64(len(results))
	if n > 0 {
		m["min_distance"] = lo
		m["max_distance"] = hi
		m["mean_distance"] = sum / float64(n)
	}
	return m
}

// Save writes a run and returns its id. The scene may be a preset name or a
// file path; only its base name without extension goes into the id.
func (s *Store) Save(scene string, targets []probe.Target, results []probe.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", runPrefix(scene), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := Summarize(scene, targets, results)
	meta.ID = runID
	meta.Timestamp = now

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, hitsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteHits(csvFile, results); err != nil {
		return "", err
	}
	return runID, nil
}

// runPrefix reduces a scene name or path to a single path segment.
func runPrefix(scene string) string {
	base := filepath.Base(scene)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "run"
	}
	return base
}

// WriteHits writes one CSV row per ray. Misses leave the hit columns empty.
func WriteHits(w io.Writer, results []probe.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(hitsHeader); err != nil {
		return err
	}

	for i, r := range results {
		row := []string{strconv.Itoa(i)}
		row = appendCoords(row, r.Ray.Origin.X(), r.Ray.Origin.Y(), r.Ray.Origin.Z())
		row = appendCoords(row, r.Ray.Direction.X(), r.Ray.Direction.Y(), r.Ray.Direction.Z())
		if r.Hit == nil {
			row = append(row, "", "", "", "", "")
		} else {
			row = append(row, r.Hit.Target)
			row = appendCoords(row, r.Hit.Point.X(), r.Hit.Point.Y(), r.Hit.Point.Z(), r.Hit.Distance)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func appendCoords(row []string, vals ...float64) []string {
	for _, v := range vals {
		row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return row
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResults reads the rays and hits of a run back.
func (s *Store) LoadResults(runID string) ([]probe.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, hitsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	return ReadHits(file)
}

// ReadHits parses the output of WriteHits.
func ReadHits(r io.Reader) ([]probe.Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(hitsHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []probe.Result{}, nil
	}

	results := make([]probe.Result, 0, len(records)-1)
	for line, rec := range records[1:] {
		v, err := parseFloats(rec[1:7])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+2, err)
		}
		res := probe.Result{Ray: geom.Ray{
			Origin:    geom.Pt3(v[0], v[1], v[2]),
			Direction: geom.Vec3(v[3], v[4], v[5]),
		}}
		if rec[7] != "" {
			h, err := parseFloats(rec[8:12])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line+2, err)
			}
			res.Hit = &probe.Hit{Target: rec[7], Point: geom.Pt3(h[0], h[1], h[2]), Distance: h[3]}
		}
		results = append(results, res)
	}
	return results, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
