package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/affine/internal/probe"
)

// Report is the JSON form of a probe run.
type Report struct {
	RunMetadata
	Results []probe.Result `json:"results"`
}

func ExportJSON(path string, meta RunMetadata, results []probe.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, meta, results)
}

func WriteJSON(w io.Writer, meta RunMetadata, results []probe.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Report{RunMetadata: meta, Results: results})
}
