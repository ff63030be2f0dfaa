// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trace serializes replay reports as JSON documents.
package trace

import (
	"fmt"
	"io"
	"os"
	"time"

	"code.hybscloud.com/vec/internal/scenario"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Stdout is the trace path meaning standard output.
const Stdout = "-"

// Document is one replay run.
type Document struct {
	RunID     string            `json:"run_id"`
	StartedAt time.Time         `json:"started_at"`
	Reports   []scenario.Report `json:"reports"`
	Failed    bool              `json:"failed"`
}

// NewDocument starts a document with a fresh run id.
func NewDocument() *Document {
	return &Document{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

// Add appends a report; any failed report fails the document.
func (d *Document) Add(r scenario.Report) {
	d.Reports = append(d.Reports, r)
	if r.Failed {
		d.Failed = true
	}
}

// Encode renders d. An empty indent renders compact JSON.
func Encode(d *Document, indent string) ([]byte, error) {
	if indent == "" {
		return jsoniter.ConfigFastest.Marshal(d)
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(d, "", indent)
}

// Write encodes d to path, or to stdout when path is Stdout.
func Write(path string, stdout io.Writer, d *Document, indent string) error {
	data, err := Encode(d, indent)
	if err != nil {
		return fmt.Errorf("trace encode: %w", err)
	}
	data = append(data, '\n')
	if path == Stdout {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("trace write: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("trace write (%s): %w", path, err)
	}
	return nil
}

// Read decodes a document written by Write.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trace read (%s): %w", path, err)
	}
	var d Document
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("trace decode (%s): %w", path, err)
	}
	return &d, nil
}
