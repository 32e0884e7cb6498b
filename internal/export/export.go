// Package export copies a fuel summary to the clipboard and writes report
// documents to disk.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/five82/fuelcalc/internal/format"
	"github.com/five82/fuelcalc/internal/logging"
)

// Exporter is what the engine hands summaries and reports to.
type Exporter interface {
	Share(ctx context.Context, s format.Summary) error
	Export(ctx context.Context, r format.Report) (string, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Format is a report document format.
type Format string

const (
	FormatText Format = "txt"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupported is returned by Share when no clipboard is available.
var ErrUnsupported = errors.New("clipboard unsupported")

// ParseFormat accepts txt, text, yaml, yml and json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "txt", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Options configures an Adapter.
type Options struct {
	Clipboard Clipboard
	Dir       string
	Format    Format
	Formatter format.Formatter
	Logger    *logging.Logger
	Now       func() time.Time
}

// Adapter implements Exporter against the system clipboard and filesystem.
type Adapter struct {
	clip   Clipboard
	dir    string
	format Format
	fmt    format.Formatter
	log    *logging.Logger
	now    func() time.Time
}

// New builds an Adapter. A nil Clipboard uses the system clipboard unless
// it is reported unsupported on this platform.
func New(opts Options) *Adapter {
	clip := opts.Clipboard
	if clip == nil && !clipboard.Unsupported {
		clip = systemClipboard{}
	}
	dir := opts.Dir
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	f := opts.Format
	if f == "" {
		f = FormatText
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Adapter{clip: clip, dir: dir, format: f, fmt: opts.Formatter, log: opts.Logger, now: now}
}

// Share copies the share text for s to the clipboard.
func (a *Adapter) Share(ctx context.Context, s format.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.clip == nil {
		return ErrUnsupported
	}
	text := a.fmt.ShareText(s)
	if err := a.clip.WriteAll(text); err != nil {
		a.log.Error(err, "clipboard write failed")
		return fmt.Errorf("write clipboard: %w", err)
	}
	a.log.WithFields(map[string]any{"length": len(text)}).Debug("summary copied to clipboard")
	return nil
}

// Export writes r to a timestamped file in the adapter's directory and
// returns its path.
func (a *Adapter) Export(ctx context.Context, r format.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = a.now()
	}

	data, err := a.encode(r)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(a.dir, FileName(r.GeneratedAt, a.format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	a.log.WithFields(map[string]any{"path": path, "format": string(a.format)}).Info("report exported")
	return path, nil
}

func (a *Adapter) encode(r format.Report) ([]byte, error) {
	switch a.format {
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml report: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json report: %w", err)
		}
		return append(data, '\n'), nil
	default:
		var buf bytes.Buffer
		if err := a.fmt.RenderReport(&buf, r); err != nil {
			return nil, fmt.Errorf("render report: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// FileName returns fuel-report-YYYYMMDD-HHMMSS.<ext>.
func FileName(at time.Time, f Format) string {
	return fmt.Sprintf("fuel-report-%s.%s", at.Format("20060102-150405"), f)
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
