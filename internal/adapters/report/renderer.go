// Package report renders build progress as plain, line-oriented output.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/scriptmerge/internal/ui/output"
	"go.trai.ch/scriptmerge/internal/ui/style"
)

var _ ports.Reporter = (*Renderer)(nil)

// Renderer implements ports.Reporter. Lines are written whole, so concurrent
// results never interleave.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu   sync.Mutex
	root string
}

// NewRenderer creates a Renderer writing to w. A nil writer means stderr.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		w:      w,
		output: output.New(w),
	}
}

// OnBuildStart prints the number of component files found.
func (r *Renderer) OnBuildStart(root string, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.root = root
	_, _ = fmt.Fprintf(r.w, "Merging %d component(s) in %s\n", total, root)
}

// OnFileResult prints one line per component.
func (r *Renderer) OnFileResult(result domain.FileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := result.Status.String()
	icon, color := style.StatusIcon(status)
	symbol := r.output.String(icon).Foreground(termenv.RGBColor(string(color))).String()

	line := fmt.Sprintf("%s %-10s %s", symbol, status, r.relLocked(result.Component))
	switch {
	case result.Err != nil:
		line += ": " + result.Err.Error()
	case result.Script != "":
		line += " <- " + r.relLocked(result.Script)
	}
	_, _ = fmt.Fprintln(r.w, line)
}

// OnBuildComplete prints the summary line.
func (r *Renderer) OnBuildComplete(summary domain.BuildSummary, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := fmt.Sprintf("%d merged, %d up-to-date, %d unchanged, %d failed in %v",
		summary.Merged, summary.UpToDate, summary.Unchanged, summary.Failed,
		elapsed.Round(time.Millisecond))
	if summary.DryRun {
		line += " (dry run, nothing written)"
	}

	color := style.Green
	if summary.Failed > 0 {
		color = style.Red
	}
	_, _ = fmt.Fprintln(r.w, r.output.String(line).Foreground(termenv.RGBColor(string(color))).String())
}

func (r *Renderer) relLocked(path string) string {
	if r.root == "" {
		return path
	}
	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
