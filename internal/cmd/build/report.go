package build

import (
	"fmt"
	"path/filepath"

	"github.com/open-cli-collective/mdpub/internal/site"
	"github.com/open-cli-collective/mdpub/internal/view"
)

func renderReport(r *view.Renderer, report *site.Report) error {
	format := r.Format()
	if format == view.FormatJSON {
		return r.RenderJSON(report)
	}

	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		dest := "-"
		if e.Dest != "" {
			if rel, err := filepath.Rel(report.OutputDir, e.Dest); err == nil {
				dest = rel
			} else {
				dest = e.Dest
			}
		}
		rows = append(rows, []string{string(e.Action), e.Source, dest})
	}

	if format == view.FormatPlain {
		r.RenderTable([]string{"ACTION", "SOURCE", "DEST"}, rows)
		return nil
	}

	r.RenderKeyValue("Source", report.SourceDir)
	r.RenderKeyValue("Output", report.OutputDir)
	r.RenderText("")

	if len(rows) == 0 {
		r.Warn("No files found")
		return nil
	}

	r.RenderTable([]string{"ACTION", "SOURCE", "DEST"}, rows)
	r.RenderText("")
	r.Success(fmt.Sprintf("%d converted, %d copied, %d skipped",
		report.Count(site.ActionConverted),
		report.Count(site.ActionCopied),
		report.Count(site.ActionSkipped)))
	return nil
}
