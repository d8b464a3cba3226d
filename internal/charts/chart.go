package charts

import (
	"github.com/zotcurve/internal/distribution"
	"github.com/zotcurve/internal/format"
	"github.com/zotcurve/internal/grades"
)

// Chart is everything the bar chart binding needs to draw one class.
type Chart struct {
	RecordID         int                  `json:"record_id"`
	Title            string               `json:"title"`
	Subtitle         string               `json:"subtitle"`
	Labels           []string             `json:"labels"`
	Counts           []int                `json:"counts"`
	BackgroundColors []string             `json:"background_colors"`
	BorderColors     []string             `json:"border_colors"`
	Summary          distribution.Summary `json:"summary"`
}

func New(r *grades.Record) *Chart {
	buckets := distribution.Normalize(r.Distribution)
	background, border := buckets.Colors()
	return &Chart{
		RecordID:         r.ID,
		Title:            r.Title,
		Subtitle:         format.Subtitle(r),
		Labels:           buckets.Labels(),
		Counts:           buckets.Counts,
		BackgroundColors: background,
		BorderColors:     border,
		Summary:          distribution.Metric(buckets),
	}
}
