package tasks

import (
	"fmt"
	"io"
	"sort"

	"github.com/veldhuis/lbx/internal/formatter"
	"github.com/veldhuis/lbx/internal/listens"
	"github.com/veldhuis/lbx/internal/models"
)

// Engine runs conversion operations over listen exports. It carries the
// corruption filter so convert, check and stats always agree on which records
// survive.
type Engine struct {
	filter *listens.Filter
}

// NewEngine creates an Engine with the built-in corruption markers plus any
// extra patterns from configuration.
func NewEngine(extraMarkers ...string) *Engine {
	return &Engine{filter: listens.NewFilter(extraMarkers...)}
}

// Convert loads a listen export and writes the header plus all surviving rows
// to w as tab-separated values. Nothing is written until the whole document
// has parsed. Skipped records are not reported anywhere; they are expected
// noise, and `check` exists for callers who want the counts.
func (e *Engine) Convert(path string, w io.Writer) (*models.Report, error) {
	records, err := listens.LoadFile(path)
	if err != nil {
		return nil, err
	}

	report, rows, err := e.sift(records)
	if err != nil {
		return nil, err
	}

	if err := formatter.WriteTSV(w, rows); err != nil {
		return nil, err
	}
	return report, nil
}

// Check runs the exact filtering convert would run, but returns the
// accept/reject counts instead of emitting data lines.
func (e *Engine) Check(path string) (*models.Report, error) {
	records, err := listens.LoadFile(path)
	if err != nil {
		return nil, err
	}

	report, _, err := e.sift(records)
	return report, err
}

// Stats summarizes the listens that would survive conversion: totals, unique
// names, the listen time range, and the topN artists by listen count.
func (e *Engine) Stats(path string, topN int) (*models.Summary, error) {
	records, err := listens.LoadFile(path)
	if err != nil {
		return nil, err
	}

	_, rows, err := e.sift(records)
	if err != nil {
		return nil, err
	}

	return summarize(rows, topN), nil
}

// sift applies the per-record accept/reject decisions in input order.
func (e *Engine) sift(records []models.ListenRecord) (*models.Report, []models.Row, error) {
	report := &models.Report{
		Total:      len(records),
		MarkerHits: make(map[string]int),
	}
	rows := make([]models.Row, 0, len(records))

	for i, record := range records {
		row, ok, err := listens.Flatten(record)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i, err)
		}
		if !ok {
			report.SkippedNull++
			continue
		}

		if marker, hit := e.filter.Match(formatter.Line(row)); hit {
			report.SkippedCorrupt++
			report.MarkerHits[marker.Name]++
			continue
		}

		report.Kept++
		rows = append(rows, row)
	}

	return report, rows, nil
}

func summarize(rows []models.Row, topN int) *models.Summary {
	summary := &models.Summary{Listens: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	tracks := make(map[string]struct{})
	albums := make(map[string]struct{})
	artists := make(map[string]int)

	summary.FirstListen = rows[0].SecondsSinceEpoch
	summary.LastListen = rows[0].SecondsSinceEpoch

	for _, row := range rows {
		tracks[row.Artist+"\t"+row.Track] = struct{}{}
		albums[row.Artist+"\t"+row.Album] = struct{}{}
		artists[row.Artist]++

		if row.SecondsSinceEpoch < summary.FirstListen {
			summary.FirstListen = row.SecondsSinceEpoch
		}
		if row.SecondsSinceEpoch > summary.LastListen {
			summary.LastListen = row.SecondsSinceEpoch
		}
	}

	summary.UniqueTracks = len(tracks)
	summary.UniqueAlbums = len(albums)
	summary.UniqueArtists = len(artists)

	top := make([]models.ArtistCount, 0, len(artists))
	for artist, count := range artists {
		top = append(top, models.ArtistCount{Artist: artist, Listens: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Listens != top[j].Listens {
			return top[i].Listens > top[j].Listens
		}
		return top[i].Artist < top[j].Artist
	})
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}
	summary.TopArtists = top

	return summary
}
