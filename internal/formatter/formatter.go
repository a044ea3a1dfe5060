// package formatter serializes conversion output: TSV data lines plus the
// human-readable report and summary renderings
package formatter

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/veldhuis/lbx/internal/models"
	"github.com/veldhuis/lbx/internal/ui"
)

// Header is the fixed first line of every conversion, emitted even for an
// empty input array.
const Header = "seconds_since_epoch\ttrack\tartist\talbum"

// Line renders one row as a tab-joined data line, with the timestamp as a
// decimal integer. Field text is emitted verbatim: a literal tab or newline
// inside a name would corrupt column alignment, and that is intentionally not
// guarded against here.
func Line(row models.Row) string {
	return strconv.FormatInt(row.SecondsSinceEpoch, 10) +
		"\t" + row.Track +
		"\t" + row.Artist +
		"\t" + row.Album
}

// WriteTSV writes the header followed by one line per row, preserving order.
func WriteTSV(w io.Writer, rows []models.Row) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		if _, err := bw.WriteString(Line(row) + "\n"); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// RenderReport renders the check command's accept/reject counts.
func RenderReport(report *models.Report) string {
	var b strings.Builder

	b.WriteString(ui.Title("Check Report") + "\n")
	b.WriteString(fmt.Sprintf("Records:           %d\n", report.Total))
	b.WriteString(fmt.Sprintf("Kept:              %s\n", ui.OK(strconv.Itoa(report.Kept))))
	b.WriteString(fmt.Sprintf("Skipped (null):    %s\n", ui.Err(strconv.Itoa(report.SkippedNull))))
	b.WriteString(fmt.Sprintf("Skipped (corrupt): %s\n", ui.Err(strconv.Itoa(report.SkippedCorrupt))))

	for _, name := range sortedKeys(report.MarkerHits) {
		b.WriteString(ui.Warn(fmt.Sprintf("  %s: %d", name, report.MarkerHits[name])) + "\n")
	}

	return b.String()
}

// RenderSummary renders the stats command's aggregate view of the listens
// that survive filtering.
func RenderSummary(summary *models.Summary) string {
	var b strings.Builder

	b.WriteString(ui.Title("Listen Summary") + "\n")
	b.WriteString(fmt.Sprintf("Listens:        %s\n", ui.OK(strconv.Itoa(summary.Listens))))
	b.WriteString(fmt.Sprintf("Unique tracks:  %d\n", summary.UniqueTracks))
	b.WriteString(fmt.Sprintf("Unique artists: %d\n", summary.UniqueArtists))
	b.WriteString(fmt.Sprintf("Unique albums:  %d\n", summary.UniqueAlbums))

	if summary.Listens > 0 {
		b.WriteString(fmt.Sprintf("First listen:   %d\n", summary.FirstListen))
		b.WriteString(fmt.Sprintf("Last listen:    %d\n", summary.LastListen))
	}

	if len(summary.TopArtists) > 0 {
		b.WriteString("\nTop artists:\n")
		for i, ac := range summary.TopArtists {
			b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, ac.Artist, ui.Help(fmt.Sprintf("(%d)", ac.Listens))))
		}
	}

	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
