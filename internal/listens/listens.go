package listens

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/veldhuis/lbx/internal/models"
	"github.com/veldhuis/lbx/internal/shared"
)

// LoadFile reads a listen export and parses it as a JSON array of listen
// records. The whole document is parsed before anything else happens, so a
// malformed file never produces partial output downstream.
func LoadFile(path string) ([]models.ListenRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnreadableFile, err)
	}

	var records []models.ListenRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidJSON, err)
	}

	return records, nil
}

// Flatten maps a listen record onto an output row.
//
// ok is false when the record should be skipped: the metadata object or any of
// its three name fields is absent or null. A record without a timestamp is
// structurally broken and returns an error instead.
func Flatten(record models.ListenRecord) (models.Row, bool, error) {
	if record.ListenedAt == nil {
		return models.Row{}, false, fmt.Errorf("%w: missing listened_at", shared.ErrMalformedRecord)
	}

	meta := record.TrackMetadata
	if meta == nil || meta.TrackName == nil || meta.ArtistName == nil || meta.ReleaseName == nil {
		return models.Row{}, false, nil
	}

	row := models.Row{
		SecondsSinceEpoch: *record.ListenedAt,
		Track:             *meta.TrackName,
		Artist:            *meta.ArtistName,
		Album:             *meta.ReleaseName,
	}
	return row, true, nil
}
