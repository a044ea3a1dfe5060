package models

// TrackMetadata holds the nullable name fields nested in a listen record.
// Extra fields in the export are ignored.
type TrackMetadata struct {
	TrackName   *string `json:"track_name"`
	ArtistName  *string `json:"artist_name"`
	ReleaseName *string `json:"release_name"`
}

// ListenRecord is one element of a ListenBrainz listen export array.
//
// ListenedAt is required: a record without a usable timestamp is a structural
// error, not a skippable one. The metadata fields are nullable and a nil value
// routes the record to the silent skip path instead.
type ListenRecord struct {
	ListenedAt    *int64         `json:"listened_at"`
	TrackMetadata *TrackMetadata `json:"track_metadata"`
}

// Row is the flat output tuple for one accepted listen. Serialized as a single
// tab-separated line.
type Row struct {
	SecondsSinceEpoch int64
	Track             string
	Artist            string
	Album             string
}

// Report counts the accept/reject decisions over one input document.
type Report struct {
	Total          int            `json:"total"`
	Kept           int            `json:"kept"`
	SkippedNull    int            `json:"skipped_null_metadata"`
	SkippedCorrupt int            `json:"skipped_corrupt"`
	MarkerHits     map[string]int `json:"marker_hits,omitempty"`
}

// ArtistCount pairs an artist name with its listen count.
type ArtistCount struct {
	Artist  string `json:"artist"`
	Listens int    `json:"listens"`
}

// Summary aggregates the listens that survive filtering.
type Summary struct {
	Listens       int           `json:"listens"`
	UniqueTracks  int           `json:"unique_tracks"`
	UniqueArtists int           `json:"unique_artists"`
	UniqueAlbums  int           `json:"unique_albums"`
	FirstListen   int64         `json:"first_listen"`
	LastListen    int64         `json:"last_listen"`
	TopArtists    []ArtistCount `json:"top_artists,omitempty"`
}
