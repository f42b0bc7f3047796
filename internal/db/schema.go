package db

// Saved selections are snapshots the user explicitly asked to keep.
// position preserves insertion order; (name, artwork_id) makes re-saving
// the same artwork into the same selection an overwrite, not a duplicate.
const createSelectionsTable = `
CREATE TABLE IF NOT EXISTS selections (
    name TEXT NOT NULL,
    position INTEGER NOT NULL,
    artwork_id INTEGER NOT NULL,
    title TEXT,
    place_of_origin TEXT,
    artist_display TEXT,
    inscriptions TEXT,
    date_start INTEGER,
    date_end INTEGER,
    saved_at TEXT,
    PRIMARY KEY (name, artwork_id)
);

CREATE INDEX IF NOT EXISTS idx_selections_name ON selections(name);
`

const insertSelectionEntry = `
INSERT OR REPLACE INTO selections (
    name, position, artwork_id,
    title, place_of_origin, artist_display, inscriptions,
    date_start, date_end, saved_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const deleteSelection = `
DELETE FROM selections WHERE name = ?
`

const selectSelectionArtworks = `
SELECT artwork_id, title, place_of_origin, artist_display, inscriptions,
       date_start, date_end
FROM selections
WHERE name = ?
ORDER BY position
`

const selectSelectionSummaries = `
SELECT name, COUNT(*) as entry_count, MAX(saved_at) as saved_at
FROM selections
GROUP BY name
ORDER BY saved_at DESC
`
