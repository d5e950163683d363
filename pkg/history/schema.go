package history

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema creates the history tables. validated_at holds Unix nanoseconds.
const Schema = `
CREATE TABLE IF NOT EXISTS validation_runs (
    id TEXT PRIMARY KEY,
    file_name TEXT NOT NULL,
    schema_version TEXT NOT NULL,
    phase TEXT,
    sha256 TEXT,
    valid INTEGER NOT NULL,
    error_count INTEGER NOT NULL,
    warning_count INTEGER NOT NULL,
    total_records INTEGER NOT NULL,
    processed_records INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    rule_counts TEXT,
    validated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_validated_at ON validation_runs(validated_at);
CREATE INDEX IF NOT EXISTS idx_runs_file_name ON validation_runs(file_name);
CREATE INDEX IF NOT EXISTS idx_runs_sha256 ON validation_runs(sha256);
`

const insertSchemaVersion = `
INSERT INTO schema_version (version, applied_at)
VALUES (?, datetime('now'))
ON CONFLICT(version) DO NOTHING;
`

const getSchemaVersion = `
SELECT version FROM schema_version ORDER BY version DESC LIMIT 1;
`

const runColumns = `id, file_name, schema_version, phase, sha256, valid, error_count, warning_count,
    total_records, processed_records, duration_ms, rule_counts, validated_at`
