package store

var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_properties_city ON properties(city)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_state ON properties(state)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_zip_code ON properties(zip_code)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_created_at ON properties(created_at)`,
}

const postgresTable = `CREATE TABLE IF NOT EXISTS properties (
	id           TEXT PRIMARY KEY,
	city         TEXT NOT NULL,
	street       TEXT NOT NULL,
	state        CHAR(2) NOT NULL,
	zip_code     CHAR(5) NOT NULL,
	lat          DOUBLE PRECISION NOT NULL,
	lng          DOUBLE PRECISION NOT NULL,
	weather_data JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
)`

// SQLite keeps timestamps as fixed-width UTC text so they sort chronologically.
const sqliteTable = `CREATE TABLE IF NOT EXISTS properties (
	id           TEXT PRIMARY KEY,
	city         TEXT NOT NULL,
	street       TEXT NOT NULL,
	state        TEXT NOT NULL,
	zip_code     TEXT NOT NULL,
	lat          REAL NOT NULL,
	lng          REAL NOT NULL,
	weather_data TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL
)`

func schemaStatements(table string) []string {
	return append([]string{table}, indexStatements...)
}
