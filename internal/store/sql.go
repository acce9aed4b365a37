package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/i474232898/property-weather/internal/common"
	"github.com/i474232898/property-weather/internal/property"
	"github.com/i474232898/property-weather/internal/weather"
)

const propertyColumns = `id, city, street, state, zip_code, lat, lng, weather_data, created_at, updated_at`

var sortColumns = map[property.SortField]string{
	property.SortByCreatedAt: "created_at",
	property.SortByCity:      "city",
	property.SortByState:     "state",
}

// placeholder renders the n-th (1-based) bind parameter.
type placeholder func(n int) string

func dollar(n int) string { return "$" + strconv.Itoa(n) }

func question(int) string { return "?" }

// rowScanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func whereClause(f property.Filter, ph placeholder) (string, []any) {
	var conds []string
	var args []any

	if f.City != "" {
		args = append(args, common.EscapeLike(f.City))
		conds = append(conds, fmt.Sprintf(`LOWER(city) LIKE '%%' || LOWER(%s) || '%%' ESCAPE '\'`, ph(len(args))))
	}
	if f.State != "" {
		args = append(args, f.State)
		conds = append(conds, "state = "+ph(len(args)))
	}
	if f.ZipCode != "" {
		args = append(args, f.ZipCode)
		conds = append(conds, "zip_code = "+ph(len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func listQuery(q property.ListQuery, ph placeholder) (string, []any) {
	where, args := whereClause(q.Filter, ph)

	col, ok := sortColumns[q.Sort.Field]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if q.Sort.Order == property.SortAsc {
		dir = "ASC"
	}

	args = append(args, q.Limit)
	limit := ph(len(args))
	args = append(args, q.Offset)
	offset := ph(len(args))

	// id breaks ties so pages are stable.
	return fmt.Sprintf("SELECT %s FROM properties%s ORDER BY %s %s, id %s LIMIT %s OFFSET %s",
		propertyColumns, where, col, dir, dir, limit, offset), args
}

func countQuery(f property.Filter, ph placeholder) (string, []any) {
	where, args := whereClause(f, ph)
	return "SELECT COUNT(*) FROM properties" + where, args
}

func insertQuery(ph placeholder) string {
	marks := make([]string, 10)
	for i := range marks {
		marks[i] = ph(i + 1)
	}
	return fmt.Sprintf("INSERT INTO properties (%s) VALUES (%s)", propertyColumns, strings.Join(marks, ", "))
}

func encodeWeather(s weather.Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode weather data: %w", err)
	}
	return data, nil
}

func decodeWeather(data []byte) (weather.Snapshot, error) {
	var s weather.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode weather data: %w", err)
	}
	return s, nil
}
