package property

import (
	"time"

	"github.com/i474232898/property-weather/internal/weather"
)

// Pagination bounds for List.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Submission is the user input to a create call.
type Submission struct {
	City    string `json:"city" validate:"required"`
	Street  string `json:"street" validate:"required"`
	State   string `json:"state" validate:"usstate"`
	ZipCode string `json:"zipCode" validate:"zip5"`
}

// Property is a persisted address enriched with the weather observed when it
// was created.
type Property struct {
	ID        string           `json:"id"`
	City      string           `json:"city"`
	Street    string           `json:"street"`
	State     string           `json:"state"`
	ZipCode   string           `json:"zipCode"`
	Lat       float64          `json:"lat"`
	Lng       float64          `json:"lng"`
	Weather   weather.Snapshot `json:"weatherData"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Filter narrows List and Count. Empty fields are not applied.
type Filter struct {
	// City matches as a case-insensitive substring.
	City    string
	State   string
	ZipCode string
}

// SortField is a column List may order by.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByCity      SortField = "city"
	SortByState     SortField = "state"
)

// SortOrder is the List ordering direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort orders List results. The zero value means newest first.
type Sort struct {
	Field SortField
	Order SortOrder
}

// ListOptions are the caller-facing List arguments. Zero values select the
// defaults: no filter, createdAt desc, DefaultLimit, offset 0.
type ListOptions struct {
	Filter Filter
	Sort   Sort
	Limit  int
	Offset int
}
