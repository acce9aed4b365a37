package graphqlapi

import (
	"github.com/i474232898/property-weather/internal/property"
)

// Error codes reported in extensions.code.
const (
	CodeFetchError  = "FETCH_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeCreateError = "CREATE_ERROR"
	CodeDeleteError = "DELETE_ERROR"
)

// apiError satisfies gqlerrors.ExtendedError, so graphql-go copies its
// extensions into the response.
type apiError struct {
	code    string
	message string
	kind    property.ErrorKind
}

func (e *apiError) Error() string {
	return e.message
}

func (e *apiError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if e.kind != "" {
		ext["kind"] = string(e.kind)
	}
	return ext
}

func newAPIError(code string, err error) *apiError {
	return &apiError{
		code:    code,
		message: err.Error(),
		kind:    property.KindOf(err),
	}
}
