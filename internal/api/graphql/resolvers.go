package graphqlapi

import (
	"context"

	"github.com/graphql-go/graphql"

	"github.com/i474232898/property-weather/internal/property"
)

// Creator creates properties. *property.Workflow implements it.
type Creator interface {
	Create(ctx context.Context, in property.Submission) (*property.Property, error)
}

// Querier serves property reads and deletes. *property.QueryService
// implements it.
type Querier interface {
	List(ctx context.Context, opts property.ListOptions) ([]property.Property, error)
	Get(ctx context.Context, id string) (*property.Property, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, f property.Filter) (int, error)
}

// Resolver translates GraphQL operations into workflow and query calls and
// maps their errors to API error codes.
type Resolver struct {
	creator Creator
	queries Querier
}

// NewResolver creates a new Resolver.
func NewResolver(creator Creator, queries Querier) *Resolver {
	return &Resolver{creator: creator, queries: queries}
}

func (r *Resolver) health(graphql.ResolveParams) (interface{}, error) {
	return "OK", nil
}

func (r *Resolver) properties(p graphql.ResolveParams) (interface{}, error) {
	opts := property.ListOptions{Filter: filterArg(p.Args["filter"])}

	if sort, ok := p.Args["sort"].(map[string]interface{}); ok {
		opts.Sort.Field, _ = sort["field"].(property.SortField)
		opts.Sort.Order, _ = sort["order"].(property.SortOrder)
	}
	if page, ok := p.Args["pagination"].(map[string]interface{}); ok {
		opts.Limit, _ = page["limit"].(int)
		opts.Offset, _ = page["offset"].(int)
	}

	props, err := r.queries.List(p.Context, opts)
	if err != nil {
		return nil, newAPIError(CodeFetchError, err)
	}
	return props, nil
}

func (r *Resolver) property(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	prop, err := r.queries.Get(p.Context, id)
	if err != nil {
		return nil, newAPIError(CodeFetchError, err)
	}
	if prop == nil {
		return nil, nil
	}
	return prop, nil
}

func (r *Resolver) propertyCount(p graphql.ResolveParams) (interface{}, error) {
	n, err := r.queries.Count(p.Context, filterArg(p.Args["filter"]))
	if err != nil {
		return nil, newAPIError(CodeFetchError, err)
	}
	return n, nil
}

func (r *Resolver) createProperty(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	sub := property.Submission{
		City:    stringField(input, "city"),
		Street:  stringField(input, "street"),
		State:   stringField(input, "state"),
		ZipCode: stringField(input, "zipCode"),
	}

	prop, err := r.creator.Create(p.Context, sub)
	if err != nil {
		return nil, newAPIError(CodeCreateError, err)
	}
	return prop, nil
}

func (r *Resolver) deleteProperty(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	ok, err := r.queries.Delete(p.Context, id)
	if err != nil {
		if property.IsNotFound(err) {
			return nil, newAPIError(CodeNotFound, err)
		}
		return nil, newAPIError(CodeDeleteError, err)
	}
	return ok, nil
}

func filterArg(v interface{}) property.Filter {
	m, _ := v.(map[string]interface{})
	return property.Filter{
		City:    stringField(m, "city"),
		State:   stringField(m, "state"),
		ZipCode: stringField(m, "zipCode"),
	}
}

// stringField returns m[key] as a string; absent and null become "".
func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func sourceProperty(src interface{}) (property.Property, bool) {
	switch v := src.(type) {
	case property.Property:
		return v, true
	case *property.Property:
		if v != nil {
			return *v, true
		}
	}
	return property.Property{}, false
}
