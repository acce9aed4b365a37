package graphqlapi

import (
	"github.com/graphql-go/graphql"

	"github.com/i474232898/property-weather/internal/property"
)

var weatherRequestType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WeatherRequest",
	Fields: graphql.Fields{
		"type":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"query":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"language": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"unit":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var weatherLocationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WeatherLocation",
	Fields: graphql.Fields{
		"name":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"country":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"region":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lat":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lon":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"timezoneId":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"localtime":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"localtimeEpoch": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"utcOffset":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var currentWeatherType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CurrentWeather",
	Fields: graphql.Fields{
		"observationTime":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"temperature":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"weatherCode":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"weatherIcons":        &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
		"weatherDescriptions": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
		"windSpeed":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"windDegree":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"windDir":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"pressure":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"precip":              &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"humidity":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"cloudcover":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"feelslike":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"uvIndex":             &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"visibility":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"isDay":               &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var weatherDataType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WeatherData",
	Fields: graphql.Fields{
		"request":  &graphql.Field{Type: graphql.NewNonNull(weatherRequestType)},
		"location": &graphql.Field{Type: graphql.NewNonNull(weatherLocationType)},
		"current":  &graphql.Field{Type: graphql.NewNonNull(currentWeatherType)},
	},
})

// Struct fields resolve by case-insensitive name match; weatherData is the
// one field whose Go name differs.
var propertyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Property",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"city":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"street":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"state":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"zipCode": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lat":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"lng":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"weatherData": &graphql.Field{
			Type: graphql.NewNonNull(weatherDataType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if prop, ok := sourceProperty(p.Source); ok {
					return prop.Weather, nil
				}
				return nil, nil
			},
		},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var sortFieldEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SortField",
	Values: graphql.EnumValueConfigMap{
		"createdAt": &graphql.EnumValueConfig{Value: property.SortByCreatedAt},
		"city":      &graphql.EnumValueConfig{Value: property.SortByCity},
		"state":     &graphql.EnumValueConfig{Value: property.SortByState},
	},
})

var sortOrderEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SortOrder",
	Values: graphql.EnumValueConfigMap{
		"asc":  &graphql.EnumValueConfig{Value: property.SortAsc},
		"desc": &graphql.EnumValueConfig{Value: property.SortDesc},
	},
})

var filterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PropertyFilter",
	Fields: graphql.InputObjectConfigFieldMap{
		"city":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"state":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"zipCode": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var sortInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PropertySort",
	Fields: graphql.InputObjectConfigFieldMap{
		"field": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(sortFieldEnum)},
		"order": &graphql.InputObjectFieldConfig{Type: sortOrderEnum, DefaultValue: property.SortDesc},
	},
})

var paginationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "Pagination",
	Fields: graphql.InputObjectConfigFieldMap{
		"limit":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"offset": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var createPropertyInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePropertyInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"city":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"street":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"state":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"zipCode": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

// NewSchema builds the executable schema around r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: r.health,
			},
			"properties": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(propertyType))),
				Args: graphql.FieldConfigArgument{
					"filter":     &graphql.ArgumentConfig{Type: filterInput},
					"sort":       &graphql.ArgumentConfig{Type: sortInput},
					"pagination": &graphql.ArgumentConfig{Type: paginationInput},
				},
				Resolve: r.properties,
			},
			"property": &graphql.Field{
				Type: propertyType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.property,
			},
			"propertyCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: filterInput},
				},
				Resolve: r.propertyCount,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createProperty": &graphql.Field{
				Type: graphql.NewNonNull(propertyType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPropertyInput)},
				},
				Resolve: r.createProperty,
			},
			"deleteProperty": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteProperty,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
