// Package openapi derives the machine-readable API description from the
// resource models, so it is regenerated whenever a model changes.
package openapi

import (
	"reflect"
	"strconv"
	"strings"

	"travelplanner/internal/domain"
)

const Version = "1.0.0"

// Resource describes one CRUD collection.
type Resource struct {
	Name    string // schema name, e.g. "Trip"
	Path    string // collection path, e.g. "/trips"
	Aliases []string
	Model   any
	Filters []string
}

var timestampType = reflect.TypeOf(domain.Timestamp{})

// Document builds an OpenAPI 3.0 document for the given resources plus the fixed endpoints.
func Document(resources []Resource) map[string]any {
	schemas := map[string]any{
		"Error": object(map[string]any{
			"error":      prop("string"),
			"code":       prop("string"),
			"details":    map[string]any{"type": "array", "nullable": true, "items": object(map[string]any{"field": prop("string"), "msg": prop("string")}, nil)},
			"request_id": prop("string"),
			"message":    prop("string"),
		}, []string{"error", "code", "message"}),
		"Pagination": object(map[string]any{
			"total":     prop("integer"),
			"page":      prop("integer"),
			"page_size": prop("integer"),
			"offset":    prop("integer"),
			"limit":     prop("integer"),
		}, []string{"total", "page", "page_size", "offset", "limit"}),
		"SearchResult": object(map[string]any{
			"results": map[string]any{"type": "array", "items": object(map[string]any{
				"name":    prop("string"),
				"country": prop("string"),
				"region":  nullable(prop("string")),
				"iata":    nullable(prop("string")),
			}, []string{"name", "country"})},
			"total": prop("integer"),
		}, []string{"results", "total"}),
	}

	paths := map[string]any{
		"/": map[string]any{"get": op("Health check", nil, map[string]any{
			"200": jsonResponse("Service is up", object(map[string]any{"message": prop("string")}, []string{"message"})),
		})},
		"/destinations/search": map[string]any{"get": op("Mock destination search", []any{
			queryParam("q", "string", true),
			queryParam("country", "string", false),
		}, map[string]any{
			"200": jsonResponse("Matching catalogue entries", ref("SearchResult")),
			"400": errorResponse("Missing query"),
		})},
		"/trips/{id}/summary.pdf": map[string]any{"get": op("Printable trip summary", []any{idParam()}, map[string]any{
			"200": map[string]any{"description": "PDF document", "content": map[string]any{"application/pdf": map[string]any{"schema": map[string]any{"type": "string", "format": "binary"}}}},
			"404": errorResponse("Trip not found"),
		})},
		"/db-check": map[string]any{"get": op("Database connectivity check", nil, map[string]any{
			"200": jsonResponse("Database reachable", map[string]any{"type": "object"}),
			"503": errorResponse("Database unavailable"),
		})},
		"/routes": map[string]any{"get": op("Registered routes", nil, map[string]any{
			"200": jsonResponse("Route table", map[string]any{"type": "object"}),
		})},
		"/openapi.json": map[string]any{"get": op("This document", nil, map[string]any{
			"200": jsonResponse("OpenAPI document", map[string]any{"type": "object"}),
		})},
	}

	for _, res := range resources {
		full, input := modelSchemas(reflect.TypeOf(res.Model))
		schemas[res.Name] = full
		schemas[res.Name+"Input"] = input
		schemas[res.Name+"Page"] = object(map[string]any{
			"items": map[string]any{"type": "array", "items": ref(res.Name)},
			"meta":  ref("Pagination"),
		}, []string{"items", "meta"})

		listParams := []any{
			queryParam("page", "integer", false),
			queryParam("page_size", "integer", false),
			queryParam("offset", "integer", false),
			queryParam("limit", "integer", false),
		}
		for _, f := range res.Filters {
			listParams = append(listParams, queryParam(f, "integer", false))
		}
		body := map[string]any{"required": true, "content": map[string]any{"application/json": map[string]any{"schema": ref(res.Name + "Input")}}}

		collection := map[string]any{
			"get": op("List "+res.Name, listParams, map[string]any{
				"200": jsonResponse("One page", ref(res.Name+"Page")),
				"400": errorResponse("Invalid paging"),
			}),
			"post": withBody(op("Create "+res.Name, nil, map[string]any{
				"201": jsonResponse("Created", ref(res.Name)),
				"400": errorResponse("Invalid payload"),
				"404": errorResponse("Referenced record not found"),
			}), body),
		}
		update := withBody(op("Update "+res.Name+" (partial)", []any{idParam()}, map[string]any{
			"200": jsonResponse("Updated", ref(res.Name)),
			"400": errorResponse("Invalid payload"),
			"404": errorResponse("Not found"),
		}), body)
		item := map[string]any{
			"get": op("Get "+res.Name, []any{idParam()}, map[string]any{
				"200": jsonResponse("Found", ref(res.Name)),
				"404": errorResponse("Not found"),
			}),
			"put":   update,
			"patch": update,
			"delete": op("Delete "+res.Name, []any{idParam()}, map[string]any{
				"204": map[string]any{"description": "Deleted"},
				"404": errorResponse("Not found"),
			}),
		}
		for _, p := range append([]string{res.Path}, res.Aliases...) {
			paths[p] = collection
			paths[p+"/{id}"] = item
		}
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Travel Planner API",
			"version": Version,
		},
		"paths":      paths,
		"components": map[string]any{"schemas": schemas},
	}
}

// modelSchemas returns the stored-record schema and the request-body schema of a model.
func modelSchemas(t reflect.Type) (map[string]any, map[string]any) {
	fullProps, inputProps := map[string]any{}, map[string]any{}
	fullReq, inputReq := []string{}, []string{}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		s := fieldSchema(f)
		fullProps[name] = s
		fullReq = append(fullReq, name)

		if name == "id" || f.Type == timestampType {
			s["readOnly"] = true
			continue
		}
		inputProps[name] = s
		if hasRule(f.Tag.Get("validate"), "required") {
			inputReq = append(inputReq, name)
		}
	}
	return object(fullProps, fullReq), object(inputProps, inputReq)
}

func fieldSchema(f reflect.StructField) map[string]any {
	t := f.Type
	isPtr := t.Kind() == reflect.Pointer
	if isPtr {
		t = t.Elem()
	}

	var s map[string]any
	switch {
	case t == timestampType:
		s = map[string]any{"type": "string", "format": "date-time"}
	case t.Kind() == reflect.Int64:
		s = map[string]any{"type": "integer", "format": "int64"}
	case t.Kind() == reflect.Float64:
		s = map[string]any{"type": "number", "format": "double"}
	default:
		s = map[string]any{"type": "string"}
	}

	for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
		key, val, _ := strings.Cut(rule, "=")
		switch key {
		case "max":
			if n, err := strconv.Atoi(val); err == nil {
				s["maxLength"] = n
			}
		case "gte":
			if n, err := strconv.Atoi(val); err == nil {
				s["minimum"] = n
			}
		case "isodate":
			s["format"] = "date"
		case "hhmm":
			s["pattern"] = "^([01][0-9]|2[0-3]):[0-5][0-9]$"
		case "required":
			if s["type"] == "string" {
				s["minLength"] = 1
			}
		}
	}
	if isPtr {
		s["nullable"] = true
	}
	return s
}

func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

func object(props map[string]any, required []string) map[string]any {
	o := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		o["required"] = required
	}
	return o
}

func prop(typ string) map[string]any { return map[string]any{"type": typ} }

func nullable(s map[string]any) map[string]any {
	s["nullable"] = true
	return s
}

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}

func op(summary string, params []any, responses map[string]any) map[string]any {
	o := map[string]any{"summary": summary, "responses": responses}
	if len(params) > 0 {
		o["parameters"] = params
	}
	return o
}

func withBody(o map[string]any, body map[string]any) map[string]any {
	o["requestBody"] = body
	return o
}

func jsonResponse(desc string, schema map[string]any) map[string]any {
	return map[string]any{"description": desc, "content": map[string]any{"application/json": map[string]any{"schema": schema}}}
}

func errorResponse(desc string) map[string]any {
	return jsonResponse(desc, ref("Error"))
}

func queryParam(name, typ string, required bool) map[string]any {
	return map[string]any{"name": name, "in": "query", "required": required, "schema": prop(typ)}
}

func idParam() map[string]any {
	return map[string]any{"name": "id", "in": "path", "required": true, "schema": map[string]any{"type": "integer", "format": "int64"}}
}
