//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

// docTemplate is a trimmed OpenAPI document for the JSON surface. Regenerate
// with `swag init -g cmd/demodash/docs.go` when handler annotations change.
const docTemplate = `{
  "swagger": "2.0",
  "info": {"title": "{{.Title}}", "description": "{{escape .Description}}", "version": "{{.Version}}"},
  "basePath": "{{.BasePath}}",
  "schemes": {{ marshal .Schemes }},
  "paths": {
    "/api/predict": {
      "post": {
        "tags": ["predict"],
        "summary": "Forward a prompt to the demo's predict endpoint",
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/types.PredictRequest"}}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PredictResponse"}},
          "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
          "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
        }
      }
    }
  },
  "definitions": {
    "types.PredictRequest": {"type": "object", "properties": {
      "prompt": {"type": "string"}, "max_new_tokens": {"type": "number"},
      "temperature": {"type": "number"}, "top_p": {"type": "number"},
      "file": {"type": "object", "properties": {"name": {"type": "string"}, "data": {"type": "string"}}}}},
    "types.PredictResponse": {"type": "object", "properties": {
      "submission_id": {"type": "string"}, "result": {"type": "string"}, "primary": {},
      "has_primary": {"type": "boolean"}, "body": {}, "preview": {"type": "string"},
      "notice": {"type": "string"}, "status": {"type": "integer"}, "duration_ms": {"type": "integer"}}},
    "types.ErrorResponse": {"type": "object", "properties": {
      "error": {"type": "string"}, "code": {"type": "integer"}, "hint": {"type": "string"}}}
  }
}`

// SwaggerInfo holds the exported Swagger info.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "demodash API",
	Description:      "Dashboard that embeds a hosted demo and forwards predict requests to it.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// MountSwagger serves the Swagger UI under /swagger/.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}
