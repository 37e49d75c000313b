// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/http_trigger": {
            "get": {
                "description": "Returns a personalized greeting when a name is given in the query string or JSON body",
                "produces": ["text/plain"],
                "tags": ["functions"],
                "summary": "Greeting",
                "parameters": [
                    {"type": "string", "description": "Name to greet", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Returns a personalized greeting when a name is given in the query string or JSON body",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["functions"],
                "summary": "Greeting",
                "parameters": [
                    {"type": "string", "description": "Name to greet", "name": "name", "in": "query"},
                    {"description": "Name to greet when the query string has none", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/models.GreetingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/process_csv": {
            "post": {
                "description": "Validates an uploaded CSV (id, name, amount, category) and returns totals, averages and categories",
                "consumes": ["text/plain"],
                "produces": ["application/json"],
                "tags": ["functions"],
                "summary": "Summarize CSV",
                "parameters": [
                    {"description": "CSV text with a header row", "name": "csv", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SummaryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.MissingColumnsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.InternalErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.InternalErrorResponse": {
            "type": "object",
            "properties": {"details": {"type": "string"}, "error": {"type": "string"}}
        },
        "handlers.MissingColumnsResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "found_columns": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.GreetingRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "models.ProcessedItem": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "category": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "models.SummaryResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.ProcessedItem"}},
                "status": {"type": "string"},
                "summary": {"$ref": "#/definitions/models.SummaryStats"}
            }
        },
        "models.SummaryStats": {
            "type": "object",
            "properties": {
                "average_amount": {"type": "number"},
                "category_count": {"type": "integer"},
                "processed_rows": {"type": "integer"},
                "total_amount": {"type": "number"},
                "total_rows": {"type": "integer"},
                "unique_categories": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "FunctionKey": {
            "description": "Function key; may also be passed as the \"code\" query parameter.",
            "type": "apiKey",
            "name": "x-functions-key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:7071",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Function App API",
	Description:      "HTTP-triggered functions: a greeting endpoint and a CSV summary endpoint",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
