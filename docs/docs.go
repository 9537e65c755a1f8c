// Package docs holds the OpenAPI document served at /swagger by the
// development server. Regenerate with `swag init -g internal/handlers/swagger.go`.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/todo": {
            "post": {
                "description": "Writes the todo unconditionally. An existing todo with the same id is replaced.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Create a todo",
                "parameters": [
                    {"description": "Todo to create", "name": "todo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TodoPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ToDo"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorBody"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Update a todo",
                "parameters": [
                    {"description": "New todo values", "name": "todo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TodoPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ToDo"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "404": {"description": "Todo not found", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorBody"}}
                }
            }
        },
        "/todo/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Read a todo",
                "parameters": [
                    {"type": "string", "description": "Todo ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ToDo"}},
                    "404": {"description": "Todo not found", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorBody"}}
                }
            },
            "delete": {
                "description": "The result is wrapped as {\"status_code\", \"body\"} unless LEGACY_DELETE_ENVELOPE=false.",
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Delete a todo",
                "parameters": [
                    {"type": "string", "description": "Todo ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "models.ErrorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.Response": {
            "type": "object",
            "properties": {"body": {"type": "string"}, "status_code": {"type": "integer"}}
        },
        "models.ToDo": {
            "type": "object",
            "properties": {"completed": {"type": "boolean"}, "id": {"type": "string"}, "title": {"type": "string"}}
        },
        "models.TodoPayload": {
            "type": "object",
            "required": ["completed", "id", "title"],
            "properties": {"completed": {"type": "boolean"}, "id": {"type": "string"}, "title": {"type": "string"}}
        }
    },
    "tags": [
        {"description": "Todo item operations", "name": "todos"},
        {"description": "Service health", "name": "health"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Serverless Todos API",
	Description:      "Create, read, update and delete todo items stored in DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
