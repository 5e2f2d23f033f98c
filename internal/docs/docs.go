// Package docs registers the OpenAPI specification served by the Swagger UI
// route. Code generated by swag; edits belong in the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/play": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Play"],
                "summary": "Record a playback event",
                "operationId": "submitPlay",
                "parameters": [
                    {
                        "description": "Play event",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.PlayEventRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PlayResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "User data previously deleted", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/users/{userId}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["GDPR"],
                "summary": "Erase a user's play data",
                "operationId": "eraseUser",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.EraseUserResponse"}},
                    "400": {"description": "Malformed userId", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/history/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "Get a user's playback history",
                "operationId": "getHistory",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "userId", "in": "path", "required": true},
                    {"type": "integer", "default": 20, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HistoryResponse"}},
                    "400": {"description": "Malformed userId or pagination", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/most-watched": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Aggregation"],
                "summary": "Rank contents by plays in a time window",
                "operationId": "getMostWatched",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query", "required": true},
                    {"type": "string", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MostWatchedResponse"}},
                    "400": {"description": "Malformed or inverted window", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "code": {"type": "string"},
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/handlers.FieldError"}}
            }
        },
        "handlers.FieldError": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.PlayEventRequest": {
            "type": "object",
            "required": ["eventId", "userId", "contentId", "device", "playbackDuration", "playedAt"],
            "properties": {
                "eventId": {"type": "string"},
                "userId": {"type": "string"},
                "contentId": {"type": "string"},
                "device": {"type": "string"},
                "playbackDuration": {"type": "number"},
                "playedAt": {"type": "string"}
            }
        },
        "handlers.PlayResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.EraseUserResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "userId": {"type": "string"},
                "deletedRecords": {"type": "integer"}
            }
        },
        "handlers.HistoryItem": {
            "type": "object",
            "properties": {
                "contentId": {"type": "string"},
                "device": {"type": "string"},
                "playbackDuration": {"type": "number"},
                "playedAt": {"type": "string"}
            }
        },
        "handlers.HistoryResponse": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handlers.HistoryItem"}}
            }
        },
        "handlers.MostWatchedItem": {
            "type": "object",
            "properties": {
                "contentId": {"type": "string"},
                "totalPlays": {"type": "integer"},
                "totalDuration": {"type": "number"}
            }
        },
        "handlers.MostWatchedResponse": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "to": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handlers.MostWatchedItem"}}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "db": {"type": "string"},
                "timestamp": {"type": "string"},
                "env": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Play History Service API",
	Description:      "Play-event ingestion, history, most-watched reporting, and GDPR erasure.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
