// Package docs registers the Swagger document served at /swagger/doc.json.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object"}}
                }
            }
        },
        "/api/v1/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/respondReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Provider authentication failed", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Session busy", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Session transcript",
                "parameters": [
                    {"name": "session_id", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/reset": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Clear session transcript",
                "parameters": [
                    {"name": "session_id", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/memory/sample": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Memory"],
                "summary": "Load the sample conversation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Already loaded or unreadable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/avatar/personas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Avatar"],
                "summary": "Selectable personas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/avatar/session": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Avatar"],
                "summary": "Start an avatar session",
                "parameters": [
                    {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/startSessionReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Provider authentication failed", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/avatar/session/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Avatar"],
                "summary": "Session status",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/avatar/session/{id}/save": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Avatar"],
                "summary": "Save the transcript",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/avatar/session/{id}/end": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Avatar"],
                "summary": "End the session",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "respondReq": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "session_id": {"type": "string"},
                "message": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "startSessionReq": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "persona_name": {"type": "string"},
                "avatar_id": {"type": "string"},
                "voice_id": {"type": "string"},
                "system_prompt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MemU Demos API",
	Description:      "Memory-backed chatbot and AI avatar demo services.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
