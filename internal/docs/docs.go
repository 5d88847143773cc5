// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange the owner password for a bearer token",
                "parameters": [
                    {"description": "Owner password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/logs/{date}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "Day log",
                "parameters": [
                    {"type": "string", "description": "Date (YYYY-MM-DD)", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DayResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/logs/{date}/tasks/{task}/toggle": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "Toggle one checklist task",
                "parameters": [
                    {"type": "string", "description": "Date (YYYY-MM-DD)", "name": "date", "in": "path", "required": true},
                    {"enum": ["workout1", "workout2", "diet", "water", "reading", "photo"], "type": "string", "description": "Task", "name": "task", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DayResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/logs/{date}/metrics": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "Record weight and fasting hours",
                "parameters": [
                    {"type": "string", "description": "Date (YYYY-MM-DD)", "name": "date", "in": "path", "required": true},
                    {"description": "Metrics", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.setMetricsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DayResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/heatmap": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["heatmap"],
                "summary": "Completion heatmap ending at a date",
                "parameters": [
                    {"type": "string", "description": "Last date (YYYY-MM-DD), defaults to today", "name": "end", "in": "query"},
                    {"type": "integer", "description": "Number of columns, defaults to 11", "name": "weeks", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Heatmap"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/avatar": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai"],
                "summary": "Generate a stylized avatar",
                "parameters": [
                    {"description": "Style (ghibli or pixar) and mood", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.generateAvatarRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.GenerateAvatarOutput"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/journal/summarize": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai"],
                "summary": "Summarize a journal entry",
                "parameters": [
                    {"description": "Journal text", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.summarizeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.JournalAIResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.DayLog": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "tasks": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "weight_kg": {"type": "number"},
                "fasting_hours": {"type": "number"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.HeatmapCell": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "completion": {"type": "integer"},
                "band": {"type": "integer", "enum": [0, 1, 2, 3, 4]}
            }
        },
        "domain.Heatmap": {
            "type": "object",
            "properties": {
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "weeks": {"type": "integer"},
                "cells": {"type": "array", "items": {"type": "array", "items": {"$ref": "#/definitions/domain.HeatmapCell"}}},
                "perfect_days": {"type": "integer"},
                "current_streak": {"type": "integer"},
                "longest_streak": {"type": "integer"}
            }
        },
        "domain.JournalAIResult": {
            "type": "object",
            "properties": {
                "summary": {"type": "string"},
                "mood": {"type": "string"}
            }
        },
        "services.DayResult": {
            "type": "object",
            "properties": {
                "log": {"$ref": "#/definitions/domain.DayLog"},
                "completion": {"type": "integer"}
            }
        },
        "services.GenerateAvatarOutput": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "prompt": {"type": "string"}
            }
        },
        "http.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "http.loginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {"password": {"type": "string"}}
        },
        "http.tokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "http.setMetricsRequest": {
            "type": "object",
            "properties": {
                "weight": {"type": "number"},
                "unit": {"type": "string", "enum": ["kg", "lbs"]},
                "fasting_hours": {"type": "number"}
            }
        },
        "http.generateAvatarRequest": {
            "type": "object",
            "required": ["mood", "style"],
            "properties": {
                "style": {"type": "string"},
                "mood": {"type": "string"}
            }
        },
        "http.summarizeRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "hardlevel API",
	Description:      "Daily six-task challenge tracker: checklist, heatmap, AI avatar and journal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
