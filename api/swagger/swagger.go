package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "RobinBoard API",
        "description": "Backend for the school digital signage board",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Admin session"},
        {"name": "Settings", "description": "Board configuration"},
        {"name": "Students", "description": "Roster and birthdays"},
        {"name": "Schedule", "description": "Weekly class schedule"},
        {"name": "Media", "description": "Slider uploads"},
        {"name": "Weather", "description": "Weather widget"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}},
                    "401": {"description": "Wrong password", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/auth/status": {
            "get": {
                "tags": ["Auth"],
                "summary": "Session status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatusResponse"}}
                }
            }
        },
        "/api/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Board settings (public subset without an admin session)",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/settings/update": {
            "post": {
                "tags": ["Settings"],
                "summary": "Merge partial settings into the board document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/weather": {
            "get": {
                "tags": ["Weather"],
                "summary": "Current weather for the configured city",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WeatherResponse"}}
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Add one student or an array of students",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete every student",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/students/{id}": {
            "delete": {
                "tags": ["Students"],
                "summary": "Delete one student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}},
                    "404": {"description": "Unknown student", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export the roster as PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF document"}
                }
            }
        },
        "/api/birthdays/today": {
            "get": {
                "tags": ["Students"],
                "summary": "Today's birthdays (plus the weekend on Fridays)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BirthdaySummary"}}
                }
            }
        },
        "/api/schedule/get": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Weekly schedule",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/schedule/update": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Replace the weekly schedule",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/files": {
            "get": {
                "tags": ["Media"],
                "summary": "List uploaded media",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/MediaItem"}}}
                }
            }
        },
        "/api/upload": {
            "post": {
                "tags": ["Media"],
                "summary": "Upload an image or video",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}},
                    "400": {"description": "Unsupported file type", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/files/update": {
            "post": {
                "tags": ["Media"],
                "summary": "Update a media caption",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCaptionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/api/files/delete": {
            "post": {
                "tags": ["Media"],
                "summary": "Delete an uploaded file",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteFileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"}
            },
            "required": ["password"]
        },
        "StatusResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"}
            }
        },
        "WeatherResponse": {
            "type": "object",
            "properties": {
                "temp": {"type": "object"},
                "status": {"type": "string"},
                "icon": {"type": "string"}
            }
        },
        "BirthdaySummary": {
            "type": "object",
            "properties": {
                "hasBirthday": {"type": "boolean"},
                "text": {"type": "string"},
                "includesWeekendPreview": {"type": "boolean"}
            }
        },
        "MediaItem": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "url": {"type": "string"},
                "caption": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "UpdateCaptionRequest": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "caption": {"type": "string"}
            },
            "required": ["filename"]
        },
        "DeleteFileRequest": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"}
            },
            "required": ["filename"]
        },
        "Result": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "filename": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
