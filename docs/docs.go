// Package docs holds the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g main.go -o docs
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
                "description": "Exchange email and password for a signed bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current identity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.SelfResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Provision a user",
                "parameters": [
                    {"description": "New user", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/requests": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Requests"],
                "summary": "Submit an access request",
                "parameters": [
                    {"description": "Requested access", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.CreateRequestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Request"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/requests/mine": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Requests"],
                "summary": "List own requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Request"}}}
                }
            }
        },
        "/requests/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Requests"],
                "summary": "Fetch one request",
                "parameters": [{"type": "string", "description": "Request id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Request"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/requests/{id}/audit": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Requests"],
                "summary": "Audit trail of a request, newest first",
                "parameters": [{"type": "string", "description": "Request id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.AuditLog"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/requests/admin/all": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List every request",
                "parameters": [
                    {"type": "string", "description": "PENDING, APPROVED, REJECTED or PROVISIONED", "name": "status", "in": "query"},
                    {"type": "string", "description": "Matches requester email, application, project or id", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Request"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/requests/admin/{id}/approve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Approve a pending request",
                "parameters": [
                    {"type": "string", "description": "Request id", "name": "id", "in": "path", "required": true},
                    {"description": "Reviewer notes", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/rest.ReviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Request"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/requests/admin/{id}/reject": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Reject a pending request",
                "parameters": [
                    {"type": "string", "description": "Request id", "name": "id", "in": "path", "required": true},
                    {"description": "Reviewer notes", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/rest.ReviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Request"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.AuditLog": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "request_id": {"type": "string"},
                "action": {"type": "string", "enum": ["CREATE", "APPROVE", "REJECT"]},
                "performed_by": {"type": "string"},
                "details": {"type": "object"},
                "created_at": {"type": "string"}
            }
        },
        "domain.Request": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "requester_id": {"type": "string"},
                "requester_email": {"type": "string"},
                "application": {"type": "string"},
                "environment": {"type": "string"},
                "group_role": {"type": "string"},
                "project": {"type": "string"},
                "notes": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "APPROVED", "REJECTED", "PROVISIONED"]},
                "external_job_id": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "user"]},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "rest.CreateRequestRequest": {
            "type": "object",
            "properties": {
                "application": {"type": "string"},
                "environment": {"type": "string"},
                "group_role": {"type": "string"},
                "project": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "rest.CreateUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "rest.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "rest.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "rest.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/rest.UserIdentity"}}
        },
        "rest.ReviewRequest": {
            "type": "object",
            "properties": {"notes": {"type": "string"}}
        },
        "rest.SelfResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "name": {"type": "string"}, "user": {"$ref": "#/definitions/rest.UserIdentity"}}
        },
        "rest.UserIdentity": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Access Request API",
	Description:      "Submit, review and audit application access requests.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
