// Package docs registers the OpenAPI description served under /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/home": {
            "get": {
                "tags": ["public"],
                "summary": "Homepage view with hero slides, featured packages and continents",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/packages/{continent}/{country}/{city}": {
            "get": {
                "tags": ["public"],
                "summary": "Active packages for a geography chain",
                "parameters": [
                    {"type": "string", "name": "continent", "in": "path", "required": true},
                    {"type": "string", "name": "country", "in": "path", "required": true},
                    {"type": "string", "name": "city", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/packages/{continent}/{country}/{city}/{package}": {
            "get": {
                "tags": ["public"],
                "summary": "Package detail with its nested tree",
                "parameters": [
                    {"type": "string", "name": "continent", "in": "path", "required": true},
                    {"type": "string", "name": "country", "in": "path", "required": true},
                    {"type": "string", "name": "city", "in": "path", "required": true},
                    {"type": "string", "name": "package", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/packages/{continent}/{country}/{city}/{package}/daily-itinerary.pdf": {
            "get": {
                "tags": ["public"],
                "summary": "Daily itinerary as a PDF attachment",
                "produces": ["application/pdf"],
                "parameters": [
                    {"type": "string", "name": "continent", "in": "path", "required": true},
                    {"type": "string", "name": "country", "in": "path", "required": true},
                    {"type": "string", "name": "city", "in": "path", "required": true},
                    {"type": "string", "name": "package", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Email and password login for admins",
                "consumes": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/admin/packages/{id}/copy": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Deep copy a package with its whole tree",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/packages/copy": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Copy several packages",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/packages/{id}/generate-ai-description": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Generate and store a package description from a prompt",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "405": {"description": "Method Not Allowed"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/admin/media/upload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Upload an image to the media store",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "name": "folder", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Travel CMS API",
	Description:      "Diving and travel package catalog with its admin surface.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
