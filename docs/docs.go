// Package docs registers the OpenAPI description served under /swagger/.
// It follows the layout of swag's generated docs.go and is kept in step with the handler annotations by hand.
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
                "description": "Check if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/jwt": {
            "post": {
                "description": "Signs the posted claims (expected to contain email) into a bearer token with a fixed lifetime. Claims are not checked against stored users.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue a token",
                "parameters": [
                    {"description": "Claims to sign", "name": "claims", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.MessageResponse"}}
                }
            }
        },
        "/oauth/token": {
            "post": {
                "description": "Obtain an access token using client credentials. The token asserts the client owner's email.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["OAuth2"],
                "summary": "Token Endpoint",
                "parameters": [
                    {"type": "string", "description": "Grant type: client_credentials", "name": "grant_type", "in": "formData", "required": true},
                    {"type": "string", "description": "Client ID", "name": "client_id", "in": "formData", "required": true},
                    {"type": "string", "description": "Client Secret", "name": "client_secret", "in": "formData", "required": true},
                    {"type": "string", "description": "Requested scope", "name": "scope", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.MessageResponse"}}
                }
            },
            "post": {
                "description": "Stores the user unless the email is already registered. The role is always \"user\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "User", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.createUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/users/admin/{email}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Check admin status",
                "parameters": [
                    {"type": "string", "description": "Caller email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.MessageResponse"}}
                }
            }
        },
        "/users/admin/{id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Promote a user to admin",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.MessageResponse"}}
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.MessageResponse"}}
                }
            }
        },
        "/add-event": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Add an event",
                "parameters": [
                    {"description": "Event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Event"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ResultResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ResultResponse"}}
                }
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Event"}}}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get event by ID",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Event"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ResultResponse"}}
                }
            },
            "put": {
                "description": "Applies the non-empty fields of the body. Answers 404 when the event does not exist or nothing changed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Event"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ResultResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ResultResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Cancel an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ResultResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ResultResponse"}}
                }
            }
        },
        "/reviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "List reviews",
                "parameters": [
                    {"type": "integer", "description": "Only reviews of this event", "name": "eventId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Review"}}}
                }
            },
            "post": {
                "description": "Open route. When a valid bearer token is sent its email is recorded as the author, otherwise the body email is used.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Post a review",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/messages": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Conversation with another member",
                "parameters": [
                    {"type": "string", "description": "Other member's email", "name": "with", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Message"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Send a chat message",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Message"}}
                }
            }
        },
        "/messages/stream": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Server-sent events carrying messages addressed to the caller, until the client disconnects. Delivery is best effort.",
                "produces": ["text/event-stream"],
                "tags": ["chat"],
                "summary": "Stream incoming chat messages",
                "responses": {
                    "200": {"description": "event: message, data: models.Message", "schema": {"$ref": "#/definitions/models.Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.MessageResponse"}}
                }
            }
        },
        "/clients": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get all OAuth2 clients owned by the caller",
                "produces": ["application/json"],
                "tags": ["OAuth2 Clients"],
                "summary": "List OAuth2 clients",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Registers a machine client owned by the caller. Tokens it obtains act as the caller's email.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["OAuth2 Clients"],
                "summary": "Create OAuth2 client",
                "responses": {
                    "201": {"description": "Client created with client_id and client_secret", "schema": {"type": "object"}}
                }
            }
        },
        "/clients/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["OAuth2 Clients"],
                "summary": "Delete OAuth2 client",
                "parameters": [
                    {"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Client deleted successfully"},
                    "404": {"description": "Client not found", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.createUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "photoURL": {"type": "string"}
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "models.ResultResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "result": {},
                "error": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "_id": {"type": "integer"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "photoURL": {"type": "string"},
                "role": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.Event": {
            "type": "object",
            "properties": {
                "_id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "location": {"type": "string"},
                "image": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "capacity": {"type": "integer"},
                "organizerEmail": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.Review": {
            "type": "object",
            "properties": {
                "_id": {"type": "integer"},
                "eventId": {"type": "integer"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "rating": {"type": "integer"},
                "details": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "models.Message": {
            "type": "object",
            "properties": {
                "_id": {"type": "integer"},
                "senderEmail": {"type": "string"},
                "receiverEmail": {"type": "string"},
                "body": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LinkUp API",
	Description:      "Backend for the LinkUp event community platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
