// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oastables/document"
	"github.com/stretchr/testify/require"
)

// PetstoreV2JSON is a Swagger 2.0 document touching every extracted section.
// Its counts are: 4 endpoints, 5 parameters, 6 responses, 2 tags,
// 5 model properties, 3 schemas and 2 security schemes.
const PetstoreV2JSON = `{
  "swagger": "2.0",
  "info": {"title": "Swagger Petstore", "version": "1.0.7"},
  "host": "petstore.swagger.io",
  "basePath": "/v2",
  "schemes": ["https", "http"],
  "consumes": ["application/json"],
  "produces": ["application/json", "application/xml"],
  "tags": [
    {"name": "pet", "description": "Everything about your Pets",
     "externalDocs": {"description": "Find out more", "url": "http://swagger.io"}},
    {"name": "store", "description": "Access to Petstore orders"}
  ],
  "parameters": {
    "limitParam": {"name": "limit", "in": "query", "type": "integer", "format": "int32"}
  },
  "paths": {
    "/pet": {
      "post": {
        "tags": ["pet"],
        "summary": "Add a new pet to the store",
        "operationId": "addPet",
        "consumes": ["application/json", "application/xml"],
        "parameters": [
          {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Pet"}}
        ],
        "responses": {"405": {"description": "Invalid input"}},
        "security": [{"petstore_auth": ["write:pets", "read:pets"]}]
      },
      "get": {
        "tags": ["pet"],
        "summary": "List pets",
        "operationId": "listPets",
        "parameters": [
          {"$ref": "#/parameters/limitParam"},
          {"name": "status", "in": "query", "type": "array",
           "items": {"type": "string", "enum": ["available", "pending", "sold"]},
           "collectionFormat": "multi"}
        ],
        "responses": {
          "200": {"description": "successful operation",
                  "schema": {"type": "array", "items": {"$ref": "#/definitions/Pet"}}},
          "default": {"description": "unexpected error"}
        }
      }
    },
    "/pet/{petId}": {
      "parameters": [
        {"name": "petId", "in": "path", "required": true, "type": "integer", "format": "int64"}
      ],
      "get": {
        "tags": ["pet"],
        "summary": "Find pet by ID",
        "operationId": "getPetById",
        "responses": {
          "200": {"description": "successful operation", "schema": {"$ref": "#/definitions/Pet"}},
          "404": {"description": "Pet not found"}
        },
        "security": [{"api_key": []}]
      },
      "delete": {
        "tags": ["pet"],
        "operationId": "deletePet",
        "deprecated": true,
        "parameters": [
          {"name": "petId", "in": "path", "required": true, "type": "string"}
        ],
        "responses": {"400": {"description": "Invalid ID supplied"}}
      }
    }
  },
  "securityDefinitions": {
    "petstore_auth": {
      "type": "oauth2",
      "authorizationUrl": "https://petstore.swagger.io/oauth/authorize",
      "flow": "implicit",
      "scopes": {"write:pets": "modify pets", "read:pets": "read pets"}
    },
    "api_key": {"type": "apiKey", "name": "api_key", "in": "header"}
  },
  "definitions": {
    "Pet": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "id": {"type": "integer", "format": "int64"},
        "name": {"type": "string", "example": "doggie"},
        "tags": {"type": "array", "xml": {"name": "tag", "wrapped": true},
                 "items": {"$ref": "#/definitions/Tag"}},
        "status": {"type": "string", "description": "pet status in the store",
                   "enum": ["available", "pending", "sold"]}
      },
      "xml": {"name": "Pet"}
    },
    "Tag": {
      "type": "object",
      "properties": {"label": {"type": "string"}}
    },
    "PetId": {"type": "integer", "format": "int64"}
  }
}`

// PetstoreV3JSON is an OpenAPI 3.0 document with request bodies, components
// and multi-flow OAuth. Its counts are: 3 endpoints, 3 parameters,
// 4 responses, 0 tags, 3 model properties, 2 schemas and 3 security schemes.
const PetstoreV3JSON = `{
  "openapi": "3.0.3",
  "info": {"title": "Petstore", "version": "1.0.0"},
  "servers": [{"url": "https://api.example.com/v1/"}],
  "security": [{"bearer": []}],
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "summary": "List all pets",
        "tags": ["pets", "public"],
        "parameters": [{"$ref": "#/components/parameters/Limit"}],
        "responses": {
          "200": {
            "description": "A paged array of pets",
            "content": {
              "application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Pet"}}},
              "application/xml": {"schema": {"type": "array"}}
            }
          },
          "default": {"$ref": "#/components/responses/Error"}
        }
      },
      "post": {
        "operationId": "createPet",
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}
        },
        "responses": {"201": {"description": "Created"}},
        "security": []
      }
    },
    "/pets/{petId}": {
      "parameters": [
        {"name": "petId", "in": "path", "required": true, "schema": {"type": "string"}},
        {"name": "X-Trace", "in": "header", "schema": {"type": "string"}}
      ],
      "get": {
        "operationId": "showPetById",
        "responses": {"200": {"description": "Expected response to a valid request",
                              "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}}}
      }
    }
  },
  "components": {
    "parameters": {
      "Limit": {"name": "limit", "in": "query", "description": "How many items to return",
                "schema": {"type": "integer", "format": "int32"}}
    },
    "responses": {
      "Error": {"description": "unexpected error",
                "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
    },
    "schemas": {
      "Pet": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "integer", "format": "int64"},
          "name": {"type": "string"},
          "meta": {"type": "object", "example": {"color": "brown", "age": 3}}
        }
      },
      "Error": {"$ref": "#/components/schemas/Pet"}
    },
    "securitySchemes": {
      "bearer": {"type": "http", "scheme": "bearer", "bearerFormat": "JWT"},
      "oauth": {
        "type": "oauth2",
        "flows": {
          "implicit": {"authorizationUrl": "https://auth.example.com/authorize",
                       "scopes": {"read": "read access"}},
          "clientCredentials": {"tokenUrl": "https://auth.example.com/token",
                                "scopes": {"read": "read access", "admin": "admin access"}}
        }
      },
      "oidc": {"type": "openIdConnect", "openIdConnectUrl": "https://auth.example.com/.well-known/openid-configuration"}
    }
  }
}`

// WriteSpec writes content to name inside a fresh temp dir and returns the path.
func WriteSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// MustParse parses a JSON fixture or fails the test.
func MustParse(t *testing.T, content string) *document.Node {
	t.Helper()
	root, err := document.Parse([]byte(content))
	require.NoError(t, err)
	return root
}
