package extract_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oastables/document"
	"github.com/erraggy/oastables/extract"
)

// Example flattens a document into tables and prints the row count of each.
func Example() {
	doc, err := document.Parse([]byte(`{
		"swagger": "2.0",
		"paths": {
			"/pets": {
				"get": {
					"operationId": "listPets",
					"parameters": [{"name": "limit", "in": "query", "type": "integer"}],
					"responses": {"200": {"description": "ok"}}
				}
			}
		},
		"definitions": {
			"Pet": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}}
		}
	}`))
	if err != nil {
		log.Fatalf("failed to parse: %v", err)
	}

	result := extract.Extract(doc)
	for _, table := range result.Tables() {
		fmt.Printf("%s: %d\n", table.Name, table.Len())
	}
	// Output:
	// endpoints: 1
	// parameters: 1
	// responses: 1
	// tags: 0
	// models: 2
	// schemas: 1
	// security: 0
}

// Example_endpoints reads typed records directly.
func Example_endpoints() {
	doc, err := document.Parse([]byte(`{"paths":{"/pets/{id}":{"get":{"operationId":"getPet"},"DELETE":{"operationId":"deletePet"}}}}`))
	if err != nil {
		log.Fatalf("failed to parse: %v", err)
	}
	for _, op := range extract.Extract(doc).Endpoints {
		fmt.Println(op.Method, op.Path, op.OperationID)
	}
	// Output:
	// get /pets/{id} getPet
	// delete /pets/{id} deletePet
}
