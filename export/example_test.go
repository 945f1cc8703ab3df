package export_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/erraggy/oastables/document"
	"github.com/erraggy/oastables/export"
	"github.com/erraggy/oastables/extract"
)

// Example writes the endpoint list CSV for a document.
func Example() {
	dir, err := os.MkdirTemp("", "export-example")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	doc, err := document.Parse([]byte(`{"paths":{"/pets":{"get":{"operationId":"listPets","summary":"List pets"}}}}`))
	if err != nil {
		log.Fatalf("failed to parse: %v", err)
	}

	m, err := export.New(export.WithOutputDir(dir)).WriteList(extract.Extract(doc), "specs/petstore.json")
	if err != nil {
		log.Fatalf("failed to export: %v", err)
	}
	for _, f := range m.Files {
		fmt.Printf("%s (%s, %d rows)\n", filepath.Base(f.Path), f.Format, f.Rows)
	}

	data, err := os.ReadFile(m.Files[0].Path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
	// Output:
	// petstore.csv (csv, 1 rows)
	// path,method,operation_id,summary,description,tags,api_group,deprecated,parameters,responses,request_body,consumes,produces,security,url_template
	// /pets,get,listPets,List pets,,,,false,,,,,,,
}
