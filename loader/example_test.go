package loader_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/erraggy/oastables/loader"
	"github.com/erraggy/oastables/oaserrors"
)

// Example loads an OpenAPI document from disk.
func Example() {
	dir, err := os.MkdirTemp("", "loader-example")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "petstore.json")
	spec := `{"swagger":"2.0","paths":{"/pets":{"get":{"operationId":"listPets"}}}}`
	if err := os.WriteFile(path, []byte(spec), 0o644); err != nil {
		log.Fatal(err)
	}

	res, err := loader.New().Load(path)
	if err != nil {
		log.Fatalf("failed to load: %v", err)
	}
	fmt.Printf("Version: %s\n", res.Version)
	fmt.Printf("Size: %s\n", loader.FormatBytes(res.SourceSize))
	fmt.Printf("Paths: %v\n", res.Document.Get("paths").Keys())
	// Output:
	// Version: 2.0
	// Size: 70 B
	// Paths: [/pets]
}

// Example_lenient recovers a document wrapped in surrounding text.
func Example_lenient() {
	res, err := loader.LoadWithOptions(
		loader.WithBytes([]byte("Here is the spec:\n{\"openapi\":\"3.0.3\",\"paths\":{}}\nThanks!")),
		loader.WithSourceName("chat.txt"),
		loader.WithLenient(true),
	)
	if err != nil {
		log.Fatalf("failed to load: %v", err)
	}
	fmt.Printf("Version: %s\n", res.Version)
	fmt.Printf("Salvaged: %v\n", res.Salvaged)
	// Output:
	// Version: 3.0.3
	// Salvaged: true
}

// Example_errors shows how load failures are classified.
func Example_errors() {
	_, err := loader.New().Load("does-not-exist.json")
	fmt.Println(errors.Is(err, oaserrors.ErrNotFound))

	_, err = loader.New().LoadBytes([]byte("{\n  \"paths\": ,\n}"), "bad.json")
	var malformed *oaserrors.MalformedInputError
	if errors.As(err, &malformed) {
		fmt.Printf("line %d\n", malformed.Line)
	}
	// Output:
	// true
	// line 2
}
