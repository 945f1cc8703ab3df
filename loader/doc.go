// Package loader reads OpenAPI JSON documents from disk or memory.
//
// The loader is the first stage of every export: it reads the source, decodes
// its text encoding (a UTF-8 or UTF-16 byte order mark is honoured), parses it
// into a [document.Node] tree and checks that the tree looks like an OpenAPI
// document. No defaulting or schema validation is applied.
//
// Failures are classified with the oaserrors package:
//
//   - a missing, unreadable or directory path yields [oaserrors.NotFoundError]
//   - invalid JSON, a non-object root, or a root with none of the recognized
//     sections (paths, definitions, components, tags, securityDefinitions)
//     yields [oaserrors.MalformedInputError]
//
// # Usage
//
//	l := loader.New()
//	res, err := l.Load("petstore.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Version, res.Document.Get("paths").Len())
//
// Or with functional options:
//
//	res, err := loader.LoadWithOptions(
//		loader.WithBytes(data),
//		loader.WithSourceName("inline.json"),
//		loader.WithLenient(true),
//	)
//
// # Lenient Mode
//
// Some tools save OpenAPI documents with a banner or log prefix around the
// JSON body. With Lenient set, a document that fails to parse is retried on
// the slice between its first '{' and last '}'.
package loader
