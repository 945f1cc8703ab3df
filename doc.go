// Package oastables flattens OpenAPI Specification (OAS) documents into tabular exports.
//
// oastables reads an OAS 2.0 (Swagger) or OAS 3.x JSON document from local disk and
// turns its paths, parameters, responses, tags, schemas and security schemes into
// flat, ordered rows that can be written as CSV files or as a multi-sheet workbook.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - document: Order-preserving tagged tree decoded from JSON
//   - loader: Read and shape-check an OAS document from disk or memory
//   - extract: Walk the document and build one record sequence per section
//   - export: Write record sequences to CSV files and a workbook
//
// Errors returned by these packages can be classified with the oaserrors package:
//
//	res, err := loader.New().Load("petstore.json")
//	if errors.Is(err, oaserrors.ErrNotFound) {
//		// the source file does not exist
//	}
//
// # Quick Start
//
// Export every section of a document:
//
//	res, err := loader.New().Load("petstore.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	tables := extract.Extract(res.Document)
//	manifest, err := export.New(export.WithOutputDir("out")).WriteFull(tables, res.SourcePath)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range manifest.Files {
//		fmt.Println(f.Path)
//	}
//
// Export only the endpoint summary:
//
//	manifest, err := export.New().WriteList(tables, res.SourcePath)
//
// # Sections
//
// The extractor recognizes the following sections, in this order:
//
//   - endpoints: one row per (path, HTTP method) pair
//   - parameters: one row per merged path-level and operation-level parameter
//   - responses: one row per response status code, including "default"
//   - tags: one row per top-level tag object
//   - models: one row per declared schema property
//   - schemas: one row per named schema
//   - security: one row per security scheme
//
// Rows are emitted in the document's key order. Absent sections produce empty
// tables, never errors.
package oastables
