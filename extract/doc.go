// Package extract flattens an OpenAPI document tree into per-section records.
//
// Extraction is best effort. Absent sections yield empty record slices and
// entries of an unexpected shape (a parameter that is not an object, a path
// item that is a string) are skipped rather than failing the run. Records are
// emitted in the document's key order; nothing is sorted.
//
// Both OAS 2.0 and OAS 3.x layouts are read: "definitions" and
// "components.schemas" feed the models, "securityDefinitions" and
// "components.securitySchemes" feed security, and OAS 3.x request bodies and
// response content are summarised alongside the OAS 2.0 equivalents.
//
// Path-level and operation-level parameters are merged the OpenAPI way: an
// operation parameter replaces a path parameter with the same name and
// location. Local "$ref" parameters, responses and security schemes are
// followed within the document.
//
// # Usage
//
//	res, err := loader.New().Load("petstore.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out := extract.Extract(res.Document)
//	for _, op := range out.Endpoints {
//		fmt.Println(op.Method, op.Path, op.OperationID)
//	}
//
// Every section can also be viewed as a generic [Table] of string cells,
// which is what the export package writes:
//
//	for _, table := range out.Tables() {
//		fmt.Println(table.Name, table.Len())
//	}
package extract
