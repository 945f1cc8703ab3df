// Package export writes extracted tables to CSV files and to a spreadsheet workbook.
//
// Two modes mirror the two export pipelines:
//
//   - WriteList writes the endpoints table to a single <source-stem>.csv file.
//   - WriteFull writes one <section>.csv file per table plus a workbook
//     (<source-stem>_tables.xlsx by default) with one sheet per section.
//
// CSV files use a comma delimiter, "\n" line endings and a header row. Identical
// input produces byte-identical CSV output. WithExcelBOM prefixes every CSV file
// with a UTF-8 byte order mark so spreadsheet applications detect the encoding.
//
// Every write failure is returned as an *oaserrors.WriteError. Files written
// before the failure are left in place.
//
// Merge combines a directory of CSV files into one file with a leading
// SourceFile column.
package export
