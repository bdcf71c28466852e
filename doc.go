// Package persist holds the errors shared by the persistence packages.
//
// The packages are layered bottom-up:
//
//   - schema/field and schema describe mapped entities;
//   - schema/load builds that metadata from tagged structs or YAML;
//   - dialect and its subpackages render SQL fragments per database;
//   - sqlgen assembles whole statements and query binds them to a dialect;
//   - dialect/sql and session execute statements through database/sql;
//   - config opens sessions from YAML settings.
package persist
