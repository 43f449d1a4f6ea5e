// Package pkguid provides helpers for generating unique identifiers.
//
// Each pipeline run is tagged with a string ID so its log records and
// findings report can be correlated.
package pkguid
