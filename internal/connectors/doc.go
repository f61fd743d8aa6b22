// Package connectors provides access to document locations. The filesystem
// connector enumerates supported files under a folder and watches it for
// changes.
package connectors
