// Package formats provides parsers for text mesh file formats.
//
// OBJ files are read as a stream of whitespace separated tokens. Only the
// v, vn, vt and f records are interpreted; faces are triangles.
package formats
