// Package yaml2json converts YAML documents into JSON.
//
// The package is organized as follows:
//
// - the root package converts a single YAML document into JSON text,
//   with a choice of compact or pretty output (see Converter)
// - the split package turns a stream containing any number of
//   concatenated YAML documents into individual documents, each
//   suitable for the converter
//
// These combine into a simple pipeline:
//
//	split documents -> convert each document -> print JSON
//
// Each stage is streaming: a document is converted as soon as its end is
// recognized in the input, so output starts before the whole input has
// been read and memory usage is bounded by the size of the largest
// document rather than the size of the input.
//
// This package was designed for the yaml2json CLI utility.  You can
// install it with:
//
//	go install github.com/arnodel/yaml2json/cmd/yaml2json
package yaml2json
