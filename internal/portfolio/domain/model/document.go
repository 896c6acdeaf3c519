package model

// Document is a schema-flexible record as stored in and returned from the
// document store. Store-assigned identifiers are normalized to hex strings
// under the "_id" key before a Document leaves the persistence boundary.
type Document = map[string]interface{}
