package domain

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
)

// Document is a schemaless record. Typed entities embed one inline to keep
// the keys the server does not interpret.
type Document map[string]interface{}

// Without returns a copy of d minus the given keys.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// StringOf returns the value under key in its string form, or "" when the key
// is absent or null. Non-string values such as numeric IDs are formatted.
func (d Document) StringOf(key string) string {
	switch v := d[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// marshalDocument renders extra with the known fields laid over it.
func marshalDocument(extra Document, known Document) ([]byte, error) {
	doc := extra.Without()
	for k, v := range known {
		doc[k] = v
	}
	return json.Marshal(doc)
}

// decodeBSON reads a raw document with embedded documents as maps, the way
// the store client is configured.
func decodeBSON(data []byte) (Document, error) {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return nil, err
	}
	dec.DefaultDocumentM()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
