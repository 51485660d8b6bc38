package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is one named snapshot of an in-memory map. Saving a Document
// replaces whatever was stored under the same name.
type Document struct {
	Name string   `bson:"name"`
	Data bson.Raw `bson:"data"`
}

// storedDocument is the on-disk shape. Older deployments wrote parallel
// key/val arrays instead of a data sub-document.
type storedDocument struct {
	Name string   `bson:"name"`
	Data bson.Raw `bson:"data,omitempty"`
	Key  bson.A   `bson:"key,omitempty"`
	Val  bson.A   `bson:"val,omitempty"`
}

// EncodeDocument marshals a map or struct snapshot into a Document.
func EncodeDocument(name string, snapshot any) (Document, error) {
	raw, err := bson.Marshal(snapshot)
	if err != nil {
		return Document{}, fmt.Errorf("encode %s: %w", name, err)
	}
	return Document{Name: name, Data: raw}, nil
}

// Decode unmarshals the document data into v.
func (d Document) Decode(v any) error {
	if len(d.Data) == 0 {
		return nil
	}
	if err := bson.Unmarshal(d.Data, v); err != nil {
		return fmt.Errorf("decode %s: %w", d.Name, err)
	}
	return nil
}

// toDocument normalizes a stored document, converting the key/val layout.
func (s storedDocument) toDocument() (Document, error) {
	if len(s.Data) > 0 || s.Key == nil {
		return Document{Name: s.Name, Data: s.Data}, nil
	}

	raw, err := bson.Marshal(zipLegacy(s.Key, s.Val))
	if err != nil {
		return Document{}, fmt.Errorf("convert legacy %s: %w", s.Name, err)
	}
	return Document{Name: s.Name, Data: raw}, nil
}

// zipLegacy turns parallel key/val arrays into an ordered document.
// Nested {key, val} documents are converted recursively.
func zipLegacy(keys, vals bson.A) bson.D {
	out := make(bson.D, 0, len(keys))
	for i, key := range keys {
		if i >= len(vals) {
			break
		}
		out = append(out, bson.E{Key: fmt.Sprint(key), Value: legacyValue(vals[i])})
	}
	return out
}

func legacyValue(v any) any {
	var m bson.M
	switch doc := v.(type) {
	case bson.D:
		m = doc.Map()
	case bson.M:
		m = doc
	default:
		return v
	}

	keys, hasKeys := m["key"].(bson.A)
	vals, hasVals := m["val"].(bson.A)
	if len(m) == 2 && hasKeys && hasVals {
		return zipLegacy(keys, vals)
	}
	return v
}
