// SPDX-License-Identifier: AGPL-3.0-or-later
package registry

// FieldRecord is one revision of a field in the schema store.
type FieldRecord struct {
	Label            string
	LastModifiedDate string // ISO-8601, "" when absent
	Version          *int   // nil when absent

	// Raw is the full JSON object as returned by the registry.
	Raw map[string]any
}

// SchemaSummary identifies one schema (checklist) in the store.
type SchemaSummary struct {
	ID        string
	Accession *string
	Name      *string
}

// versionKey is the ordering value of Version; absent sorts lowest.
func (f FieldRecord) versionKey() int {
	if f.Version == nil {
		return -1
	}
	return *f.Version
}

// newer reports whether f sorts strictly after o by (lastModifiedDate, version).
func (f FieldRecord) newer(o FieldRecord) bool {
	if f.LastModifiedDate != o.LastModifiedDate {
		return f.LastModifiedDate > o.LastModifiedDate
	}
	return f.versionKey() > o.versionKey()
}

func fieldFromJSON(obj map[string]any) FieldRecord {
	rec := FieldRecord{Raw: obj}
	if s, ok := obj["label"].(string); ok {
		rec.Label = s
	}
	if s, ok := obj["lastModifiedDate"].(string); ok {
		rec.LastModifiedDate = s
	}
	if n, ok := obj["version"].(float64); ok {
		v := int(n)
		rec.Version = &v
	}
	return rec
}
