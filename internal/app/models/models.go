package models

// Entity is implemented by every record kind kept in the record store.
// The logical id is assigned by the client and is independent of any storage key.
type Entity interface {
	LogicalID() string
}

// Kind names a record collection.
type Kind string

const (
	KindStudent Kind = "students"
	KindCourse  Kind = "courses"
	KindFaculty Kind = "faculty"
	KindGrade   Kind = "grades"
)

// Kinds lists every collection in a fixed order.
var Kinds = []Kind{KindStudent, KindCourse, KindFaculty, KindGrade}

// Patch is a partial update: provided fields replace, omitted fields are retained.
// Slice-valued fields are replaced wholesale.
type Patch[T Entity] interface {
	Apply(record *T)
}

// PatchFunc adapts a plain function to Patch.
type PatchFunc[T Entity] func(record *T)

// Apply calls f(record).
func (f PatchFunc[T]) Apply(record *T) { f(record) }

// UniqueStrings returns ids with duplicates removed, keeping the first occurrence.
func UniqueStrings(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ContainsString reports whether ids contains id.
func ContainsString(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
