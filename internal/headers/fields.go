package headers

import "strings"

// Fields is an ordered set of response header fields. Names are stored in
// lower case; the first Set of a name fixes its position.
type Fields struct {
	order  []string
	values map[string]string
}

func NewFields() *Fields {
	return &Fields{values: map[string]string{}}
}

// Set stores value under key, replacing an existing value in place.
func (f *Fields) Set(key, value string) {
	key = strings.ToLower(key)
	if _, ok := f.values[key]; !ok {
		f.order = append(f.order, key)
	}
	f.values[key] = value
}

func (f *Fields) Get(key string) string {
	return f.values[strings.ToLower(key)]
}

func (f *Fields) Has(key string) bool {
	_, ok := f.values[strings.ToLower(key)]
	return ok
}

// Each calls fn for every field in insertion order.
func (f *Fields) Each(fn func(key, value string)) {
	for _, k := range f.order {
		fn(k, f.values[k])
	}
}
