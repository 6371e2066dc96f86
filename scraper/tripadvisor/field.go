package tripadvisor

import "tripadvisor-scraper/models"

// Field is the outcome of a single extractor: a value, or not found.
type Field struct {
	Value string
	Found bool
}

// NotFound is the zero Field.
var NotFound = Field{}

func found(v string) Field {
	return Field{Value: v, Found: true}
}

// String collapses the field to its value, empty when not found.
func (f Field) String() string {
	if !f.Found {
		return ""
	}
	return f.Value
}

// Err returns models.ErrFieldNotFound when the field is missing.
func (f Field) Err() error {
	if !f.Found {
		return models.ErrFieldNotFound
	}
	return nil
}

// guard runs fn and turns any panic during lookup into NotFound.
func guard(fn func() Field) (f Field) {
	defer func() {
		if r := recover(); r != nil {
			f = NotFound
		}
	}()
	return fn()
}
