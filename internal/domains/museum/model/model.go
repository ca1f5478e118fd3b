package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"museum/shared/constant"
)

var ErrMalformedResponse = errors.New("malformed response from collection api")

// Record is a single decoded object from the collection API.
type Record map[string]any

// Records extracts the "records" array from a listing payload.
func Records(body any) ([]any, error) {
	payload, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedResponse)
	}

	records, ok := payload[constant.HarvardFieldRecords].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q array", ErrMalformedResponse, constant.HarvardFieldRecords)
	}

	return records, nil
}

// RawRecords returns the "records" value as-is, nil when the payload carries none.
func RawRecords(body any) any {
	payload, ok := body.(map[string]any)
	if !ok {
		return nil
	}

	return payload[constant.HarvardFieldRecords]
}

// AsRecord converts a decoded JSON value into a Record.
func AsRecord(value any) (Record, error) {
	record, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object record, got %T", ErrMalformedResponse, value)
	}

	return Record(record), nil
}

// String renders the field at key as text. Missing and null fields are empty.
func (r Record) String(key string) string {
	return Stringify(r[key])
}

// PrimaryImageURL reports the full resolution image url, false when absent or null.
func (r Record) PrimaryImageURL() (string, bool) {
	value, ok := r[constant.HarvardFieldPrimaryImageURL]
	if !ok || value == nil {
		return constant.Empty, false
	}

	return Stringify(value), true
}

// PeopleNames lists people[].name in payload order. Anything other than an array yields none.
func (r Record) PeopleNames() []string {
	people, ok := r[constant.HarvardFieldPeople].([]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(people))
	for _, person := range people {
		info, ok := person.(map[string]any)
		if !ok {
			names = append(names, constant.Empty)

			continue
		}

		names = append(names, Stringify(info[constant.HarvardFieldName]))
	}

	return names
}

func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return constant.Empty
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
