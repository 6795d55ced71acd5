package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// deliveryFields has the fields of Delivery without its JSON methods.
type deliveryFields Delivery

// UnmarshalJSON decodes a delivery and keeps the object it came from, so keys
// the console does not model and the wire form of unchanged values are sent
// back as received.
func (d *Delivery) UnmarshalJSON(data []byte) error {
	var f deliveryFields
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode delivery: %w", err)
	}
	*d = Delivery(f)
	d.raw = nil
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		d.raw = bytes.Clone(trimmed)
	}
	return nil
}

// MarshalJSON encodes the delivery on top of the object it was decoded from.
// A field keeps its original bytes unless its value changed; keys without a
// field are carried over and new fields are appended.
func (d Delivery) MarshalJSON() ([]byte, error) {
	current, err := json.Marshal(deliveryFields(d))
	if err != nil {
		return nil, fmt.Errorf("encode delivery: %w", err)
	}
	if len(d.raw) == 0 {
		return current, nil
	}

	received, err := objectFields(d.raw)
	if err != nil {
		return nil, fmt.Errorf("encode delivery: %w", err)
	}

	var orig deliveryFields
	if err := json.Unmarshal(d.raw, &orig); err != nil {
		return nil, fmt.Errorf("encode delivery: %w", err)
	}
	origEnc, err := json.Marshal(orig)
	if err != nil {
		return nil, fmt.Errorf("encode delivery: %w", err)
	}
	origFields, err := objectFields(origEnc)
	if err != nil {
		return nil, fmt.Errorf("encode delivery: %w", err)
	}
	curFields, err := objectFields(current)
	if err != nil {
		return nil, fmt.Errorf("encode delivery: %w", err)
	}

	declared := fieldMap(origFields)
	updated := fieldMap(curFields)
	written := make(map[string]bool, len(received)+len(curFields))

	var out []jsonField
	for _, f := range received {
		cur, has := updated[f.key]
		_, isField := declared[f.key]
		switch {
		case has && bytes.Equal(declared[f.key], cur):
			out = append(out, f)
		case has:
			out = append(out, jsonField{key: f.key, value: cur})
		case isField:
			// field now omitted, e.g. a cleared id
			continue
		default:
			out = append(out, f)
		}
		written[f.key] = true
	}
	for _, f := range curFields {
		if !written[f.key] {
			out = append(out, f)
		}
	}

	return encodeObject(out)
}

type jsonField struct {
	key   string
	value json.RawMessage
}

// objectFields lists the members of a JSON object in document order.
func objectFields(data []byte) ([]jsonField, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("not a JSON object")
	}

	var fields []jsonField
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		fields = append(fields, jsonField{key: key, value: value})
	}
	return fields, nil
}

func fieldMap(fields []jsonField) map[string]json.RawMessage {
	m := make(map[string]json.RawMessage, len(fields))
	for _, f := range fields {
		m[f.key] = f.value
	}
	return m
}

func encodeObject(fields []jsonField) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Compact(&out, buf.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
