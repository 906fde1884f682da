package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// MarshalJSON encodes a node as plain JSON. Object fields are written in
// insertion order; scalar tokens are delegated to encoding/json.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := y.appendJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) appendJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			d, err := json.Marshal(*y.Float64)
			if err != nil {
				return err
			}
			buf.Write(d)
		default:
			if y.Number == "" {
				return fmt.Errorf("number node with no value")
			}
			buf.WriteString(y.Number)
		}
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, yv := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := yv.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(y.Fields[i].String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := y.Values[i].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode type %s", y.Type)
	}
	return nil
}

// UnmarshalJSON decodes plain JSON into a node, preserving object field
// order.
func (y *Node) UnmarshalJSON(d []byte) error {
	yy, err := Decode(d)
	if err != nil {
		return err
	}
	*y = *yy
	return nil
}

// Decode reads one JSON value into a node. Tokenizing is delegated to
// encoding/json in number mode; field order of the input is kept. The
// resulting tree is entirely shared.
func Decode(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	y, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after value", ErrParse)
	}
	return y, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
	case string:
		return FromString(t), nil
	case json.Number:
		return fromNumber(t), nil
	case bool:
		return FromBool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Node, error) {
	res := &Node{Type: ObjectType}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		// duplicate keys: last value wins, position of first kept
		if i := res.FieldIndex(key); i >= 0 {
			res.Values[i] = val
			continue
		}
		res.Fields = append(res.Fields, FromString(key))
		res.Values = append(res.Values, val)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return res, nil
}

func decodeArray(dec *json.Decoder) (*Node, error) {
	res := &Node{Type: ArrayType}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return res, nil
}
