package session

import (
	"encoding/json"
	"errors"
)

var errNotObject = errors.New("payload is not a JSON object")

// encode serializes session data as a UTF-8 JSON object.
func encode(data map[string]any) ([]byte, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return b, nil
}

// decode parses a stored payload. Anything but a JSON object is rejected.
func decode(payload []byte) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errNotObject
	}
	return data, nil
}
