package helpers

import (
	"encoding/json"
	"errors"
	"reflect"
)

var ErrUnMarshalNonPointer = errors.New("trying to unmarshal a non-pointer")

// Wraps json.Unmarshal, tolerating empty payloads
func Unmarshal(data []byte, v interface{}) (err error) {

	if reflect.ValueOf(v).Kind() != reflect.Ptr {
		return ErrUnMarshalNonPointer
	}

	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, v)
}

func MarshalUnmarshal(in interface{}, out interface{}) error {

	b, err := json.Marshal(in)
	if err != nil {
		return err
	}

	return Unmarshal(b, out)
}
