package jsoncodec

import (
	"fmt"

	serde "github.com/get-serde/go-serde"
)

// Marshal serializes one value to JSON.
func Marshal(value serde.Value[*Serializer]) ([]byte, error) {
	ser := NewSerializer()

	if err := value(ser); err != nil {
		return nil, fmt.Errorf("jsoncodec.Marshal: failed to serialize value, %w", err)
	}

	// The stream buffer belongs to the serializer.
	out := make([]byte, len(ser.Bytes()))
	copy(out, ser.Bytes())

	return out, nil
}

// Unmarshal decodes one JSON value from data into target.
func Unmarshal(data []byte, target serde.Target[*Deserializer]) error {
	if err := target(NewDeserializer(data)); err != nil {
		return fmt.Errorf("jsoncodec.Unmarshal: failed to deserialize value, %w", err)
	}

	return nil
}
