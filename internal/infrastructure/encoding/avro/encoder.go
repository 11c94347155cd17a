package avro

import (
	"fmt"
	"sync"

	"github.com/linkedin/goavro/v2"
)

// Encoder wraps a goavro codec for thread-safe encode/decode.
type Encoder struct {
	codec *goavro.Codec
	mu    sync.Mutex
}

// NewEncoder builds an encoder from an Avro schema string.
func NewEncoder(schema string) (*Encoder, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("create avro codec: %w", err)
	}
	return &Encoder{codec: codec}, nil
}

// EncodeNative converts a native Go map to Avro binary.
func (e *Encoder) EncodeNative(native interface{}) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	binary, err := e.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("encode avro binary: %w", err)
	}
	return binary, nil
}

// DecodeNative converts Avro binary back to a native Go map.
func (e *Encoder) DecodeNative(data []byte) (map[string]interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	native, _, err := e.codec.NativeFromBinary(data)
	if err != nil {
		return nil, fmt.Errorf("decode avro binary: %w", err)
	}
	record, ok := native.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("avro payload is not a record")
	}
	return record, nil
}
