// Package api defines the wire messages of the moneysplitter RPC services.
//
// Messages are plain Go structs encoded as JSON. Handlers and clients in
// package apiconnect install JSONCodec so Connect does not require protobuf
// messages.
package api

import (
	"encoding/json"
	"fmt"
)

// JSONCodec is a connect.Codec that encodes messages with encoding/json.
// It registers under the name "json", replacing Connect's protojson codec.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body leaves msg untouched.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
