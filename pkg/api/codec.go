// Package api declares the planner's Connect services: procedure names,
// request and response messages, handler constructors and typed clients.
//
// Messages are plain Go structs carried as JSON. Argument-less calls take
// *emptypb.Empty so the wire form stays "{}" for every client.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Ensure Codec implements connect.Codec
var _ connect.Codec = Codec{}

// Codec encodes messages as JSON. Proto messages go through protojson,
// everything else through encoding/json. It replaces Connect's built-in
// "json" codec on both handlers and clients.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string {
	return "json"
}

// Marshal implements connect.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

// Unmarshal implements connect.Codec. An empty body leaves v untouched.
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if m, ok := v.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

// handlerOptions puts the JSON codec in front of the caller's options.
func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

// clientOptions puts the JSON codec in front of the caller's options.
func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}
