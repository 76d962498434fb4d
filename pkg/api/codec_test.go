package api

import (
	"testing"

	"google.golang.org/protobuf/types/known/emptypb"
)

func TestCodec(t *testing.T) {
	c := Codec{}

	data, err := c.Marshal(&emptypb.Empty{})
	if err != nil {
		t.Fatalf("Marshal(Empty) failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal(Empty) = %s, want {}", data)
	}

	data, err = c.Marshal(&AddGuestRequest{Name: "Silva, Bia"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"name":"Silva, Bia"}` {
		t.Errorf("Marshal = %s", data)
	}

	var req AddGuestRequest
	if err := c.Unmarshal(data, &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if req.Name != "Silva, Bia" {
		t.Errorf("name: expected 'Silva, Bia', got %q", req.Name)
	}

	var empty emptypb.Empty
	for _, body := range []string{"", "{}", `{"unknown":1}`} {
		if err := c.Unmarshal([]byte(body), &empty); err != nil {
			t.Errorf("Unmarshal(%q) into Empty failed: %v", body, err)
		}
	}

	if err := c.Unmarshal([]byte("{"), &req); err == nil {
		t.Error("expected error for truncated JSON")
	}
}
