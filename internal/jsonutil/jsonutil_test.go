package jsonutil

import (
	"strings"
	"testing"
)

type entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestUnmarshalWithContext(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v entry
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), "test context") {
				t.Errorf("error %q should carry context", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestDecodeWithContext_Strict(t *testing.T) {
	var v entry
	if err := DecodeWithContext(strings.NewReader(`{"name":"a","extra":1}`), &v, "body", false); err != nil {
		t.Fatalf("lenient decode: %v", err)
	}
	if err := DecodeWithContext(strings.NewReader(`{"name":"a","extra":1}`), &v, "body", true); err == nil {
		t.Fatal("strict decode should reject unknown fields")
	}
}

func TestUnmarshalArrayAllowEmpty(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr bool
	}{
		{"two entries", `[{"id":1},{"id":2}]`, 2, false},
		{"empty array", `[]`, 0, false},
		{"null", `null`, 0, false},
		{"object", `{"id":1}`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalArrayAllowEmpty[entry]([]byte(tt.data), "entries")
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestUnmarshalArrayOrEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr bool
	}{
		{"bare array", `[{"id":1,"name":"a"}]`, 1, false},
		{"envelope", `{"foods":[{"id":1},{"id":2}]}`, 2, false},
		{"envelope with leading space", "  \n{\"foods\":[]}", 0, false},
		{"envelope missing key", `{"dishes":[]}`, 0, true},
		{"garbage", `nope`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalArrayOrEnvelope[entry]([]byte(tt.data), "foods", "seed")
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}
