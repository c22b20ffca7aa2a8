package payload_test

import (
	"encoding/json"
	"testing"

	"github.com/fortuna/services/game-recap-service/internal/payload"
)

func TestAccessors(t *testing.T) {
	var m map[string]interface{}
	raw := `{
		"name": "Lakers",
		"completed": true,
		"team": {"id": 13},
		"events": [1, 2, 3]
	}`
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}

	if got := payload.String(m, "name"); got != "Lakers" {
		t.Errorf("String(name) = %q, want Lakers", got)
	}
	if got := payload.String(m, "completed"); got != "" {
		t.Errorf("String(wrong type) = %q, want empty", got)
	}
	if got := payload.Bool(m, "completed"); !got {
		t.Errorf("Bool(completed) = false, want true")
	}
	if got := payload.Bool(m, "missing"); got {
		t.Errorf("Bool(missing) = true, want false")
	}
	if got := payload.Map(m, "team"); payload.Stringify(got["id"]) != "13" {
		t.Errorf("Map(team)[id] = %v, want 13", got["id"])
	}
	if got := payload.Map(m, "name"); len(got) != 0 {
		t.Errorf("Map(wrong type) = %v, want empty", got)
	}
	if got := payload.Array(m, "events"); len(got) != 3 {
		t.Errorf("Array(events) len = %d, want 3", len(got))
	}
	if got := payload.MapAt(payload.Array(m, "events"), 7); len(got) != 0 {
		t.Errorf("MapAt(out of range) = %v, want empty", got)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string", "23", "23"},
		{"whole float", float64(13), "13"},
		{"fractional float", 45.1, "45.1"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"unsupported", []interface{}{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := payload.Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
