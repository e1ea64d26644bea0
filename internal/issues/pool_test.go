package issues

import "testing"

func TestFormatPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"paths"}, "paths"},
		{[]string{"paths", "/widgets", "get"}, "paths./widgets.get"},
		{[]string{"components", "securitySchemes", "bearerAuth"}, "components.securitySchemes.bearerAuth"},
	}

	for _, tt := range tests {
		got := FormatPath(tt.segments...)
		if got != tt.want {
			t.Errorf("FormatPath(%v) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}

func TestIndexedPath(t *testing.T) {
	tests := []struct {
		path  string
		index int
		want  string
	}{
		{"paths./widgets.get.parameters", 0, "paths./widgets.get.parameters[0]"},
		{"servers", 1, "servers[1]"},
	}

	for _, tt := range tests {
		got := IndexedPath(tt.path, tt.index)
		if got != tt.want {
			t.Errorf("IndexedPath(%q, %d) = %q, want %q", tt.path, tt.index, got, tt.want)
		}
	}
}

func BenchmarkFormatPath_WithPool(b *testing.B) {
	segments := []string{"paths", "/widgets/{id}", "get", "parameters", "0"}
	for b.Loop() {
		_ = FormatPath(segments...)
	}
}

func BenchmarkFormatPath_WithoutPool(b *testing.B) {
	segments := []string{"paths", "/widgets/{id}", "get", "parameters", "0"}
	for b.Loop() {
		result := ""
		for i, s := range segments {
			if i > 0 {
				result += "."
			}
			result += s
		}
		_ = result
	}
}
