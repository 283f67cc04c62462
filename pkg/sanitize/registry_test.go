package sanitize

import "testing"

func TestLookupTool(t *testing.T) {
	t.Run("known tool", func(t *testing.T) {
		tool, ok := LookupTool("bold")
		if !ok {
			t.Fatal("expected bold to be registered")
		}
		if len(tool.Tags) != 1 || tool.Tags[0] != "strong" {
			t.Errorf("expected canonical tag 'strong', got %v", tool.Tags)
		}
		if len(tool.Aliases) != 1 || tool.Aliases[0] != "b" {
			t.Errorf("expected alias 'b', got %v", tool.Aliases)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		if _, ok := LookupTool("blink"); ok {
			t.Error("expected blink to be unregistered")
		}
	})
}

func TestToolHasTags(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"bold", true},
		{"orderedlist", true},
		{"image", true},
		{"undo", false},
		{"aligncenter", false},
		{"removeformat", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, ok := LookupTool(tt.name)
			if !ok {
				t.Fatalf("tool %q not registered", tt.name)
			}
			if got := tool.HasTags(); got != tt.want {
				t.Errorf("HasTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToolsReturnsCopy(t *testing.T) {
	a := Tools()
	a[0].Name = "mutated"
	b := Tools()
	if b[0].Name == "mutated" {
		t.Error("Tools() returned a shared slice")
	}
}

func TestDefaultTools(t *testing.T) {
	names := DefaultTools()
	if len(names) == 0 {
		t.Fatal("expected non-empty default tool list")
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate tool name %q", name)
		}
		seen[name] = true
		if _, ok := LookupTool(name); !ok {
			t.Errorf("default tool %q is not registered", name)
		}
	}
}
