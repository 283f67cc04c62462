package sanitize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCustomTagValidate(t *testing.T) {
	tests := []struct {
		name    string
		tag     CustomTag
		wantErr bool
	}{
		{
			name: "valid tag",
			tag:  CustomTag{Tag: "mark", Attributes: []string{"data-id"}, Styles: []string{"background-color"}},
		},
		{
			name:    "missing tag name",
			tag:     CustomTag{Attributes: []string{"data-id"}},
			wantErr: true,
		},
		{
			name:    "uppercase tag name",
			tag:     CustomTag{Tag: "Mark"},
			wantErr: true,
		},
		{
			name:    "tag name with spaces",
			tag:     CustomTag{Tag: "my tag"},
			wantErr: true,
		},
		{
			name:    "bad attribute name",
			tag:     CustomTag{Tag: "mark", Attributes: []string{"on click"}},
			wantErr: true,
		},
		{
			name:    "bad style name",
			tag:     CustomTag{Tag: "mark", Styles: []string{"color:red"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tag.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCustomTagsFromJSON(t *testing.T) {
	data := []byte(`[{"tag":"mark","attributes":["data-id"],"may_be_empty":false}]`)
	tags, err := CustomTagsFromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 || tags[0].Tag != "mark" {
		t.Errorf("unexpected tags: %+v", tags)
	}

	if _, err := CustomTagsFromJSON([]byte(`[{"tag":"BAD"}]`)); err == nil {
		t.Error("expected validation error for uppercase tag")
	}
	if _, err := CustomTagsFromJSON([]byte(`not json`)); err == nil {
		t.Error("expected parse error")
	}
}

func TestCustomTagsFromYAML(t *testing.T) {
	data := []byte("- tag: abbr\n  attributes: [title]\n- tag: kbd\n")
	tags, err := CustomTagsFromYAML(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 || tags[0].Tag != "abbr" || tags[1].Tag != "kbd" {
		t.Errorf("unexpected tags: %+v", tags)
	}
}

func TestCustomTagsFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "tags.yaml")
	if err := os.WriteFile(yamlPath, []byte("- tag: abbr\n  attributes: [title]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tags, err := CustomTagsFromFile(yamlPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 || tags[0].Tag != "abbr" {
		t.Errorf("unexpected tags: %+v", tags)
	}

	txtPath := filepath.Join(dir, "tags.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := CustomTagsFromFile(txtPath); err == nil {
		t.Error("expected error for unsupported extension")
	}

	if _, err := CustomTagsFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCustomTagsInPipeline(t *testing.T) {
	tags, err := CustomTagsFromJSON([]byte(`[{"tag":"mark","styles":["background-color"]}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := NewFromTools([]string{"paragraph"}, tags...)

	got := s.Prepare(`<p><mark style="background-color: yellow;color:red">x</mark></p>`)
	want := `<p><mark style="background-color: yellow;">x</mark></p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
