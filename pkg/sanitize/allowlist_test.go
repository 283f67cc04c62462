package sanitize

import "testing"

func TestBuildAllowList(t *testing.T) {
	t.Run("canonical tags carry their tool", func(t *testing.T) {
		allow := BuildAllowList([]string{"bold"}, nil, nil)
		e, ok := allow["strong"]
		if !ok {
			t.Fatal("expected strong in allow-list")
		}
		if e.Tool != "bold" {
			t.Errorf("expected Tool 'bold', got %q", e.Tool)
		}
		if e.Alias != "" {
			t.Errorf("canonical tag should have no alias, got %q", e.Alias)
		}
	})

	t.Run("aliases rewrite to first canonical tag", func(t *testing.T) {
		allow := BuildAllowList([]string{"bold", "strikethrough"}, nil, nil)
		if e := allow["b"]; e.Alias != "strong" {
			t.Errorf("expected b -> strong, got %q", e.Alias)
		}
		if e := allow["strike"]; e.Alias != "s" {
			t.Errorf("expected strike -> s, got %q", e.Alias)
		}
		if e := allow["del"]; e.Alias != "s" {
			t.Errorf("expected del -> s, got %q", e.Alias)
		}
	})

	t.Run("extra tags carry no tool", func(t *testing.T) {
		allow := BuildAllowList([]string{"orderedlist"}, nil, nil)
		e, ok := allow["li"]
		if !ok {
			t.Fatal("expected li in allow-list")
		}
		if e.Tool != "" {
			t.Errorf("extra tag should have no tool, got %q", e.Tool)
		}
		if !e.Styles["text-align"] {
			t.Error("expected text-align style on li")
		}
	})

	t.Run("tag-less tools contribute nothing", func(t *testing.T) {
		allow := BuildAllowList([]string{"undo", "redo", "aligncenter"}, nil, nil)
		if len(allow) != 0 {
			t.Errorf("expected empty allow-list, got tags %v", allow.Tags())
		}
	})

	t.Run("unknown tools are skipped", func(t *testing.T) {
		allow := BuildAllowList([]string{"nosuchtool", "bold"}, nil, nil)
		if _, ok := allow["strong"]; !ok {
			t.Error("expected strong despite unknown tool in list")
		}
		if len(allow) != 2 {
			t.Errorf("expected exactly strong and b, got %v", allow.Tags())
		}
	})

	t.Run("base is copied not mutated", func(t *testing.T) {
		base := DefaultBase()
		allow := BuildAllowList([]string{"bold"}, base, nil)
		if _, ok := allow["br"]; !ok {
			t.Error("expected br from base")
		}
		if _, ok := base["strong"]; ok {
			t.Error("base was mutated by BuildAllowList")
		}
	})

	t.Run("custom tags are applied last", func(t *testing.T) {
		custom := []CustomTag{
			{Tag: "mark", Attributes: []string{"data-id"}},
			{Tag: "strong", Styles: []string{"color"}},
		}
		allow := BuildAllowList([]string{"bold"}, nil, custom)
		if !allow["mark"].Attributes["data-id"] {
			t.Error("expected data-id attribute on mark")
		}
		if !allow["strong"].Styles["color"] {
			t.Error("expected custom declaration to replace tool entry")
		}
	})

	t.Run("may be empty propagates", func(t *testing.T) {
		allow := BuildAllowList([]string{"image", "horizontalrule", "paragraph"}, DefaultBase(), nil)
		for _, tag := range []string{"img", "hr", "br"} {
			if !allow[tag].MayBeEmpty {
				t.Errorf("expected %s to be may-be-empty", tag)
			}
		}
		if allow["p"].MayBeEmpty {
			t.Error("p must not be may-be-empty")
		}
	})
}

func TestAllowListClone(t *testing.T) {
	allow := BuildAllowList([]string{"link"}, nil, nil)
	clone := allow.Clone()
	clone["a"].Attributes["onclick"] = true
	if allow["a"].Attributes["onclick"] {
		t.Error("clone shares attribute sets with original")
	}
}
