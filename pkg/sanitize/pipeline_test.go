package sanitize

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestPrepare(t *testing.T) {
	s := NewFromTools(DefaultTools())

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "plain text becomes a paragraph",
			html: `plain text`,
			want: `<p>plain text</p>`,
		},
		{
			name: "alias rewritten and wrapped",
			html: `<b>x</b>`,
			want: `<p><strong>x</strong></p>`,
		},
		{
			name: "deprecated center alignment migrates",
			html: `<div align="center">x</div>`,
			want: `<p style="text-align: center;">x</p>`,
		},
		{
			name: "disallowed declarations dropped",
			html: `<p style="color:red;text-align:center">x</p>`,
			want: `<p style="text-align: center;">x</p>`,
		},
		{
			name: "script stripped then leftovers pruned",
			html: `<p><script>alert(1)</script></p>`,
			want: ``,
		},
		{
			name: "empty input",
			html: ``,
			want: ``,
		},
		{
			name: "whitespace-only input",
			html: "  \n\t ",
			want: ``,
		},
		{
			name: "comment-only input",
			html: `<!-- nothing here -->`,
			want: ``,
		},
		{
			name: "mixed document",
			html: `Intro<div><b>bold</b> and <span>plain</span></div><ul><li>item</li><li></li></ul>`,
			want: `<p>Intro<strong>bold</strong> and plain</p><ul><li>item</li></ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Prepare(tt.html); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrepareIdempotent(t *testing.T) {
	s := NewFromTools(DefaultTools())
	inputs := []string{
		`plain text`,
		`<b>x</b>`,
		`<div align="center">x</div>`,
		`<p style="color:red;text-align:center">x</p>`,
		`Intro<div><b>bold</b></div><ul><li><div align="right">item</div></li></ul>`,
		`<h1 align="center">Title</h1>para<br>more`,
	}
	for _, in := range inputs {
		once := s.Prepare(in)
		twice := s.Prepare(once)
		if twice != once {
			t.Errorf("pipeline not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestPrepareTagContainment(t *testing.T) {
	s := NewFromTools([]string{"bold", "italic", "paragraph"})
	allowed := s.AllowList()

	out := s.Prepare(`<table><tr><td><b>a</b></td></tr></table><article><i>b</i></article><video>c</video>`)

	root, err := parseFragment(out)
	if err != nil {
		t.Fatalf("output does not reparse: %v", err)
	}
	for _, tag := range collectTags(root) {
		if _, ok := allowed[tag]; !ok {
			t.Errorf("output contains disallowed tag %q: %s", tag, out)
		}
	}
}

// collectTags returns the tag name of every element under root.
func collectTags(root *html.Node) []string {
	var tags []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				tags = append(tags, c.Data)
			}
			walk(c)
		}
	}
	walk(root)
	return tags
}

func TestPrepareFiltered(t *testing.T) {
	s := NewFromTools(DefaultTools())

	t.Run("no paragraph wrapping", func(t *testing.T) {
		got := s.PrepareFiltered(`some <b>live</b> text`)
		want := `some <strong>live</strong> text`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("no pruning", func(t *testing.T) {
		got := s.PrepareFiltered(`<p></p>`)
		if got != `<p></p>` {
			t.Errorf("expected empty paragraph to survive filter-only mode, got %q", got)
		}
	})

	t.Run("still filters", func(t *testing.T) {
		got := s.PrepareFiltered(`<script>x</script><span>y</span>`)
		if got != `y` {
			t.Errorf("got %q, want %q", got, "y")
		}
	})
}

func TestPrepareWithStats(t *testing.T) {
	s := NewFromTools(DefaultTools())
	res := s.PrepareWithStats(`<div><b>x</b></div><!-- c --><p></p>`, false)

	if res.Stats == nil {
		t.Fatal("expected non-nil stats")
	}
	if res.HasWarnings() {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
	if res.Stats.InputBytes == 0 || res.Stats.OutputBytes == 0 {
		t.Error("expected byte counts to be recorded")
	}
	if res.Stats.ElementsUnwrapped["div"] != 1 {
		t.Errorf("expected div unwrap in stats, got %v", res.Stats.ElementsUnwrapped)
	}
	if res.Stats.CommentsRemoved != 1 {
		t.Errorf("expected 1 comment removed, got %d", res.Stats.CommentsRemoved)
	}
	if res.Stats.ElementsPruned != 1 {
		t.Errorf("expected 1 element pruned, got %d", res.Stats.ElementsPruned)
	}
	if res.Content != `<p><strong>x</strong></p>` {
		t.Errorf("unexpected content %q", res.Content)
	}

	summary := res.Stats.String()
	for _, want := range []string{"Unwrapped", "Comments removed", "pruned"} {
		if !strings.Contains(summary, want) {
			t.Errorf("expected summary to mention %q:\n%s", want, summary)
		}
	}
}

func TestNewClonesAllowList(t *testing.T) {
	allow := BuildAllowList([]string{"bold"}, DefaultBase(), nil)
	s := New(allow)
	delete(allow, "strong")

	if got := s.Prepare(`<strong>x</strong>`); got != `<p><strong>x</strong></p>` {
		t.Errorf("sanitizer affected by caller mutation: %q", got)
	}
}

func BenchmarkPrepare(b *testing.B) {
	s := NewFromTools(DefaultTools())
	doc := strings.Repeat(`<div align="center"><b>bold</b> text <span>span</span></div><p style="color:red">x</p><!-- c -->`, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Prepare(doc)
	}
}
