package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/goldmark"
	"github.com/fwojciec/mdlesson/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings to ATX style", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Control Flow</h1><h2>If</h2><h3>Else If</h3>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Control Flow")
		assert.Contains(t, md, "## If")
		assert.Contains(t, md, "### Else If")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-swift">let numbers = [1, 2, 3]
for n in numbers {
    print(n)
}
</code></pre>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```swift")
		assert.Contains(t, md, "for n in numbers {")
	})

	t.Run("converts inline code and emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<p>Use <code>guard</code> for <strong>early</strong> <em>exit</em>.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "`guard`")
		assert.Contains(t, md, "**early**")
		assert.Contains(t, md, "*exit*")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Type</th><th>Example</th></tr></thead>
<tbody><tr><td>Int</td><td>42</td></tr><tr><td>Bool</td><td>true</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Type")
		assert.Contains(t, md, "Bool")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("keeps code languages from highlighter markup", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			html string
			want string
		}{
			{"data-lang on pre", `<pre data-lang="Swift"><code>let x = 1</code></pre>`, "```swift\nlet x = 1\n```"},
			{"highlight wrapper div", `<div class="highlight highlight-source-go"><pre><code>x := 1</code></pre></div>`, "```go\nx := 1\n```"},
			{"brush class on pre", `<pre class="brush: python"><code>x = 1</code></pre>`, "```python\nx = 1\n```"},
			{"existing code class wins", `<pre data-lang="text"><code class="language-rust">let x = 1;</code></pre>`, "```rust\nlet x = 1;\n```"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				md, err := htmltomarkdown.NewConverter().Convert(tt.html)

				require.NoError(t, err)
				assert.Contains(t, md, tt.want)
			})
		}
	})

	t.Run("leaves code without a language hint unfenced by language", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<pre><code>plain</code></pre>`)

		require.NoError(t, err)
		assert.Contains(t, md, "```\nplain\n```")
	})

	t.Run("uses dash bullets", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<ul><li>one</li><li>two</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- one")
		assert.Contains(t, md, "- two")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("")

		require.Error(t, err)
		assert.Equal(t, mdlesson.EINVALID, mdlesson.ErrorCode(err))
	})

	t.Run("output renders into the same blocks as the markdown lesson", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Optionals</h1>
<p>An optional may be nil.</p>
<pre><code class="language-swift">var name: String? = nil</code></pre>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)

		blocks := goldmark.NewRenderer().Render([]byte(md))

		assert.Equal(t, []mdlesson.Block{
			{Kind: mdlesson.BlockHeading, Level: 1, Text: "Optionals"},
			{Kind: mdlesson.BlockParagraph, Text: "An optional may be nil."},
			{Kind: mdlesson.BlockCode, Language: "swift", Text: "var name: String? = nil"},
		}, blocks)
	})
}
