package md

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var mermaidRe = regexp.MustCompile(`(?s)<pre><code class="language-mermaid">(.*?)</code></pre>`)

// Only the characters that change how an HTML parser reads the text are
// escaped again; the rest of the diagram source is kept verbatim.
var mermaidEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")

// ConvertMermaid rewrites fenced mermaid code blocks into <pre class="mermaid"> elements.
func ConvertMermaid(src string) string {
	return mermaidRe.ReplaceAllStringFunc(src, func(m string) string {
		body := mermaidRe.FindStringSubmatch(m)[1]
		return fmt.Sprintf(`<pre class="mermaid">%s</pre>`, mermaidEscaper.Replace(strings.TrimSpace(html.UnescapeString(body))))
	})
}
