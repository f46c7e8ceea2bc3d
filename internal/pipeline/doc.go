// Package pipeline implements the Markdown-to-HTML conversion stages:
//   - preprocessing (line endings, ==highlight== placeholders, blank lines)
//   - goldmark conversion with heading anchors and class-based highlighting
//   - cross-reference links, added as an AST transform before rendering
//   - the sidebar table of contents
//   - inlining of local images as data URIs
//   - assembly of the final page from the embedded template
//
// The PDF path does not go through HTML; see internal/layout.
package pipeline
