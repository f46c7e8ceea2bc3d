package pipeline

import (
	"encoding/base64"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxInlineImage caps the size of an image embedded as a data URI.
const maxInlineImage = 10 << 20

// InlineImages replaces relative img src paths that resolve under sourceDir
// with base64 data URIs, so the page has no external files. Images that are
// missing, too large, or outside sourceDir keep their original src. An empty
// sourceDir returns the fragment unchanged.
func InlineImages(fragment, sourceDir string) (string, error) {
	if sourceDir == "" || !strings.Contains(fragment, "<img") {
		return fragment, nil
	}
	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}
	inlineNode(root, absDir)
	return renderFragment(root)
}

func parseFragment(content string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func inlineNode(n *html.Node, dir string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for i, attr := range n.Attr {
			if attr.Key != "src" {
				continue
			}
			rel, ok := localPath(attr.Val)
			if !ok {
				continue
			}
			if uri, ok := dataURI(filepath.Join(dir, filepath.FromSlash(rel)), dir); ok {
				n.Attr[i].Val = uri
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineNode(c, dir)
	}
}

func dataURI(path, dir string) (string, bool) {
	if !isPathUnderDir(path, dir) {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() > maxInlineImage {
		return "", false
	}
	data, err := os.ReadFile(path) // #nosec G304 -- confined to sourceDir above
	if err != nil {
		return "", false
	}
	typ := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if typ == "" {
		typ = http.DetectContentType(data)
	}
	return "data:" + typ + ";base64," + base64.StdEncoding.EncodeToString(data), true
}

// localPath returns the unescaped path of a relative reference. URLs with a
// scheme, protocol-relative URLs, fragments and absolute paths are refused.
func localPath(ref string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") || filepath.IsAbs(ref) {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Path == "" {
		return "", false
	}
	return u.Path, true
}

// isPathUnderDir reports whether absPath is inside dir, rejecting traversal.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}
