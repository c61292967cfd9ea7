// Package xmlutils provides small XPath helpers over parsed XML documents.
package xmlutils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// Parse reads an XML document into a navigable root node.
func Parse(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// ParseFile reads an XML document from disk.
func ParseFile(path string) (*xmlpath.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read XML file: %w", err)
	}
	return Parse(strings.NewReader(string(data)))
}

// StringAt returns the cleaned text at path under node, or an empty string
// when the path does not match.
func StringAt(node *xmlpath.Node, path *xmlpath.Path) string {
	value, ok := path.String(node)
	if !ok {
		return ""
	}
	return CleanText(value)
}

// CleanText collapses runs of whitespace, tabs and newlines in XML text
// content into single spaces.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
