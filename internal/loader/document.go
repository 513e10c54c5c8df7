package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/conn-castle/pricebook/internal/catalog"
	"github.com/conn-castle/pricebook/internal/messages"
)

const (
	// DocumentName is the fixed name of the hosted data document.
	DocumentName = "database.html"
	// DataElementID is the id of the element whose text holds the catalog JSON.
	DataElementID = "secure-data"
)

var (
	// ErrElementNotFound is returned when the document has no data element.
	ErrElementNotFound = errors.New(messages.LoaderElementNotFound)
	// ErrNotArray is returned when the data element does not hold a JSON array.
	ErrNotArray = errors.New(messages.LoaderNotArray)
)

// Parse extracts and decodes the catalog embedded in an HTML document.
func Parse(doc []byte) ([]catalog.Product, error) {
	text, err := Extract(doc)
	if err != nil {
		return nil, err
	}
	return Decode(text)
}

// Extract returns the text content of the data element in doc.
// Text is gathered from every descendant, the way a DOM textContent read does.
func Extract(doc []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf(messages.LoaderParseDocumentFmt, err)
	}
	node := findByID(root, DataElementID)
	if node == nil {
		return "", ErrElementNotFound
	}
	var sb strings.Builder
	textContent(node, &sb)
	return sb.String(), nil
}

// Decode parses text as a JSON array of products.
func Decode(text string) ([]catalog.Product, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, ErrNotArray
	}
	var products []catalog.Product
	if err := json.Unmarshal([]byte(trimmed), &products); err != nil {
		return nil, fmt.Errorf(messages.LoaderDecodeFmt, err)
	}
	return products, nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(c, sb)
	}
}
