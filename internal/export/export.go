// Package export renders the catalog back into the hosted data fragment and
// hands it to the clipboard.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/conn-castle/pricebook/internal/catalog"
	"github.com/conn-castle/pricebook/internal/messages"
)

const (
	// FragmentOpen is the first line of the data fragment.
	FragmentOpen = `<div id="secure-data" style="display:none;">`
	// FragmentClose is the last line of the data fragment.
	FragmentClose = `</div>`

	indent = "    "
)

// Clipboard receives exported text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New(messages.ExportClipboardUnsupported)
	}
	return clipboard.WriteAll(text)
}

// ClipboardError reports a failed clipboard write. Text holds the fragment so
// it can still be copied by hand.
type ClipboardError struct {
	Text string
	Err  error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf(messages.ExportClipboardFailedFmt, e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// Result is a completed export.
type Result struct {
	Text         string
	Instructions string
}

// Exporter serializes catalogs and copies them to a clipboard.
type Exporter struct {
	clipboard Clipboard
}

// New returns an Exporter writing to cb. A nil cb uses the system clipboard.
func New(cb Clipboard) *Exporter {
	if cb == nil {
		cb = SystemClipboard{}
	}
	return &Exporter{clipboard: cb}
}

// Export serializes products and copies the fragment to the clipboard.
func (e *Exporter) Export(products []catalog.Product) (Result, error) {
	text, err := Serialize(products)
	if err != nil {
		return Result{}, err
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		return Result{}, &ClipboardError{Text: text, Err: err}
	}
	return Result{Text: text, Instructions: messages.ExportInstructions}, nil
}

// Serialize renders products as the data fragment: the wrapper line, the
// catalog as a JSON array indented by four spaces, and the closing tag.
// The output is a pure function of products.
func Serialize(products []catalog.Product) (string, error) {
	body, err := marshalCatalog(products)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(FragmentOpen)
	sb.WriteString("\n")
	sb.Write(body)
	sb.WriteString("\n")
	sb.WriteString(FragmentClose)
	return sb.String(), nil
}

// marshalCatalog encodes products with nil slices written as empty arrays.
// HTML-significant characters stay escaped (< and friends) so the JSON
// survives being read back through an HTML parser unchanged.
func marshalCatalog(products []catalog.Product) ([]byte, error) {
	normalized := make([]catalog.Product, len(products))
	for i, p := range products {
		normalized[i] = p
		if normalized[i].Variants == nil {
			normalized[i].Variants = []catalog.Variant{}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	if err := enc.Encode(normalized); err != nil {
		return nil, fmt.Errorf(messages.ExportMarshalFmt, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
