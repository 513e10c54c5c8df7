package export

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/pricebook/internal/catalog"
)

const (
	previewFromName = "database.html (loaded)"
	previewToName   = "database.html (edited)"
)

// Preview returns a unified diff between the fragments for before and after.
// It is empty when the two catalogs serialize identically.
func Preview(before []catalog.Product, after []catalog.Product) (string, error) {
	from, err := Serialize(before)
	if err != nil {
		return "", err
	}
	to, err := Serialize(after)
	if err != nil {
		return "", err
	}
	if from == to {
		return "", nil
	}
	return strings.TrimSpace(udiff.Unified(previewFromName, previewToName, from+"\n", to+"\n")), nil
}
