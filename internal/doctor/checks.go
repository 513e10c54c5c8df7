package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/conn-castle/pricebook/internal/catalog"
	"github.com/conn-castle/pricebook/internal/config"
	"github.com/conn-castle/pricebook/internal/messages"
	"github.com/conn-castle/pricebook/internal/session"
	"github.com/conn-castle/pricebook/internal/theme"
)

var statFunc = os.Stat

// CheckConfig loads the config file at path. A missing file is not an error;
// the defaults are returned with an OK result.
func CheckConfig(path string) ([]Result, *config.Config) {
	cfg, err := config.LoadConfigOrDefault(path)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	msg := fmt.Sprintf(messages.DoctorConfigLoadedFmt, path)
	if _, statErr := statFunc(path); errors.Is(statErr, fs.ErrNotExist) {
		msg = fmt.Sprintf(messages.DoctorConfigDefaultFmt, path)
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   msg,
	}}, cfg
}

// CheckDocument loads the catalog once. location names the source in messages.
// The products are nil when loading fails.
func CheckDocument(ctx context.Context, loader session.CatalogLoader, location string) ([]Result, []catalog.Product) {
	products, err := loader.Load(ctx)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameDocument,
			Message:        fmt.Sprintf(messages.DoctorDocumentFailedFmt, location, err),
			Recommendation: messages.DoctorDocumentRecommend,
		}}, nil
	}
	variants := 0
	for _, p := range products {
		variants += len(p.Variants)
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameDocument,
		Message:   fmt.Sprintf(messages.DoctorDocumentLoadedFmt, len(products), variants, location),
	}}, products
}

// CheckCatalog reports data problems the app tolerates but a shop owner
// probably did not intend: duplicate ids, products without variants, negative
// prices and min prices above the sale price.
func CheckCatalog(products []catalog.Product) []Result {
	var results []Result
	warn := func(msg string, recommendation string) {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameCatalog,
			Message:        msg,
			Recommendation: recommendation,
		})
	}

	counts := make(map[int]int, len(products))
	var order []int
	for _, p := range products {
		if counts[p.ID] == 0 {
			order = append(order, p.ID)
		}
		counts[p.ID]++
	}
	for _, id := range order {
		if counts[id] > 1 {
			warn(fmt.Sprintf(messages.DoctorCatalogDuplicateIDFmt, id, counts[id]), messages.DoctorCatalogDuplicateRecommend)
		}
	}

	for _, p := range products {
		if len(p.Variants) == 0 {
			warn(fmt.Sprintf(messages.DoctorCatalogNoVariantsFmt, p.ID, p.Name), "")
			continue
		}
		for _, v := range p.Variants {
			if v.SalePrice < 0 || (v.MinPrice != nil && *v.MinPrice < 0) {
				warn(fmt.Sprintf(messages.DoctorCatalogNegativePriceFmt, p.ID, p.Name, v.Weight), messages.DoctorCatalogPriceRecommend)
				continue
			}
			if v.MinPrice != nil && *v.MinPrice > v.SalePrice {
				warn(fmt.Sprintf(messages.DoctorCatalogMinAboveSaleFmt, p.ID, p.Name, v.Weight), messages.DoctorCatalogPriceRecommend)
			}
		}
	}

	if len(results) == 0 {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameCatalog,
			Message:   messages.DoctorCatalogOK,
		})
	}
	return results
}

// CheckPreferences reads the stored theme preference.
func CheckPreferences(file *theme.PreferenceFile) []Result {
	stored, ok, err := file.Load()
	switch {
	case err != nil:
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNamePreferences,
			Message:        fmt.Sprintf(messages.DoctorPreferencesFailedFmt, err),
			Recommendation: fmt.Sprintf(messages.DoctorPreferencesRecommendFmt, file.Path()),
		}}
	case ok:
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNamePreferences,
			Message:   fmt.Sprintf(messages.DoctorPreferencesStoredFmt, stored),
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePreferences,
		Message:   fmt.Sprintf(messages.DoctorPreferencesSystemFmt, theme.Resolve("", false, theme.SystemPrefersDark())),
	}}
}
