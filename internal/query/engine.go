// Package query produces the exact page of products to display for given
// filter, sort and pagination inputs. It is a pure function of the
// offer-resolved product collection and the query parameters.
package query

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/arkya-store/storefront-service/internal/models"
)

// CategoryAll matches every product regardless of category.
const CategoryAll = "all"

// DefaultPageSize matches the storefront grid (20 products per page).
const DefaultPageSize = 20

const (
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortNameAsc     = "name-asc"
	SortNameDesc    = "name-desc"
	SortNewestAdded = "newest-added" // default: ids are monotonic by creation time
	SortNewest      = "newest"       // isNew first, stable otherwise
	SortOffers      = "offers"       // isOnOffer first, stable otherwise
)

// ErrPageOutOfRange is returned for a page outside [1, totalPages]. The
// engine does not clamp; the caller's navigation control is responsible for
// disabling out-of-range transitions.
var ErrPageOutOfRange = errors.New("query: page out of range")

type Params struct {
	Search        string
	CategoryID    string
	SubcategoryID string
	Sort          string
	Page          int // 1-based
	PageSize      int
}

type Result struct {
	Items      []models.Product `json:"items"`
	TotalCount int              `json:"total_count"`
	TotalPages int              `json:"total_pages"`
}

// Run filters, sorts and paginates the product collection. Category and
// subcategory ids are resolved to display names through the taxonomy; an
// unknown id resolves to an empty name and matches nothing.
func Run(products []models.Product, taxonomy []models.Category, p Params) (Result, error) {
	filtered := filter(products, taxonomy, p)
	sortProducts(filtered, p.Sort)

	// out-of-stock products always sink to the end, stable, whatever the
	// sort key
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].InStock && !filtered[j].InStock
	})

	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := p.Page
	if page == 0 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	if total == 0 {
		if page != 1 {
			return Result{}, ErrPageOutOfRange
		}
		return Result{Items: []models.Product{}, TotalCount: 0, TotalPages: 0}, nil
	}
	if page < 1 || page > totalPages {
		return Result{}, ErrPageOutOfRange
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

func filter(products []models.Product, taxonomy []models.Category, p Params) []models.Product {
	search := strings.ToLower(strings.TrimSpace(p.Search))

	categoryName := ""
	subcategoryName := ""
	if p.CategoryID != "" && p.CategoryID != CategoryAll {
		categoryName = displayName(taxonomy, p.CategoryID)
		if p.SubcategoryID != "" {
			subcategoryName = subcategoryDisplayName(taxonomy, p.CategoryID, p.SubcategoryID)
		}
	}

	out := make([]models.Product, 0, len(products))
	for _, prod := range products {
		if search != "" && !matchesSearch(prod, search) {
			continue
		}
		if p.CategoryID != "" && p.CategoryID != CategoryAll && !prod.InCategory(categoryName) {
			continue
		}
		if p.SubcategoryID != "" {
			// a selected subcategory excludes products without one
			if prod.Subcategory == "" || prod.Subcategory != subcategoryName {
				continue
			}
		}
		out = append(out, prod)
	}
	return out
}

func matchesSearch(p models.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func sortProducts(items []models.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortNameAsc:
		c := collate.New(language.Spanish)
		sort.SliceStable(items, func(i, j int) bool { return c.CompareString(items[i].Name, items[j].Name) < 0 })
	case SortNameDesc:
		c := collate.New(language.Spanish)
		sort.SliceStable(items, func(i, j int) bool { return c.CompareString(items[i].Name, items[j].Name) > 0 })
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].IsNew && !items[j].IsNew })
	case SortOffers:
		sort.SliceStable(items, func(i, j int) bool { return items[i].IsOnOffer && !items[j].IsOnOffer })
	default: // SortNewestAdded
		sort.SliceStable(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	}
}

func displayName(taxonomy []models.Category, id string) string {
	for _, c := range taxonomy {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func subcategoryDisplayName(taxonomy []models.Category, categoryID, subcategoryID string) string {
	for _, c := range taxonomy {
		if c.ID != categoryID {
			continue
		}
		for _, s := range c.Subcategories {
			if s.ID == subcategoryID {
				return s.Name
			}
		}
	}
	return ""
}
