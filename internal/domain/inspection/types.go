package inspection

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidService  = errors.New("invalid service line item")
	ErrInvalidCategory = errors.New("invalid service category")
)

// Category is a pricing-acceptance tier.
type Category string

const (
	CategoryRequired     Category = "required"
	CategoryRecommended  Category = "recommended"
	CategoryPreventative Category = "preventative"
)

// Categories in display order.
var Categories = []Category{CategoryRequired, CategoryRecommended, CategoryPreventative}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryRequired, CategoryRecommended, CategoryPreventative:
		return c, nil
	default:
		return "", ErrInvalidCategory
	}
}

// Service is one priced line item on a rug estimate.
type Service struct {
	ID             string
	Name           string
	Quantity       float64
	UnitPriceCents int64
	Priority       string
}

// NewService converts a dollar unit price to cents and validates the item.
func NewService(id, name string, quantity, unitPrice float64, priority string) (Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Service{}, errors.Join(ErrInvalidService, errors.New("name is required"))
	}
	if quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return Service{}, errors.Join(ErrInvalidService, errors.New("quantity must be non-negative"))
	}
	if unitPrice < 0 || math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return Service{}, errors.Join(ErrInvalidService, errors.New("unit price must be non-negative"))
	}
	return Service{
		ID:             id,
		Name:           name,
		Quantity:       quantity,
		UnitPriceCents: int64(math.Round(unitPrice * 100)),
		Priority:       priority,
	}, nil
}

// LineTotalCents is quantity × unit price, rounded to whole cents.
func (s Service) LineTotalCents() int64 {
	return int64(math.Round(s.Quantity * float64(s.UnitPriceCents)))
}

type Rug struct {
	ID             string
	RugNumber      string
	RugType        string
	Length         *float64
	Width          *float64
	PhotoURLs      []string
	AnalysisReport *string
	Services       []Service
}
