// Package catalog is the product type registry: the closed mapping from a
// productType discriminator string to the structural rules its attrs
// payload must satisfy, and from a category to the product types allowed
// inside it. The tables are package-level constants checked at build time;
// an unknown type fails Resolve with a distinct error from a type that is
// merely not allowed in the requested category.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Category is a top-level catalog grouping.
type Category string

const (
	CategoryMobile      Category = "Mobile"
	CategoryTablet      Category = "Tablet"
	CategoryLaptop      Category = "Laptop"
	CategoryAccessories Category = "Accessories"
	CategoryWearables   Category = "Wearables"
	CategoryAudio       Category = "Audio"
)

// ProductType discriminates the structural subtype a product record
// follows.
type ProductType string

const (
	TypeMobileTablet    ProductType = "MobileTablet"
	TypeLaptop          ProductType = "Laptop"
	TypeAudio           ProductType = "Audio"
	TypeCable           ProductType = "Cable"
	TypeCharger         ProductType = "Charger"
	TypePowerBank       ProductType = "PowerBank"
	TypeCaseCover       ProductType = "CaseCover"
	TypeScreenProtector ProductType = "ScreenProtector"
	TypeWearable        ProductType = "Wearable"
	TypeGaming          ProductType = "Gaming"
)

// gamingLabels are accepted as productType values on the wire but all
// route to the Gaming ruleset. The stored discriminator keeps the label
// the client supplied.
var gamingLabels = map[ProductType]bool{
	"Games":       true,
	"Accounts":    true,
	"PlayStation": true,
	"Controller":  true,
	"Skin":        true,
}

// FieldKind is the expected JSON shape of an attrs field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
)

// FieldRule is one structural constraint on an attrs field.
type FieldRule struct {
	Name     string
	Kind     FieldKind
	Required bool
	Enum     []string // non-empty restricts string values
	Min, Max float64  // numeric range, applied when Min < Max
}

// specs holds the per-type attrs rules. Each subtype is a strict superset
// of the base product shape; only the extra fields are listed here.
var specs = map[ProductType][]FieldRule{
	TypeMobileTablet: {
		{Name: "processor", Kind: KindString, Required: true},
		{Name: "ram", Kind: KindString, Required: true},
		{Name: "storage", Kind: KindString, Required: true},
		{Name: "screenSize", Kind: KindNumber, Required: true, Min: 3, Max: 20},
		{Name: "camera", Kind: KindString},
		{Name: "battery", Kind: KindString},
		{Name: "os", Kind: KindString, Enum: []string{"Android", "iOS", "iPadOS", "Other"}},
		{Name: "simCount", Kind: KindNumber, Min: 1, Max: 3},
	},
	TypeLaptop: {
		{Name: "processor", Kind: KindString, Required: true},
		{Name: "ram", Kind: KindString, Required: true},
		{Name: "storage", Kind: KindString, Required: true},
		{Name: "graphicsCard", Kind: KindString},
		{Name: "screenSize", Kind: KindNumber, Required: true, Min: 10, Max: 21},
		{Name: "os", Kind: KindString, Enum: []string{"Windows", "macOS", "Linux", "ChromeOS", "Other"}},
	},
	TypeAudio: {
		{Name: "audioType", Kind: KindString, Required: true, Enum: []string{"Headphones", "Earbuds", "Speaker", "Microphone"}},
		{Name: "connectivity", Kind: KindString, Required: true, Enum: []string{"Wired", "Wireless", "Both"}},
		{Name: "batteryLife", Kind: KindString},
	},
	TypeCable: {
		{Name: "from", Kind: KindString, Required: true},
		{Name: "to", Kind: KindString, Required: true},
		{Name: "cableLength", Kind: KindNumber, Required: true, Min: 0.1, Max: 50},
		{Name: "cableType", Kind: KindString, Required: true},
	},
	TypeCharger: {
		{Name: "wattage", Kind: KindNumber, Required: true, Min: 1, Max: 500},
		{Name: "ports", Kind: KindNumber, Min: 1, Max: 12},
		{Name: "chargerType", Kind: KindString, Required: true, Enum: []string{"Wall", "Car", "Wireless", "Desktop"}},
	},
	TypePowerBank: {
		{Name: "capacity", Kind: KindNumber, Required: true, Min: 500, Max: 100000},
		{Name: "ports", Kind: KindNumber, Min: 1, Max: 12},
		{Name: "outputWattage", Kind: KindNumber, Min: 1, Max: 500},
	},
	TypeCaseCover: {
		{Name: "compatibleWith", Kind: KindString, Required: true},
		{Name: "material", Kind: KindString},
		{Name: "color", Kind: KindString},
	},
	TypeScreenProtector: {
		{Name: "compatibleWith", Kind: KindString, Required: true},
		{Name: "material", Kind: KindString, Enum: []string{"TemperedGlass", "Film", "Hydrogel"}},
		{Name: "hardness", Kind: KindString},
	},
	TypeWearable: {
		{Name: "wearableType", Kind: KindString, Required: true, Enum: []string{"Smartwatch", "Band", "Glasses", "Ring"}},
		{Name: "screenSize", Kind: KindNumber, Min: 0.5, Max: 5},
		{Name: "batteryLife", Kind: KindString},
		{Name: "connectivity", Kind: KindString},
	},
	TypeGaming: {
		{Name: "platform", Kind: KindString, Required: true},
		{Name: "gamingKind", Kind: KindString},
		{Name: "condition", Kind: KindString, Enum: []string{"New", "Used", "Refurbished"}},
	},
}

// categoryTypes fixes which product types may appear in each category.
var categoryTypes = map[Category][]ProductType{
	CategoryMobile:      {TypeMobileTablet},
	CategoryTablet:      {TypeMobileTablet},
	CategoryLaptop:      {TypeLaptop},
	CategoryAudio:       {TypeAudio},
	CategoryWearables:   {TypeWearable},
	CategoryAccessories: {TypeCable, TypeCharger, TypePowerBank, TypeCaseCover, TypeScreenProtector, TypeGaming},
}

// ParseCategory validates a category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryTypes[c]; !ok {
		return "", fmt.Errorf("%q is not a valid category", s)
	}
	return c, nil
}

// Resolve maps a productType string (including the Gaming sub-labels) to
// the registry type that carries its validation rules. The returned
// stored value is the discriminator to persist: sub-labels keep their own
// name so reads recover the caller's shape.
func Resolve(s string) (stored string, t ProductType, err error) {
	pt := ProductType(s)
	if _, ok := specs[pt]; ok {
		return s, pt, nil
	}
	if gamingLabels[pt] {
		return s, TypeGaming, nil
	}
	return "", "", fmt.Errorf("%q is not a valid product type", s)
}

// AllowedIn reports whether product type t may be listed under category c.
// Gaming sub-labels inherit the Gaming placement.
func AllowedIn(c Category, t ProductType) bool {
	for _, allowed := range categoryTypes[c] {
		if allowed == t {
			return true
		}
	}
	return false
}

// CheckCategory verifies the category/productType pairing for a create or
// update. Both errors are client errors with distinct messages: an
// unknown type is reported by Resolve, a known type in the wrong category
// is reported here naming both values.
func CheckCategory(category, productType string) (Category, string, ProductType, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return "", "", "", err
	}
	stored, t, err := Resolve(productType)
	if err != nil {
		return "", "", "", err
	}
	if !AllowedIn(c, t) {
		return "", "", "", fmt.Errorf("product type %q is not valid for category %q", productType, category)
	}
	return c, stored, t, nil
}

// ValidateAttrs checks an attrs payload against the ruleset for t. All
// field errors are collected and joined into a single message so the
// client sees every problem at once. Unknown attrs keys are rejected to
// keep the stored shape closed.
func ValidateAttrs(t ProductType, attrs map[string]any) error {
	rules, ok := specs[t]
	if !ok {
		return fmt.Errorf("%q is not a valid product type", string(t))
	}

	known := make(map[string]FieldRule, len(rules))
	for _, r := range rules {
		known[r.Name] = r
	}

	var errs []string
	for _, r := range rules {
		v, present := attrs[r.Name]
		if !present {
			if r.Required {
				errs = append(errs, fmt.Sprintf("%s is required", r.Name))
			}
			continue
		}
		if msg := checkField(r, v); msg != "" {
			errs = append(errs, msg)
		}
	}

	extra := make([]string, 0)
	for k := range attrs {
		if _, ok := known[k]; !ok {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		errs = append(errs, fmt.Sprintf("unknown fields: %s", strings.Join(extra, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func checkField(r FieldRule, v any) string {
	switch r.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return fmt.Sprintf("%s must be a string", r.Name)
		}
		if strings.TrimSpace(s) == "" && r.Required {
			return fmt.Sprintf("%s is required", r.Name)
		}
		if len(r.Enum) > 0 {
			for _, e := range r.Enum {
				if s == e {
					return ""
				}
			}
			return fmt.Sprintf("%s must be one of %s", r.Name, strings.Join(r.Enum, "|"))
		}
	case KindNumber:
		n, ok := toNumber(v)
		if !ok {
			return fmt.Sprintf("%s must be a number", r.Name)
		}
		if r.Min < r.Max && (n < r.Min || n > r.Max) {
			return fmt.Sprintf("%s must be between %g and %g", r.Name, r.Min, r.Max)
		}
	}
	return ""
}

// toNumber accepts the numeric shapes a decoded JSON payload can carry.
func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}
