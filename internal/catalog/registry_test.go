package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownTypes(t *testing.T) {
	stored, typ, err := Resolve("Laptop")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", stored)
	assert.Equal(t, TypeLaptop, typ)
}

func TestResolveGamingSubLabels(t *testing.T) {
	for _, label := range []string{"Games", "Accounts", "PlayStation", "Controller", "Skin"} {
		stored, typ, err := Resolve(label)
		require.NoError(t, err, label)
		assert.Equal(t, label, stored, "sub-label keeps its own discriminator")
		assert.Equal(t, TypeGaming, typ, "sub-label validates as Gaming")
	}
}

func TestResolveUnknownType(t *testing.T) {
	_, _, err := Resolve("Toaster")
	require.Error(t, err)
	assert.EqualError(t, err, `"Toaster" is not a valid product type`)
}

func TestCheckCategoryRejectsWrongPairing(t *testing.T) {
	// Cable is a real type, just not a laptop. The message must name both
	// values, distinct from the unknown-type error.
	_, _, _, err := CheckCategory("Laptop", "Cable")
	require.Error(t, err)
	assert.EqualError(t, err, `product type "Cable" is not valid for category "Laptop"`)

	// same type is fine where it belongs
	c, stored, typ, err := CheckCategory("Accessories", "Cable")
	require.NoError(t, err)
	assert.Equal(t, CategoryAccessories, c)
	assert.Equal(t, "Cable", stored)
	assert.Equal(t, TypeCable, typ)
}

func TestCheckCategoryUnknownCategory(t *testing.T) {
	_, _, _, err := CheckCategory("Appliances", "Cable")
	require.Error(t, err)
	assert.EqualError(t, err, `"Appliances" is not a valid category`)
}

func TestCheckCategoryMobileAndTabletShareType(t *testing.T) {
	for _, cat := range []string{"Mobile", "Tablet"} {
		_, _, typ, err := CheckCategory(cat, "MobileTablet")
		require.NoError(t, err, cat)
		assert.Equal(t, TypeMobileTablet, typ)
	}
}

func TestCheckCategoryGamingOnlyUnderAccessories(t *testing.T) {
	_, _, _, err := CheckCategory("Accessories", "PlayStation")
	assert.NoError(t, err)

	_, _, _, err = CheckCategory("Audio", "PlayStation")
	require.Error(t, err)
	assert.EqualError(t, err, `product type "PlayStation" is not valid for category "Audio"`)
}

func TestValidateAttrsLaptop(t *testing.T) {
	attrs := map[string]any{
		"processor":  "Intel Core i7-13700H",
		"ram":        "16GB",
		"storage":    "1TB SSD",
		"screenSize": 15.6,
		"os":         "Windows",
	}
	assert.NoError(t, ValidateAttrs(TypeLaptop, attrs))
}

func TestValidateAttrsCollectsAllProblems(t *testing.T) {
	attrs := map[string]any{
		"ram":        "8GB",
		"screenSize": 40.0,
		"color":      "red",
	}
	err := ValidateAttrs(TypeLaptop, attrs)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "processor is required")
	assert.Contains(t, msg, "storage is required")
	assert.Contains(t, msg, "screenSize must be between 10 and 21")
	assert.Contains(t, msg, "unknown fields: color")
}

func TestValidateAttrsEnum(t *testing.T) {
	attrs := map[string]any{
		"audioType":    "Turntable",
		"connectivity": "Wired",
	}
	err := ValidateAttrs(TypeAudio, attrs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audioType must be one of Headphones|Earbuds|Speaker|Microphone")
}

func TestValidateAttrsWrongKinds(t *testing.T) {
	attrs := map[string]any{
		"from":        1,
		"to":          "USB-C",
		"cableLength": "two meters",
		"cableType":   "braided",
	}
	err := ValidateAttrs(TypeCable, attrs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from must be a string")
	assert.Contains(t, err.Error(), "cableLength must be a number")
}

func TestValidateAttrsOptionalFieldsMayBeAbsent(t *testing.T) {
	attrs := map[string]any{
		"compatibleWith": "iPhone 15 Pro",
	}
	assert.NoError(t, ValidateAttrs(TypeCaseCover, attrs))
}

func TestValidateAttrsIntegerNumbersAccepted(t *testing.T) {
	// decoded JSON arrives as float64 but callers may hand plain ints
	attrs := map[string]any{
		"wattage":     65,
		"chargerType": "Wall",
	}
	assert.NoError(t, ValidateAttrs(TypeCharger, attrs))
}

func TestValidateAttrsUnknownType(t *testing.T) {
	err := ValidateAttrs(ProductType("Games"), nil)
	require.Error(t, err, "sub-labels must be resolved before validation")
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Wearables")
	require.NoError(t, err)
	assert.Equal(t, CategoryWearables, c)

	_, err = ParseCategory("wearables")
	assert.Error(t, err, "category matching is case sensitive")
}
