package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIemisCode(t *testing.T) {
	assert.True(t, ValidIemisCode("270040011"))
	assert.False(t, ValidIemisCode("27004001"))   // too short
	assert.False(t, ValidIemisCode("2700400111")) // too long
	assert.False(t, ValidIemisCode("27004001a"))
	assert.False(t, ValidIemisCode(""))
}

func TestValidSymbolNo(t *testing.T) {
	assert.True(t, ValidSymbolNo("S12345678"))
	assert.True(t, ValidSymbolNo("12345678"))
	assert.True(t, ValidSymbolNo("A1234"))
	assert.False(t, ValidSymbolNo("s12345678")) // lowercase prefix
	assert.False(t, ValidSymbolNo("SS1234"))
	assert.False(t, ValidSymbolNo("S123"))
	assert.False(t, ValidSymbolNo(""))
}

func TestValidAcademicYear(t *testing.T) {
	assert.True(t, ValidAcademicYear("2081"))
	assert.True(t, ValidAcademicYear("2082"))
	assert.False(t, ValidAcademicYear("81"))
	assert.False(t, ValidAcademicYear("20811"))
	assert.False(t, ValidAcademicYear("208a"))
}
