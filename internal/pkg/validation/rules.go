package validation

import "regexp"

// Validation rule patterns
var (
	// IEMIS institutional codes are 9 digits
	IemisPattern = `^\d{9}$`

	// Symbol numbers are an uppercase letter prefix plus digits, or digits only
	SymbolPattern = `^[A-Z]?\d{4,12}$`

	// Bikram Sambat year labels, e.g. "2081"
	YearPattern = `^\d{4}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Iemis  *regexp.Regexp
	Symbol *regexp.Regexp
	Year   *regexp.Regexp
}{
	Iemis:  regexp.MustCompile(IemisPattern),
	Symbol: regexp.MustCompile(SymbolPattern),
	Year:   regexp.MustCompile(YearPattern),
}

// ValidIemisCode reports whether the value is a well-formed IEMIS code.
func ValidIemisCode(code string) bool {
	return CompiledPatterns.Iemis.MatchString(code)
}

// ValidSymbolNo reports whether the value is a well-formed symbol number.
func ValidSymbolNo(symbol string) bool {
	return CompiledPatterns.Symbol.MatchString(symbol)
}

// ValidAcademicYear reports whether the value is a well-formed year label.
func ValidAcademicYear(year string) bool {
	return CompiledPatterns.Year.MatchString(year)
}
