package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Data errors, fatal with no partial-success contract
	ErrUnreadableFile  = fmt.Errorf("unable to read input file")
	ErrInvalidJSON     = fmt.Errorf("input is not valid JSON")
	ErrMalformedRecord = fmt.Errorf("malformed listen record")
)
