package catalog

import "fmt"

// BankError reports a quiz bank that could not be loaded.
type BankError struct {
	File string
	Err  error
}

func (e *BankError) Error() string {
	return fmt.Sprintf("quiz bank %s: %v", e.File, e.Err)
}

func (e *BankError) Unwrap() error { return e.Err }
