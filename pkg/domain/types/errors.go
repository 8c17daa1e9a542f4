package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	ErrScanNotFound  = goerr.New("scan not found")
	ErrIssueNotFound = goerr.New("issue not found")

	// ErrTerminalScan is returned when cancelling a scan that already
	// reached COMPLETED, FAILED or CANCELLED.
	ErrTerminalScan = goerr.New("scan is already terminal")

	// ErrTerminalIssue is returned when applying a fix to or dismissing an
	// issue that is already FIXED or DISMISSED.
	ErrTerminalIssue = goerr.New("issue is already terminal")
)
