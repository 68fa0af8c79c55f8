// Package utils provides internal utility functions shared by the adapters.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Time formatting and conversion utilities
package utils
