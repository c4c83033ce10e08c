// Package sanitizer provides small, stateless helpers for cleaning and
// normalising string input before it is validated.
//
// Helpers are plain functions that can be freely combined; the higher-order
// Apply and Compose helpers build reusable pipelines out of them:
//
//	clean := sanitizer.Compose(
//		sanitizer.Trim,
//		sanitizer.CollapseWhitespace,
//		sanitizer.ToLower,
//	)
//
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// The package is the pre-filter side of the validation stack: scalar rules
// in the rules package run these transforms on a value before checking it.
package sanitizer
