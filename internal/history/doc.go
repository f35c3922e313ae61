// Package history records executed command lines and recalls them.
//
// Recall is a position counted back from the newest entry: 0 means nothing
// is recalled, 1 is the newest line and Len() the oldest. Older and Newer
// saturate at those bounds. Pushing a line resets the position.
//
// The list persists as a YAML document:
//
//	version: 1
//	entries:
//	  - ls -la
//	  - git status
package history
