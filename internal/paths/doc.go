// Package paths indexes the executables reachable through $PATH and
// suggests completions for a partially typed program name.
package paths
