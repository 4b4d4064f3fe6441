// Package version holds the version of the wordstore binary.
package version

// Version is the semantic version of this build.
const Version = "0.1.0"
