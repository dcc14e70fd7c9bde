// Package types defines the todo and label entities, the repository and
// store contracts, configuration, and the errors shared by all storage
// backends.
package types
