// Package history records completed rppedit operations (copies and saves)
// in a small SQLite journal so users can audit what touched their project
// files and when.
package history
