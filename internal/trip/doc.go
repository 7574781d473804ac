// Package trip defines the bikeshare trip record, the in-memory dataset
// produced by the loader, and the capability set describing which optional
// columns that dataset exposes.
//
// A Dataset is read-only once built. Accessors hand out copies so reporters
// and the row browser cannot disturb the records another pass will read.
package trip
