// Package testutil holds fixtures and helpers shared by the package tests:
// small trip files for each city, temporary data directories, and scripted
// terminal input.
package testutil
