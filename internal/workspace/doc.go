// Package workspace resolves the file layout of a repak mod workspace (uber
// template, pak manifest, assets tree) and provides the doctor health
// checks run against it.
package workspace
