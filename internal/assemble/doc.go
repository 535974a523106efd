// Package assemble concatenates module sources into a single bundle.
//
// The first module is copied verbatim. Every later module has its leading
// header block (a fixed number of lines, normally a license banner) removed
// so the bundle carries the banner exactly once.
package assemble
