// Package foldersize computes the total size of the regular files beneath a
// set of root directories.
//
// It runs against an abstract filesystem exposing only directory listing and
// path stat, bounds the number of concurrently outstanding stat operations,
// and cancels cooperatively through a context. Failures of individual
// listings or stats degrade to "contributes nothing" and never abort a scan.
package foldersize
