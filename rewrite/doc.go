// Package rewrite applies marker resolution to files and directory trees.
//
// A file is written only when its resolved content differs from what is on
// disk, so a second run over the same tree performs no writes. Problems with
// one file are recorded on its FileResult and never stop a directory run.
package rewrite
