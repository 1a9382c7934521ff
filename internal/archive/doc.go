// Package archive packs and expands the fixture archive for fixturectl.
//
// The archive is a plain gzip-compressed tar file. Entry names are stored
// relative to a base directory, so packing and expanding with the same base
// round-trips the tree exactly:
//
//	archive.Pack("data.tar.gz", ".", layout.FixtureRoots())
//	archive.Unpack("data.tar.gz", ".")
//
// Pack checks that every input directory exists before writing anything, so
// a missing input never produces a partial archive. Unpack always overwrites
// files at colliding paths, and joins entry names with
// filepath-securejoin so a hostile archive cannot escape the base directory.
package archive
