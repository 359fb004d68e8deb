// Package dupfind locates duplicate files in a directory tree.
//
// It walks the tree using fastwalk, buckets regular files by base
// filename, hashes the members of every bucket with two or more paths
// using SHA-256, and reports each hash sub-group with two or more
// members as a duplicate set. Two files count as duplicates only when
// both the filename and the content digest match.
//
// Symbolic links are not followed; a link is never paired with its
// target. Permission errors during traversal and unreadable files are
// skipped and counted, never fatal.
package dupfind
