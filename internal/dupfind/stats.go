package dupfind

import (
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// DuplicateSet represents a group of paths sharing one filename and one
// content digest.
type DuplicateSet struct {
	// Name is the base filename shared by every path in the set.
	Name string `json:"name"`
	// Hash is the lowercase hex SHA-256 digest shared by every path.
	Hash string `json:"hash"`
	// Paths are the duplicate paths, sorted lexicographically.
	Paths []string `json:"paths"`
	// Size is the cumulative on-disk size of all paths in the set.
	Size int64 `json:"size"`
}

// Report holds the outcome of a duplicate scan.
type Report struct {
	// Sets contains every duplicate set found, sorted by name then hash.
	Sets []DuplicateSet `json:"duplicate_sets"`
	// DuplicateCount is the number of paths across all sets.
	DuplicateCount int64 `json:"duplicate_count"`
	// TotalBytes is the cumulative size of all paths across all sets.
	TotalBytes int64 `json:"total_bytes"`
	// ReclaimableBytes estimates the space freed by removing redundant copies.
	ReclaimableBytes int64 `json:"reclaimable_bytes"`
	// FilesScanned is the total number of regular files indexed by the walk.
	FilesScanned int64 `json:"files_scanned"`
	// ErrorCount is the number of files skipped due to hashing errors.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a duplicate scan and CLI behavior.
type Options struct {
	// Path is the root directory to scan.
	Path string
	// MinSize is the minimum file size in bytes (0 = no filter).
	MinSize int64
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
	// Integration indicates whether to output integration script.
	Integration bool
}

// reclaimableBytes estimates the space recoverable from duplicates as
// totalBytes minus one average-sized copy. Integer division; this is a
// deliberate approximation, one reclaimable copy per set on average,
// not a per-set exact sum.
func reclaimableBytes(totalBytes, count int64) int64 {
	if count == 0 {
		return 0
	}

	return totalBytes - totalBytes/count
}

// collector aggregates walk results from concurrent fastwalk callbacks
// using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	names      map[string][]string
	sizes      map[string]int64
	fileCount  int64
	totalBytes int64
	errorCount int64
}

// newCollector creates an empty collector.
func newCollector() *collector {
	return &collector{
		names: make(map[string][]string),
		sizes: make(map[string]int64),
	}
}

// addError increments the error counter. This operation is protected by
// a mutex since fastwalk calls the callback from multiple goroutines
// concurrently.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// add indexes a regular file under its base filename. This operation is
// protected by a mutex since fastwalk calls the callback from multiple
// goroutines concurrently.
func (c *collector) add(path string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := filepath.Base(path)
	c.names[name] = append(c.names[name], path)
	c.sizes[path] = size
	c.fileCount++
	c.totalBytes += size
}

// finalize hashes every name bucket with two or more members and
// produces the final Report. Files whose digest cannot be computed are
// counted as errors and left out of hash sub-grouping entirely, so two
// unreadable files never register as duplicates of each other.
//
// Sets are sorted by name then hash, and paths within a set
// lexicographically, so the report is deterministic regardless of walk
// order. Paths are converted to slash format for cross-platform
// consistency.
func (c *collector) finalize(log logger) *Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	report := &Report{
		Sets: make([]DuplicateSet, 0),
	}

	for name, paths := range c.names {
		if len(paths) < 2 {
			continue
		}

		// Sub-group the bucket by content digest
		hashes := make(map[string][]string)

		for _, path := range paths {
			digest, err := HashFile(path)
			if err != nil {
				log.printf("[debug]: error hashing %s: %v\n", path, err)
				c.errorCount++

				continue
			}

			hashes[digest] = append(hashes[digest], path)
		}

		for digest, group := range hashes {
			if len(group) < 2 {
				continue
			}

			sort.Strings(group)

			set := DuplicateSet{
				Name:  name,
				Hash:  digest,
				Paths: make([]string, 0, len(group)),
			}

			for _, path := range group {
				set.Size += c.sizes[path]
				set.Paths = append(set.Paths, filepath.ToSlash(path))
			}

			report.Sets = append(report.Sets, set)
			report.DuplicateCount += int64(len(group))
			report.TotalBytes += set.Size
		}
	}

	sort.Slice(report.Sets, func(i, j int) bool {
		if report.Sets[i].Name != report.Sets[j].Name {
			return report.Sets[i].Name < report.Sets[j].Name
		}

		return report.Sets[i].Hash < report.Sets[j].Hash
	})

	report.ReclaimableBytes = reclaimableBytes(report.TotalBytes, report.DuplicateCount)
	report.FilesScanned = c.fileCount
	report.ErrorCount = c.errorCount

	return report
}
