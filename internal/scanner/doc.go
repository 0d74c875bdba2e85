// Package scanner lists one media directory and classifies its entries into
// video and subtitle filenames.
//
// Classification is by filename suffix against fixed, case-sensitive
// allow-lists. Videos must also exceed a size floor so samples and trailers
// are not paired. Any listing or metadata error aborts the scan.
package scanner
