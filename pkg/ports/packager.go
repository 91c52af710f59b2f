package ports

// Packager abstracts delivery of encoded export results.
// Implementations bundle one or more encoded blobs under suggested
// filenames, e.g. as individual files in a directory or as a ZIP archive.
type Packager interface {
	// Add stores an encoded result under the suggested filename.
	Add(filename string, data []byte) error

	// Close finalizes the bundle. No Add calls are allowed afterwards.
	Close() error
}
