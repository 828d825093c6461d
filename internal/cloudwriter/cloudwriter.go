package cloudwriter

// Writer buffers report bytes and uploads them on Close.
type Writer interface {
	Write(data []byte) (int, error)
	Close() error
}

// Factory opens writers for report objects in a storage bucket.
type Factory interface {
	NewWriter(bucket, objectPath string) (Writer, error)
}
