package pipeline

// The export error taxonomy. All stages run inside one guarded region in
// the orchestrator; the first failure aborts the remaining stages and is
// surfaced as exactly one of these.

// ConfigurationError reports invalid or degenerate input geometry, such
// as a preview frame or source image with a non-positive dimension.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid export configuration: " + e.Reason
}

// AssetLoadError reports that the source image could not be fetched or
// decoded. The export is aborted; there is no retry.
type AssetLoadError struct {
	Err error
}

func (e *AssetLoadError) Error() string {
	return "load source image: " + e.Err.Error()
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// EncodeError reports that the finished raster could not be serialized.
// No partial file is produced.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return "encode banner: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }
