package ports

// Emitter delivers an encoded banner to its destination under a
// generated filename. Host environments decide what "save" means: a
// file write, a download, an upload.
type Emitter interface {
	Emit(data []byte, filename string) error
}

// NoiseSource yields grayscale values for the card's noise texture.
// The production source is unseeded and non-deterministic; tests inject
// a fixed sequence.
type NoiseSource interface {
	// Next returns a uniformly distributed value in [0, 255].
	Next() uint8
}
