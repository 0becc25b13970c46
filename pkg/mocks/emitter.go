package mocks

// Emitter is a mock implementation of ports.Emitter that records emitted
// banners.
type Emitter struct {
	EmitFunc func(data []byte, filename string) error

	// Recorded calls for verification
	Emitted []EmitCall
}

// EmitCall records a call to Emit.
type EmitCall struct {
	Data     []byte
	Filename string
}

func (m *Emitter) Emit(data []byte, filename string) error {
	m.Emitted = append(m.Emitted, EmitCall{Data: data, Filename: filename})
	if m.EmitFunc != nil {
		return m.EmitFunc(data, filename)
	}
	return nil
}

// NoiseSource is a mock implementation of ports.NoiseSource that cycles
// through a fixed sequence.
type NoiseSource struct {
	Sequence []uint8
	pos      int
}

func (m *NoiseSource) Next() uint8 {
	if len(m.Sequence) == 0 {
		return 128
	}
	v := m.Sequence[m.pos%len(m.Sequence)]
	m.pos++
	return v
}
