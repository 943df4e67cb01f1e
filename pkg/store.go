package semcommit

// VersionStore reads and writes the version field of a project descriptor.
// ReadVersion returns nil when the field is absent.
type VersionStore interface {
	ReadVersion() (*string, error)
	WriteVersion(version string) error
}

// Describer is implemented by stores that are backed by a file.
type Describer interface {
	Location() string
}

// MemoryStore keeps the version in memory. Writes counts WriteVersion calls.
type MemoryStore struct {
	Value  *string
	Writes int
}

// NewMemoryStore returns a store holding version.
func NewMemoryStore(version string) *MemoryStore {
	return &MemoryStore{Value: &version}
}

func (m *MemoryStore) ReadVersion() (*string, error) {
	if m.Value == nil {
		return nil, nil
	}
	v := *m.Value
	return &v, nil
}

func (m *MemoryStore) WriteVersion(version string) error {
	m.Value = &version
	m.Writes++
	return nil
}
