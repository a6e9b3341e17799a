package greenbuild

const (
	storageKeyToken    = "auth_token"
	storageKeyUser     = "user"
	storageKeyCurrency = "currency"
)

// Storage is the persisted string KV the stores keep their state in. The
// browser build backs it with localStorage; tests use MemoryStorage.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

type MemoryStorage struct {
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	v, found := m.values[key]
	return v, found
}

func (m *MemoryStorage) Set(key, value string) {
	m.values[key] = value
}

func (m *MemoryStorage) Remove(key string) {
	delete(m.values, key)
}
