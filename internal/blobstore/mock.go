package blobstore

import "sync"

// Mock is an in-memory BlobStore for testing. It is safe for concurrent
// use. Any of the Func fields can be set to intercept a call.
type Mock struct {
	mu   sync.Mutex
	docs map[string]map[string][]byte

	GetFunc    func(collection, key string) ([]byte, error)
	PutFunc    func(collection, key string, value []byte) error
	DeleteFunc func(collection, key string) error
	KeysFunc   func(collection string) ([]string, error)
	ClearFunc  func() error

	// Call records
	PutCalls []struct {
		Collection string
		Key        string
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		docs: make(map[string]map[string][]byte),
	}
}

func (m *Mock) Get(collection, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(collection, key)
	}
	if value, ok := m.docs[collection][key]; ok {
		return value, nil
	}
	return nil, ErrNotFound
}

func (m *Mock) Put(collection, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = append(m.PutCalls, struct {
		Collection string
		Key        string
	}{collection, key})
	if m.PutFunc != nil {
		return m.PutFunc(collection, key, value)
	}
	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string][]byte)
	}
	m.docs[collection][key] = value
	return nil
}

func (m *Mock) Delete(collection, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(collection, key)
	}
	delete(m.docs[collection], key)
	return nil
}

func (m *Mock) Keys(collection string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.KeysFunc != nil {
		return m.KeysFunc(collection)
	}
	var keys []string
	for key := range m.docs[collection] {
		keys = append(keys, key)
	}
	return keys, nil
}

func (m *Mock) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	m.docs = make(map[string]map[string][]byte)
	return nil
}
