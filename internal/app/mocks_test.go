package app

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of AssociationStore for testing.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) QueryLength(key string) (int, error) {
	args := m.Called(key)
	return args.Int(0), args.Error(1)
}

// QueryFill copies the "fill" value configured for the call into buf.
func (m *MockStore) QueryFill(key string, buf []uint16) (int, error) {
	args := m.Called(key, len(buf))
	if s, ok := args.Get(0).(string); ok {
		units := encodeUTF16(s)
		if len(units) > len(buf) {
			return len(units), ErrBufferTooSmall
		}
		return copy(buf, units), args.Error(1)
	}
	return args.Int(0), args.Error(1)
}

// MockLogger records log messages for assertions.
type MockLogger struct {
	mu   sync.Mutex
	logs []string
}

func (m *MockLogger) record(level string, msg any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := msg.(string); ok {
		m.logs = append(m.logs, level+": "+s)
	}
}

func (m *MockLogger) Debug(msg any, keyvals ...any) { m.record("DEBUG", msg) }
func (m *MockLogger) Info(msg any, keyvals ...any)  { m.record("INFO", msg) }
func (m *MockLogger) Warn(msg any, keyvals ...any)  { m.record("WARN", msg) }
func (m *MockLogger) Error(msg any, keyvals ...any) { m.record("ERROR", msg) }

func (m *MockLogger) GetLogs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.logs...)
}

// fakeNormalizer maps paths through a fixed table.
func fakeNormalizer(table map[string]string) PathNormalizer {
	return PathNormalizerFunc(func(path string) (string, error) {
		if p, ok := table[path]; ok {
			return p, nil
		}
		return "", &NormalizationError{Path: path, Err: errNotExist}
	})
}

func fixedWd(dir string) WorkingDir {
	return func() (string, error) { return dir, nil }
}
