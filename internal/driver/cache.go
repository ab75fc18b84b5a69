package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"skema/internal/report"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// Cache хранит результаты проверки по content digest на диске, чтобы не
// обходить неизменившиеся файлы заново.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachedMessage struct {
	Severity uint8
	Origin   string
	Text     string
}

type cachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Worst    uint8
	Messages []cachedMessage
}

// OpenCache initializes and returns a disk cache at the standard
// location for app.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenCacheAt is OpenCache with an explicit directory; used by tests.
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// key mixes the file content with the run configuration salt: the same
// document checked under different redirect tables or depth limits must
// not share a cache entry.
func (c *Cache) key(content []byte, salt string) string {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(salt))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) pathFor(key string) string {
	// Для удобства читаемости/очистки — подкаталог "results".
	return filepath.Join(c.dir, "results", key+".mp")
}

// Get looks up a prior result for the given content and salt.
func (c *Cache) Get(content []byte, salt string) (FileResult, bool) {
	if c == nil {
		return FileResult{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, err := os.ReadFile(c.pathFor(c.key(content, salt)))
	if err != nil {
		return FileResult{}, false
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(raw, &payload); err != nil {
		return FileResult{}, false
	}
	if payload.Schema != cacheSchemaVersion {
		return FileResult{}, false
	}

	res := FileResult{
		Worst:    report.Severity(payload.Worst),
		Messages: make([]report.Message, 0, len(payload.Messages)),
	}
	for _, m := range payload.Messages {
		res.Messages = append(res.Messages, report.Message{
			Severity: report.Severity(m.Severity),
			Origin:   m.Origin,
			Text:     m.Text,
		})
	}
	return res, true
}

// Put stores a finished, non-aborted result.
func (c *Cache) Put(content []byte, salt string, res FileResult) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{
		Schema:   cacheSchemaVersion,
		Worst:    uint8(res.Worst),
		Messages: make([]cachedMessage, 0, len(res.Messages)),
	}
	for _, m := range res.Messages {
		payload.Messages = append(payload.Messages, cachedMessage{
			Severity: uint8(m.Severity),
			Origin:   m.Origin,
			Text:     m.Text,
		})
	}
	raw, err := msgpack.Marshal(&payload)
	if err != nil {
		return err
	}

	path := c.pathFor(c.key(content, salt))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Clear removes every cached result.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "results"))
}
