package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version. Increment when cachePayload changes shape.
const cacheSchemaVersion uint16 = 1

// Digest identifies cached content: file bytes plus the indent width they
// were verified against.
type Digest [32]byte

// DiskCache remembers which files were already in canonical form, so
// repeated runs over a large tree skip the scan/rewrite work for untouched
// files. Only clean files are cached; files with warnings are always
// reprocessed so their diagnostics reappear. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema    uint16
	Path      string
	Canonical bool
}

// OpenDiskCache initializes a disk cache at the standard user cache
// location for the given app name.
func OpenDiskCache(app string) (*DiskCache, error) {
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
	return &DiskCache{dir: dir}, nil
}

// CacheKey derives the digest for content formatted at the given indent
// width.
func CacheKey(contentHash [32]byte, indentWidth int) Digest {
	var widthBytes [8]byte
	binary.LittleEndian.PutUint64(widthBytes[:], uint64(indentWidth)) // #nosec G115 -- width is a small positive flag value
	h := sha256.New()
	h.Write(contentHash[:])
	h.Write(widthBytes[:])
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root readable and easy to purge.
	return filepath.Join(c.dir, "files", hexKey[:2], hexKey+".bin")
}

// IsCanonical reports whether the key is recorded as already formatted.
// Any read or decode problem counts as a miss.
func (c *DiskCache) IsCanonical(key Digest) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return false
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return false
	}
	return payload.Schema == cacheSchemaVersion && payload.Canonical
}

// MarkCanonical records that the keyed content is already in canonical
// form. Failures are reported but harmless; the cache is advisory.
func (c *DiskCache) MarkCanonical(key Digest, path string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{
		Schema:    cacheSchemaVersion,
		Path:      path,
		Canonical: true,
	}
	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return err
	}

	target := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	// Write-then-rename keeps concurrent readers off half-written entries.
	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, target)
}

// Purge removes every cache entry.
func (c *DiskCache) Purge() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.RemoveAll(filepath.Join(c.dir, "files"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
