package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxSize caps texture dimensions on load. Block faces are small on
// screen, so larger images only cost memory.
const DefaultMaxSize = 256

var supportedExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true, ".webp": true,
}

// Manager is the asset table: textures keyed by name, loaded once and handed
// out as shared handles.
type Manager struct {
	MaxSize int

	mu       sync.RWMutex
	textures map[string]*Texture
	pixels   map[[32]byte]*image.NRGBA
	refs     map[[32]byte]int // names per pixel buffer
}

func NewManager() *Manager {
	return &Manager{
		MaxSize:  DefaultMaxSize,
		textures: make(map[string]*Texture),
		pixels:   make(map[[32]byte]*image.NRGBA),
		refs:     make(map[[32]byte]int),
	}
}

// Add registers (or replaces) a texture under name. A texture whose pixels
// match one already loaded shares that texture's storage. A replaced
// texture's buffer is released once no name refers to it.
func (m *Manager) Add(name string, t *Texture) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.textures[name]; ok {
		if m.refs[old.digest]--; m.refs[old.digest] <= 0 {
			delete(m.refs, old.digest)
			delete(m.pixels, old.digest)
		}
	}
	if p, ok := m.pixels[t.digest]; ok {
		t.pix = p
	} else {
		m.pixels[t.digest] = t.pix
	}
	m.refs[t.digest]++
	m.textures[name] = t
}

// Get returns the shared handle for name.
func (m *Manager) Get(name string) (*Texture, bool) {
	m.mu.RLock()
	t, ok := m.textures[name]
	m.mu.RUnlock()
	return t, ok
}

// Names lists loaded texture names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.textures))
	for n := range m.textures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Unique counts distinct pixel buffers held, ignoring duplicates.
func (m *Manager) Unique() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pixels)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.textures)
}

// LoadFile decodes path and registers it under name.
func (m *Manager) LoadFile(name, path string) (*Texture, error) {
	t, err := decodeFile(name, path, m.MaxSize)
	if err != nil {
		return nil, err
	}
	m.Add(name, t)
	return t, nil
}

// LoadDirectory decodes every supported image in dir concurrently. Each file
// is registered under its base name without extension (grass.png -> "grass").
// Returns the number of textures loaded.
func (m *Manager) LoadDirectory(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read texture dir %s: %w", dir, err)
	}

	var g errgroup.Group
	g.SetLimit(4)
	loaded := 0
	var countMu sync.Mutex
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || !supportedExt[ext] {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		path := filepath.Join(dir, e.Name())
		g.Go(func() error {
			if _, err := m.LoadFile(name, path); err != nil {
				return err
			}
			countMu.Lock()
			loaded++
			countMu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return loaded, err
	}
	if loaded > 0 {
		log.Printf("texture: loaded %d textures from %s (%d unique)", loaded, dir, m.Unique())
	}
	return loaded, nil
}

func decodeFile(name, path string, maxSize int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return FromImage(name, img, maxSize), nil
}
