package prefabs

import "sync"

// Templates caches parsed room templates. Invalidate is called from the
// watcher goroutine, so access is locked.
type Templates struct {
	mu    sync.Mutex
	load  func(string) (*RoomTemplate, error)
	cache map[string]*RoomTemplate
}

func NewTemplates() *Templates {
	return &Templates{
		load:  LoadRoomTemplate,
		cache: make(map[string]*RoomTemplate),
	}
}

// Get returns the template for name, loading it on first use.
func (t *Templates) Get(name string) (*RoomTemplate, error) {
	key := cleanPrefabPath(name)

	t.mu.Lock()
	defer t.mu.Unlock()

	if tpl, ok := t.cache[key]; ok {
		return tpl, nil
	}
	tpl, err := t.load(key)
	if err != nil {
		return nil, err
	}
	t.cache[key] = tpl
	return tpl, nil
}

// Invalidate drops a cached template so the next Get reloads it.
func (t *Templates) Invalidate(name string) {
	key := cleanPrefabPath(name)

	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.cache, key)
}

func (t *Templates) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cache)
}
