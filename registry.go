package numfmt

import (
	"io"
	"slices"
	"sync"
)

// Registry maps names to formats. It starts with every built-in locale
// under its Name and is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
	log     func(messages ...any) // Private logger, set via SetLog
}

// NewRegistry returns a Registry holding the built-in locales.
func NewRegistry() *Registry {
	r := &Registry{
		formats: make(map[string]Format, len(locales)),
		log:     func(messages ...any) {},
	}
	for _, l := range AvailableLocales() {
		r.formats[l.Name()] = l
	}
	return r
}

// SetLog installs a logger for replacements and loads. nil silences it.
func (r *Registry) SetLog(f func(messages ...any)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f == nil {
		f = func(messages ...any) {}
	}
	r.log = f
}

// Register stores f under name, replacing any previous entry.
func (r *Registry) Register(name string, f Format) {
	r.mu.Lock()
	_, replaced := r.formats[name]
	r.formats[name] = f
	log := r.log
	r.mu.Unlock()
	if replaced {
		log("numfmt: replacing format", name)
	}
}

// Lookup returns the format registered under name. Names that are not
// registered are tried as locale names, so "fr_FR.UTF-8" finds "fr".
func (r *Registry) Lookup(name string) (Format, bool) {
	r.mu.RLock()
	f, ok := r.formats[name]
	r.mu.RUnlock()
	if ok {
		return f, true
	}
	l, err := ParseLocale(name)
	if err != nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok = r.formats[l.Name()]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadYAML registers every format of a formats document. Nothing is
// registered when the document has an invalid entry.
func (r *Registry) LoadYAML(src io.Reader) error {
	formats, err := LoadFormats(src)
	if err != nil {
		r.logger()("numfmt: rejected formats config:", err)
		return err
	}
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		r.Register(name, formats[name])
	}
	r.logger()("numfmt: loaded formats", len(names))
	return nil
}

// logger returns the current log function. Callers invoke it without
// holding the lock so a logger may use the Registry.
func (r *Registry) logger() func(messages ...any) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.log
}
