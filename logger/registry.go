package logger

import "sync"

// Named loggers, so embedders can hand individual components ("inject",
// "configsource") their own configuration. Unregistered names fall back to
// the global logger.
var named = struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}{
	loggers: make(map[string]*Logger),
}

// Register stores a logger under a component name. Components resolve their
// logger with Get at construction time, so registering before building
// registries and sources ensures the custom logger is picked up.
func Register(name string, l *Logger) {
	named.mu.Lock()
	defer named.mu.Unlock()
	named.loggers[name] = l
}

// Get retrieves the logger registered under name. If none is registered it
// returns the global logger tagged with name as its component.
func Get(name string) *Logger {
	named.mu.RLock()
	l, ok := named.loggers[name]
	named.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}
