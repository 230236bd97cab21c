package contracts

// Config is a read-only tree of values addressed by dotted paths such as
// "events.dispatch". Typed getters fall back to def, or the zero value,
// when the path is missing or holds another type.
type Config interface {
	Has(path string) bool
	Get(path string) any
	GetString(path string, def ...string) string
	GetInt(path string, def ...int) int
	GetBool(path string, def ...bool) bool
	// GetSub returns the section at path when it is a map.
	GetSub(path string) (Config, bool)
	All() map[string]any
}
