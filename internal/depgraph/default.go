package depgraph

// defaultTable is the built-in library of crypto components.
var defaultTable = map[string][]string{
	"byte_array": {"error", "long"},
	"cipher":     {},
	"crypt":      {"byte_array"},
	"error":      {},
	"hash":       {},
	"hmac":       {"byte_array"},
	"long":       {"error"},
	"pbkdf2":     {"byte_array", "hmac"},
	"serpent":    {"byte_array", "cipher"},
	"tiger":      {"byte_array", "hash", "long"},
	"whirlpool":  {"byte_array", "hash"},
}

var defaultGraph = MustNew(defaultTable)

// Default returns the compiled-in dependency table.
func Default() *Graph {
	return defaultGraph
}
