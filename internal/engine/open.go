package engine

import (
	"fmt"
	"sort"

	"github.com/born-ml/costgen/internal/backend/cpu"
	"github.com/born-ml/costgen/internal/backend/webgpu"
)

var openers = map[string]func() (Engine, error){
	"cpu": func() (Engine, error) {
		return NewLocal(cpu.New()), nil
	},
	"noop": func() (Engine, error) {
		return Noop{}, nil
	},
	"webgpu": func() (Engine, error) {
		gpu, err := webgpu.New()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return NewLocal(gpu), nil
	},
}

// Names lists the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open creates the engine registered under name.
// Engines implementing io.Closer should be closed by the caller.
func Open(name string) (Engine, error) {
	open, ok := openers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknown, name, Names())
	}
	return open()
}
