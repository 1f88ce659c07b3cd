package registry

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/joshuapare/pathkit/pkg/tree"
	"github.com/joshuapare/pathkit/pkg/types"
)

// Options configures a Container.
type Options struct {
	// Logger receives Debug records for registrations and removals.
	// Default: discard
	Logger *slog.Logger
}

// DefaultOptions returns options with logging discarded.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Container is a named resource container safe for concurrent use.
type Container struct {
	resources *xsync.MapOf[string, any]
	log       *slog.Logger
}

// NewContainer creates an empty container.
func NewContainer(opts Options) *Container {
	log := opts.Logger
	if log == nil {
		log = DefaultOptions().Logger
	}
	return &Container{
		resources: xsync.NewMapOf[string, any](),
		log:       log,
	}
}

var defaultContainer = sync.OnceValue(func() *Container {
	return NewContainer(DefaultOptions())
})

// Default returns the process-wide container.
func Default() *Container {
	return defaultContainer()
}

// Register wraps t in a Shared and stores it under name. A nil t registers a
// new empty tree labelled name. Registering a name twice fails with
// types.ErrAlreadyExists.
func Register[T any](c *Container, name string, t *tree.Tree[T]) (*Shared[T], error) {
	if t == nil {
		t = tree.New[T](name)
	}
	s := NewShared(t)
	if _, loaded := c.resources.LoadOrStore(name, s); loaded {
		return nil, &types.Error{Kind: types.ErrKindAlreadyExists, Msg: "resource already registered", Path: name}
	}
	c.log.Debug("registered tree", "name", name, "values", t.Len())
	return s, nil
}

// Resource returns the shared tree registered under name. It fails with
// types.ErrNotFound if nothing is registered under name or the registered
// tree holds a different value type.
func Resource[T any](c *Container, name string) (*Shared[T], error) {
	v, ok := c.resources.Load(name)
	if !ok {
		return nil, &types.Error{Kind: types.ErrKindNotFound, Msg: "resource not registered", Path: name}
	}
	s, ok := v.(*Shared[T])
	if !ok {
		return nil, &types.Error{
			Kind: types.ErrKindNotFound,
			Msg:  fmt.Sprintf("resource is %T, not %T", v, s),
			Path: name,
		}
	}
	return s, nil
}

// Unregister removes name from the container and reports whether it was
// present. Holders of the Shared keep a working tree.
func (c *Container) Unregister(name string) bool {
	_, ok := c.resources.LoadAndDelete(name)
	if ok {
		c.log.Debug("unregistered tree", "name", name)
	}
	return ok
}

// Names returns the registered names in lexicographic order.
func (c *Container) Names() []string {
	names := make([]string, 0, c.resources.Size())
	c.resources.Range(func(name string, _ any) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// Len returns the number of registered resources.
func (c *Container) Len() int {
	return c.resources.Size()
}
