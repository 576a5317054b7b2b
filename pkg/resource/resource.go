// Package resource tracks GPU-side objects by kind. Instead of a type per
// resource, each Kind has a capability table that answers the questions the
// rest of the engine asks of a resource: how much memory it holds and how to
// release it.
package resource

import (
	"fmt"
	"sync"

	"github.com/go-drift/dockui/pkg/errors"
)

// Kind tags what a resource is.
type Kind int

const (
	KindBuffer Kind = iota
	KindConstantBlock
	KindTexture1D
	KindTexture2D
	KindTexture3D
	KindShaderCode
	KindVertexShader
	KindPixelShader
	KindGeometryShader
)

var kindNames = [...]string{
	KindBuffer:         "buffer",
	KindConstantBlock:  "constant_block",
	KindTexture1D:      "texture_1d",
	KindTexture2D:      "texture_2d",
	KindTexture3D:      "texture_3d",
	KindShaderCode:     "shader_code",
	KindVertexShader:   "vertex_shader",
	KindPixelShader:    "pixel_shader",
	KindGeometryShader: "geometry_shader",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsTexture reports whether k is one of the texture kinds.
func (k Kind) IsTexture() bool {
	return k == KindTexture1D || k == KindTexture2D || k == KindTexture3D
}

// ShaderType identifies the pipeline stage of a shader.
type ShaderType int

const (
	ShaderNone ShaderType = iota
	ShaderVertex
	ShaderFragment
	ShaderGeometry
)

// ShaderType returns the stage for shader kinds and ShaderNone otherwise.
func (k Kind) ShaderType() ShaderType {
	switch k {
	case KindVertexShader:
		return ShaderVertex
	case KindPixelShader:
		return ShaderFragment
	case KindGeometryShader:
		return ShaderGeometry
	default:
		return ShaderNone
	}
}

// Handle identifies a live resource. The zero Handle refers to nothing and
// doubles as "no texture" for drawables.
type Handle uint32

// Resource is the bookkeeping record for one allocation.
type Resource struct {
	Handle Handle
	Kind   Kind
	// Bytes is the size reported at creation time.
	Bytes int
	// Data is backend-specific state, opaque to this package.
	Data any
}

// Capabilities is the per-kind function table.
type Capabilities struct {
	// MemoryUsed reports the bytes held by r.
	MemoryUsed func(r *Resource) int
	// Dispose releases backend state for r. May be nil.
	Dispose func(r *Resource)
}

func defaultMemoryUsed(r *Resource) int {
	return r.Bytes
}

// Context creates resources and owns them until disposed.
type Context struct {
	mu    sync.Mutex
	next  Handle
	live  map[Handle]*Resource
	table map[Kind]Capabilities
}

// NewContext returns a Context whose kinds all report their creation size
// and need no backend release.
func NewContext() *Context {
	c := &Context{
		live:  make(map[Handle]*Resource),
		table: make(map[Kind]Capabilities, len(kindNames)),
	}
	for k := range kindNames {
		c.table[Kind(k)] = Capabilities{MemoryUsed: defaultMemoryUsed}
	}
	return c
}

// SetCapabilities replaces the function table for a kind. A nil MemoryUsed
// falls back to the creation size.
func (c *Context) SetCapabilities(k Kind, caps Capabilities) {
	if caps.MemoryUsed == nil {
		caps.MemoryUsed = defaultMemoryUsed
	}
	c.mu.Lock()
	c.table[k] = caps
	c.mu.Unlock()
}

// Create registers a new resource and returns its handle.
func (c *Context) Create(k Kind, bytes int, data any) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	h := c.next
	c.live[h] = &Resource{Handle: h, Kind: k, Bytes: bytes, Data: data}
	return h
}

// Lookup returns the resource for h.
func (c *Context) Lookup(h Handle) (*Resource, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.live[h]
	return r, ok
}

// MemoryUsed sums the memory reported by every live resource.
func (c *Context) MemoryUsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, r := range c.live {
		total += c.table[r.Kind].MemoryUsed(r)
	}
	return total
}

// Len returns the number of live resources.
func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// Dispose releases h. Disposing an unknown or already-disposed handle is
// reported and otherwise ignored.
func (c *Context) Dispose(h Handle) {
	c.mu.Lock()
	r, ok := c.live[h]
	var caps Capabilities
	if ok {
		delete(c.live, h)
		caps = c.table[r.Kind]
	}
	c.mu.Unlock()

	if !ok {
		errors.Report(&errors.UIError{
			Op:   "resource.Dispose",
			Kind: errors.KindResource,
			Err:  fmt.Errorf("unknown handle %d", h),
		})
		return
	}
	if caps.Dispose != nil {
		caps.Dispose(r)
	}
}

// DisposeAll releases every live resource.
func (c *Context) DisposeAll() {
	c.mu.Lock()
	handles := make([]Handle, 0, len(c.live))
	for h := range c.live {
		handles = append(handles, h)
	}
	c.mu.Unlock()
	for _, h := range handles {
		c.Dispose(h)
	}
}
