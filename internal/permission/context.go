package permission

import "sync/atomic"

// Context holds the grant set of a single authenticated session so the
// resolver does not need a storage round trip per navigation item. It lives
// as long as the session does and is cleared on sign-out.
//
// Replace swaps the whole set through an atomic pointer; concurrent readers
// always observe either the old or the new complete set, never a mixture.
type Context struct {
	grants atomic.Pointer[[]Grant]
}

// NewContext creates a new grant context holding a copy of the given grants
func NewContext(grants []Grant) *Context {
	ctx := new(Context)
	ctx.Replace(grants)
	return ctx
}

// Grants returns the current grant snapshot.
// The returned slice is shared between readers and must not be modified.
func (ctx *Context) Grants() []Grant {
	ptr := ctx.grants.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Replace swaps the stored grant set with a copy of the given one
func (ctx *Context) Replace(grants []Grant) {
	cpy := make([]Grant, len(grants))
	copy(cpy, grants)
	ctx.grants.Store(&cpy)
}

// Clear resets the context to an empty grant set
func (ctx *Context) Clear() {
	ctx.Replace(nil)
}
