package braille

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Resetter is implemented by the state records of decoders and encoders.
// Reset has to bring a record back into its initial state.
type Resetter interface {
	Reset()
}

// StatePool holds translation state records for re-use.
//
// Every decoding or encoding run needs a small record for its modifier
// flags and output buffer. Runs are short, so we pool the records instead
// of allocating a new one for every call. A record is handed out to a
// single run only and is reset before being handed out, so no state
// survives from one run to the next.
type StatePool struct {
	opool  *pool.ObjectPool
	ctx    context.Context
	create func() Resetter
}

// NewStatePool creates a pool with a factory for state records.
func NewStatePool(create func() Resetter) *StatePool {
	sp := &StatePool{create: create}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return create(), nil
		})
	sp.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	sp.opool = pool.NewObjectPool(sp.ctx, factory, config)
	return sp
}

// Borrow returns a state record in initial state.
func (sp *StatePool) Borrow() Resetter {
	o, err := sp.opool.BorrowObject(sp.ctx)
	if err != nil {
		CT().Errorf("state pool: %v", err)
		return sp.create()
	}
	r := o.(Resetter)
	r.Reset()
	return r
}

// Release puts a state record back into the pool. Clients must not use r
// after releasing it.
func (sp *StatePool) Release(r Resetter) {
	if r == nil {
		return
	}
	// ReturnObject rejects records created outside the pool
	_ = sp.opool.ReturnObject(sp.ctx, r)
}
