package board

// Observers is a list of size-change callbacks owned by a board model.
// It is not safe for concurrent use; boards notify from the goroutine that
// resized them.
type Observers struct {
	next int
	subs map[int]func(Size)
}

// Add registers fn and returns a func that removes it. Calling the returned
// func more than once is harmless.
func (o *Observers) Add(fn func(Size)) func() {
	if o.subs == nil {
		o.subs = make(map[int]func(Size))
	}
	id := o.next
	o.next++
	o.subs[id] = fn
	return func() {
		delete(o.subs, id)
	}
}

// Notify calls every registered callback in registration order.
func (o *Observers) Notify(s Size) {
	for id := 0; id < o.next; id++ {
		if fn, ok := o.subs[id]; ok {
			fn(s)
		}
	}
}

// Len returns the number of live registrations.
func (o *Observers) Len() int {
	return len(o.subs)
}
