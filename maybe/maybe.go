/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or nothing (Nothing). It lets functions
tell apart "no result" from "an empty result", e.g. an absent path from an
empty one.

Values are inspected by pattern matching:

   var v []int
   switch m := x.Match(); m {
   case m.Just(&v):
       …
   case m.Nothing():
       …
   }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Match returns a matcher for use in switch statements. Matchers compare by
// identity, so T need not be comparable.
func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

// Get unwraps the value. The boolean result is false for Nothing.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
