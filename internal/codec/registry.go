// Package codec converts quiz records to and from their JSON and native
// forms. Both forms resolve variants through the same Registry.
package codec

import (
	"fmt"
	"sort"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

// Variant binds a quiz type to its ordinal and wire routines.
type Variant struct {
	Type    entities.QuizType
	Ordinal int

	encodeJSON  func(q entities.Quiz, rec *JSONRecord) error
	decodeJSON  func(rec *JSONRecord) (entities.Quiz, error)
	writeNative func(q entities.Quiz, w *NativeWriter) error
	readNative  func(h nativeHeader, r *NativeReader) (entities.Quiz, error)
}

// Registry maps type tags and ordinals to variants. It is immutable after
// construction and safe for concurrent reads.
type Registry struct {
	byType    map[entities.QuizType]*Variant
	byOrdinal map[int]*Variant
}

// NewRegistry builds a registry from the given variants. Tags and ordinals
// must be unique.
func NewRegistry(variants ...Variant) (*Registry, error) {
	r := &Registry{
		byType:    make(map[entities.QuizType]*Variant, len(variants)),
		byOrdinal: make(map[int]*Variant, len(variants)),
	}
	for i := range variants {
		v := &variants[i]
		if v.Type == "" {
			return nil, fmt.Errorf("variant at index %d has no type", i)
		}
		if _, ok := r.byType[v.Type]; ok {
			return nil, fmt.Errorf("duplicate variant type %q", v.Type)
		}
		if _, ok := r.byOrdinal[v.Ordinal]; ok {
			return nil, fmt.Errorf("duplicate variant ordinal %d", v.Ordinal)
		}
		r.byType[v.Type] = v
		r.byOrdinal[v.Ordinal] = v
	}
	return r, nil
}

var defaultRegistry *Registry

func init() {
	r, err := NewRegistry(BuiltinVariants()...)
	if err != nil {
		panic(err)
	}
	defaultRegistry = r
}

// Default returns the registry of built-in variants.
func Default() *Registry {
	return defaultRegistry
}

// Lookup resolves a type tag.
func (r *Registry) Lookup(t entities.QuizType) (*Variant, error) {
	v, ok := r.byType[t]
	if !ok {
		return nil, &entities.UnknownVariantError{Tag: string(t), ByTag: true}
	}
	return v, nil
}

// LookupOrdinal resolves a native ordinal.
func (r *Registry) LookupOrdinal(ordinal int) (*Variant, error) {
	v, ok := r.byOrdinal[ordinal]
	if !ok {
		return nil, &entities.UnknownVariantError{Ordinal: ordinal}
	}
	return v, nil
}

// Types lists registered tags ordered by ordinal.
func (r *Registry) Types() []entities.QuizType {
	vs := make([]*Variant, 0, len(r.byType))
	for _, v := range r.byType {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Ordinal < vs[j].Ordinal })

	types := make([]entities.QuizType, len(vs))
	for i, v := range vs {
		types[i] = v.Type
	}
	return types
}
