package keymap

import (
	"fmt"
	"slices"
)

// Resolver maps keys to actions per binding context.
type Resolver struct {
	byContext map[string]map[string]Action // context -> key -> action
}

// NewResolver indexes bindings by context. Within a context a key bound twice
// resolves to its first binding; Conflicts reports such keys.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{byContext: make(map[string]map[string]Action)}
	for _, b := range bindings {
		keys := r.byContext[b.Context]
		if keys == nil {
			keys = make(map[string]Action)
			r.byContext[b.Context] = keys
		}
		for _, k := range b.Keys {
			if _, taken := keys[k]; !taken {
				keys[k] = b.Action
			}
		}
	}
	return r
}

// Default returns a resolver over Bindings.
func Default() *Resolver {
	return NewResolver(Bindings)
}

// Resolve looks key up in each context in turn and returns the first action
// found together with the context that bound it.
func (r *Resolver) Resolve(key string, contexts ...string) (Action, string) {
	for _, c := range contexts {
		if a, ok := r.byContext[c][key]; ok {
			return a, c
		}
	}
	return "", ""
}

// Conflicts lists keys bound to more than one action inside a single context,
// or shadowed by an earlier context of the given stack.
func Conflicts(bindings []Binding, stack ...string) []string {
	var out []string
	owner := make(map[string]map[string]Action)
	for _, b := range bindings {
		if owner[b.Context] == nil {
			owner[b.Context] = make(map[string]Action)
		}
		for _, k := range b.Keys {
			if prev, ok := owner[b.Context][k]; ok && prev != b.Action {
				out = append(out, fmt.Sprintf("%s: %q bound to %s and %s", b.Context, k, prev, b.Action))
				continue
			}
			owner[b.Context][k] = b.Action
		}
	}
	for i, c := range stack {
		for k, a := range owner[c] {
			for _, earlier := range stack[:i] {
				if prev, ok := owner[earlier][k]; ok {
					out = append(out, fmt.Sprintf("%s: %q (%s) shadowed by %s (%s)", c, k, a, earlier, prev))
				}
			}
		}
	}
	slices.Sort(out)
	return out
}
