// Package rig provides construction and read-only queries over the arena.
package rig

import "fmt"

// Rig is the validated, immutable arena of one analysis run. Build it with
// New; the zero value is not usable.
type Rig struct {
	order   []string                    // object names in declared order
	objects map[string]*Object          // object name → object
	bones   map[string]map[string]*Bone // object name → bone name → bone
}

// New builds a Rig from the supplied objects and validates it. The caller
// supplies an already-filtered set; New applies no selection or visibility
// semantics of its own.
//
// Returns ErrDuplicateObject, ErrDuplicateBone, ErrDanglingParent, or
// ErrParentCycle (wrapped with the offending names) on invalid input.
//
// Complexity: O(total bones²) worst case, dominated by cycle detection.
func New(objects ...Object) (*Rig, error) {
	r := &Rig{
		objects: make(map[string]*Object, len(objects)),
		bones:   make(map[string]map[string]*Bone, len(objects)),
	}

	for i := range objects {
		o := objects[i]
		if _, dup := r.objects[o.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateObject, o.Name)
		}
		r.order = append(r.order, o.Name)
		r.objects[o.Name] = &o

		idx := make(map[string]*Bone, len(o.Bones))
		for j := range o.Bones {
			b := &o.Bones[j]
			if _, dup := idx[b.Name]; dup {
				return nil, fmt.Errorf("%w: %q in armature %q", ErrDuplicateBone, b.Name, o.Name)
			}
			idx[b.Name] = b
		}
		r.bones[o.Name] = idx
	}

	for _, name := range r.order {
		if err := r.validateArmature(r.objects[name]); err != nil {
			return nil, err
		}
	}
	if err := r.validateObjectParents(); err != nil {
		return nil, err
	}

	return r, nil
}

// validateArmature checks that every bone parent resolves within its own
// armature and that no bone-parent chain loops.
func (r *Rig) validateArmature(o *Object) error {
	idx := r.bones[o.Name]
	for j := range o.Bones {
		b := &o.Bones[j]
		if b.Parent == "" {
			continue
		}
		if _, ok := idx[b.Parent]; !ok {
			return fmt.Errorf("%w: bone %q parents %q in armature %q",
				ErrDanglingParent, b.Name, b.Parent, o.Name)
		}
	}

	// Walk each parent chain; a chain longer than the armature must loop.
	for j := range o.Bones {
		steps := 0
		for b := &o.Bones[j]; b.Parent != ""; b = idx[b.Parent] {
			steps++
			if steps > len(o.Bones) {
				return fmt.Errorf("%w: bone %q in armature %q",
					ErrParentCycle, o.Bones[j].Name, o.Name)
			}
		}
	}

	return nil
}

// validateObjectParents rejects loops in object-parent chains. Parents
// referencing objects outside the rig terminate the chain.
func (r *Rig) validateObjectParents() error {
	for _, name := range r.order {
		steps := 0
		for o := r.objects[name]; o != nil && o.Parent != ""; o = r.objects[o.Parent] {
			steps++
			if steps > len(r.order) {
				return fmt.Errorf("%w: object %q", ErrParentCycle, name)
			}
		}
	}

	return nil
}

// Objects returns the object names in declared order.
//
// Complexity: O(V)
func (r *Rig) Objects() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Object returns the named object, if present.
func (r *Rig) Object(name string) (*Object, bool) {
	o, ok := r.objects[name]

	return o, ok
}

// Bones returns the bone names of the named object in declared order, or
// nil when the object is absent or owns no bones.
func (r *Rig) Bones(object string) []string {
	o, ok := r.objects[object]
	if !ok {
		return nil
	}
	out := make([]string, len(o.Bones))
	for i := range o.Bones {
		out[i] = o.Bones[i].Name
	}

	return out
}

// Bone returns the named bone of the named object, if present.
func (r *Rig) Bone(object, bone string) (*Bone, bool) {
	idx, ok := r.bones[object]
	if !ok {
		return nil, false
	}
	b, ok := idx[bone]

	return b, ok
}

// ParentBone returns the parent of the named bone, if it has one.
func (r *Rig) ParentBone(object, bone string) (*Bone, bool) {
	b, ok := r.Bone(object, bone)
	if !ok || b.Parent == "" {
		return nil, false
	}

	return r.Bone(object, b.Parent)
}

// ParentObject returns the parent of the named object, if the parent is
// part of the rig.
func (r *Rig) ParentObject(name string) (*Object, bool) {
	o, ok := r.objects[name]
	if !ok || o.Parent == "" {
		return nil, false
	}
	p, ok := r.objects[o.Parent]

	return p, ok
}

// ChildBones returns the names of bones whose parent is the named bone,
// in declared order. The index is derived from the parent pointers on
// each call, never stored.
//
// Complexity: O(bones in the armature)
func (r *Rig) ChildBones(object, bone string) []string {
	o, ok := r.objects[object]
	if !ok {
		return nil
	}
	var out []string
	for i := range o.Bones {
		if o.Bones[i].Parent == bone {
			out = append(out, o.Bones[i].Name)
		}
	}

	return out
}

// ChildObjects returns the names of objects whose parent is the named
// object, in declared order.
//
// Complexity: O(V)
func (r *Rig) ChildObjects(name string) []string {
	var out []string
	for _, n := range r.order {
		if r.objects[n].Parent == name {
			out = append(out, n)
		}
	}

	return out
}
