package scene

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/node"
)

// ErrNoMatch is returned when a keypath resolves to no property.
var ErrNoMatch = errors.New("scene: keypath matches no property")

// entry is one addressable level of the keypath tree.
type entry struct {
	name     string
	props    []keyframe.Property
	children []*entry
}

func nodeEntry(n *node.Node) *entry {
	e := &entry{name: norm.NFC.String(n.Name()), props: n.Properties()}
	for _, c := range n.Children() {
		e.children = append(e.children, nodeEntry(c))
	}
	return e
}

func layerEntry(l *layer) *entry {
	e := &entry{name: norm.NFC.String(l.m.Name)}
	e.children = append(e.children, &entry{name: "Transform", props: l.transform.Properties()})
	if len(l.masks) > 0 {
		masks := &entry{name: "Masks"}
		for _, k := range l.masks {
			masks.children = append(masks.children, &entry{name: norm.NFC.String(k.m.Name), props: k.props})
		}
		e.children = append(e.children, masks)
	}
	if l.remap != nil {
		e.props = append(e.props, l.remap)
	}
	if l.content != nil {
		// Text properties live on the layer; shape items sit directly
		// below it.
		e.props = append(e.props, l.content.Properties()...)
		for _, c := range l.content.Children() {
			e.children = append(e.children, nodeEntry(c))
		}
	}
	for _, c := range l.children {
		e.children = append(e.children, layerEntry(c))
	}
	return e
}

// splitKeypath splits a dot-separated keypath into NFC-normalized keys.
func splitKeypath(keypath string) []string {
	if keypath == "" {
		return nil
	}
	keys := strings.Split(norm.NFC.String(keypath), ".")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}
	return keys
}

// matchKey reports whether name matches key. "*" matches anything; a
// leading or trailing "*" matches by suffix or prefix.
func matchKey(key, name string) bool {
	switch {
	case key == "*":
		return true
	case len(key) > 1 && strings.HasPrefix(key, "*"):
		return strings.HasSuffix(name, key[1:])
	case len(key) > 1 && strings.HasSuffix(key, "*"):
		return strings.HasPrefix(name, key[:len(key)-1])
	}
	return key == name
}

// resolve collects the properties that keys address below e. The
// returned slice has no duplicates and follows tree order.
func (e *entry) resolve(keys []string) []keyframe.Property {
	var out []keyframe.Property
	seen := make(map[keyframe.Property]bool)
	add := func(p keyframe.Property) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	var walk func(e *entry, keys []string)
	walk = func(e *entry, keys []string) {
		if len(keys) == 0 {
			return
		}
		k := keys[0]
		if k == "**" {
			if len(keys) == 1 {
				e.each(add)
				return
			}
			walk(e, keys[1:])
			for _, c := range e.children {
				walk(c, keys)
			}
			return
		}
		if len(keys) == 1 {
			for _, p := range e.props {
				if matchKey(k, norm.NFC.String(p.Name())) {
					add(p)
				}
			}
			return
		}
		for _, c := range e.children {
			if matchKey(k, c.name) {
				walk(c, keys[1:])
			}
		}
	}
	walk(e, keys)
	return out
}

// each calls fn for every property at or below e.
func (e *entry) each(fn func(keyframe.Property)) {
	for _, p := range e.props {
		fn(p)
	}
	for _, c := range e.children {
		c.each(fn)
	}
}

// paths appends the full keypath of every property below e.
func (e *entry) paths(prefix string, out []string) []string {
	for _, p := range e.props {
		out = append(out, join(prefix, p.Name()))
	}
	for _, c := range e.children {
		out = c.paths(join(prefix, c.name), out)
	}
	return out
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// lookup resolves keypath or returns an error wrapping ErrNoMatch.
func (s *Scene) lookup(keypath string) ([]keyframe.Property, error) {
	props := s.keys.resolve(splitKeypath(keypath))
	if len(props) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, keypath)
	}
	return props, nil
}

// SetValue writes value as a keyframe at frame into every property that
// keypath matches. The value must have the property's value type;
// properties of another type are left untouched and reported as
// *keyframe.TypeError.
//
// Example:
//
//	err := s.SetValue(motion.V2(40, 40), "Logo.Shape 1.Rectangle.Size", 0)
func (s *Scene) SetValue(value any, keypath string, frame float64) error {
	props, err := s.lookup(keypath)
	if err != nil {
		return err
	}
	var errs []error
	for _, p := range props {
		if err := p.SetAny(value, frame); err != nil {
			errs = append(errs, fmt.Errorf("scene: %s: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetValueCallback attaches cb to every property that keypath matches. cb
// must be a keyframe.ValueCallback[T], or a plain function of the same
// signature, for the property's value type T.
//
// Example:
//
//	err := s.SetValueCallback(func(info keyframe.CallbackInfo[float64]) float64 {
//	    return info.Interpolated / 2
//	}, "**.Opacity")
func (s *Scene) SetValueCallback(cb any, keypath string) error {
	props, err := s.lookup(keypath)
	if err != nil {
		return err
	}
	var errs []error
	for _, p := range props {
		if err := p.SetCallbackAny(cb); err != nil {
			errs = append(errs, fmt.Errorf("scene: %s: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// ClearValueCallback detaches callbacks from every property that keypath
// matches.
func (s *Scene) ClearValueCallback(keypath string) error {
	props, err := s.lookup(keypath)
	if err != nil {
		return err
	}
	for _, p := range props {
		p.ClearCallback()
	}
	return nil
}

// Keypaths returns the full keypath of every addressable property, in
// layer order.
func (s *Scene) Keypaths() []string {
	return s.keys.paths("", nil)
}
