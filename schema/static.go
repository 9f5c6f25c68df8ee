package schema

// staticType is a fixed InstanceCount TypeHandle.
type staticType struct {
	instanceCount uint64
}

func (t staticType) InstanceCount() uint64 { return t.instanceCount }

// Static is an in-memory Graph implementation for tests and examples. It
// has no notion of scopes: GetType ignores any scope arguments and looks
// up by name alone.
type Static struct {
	types              map[string]uint64
	typeCount          uint64
	attributeTypeCount uint64
}

// NewStatic returns a Static schema graph. types maps a type label to its
// instance count; typeCount and attributeTypeCount are reported verbatim by
// TypeCount and AttributeTypeCount.
func NewStatic(types map[string]uint64, typeCount, attributeTypeCount uint64) *Static {
	cp := make(map[string]uint64, len(types))
	for k, v := range types {
		cp[k] = v
	}
	return &Static{types: cp, typeCount: typeCount, attributeTypeCount: attributeTypeCount}
}

func (s *Static) GetType(name string, _ ...string) (TypeHandle, bool) {
	count, ok := s.types[name]
	if !ok {
		return nil, false
	}
	return staticType{instanceCount: count}, true
}

func (s *Static) TypeCount() uint64 { return s.typeCount }

func (s *Static) AttributeTypeCount() uint64 { return s.attributeTypeCount }

// staticGuard is a ReadGuard that is always held.
type staticGuard struct{}

func (staticGuard) Held() bool { return true }

// NewStaticGuard returns a ReadGuard suitable for tests and examples: one
// that reports itself as always held.
func NewStaticGuard() ReadGuard { return staticGuard{} }
