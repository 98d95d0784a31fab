package values

import "fmt"

// Class is a single-inheritance class value: its own method table plus a
// static-attribute table (shared storage for class-level `SetProperty`,
// spec §4.3). find_method walks to the superclass recursively (spec §4.4).
type Class struct {
	Name       string
	Super      *Class
	Methods    map[string]Callable
	StaticAttr map[string]Value
}

func NewClass(name string, super *Class) *Class {
	return &Class{Name: name, Super: super, Methods: map[string]Callable{}, StaticAttr: map[string]Value{}}
}

func (c *Class) Type() Type      { return ClassType }
func (c *Class) String() string  { return fmt.Sprintf("<class %s>", c.Name) }
func (c *Class) Inspect() string { return c.String() }

// FindMethod resolves a method by name starting at c, walking up the
// superclass chain. It also reports the class whose table actually held the
// declaration, needed to resolve `inherit` relative to the *declaring*
// class rather than the instance's dynamic class (spec §4.4).
func (c *Class) FindMethod(name string) (Callable, *Class, bool) {
	for cls := c; cls != nil; cls = cls.Super {
		if m, ok := cls.Methods[name]; ok {
			return m, cls, true
		}
	}
	return nil, nil, false
}

// Instance is a class instance: a mutable field map plus a pointer to its
// class for method dispatch (spec §3 Values, §4.4).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: map[string]Value{}}
}

func (i *Instance) Type() Type { return InstanceType }

func (i *Instance) String() string {
	return fmt.Sprintf("<%s instance>", i.Class.Name)
}

func (i *Instance) Inspect() string { return i.String() }
