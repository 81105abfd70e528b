/*
File    : lox/interp/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

// Class and Instance are deliberately minimal: orig §4.4's class support
// is a stub (named type, zero-arity construction, no fields, no
// methods, no inheritance — those are listed Non-goals). Grounded on
// objects/struct.go's instance shape, stripped down to just a name on
// the Class and a pointer back to its Class on the Instance, enough to
// show a reader an instance really is a distinct value from its class.
type Class struct {
	Name string
}

func NewClass(name string) *Class {
	return &Class{Name: name}
}

func (c *Class) Arity() int { return 0 }

func (c *Class) String() string { return c.Name }

// Call produces a fresh, empty Instance. Classes carry no initializer
// in this subset, so args is always empty.
func (c *Class) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return &Instance{class: c}, nil
}

// Instance is a single object created from a Class. It has no fields or
// methods in this subset; it exists so `var x = SomeClass();` produces
// a distinct, printable value per orig §4.4's class stub.
type Instance struct {
	class *Class
}

func (i *Instance) String() string {
	return i.class.Name + " instance"
}
