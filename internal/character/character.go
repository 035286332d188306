// Package character demonstrates the prototype pattern: game characters
// cloned from registered exemplars instead of rebuilt from scratch.
package character

import (
	"fmt"

	"github.com/Shubham8223/LLD-patterns/pkg/create"
)

// Exemplar tags registered by Registry.
const (
	Warrior = "warrior"
	Mage    = "mage"
	Archer  = "archer"
)

// Character is a playable unit. Skills is the mutable part that makes
// deep copying observable.
type Character struct {
	Name   string
	Class  string
	Skills []string
}

// Clone returns a deep copy; the clone's skill list is independent of
// the original's.
func (c *Character) Clone() *Character {
	return &Character{
		Name:   c.Name,
		Class:  c.Class,
		Skills: append([]string(nil), c.Skills...),
	}
}

// Details renders the character the way the console demos print it.
func (c *Character) Details() string {
	return fmt.Sprintf("%s: %s", c.Class, c.Name)
}

// Registry returns a prototype registry seeded with the stock exemplars.
func Registry() *create.Prototypes[*Character] {
	r := create.NewPrototypes[*Character]()
	r.Register(Warrior, &Character{Name: "Conan", Class: "Warrior", Skills: []string{"slash", "charge"}})
	r.Register(Mage, &Character{Name: "Gandalf", Class: "Mage", Skills: []string{"fireball", "shield"}})
	r.Register(Archer, &Character{Name: "Legolas", Class: "Archer", Skills: []string{"volley"}})
	return r
}
