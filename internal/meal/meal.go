// Package meal demonstrates the builder pattern: a meal assembled dish
// by dish through a fixed step order driven by a director.
package meal

import (
	"strings"

	"github.com/Shubham8223/LLD-patterns/pkg/create"
)

// Step names understood by every meal builder, in director order.
const (
	StepMain  = "main"
	StepSide  = "side"
	StepDrink = "drink"
)

// Builder tags accepted by Builders.
const (
	Vegetarian    = "vegetarian"
	NonVegetarian = "nonvegetarian"
)

// Meal is the finished product: dishes in the order they were added.
type Meal struct {
	Dishes []string
}

// Describe renders the meal the way the console demos print it.
func (m *Meal) Describe() string {
	return "Meal includes: " + strings.Join(m.Dishes, " ")
}

// MealBuilder accumulates dishes step by step. Each step contributes one
// dish; applying a step twice adds its dish twice, in call order.
type MealBuilder struct {
	create.Progress
	dishes map[string]string
	meal   *Meal
}

func newMealBuilder(dishes map[string]string) *MealBuilder {
	return &MealBuilder{
		Progress: create.NewProgress(StepMain, StepSide, StepDrink),
		dishes:   dishes,
		meal:     &Meal{},
	}
}

// Apply adds the dish this builder contributes for step.
func (b *MealBuilder) Apply(step string) error {
	dish, ok := b.dishes[step]
	if !ok {
		return create.ErrUnknownStep
	}
	b.meal.Dishes = append(b.meal.Dishes, dish)
	b.Mark(step)
	return nil
}

// Extract returns the finished meal and resets the builder. Extracting
// before every step has run fails with create.ErrIncompleteBuild.
func (b *MealBuilder) Extract() (*Meal, error) {
	if err := b.Done(); err != nil {
		return nil, err
	}
	meal := b.meal
	b.meal = &Meal{}
	b.Reset()
	return meal, nil
}

// NewVegetarianBuilder builds Vegetarian Burger, Salad, Lemonade.
func NewVegetarianBuilder() *MealBuilder {
	return newMealBuilder(map[string]string{
		StepMain:  "Vegetarian Burger",
		StepSide:  "Salad",
		StepDrink: "Lemonade",
	})
}

// NewNonVegetarianBuilder builds Chicken Burger, Fries, Coke.
func NewNonVegetarianBuilder() *MealBuilder {
	return newMealBuilder(map[string]string{
		StepMain:  "Chicken Burger",
		StepSide:  "Fries",
		StepDrink: "Coke",
	})
}

// Builders returns a factory over the known meal builders.
func Builders() *create.Factory[*MealBuilder] {
	f := create.NewFactory[*MealBuilder]()
	f.Register(Vegetarian, func() *MealBuilder { return NewVegetarianBuilder() })
	f.Register(NonVegetarian, func() *MealBuilder { return NewNonVegetarianBuilder() })
	return f
}

// Director returns the fixed main-side-drink construction order shared
// by every meal builder.
func Director() *create.Director[*Meal] {
	return create.NewDirector[*Meal](StepMain, StepSide, StepDrink)
}
