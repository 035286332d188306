// Command patterns runs the console demos for each design pattern in the
// collection. Pass a demo name as the first argument, or "all" (the
// default) to run every demo in order.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Shubham8223/LLD-patterns/internal/character"
	"github.com/Shubham8223/LLD-patterns/internal/coffee"
	"github.com/Shubham8223/LLD-patterns/internal/company"
	"github.com/Shubham8223/LLD-patterns/internal/furniture"
	"github.com/Shubham8223/LLD-patterns/internal/meal"
	"github.com/Shubham8223/LLD-patterns/internal/navigation"
	"github.com/Shubham8223/LLD-patterns/internal/payment"
	"github.com/Shubham8223/LLD-patterns/internal/shipping"
	"github.com/Shubham8223/LLD-patterns/internal/weather"
	"github.com/Shubham8223/LLD-patterns/pkg/create"
)

// Demo is one runnable console demo. Run prints to stdout and reports
// any failure instead of exiting.
type Demo func() error

func demos() *create.Factory[Demo] {
	f := create.NewFactory[Demo]()
	f.Register("prototype", func() Demo { return runPrototype })
	f.Register("factory", func() Demo { return runFactoryMethod })
	f.Register("abstractfactory", func() Demo { return runAbstractFactory })
	f.Register("observer", func() Demo { return runObserver })
	f.Register("decorator", func() Demo { return runDecorator })
	f.Register("composite", func() Demo { return runComposite })
	f.Register("builder", func() Demo { return runBuilder })
	f.Register("strategy", func() Demo { return runStrategy })
	f.Register("adapter", func() Demo { return runAdapter })
	return f
}

func main() {
	selector := "all"
	if len(os.Args) > 1 {
		selector = strings.ToLower(strings.TrimSpace(os.Args[1]))
	} else if stdinIsPiped() {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			if line := strings.ToLower(strings.TrimSpace(scanner.Text())); line != "" {
				selector = line
			}
		}
	}

	registry := demos()

	if selector == "all" {
		for _, name := range registry.Variants() {
			if err := runOne(registry, name); err != nil {
				fmt.Fprintf(os.Stderr, "demo %s failed: %v\n", name, err)
				os.Exit(1)
			}
		}
		return
	}

	if err := runOne(registry, selector); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprintf(os.Stderr, "available demos: %s, all\n", strings.Join(registry.Variants(), ", "))
		os.Exit(1)
	}
}

func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func runOne(registry *create.Factory[Demo], name string) error {
	demo, err := registry.Create(name)
	if err != nil {
		return err
	}
	fmt.Printf("=== %s ===\n", name)
	if err := demo(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func runPrototype() error {
	registry := character.Registry()

	for _, tag := range registry.Variants() {
		c, err := registry.Clone(tag)
		if err != nil {
			return err
		}
		fmt.Println(c.Details())
	}

	// Clones are independent: mutating one never touches the exemplar.
	hero, err := registry.Clone(character.Warrior)
	if err != nil {
		return err
	}
	hero.Name = "Red Sonja"
	hero.Skills = append(hero.Skills, "whirlwind")
	fmt.Println("Customized clone:", hero.Details())

	original, err := registry.Clone(character.Warrior)
	if err != nil {
		return err
	}
	fmt.Println("Fresh clone:", original.Details())
	return nil
}

func runFactoryMethod() error {
	catalog := shipping.Catalog()

	for _, tag := range []string{shipping.Air, shipping.Sea, shipping.Ground} {
		method, err := catalog.Create(tag)
		if err != nil {
			return err
		}
		fmt.Println(method.Book())
		fmt.Printf("Cost for 10kg over 500km: %.2f\n", method.Cost(10, 500))
	}

	_, err := catalog.Create("teleport")
	fmt.Println("Unknown method:", err)
	return nil
}

func runAbstractFactory() error {
	families := furniture.Families()

	for _, style := range families.Variants() {
		factory, err := families.Create(style)
		if err != nil {
			return err
		}
		fmt.Println(factory.NewChair().SitOn())
		fmt.Println(factory.NewSofa().LieOn())
	}
	return nil
}

func runObserver() error {
	station := weather.NewStation()

	phone := &weather.Display{Name: "Phone Display", Out: func(s string) { fmt.Println(s) }}
	window := &weather.Display{Name: "Window Display", Out: func(s string) { fmt.Println(s) }}

	station.Subscribe(phone)
	station.Subscribe(window)
	station.SetTemperature(25.0)

	station.Unsubscribe(window)
	station.SetTemperature(30.0)
	return nil
}

func runDecorator() error {
	order := coffee.WithWhippedCream(coffee.WithSugar(coffee.WithMilk(coffee.NewSimple())))
	fmt.Printf("%s costs %.1f\n", order.Description(), order.Cost())
	return nil
}

func runComposite() error {
	engineering := company.NewDivision(
		&company.Leaf{Name: "Backend Team"},
		&company.Leaf{Name: "Frontend Team"},
	)
	headOffice := company.NewDivision(
		engineering,
		&company.Leaf{Name: "Sales"},
	)

	for _, line := range headOffice.Describe() {
		fmt.Println(line)
	}
	return nil
}

func runBuilder() error {
	builders := meal.Builders()
	director := meal.Director()

	for _, tag := range []string{meal.Vegetarian, meal.NonVegetarian} {
		builder, err := builders.Create(tag)
		if err != nil {
			return err
		}
		m, err := director.Construct(builder)
		if err != nil {
			return err
		}
		fmt.Println(m.Describe())
	}

	// Extracting before every step has run is an error, not a partial
	// meal.
	partial := meal.NewVegetarianBuilder()
	if err := partial.Apply(meal.StepMain); err != nil {
		return err
	}
	_, err := partial.Extract()
	fmt.Println("Incomplete meal:", err)
	return nil
}

func runStrategy() error {
	strategies := navigation.Strategies()

	var navigator navigation.Navigator
	for _, tag := range []string{navigation.Driving, navigation.Walking, navigation.Cycling} {
		strategy, err := strategies.Create(tag)
		if err != nil {
			return err
		}
		navigator.SetStrategy(strategy)
		route, err := navigator.Navigate("Home", "Office")
		if err != nil {
			return err
		}
		fmt.Println(route)
	}
	return nil
}

func runAdapter() error {
	gateway := &payment.Gateway{Name: "NewPaymentGateway"}

	var processor payment.Processor = payment.NewGatewayAdapter(gateway)
	fmt.Println(processor.Process(150.75))
	return nil
}
