// Command splitwise runs the expense-sharing walkthrough: three users
// take a trip, split a shared expense equally, and settle balances.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/Shubham8223/LLD-patterns/internal/splitwise"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	store := splitwise.NewStore()
	users := splitwise.NewUserService(store)
	groups := splitwise.NewGroupService(store)
	expenses := splitwise.NewExpenseService(store)

	alice := users.AddUser(1, "Alice", "alice@example.com")
	bob := users.AddUser(2, "Bob", "bob@example.com")
	charlie := users.AddUser(3, "Charlie", "charlie@example.com")
	trio := []*splitwise.User{alice, bob, charlie}

	groups.CreateGroup(101, "Trip to Goa")
	for _, user := range trio {
		if err := groups.AddUserToGroup(101, user); err != nil {
			return err
		}
	}

	group, err := groups.GetGroup(101)
	if err != nil {
		return err
	}
	for _, line := range group.Describe() {
		fmt.Println(line)
	}

	shares, err := expenses.AddExpense(&splitwise.Expense{
		ID:           1001,
		Amount:       300.0,
		PaidBy:       alice,
		Participants: trio,
		Strategy:     splitwise.EqualSplit{},
	})
	if err != nil {
		return err
	}

	fmt.Println("\nExpense of 300.00 paid by Alice, split equally:")
	for _, user := range trio {
		fmt.Printf("User ID %d owes: %.2f\n", user.ID, shares[user.ID])
	}

	balances, err := expenses.Balances()
	if err != nil {
		return err
	}

	ids := make([]int, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Println("\nBalances:")
	for _, id := range ids {
		user, err := users.GetUser(id)
		if err != nil {
			return err
		}
		balance := balances[id]
		switch {
		case balance > 0:
			fmt.Printf("- %s is owed %.2f\n", user.Name, balance)
		case balance < 0:
			fmt.Printf("- %s owes %.2f\n", user.Name, -balance)
		default:
			fmt.Printf("- %s is settled up\n", user.Name)
		}
	}
	return nil
}
