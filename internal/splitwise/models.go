// Package splitwise is a small expense-sharing system: users form
// groups, expenses are split among participants by a pluggable strategy,
// and balances report who owes whom.
package splitwise

import "fmt"

type User struct {
	ID    int
	Name  string
	Email string
}

type Group struct {
	ID      int
	Name    string
	Members []*User
}

// AddMember appends user to the group.
func (g *Group) AddMember(user *User) {
	g.Members = append(g.Members, user)
}

// Describe renders the group roster as console lines.
func (g *Group) Describe() []string {
	lines := []string{fmt.Sprintf("Group: %s [ID: %d] Members:", g.Name, g.ID)}
	for _, user := range g.Members {
		lines = append(lines, fmt.Sprintf("- %s (%s)", user.Name, user.Email))
	}
	return lines
}

// Expense is one payment made by PaidBy on behalf of Participants.
type Expense struct {
	ID           int
	Amount       float64
	PaidBy       *User
	Participants []*User
	Strategy     SplitStrategy
}

// Split computes each participant's share under the expense's strategy,
// keyed by user ID.
func (e *Expense) Split() (map[int]float64, error) {
	shares, err := e.Strategy.Shares(e.Amount, e.Participants)
	if err != nil {
		return nil, fmt.Errorf("expense %d: %w", e.ID, err)
	}
	return shares, nil
}
