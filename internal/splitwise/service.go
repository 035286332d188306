package splitwise

import "fmt"

// Store is the explicitly owned in-memory state shared by the services.
// Construct one in main and pass it down; there is no package-level
// instance.
type Store struct {
	users    map[int]*User
	groups   map[int]*Group
	expenses []*Expense
}

func NewStore() *Store {
	return &Store{
		users:  make(map[int]*User),
		groups: make(map[int]*Group),
	}
}

// UserService manages the user roster.
type UserService struct {
	store *Store
}

func NewUserService(store *Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) AddUser(id int, name, email string) *User {
	user := &User{ID: id, Name: name, Email: email}
	s.store.users[id] = user
	return user
}

func (s *UserService) GetUser(id int) (*User, error) {
	user, ok := s.store.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
	}
	return user, nil
}

// GroupService manages groups and membership.
type GroupService struct {
	store *Store
}

func NewGroupService(store *Store) *GroupService {
	return &GroupService{store: store}
}

func (s *GroupService) CreateGroup(id int, name string) *Group {
	group := &Group{ID: id, Name: name}
	s.store.groups[id] = group
	return group
}

func (s *GroupService) AddUserToGroup(groupID int, user *User) error {
	group, ok := s.store.groups[groupID]
	if !ok {
		return fmt.Errorf("group %d: %w", groupID, ErrGroupNotFound)
	}
	group.AddMember(user)
	return nil
}

func (s *GroupService) GetGroup(id int) (*Group, error) {
	group, ok := s.store.groups[id]
	if !ok {
		return nil, fmt.Errorf("group %d: %w", id, ErrGroupNotFound)
	}
	return group, nil
}

// ExpenseService records expenses and reports balances.
type ExpenseService struct {
	store *Store
}

func NewExpenseService(store *Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// AddExpense validates the split and records the expense. The returned
// shares are keyed by participant ID.
func (s *ExpenseService) AddExpense(expense *Expense) (map[int]float64, error) {
	shares, err := expense.Split()
	if err != nil {
		return nil, err
	}
	s.store.expenses = append(s.store.expenses, expense)
	return shares, nil
}

// Balances nets every recorded expense into one figure per user:
// positive means the user is owed money, negative means they owe.
func (s *ExpenseService) Balances() (map[int]float64, error) {
	balances := make(map[int]float64)
	for _, expense := range s.store.expenses {
		shares, err := expense.Split()
		if err != nil {
			return nil, err
		}
		for userID, share := range shares {
			if userID == expense.PaidBy.ID {
				continue
			}
			balances[userID] -= share
			balances[expense.PaidBy.ID] += share
		}
	}
	return balances, nil
}
