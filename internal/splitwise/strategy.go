package splitwise

import (
	"fmt"
	"math"
)

// reconcileTolerance absorbs float drift when validating that explicit
// shares add up to the expense amount.
const reconcileTolerance = 0.01

// SplitStrategy computes each participant's share of an amount, keyed
// by user ID.
type SplitStrategy interface {
	Shares(amount float64, participants []*User) (map[int]float64, error)
}

// EqualSplit divides the amount evenly among all participants.
type EqualSplit struct{}

func (EqualSplit) Shares(amount float64, participants []*User) (map[int]float64, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	share := amount / float64(len(participants))
	shares := make(map[int]float64, len(participants))
	for _, user := range participants {
		shares[user.ID] = share
	}
	return shares, nil
}

// ExactSplit assigns the given amounts positionally; they must sum to
// the expense amount.
type ExactSplit struct {
	Amounts []float64
}

func (s ExactSplit) Shares(amount float64, participants []*User) (map[int]float64, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if len(s.Amounts) != len(participants) {
		return nil, fmt.Errorf("%d amounts for %d participants: %w", len(s.Amounts), len(participants), ErrShareMismatch)
	}

	var total float64
	shares := make(map[int]float64, len(participants))
	for i, user := range participants {
		shares[user.ID] = s.Amounts[i]
		total += s.Amounts[i]
	}
	if math.Abs(total-amount) > reconcileTolerance {
		return nil, fmt.Errorf("amounts sum to %.2f, expense is %.2f: %w", total, amount, ErrShareMismatch)
	}
	return shares, nil
}

// PercentSplit assigns percentages positionally; they must sum to 100.
type PercentSplit struct {
	Percents []float64
}

func (s PercentSplit) Shares(amount float64, participants []*User) (map[int]float64, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if len(s.Percents) != len(participants) {
		return nil, fmt.Errorf("%d percents for %d participants: %w", len(s.Percents), len(participants), ErrShareMismatch)
	}

	var total float64
	for _, p := range s.Percents {
		total += p
	}
	if math.Abs(total-100) > reconcileTolerance {
		return nil, fmt.Errorf("percents sum to %.2f: %w", total, ErrShareMismatch)
	}

	shares := make(map[int]float64, len(participants))
	for i, user := range participants {
		shares[user.ID] = amount * s.Percents[i] / 100
	}
	return shares, nil
}
