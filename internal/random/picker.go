// Package random provides uniform choice over a list of options.
//
// Generated batches draw every slot independently from a candidate list.
// The package provides a crypto/rand backed implementation and a scripted
// fake for deterministic tests.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrNoOptions is returned when Pick is called with an empty list.
var ErrNoOptions = errors.New("no options to pick from")

// Picker chooses one element from a list of options.
type Picker interface {
	// Pick returns one of options.
	Pick(options []string) (string, error)
}

// CryptoPicker implements Picker using crypto/rand.
type CryptoPicker struct{}

// NewCryptoPicker creates a new CryptoPicker.
func NewCryptoPicker() *CryptoPicker {
	return &CryptoPicker{}
}

// Pick returns a uniformly chosen element of options.
func (p *CryptoPicker) Pick(options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(options))))
	if err != nil {
		return "", fmt.Errorf("failed to read random number: %w", err)
	}

	return options[n.Int64()], nil
}

// FakePicker implements Picker by returning options at scripted indices.
type FakePicker struct {
	indices []int
	next    int
	calls   int
}

// NewFakePicker creates a FakePicker that cycles through indices.
// With no indices it always picks the first option.
func NewFakePicker(indices ...int) *FakePicker {
	return &FakePicker{indices: indices}
}

// Pick returns options[i] for the next scripted index i, modulo len(options).
func (p *FakePicker) Pick(options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}
	p.calls++

	idx := 0
	if len(p.indices) > 0 {
		idx = p.indices[p.next%len(p.indices)]
		p.next++
	}

	return options[idx%len(options)], nil
}

// Calls returns how many times Pick succeeded.
func (p *FakePicker) Calls() int {
	return p.calls
}
