package rules

import "errors"

var (
	// ErrUnknownTile indicates a symbol outside the rule's alphabet.
	ErrUnknownTile = errors.New("rules: unknown tile")
	// ErrRejected indicates a pipe that cannot be entered with the given heading.
	ErrRejected = errors.New("rules: pipe does not accept heading")
	// ErrNoStartShape indicates no pipe shape fits the start tile's neighbors.
	ErrNoStartShape = errors.New("rules: no pipe shape fits the start tile")
)
