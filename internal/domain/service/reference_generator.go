package service

// ReferenceGenerator produces order references at checkout completion.
// References are random and never checked for uniqueness.
type ReferenceGenerator interface {
	Generate() string
}
