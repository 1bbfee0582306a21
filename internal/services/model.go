package services

// Model is the part of a compiled model the dispatcher needs.
type Model interface {
	// Name is printed in output headers.
	Name() string
	// NumParamsR is the number of unconstrained real parameters.
	NumParamsR() int
}
