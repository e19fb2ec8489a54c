package wheelist

import "fmt"

type constError string

const (
	// ErrInvalidIndex may be returned from [List.Insert] and [List.Delete].
	ErrInvalidIndex = constError("invalid index")
	// ErrEmpty may be returned from [List.Delete].
	ErrEmpty = constError("list empty")
	// ErrNilKeyFunc may be returned from [New] and [NewWheel].
	ErrNilKeyFunc = constError("key function must not be nil")
	// ErrUnknownPolicy may be returned from [New] and [NewWheel].
	ErrUnknownPolicy = constError("unknown cache policy")
)

func (errStr constError) Error() string { return string(errStr) }

func indexError(index, bound int) error {
	return fmt.Errorf(
		"%w: %d is outside of [0,%d]",
		ErrInvalidIndex, index, bound)
}

func emptyError(index int) error {
	return fmt.Errorf(
		"%w: cannot delete index %d",
		ErrEmpty, index)
}
