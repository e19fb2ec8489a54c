package indexcache

import "fmt"

type constError string

// ErrUnknownPolicy may be returned from [NewStore].
const ErrUnknownPolicy = constError("unknown cache policy")

func (errStr constError) Error() string { return string(errStr) }

func unknownPolicyError(policy Policy) error {
	return fmt.Errorf("%w: %d", ErrUnknownPolicy, policy)
}
