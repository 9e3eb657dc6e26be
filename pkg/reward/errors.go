package reward

import "errors"

var (
	// ErrUnsupportedReward indicates that no applier is registered for the reward kind.
	ErrUnsupportedReward = errors.New("reward kind not supported")

	// ErrInvalidReward indicates a reward whose payload cannot be applied.
	ErrInvalidReward = errors.New("invalid reward")
)
