// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package game

import (
	"errors"

	"github.com/AccelByte/extend-macaroni-spin/pkg/reward"
)

// Rejections returned by the reducer. The accompanying state is always the input state.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrAlreadyClaimed    = errors.New("daily reward already claimed")
	ErrNotFound          = errors.New("not found")
	ErrNotCompleted      = errors.New("mission not completed")
	ErrNoPremiumPrice    = errors.New("item has no premium price")
	ErrUnsupportedReward = reward.ErrUnsupportedReward
	ErrInvalidReward     = reward.ErrInvalidReward
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrInsufficientFunds, "insufficient_funds"},
	{ErrAlreadyOwned, "already_owned"},
	{ErrAlreadyClaimed, "already_claimed"},
	{ErrNotFound, "not_found"},
	{ErrNotCompleted, "not_completed"},
	{ErrNoPremiumPrice, "no_premium_price"},
	{ErrUnsupportedReward, "unsupported_reward"},
	{ErrInvalidReward, "invalid_reward"},
}

// Reason maps a rejection to a stable machine-readable code.
// ok is false for errors that are not game rejections.
func Reason(err error) (reason string, ok bool) {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason, true
		}
	}
	return "", false
}

// IsRejection reports whether err is a game rule rejection rather than an infrastructure failure.
func IsRejection(err error) bool {
	_, ok := Reason(err)
	return ok
}
