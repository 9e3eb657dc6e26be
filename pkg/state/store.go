// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultKey is the storage key of the single player record.
const DefaultKey = "macaroni-spin-mania"

// ErrStateNotFound is returned by Load when no record has been saved yet.
var ErrStateNotFound = errors.New("game state not found")

// Store persists the whole GameState under one key. Save is a full overwrite.
type Store interface {
	Load(ctx context.Context) (*GameState, error)
	Save(ctx context.Context, s *GameState) error
}

func encode(s *GameState) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*GameState, error) {
	var s GameState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return &s, nil
}
