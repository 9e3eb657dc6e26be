// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AccelByte/extend-macaroni-spin/pkg/common"
	"github.com/AccelByte/extend-macaroni-spin/pkg/game"
	"github.com/AccelByte/extend-macaroni-spin/pkg/popup"
	"github.com/AccelByte/extend-macaroni-spin/pkg/session"
	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// Session serves SessionService on top of a live game session.
type Session struct {
	session *session.Session
}

var _ SessionServiceServer = (*Session)(nil)

// NewSession creates a SessionService handler
func NewSession(s *session.Session) *Session {
	return &Session{session: s}
}

type operationResponse struct {
	OK     bool             `json:"ok"`
	Reason string           `json:"reason,omitempty"`
	Reward *state.Reward    `json:"reward,omitempty"`
	State  *state.GameState `json:"state"`
}

type spinResponse struct {
	OK                   bool             `json:"ok"`
	Points               int64            `json:"points"`
	LeveledUp            bool             `json:"leveledUp"`
	UnlockedAchievements []string         `json:"unlockedAchievements"`
	CompletedMissions    []string         `json:"completedMissions"`
	Direction            int              `json:"direction"`
	Popup                popup.Popup      `json:"popup"`
	State                *state.GameState `json:"state"`
}

type moveResponse struct {
	Spun     bool          `json:"spun"`
	Rotation float64       `json:"rotation"`
	Spin     *spinResponse `json:"spin,omitempty"`
}

func newSpinResponse(out session.SpinOutcome) *spinResponse {
	st := out.Result.State
	unlocked := out.Result.UnlockedAchievements
	if unlocked == nil {
		unlocked = []string{}
	}
	completed := out.Result.CompletedMissions
	if completed == nil {
		completed = []string{}
	}
	return &spinResponse{
		OK:                   true,
		Points:               out.Result.Points,
		LeveledUp:            out.Result.LeveledUp,
		UnlockedAchievements: unlocked,
		CompletedMissions:    completed,
		Direction:            out.Event.Direction,
		Popup:                out.Popup,
		State:                &st,
	}
}

// outcome turns an operation result into a response. Game rejections are
// reported in-band; anything else is an internal error.
func outcome(scope *common.Scope, op string, st state.GameState, rw *state.Reward, err error) (*structpb.Struct, error) {
	if err != nil {
		reason, ok := game.Reason(err)
		if !ok {
			scope.TraceError(err)
			scope.Log.Errorf("%s failed: %v", op, err)
			return nil, internalError(op, err)
		}
		scope.SetAttributes("reason", reason)
		return toStruct(operationResponse{OK: false, Reason: reason, State: &st})
	}
	return toStruct(operationResponse{OK: true, Reward: rw, State: &st})
}

// GetState returns the current game state together with the plate rotation and live popups.
func (h *Session) GetState(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.GetState")
	defer scope.Finish()

	st := h.session.Snapshot()
	popups := h.session.Popups()
	if popups == nil {
		popups = []popup.Popup{}
	}
	return toStruct(struct {
		State    state.GameState `json:"state"`
		Rotation float64         `json:"rotation"`
		Popups   []popup.Popup   `json:"popups"`
	}{st, h.session.Rotation(), popups})
}

// GetShop lists the shop with owned flags.
func (h *Session) GetShop(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.GetShop")
	defer scope.Finish()

	return toStruct(struct {
		Items []state.ShopItem `json:"items"`
	}{h.session.Shop()})
}

// Spin scores one revolution without a gesture.
func (h *Session) Spin(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.Spin")
	defer scope.Finish()

	out, err := h.session.Spin(scope.Ctx)
	if err != nil {
		scope.TraceError(err)
		return nil, internalError("spin", err)
	}
	return toStruct(newSpinResponse(out))
}

// Purchase buys a shop item. Request: {itemId, usePremium}.
func (h *Session) Purchase(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.Purchase")
	defer scope.Finish()

	itemID, err := requiredString(req, "itemId")
	if err != nil {
		return nil, err
	}
	usePremium, err := optionalBool(req, "usePremium")
	if err != nil {
		return nil, err
	}
	premium := usePremium != nil && *usePremium
	scope.SetAttributes("itemId", itemID)

	st, err := h.session.Purchase(scope.Ctx, itemID, premium)
	return outcome(scope, "purchase", st, nil, err)
}

// ClaimDailyReward grants today's reward.
func (h *Session) ClaimDailyReward(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.ClaimDailyReward")
	defer scope.Finish()

	st, rw, err := h.session.ClaimDailyReward(scope.Ctx)
	if err != nil {
		return outcome(scope, "claim daily reward", st, nil, err)
	}
	return outcome(scope, "claim daily reward", st, &rw, nil)
}

// ClaimMissionReward grants a completed mission's reward. Request: {missionId}.
func (h *Session) ClaimMissionReward(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.ClaimMissionReward")
	defer scope.Finish()

	missionID, err := requiredString(req, "missionId")
	if err != nil {
		return nil, err
	}
	scope.SetAttributes("missionId", missionID)

	st, rw, err := h.session.ClaimMissionReward(scope.Ctx, missionID)
	if err != nil {
		return outcome(scope, "claim mission reward", st, nil, err)
	}
	return outcome(scope, "claim mission reward", st, &rw, nil)
}

// UpdateSettings merges the settings present in the request.
func (h *Session) UpdateSettings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.UpdateSettings")
	defer scope.Finish()

	var patch state.SettingsPatch
	var err error
	if patch.SoundEnabled, err = optionalBool(req, "soundEnabled"); err != nil {
		return nil, err
	}
	if patch.VibrationEnabled, err = optionalBool(req, "vibrationEnabled"); err != nil {
		return nil, err
	}
	if patch.AutoSpin, err = optionalBool(req, "autoSpin"); err != nil {
		return nil, err
	}
	if patch.Language, err = optionalString(req, "language"); err != nil {
		return nil, err
	}
	if patch.Language != nil && !game.ValidLanguage(*patch.Language) {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported language %q", *patch.Language)
	}

	st, err := h.session.UpdateSettings(scope.Ctx, patch)
	return outcome(scope, "update settings", st, nil, err)
}

// Reset wipes all progress. The request must carry confirm=true.
func (h *Session) Reset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.Reset")
	defer scope.Finish()

	confirm, err := optionalBool(req, "confirm")
	if err != nil {
		return nil, err
	}
	if confirm == nil || !*confirm {
		return nil, status.Error(codes.FailedPrecondition, "reset requires confirm=true")
	}

	logrus.Warnf("player requested a progress reset")
	st, err := h.session.Reset(scope.Ctx)
	return outcome(scope, "reset", st, nil, err)
}

// SetCenter moves the plate center. Request: {x, y}.
func (h *Session) SetCenter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.SetCenter")
	defer scope.Finish()

	x, err := requiredNumber(req, "x")
	if err != nil {
		return nil, err
	}
	y, err := requiredNumber(req, "y")
	if err != nil {
		return nil, err
	}
	h.session.SetCenter(x, y)
	return toStruct(map[string]any{})
}

// BeginGesture starts a drag. Request: {pointerId, x, y}.
func (h *Session) BeginGesture(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.BeginGesture")
	defer scope.Finish()

	id, x, y, err := pointer(req, true)
	if err != nil {
		return nil, err
	}
	return toStruct(map[string]any{"accepted": h.session.BeginGesture(id, x, y)})
}

// MoveGesture feeds a pointer position and reports any completed spin.
func (h *Session) MoveGesture(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.MoveGesture")
	defer scope.Finish()

	id, x, y, err := pointer(req, true)
	if err != nil {
		return nil, err
	}

	out, err := h.session.MoveGesture(scope.Ctx, id, x, y)
	if err != nil {
		scope.TraceError(err)
		return nil, internalError("spin", err)
	}

	resp := moveResponse{Rotation: h.session.Rotation()}
	if out != nil {
		resp.Spun = true
		resp.Spin = newSpinResponse(*out)
		scope.TraceEvent("spin")
	}
	return toStruct(resp)
}

// EndGesture releases a pointer. Request: {pointerId}.
func (h *Session) EndGesture(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.EndGesture")
	defer scope.Finish()

	id, _, _, err := pointer(req, false)
	if err != nil {
		return nil, err
	}
	h.session.EndGesture(id)
	return toStruct(map[string]any{"rotation": h.session.Rotation()})
}

// DismissPopup removes a popup early. Request: {popupId}.
func (h *Session) DismissPopup(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Session.DismissPopup")
	defer scope.Finish()

	id, err := requiredString(req, "popupId")
	if err != nil {
		return nil, err
	}
	return toStruct(map[string]any{"dismissed": h.session.DismissPopup(id)})
}
