package handler

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

func TestSession_GetState_NewGame(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))

	resp, err := h.GetState(context.Background(), &structpb.Struct{})
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}

	st := stateField(resp)
	if number(st, "level") != 1 || number(st, "score") != 0 {
		t.Errorf("state = level %v score %v", number(st, "level"), number(st, "score"))
	}
	fork := st["activeFork"].GetStructValue().GetFields()
	if fork["id"].GetStringValue() != "basic" {
		t.Errorf("activeFork = %v", fork["id"].GetStringValue())
	}
	if n := len(resp.GetFields()["popups"].GetListValue().GetValues()); n != 0 {
		t.Errorf("popups = %d, want 0", n)
	}
}

func TestSession_Spin(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))
	ctx := context.Background()

	resp, err := h.Spin(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("Spin() error = %v", err)
	}
	if !resp.GetFields()["ok"].GetBoolValue() {
		t.Fatal("Spin() ok = false")
	}
	if got := number(resp.GetFields(), "points"); got != 1 {
		t.Errorf("points = %v, want 1", got)
	}
	if got := number(stateField(resp), "totalSpins"); got != 1 {
		t.Errorf("totalSpins = %v, want 1", got)
	}

	popup := resp.GetFields()["popup"].GetStructValue().GetFields()
	if popup["id"].GetStringValue() == "" {
		t.Error("popup id is empty")
	}
	if got := number(popup, "x"); got != testCenter.X-100 {
		t.Errorf("popup x = %v, want %v", got, testCenter.X-100)
	}

	snapshot, err := h.GetState(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if n := len(snapshot.GetFields()["popups"].GetListValue().GetValues()); n != 1 {
		t.Errorf("popups = %d, want 1", n)
	}
}

func TestSession_Purchase(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))
	ctx := context.Background()

	_, err := h.Purchase(ctx, request(t, map[string]any{}))
	wantCode(t, err, codes.InvalidArgument)

	_, err = h.Purchase(ctx, request(t, map[string]any{"itemId": "silver", "usePremium": "yes"}))
	wantCode(t, err, codes.InvalidArgument)

	tests := []struct {
		name       string
		itemID     string
		usePremium bool
		wantReason string
	}{
		{"soft currency short", "silver", false, "insufficient_funds"},
		{"premium currency short", "golden_multiplier", true, "insufficient_funds"},
		{"no premium price", "marinara", true, "no_premium_price"},
		{"unknown item", "titanium", false, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.Purchase(ctx, request(t, map[string]any{
				"itemId":     tt.itemID,
				"usePremium": tt.usePremium,
			}))
			if err != nil {
				t.Fatalf("Purchase() error = %v", err)
			}
			if resp.GetFields()["ok"].GetBoolValue() {
				t.Fatal("Purchase() ok = true, want rejection")
			}
			if got := resp.GetFields()["reason"].GetStringValue(); got != tt.wantReason {
				t.Errorf("reason = %q, want %q", got, tt.wantReason)
			}
			if got := number(stateField(resp), "score"); got != 0 {
				t.Errorf("score = %v, want unchanged 0", got)
			}
		})
	}
}

func TestSession_PurchaseAfterDailyReward(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))
	ctx := context.Background()

	// First day's reward is 5000 points, enough for a sauce.
	if _, err := h.ClaimDailyReward(ctx, &structpb.Struct{}); err != nil {
		t.Fatalf("ClaimDailyReward() error = %v", err)
	}

	shop, err := h.GetShop(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("GetShop() error = %v", err)
	}
	var itemID string
	var price float64
	for _, v := range shop.GetFields()["items"].GetListValue().GetValues() {
		item := v.GetStructValue().GetFields()
		if item["category"].GetStringValue() == "sauces" && number(item, "price") <= 5000 {
			itemID = item["id"].GetStringValue()
			price = number(item, "price")
			break
		}
	}
	if itemID == "" {
		t.Fatal("no affordable sauce in the shop")
	}

	resp, err := h.Purchase(ctx, request(t, map[string]any{"itemId": itemID}))
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if !resp.GetFields()["ok"].GetBoolValue() {
		t.Fatalf("Purchase() rejected: %s", resp.GetFields()["reason"].GetStringValue())
	}
	if got := number(stateField(resp), "score"); got != 5000-price {
		t.Errorf("score = %v, want %v", got, 5000-price)
	}

	resp, err = h.Purchase(ctx, request(t, map[string]any{"itemId": itemID}))
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if got := resp.GetFields()["reason"].GetStringValue(); got != "already_owned" {
		t.Errorf("second purchase reason = %q", got)
	}
}

func TestSession_ClaimDailyReward(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))
	ctx := context.Background()

	resp, err := h.ClaimDailyReward(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("ClaimDailyReward() error = %v", err)
	}
	if !resp.GetFields()["ok"].GetBoolValue() {
		t.Fatal("first claim rejected")
	}
	reward := resp.GetFields()["reward"].GetStructValue().GetFields()
	if reward["type"].GetStringValue() != "score" || number(reward, "amount") != 5000 {
		t.Errorf("reward = %v", reward)
	}
	if got := number(stateField(resp), "dailyRewardStreak"); got != 1 {
		t.Errorf("dailyRewardStreak = %v, want 1", got)
	}

	resp, err = h.ClaimDailyReward(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("ClaimDailyReward() error = %v", err)
	}
	if got := resp.GetFields()["reason"].GetStringValue(); got != "already_claimed" {
		t.Errorf("reason = %q, want already_claimed", got)
	}
	if _, ok := resp.GetFields()["reward"]; ok {
		t.Error("rejected claim carries a reward")
	}
}

func TestSession_ClaimMissionReward(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))
	ctx := context.Background()

	_, err := h.ClaimMissionReward(ctx, &structpb.Struct{})
	wantCode(t, err, codes.InvalidArgument)

	resp, err := h.ClaimMissionReward(ctx, request(t, map[string]any{"missionId": "nope"}))
	if err != nil {
		t.Fatalf("ClaimMissionReward() error = %v", err)
	}
	if got := resp.GetFields()["reason"].GetStringValue(); got != "not_found" {
		t.Errorf("reason = %q, want not_found", got)
	}

	resp, err = h.ClaimMissionReward(ctx, request(t, map[string]any{"missionId": "daily_spins"}))
	if err != nil {
		t.Fatalf("ClaimMissionReward() error = %v", err)
	}
	if got := resp.GetFields()["reason"].GetStringValue(); got != "not_completed" {
		t.Errorf("reason = %q, want not_completed", got)
	}
}

func TestSession_UpdateSettings(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))
	ctx := context.Background()

	_, err := h.UpdateSettings(ctx, request(t, map[string]any{"language": "fr"}))
	wantCode(t, err, codes.InvalidArgument)

	_, err = h.UpdateSettings(ctx, request(t, map[string]any{"soundEnabled": 1}))
	wantCode(t, err, codes.InvalidArgument)

	resp, err := h.UpdateSettings(ctx, request(t, map[string]any{
		"soundEnabled": false,
		"language":     "en",
	}))
	if err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}
	settings := stateField(resp)["settings"].GetStructValue().GetFields()
	if settings["soundEnabled"].GetBoolValue() {
		t.Error("soundEnabled = true, want false")
	}
	if settings["language"].GetStringValue() != "en" {
		t.Errorf("language = %q", settings["language"].GetStringValue())
	}
	if !settings["vibrationEnabled"].GetBoolValue() {
		t.Error("vibrationEnabled changed by a partial update")
	}
}

func TestSession_Reset(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))
	ctx := context.Background()

	if _, err := h.Spin(ctx, &structpb.Struct{}); err != nil {
		t.Fatalf("Spin() error = %v", err)
	}

	_, err := h.Reset(ctx, &structpb.Struct{})
	wantCode(t, err, codes.FailedPrecondition)

	_, err = h.Reset(ctx, request(t, map[string]any{"confirm": false}))
	wantCode(t, err, codes.FailedPrecondition)

	resp, err := h.Reset(ctx, request(t, map[string]any{"confirm": true}))
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if got := number(stateField(resp), "totalSpins"); got != 0 {
		t.Errorf("totalSpins = %v, want 0", got)
	}
}

func TestSession_Gesture(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))
	ctx := context.Background()

	_, err := h.BeginGesture(ctx, request(t, map[string]any{"x": 1.0}))
	wantCode(t, err, codes.InvalidArgument)

	x, y := platePoint(0)
	resp, err := h.BeginGesture(ctx, request(t, map[string]any{"pointerId": 0, "x": x, "y": y}))
	if err != nil {
		t.Fatalf("BeginGesture() error = %v", err)
	}
	if !resp.GetFields()["accepted"].GetBoolValue() {
		t.Fatal("primary pointer not accepted")
	}

	resp, err = h.BeginGesture(ctx, request(t, map[string]any{"pointerId": 1, "x": x, "y": y}))
	if err != nil {
		t.Fatalf("BeginGesture() error = %v", err)
	}
	if resp.GetFields()["accepted"].GetBoolValue() {
		t.Error("second pointer accepted while a gesture is active")
	}

	spins := 0
	for deg := 10.0; deg <= 360; deg += 10 {
		x, y := platePoint(deg)
		resp, err := h.MoveGesture(ctx, request(t, map[string]any{"pointerId": 0, "x": x, "y": y}))
		if err != nil {
			t.Fatalf("MoveGesture() error = %v", err)
		}
		if resp.GetFields()["spun"].GetBoolValue() {
			spins++
			spin := resp.GetFields()["spin"].GetStructValue().GetFields()
			if number(spin, "points") != 1 {
				t.Errorf("spin points = %v", number(spin, "points"))
			}
		}
	}
	if spins != 1 {
		t.Errorf("spins = %d, want 1", spins)
	}

	if _, err := h.EndGesture(ctx, request(t, map[string]any{"pointerId": 0})); err != nil {
		t.Fatalf("EndGesture() error = %v", err)
	}
}

func TestSession_DismissPopup(t *testing.T) {
	h := NewSession(setupTestSession(t, state.NewMemoryStore()))
	ctx := context.Background()

	spin, err := h.Spin(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("Spin() error = %v", err)
	}
	id := spin.GetFields()["popup"].GetStructValue().GetFields()["id"].GetStringValue()

	for i, want := range []bool{true, false} {
		resp, err := h.DismissPopup(ctx, request(t, map[string]any{"popupId": id}))
		if err != nil {
			t.Fatalf("DismissPopup() error = %v", err)
		}
		if got := resp.GetFields()["dismissed"].GetBoolValue(); got != want {
			t.Errorf("call %d dismissed = %v, want %v", i, got, want)
		}
	}
}

func TestSession_StoreFailureIsInternal(t *testing.T) {
	store := state.NewMemoryStore()
	h := NewSession(setupTestSession(t, store))
	ctx := context.Background()

	store.FailSaves(errors.New("disk full"))
	_, err := h.Spin(ctx, &structpb.Struct{})
	wantCode(t, err, codes.Internal)

	_, err = h.ClaimDailyReward(ctx, &structpb.Struct{})
	wantCode(t, err, codes.Internal)

	store.FailSaves(nil)
	resp, err := h.GetState(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if got := number(stateField(resp), "totalSpins"); got != 0 {
		t.Errorf("totalSpins = %v after failed save, want 0", got)
	}
}

func TestSessionService_OverGRPC(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := state.NewRedisStore(client, state.RedisStoreConfig{})

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterSessionServiceServer(srv, NewSession(setupTestSession(t, store)))
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient() error = %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	resp := &structpb.Struct{}
	if err := conn.Invoke(ctx, "/"+SessionServiceName+"/ClaimDailyReward", &structpb.Struct{}, resp); err != nil {
		t.Fatalf("Invoke(ClaimDailyReward) error = %v", err)
	}
	if !resp.GetFields()["ok"].GetBoolValue() {
		t.Fatalf("ClaimDailyReward rejected: %v", resp.GetFields()["reason"])
	}

	err = conn.Invoke(ctx, "/"+SessionServiceName+"/Reset", &structpb.Struct{}, &structpb.Struct{})
	wantCode(t, err, codes.FailedPrecondition)

	stored, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("store.Load() error = %v", err)
	}
	if stored.Score != 5000 || !stored.DailyRewardClaimed {
		t.Errorf("stored = score %d claimed %v", stored.Score, stored.DailyRewardClaimed)
	}
}
