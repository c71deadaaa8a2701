package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/google/uuid"
)

func TestAccountRoundTrip(t *testing.T) {
	f := newFixture(t)
	acc := &models.Account{
		Username:        "  alice ",
		Email:           "Alice@Example.COM",
		Password:        "hashed",
		AccountStatusID: f.status(repository.StatusKindAccount, models.AccountStatusActive),
	}
	if err := f.store.CreateAccount(f.ctx, acc); err != nil {
		t.Fatalf("create: %v", err)
	}
	if acc.ID == uuid.Nil {
		t.Fatal("expected an id to be assigned")
	}

	got, err := f.store.GetAccountByEmail(f.ctx, "ALICE@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.Username != "alice" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected normalization: %q %q", got.Username, got.Email)
	}

	got.BioInfo = "plays the doctor"
	got.IsEmailVerified = true
	if err := f.store.UpdateAccount(f.ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, err := f.store.GetAccountByUsername(f.ctx, "alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if again.BioInfo != "plays the doctor" || !again.IsEmailVerified {
		t.Fatalf("update not persisted: %+v", again)
	}
}

func TestAccountValidation(t *testing.T) {
	f := newFixture(t)
	active := f.status(repository.StatusKindAccount, models.AccountStatusActive)

	tests := []struct {
		name string
		acc  models.Account
	}{
		{"empty username", models.Account{Email: "a@b.c", Password: "x", AccountStatusID: active}},
		{"bad email", models.Account{Username: next("u"), Email: "nope", Password: "x", AccountStatusID: active}},
		{"no password", models.Account{Username: next("u"), Email: next("u") + "@b.c", AccountStatusID: active}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := tt.acc
			if err := f.store.CreateAccount(f.ctx, &acc); !errors.Is(err, repository.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	f := newFixture(t)
	a := &models.Action{ID: uuid.New(), Name: next("action")}
	if err := f.store.UpdateAction(f.ctx, a); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.store.GetImage(f.ctx, uuid.New()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoomAccessCodeGeneration(t *testing.T) {
	f := newFixture(t)
	room := f.room(f.setting(f.account().ID).ID)
	if len(room.AccessCode) != models.AccessCodeLength {
		t.Fatalf("expected generated code of length %d, got %q", models.AccessCodeLength, room.AccessCode)
	}
	if repository.NormalizeAccessCode(room.AccessCode) != room.AccessCode {
		t.Fatalf("generated code %q is not normalized", room.AccessCode)
	}

	got, err := f.store.GetRoomByAccessCode(f.ctx, room.AccessCode)
	if err != nil {
		t.Fatalf("lookup by code: %v", err)
	}
	if got.ID != room.ID {
		t.Fatalf("expected room %s, got %s", room.ID, got.ID)
	}
}

func TestRoomValidation(t *testing.T) {
	f := newFixture(t)
	setting := f.setting(f.account().ID)
	waiting := f.status(repository.StatusKindRoom, models.RoomStatusWaiting)
	start := time.Now().UTC()
	end := start.Add(-time.Hour)

	tests := []struct {
		name string
		room models.Room
	}{
		{"short code", models.Room{Name: next("room"), AccessCode: "AB1", StatusID: waiting, GameSettingID: setting.ID}},
		{"end before start", models.Room{Name: next("room"), StatusID: waiting, GameSettingID: setting.ID, GameStartTime: &start, GameEndTime: &end}},
		{"blank name", models.Room{Name: "  ", StatusID: waiting, GameSettingID: setting.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := tt.room
			if err := f.store.CreateRoom(f.ctx, &room); !errors.Is(err, repository.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestGameSettingQuotas(t *testing.T) {
	f := newFixture(t)
	acc := f.account()
	setting := f.setting(acc.ID)
	role := f.role(acc.ID)

	if _, err := f.store.AddGameSettingRole(f.ctx, setting.ID, role.ID, 0); !errors.Is(err, repository.ErrValidation) {
		t.Fatalf("expected ErrValidation for zero count, got %v", err)
	}
	if _, err := f.store.AddGameSettingRole(f.ctx, setting.ID, role.ID, 2); err != nil {
		t.Fatalf("add quota: %v", err)
	}
	quota, err := f.store.SetGameSettingRoleCount(f.ctx, setting.ID, role.ID, 4)
	if err != nil {
		t.Fatalf("set count: %v", err)
	}
	if quota.Count != 4 {
		t.Fatalf("expected count 4, got %d", quota.Count)
	}

	quotas, err := f.store.ListGameSettingRoles(f.ctx, setting.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quotas) != 1 || quotas[0].Count != 4 {
		t.Fatalf("unexpected quotas: %+v", quotas)
	}

	if err := f.store.RemoveGameSettingRole(f.ctx, setting.ID, role.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := f.store.SetGameSettingRoleCount(f.ctx, setting.ID, role.ID, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after removal, got %v", err)
	}
}

func TestGameEventsOrderedByNight(t *testing.T) {
	f := newFixture(t)
	action := f.action()
	neg := -time.Second
	if err := f.store.CreateGameEvent(f.ctx, &models.GameEvent{Name: next("event"), ActionID: action.ID, Timer: &neg}); !errors.Is(err, repository.ErrValidation) {
		t.Fatalf("expected ErrValidation for negative timer, got %v", err)
	}

	timer := 30 * time.Second
	late := &models.GameEvent{Name: next("late"), ActionID: action.ID, NightOrder: 5, Timer: &timer}
	early := &models.GameEvent{Name: next("early"), ActionID: action.ID, NightOrder: 1}
	for _, e := range []*models.GameEvent{late, early} {
		if err := f.store.CreateGameEvent(f.ctx, e); err != nil {
			t.Fatalf("create event: %v", err)
		}
	}

	events, err := f.store.ListGameEvents(f.ctx, repository.Page{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 || events[0].ID != early.ID {
		t.Fatalf("expected early event first, got %+v", events)
	}
	if events[1].Timer == nil || *events[1].Timer != timer {
		t.Fatalf("expected timer %v, got %v", timer, events[1].Timer)
	}
}

func TestListChatsByRoomHidesMafiaChat(t *testing.T) {
	f := newFixture(t)
	acc := f.account()
	room := f.room(f.setting(acc.ID).ID)
	p := f.player(acc.ID, ptr(room.ID), nil)
	outsider := f.player(f.account().ID, nil, nil)

	f.chat(p.ID, false)
	f.chat(p.ID, true)
	f.chat(outsider.ID, false)

	public, err := f.store.ListChatsByRoom(f.ctx, room.ID, false, repository.Page{})
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 1 || public[0].IsMafiaChat {
		t.Fatalf("expected one public chat, got %+v", public)
	}

	all, err := f.store.ListChatsByRoom(f.ctx, room.ID, true, repository.Page{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected two chats, got %d", len(all))
	}
}

func TestReplies(t *testing.T) {
	f := newFixture(t)
	p := f.player(f.account().ID, nil, nil)
	original := f.chat(p.ID, false)
	answer := f.chat(p.ID, false)

	if _, err := f.store.CreateReply(f.ctx, original.ID, original.ID); !errors.Is(err, repository.ErrValidation) {
		t.Fatalf("expected ErrValidation for self reply, got %v", err)
	}
	if _, err := f.store.CreateReply(f.ctx, original.ID, answer.ID); err != nil {
		t.Fatalf("create reply: %v", err)
	}

	replies, err := f.store.ListReplies(f.ctx, original.ID)
	if err != nil {
		t.Fatalf("list replies: %v", err)
	}
	if len(replies) != 1 || replies[0].ID != answer.ID {
		t.Fatalf("unexpected replies: %+v", replies)
	}
}

func TestPlayerLinks(t *testing.T) {
	f := newFixture(t)
	acc := f.account()
	p := f.player(acc.ID, nil, nil)
	action := f.action()
	event := f.event(action.ID)

	if _, err := f.store.AddPlayerActionOverride(f.ctx, p.ID, action.ID, false); err != nil {
		t.Fatalf("add override: %v", err)
	}
	overrides, err := f.store.ListPlayerActionOverrides(f.ctx, p.ID)
	if err != nil {
		t.Fatalf("list overrides: %v", err)
	}
	if len(overrides) != 1 || overrides[0].IsAllowed {
		t.Fatalf("expected explicit false to persist, got %+v", overrides)
	}
	if _, err := f.store.SetPlayerActionOverride(f.ctx, p.ID, action.ID, true); err != nil {
		t.Fatalf("set override: %v", err)
	}

	if _, err := f.store.AddPlayerInfluenceEvent(f.ctx, p.ID, event.ID); err != nil {
		t.Fatalf("add influence event: %v", err)
	}
	influenced, err := f.store.ListPlayerInfluenceEvents(f.ctx, p.ID)
	if err != nil || len(influenced) != 1 {
		t.Fatalf("list influence events: %v %d", err, len(influenced))
	}
	if err := f.store.RemovePlayerInfluenceEvent(f.ctx, p.ID, event.ID); err != nil {
		t.Fatalf("remove influence event: %v", err)
	}

	role := f.role(acc.ID)
	if _, err := f.store.AddRoleAction(f.ctx, role.ID, action.ID); err != nil {
		t.Fatalf("add role action: %v", err)
	}
	actions, err := f.store.ListRoleActions(f.ctx, role.ID)
	if err != nil {
		t.Fatalf("list role actions: %v", err)
	}
	if len(actions) != 1 || actions[0].ID != action.ID {
		t.Fatalf("unexpected role actions: %+v", actions)
	}
}

func TestStatuses(t *testing.T) {
	f := newFixture(t)
	if _, err := f.store.ListStatuses(f.ctx, repository.StatusKind("weather")); !errors.Is(err, repository.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown kind, got %v", err)
	}

	rows, err := f.store.ListStatuses(f.ctx, repository.StatusKindRoom)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 seeded room statuses, got %d", len(rows))
	}

	st, err := f.store.CreateStatus(f.ctx, repository.StatusKindRoom, "paused")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	renamed, err := f.store.RenameStatus(f.ctx, repository.StatusKindRoom, st.ID, "on_hold")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Tag != "on_hold" {
		t.Fatalf("expected on_hold, got %q", renamed.Tag)
	}
	if _, err := f.store.CreateStatus(f.ctx, repository.StatusKindRoom, models.RoomStatusWaiting); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate tag, got %v", err)
	}
}

func TestPageBounds(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		f.action()
	}
	got, err := f.store.ListActions(f.ctx, repository.Page{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	rest, err := f.store.ListActions(f.ctx, repository.Page{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rest) != 1 {
		t.Fatalf("expected 1, got %d", len(rest))
	}
}

func TestOpenRoomSeatsCreator(t *testing.T) {
	f := newFixture(t)
	acc := f.account()
	setting := f.setting(acc.ID)

	room := &models.Room{
		Name:          "lobby",
		GameSettingID: setting.ID,
		StatusID:      f.status(repository.StatusKindRoom, models.RoomStatusWaiting),
	}
	host := &models.Player{AccountID: acc.ID, StatusID: f.status(repository.StatusKindPlayer, models.PlayerStatusJoined)}
	if err := f.store.OpenRoom(f.ctx, room, host); err != nil {
		t.Fatalf("open room: %v", err)
	}

	got, err := f.store.GetRoomCreator(f.ctx, room.ID)
	if err != nil {
		t.Fatalf("get creator: %v", err)
	}
	if got.ID != host.ID || got.AccountID != acc.ID || !got.IsRoomCreator {
		t.Fatalf("unexpected creator %+v", got)
	}

	// a guest is not the creator
	f.player(f.account().ID, ptr(room.ID), nil)
	if got, _ := f.store.GetRoomCreator(f.ctx, room.ID); got.ID != host.ID {
		t.Fatalf("creator changed to %s", got.ID)
	}
}

func TestOpenRoomRollsBackOnBadHost(t *testing.T) {
	f := newFixture(t)
	setting := f.setting(f.account().ID)

	room := &models.Room{
		Name:          "ghost-town",
		GameSettingID: setting.ID,
		StatusID:      f.status(repository.StatusKindRoom, models.RoomStatusWaiting),
	}
	host := &models.Player{AccountID: uuid.New(), StatusID: f.status(repository.StatusKindPlayer, models.PlayerStatusJoined)}
	err := f.store.OpenRoom(f.ctx, room, host)
	if !errors.Is(err, repository.ErrReferentialIntegrity) {
		t.Fatalf("expected referential integrity error, got %v", err)
	}
	if _, err := f.store.GetRoomByAccessCode(f.ctx, room.AccessCode); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected room rolled back, got %v", err)
	}
}

func TestGetRoomCreatorMissing(t *testing.T) {
	f := newFixture(t)
	room := f.room(f.setting(f.account().ID).ID)
	f.player(f.account().ID, ptr(room.ID), nil)

	if _, err := f.store.GetRoomCreator(f.ctx, room.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
