package repository_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/testutil"
	"github.com/google/uuid"
)

var seq atomic.Int64

func next(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, seq.Add(1))
}

type fixture struct {
	t     *testing.T
	ctx   context.Context
	store *repository.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, ctx: context.Background(), store: repository.New(testutil.NewDB(t))}
}

func (f *fixture) status(kind repository.StatusKind, tag string) uuid.UUID {
	f.t.Helper()
	st, err := f.store.GetStatusByTag(f.ctx, kind, tag)
	if err != nil {
		f.t.Fatalf("status %s/%s: %v", kind, tag, err)
	}
	return st.ID
}

func (f *fixture) account() *models.Account {
	f.t.Helper()
	name := next("user")
	a := &models.Account{
		Username:        name,
		Email:           name + "@example.com",
		Password:        "hashed",
		AccountStatusID: f.status(repository.StatusKindAccount, models.AccountStatusActive),
	}
	if err := f.store.CreateAccount(f.ctx, a); err != nil {
		f.t.Fatalf("create account: %v", err)
	}
	return a
}

func (f *fixture) image() *models.Image {
	f.t.Helper()
	img := &models.Image{FilePath: "/img/" + next("file") + ".png"}
	if err := f.store.CreateImage(f.ctx, img); err != nil {
		f.t.Fatalf("create image: %v", err)
	}
	return img
}

func (f *fixture) action() *models.Action {
	f.t.Helper()
	a := &models.Action{Name: next("action")}
	if err := f.store.CreateAction(f.ctx, a); err != nil {
		f.t.Fatalf("create action: %v", err)
	}
	return a
}

func (f *fixture) role(author uuid.UUID) *models.Role {
	f.t.Helper()
	r := &models.Role{Name: next("role"), AuthorID: author}
	if err := f.store.CreateRole(f.ctx, r); err != nil {
		f.t.Fatalf("create role: %v", err)
	}
	return r
}

func (f *fixture) setting(author uuid.UUID) *models.GameSetting {
	f.t.Helper()
	g := &models.GameSetting{Name: next("setting"), AuthorID: author}
	if err := f.store.CreateGameSetting(f.ctx, g); err != nil {
		f.t.Fatalf("create game setting: %v", err)
	}
	return g
}

func (f *fixture) room(setting uuid.UUID) *models.Room {
	f.t.Helper()
	r := &models.Room{
		Name:          next("room"),
		StatusID:      f.status(repository.StatusKindRoom, models.RoomStatusWaiting),
		GameSettingID: setting,
	}
	if err := f.store.CreateRoom(f.ctx, r); err != nil {
		f.t.Fatalf("create room: %v", err)
	}
	return r
}

func (f *fixture) event(action uuid.UUID) *models.GameEvent {
	f.t.Helper()
	e := &models.GameEvent{Name: next("event"), ActionID: action}
	if err := f.store.CreateGameEvent(f.ctx, e); err != nil {
		f.t.Fatalf("create game event: %v", err)
	}
	return e
}

func (f *fixture) player(account uuid.UUID, room, role *uuid.UUID) *models.Player {
	f.t.Helper()
	p := &models.Player{
		AccountID: account,
		StatusID:  f.status(repository.StatusKindPlayer, models.PlayerStatusJoined),
		RoomID:    room,
		RoleID:    role,
	}
	if err := f.store.CreatePlayer(f.ctx, p); err != nil {
		f.t.Fatalf("create player: %v", err)
	}
	return p
}

func (f *fixture) chat(author uuid.UUID, mafia bool) *models.Chat {
	f.t.Helper()
	c := &models.Chat{Text: next("hello"), AuthorID: author, IsMafiaChat: mafia}
	if err := f.store.CreateChat(f.ctx, c); err != nil {
		f.t.Fatalf("create chat: %v", err)
	}
	return c
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }
