package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/ayumu/zukan/internal/store"
)

type stubProfileRepo struct {
	profiles map[string]*store.Profile
	nextID   int
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*store.Profile), nextID: 1}
}

func (s *stubProfileRepo) Create(_ context.Context, name string) (*store.Profile, error) {
	if _, ok := s.profiles[name]; ok {
		return nil, errors.New("exists")
	}
	p := &store.Profile{ID: s.nextID, Name: name}
	s.nextID++
	s.profiles[name] = p
	return p, nil
}

func (s *stubProfileRepo) ByName(_ context.Context, name string) (*store.Profile, error) {
	p, ok := s.profiles[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (s *stubProfileRepo) List(context.Context) ([]*store.Profile, error) { return nil, nil }
func (s *stubProfileRepo) Delete(context.Context, int) error              { return nil }

func TestAnonymousByDefault(t *testing.T) {
	s := NewSession(newStubProfileRepo())
	if s.Current() != nil {
		t.Fatal("fresh session must be anonymous")
	}
}

func TestSignUpThenSignIn(t *testing.T) {
	s := NewSession(newStubProfileRepo())
	ctx := context.Background()

	u, err := s.SignUp(ctx, "あゆむ")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if s.Current() == nil || s.Current().Name != "あゆむ" {
		t.Fatalf("current = %+v", s.Current())
	}

	s.SignOut()
	if s.Current() != nil {
		t.Fatal("sign-out must clear the user")
	}

	u2, err := s.SignIn(ctx, "あゆむ")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if u2.ID != u.ID {
		t.Fatalf("sign-in resolved a different profile: %d vs %d", u2.ID, u.ID)
	}
}

func TestSignInUnknownProfile(t *testing.T) {
	s := NewSession(newStubProfileRepo())
	if _, err := s.SignIn(context.Background(), "nobody"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestBlankNamesRejected(t *testing.T) {
	s := NewSession(newStubProfileRepo())
	ctx := context.Background()

	if _, err := s.SignIn(ctx, "   "); err == nil {
		t.Fatal("blank sign-in name must be rejected")
	}
	if _, err := s.SignUp(ctx, ""); err == nil {
		t.Fatal("blank sign-up name must be rejected")
	}
}

func TestChangeNotifications(t *testing.T) {
	s := NewSession(newStubProfileRepo())
	ctx := context.Background()

	var got []*User
	s.OnChange(func(u *User) { got = append(got, u) })

	_, _ = s.SignUp(ctx, "p")
	s.SignOut()

	if len(got) != 2 {
		t.Fatalf("got %d notifications, want 2", len(got))
	}
	if got[0] == nil || got[0].Name != "p" {
		t.Fatalf("sign-in notification = %+v", got[0])
	}
	if got[1] != nil {
		t.Fatal("sign-out notification must carry nil")
	}
}
