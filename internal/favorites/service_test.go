package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/ayumu/zukan/internal/auth"
	"github.com/ayumu/zukan/internal/store"
)

// fakeProfileRepo backs the auth session in tests.
type fakeProfileRepo struct {
	profiles map[string]*store.Profile
	nextID   int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*store.Profile), nextID: 1}
}

func (f *fakeProfileRepo) Create(_ context.Context, name string) (*store.Profile, error) {
	if _, ok := f.profiles[name]; ok {
		return nil, errors.New("exists")
	}
	p := &store.Profile{ID: f.nextID, Name: name}
	f.nextID++
	f.profiles[name] = p
	return p, nil
}

func (f *fakeProfileRepo) ByName(_ context.Context, name string) (*store.Profile, error) {
	p, ok := f.profiles[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) List(context.Context) ([]*store.Profile, error) { return nil, nil }
func (f *fakeProfileRepo) Delete(context.Context, int) error              { return nil }

// fakeFavoriteRepo is an in-memory FavoriteRepo whose writes can be
// made to fail.
type fakeFavoriteRepo struct {
	sets     map[int]map[string]bool
	failNext bool
	writes   int
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{sets: make(map[int]map[string]bool)}
}

func (f *fakeFavoriteRepo) Get(_ context.Context, profileID int) (map[string]bool, error) {
	out := make(map[string]bool)
	for id := range f.sets[profileID] {
		out[id] = true
	}
	return out, nil
}

func (f *fakeFavoriteRepo) Set(_ context.Context, profileID int, ids map[string]bool) error {
	f.writes++
	if f.failNext {
		f.failNext = false
		return errors.New("backend unavailable")
	}
	f.sets[profileID] = ids
	return nil
}

func signedInService(t *testing.T) (*Service, *fakeFavoriteRepo, *auth.Session) {
	t.Helper()
	session := auth.NewSession(newFakeProfileRepo())
	repo := newFakeFavoriteRepo()
	svc := NewService(repo, session)
	if _, err := session.SignUp(context.Background(), "tester"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	return svc, repo, session
}

func TestAnonymousToggleRejected(t *testing.T) {
	session := auth.NewSession(newFakeProfileRepo())
	repo := newFakeFavoriteRepo()
	svc := NewService(repo, session)

	_, err := svc.Toggle(context.Background(), "t1")
	if !errors.Is(err, ErrSignInRequired) {
		t.Fatalf("err = %v, want ErrSignInRequired", err)
	}
	if svc.Count() != 0 {
		t.Fatal("anonymous toggle must not alter the set")
	}
	if repo.writes != 0 {
		t.Fatal("anonymous toggle must not hit the store")
	}
}

func TestTogglePairRestoresMembership(t *testing.T) {
	svc, _, _ := signedInService(t)
	ctx := context.Background()

	on, err := svc.Toggle(ctx, "t1")
	if err != nil || !on {
		t.Fatalf("first toggle: on=%v err=%v", on, err)
	}
	if !svc.IsFavorite("t1") {
		t.Fatal("toggle on not visible")
	}

	on, err = svc.Toggle(ctx, "t1")
	if err != nil || on {
		t.Fatalf("second toggle: on=%v err=%v", on, err)
	}
	if svc.IsFavorite("t1") || svc.Count() != 0 {
		t.Fatal("double toggle must restore the original membership")
	}
}

func TestToggleIsOptimisticOnPersistFailure(t *testing.T) {
	svc, repo, _ := signedInService(t)
	ctx := context.Background()

	repo.failNext = true
	on, err := svc.Toggle(ctx, "t1")

	var perr *PersistError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *PersistError", err)
	}
	// The star stays on despite the failed write.
	if !on || !svc.IsFavorite("t1") {
		t.Fatal("persist failure must not roll back the toggle")
	}
	if !svc.Pending() {
		t.Fatal("failed write must be queued for retry")
	}
}

func TestFlushRetriesPendingWrite(t *testing.T) {
	svc, repo, _ := signedInService(t)
	ctx := context.Background()

	repo.failNext = true
	_, _ = svc.Toggle(ctx, "t1")

	if err := svc.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if svc.Pending() {
		t.Fatal("pending flag must clear after a successful flush")
	}
	if !repo.sets[1]["t1"] {
		t.Fatal("flush must write the full current set")
	}

	// Nothing pending: no extra write.
	writes := repo.writes
	if err := svc.Flush(ctx); err != nil {
		t.Fatalf("idle flush: %v", err)
	}
	if repo.writes != writes {
		t.Fatal("idle flush must not write")
	}
}

func TestNextToggleDrainsRetryQueue(t *testing.T) {
	svc, repo, _ := signedInService(t)
	ctx := context.Background()

	repo.failNext = true
	_, _ = svc.Toggle(ctx, "t1")

	if _, err := svc.Toggle(ctx, "t2"); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if svc.Pending() {
		t.Fatal("a successful whole-set write drains the queue")
	}
	if !repo.sets[1]["t1"] || !repo.sets[1]["t2"] {
		t.Fatalf("persisted set incomplete: %v", repo.sets[1])
	}
}

func TestLoadPopulatesFromStore(t *testing.T) {
	svc, repo, _ := signedInService(t)
	ctx := context.Background()

	repo.sets[1] = map[string]bool{"t9": true}
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !svc.IsFavorite("t9") {
		t.Fatal("loaded favorite missing")
	}
}

func TestSignOutResetsView(t *testing.T) {
	svc, repo, session := signedInService(t)
	ctx := context.Background()

	_, _ = svc.Toggle(ctx, "t1")
	session.SignOut()

	if svc.Count() != 0 {
		t.Fatal("sign-out must reset the in-memory view to empty")
	}
	// The persisted record is untouched, pending a future sign-in.
	if !repo.sets[1]["t1"] {
		t.Fatal("sign-out must not delete persisted favorites")
	}
}
