package chattest

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// FakeIdentity is an identity provider keyed by email. Set the *Err fields to
// make the corresponding call fail.
type FakeIdentity struct {
	mu        sync.Mutex
	accounts  map[string]fakeAccount
	google    map[string]string
	calls     []string
	seq       int
	CreateErr error
	SignInErr error
	GoogleErr error
}

type fakeAccount struct {
	uid      string
	password string
}

func NewFakeIdentity() *FakeIdentity {
	return &FakeIdentity{
		accounts: map[string]fakeAccount{},
		google:   map[string]string{},
	}
}

// AddGoogleToken makes token sign in as uid.
func (f *FakeIdentity) AddGoogleToken(token, uid string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.google[token] = uid
}

// Calls lists the provider methods invoked so far, in order.
func (f *FakeIdentity) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// HasAccount reports whether email is registered.
func (f *FakeIdentity) HasAccount(email string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.accounts[email]
	return ok
}

func (f *FakeIdentity) CreateUser(_ context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "CreateUser")
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	if _, ok := f.accounts[email]; ok {
		return "", errors.New("EMAIL_EXISTS")
	}
	f.seq++
	uid := fmt.Sprintf("uid-%d", f.seq)
	f.accounts[email] = fakeAccount{uid: uid, password: password}
	return uid, nil
}

func (f *FakeIdentity) SignInWithPassword(_ context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "SignInWithPassword")
	if f.SignInErr != nil {
		return "", f.SignInErr
	}
	acc, ok := f.accounts[email]
	if !ok || acc.password != password {
		return "", errors.New("INVALID_LOGIN_CREDENTIALS")
	}
	return acc.uid, nil
}

func (f *FakeIdentity) SignInWithGoogle(_ context.Context, idToken string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "SignInWithGoogle")
	if f.GoogleErr != nil {
		return "", f.GoogleErr
	}
	uid, ok := f.google[idToken]
	if !ok {
		return "", errors.New("INVALID_IDP_RESPONSE")
	}
	return uid, nil
}
