package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/pricebook/internal/auth"
	"github.com/conn-castle/pricebook/internal/catalog"
	"github.com/conn-castle/pricebook/internal/editor"
	"github.com/conn-castle/pricebook/internal/export"
	"github.com/conn-castle/pricebook/internal/loader"
)

type fakeLoader struct {
	catalogs [][]catalog.Product
	err      error
	calls    int
}

func (f *fakeLoader) Load(context.Context) ([]catalog.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	idx := f.calls - 1
	if idx >= len(f.catalogs) {
		idx = len(f.catalogs) - 1
	}
	return catalog.CloneAll(f.catalogs[idx]), nil
}

type memClipboard struct{ text string }

func (m *memClipboard) WriteAll(text string) error {
	m.text = text
	return nil
}

func rice() []catalog.Product {
	return []catalog.Product{{ID: 1, Name: "Rice", Variants: []catalog.Variant{
		{Weight: "1kg", SalePrice: 50, Available: true},
	}}}
}

func testVerifier() *auth.Verifier {
	return auth.NewVerifierWithDigests(auth.Digest("boss"), auth.Digest("staff"))
}

func TestLogin_Roles(t *testing.T) {
	a := NewAuthenticator(testVerifier(), &fakeLoader{catalogs: [][]catalog.Product{rice()}})

	s, err := a.Login(context.Background(), "boss")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, s.Role())
	assert.Equal(t, 1, s.Store().Len())

	s, err = a.Login(context.Background(), "staff")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleWorker, s.Role())
}

func TestLogin_RejectedDoesNotLoad(t *testing.T) {
	l := &fakeLoader{catalogs: [][]catalog.Product{rice()}}
	s, err := NewAuthenticator(testVerifier(), l).Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, auth.ErrRejected)
	assert.Nil(t, s)
	assert.Equal(t, 0, l.calls)
}

func TestLogin_LoadErrorBlocksSession(t *testing.T) {
	loadErr := &loader.LoadError{Stage: loader.StageFetch, Err: errors.New("offline")}
	s, err := NewAuthenticator(testVerifier(), &fakeLoader{err: loadErr}).Login(context.Background(), "boss")
	assert.Nil(t, s)
	var got *loader.LoadError
	assert.ErrorAs(t, err, &got)
}

func TestReload_ReplacesAndClosesEdit(t *testing.T) {
	salt := []catalog.Product{{ID: 2, Name: "Salt", Variants: []catalog.Variant{{Weight: "1kg", SalePrice: 20}}}}
	l := &fakeLoader{catalogs: [][]catalog.Product{rice(), salt}}
	s, err := NewAuthenticator(testVerifier(), l).Login(context.Background(), "boss")
	require.NoError(t, err)

	_, err = s.Editor().Open(1, 0)
	require.NoError(t, err)

	require.NoError(t, s.Reload(context.Background()))
	assert.False(t, s.Editor().IsOpen())
	assert.Equal(t, salt, s.Store().All())
	assert.False(t, s.Dirty())
}

func TestReload_FailureKeepsCatalog(t *testing.T) {
	l := &fakeLoader{catalogs: [][]catalog.Product{rice()}}
	s, err := NewAuthenticator(testVerifier(), l).Login(context.Background(), "boss")
	require.NoError(t, err)

	l.err = errors.New("gone")
	require.Error(t, s.Reload(context.Background()))
	assert.Equal(t, rice(), s.Store().All())
}

func TestChangesAndExport(t *testing.T) {
	s, err := NewAuthenticator(testVerifier(), &fakeLoader{catalogs: [][]catalog.Product{rice()}}).Login(context.Background(), "boss")
	require.NoError(t, err)
	assert.False(t, s.Dirty())

	_, err = s.Editor().Open(1, 0)
	require.NoError(t, err)
	require.NoError(t, s.Editor().Commit("60", "45", false))

	assert.True(t, s.Dirty())
	diff, err := s.Changes()
	require.NoError(t, err)
	assert.Contains(t, diff, `"salePrice": 60`)

	cb := &memClipboard{}
	result, err := s.Export(export.New(cb))
	require.NoError(t, err)
	assert.Equal(t, cb.text, result.Text)

	back, err := loader.Parse([]byte(cb.text))
	require.NoError(t, err)
	assert.Equal(t, s.Store().All(), back)
}

// The worker role hides editing in the UI only; the session still accepts a
// direct commit.
func TestWorkerCommitIsMechanicallyPossible(t *testing.T) {
	s, err := NewAuthenticator(testVerifier(), &fakeLoader{catalogs: [][]catalog.Product{rice()}}).Login(context.Background(), "staff")
	require.NoError(t, err)
	require.False(t, s.Role().CanEdit())

	_, err = s.Editor().Open(1, 0)
	require.NoError(t, err)
	require.NoError(t, s.Editor().Commit("1", "", true))

	v, err := s.Store().Variant(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.SalePrice)
}

func TestCommitValidationLeavesSessionOpen(t *testing.T) {
	s, err := NewAuthenticator(testVerifier(), &fakeLoader{catalogs: [][]catalog.Product{rice()}}).Login(context.Background(), "boss")
	require.NoError(t, err)
	_, err = s.Editor().Open(1, 0)
	require.NoError(t, err)

	err = s.Editor().Commit("", "", true)
	var verr *editor.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, s.Editor().IsOpen())
	assert.Equal(t, rice(), s.Store().All())
}

func TestLogout(t *testing.T) {
	s, err := NewAuthenticator(testVerifier(), &fakeLoader{catalogs: [][]catalog.Product{rice()}}).Login(context.Background(), "boss")
	require.NoError(t, err)
	_, err = s.Editor().Open(1, 0)
	require.NoError(t, err)

	s.Logout()
	assert.True(t, s.Closed())
	assert.Equal(t, 0, s.Store().Len())
	assert.False(t, s.Editor().IsOpen())
}
