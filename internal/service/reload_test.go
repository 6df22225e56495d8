package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitydirectory/directory-server/internal/domain"
	"github.com/communitydirectory/directory-server/internal/errors"
	"github.com/communitydirectory/directory-server/internal/search"
)

// flakySource serves fixed businesses or an error.
type flakySource struct {
	err        error
	businesses []domain.Business
}

func (s *flakySource) Businesses(context.Context) ([]domain.Business, error) {
	return s.businesses, s.err
}
func (s *flakySource) Categories(context.Context) ([]domain.Category, error) {
	return []domain.Category{}, s.err
}
func (s *flakySource) Suburbs(context.Context) ([]domain.Suburb, error) {
	return []domain.Suburb{}, s.err
}
func (s *flakySource) Reviews(context.Context) ([]domain.Review, error) {
	return []domain.Review{}, s.err
}

func TestReloadInstallsNewSnapshot(t *testing.T) {
	holder := newTestHolder()
	src := &flakySource{businesses: []domain.Business{{ID: "biz_only", Name: "Only One"}}}

	idx, err := search.NewIndex(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	r := NewReloader(src, holder, idx, testLogger())
	require.NoError(t, r.Reload(context.Background()))

	assert.Len(t, holder.Current().Businesses(), 1)

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestReloadKeepsPreviousSnapshotOnFailure(t *testing.T) {
	holder := newTestHolder()
	src := &flakySource{err: errors.New("source down")}

	r := NewReloader(src, holder, nil, testLogger())
	assert.Error(t, r.Reload(context.Background()))
	assert.Len(t, holder.Current().Businesses(), 5, "previous snapshot stays installed")
}
