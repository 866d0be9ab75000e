package activities

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly/internal/core"
	"github.com/gatherly/gatherly/internal/mediator"
	"github.com/gatherly/gatherly/internal/model"
	"github.com/gatherly/gatherly/internal/storage/sqlite"
)

func newDispatcher(t *testing.T) *mediator.Dispatcher {
	t.Helper()
	db, err := sqlite.OpenInMemory()
	require.NoError(t, err)
	st := sqlite.NewWithDB(db)
	t.Cleanup(func() { _ = st.Close() })

	d := mediator.New()
	require.NoError(t, Register(d, st))
	return d
}

func sampleActivity() model.Activity {
	return model.Activity{
		ID:          uuid.New(),
		Title:       "Run",
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Description: "morning run",
		Category:    "sport",
		City:        "X",
		Venue:       "Y",
	}
}

func TestRegisterTwiceFails(t *testing.T) {
	d := newDispatcher(t)
	db, err := sqlite.OpenInMemory()
	require.NoError(t, err)
	st := sqlite.NewWithDB(db)
	defer func() { _ = st.Close() }()
	require.Error(t, Register(d, st))
}

func TestCreateThenListAndDetails(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()
	a := sampleActivity()

	out, err := d.Send(ctx, CreateCommand{Activity: a})
	require.NoError(t, err)
	res := out.(core.Result[core.Unit])
	require.True(t, res.IsSuccess())

	out, err = d.Send(ctx, ListQuery{})
	require.NoError(t, err)
	list := out.([]model.Activity)
	require.Len(t, list, 1)
	require.Equal(t, a.Title, list[0].Title)

	out, err = d.Send(ctx, DetailsQuery{ID: a.ID})
	require.NoError(t, err)
	det := out.(core.Result[*model.Activity])
	require.True(t, det.IsSuccess())
	require.True(t, det.HasValue())
	require.Equal(t, a, *det.Value())
}

func TestDetailsUnknownIDIsEmptySuccess(t *testing.T) {
	d := newDispatcher(t)
	out, err := d.Send(context.Background(), DetailsQuery{ID: uuid.New()})
	require.NoError(t, err)
	res := out.(core.Result[*model.Activity])
	require.True(t, res.IsSuccess())
	require.False(t, res.HasValue())
}

func TestEditReplacesRecord(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()
	a := sampleActivity()
	_, err := d.Send(ctx, CreateCommand{Activity: a})
	require.NoError(t, err)

	a.City = "Z"
	out, err := d.Send(ctx, EditCommand{Activity: a})
	require.NoError(t, err)
	require.True(t, out.(core.Result[core.Unit]).IsSuccess())

	out, err = d.Send(ctx, DetailsQuery{ID: a.ID})
	require.NoError(t, err)
	require.Equal(t, "Z", out.(core.Result[*model.Activity]).Value().City)
}

func TestEditUnknownIDFails(t *testing.T) {
	d := newDispatcher(t)
	out, err := d.Send(context.Background(), EditCommand{Activity: sampleActivity()})
	require.NoError(t, err)
	res := out.(core.Result[core.Unit])
	require.False(t, res.IsSuccess())
	require.Equal(t, "failed to update activity", res.Err())
}

func TestDeleteUnknownIDYieldsAbsentResult(t *testing.T) {
	d := newDispatcher(t)
	out, err := d.Send(context.Background(), DeleteCommand{ID: uuid.New()})
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestDeleteRemovesRecord(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()
	a := sampleActivity()
	_, err := d.Send(ctx, CreateCommand{Activity: a})
	require.NoError(t, err)

	out, err := d.Send(ctx, DeleteCommand{ID: a.ID})
	require.NoError(t, err)
	require.True(t, out.(core.Result[core.Unit]).IsSuccess())

	out, err = d.Send(ctx, DetailsQuery{ID: a.ID})
	require.NoError(t, err)
	require.False(t, out.(core.Result[*model.Activity]).HasValue())
}
