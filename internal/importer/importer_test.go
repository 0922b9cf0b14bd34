package importer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskcal/internal/importer"
	"taskcal/internal/logging"
	"taskcal/internal/tasklist"
	"taskcal/internal/testutil"
)

type fakeSource struct {
	lists []importer.RemoteList
	err   error
}

func (f fakeSource) Fetch(ctx context.Context) ([]importer.RemoteList, error) {
	return f.lists, f.err
}

func TestImport_CreatesListsAndTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	src := fakeSource{lists: []importer.RemoteList{
		{Title: "Work", Tasks: []tasklist.Task{
			{Description: "Report", DueDate: "2024-03-15"},
			{Description: "Review", DueDate: "2024-03-16"},
		}},
		{Title: "Home", Tasks: []tasklist.Task{{Description: "Plants", DueDate: "2024-03-15"}}},
	}}

	report, err := importer.Import(context.Background(), svc, src, logging.Nop())

	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "Home"}, report.Created)
	assert.Equal(t, 3, report.Tasks)
	assert.Zero(t, report.Skipped)

	lists := svc.Snapshot()
	require.Len(t, lists, 2)
	assert.Equal(t, "Work", lists[0].Title)
	assert.Len(t, lists[0].Elements, 2)
	assert.Equal(t, "Plants", lists[1].Elements[0].Description)
}

func TestImport_MergesIntoExistingList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList(100001, "Work")
	svc.PutTask(100001, "Report", "2024-03-15")

	src := fakeSource{lists: []importer.RemoteList{
		{Title: "  Work ", Tasks: []tasklist.Task{
			{Description: "Report", DueDate: "2024-03-15"},
			{Description: "Ship", DueDate: "2024-03-20"},
		}},
	}}

	report, err := importer.Import(context.Background(), svc, src, logging.Nop())

	require.NoError(t, err)
	assert.Empty(t, report.Created)
	assert.Equal(t, 1, report.Tasks)
	assert.Equal(t, 1, report.Duplicates)
	assert.Len(t, svc.Snapshot()[0].Elements, 2)
}

func TestImport_TwiceIsIdempotent(t *testing.T) {
	svc := testutil.NewFakeService()
	src := fakeSource{lists: []importer.RemoteList{
		{Title: "Work", Tasks: []tasklist.Task{{Description: "Report", DueDate: "2024-03-15"}}},
	}}

	_, err := importer.Import(context.Background(), svc, src, logging.Nop())
	require.NoError(t, err)
	report, err := importer.Import(context.Background(), svc, src, logging.Nop())
	require.NoError(t, err)

	assert.Zero(t, report.Tasks)
	assert.Equal(t, 1, report.Duplicates)
	assert.Len(t, svc.Snapshot(), 1)
}

func TestImport_SkipsUnusableListsAndTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	var logs bytes.Buffer
	src := fakeSource{lists: []importer.RemoteList{
		{Title: "ab", Tasks: []tasklist.Task{{Description: "Lost", DueDate: "2024-03-15"}}},
		{Title: "   "},
		{Title: "Errands", Tasks: []tasklist.Task{
			{Description: "Bad date", DueDate: "someday"},
			{Description: "", DueDate: "2024-03-15"},
			{Description: "Post", DueDate: "2024-03-18"},
		}},
	}}

	report, err := importer.Import(context.Background(), svc, src, logging.New(&logs, false))

	require.NoError(t, err)
	assert.Equal(t, []string{"Errands"}, report.Created)
	assert.Equal(t, 1, report.Tasks)
	assert.Equal(t, 4, report.Skipped)
	assert.Contains(t, logs.String(), "skipping remote list")
	assert.Contains(t, logs.String(), "skipping remote task")
}

func TestImport_TruncatesLongTitles(t *testing.T) {
	svc := testutil.NewFakeService()
	src := fakeSource{lists: []importer.RemoteList{{Title: "A very long list title indeed"}}}

	report, err := importer.Import(context.Background(), svc, src, logging.Nop())

	require.NoError(t, err)
	assert.Equal(t, []string{"A very long list tit"}, report.Created)
}

func TestImport_FetchError(t *testing.T) {
	svc := testutil.NewFakeService()
	boom := errors.New("boom")

	_, err := importer.Import(context.Background(), svc, fakeSource{err: boom}, logging.Nop())

	assert.ErrorIs(t, err, boom)
}

func TestImport_StoreError(t *testing.T) {
	svc := testutil.NewFakeService()
	boom := errors.New("disk full")
	svc.CreateListErr = boom
	src := fakeSource{lists: []importer.RemoteList{{Title: "Work"}}}

	_, err := importer.Import(context.Background(), svc, src, logging.Nop())

	assert.ErrorIs(t, err, boom)
}
