package worker_test

import (
	"context"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cartscan/internal/resolver"
	"cartscan/internal/worker"
	"cartscan/pkg/domain"
	"cartscan/pkg/logger"
	"cartscan/pkg/picnic"
	mockpicnic "cartscan/pkg/picnic/mock"
	"cartscan/pkg/storage"
	mockstorage "cartscan/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var testCreds = picnic.Credentials{Username: "user@example.com", Password: "hunter2"}

func makeJob(id int64, code string) *river.Job[worker.CartSyncArgs] {
	return &river.Job[worker.CartSyncArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   worker.CartSyncArgs{Code: code},
	}
}

func newWorker(catalog *mockpicnic.MockCatalog,
	events storage.ScanEventStorage,
	maxAttempts int) *worker.CartSyncWorker {
	return worker.NewCartSyncWorker(resolver.NewPipeline(catalog, testCreds), events, nil, maxAttempts)
}

func TestCartSyncWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	catalog := mockpicnic.NewMockCatalog(ctrl)
	events := mockstorage.NewMockAllStorage(ctrl)

	candidates := []domain.ProductCandidate{
		{Name: "Whole Milk 1L", Aliases: []string{"8718452129911"}, IDCandidates: []string{"s1019822"}},
	}
	gomock.InOrder(
		catalog.EXPECT().Login(gomock.Any(), "user@example.com", "hunter2").Return("key", nil),
		catalog.EXPECT().Search(gomock.Any(), gomock.Any(), "8718452129911").Return(candidates, nil),
		catalog.EXPECT().AddToCart(gomock.Any(), gomock.Any(), "s1019822", 1).Return(nil),
	)

	events.EXPECT().
		UpdatePendingScanEventsByCode(gomock.Any(), "8718452129911", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, updates storage.ScanEventUpdates) error {
			require.Equal(t, domain.ScanEventCompleted, updates.Status)
			require.Equal(t, "s1019822", *updates.ProductID)
			require.Equal(t, "Whole Milk 1L", *updates.ProductName)
			require.Empty(t, *updates.LastError)

			return nil
		})

	w := newWorker(catalog, events, 3)
	require.NoError(t, w.Work(context.Background(), makeJob(1, "8718452129911")))
}

func TestCartSyncWorker_Work_sessionSurvivesJobs(t *testing.T) {
	ctrl := gomock.NewController(t)

	catalog := mockpicnic.NewMockCatalog(ctrl)
	events := mockstorage.NewMockAllStorage(ctrl)

	candidates := []domain.ProductCandidate{
		{Name: "Milk", Aliases: []string{"111"}, IDCandidates: []string{"a"}},
	}
	// exactly one login across two jobs
	catalog.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("key", nil).Times(1)
	catalog.EXPECT().Search(gomock.Any(), gomock.Any(), "111").Return(candidates, nil).Times(2)
	catalog.EXPECT().AddToCart(gomock.Any(), gomock.Any(), "a", 1).Return(nil).Times(2)
	events.EXPECT().
		UpdatePendingScanEventsByCode(gomock.Any(), "111", gomock.Any()).
		Return(nil).
		Times(2)

	w := newWorker(catalog, events, 3)
	require.NoError(t, w.Work(context.Background(), makeJob(1, "111")))
	require.NoError(t, w.Work(context.Background(), makeJob(2, "111")))
}

func TestCartSyncWorker_Work_failureMarksEvents(t *testing.T) {
	ctrl := gomock.NewController(t)

	catalog := mockpicnic.NewMockCatalog(ctrl)
	events := mockstorage.NewMockAllStorage(ctrl)

	catalog.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("key", nil)
	catalog.EXPECT().Search(gomock.Any(), gomock.Any(), "404404").Return(nil, nil)

	events.EXPECT().
		UpdatePendingScanEventsByCode(gomock.Any(), "404404", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, updates storage.ScanEventUpdates) error {
			require.Equal(t, domain.ScanEventFailed, updates.Status)
			require.NotEmpty(t, *updates.LastError)
			require.Equal(t, 3, updates.MaxAttempts)

			return nil
		})

	w := newWorker(catalog, events, 3)
	err := w.Work(context.Background(), makeJob(1, "404404"))
	require.Error(t, err)
}

func TestCartSyncWorker_Work_missingCredentialsCancels(t *testing.T) {
	ctrl := gomock.NewController(t)

	catalog := mockpicnic.NewMockCatalog(ctrl)
	events := mockstorage.NewMockAllStorage(ctrl)
	events.EXPECT().
		UpdatePendingScanEventsByCode(gomock.Any(), "111", gomock.Any()).
		Return(nil)

	w := worker.NewCartSyncWorker(
		resolver.NewPipeline(catalog, picnic.Credentials{}), events, nil, 3)

	err := w.Work(context.Background(), makeJob(1, "111"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}
