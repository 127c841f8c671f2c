package jobs_test

import (
	"log/slog"
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/jobs"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	manager := jobs.NewJobManager(
		queries.GetAbandonedCartOrdersQueryHandler{},
		commands.NotifyAbandonedCartCommandHandler{},
		time.Hour,
		slog.Default(),
	)

	err := manager.StartAll()
	require.NoError(t, err)

	manager.StopAll()
}

func TestAbandonedCartJob_StartAndStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	job := jobs.NewAbandonedCartJob(
		queries.GetAbandonedCartOrdersQueryHandler{},
		commands.NotifyAbandonedCartCommandHandler{},
		time.Hour,
		slog.Default(),
	)

	err := job.Start()
	require.NoError(t, err)

	job.Stop()
}
