package scheduler

import (
	"context"
	"time"

	"bond_quotation/internal/usecase/interfaces"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultExpiryRunTimeout = time.Minute

// QuotationExpiryJob flips active quotations past their expiry to expired.
type QuotationExpiryJob struct {
	repo    interfaces.IQuotationRepository
	now     func() time.Time
	timeout time.Duration
	log     *zap.Logger
}

var _ cron.Job = (*QuotationExpiryJob)(nil)

func NewQuotationExpiryJob(repo interfaces.IQuotationRepository, log *zap.Logger) *QuotationExpiryJob {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuotationExpiryJob{
		repo:    repo,
		now:     time.Now,
		timeout: defaultExpiryRunTimeout,
		log:     log,
	}
}

// RunOnce executes one sweep and returns how many quotations were expired.
func (j *QuotationExpiryJob) RunOnce(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	return j.repo.ExpireBefore(ctx, j.now().UTC())
}

func (j *QuotationExpiryJob) Run() {
	n, err := j.RunOnce(context.Background())
	if err != nil {
		j.log.Error("[quotation][cron] expiry sweep failed", zap.Error(err), zap.Int("expired", n))
		return
	}
	j.log.Info("[quotation][cron] expiry sweep done", zap.Int("expired", n))
}

// Start schedules job on spec (standard cron syntax or descriptors such as
// "@hourly") and starts the scheduler. Callers stop it with Stop().
func Start(spec string, job cron.Job) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddJob(spec, job); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
