package payslip

import (
	"context"
	"errors"
	"fmt"
	"holerite/internal/config"
	"holerite/pkg/domain"
	"holerite/pkg/logger"
	"holerite/pkg/mailer"
	"holerite/pkg/metrics"
	"holerite/pkg/serrors"
	"holerite/pkg/storage"
	"strings"
	"time"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	defaultContentType = "application/pdf"

	defaultReprocessLimit      = 200
	defaultReprocessBatchSize  = 50
	defaultReprocessMaxRetries = 1
	defaultFailedLimit         = 50
	maxFailedLimit             = 500

	// maxResultItems caps the items echoed back by Reprocess.
	maxResultItems = 20
	// maxInvalidExamples caps the names listed when strict e-mail mode rejects a unidade.
	maxInvalidExamples = 5

	// testNome and testUnidade personalize a test send that has no colaborador to borrow from.
	testNome    = "Teste"
	testUnidade = "Teste"
)

// Options configure how payslips are planned, queued and delivered.
// These settings are typically derived from application configuration.
type Options struct {
	// DefaultSubject and DefaultMessage are used when a request leaves them empty.
	DefaultSubject string
	DefaultMessage string
	// DefaultBatchSize is the number of deliveries released together.
	DefaultBatchSize int
	// BatchInterval delays each batch after the first by this much more than the previous one.
	BatchInterval time.Duration
	// AllowedDomains restricts recipients to these domains. Empty allows all.
	AllowedDomains []string
	// StrictPDF rejects non-PDF uploads instead of skipping every recipient.
	StrictPDF bool
	// StrictEmail rejects a unidade with any colaborador lacking a valid e-mail.
	StrictEmail bool
	// MaxAttempts is the maximum number of attempts of a delivery job.
	MaxAttempts int
	// RetryBaseDelay is the wait unit between Reprocess attempts: attempt n waits n*RetryBaseDelay.
	RetryBaseDelay time.Duration
	// ConfirmThreshold is the unidade size above which a real send needs
	// confirm=YES. Zero asks for every real send.
	ConfirmThreshold int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultSubject:   cfg.Payslip.DefaultSubject,
		DefaultMessage:   cfg.Payslip.DefaultMessage,
		DefaultBatchSize: cfg.Payslip.DefaultBatchSize,
		BatchInterval:    cfg.Payslip.BatchInterval,
		AllowedDomains:   cfg.Payslip.AllowedDomains,
		StrictPDF:        cfg.Payslip.StrictPDF,
		StrictEmail:      cfg.Payslip.StrictEmail,
		MaxAttempts:      cfg.Payslip.MaxAttempts,
		RetryBaseDelay:   500 * time.Millisecond, //nolint: mnd
		ConfirmThreshold: cfg.Payslip.ConfirmThreshold,
	}
}

// service is the concrete implementation of the Service interface.
// It coordinates persistence with the storage layer, job enqueueing and the mailer.
type service struct {
	options        Options
	allowedDomains map[string]struct{}
	storage        storage.Storage
	mailer         mailer.Mailer
	tracer         trace.Tracer
}

// Process validates the request, plans the recipients and, for real sends,
// stores the PDF once plus one pending notification and one delivery job per
// recipient in a single transaction, together with a send history entry. Jobs
// of batch k are scheduled at now + k*BatchInterval.
func (s service) Process(ctx context.Context,
	req domain.ProcessRequest,
	file domain.PayslipFile) (*domain.ProcessResult, error) {
	ctx, span := s.tracer.Start(ctx, "payslip.Process", trace.WithAttributes(
		attribute.String("unidade", req.Unidade),
		attribute.Bool("dryRun", req.DryRun),
	))
	defer span.End()

	req.Unidade = strings.TrimSpace(req.Unidade)
	req.TestRecipient = NormalizeEmail(req.TestRecipient)
	if err := validate.Struct(req); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid process request")
	}
	if strings.TrimSpace(req.Subject) == "" {
		req.Subject = s.options.DefaultSubject
	}
	if strings.TrimSpace(req.Message) == "" {
		req.Message = s.options.DefaultMessage
	}
	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = s.options.DefaultBatchSize
	}

	if len(file.Content) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "pdfFile is required")
	}
	isPDF := IsPDF(file.Content)
	if !isPDF && s.options.StrictPDF {
		return nil, serrors.With(serrors.ErrBadRequest, "attachment %q is not a valid PDF", file.Filename)
	}

	var colaboradores []domain.Colaborador
	if req.Unidade != "" {
		var err error
		if colaboradores, err = s.storage.ColaboradoresByUnidade(ctx, req.Unidade); err != nil {
			return nil, fmt.Errorf("could not get colaboradores: %w", err)
		}
	}
	if len(colaboradores) == 0 {
		if req.TestRecipient == "" {
			return nil, serrors.With(serrors.ErrNotFound, "no colaboradores found in unidade %q", req.Unidade)
		}
		// a test send does not need a populated unidade
		if req.Unidade == "" {
			req.Unidade = testUnidade
		}
		colaboradores = []domain.Colaborador{{Nome: testNome, Email: req.TestRecipient, Unidade: req.Unidade}}
	}

	if s.options.StrictEmail {
		var invalid []string
		for _, c := range colaboradores {
			if !ValidEmail(NormalizeEmail(c.Email)) {
				invalid = append(invalid, c.Nome)
			}
		}
		if len(invalid) > 0 {
			return nil, serrors.With(serrors.ErrBadRequest,
				"%d colaborador(es) without a valid e-mail, e.g. %s",
				len(invalid),
				strings.Join(invalid[:min(len(invalid), maxInvalidExamples)], ", "))
		}
	}

	result := &domain.ProcessResult{
		Unidade:    req.Unidade,
		DryRun:     req.DryRun,
		Total:      len(colaboradores),
		Recipients: make([]domain.RecipientResult, 0, len(colaboradores)),
	}
	planned := make([]domain.Notification, 0, len(colaboradores))
	plannedIdx := make([]int, 0, len(colaboradores))
	for _, c := range colaboradores {
		to := NormalizeEmail(c.Email)
		if req.TestRecipient != "" {
			to = req.TestRecipient
		}

		recipient := domain.RecipientResult{Nome: c.Nome, Email: to, Status: domain.RecipientPlanned}
		if reason := s.skipReason(to, isPDF); reason != "" {
			recipient.Status = domain.RecipientSkipped
			recipient.Reason = reason
			result.Skipped++
			result.Recipients = append(result.Recipients, recipient)
			logger.Warn(ctx, "recipient skipped",
				zap.String("nome", c.Nome),
				zap.String("email", to),
				zap.String("reason", reason))

			continue
		}

		n := domain.Notification{
			Unidade: c.Unidade,
			Nome:    c.Nome,
			Email:   to,
			Subject: RenderMessage(req.Subject, c.Nome, c.Unidade),
			Message: RenderMessage(req.Message, c.Nome, c.Unidade),
			Status:  domain.NotificationStatusPending,
		}
		if c.ID != (domain.ColaboradorID{}) {
			colaboradorID := c.ID
			n.ColaboradorID = &colaboradorID
		}
		planned = append(planned, n)
		plannedIdx = append(plannedIdx, len(result.Recipients))
		result.Recipients = append(result.Recipients, recipient)

		// a test send delivers exactly one message
		if req.TestRecipient != "" {
			break
		}
	}
	result.Batches = (len(planned) + batchSize - 1) / batchSize

	if req.DryRun {
		result.Planned = len(planned)

		return result, nil
	}

	if req.TestRecipient == "" && result.Total > s.options.ConfirmThreshold &&
		!strings.EqualFold(strings.TrimSpace(req.Confirm), domain.ConfirmToken) {
		return nil, serrors.With(serrors.ErrBadRequest,
			"sending %d e-mails to %q requires confirm=%s", result.Total, req.Unidade, domain.ConfirmToken)
	}
	history := domain.SendHistory{
		Unidade:       result.Unidade,
		Subject:       req.Subject,
		Total:         result.Total,
		Skipped:       result.Skipped,
		TestRecipient: req.TestRecipient,
	}
	if len(planned) == 0 {
		if _, err := s.storage.StoreSendHistory(ctx, history); err != nil {
			logger.Warn(ctx, "could not store send history", zap.Error(err))
		}

		return result, nil
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	now := time.Now()
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		storedFile, err := tx.StorePayslipFile(ctx, domain.PayslipFile{
			Filename:    file.Filename,
			ContentType: contentType,
			Content:     file.Content,
		})
		if err != nil {
			return fmt.Errorf("could not store payslip file: %w", err)
		}
		for i := range planned {
			planned[i].FileID = &storedFile.ID
		}

		stored, err := tx.StoreNotifications(ctx, planned...)
		if err != nil {
			return fmt.Errorf("could not store notifications: %w", err)
		}
		notifications, err := inPlannedOrder(planned, stored)
		if err != nil {
			return err
		}

		jobs := make([]river.InsertManyParams, 0, len(notifications))
		for i, n := range notifications {
			opts := &river.InsertOpts{}
			if batch := i / batchSize; batch > 0 {
				opts.ScheduledAt = now.Add(time.Duration(batch) * s.options.BatchInterval)
			}
			jobs = append(jobs, river.InsertManyParams{
				Args:       JobArgs{NotificationID: n.ID, maxAttempts: s.options.MaxAttempts},
				InsertOpts: opts,
			})

			id := n.ID
			result.Recipients[plannedIdx[i]].NotificationID = &id
			result.Recipients[plannedIdx[i]].Status = domain.RecipientQueued
		}

		if _, err := tx.AddJobs(ctx, jobs); err != nil {
			return fmt.Errorf("could not add jobs: %w", err)
		}

		history.Queued = len(notifications)
		history.FileID = &storedFile.ID
		if _, err := tx.StoreSendHistory(ctx, history); err != nil {
			return fmt.Errorf("could not store send history: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not queue payslip: %w", err)
	}

	result.Queued = len(planned)
	metrics.NotificationsQueued.WithLabelValues(req.Unidade).Add(float64(result.Queued))
	logger.Info(ctx, "payslip queued",
		zap.String("unidade", req.Unidade),
		zap.Int("queued", result.Queued),
		zap.Int("skipped", result.Skipped),
		zap.Int("batches", result.Batches))

	return result, nil
}

// inPlannedOrder lines the stored notifications up with planned, matching them
// by colaborador, or by e-mail for a test recipient.
func inPlannedOrder(planned, stored []domain.Notification) ([]domain.Notification, error) {
	if len(stored) != len(planned) {
		return nil, fmt.Errorf("stored %d notifications, planned %d", len(stored), len(planned))
	}

	index := make(map[string]int, len(planned))
	for i, n := range planned {
		index[recipientKey(n)] = i
	}

	out := make([]domain.Notification, len(planned))
	for _, n := range stored {
		i, ok := index[recipientKey(n)]
		if !ok {
			return nil, fmt.Errorf("stored notification %s matches no planned recipient", n.ID)
		}
		out[i] = n
	}

	return out, nil
}

func recipientKey(n domain.Notification) string {
	if n.ColaboradorID != nil {
		return n.ColaboradorID.String()
	}

	return "email:" + n.Email
}

// skipReason returns why an address cannot receive the payslip, or "" when it can.
func (s service) skipReason(to string, isPDF bool) string {
	switch {
	case to == "":
		return "missing e-mail"
	case !ValidEmail(to):
		return "invalid e-mail"
	case !isPDF:
		return "attachment is not a PDF"
	case !domainAllowed(s.allowedDomains, to):
		return fmt.Sprintf("domain %q is not allowed", EmailDomain(to))
	default:
		return ""
	}
}

// Deliver sends a queued notification. Already sent notifications are left
// alone so a retried job never sends twice. A failure is recorded on the
// notification; it only becomes failed on the last attempt or when its PDF is gone.
func (s service) Deliver(ctx context.Context, id domain.NotificationID, lastAttempt bool) error {
	ctx, span := s.tracer.Start(ctx, "payslip.Deliver", trace.WithAttributes(attribute.String("id", id.String())))
	defer span.End()

	n, err := s.storage.NotificationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get notification: %w", err)
	}
	if n == nil {
		return serrors.With(serrors.ErrNotFound, "notification %s not found", id)
	}
	if n.Status == domain.NotificationStatusSent {
		logger.Debug(ctx, "notification already sent")

		return nil
	}

	file, err := s.payslipFile(ctx, n, nil)
	if err == nil {
		err = s.send(ctx, *n, file)
	}
	if err != nil {
		msg := err.Error()
		updates := storage.NotificationUpdates{LastError: &msg, IncrementRetry: true}
		if lastAttempt || errors.Is(err, serrors.ErrNotFound) {
			updates.Status = domain.NotificationStatusFailed
		}
		if _, uErr := s.storage.UpdateNotification(ctx, id, updates); uErr != nil {
			return fmt.Errorf("could not record delivery failure: %w", errors.Join(err, uErr))
		}

		return fmt.Errorf("could not deliver notification: %w", err)
	}

	clear := ""
	if _, err := s.storage.UpdateNotification(ctx, id, storage.NotificationUpdates{
		Status:    domain.NotificationStatusSent,
		LastError: &clear,
	}); err != nil {
		return fmt.Errorf("could not mark notification as sent: %w", err)
	}

	return nil
}

// payslipFile loads the PDF attached to n, or returns nil for a standalone
// notification. cache, when not nil, avoids loading the same file for every
// notification of a reprocess run.
func (s service) payslipFile(ctx context.Context,
	n *domain.Notification,
	cache map[domain.FileID]*domain.PayslipFile) (*domain.PayslipFile, error) {
	if n.FileID == nil {
		return nil, nil //nolint: nilnil
	}
	if f, ok := cache[*n.FileID]; ok {
		return f, nil
	}

	f, err := s.storage.PayslipFileByID(ctx, *n.FileID)
	if err != nil {
		return nil, fmt.Errorf("could not get payslip file: %w", err)
	}
	if f == nil {
		return nil, serrors.With(serrors.ErrNotFound, "payslip file not found")
	}
	if cache != nil {
		cache[*n.FileID] = f
	}

	return f, nil
}

// send mails n, with the PDF attached when there is one, and records the
// delivery metrics.
func (s service) send(ctx context.Context, n domain.Notification, file *domain.PayslipFile) error {
	msg := mailer.Message{
		To:      n.Email,
		ToName:  n.Nome,
		Subject: n.Subject,
		Text:    n.Message,
	}
	if file != nil {
		msg.Attachments = []mailer.Attachment{{
			Filename:    file.Filename,
			ContentType: file.ContentType,
			Content:     file.Content,
		}}
	}

	start := time.Now()
	err := s.mailer.Send(ctx, msg)
	metrics.DeliveryDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.Deliveries.WithLabelValues(metrics.OutcomeSent).Inc()
	case errors.Is(err, serrors.ErrRateLimited):
		metrics.Deliveries.WithLabelValues(metrics.OutcomeRateLimited).Inc()
	default:
		metrics.Deliveries.WithLabelValues(metrics.OutcomeFailed).Inc()
	}
	if err != nil {
		return fmt.Errorf("could not send e-mail to %s: %w", n.Email, err)
	}

	return nil
}

func (s service) FailedNotifications(ctx context.Context,
	unidade string,
	limit uint) (*domain.FailedNotifications, error) {
	if limit == 0 {
		limit = defaultFailedLimit
	}
	limit = min(limit, maxFailedLimit)

	items, total, err := s.storage.FailedNotifications(ctx, storage.FailedFilter{
		Unidade: strings.TrimSpace(unidade),
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get failed notifications: %w", err)
	}
	if items == nil {
		items = []domain.Notification{}
	}

	return &domain.FailedNotifications{Total: int(total), Items: items}, nil
}

// Reprocess selects failed notifications, least recently updated first, and
// sends them again in batches. Every notification gets up to MaxRetries
// attempts; with incremental retry attempt n waits n*RetryBaseDelay before the
// next one.
func (s service) Reprocess(ctx context.Context, req domain.ReprocessRequest) (*domain.ReprocessResult, error) {
	ctx, span := s.tracer.Start(ctx, "payslip.Reprocess", trace.WithAttributes(
		attribute.String("unidade", req.Unidade),
		attribute.Bool("dryRun", req.DryRun),
	))
	defer span.End()

	if err := validate.Struct(req); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid reprocess request")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultReprocessLimit
	}
	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = defaultReprocessBatchSize
	}
	maxRetries := req.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultReprocessMaxRetries
	}
	incremental := req.IncrementalRetry == nil || *req.IncrementalRetry

	failed, _, err := s.storage.FailedNotifications(ctx, storage.FailedFilter{
		Unidade:       strings.TrimSpace(req.Unidade),
		IDs:           req.IDs,
		Limit:         uint(limit), //nolint: gosec
		MaxRetryCount: req.MaxRetryCount,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get failed notifications: %w", err)
	}

	result := &domain.ReprocessResult{
		DryRun:        req.DryRun,
		TotalSelected: len(failed),
		Items:         []domain.ReprocessItem{},
	}
	if len(failed) == 0 {
		result.Message = "no failed notifications found"

		return result, nil
	}

	if req.DryRun {
		for _, n := range failed[:min(len(failed), maxResultItems)] {
			result.Items = append(result.Items, domain.ReprocessItem{
				ID:      n.ID,
				To:      n.Email,
				Subject: n.Subject,
				Error:   n.LastError,
			})
		}
		result.Message = "dry run completed"

		return result, nil
	}

	files := make(map[domain.FileID]*domain.PayslipFile)
	for start := 0; start < len(failed); start += batchSize {
		batch := failed[start:min(start+batchSize, len(failed))]
		logger.Info(ctx, "reprocessing batch",
			zap.Int("from", start),
			zap.Int("size", len(batch)),
			zap.Int("total", len(failed)))

		for _, n := range batch {
			item, err := s.reprocessOne(ctx, n, maxRetries, incremental, files)
			if err != nil {
				return nil, err
			}
			if item.OK {
				result.Processed++
			} else {
				result.FailedAgain++
			}
			if len(result.Items) < maxResultItems {
				result.Items = append(result.Items, item)
			}
		}
	}
	result.Message = "reprocess completed"

	return result, nil
}

// reprocessOne retries a single notification and records the outcome on it.
// The returned error is only set when the run itself cannot continue.
func (s service) reprocessOne(ctx context.Context,
	n domain.Notification,
	maxRetries int,
	incremental bool,
	files map[domain.FileID]*domain.PayslipFile) (domain.ReprocessItem, error) {
	item := domain.ReprocessItem{ID: n.ID, To: n.Email, Subject: n.Subject}

	var lastErr error
	for item.Attempts < maxRetries {
		item.Attempts++

		file, err := s.payslipFile(ctx, &n, files)
		if err == nil {
			err = s.send(ctx, n, file)
		}
		if err == nil {
			clear := ""
			if _, err := s.storage.UpdateNotification(ctx, n.ID, storage.NotificationUpdates{
				Status:         domain.NotificationStatusSent,
				LastError:      &clear,
				IncrementRetry: true,
			}); err != nil {
				return item, fmt.Errorf("could not mark notification as sent: %w", err)
			}
			item.OK = true

			return item, nil
		}

		lastErr = err
		// a missing PDF will not show up on the next attempt
		if errors.Is(err, serrors.ErrNotFound) {
			break
		}
		if item.Attempts < maxRetries && incremental {
			if err := sleep(ctx, time.Duration(item.Attempts)*s.options.RetryBaseDelay); err != nil {
				return item, fmt.Errorf("reprocess interrupted: %w", err)
			}
		}
	}

	item.Error = lastErr.Error()
	logger.Warn(ctx, "notification failed again",
		zap.String("id", n.ID.String()),
		zap.Int("attempts", item.Attempts),
		zap.Error(lastErr))
	if _, err := s.storage.UpdateNotification(ctx, n.ID, storage.NotificationUpdates{
		Status:         domain.NotificationStatusFailed,
		LastError:      &item.Error,
		IncrementRetry: true,
	}); err != nil {
		return item, fmt.Errorf("could not mark notification as failed: %w", err)
	}

	return item, nil
}

func (s service) Unidades(ctx context.Context) ([]string, error) {
	unidades, err := s.storage.Unidades(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get unidades: %w", err)
	}

	return unidades, nil
}

func (s service) Colaboradores(ctx context.Context, unidade string) ([]domain.Colaborador, error) {
	var (
		colaboradores []domain.Colaborador
		err           error
	)
	if unidade = strings.TrimSpace(unidade); unidade == "" {
		colaboradores, err = s.storage.Colaboradores(ctx)
	} else {
		colaboradores, err = s.storage.ColaboradoresByUnidade(ctx, unidade)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get colaboradores: %w", err)
	}

	return colaboradores, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint: wrapcheck
	case <-t.C:
		return nil
	}
}

// New creates a new Service backed by the provided storage and mailer and
// configured with the given options.
func New(storage storage.Storage, mailer mailer.Mailer, options Options) Service {
	if options.DefaultBatchSize <= 0 {
		options.DefaultBatchSize = defaultReprocessBatchSize
	}

	allowed := make(map[string]struct{}, len(options.AllowedDomains))
	for _, d := range options.AllowedDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			allowed[d] = struct{}{}
		}
	}

	return &service{
		options:        options,
		allowedDomains: allowed,
		storage:        storage,
		mailer:         mailer,
		tracer:         otel.Tracer("holerite/internal/payslip"),
	}
}
