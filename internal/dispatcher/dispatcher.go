package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"resty.dev/v3"

	"github.com/mbeoliero/leadgen/domain/repo"
	"github.com/mbeoliero/leadgen/domain/service"
	"github.com/mbeoliero/leadgen/infra/config"
	"github.com/mbeoliero/leadgen/pkg/log"
)

var (
	ErrPipelineBusy   = errors.New("pipeline already running")
	ErrDispatchFailed = errors.New("pipeline dispatch failed")
)

// UpstreamError carries a non-2xx webhook response so the API layer can
// forward it with the original status code.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}

// Dispatcher invokes the external automation webhooks with a short-lived
// signed service token. Failures are surfaced, never retried.
type Dispatcher struct {
	cfg    config.WebhookConfig
	client *resty.Client
	signer *service.ServiceTokenSigner
}

func New(cfg config.WebhookConfig) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		client: resty.New().SetTimeout(cfg.Timeout),
		signer: service.NewServiceTokenSigner(cfg.Secret, cfg.TokenTtl),
	}
}

// IsRunning reads the latest run record's status. Best effort only: the
// check and any subsequent dispatch are not atomic, so two near-simultaneous
// callers can both observe "not running".
func (d *Dispatcher) IsRunning(ctx context.Context) (bool, error) {
	latest, err := repo.GetPipelineRunRepo().FindLatest(ctx)
	if err != nil {
		return false, err
	}
	return latest.IsRunning(), nil
}

// TriggerPipeline is the user-initiated entry point: a running pipeline is an
// error the caller must see.
func (d *Dispatcher) TriggerPipeline(ctx context.Context) error {
	running, err := d.IsRunning(ctx)
	if err != nil {
		return err
	}
	if running {
		return ErrPipelineBusy
	}
	return d.callAcquisition(ctx)
}

// TriggerScheduled is the scheduled-fire entry point: a running pipeline is a
// silent no-op, the schedule simply waits for its next occurrence.
func (d *Dispatcher) TriggerScheduled(ctx context.Context) error {
	running, err := d.IsRunning(ctx)
	if err != nil {
		return err
	}
	if running {
		log.CtxInfo(ctx, "pipeline already running, scheduled trigger skipped")
		return nil
	}
	return d.callAcquisition(ctx)
}

func (d *Dispatcher) callAcquisition(ctx context.Context) error {
	token, err := d.signer.Sign(service.ServicePipelineTrigger, "pipeline_start")
	if err != nil {
		return err
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		Post(d.cfg.AcquisitionUrl)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: acquisition webhook returned %s", ErrDispatchFailed, resp.Status())
	}

	log.CtxInfo(ctx, "pipeline trigger dispatched, status: %s", resp.Status())
	return nil
}

// SendInvite posts one invite to the send webhook and returns the upstream
// body. Non-2xx responses become *UpstreamError so the original status code
// survives to the HTTP layer.
func (d *Dispatcher) SendInvite(ctx context.Context, leadId uint64, message string) (string, error) {
	token, err := d.signer.Sign(service.ServicePipelineTrigger, "invite_send")
	if err != nil {
		return "", err
	}

	body, err := sonic.Marshal(map[string]any{
		"leadId":              leadId,
		"personalizedMessage": message,
	})
	if err != nil {
		return "", err
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(d.cfg.SendUrl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	if !resp.IsSuccess() {
		return "", &UpstreamError{StatusCode: resp.StatusCode(), Body: string(resp.Bytes())}
	}

	log.CtxInfo(ctx, "invite dispatched, leadId: %d, status: %s", leadId, resp.Status())
	return string(resp.Bytes()), nil
}
