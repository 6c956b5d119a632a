package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/mbeoliero/leadgen/infra/config"
)

// ResendSender delivers transactional mail through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(cfg config.EmailConfig) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(cfg.ResendApiKey),
		from:   cfg.From,
	}
}

// SendPasswordReset 发送密码重置邮件
func (s *ResendSender) SendPasswordReset(ctx context.Context, to string, resetLink string) error {
	html := fmt.Sprintf(`<p>You requested a password reset.</p>
<p>Click below to reset your password:</p>
<a href="%s">%s</a>
<p>This link expires in 30 minutes.</p>`, resetLink, resetLink)

	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: "Reset Your Password",
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}
