// Package mail implements transactional mail delivery over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"faranah/config"
	"faranah/internal/domain/entity"
	"faranah/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// smtpMailer implements service.Mailer with the wneessen/go-mail client.
// Every send is best-effort from the caller's point of view; the usecase
// layer logs failures and never fails the triggering request on them.
type smtpMailer struct {
	client      *gomail.Client
	from        string
	linkBaseURL string
	logger      *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the SMTP mailer. Without a mail section the storefront runs
// with mail delivery disabled.
func New(params Params) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("Mail not configured, using no-op mailer")

		return &noopMailer{logger: params.Logger}, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client:      client,
		from:        cfg.From,
		linkBaseURL: strings.TrimSuffix(params.Config.Reset.LinkBaseURL, "/"),
		logger:      params.Logger,
	}, nil
}

// SendWelcome greets a freshly registered customer.
func (m *smtpMailer) SendWelcome(ctx context.Context, user *entity.User) error {
	body := fmt.Sprintf(
		"<p>Bonjour %s,</p><p>Bienvenue sur Faranah Boutique. Votre compte a bien été créé.</p>",
		user.FullName(),
	)

	return m.send(ctx, user.Email, "Bienvenue sur Faranah Boutique", body, nil)
}

// SendOrderConfirmation mails the order recap to the customer.
func (m *smtpMailer) SendOrderConfirmation(ctx context.Context, customer *entity.User, order *entity.Order, address *entity.ShippingAddress, qrPNG []byte) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<p>Bonjour %s,</p>", customer.FullName())
	fmt.Fprintf(&sb, "<p>Votre commande <strong>%s</strong> a bien été enregistrée.</p>", order.ID)
	sb.WriteString("<ul>")
	for _, line := range order.Lines {
		fmt.Fprintf(&sb, "<li>%s (taille %s) x %d — %.0f GNF</li>",
			line.ProductName, line.Size, line.Quantity, line.Subtotal)
	}
	sb.WriteString("</ul>")
	fmt.Fprintf(&sb, "<p>Total : <strong>%.0f GNF</strong></p>", order.Total)
	fmt.Fprintf(&sb, "<p>Livraison : %s, %s, %s</p>", address.FullName, address.Address1, address.City)
	if len(qrPNG) > 0 {
		sb.WriteString(`<p>Présentez ce code à la livraison :</p><img src="cid:commande-qr.png" alt="QR commande"/>`)
	}

	return m.send(ctx, customer.Email, "Confirmation de votre commande", sb.String(), qrPNG)
}

// SendNewOrderNotice informs one back-office admin that an order landed.
func (m *smtpMailer) SendNewOrderNotice(ctx context.Context, admin *entity.User, customer *entity.User, order *entity.Order, address *entity.ShippingAddress) error {
	body := fmt.Sprintf(
		"<p>Bonjour %s,</p><p>Nouvelle commande <strong>%s</strong> de %s (%s), ville : %s, total : %.0f GNF, %d article(s).</p>",
		admin.FullName(), order.ID, customer.FullName(), customer.Email, address.City, order.Total, len(order.Lines),
	)

	return m.send(ctx, admin.Email, "Nouvelle commande reçue", body, nil)
}

// SendPasswordReset mails the reset link carrying the signed token.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/reset?token=%s&email=%s", m.linkBaseURL, token, email)
	body := fmt.Sprintf(
		"<p>Bonjour,</p><p>Pour réinitialiser votre mot de passe, cliquez sur <a href=%q>ce lien</a>. Il expire bientôt.</p>",
		link,
	)

	return m.send(ctx, email, "Réinitialisation de votre mot de passe", body, nil)
}

// SendPasswordChanged confirms a completed password reset.
func (m *smtpMailer) SendPasswordChanged(ctx context.Context, user *entity.User) error {
	body := fmt.Sprintf(
		"<p>Bonjour %s,</p><p>Votre mot de passe a bien été modifié.</p>",
		user.FullName(),
	)

	return m.send(ctx, user.Email, "Mot de passe modifié", body, nil)
}

// send assembles and delivers one message, optionally embedding a QR image.
func (m *smtpMailer) send(ctx context.Context, to, subject, htmlBody string, qrPNG []byte) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if len(qrPNG) > 0 {
		if err := msg.EmbedReader("commande-qr.png", bytes.NewReader(qrPNG)); err != nil {
			return errors.Wrap(err, "failed to embed QR image")
		}
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", to)
	}

	return nil
}

// noopMailer swallows every send when SMTP is not configured.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) SendWelcome(_ context.Context, user *entity.User) error {
	m.logger.Debug("[NoopMail] Skipping welcome mail", slog.String("email", user.Email))

	return nil
}

func (m *noopMailer) SendOrderConfirmation(_ context.Context, customer *entity.User, order *entity.Order, _ *entity.ShippingAddress, _ []byte) error {
	m.logger.Debug("[NoopMail] Skipping order confirmation",
		slog.String("email", customer.Email),
		slog.String("order_id", order.ID.String()),
	)

	return nil
}

func (m *noopMailer) SendNewOrderNotice(_ context.Context, admin *entity.User, _ *entity.User, order *entity.Order, _ *entity.ShippingAddress) error {
	m.logger.Debug("[NoopMail] Skipping admin order notice",
		slog.String("email", admin.Email),
		slog.String("order_id", order.ID.String()),
	)

	return nil
}

func (m *noopMailer) SendPasswordReset(_ context.Context, email, _ string) error {
	m.logger.Debug("[NoopMail] Skipping password reset mail", slog.String("email", email))

	return nil
}

func (m *noopMailer) SendPasswordChanged(_ context.Context, user *entity.User) error {
	m.logger.Debug("[NoopMail] Skipping password changed mail", slog.String("email", user.Email))

	return nil
}
