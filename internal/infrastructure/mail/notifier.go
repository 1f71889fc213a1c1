// Package mail envía por correo las alertas operativas (temperatura, stock bajo).
// El envío es asíncrono: NotifyAlert encola y un único worker despacha por SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/pkg/config"
	"github.com/jhoicas/wms-api/pkg/logger"
)

var _ ports.Notifier = (*Notifier)(nil)

// Errores del notificador.
var (
	ErrQueueFull = errors.New("mail: cola de notificaciones llena")
	ErrClosed    = errors.New("mail: notificador cerrado")
)

// Sender abstrae el envío SMTP (*gomail.Dialer lo implementa).
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Notifier encola alertas y las envía a los destinatarios configurados.
type Notifier struct {
	sender     Sender
	from       string
	recipients []string
	log        *logger.Logger

	mu     sync.Mutex
	closed bool
	queue  chan *entity.Alert
	done   chan struct{}
}

// NewNotifier crea el notificador a partir de la configuración SMTP.
func NewNotifier(smtp config.SMTPConfig, alerts config.AlertsConfig, log *logger.Logger) *Notifier {
	d := gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password)
	return NewNotifierWithSender(d, smtp.From, alerts.Recipients, alerts.QueueSize, log)
}

// NewNotifierWithSender permite inyectar el Sender (tests). queueSize <= 0 usa 64.
func NewNotifierWithSender(sender Sender, from string, recipients []string, queueSize int, log *logger.Logger) *Notifier {
	if queueSize <= 0 {
		queueSize = 64
	}
	if log == nil {
		log = logger.Nop()
	}
	n := &Notifier{
		sender:     sender,
		from:       from,
		recipients: recipients,
		log:        log.Named("mail"),
		queue:      make(chan *entity.Alert, queueSize),
		done:       make(chan struct{}),
	}
	go n.run()
	return n
}

// NotifyAlert encola la alerta sin bloquear. Sin destinatarios no hace nada.
func (n *Notifier) NotifyAlert(_ context.Context, a *entity.Alert) error {
	if a == nil || len(n.recipients) == 0 {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrClosed
	}
	select {
	case n.queue <- a:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close deja de aceptar alertas, vacía la cola y espera al worker o a que venza ctx.
func (n *Notifier) Close(ctx context.Context) error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	select {
	case <-n.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) run() {
	defer close(n.done)
	for a := range n.queue {
		if err := n.sender.DialAndSend(n.message(a)); err != nil {
			n.log.Error().Err(err).Str("alert_id", a.ID).Msg("no se pudo enviar la alerta por correo")
			continue
		}
		n.log.Debug().Str("alert_id", a.ID).Int("recipients", len(n.recipients)).Msg("alerta enviada")
	}
}

func (n *Notifier) message(a *entity.Alert) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.recipients...)
	m.SetHeader("Subject", Subject(a))
	m.SetBody("text/html", Body(a))
	return m
}

// Subject asunto del correo de una alerta.
func Subject(a *entity.Alert) string {
	return fmt.Sprintf("[WMS][%s] Alerta de %s", severityLabel(a.Severity), typeLabel(a.Type))
}

// Body cuerpo HTML del correo de una alerta.
func Body(a *entity.Alert) string {
	return fmt.Sprintf(`
		<html>
			<body>
				<h3>%s</h3>
				<p>%s</p>
				<p>Fecha: <strong>%s</strong></p>
				<p>Correo generado automáticamente, no responder.</p>
			</body>
		</html>
	`, html.EscapeString(Subject(a)), html.EscapeString(a.Message), a.CreatedAt.Format(time.RFC3339))
}

func severityLabel(s string) string {
	switch s {
	case entity.AlertSeverityCritical:
		return "CRÍTICA"
	case entity.AlertSeverityWarning:
		return "ADVERTENCIA"
	default:
		return "INFO"
	}
}

func typeLabel(t string) string {
	switch t {
	case entity.AlertTypeTemperature:
		return "temperatura"
	case entity.AlertTypeLowStock:
		return "stock bajo"
	case entity.AlertTypeExpiry:
		return "vencimiento"
	default:
		return t
	}
}
