package mail_test

import (
	"context"
	"errors"
	"mime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/infrastructure/mail"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSender struct {
	mu    sync.Mutex
	sent  []*gomail.Message
	err   error
	block chan struct{}
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m...)
	return f.err
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func alert(id string) *entity.Alert {
	return &entity.Alert{
		ID: id, Type: entity.AlertTypeTemperature, Severity: entity.AlertSeverityCritical,
		Message: "Cuarto frío fuera de rango: 9.5 °C", CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNotifier_EnviaYCierra(t *testing.T) {
	s := &fakeSender{}
	n := mail.NewNotifierWithSender(s, "wms@test.local", []string{"calidad@test.local"}, 4, nil)

	require.NoError(t, n.NotifyAlert(context.Background(), alert("a1")))
	require.NoError(t, n.NotifyAlert(context.Background(), alert("a2")))
	require.NoError(t, n.Close(context.Background()))

	assert.Equal(t, 2, s.count(), "Close debe vaciar la cola antes de terminar")
	s.mu.Lock()
	assert.Equal(t, []string{"calidad@test.local"}, s.sent[0].GetHeader("To"))
	// gomail guarda el asunto ya codificado (RFC 2047).
	subject, err := new(mime.WordDecoder).DecodeHeader(s.sent[0].GetHeader("Subject")[0])
	s.mu.Unlock()
	require.NoError(t, err)
	assert.Equal(t, mail.Subject(alert("a1")), subject)
	assert.Contains(t, subject, "CRÍTICA")

	assert.ErrorIs(t, n.NotifyAlert(context.Background(), alert("a3")), mail.ErrClosed)
	require.NoError(t, n.Close(context.Background()), "Close es idempotente")
}

func TestNotifier_SinDestinatariosNoEncola(t *testing.T) {
	s := &fakeSender{}
	n := mail.NewNotifierWithSender(s, "wms@test.local", nil, 1, nil)
	require.NoError(t, n.NotifyAlert(context.Background(), alert("a1")))
	require.NoError(t, n.Close(context.Background()))
	assert.Zero(t, s.count())
}

func TestNotifier_ColaLlena(t *testing.T) {
	s := &fakeSender{block: make(chan struct{})}
	n := mail.NewNotifierWithSender(s, "wms@test.local", []string{"x@test.local"}, 1, nil)

	// el worker toma la primera y queda bloqueado; la segunda llena la cola
	require.NoError(t, n.NotifyAlert(context.Background(), alert("a1")))
	require.Eventually(t, func() bool {
		return n.NotifyAlert(context.Background(), alert("a2")) == nil
	}, time.Second, 5*time.Millisecond)

	err := n.NotifyAlert(context.Background(), alert("a3"))
	assert.ErrorIs(t, err, mail.ErrQueueFull)

	close(s.block)
	require.NoError(t, n.Close(context.Background()))
	assert.Equal(t, 2, s.count())
}

func TestNotifier_ErrorDeEnvioNoDetieneElWorker(t *testing.T) {
	s := &fakeSender{err: errors.New("smtp caído")}
	n := mail.NewNotifierWithSender(s, "wms@test.local", []string{"x@test.local"}, 4, nil)
	require.NoError(t, n.NotifyAlert(context.Background(), alert("a1")))
	require.NoError(t, n.NotifyAlert(context.Background(), alert("a2")))
	require.NoError(t, n.Close(context.Background()))
	assert.Equal(t, 2, s.count())
}

func TestBody_EscapaHTML(t *testing.T) {
	a := alert("a1")
	a.Message = "<script>x</script>"
	assert.NotContains(t, mail.Body(a), "<script>")
	assert.Contains(t, mail.Body(a), "&lt;script&gt;")
}
