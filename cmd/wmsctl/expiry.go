package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/wms-api/internal/application/monitoring"
	"github.com/jhoicas/wms-api/internal/application/ports"
	inframail "github.com/jhoicas/wms-api/internal/infrastructure/mail"
	"github.com/jhoicas/wms-api/internal/infrastructure/postgres"
)

var expiryDays int

var expiryCmd = &cobra.Command{
	Use:   "expiry-scan",
	Short: "Genera alertas para lotes próximos a vencer",
	Long: `Revisa los lotes que vencen dentro de --days días y crea una alerta de vencimiento
por lote (critical si ya venció). Los lotes con una alerta pendiente se omiten,
así que el comando puede programarse en cron. Con SMTP configurado las alertas se envían por correo.`,
	Args: cobra.NoArgs,
	RunE: runExpiryScan,
}

func init() {
	expiryCmd.Flags().IntVar(&expiryDays, "days", monitoring.DefaultExpiryDays, "ventana de revisión en días")
}

func runExpiryScan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	var notifier ports.Notifier = ports.NopNotifier{}
	if e.cfg.SMTP.Enabled() {
		mailer := inframail.NewNotifier(e.cfg.SMTP, e.cfg.Alerts, e.log)
		notifier = mailer
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := mailer.Close(closeCtx); err != nil {
				e.log.Warn().Err(err).Msg("correos de vencimiento pendientes sin enviar")
			}
		}()
	}

	uc := monitoring.NewExpiryUseCase(
		postgres.NewLotRepository(e.pool),
		postgres.NewProductRepository(e.pool),
		postgres.NewAlertRepository(e.pool),
		notifier,
		e.log,
	)
	out, err := uc.Scan(ctx, expiryDays)
	if err != nil {
		return err
	}
	e.log.Info().
		Int("days", out.Days).
		Int("checked", out.Checked).
		Int("skipped", out.Skipped).
		Int("created", len(out.Alerts)).
		Msg("revisión de vencimientos terminada")
	return nil
}
