// Package notify implementa la superficie de notificación sobre el log estructurado.
package notify

import (
	"github.com/jhoicas/stockms-api/internal/application/auth"
	"github.com/jhoicas/stockms-api/pkg/logger"
)

var _ auth.Notifier = (*LoggerNotifier)(nil)

// LoggerNotifier registra las notificaciones como eventos del log.
// Los mensajes van tal cual; el nivel refleja la severidad.
type LoggerNotifier struct {
	log *logger.Logger
}

// NewLoggerNotifier construye el notificador con el logger dado.
func NewLoggerNotifier(log *logger.Logger) *LoggerNotifier {
	return &LoggerNotifier{log: log}
}

// Success registra la notificación en nivel info.
func (n *LoggerNotifier) Success(message string) {
	n.log.Info().Str("notification", "success").Msg(message)
}

// Error registra la notificación en nivel warn (es un error de usuario, no del sistema).
func (n *LoggerNotifier) Error(message string) {
	n.log.Warn().Str("notification", "error").Msg(message)
}
