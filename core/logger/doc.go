// Package logger builds slog loggers and provides attribute helpers for
// consistent structured logging across the HTTP middleware and the jwtctl tool.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithProduction("jwtctl"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("token issued",
//		logger.Component("issuer"),
//		logger.Claims(tok.Payload),
//	)
//
// # Token Attributes
//
// Reason extracts the rejection reason from a token error, so failed
// verifications can be filtered by cause:
//
//	if _, err := service.Verify(raw); err != nil {
//		log.Warn("token rejected", logger.Reason(err), logger.Error(err))
//	}
//
// All helpers return an empty slog.Attr for empty input, which slog drops.
package logger
