// Package logging provides structured logging with PII redaction.
//
// The package wraps log/slog. Redaction happens in a slog.Handler, so the
// logger returned by Logger.Slog can be installed with slog.SetDefault and
// every component that logs through slog.Default gets the same treatment.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:     "info",
//	    Format:    "json",
//	    RedactPII: true,
//	})
//	slog.SetDefault(logger.Slog())
//
//	ctx = logging.WithFileName(ctx, "escola.txt")
//	slog.InfoContext(ctx, "validating")  // includes file_name
//
// # PII Redaction
//
// Census records carry personal data. With RedactPII on:
//
//   - CPF: 123.456.789-09 becomes ***.***.***-**
//   - CNPJ: 12.345.678/0001-95 becomes **.***.***/****-**
//   - Emails: maria@escola.br becomes ***@escola.br
//   - Phones: (61) 98765-4321 becomes (**) ****-****
//
// Values under keys such as name, cpf, parent1_name or field_value are
// masked whatever they contain.
package logging
